package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/viper"
)

const (
	configName = "config"
	configType = "toml"
	configDir  = ".agentguard"

	baseURLKey   = "api.base_url"
	timeoutKey   = "api.timeout"
	statePathKey = "state.path"
	logLevelKey  = "log.level"
)

type Config struct {
	BaseURL   string
	Timeout   time.Duration
	StatePath string
	LogLevel  string
}

// Load reads ~/.agentguard/config.toml when present and applies defaults
// otherwise. A missing config file is not an error.
func Load(cfg *viper.Viper) (Config, error) {
	if cfg == nil {
		cfg = viper.New()
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return Config{}, fmt.Errorf("resolve home directory: %w", err)
	}

	cfg.SetConfigName(configName)
	cfg.SetConfigType(configType)
	cfg.AddConfigPath(filepath.Join(homeDir, configDir))
	cfg.SetDefault(baseURLKey, "http://localhost:8080/api/v1")
	cfg.SetDefault(timeoutKey, "15s")
	cfg.SetDefault(statePathKey, filepath.Join(homeDir, configDir, "state"))
	cfg.SetDefault(logLevelKey, "warn")

	err = cfg.ReadInConfig()
	if err != nil {
		var configNotFound viper.ConfigFileNotFoundError
		if !errors.As(err, &configNotFound) {
			return Config{}, fmt.Errorf("read config file: %w", err)
		}
	}

	baseURL := cfg.GetString(baseURLKey)
	if baseURL == "" {
		return Config{}, errors.New("api base url is empty")
	}

	timeout := cfg.GetDuration(timeoutKey)
	if timeout <= 0 {
		timeout = 15 * time.Second
	}

	statePath := cfg.GetString(statePathKey)
	if statePath == "" {
		return Config{}, errors.New("state path is empty")
	}

	return Config{
		BaseURL:   baseURL,
		Timeout:   timeout,
		StatePath: statePath,
		LogLevel:  cfg.GetString(logLevelKey),
	}, nil
}
