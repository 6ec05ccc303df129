package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/Calvin-Zhu01/agent-guard/internal/adapters/api"
	"github.com/Calvin-Zhu01/agent-guard/internal/adapters/notify"
	tomlrepo "github.com/Calvin-Zhu01/agent-guard/internal/adapters/repo/toml"
	filestate "github.com/Calvin-Zhu01/agent-guard/internal/adapters/state/file"
	"github.com/Calvin-Zhu01/agent-guard/internal/application"
	"github.com/Calvin-Zhu01/agent-guard/internal/config"
)

type app struct {
	cfg      config.Config
	logger   *zap.Logger
	logLevel zap.AtomicLevel
	notifier *notify.Console
	client   *api.Client
	session  *application.SessionService
	ledger   *application.LedgerService
	guard    *application.GuardService
}

func wireApp() (*app, error) {
	cfg, err := config.Load(viper.New())
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	logLevel := zap.NewAtomicLevelAt(parseLogLevel(cfg.LogLevel))
	encoderCfg := zap.NewDevelopmentEncoderConfig()
	logger := zap.New(zapcore.NewCore(
		zapcore.NewConsoleEncoder(encoderCfg),
		zapcore.Lock(os.Stderr),
		logLevel,
	))

	state := filestate.NewStore(cfg.StatePath)
	notifier := notify.NewConsole(os.Stderr)

	client := api.NewClient(api.Config{
		BaseURL:  cfg.BaseURL,
		Timeout:  cfg.Timeout,
		State:    state,
		Notifier: notifier,
		Logger:   logger,
	})

	ctx := context.Background()
	session := application.NewSessionService(ctx, tomlrepo.NewSessionRepository(state, logger), client, logger)
	// The pipeline tears sessions down through the service so the in-memory
	// copy and the persisted one never diverge on a 401.
	client.BindInvalidator(session)

	return &app{
		cfg:      cfg,
		logger:   logger,
		logLevel: logLevel,
		notifier: notifier,
		client:   client,
		session:  session,
		ledger:   application.NewLedgerService(ctx, tomlrepo.NewLedgerRepository(state, logger), logger),
		guard:    application.NewGuardService(session, logger),
	}, nil
}

func parseLogLevel(level string) zapcore.Level {
	parsed, err := zapcore.ParseLevel(level)
	if err != nil {
		return zapcore.WarnLevel
	}
	return parsed
}
