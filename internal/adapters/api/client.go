package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Calvin-Zhu01/agent-guard/internal/domain"
	"github.com/Calvin-Zhu01/agent-guard/internal/ports"
)

const (
	defaultTimeout   = 15 * time.Second
	maxResponseBytes = 1 << 20

	// Application-level success code inside the response envelope.
	successCode = 200
)

// envelope is the server's three-field response wrapper. The pipeline never
// inspects Data beyond handing it to the caller's type.
type envelope struct {
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

type Config struct {
	BaseURL    string
	Timeout    time.Duration
	State      ports.StateStore
	Notifier   ports.Notifier
	Logger     *zap.Logger
	HTTPClient *http.Client
	Clock      ports.Clock
}

// Client decorates every outbound call with the persisted credential and
// classifies every response. It reads the credential straight from the state
// store rather than from the session service: the session service already
// depends on the client for identity hydration, and this one-way read keeps
// the wiring acyclic.
//
// The session teardown and redirect collaborators are late-bound through
// Bind* calls at process wiring time, for the same reason.
type Client struct {
	baseURL string
	http    *http.Client
	state   ports.StateStore
	logger  *zap.Logger
	clock   ports.Clock

	bindMu      sync.RWMutex
	notifier    ports.Notifier
	invalidator ports.SessionInvalidator
	navigator   ports.Navigator

	// Serializes 401 handling so concurrent rejections tear the session
	// down exactly once.
	invalidateMu sync.Mutex
}

var _ ports.IdentityFetcher = (*Client)(nil)

func NewClient(cfg Config) *Client {
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		timeout := cfg.Timeout
		if timeout <= 0 {
			timeout = defaultTimeout
		}
		httpClient = &http.Client{Timeout: timeout}
	}

	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	var notifier ports.Notifier = ports.NopNotifier{}
	if cfg.Notifier != nil {
		notifier = cfg.Notifier
	}

	clock := cfg.Clock
	if clock == nil {
		clock = ports.SystemClock{}
	}

	return &Client{
		baseURL:  cfg.BaseURL,
		http:     httpClient,
		state:    cfg.State,
		logger:   logger,
		clock:    clock,
		notifier: notifier,
	}
}

// BindInvalidator attaches the session teardown capability. Until bound, 401
// handling falls back to clearing the persisted session keys directly.
func (c *Client) BindInvalidator(invalidator ports.SessionInvalidator) {
	c.bindMu.Lock()
	defer c.bindMu.Unlock()
	c.invalidator = invalidator
}

// BindNavigator attaches the navigation collaborator used for the
// session-expired redirect. Without one (plain CLI runs) 401 handling clears
// state but performs no redirect.
func (c *Client) BindNavigator(navigator ports.Navigator) {
	c.bindMu.Lock()
	defer c.bindMu.Unlock()
	c.navigator = navigator
}

// BindNotifier swaps the notice sink, e.g. when the console shell takes over
// the terminal.
func (c *Client) BindNotifier(notifier ports.Notifier) {
	c.bindMu.Lock()
	defer c.bindMu.Unlock()
	if notifier == nil {
		notifier = ports.NopNotifier{}
	}
	c.notifier = notifier
}

func (c *Client) notify(severity ports.Severity, message string) {
	c.bindMu.RLock()
	notifier := c.notifier
	c.bindMu.RUnlock()
	notifier.Notify(severity, message)
}

// token reads the persisted credential. Any read failure, including an
// externally cleared state directory, degrades to an unauthenticated request.
func (c *Client) token(ctx context.Context) string {
	token, err := c.state.Get(ctx, domain.CredentialStateKey)
	if err != nil {
		return ""
	}
	return token
}

func do[T any](ctx context.Context, c *Client, method, path string, query url.Values, body any) (T, error) {
	var zero T

	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var payload io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return zero, fmt.Errorf("encode request body: %w", err)
		}
		payload = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, payload)
	if err != nil {
		return zero, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-ID", uuid.NewString())
	if token := c.token(ctx); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	started := c.clock.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.Debug("request failed", zap.String("method", method), zap.String("path", path), zap.Error(err))
		apiErr := &domain.APIError{Kind: domain.ErrorKindNetwork, Message: "network error, server unreachable"}
		c.notify(ports.SeverityError, apiErr.Message)
		return zero, apiErr
	}
	defer func() { _ = resp.Body.Close() }()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		apiErr := &domain.APIError{Kind: domain.ErrorKindNetwork, Message: "network error, response truncated"}
		c.notify(ports.SeverityError, apiErr.Message)
		return zero, apiErr
	}

	c.logger.Debug("request completed",
		zap.String("method", method),
		zap.String("path", path),
		zap.Int("status", resp.StatusCode),
		zap.Duration("elapsed", c.clock.Now().Sub(started)))

	switch {
	case resp.StatusCode == http.StatusUnauthorized:
		c.invalidateSession(ctx)
		return zero, &domain.APIError{Kind: domain.ErrorKindAuthentication, Message: "unauthorized", Status: resp.StatusCode}
	case resp.StatusCode == http.StatusForbidden:
		apiErr := &domain.APIError{Kind: domain.ErrorKindAuthorization, Message: "no permission to access this resource", Status: resp.StatusCode}
		c.notify(ports.SeverityError, apiErr.Message)
		return zero, apiErr
	case resp.StatusCode == http.StatusNotFound:
		apiErr := &domain.APIError{Kind: domain.ErrorKindNotFound, Message: "requested resource does not exist", Status: resp.StatusCode}
		c.notify(ports.SeverityError, apiErr.Message)
		return zero, apiErr
	case resp.StatusCode >= http.StatusInternalServerError:
		apiErr := &domain.APIError{Kind: domain.ErrorKindServer, Message: "server error, please try again later", Status: resp.StatusCode}
		c.notify(ports.SeverityError, apiErr.Message)
		return zero, apiErr
	}

	// Remaining statuses carry the application envelope.
	var env envelope
	if err := json.Unmarshal(data, &env); err != nil {
		apiErr := &domain.APIError{Kind: domain.ErrorKindServer, Message: "server returned an unreadable response", Status: resp.StatusCode}
		c.notify(ports.SeverityError, apiErr.Message)
		return zero, apiErr
	}

	if env.Code != successCode {
		message := env.Message
		if message == "" {
			message = "request failed"
		}
		apiErr := &domain.APIError{Kind: domain.ErrorKindBusiness, Message: message, Status: resp.StatusCode, Code: env.Code}
		c.notify(ports.SeverityError, apiErr.Message)
		return zero, apiErr
	}

	if len(env.Data) == 0 || bytes.Equal(env.Data, []byte("null")) {
		return zero, nil
	}

	var out T
	if err := json.Unmarshal(env.Data, &out); err != nil {
		apiErr := &domain.APIError{Kind: domain.ErrorKindServer, Message: "server returned an unexpected payload", Status: resp.StatusCode}
		c.notify(ports.SeverityError, apiErr.Message)
		return zero, apiErr
	}
	return out, nil
}

// invalidateSession handles an authentication rejection: tear down the
// persisted session, then redirect to the login view unless the user is
// already there. Concurrent in-flight calls commonly hit 401 together, so the
// whole path runs under a mutex and re-checks the current location; only the
// first caller produces the notice and redirect.
func (c *Client) invalidateSession(ctx context.Context) {
	c.invalidateMu.Lock()
	defer c.invalidateMu.Unlock()

	c.bindMu.RLock()
	invalidator := c.invalidator
	navigator := c.navigator
	c.bindMu.RUnlock()

	if invalidator != nil {
		if err := invalidator.ClearCredential(ctx); err != nil {
			c.logger.Warn("clear credential on 401", zap.Error(err))
		}
		if err := invalidator.ClearIdentity(ctx); err != nil {
			c.logger.Warn("clear identity on 401", zap.Error(err))
		}
	} else {
		if err := c.state.Delete(ctx, domain.CredentialStateKey); err != nil {
			c.logger.Warn("delete credential on 401", zap.Error(err))
		}
		if err := c.state.Delete(ctx, domain.IdentityStateKey); err != nil {
			c.logger.Warn("delete identity on 401", zap.Error(err))
		}
	}

	if navigator == nil {
		return
	}

	current := navigator.Current()
	if current.Path == domain.LoginPath {
		return
	}

	c.notify(ports.SeverityError, "session expired, please sign in again")

	target := domain.Target{Path: domain.LoginPath}
	if fullPath := current.FullPath(); fullPath != "" && fullPath != "/" {
		target.Query = url.Values{"redirect": []string{fullPath}}
	}
	c.logger.Info("session invalidated, redirecting to login", zap.String("from", current.FullPath()))
	navigator.Push(target)
}

func get[T any](ctx context.Context, c *Client, path string, query url.Values) (T, error) {
	return do[T](ctx, c, http.MethodGet, path, query, nil)
}

func post[T any](ctx context.Context, c *Client, path string, body any) (T, error) {
	return do[T](ctx, c, http.MethodPost, path, nil, body)
}

func put[T any](ctx context.Context, c *Client, path string, body any) (T, error) {
	return do[T](ctx, c, http.MethodPut, path, nil, body)
}

func del(ctx context.Context, c *Client, path string) error {
	_, err := do[struct{}](ctx, c, http.MethodDelete, path, nil, nil)
	return err
}
