package api

import (
	"context"

	"github.com/Calvin-Zhu01/agent-guard/internal/domain"
)

func (c *Client) Register(ctx context.Context, req domain.RegisterRequest) (domain.User, error) {
	return post[domain.User](ctx, c, "/auth/register", req)
}

func (c *Client) Login(ctx context.Context, req domain.LoginRequest) (domain.LoginSession, error) {
	return post[domain.LoginSession](ctx, c, "/auth/login", req)
}

// CurrentUser is the "who am I" call backing identity hydration.
func (c *Client) CurrentUser(ctx context.Context) (domain.User, error) {
	return get[domain.User](ctx, c, "/auth/me", nil)
}

// Logout tells the server to drop the session. Local teardown is the session
// service's job and never depends on this call succeeding.
func (c *Client) Logout(ctx context.Context) error {
	_, err := post[struct{}](ctx, c, "/auth/logout", nil)
	return err
}
