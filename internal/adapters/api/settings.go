package api

import (
	"context"

	"github.com/Calvin-Zhu01/agent-guard/internal/domain"
)

func (c *Client) GetEmailSettings(ctx context.Context) (domain.EmailSettings, error) {
	return get[domain.EmailSettings](ctx, c, "/settings/email", nil)
}

func (c *Client) UpdateEmailSettings(ctx context.Context, settings domain.EmailSettings) error {
	_, err := put[struct{}](ctx, c, "/settings/email", settings)
	return err
}

func (c *Client) TestEmailSettings(ctx context.Context, settings domain.EmailSettings) (bool, error) {
	return post[bool](ctx, c, "/settings/email/test", settings)
}

func (c *Client) GetWebhookSettings(ctx context.Context) (domain.WebhookSettings, error) {
	return get[domain.WebhookSettings](ctx, c, "/settings/webhook", nil)
}

func (c *Client) UpdateWebhookSettings(ctx context.Context, settings domain.WebhookSettings) error {
	_, err := put[struct{}](ctx, c, "/settings/webhook", settings)
	return err
}

func (c *Client) GetAlertSettings(ctx context.Context) (domain.AlertSettings, error) {
	return get[domain.AlertSettings](ctx, c, "/settings/alert", nil)
}

func (c *Client) UpdateAlertSettings(ctx context.Context, settings domain.AlertSettings) error {
	_, err := put[struct{}](ctx, c, "/settings/alert", settings)
	return err
}
