package api

import (
	"context"

	"github.com/Calvin-Zhu01/agent-guard/internal/domain"
)

func (c *Client) ListLogs(ctx context.Context, query domain.AgentLogListQuery) (domain.Page[domain.AgentLog], error) {
	return get[domain.Page[domain.AgentLog]](ctx, c, "/logs", query.Values())
}

func (c *Client) GetLog(ctx context.Context, id string) (domain.AgentLog, error) {
	return get[domain.AgentLog](ctx, c, "/logs/"+id, nil)
}
