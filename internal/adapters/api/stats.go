package api

import (
	"context"

	"github.com/Calvin-Zhu01/agent-guard/internal/domain"
)

func (c *Client) StatsOverview(ctx context.Context, query domain.StatsQuery) (domain.StatsOverview, error) {
	return get[domain.StatsOverview](ctx, c, "/stats/overview", query.Values())
}

func (c *Client) CostTrends(ctx context.Context, query domain.StatsQuery) ([]domain.CostTrend, error) {
	return get[[]domain.CostTrend](ctx, c, "/stats/trends", query.Values())
}

func (c *Client) TopAgents(ctx context.Context, query domain.TopAgentsQuery) ([]domain.AgentCostRank, error) {
	return get[[]domain.AgentCostRank](ctx, c, "/stats/top-agents", query.Values())
}

func (c *Client) CurrentBudget(ctx context.Context) (domain.BudgetWithUsage, error) {
	return get[domain.BudgetWithUsage](ctx, c, "/budgets/current", nil)
}
