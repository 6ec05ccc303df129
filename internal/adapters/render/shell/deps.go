package shell

import (
	"context"

	"github.com/Calvin-Zhu01/agent-guard/internal/domain"
)

// apiClient is the slice of the pipeline the screens read from.
type apiClient interface {
	StatsOverview(ctx context.Context, query domain.StatsQuery) (domain.StatsOverview, error)
	CurrentBudget(ctx context.Context) (domain.BudgetWithUsage, error)
	TopAgents(ctx context.Context, query domain.TopAgentsQuery) ([]domain.AgentCostRank, error)
	RecentAlertHistory(ctx context.Context, limit int) ([]domain.AlertHistory, error)
	ListAgents(ctx context.Context, query domain.AgentListQuery) (domain.Page[domain.Agent], error)
	ListLogs(ctx context.Context, query domain.AgentLogListQuery) (domain.Page[domain.AgentLog], error)
	ListPolicies(ctx context.Context, query domain.PolicyListQuery) (domain.Page[domain.Policy], error)
	ListApprovals(ctx context.Context, query domain.ApprovalListQuery) (domain.Page[domain.Approval], error)
	ListAlertRules(ctx context.Context, query domain.AlertRuleListQuery) (domain.Page[domain.AlertRule], error)
	GetEmailSettings(ctx context.Context) (domain.EmailSettings, error)
	GetWebhookSettings(ctx context.Context) (domain.WebhookSettings, error)
	GetAlertSettings(ctx context.Context) (domain.AlertSettings, error)
}

type identitySource interface {
	Username() string
}
