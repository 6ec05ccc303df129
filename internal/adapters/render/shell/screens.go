package shell

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Calvin-Zhu01/agent-guard/internal/domain"
)

const screenPageSize = 20

// loadCmd fetches the data behind one screen. Each screen maps to the same
// endpoints the matching list command uses.
func (m Model) loadCmd(target domain.Target) tea.Cmd {
	client := m.client
	session := m.session
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), loadTimeout)
		defer cancel()

		var (
			lines []string
			err   error
		)
		switch target.Path {
		case domain.LoginPath:
			lines = []string{
				"Not signed in.",
				"",
				"Run `agc login --username <name>` in another terminal, then press r.",
			}
		case domain.HomePath:
			lines, err = dashboardLines(ctx, client, session)
		case "/agents":
			lines, err = agentLines(ctx, client)
		case "/logs":
			lines, err = logLines(ctx, client)
		case "/policies":
			lines, err = policyLines(ctx, client)
		case "/approvals":
			lines, err = approvalLines(ctx, client)
		case "/stats":
			lines, err = statsLines(ctx, client)
		case "/alerts":
			lines, err = alertLines(ctx, client)
		case "/settings":
			lines, err = settingsLines(ctx, client)
		default:
			lines = []string{"nothing to show here"}
		}
		return screenDataMsg{path: target.Path, lines: lines, err: err}
	}
}

func dashboardLines(ctx context.Context, client apiClient, session identitySource) ([]string, error) {
	overview, err := client.StatsOverview(ctx, domain.StatsQuery{})
	if err != nil {
		return nil, err
	}
	recent, err := client.RecentAlertHistory(ctx, 5)
	if err != nil {
		return nil, err
	}

	lines := []string{
		fmt.Sprintf("Signed in as %s", session.Username()),
		"",
		fmt.Sprintf("Total cost    $%.4f  (LLM $%.4f / API $%.4f)", overview.TotalCost, overview.LLMCost, overview.APICost),
		fmt.Sprintf("Total calls   %d across %d agents", overview.TotalCalls, overview.AgentCount),
		fmt.Sprintf("Tokens        %d in / %d out", overview.TokenInput, overview.TokenOutput),
		"",
		"Recent alerts:",
	}
	if len(recent) == 0 {
		lines = append(lines, "  none")
	}
	for _, h := range recent {
		lines = append(lines, fmt.Sprintf("  [%s] %-10s %s", h.CreatedAt, h.Type, h.Title))
	}
	return lines, nil
}

func agentLines(ctx context.Context, client apiClient) ([]string, error) {
	page, err := client.ListAgents(ctx, domain.AgentListQuery{
		PageQuery: domain.PageQuery{Current: 1, Size: screenPageSize},
	})
	if err != nil {
		return nil, err
	}
	lines := []string{fmt.Sprintf("%d agents", page.Total), ""}
	for _, a := range page.Records {
		lines = append(lines, fmt.Sprintf("%-24s  %-36s  policies:%d  last active %s",
			a.Name, a.ID, len(a.Policies), valueOr(a.LastActiveAt, "never")))
	}
	return lines, nil
}

func logLines(ctx context.Context, client apiClient) ([]string, error) {
	page, err := client.ListLogs(ctx, domain.AgentLogListQuery{
		PageQuery: domain.PageQuery{Current: 1, Size: screenPageSize},
	})
	if err != nil {
		return nil, err
	}
	lines := []string{fmt.Sprintf("%d calls", page.Total), ""}
	for _, l := range page.Records {
		lines = append(lines, fmt.Sprintf("[%s] %-8s %-20s %-8s %4dms  $%.5f",
			l.CreatedAt, l.ResponseStatus, l.AgentName, l.RequestType, l.ResponseTimeMs, l.Cost))
	}
	return lines, nil
}

func policyLines(ctx context.Context, client apiClient) ([]string, error) {
	page, err := client.ListPolicies(ctx, domain.PolicyListQuery{
		PageQuery: domain.PageQuery{Current: 1, Size: screenPageSize},
	})
	if err != nil {
		return nil, err
	}
	lines := []string{fmt.Sprintf("%d policies", page.Total), ""}
	for _, p := range page.Records {
		state := "disabled"
		if p.Enabled {
			state = "enabled"
		}
		lines = append(lines, fmt.Sprintf("%-24s  %-18s  %-10s  prio %3d  %s",
			p.Name, p.Type, p.Action, p.Priority, state))
	}
	return lines, nil
}

func approvalLines(ctx context.Context, client apiClient) ([]string, error) {
	page, err := client.ListApprovals(ctx, domain.ApprovalListQuery{
		PageQuery: domain.PageQuery{Current: 1, Size: screenPageSize},
		Status:    domain.ApprovalPending,
	})
	if err != nil {
		return nil, err
	}
	lines := []string{fmt.Sprintf("%d pending approvals", page.Total), ""}
	for _, a := range page.Records {
		lines = append(lines, fmt.Sprintf("%-36s  %-20s  %-24s  expires %s",
			a.ID, a.AgentName, a.PolicyName, a.ExpiresAt))
	}
	return lines, nil
}

func statsLines(ctx context.Context, client apiClient) ([]string, error) {
	overview, err := client.StatsOverview(ctx, domain.StatsQuery{})
	if err != nil {
		return nil, err
	}
	budget, err := client.CurrentBudget(ctx)
	if err != nil {
		return nil, err
	}
	top, err := client.TopAgents(ctx, domain.TopAgentsQuery{Limit: 5})
	if err != nil {
		return nil, err
	}

	lines := []string{
		fmt.Sprintf("Total cost  $%.4f over %d calls", overview.TotalCost, overview.TotalCalls),
		fmt.Sprintf("Budget      $%.2f used of $%.2f (%.1f%%) for %s",
			budget.UsedAmount, budget.LimitAmount, budget.UsagePercentage, budget.Month),
		"",
		"Top agents by cost:",
	}
	for _, rank := range top {
		lines = append(lines, fmt.Sprintf("  %2d. %-24s $%.4f  %d calls", rank.Rank, rank.AgentName, rank.TotalCost, rank.APICalls))
	}
	return lines, nil
}

func alertLines(ctx context.Context, client apiClient) ([]string, error) {
	page, err := client.ListAlertRules(ctx, domain.AlertRuleListQuery{
		PageQuery: domain.PageQuery{Current: 1, Size: screenPageSize},
	})
	if err != nil {
		return nil, err
	}
	lines := []string{fmt.Sprintf("%d alert rules", page.Total), ""}
	for _, r := range page.Records {
		state := "disabled"
		if r.Enabled {
			state = "enabled"
		}
		lines = append(lines, fmt.Sprintf("%-24s  %-12s  threshold %.2f  via %-8s  %s",
			r.Name, r.Type, r.Threshold, r.ChannelType, state))
	}
	return lines, nil
}

func settingsLines(ctx context.Context, client apiClient) ([]string, error) {
	email, err := client.GetEmailSettings(ctx)
	if err != nil {
		return nil, err
	}
	webhook, err := client.GetWebhookSettings(ctx)
	if err != nil {
		return nil, err
	}
	alerts, err := client.GetAlertSettings(ctx)
	if err != nil {
		return nil, err
	}

	return []string{
		fmt.Sprintf("Email notifications   %s  (%s:%d)", onOff(email.Enabled), email.SMTPHost, email.SMTPPort),
		fmt.Sprintf("DingTalk webhook      %s", onOff(webhook.DingTalkEnabled)),
		fmt.Sprintf("WeCom webhook         %s", onOff(webhook.WeComEnabled)),
		fmt.Sprintf("Custom webhook        %s", onOff(webhook.CustomWebhookEnabled)),
		"",
		fmt.Sprintf("Cost alerts           %s  threshold $%.2f", onOff(alerts.CostAlertEnabled), alerts.CostThreshold),
		fmt.Sprintf("Error-rate alerts     %s  threshold %.1f%%", onOff(alerts.ErrorRateAlertEnabled), alerts.ErrorRateThreshold),
		fmt.Sprintf("Approval reminders    %s  after %d min", onOff(alerts.ApprovalReminderEnabled), alerts.ApprovalReminderMinutes),
	}, nil
}

func valueOr(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}

func onOff(enabled bool) string {
	if enabled {
		return "on"
	}
	return "off"
}
