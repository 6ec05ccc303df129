package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Calvin-Zhu01/agent-guard/internal/domain"
)

func newStatsCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Cost and usage statistics",
	}

	cmd.AddCommand(
		newStatsOverviewCmd(app),
		newStatsTopCmd(app),
		newStatsBudgetCmd(app),
	)

	return cmd
}

func newStatsOverviewCmd(app *app) *cobra.Command {
	var (
		query  domain.StatsQuery
		asJSON bool
	)

	cmd := &cobra.Command{
		Use:   "overview",
		Short: "Show aggregate cost and token usage",
		RunE: func(cmd *cobra.Command, _ []string) error {
			overview, err := app.client.StatsOverview(cmd.Context(), query)
			if err != nil {
				return err
			}

			if asJSON {
				return printJSON(cmd.OutOrStdout(), overview)
			}

			out := cmd.OutOrStdout()
			_, _ = fmt.Fprintf(out, "total cost:  $%.4f (llm $%.4f, api $%.4f)\n", overview.TotalCost, overview.LLMCost, overview.APICost)
			_, _ = fmt.Fprintf(out, "total calls: %d across %d agents\n", overview.TotalCalls, overview.AgentCount)
			_, _ = fmt.Fprintf(out, "tokens:      %d in, %d out\n", overview.TokenInput, overview.TokenOutput)
			return nil
		},
	}

	cmd.Flags().StringVar(&query.StartDate, "start", "", "start date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&query.EndDate, "end", "", "end date (YYYY-MM-DD)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "output as JSON")

	return cmd
}

func newStatsTopCmd(app *app) *cobra.Command {
	var query domain.TopAgentsQuery

	cmd := &cobra.Command{
		Use:   "top",
		Short: "Rank agents by cost",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ranks, err := app.client.TopAgents(cmd.Context(), query)
			if err != nil {
				return err
			}

			for _, rank := range ranks {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%2d\t%s\t$%.4f\t%d calls\n",
					rank.Rank, rank.AgentName, rank.TotalCost, rank.APICalls)
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&query.Limit, "limit", 10, "number of agents")
	cmd.Flags().StringVar(&query.StartDate, "start", "", "start date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&query.EndDate, "end", "", "end date (YYYY-MM-DD)")

	return cmd
}

func newStatsBudgetCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "budget",
		Short: "Show the current month's budget usage",
		RunE: func(cmd *cobra.Command, _ []string) error {
			budget, err := app.client.CurrentBudget(cmd.Context())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			_, _ = fmt.Fprintf(out, "month:     %s\n", budget.Month)
			_, _ = fmt.Fprintf(out, "used:      $%.2f of $%.2f (%.1f%%)\n", budget.UsedAmount, budget.LimitAmount, budget.UsagePercentage)
			if budget.OverBudget {
				_, _ = fmt.Fprintln(out, "status:    OVER BUDGET")
			} else {
				_, _ = fmt.Fprintf(out, "remaining: $%.2f\n", budget.RemainingAmount)
			}
			return nil
		},
	}
}
