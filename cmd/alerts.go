package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Calvin-Zhu01/agent-guard/internal/domain"
)

func newAlertCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "alerts",
		Short: "Manage alert rules and history",
	}

	cmd.AddCommand(
		newAlertRulesCmd(app),
		newAlertHistoryCmd(app),
	)

	return cmd
}

func newAlertRulesCmd(app *app) *cobra.Command {
	var (
		asJSON   bool
		page     int
		pageSize int
	)

	cmd := &cobra.Command{
		Use:   "rules",
		Short: "List alert rules",
		RunE: func(cmd *cobra.Command, _ []string) error {
			result, err := app.client.ListAlertRules(cmd.Context(), domain.AlertRuleListQuery{
				PageQuery: domain.PageQuery{Current: page, Size: pageSize},
			})
			if err != nil {
				return err
			}

			if asJSON {
				return printJSON(cmd.OutOrStdout(), result)
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "rules: %d\n", result.Total)
			for _, rule := range result.Records {
				state := "disabled"
				if rule.Enabled {
					state = "enabled"
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%s\t%.2f\t%s\t%s\n",
					rule.ID, rule.Name, rule.Type, rule.Threshold, rule.ChannelType, state)
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&page, "page", 1, "page number")
	cmd.Flags().IntVar(&pageSize, "size", 20, "page size")
	cmd.Flags().BoolVar(&asJSON, "json", false, "output as JSON")

	return cmd
}

func newAlertHistoryCmd(app *app) *cobra.Command {
	var (
		asJSON   bool
		page     int
		pageSize int
	)

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List sent alerts",
		RunE: func(cmd *cobra.Command, _ []string) error {
			result, err := app.client.ListAlertHistory(cmd.Context(), domain.AlertHistoryListQuery{
				PageQuery: domain.PageQuery{Current: page, Size: pageSize},
			})
			if err != nil {
				return err
			}

			if asJSON {
				return printJSON(cmd.OutOrStdout(), result)
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "alerts: %d\n", result.Total)
			for _, alert := range result.Records {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%s\t%s\t%s\n",
					alert.CreatedAt, alert.Type, alert.Status, alert.ChannelType, alert.Title)
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&page, "page", 1, "page number")
	cmd.Flags().IntVar(&pageSize, "size", 20, "page size")
	cmd.Flags().BoolVar(&asJSON, "json", false, "output as JSON")

	return cmd
}
