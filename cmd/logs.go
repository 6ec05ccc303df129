package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Calvin-Zhu01/agent-guard/internal/domain"
)

func newLogsCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "logs",
		Short: "Inspect agent call logs",
	}

	cmd.AddCommand(
		newLogsListCmd(app),
		newLogsGetCmd(app),
	)

	return cmd
}

func newLogsListCmd(app *app) *cobra.Command {
	var (
		query    domain.AgentLogListQuery
		reqType  string
		status   string
		asJSON   bool
		page     int
		pageSize int
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List call logs",
		RunE: func(cmd *cobra.Command, _ []string) error {
			query.Current = page
			query.Size = pageSize
			query.RequestType = domain.RequestType(reqType)
			query.ResponseStatus = domain.ResponseStatus(status)

			result, err := app.client.ListLogs(cmd.Context(), query)
			if err != nil {
				return err
			}

			if asJSON {
				return printJSON(cmd.OutOrStdout(), result)
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "calls: %d\n", result.Total)
			for _, log := range result.Records {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%s\t%s\t%dms\t$%.5f\n",
					log.CreatedAt, log.AgentName, log.RequestType, log.ResponseStatus, log.ResponseTimeMs, log.Cost)
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&page, "page", 1, "page number")
	cmd.Flags().IntVar(&pageSize, "size", 20, "page size")
	cmd.Flags().StringVar(&query.AgentID, "agent", "", "filter by agent id")
	cmd.Flags().StringVar(&reqType, "type", "", "filter by request type (API_CALL or LLM_CALL)")
	cmd.Flags().StringVar(&status, "status", "", "filter by response status")
	cmd.Flags().StringVar(&query.StartTime, "start", "", "start of the time window")
	cmd.Flags().StringVar(&query.EndTime, "end", "", "end of the time window")
	cmd.Flags().BoolVar(&asJSON, "json", false, "output as JSON")

	return cmd
}

func newLogsGetCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "get <log-id>",
		Short: "Show one call log",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			log, err := app.client.GetLog(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), log)
		},
	}
}
