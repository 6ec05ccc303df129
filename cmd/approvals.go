package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Calvin-Zhu01/agent-guard/internal/domain"
)

func newApprovalCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "approvals",
		Short: "Review pending approval requests",
	}

	cmd.AddCommand(
		newApprovalListCmd(app),
		newApprovalApproveCmd(app),
		newApprovalRejectCmd(app),
	)

	return cmd
}

func newApprovalListCmd(app *app) *cobra.Command {
	var (
		query    domain.ApprovalListQuery
		status   string
		asJSON   bool
		page     int
		pageSize int
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List approval requests",
		RunE: func(cmd *cobra.Command, _ []string) error {
			query.Current = page
			query.Size = pageSize
			query.Status = domain.ApprovalStatus(status)

			result, err := app.client.ListApprovals(cmd.Context(), query)
			if err != nil {
				return err
			}

			if asJSON {
				return printJSON(cmd.OutOrStdout(), result)
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "approvals: %d\n", result.Total)
			for _, approval := range result.Records {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%s\t%s\texpires %s\n",
					approval.ID, approval.Status, approval.AgentName, approval.PolicyName, approval.ExpiresAt)
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&page, "page", 1, "page number")
	cmd.Flags().IntVar(&pageSize, "size", 20, "page size")
	cmd.Flags().StringVar(&status, "status", string(domain.ApprovalPending), "filter by status")
	cmd.Flags().StringVar(&query.AgentID, "agent", "", "filter by agent id")
	cmd.Flags().BoolVar(&asJSON, "json", false, "output as JSON")

	return cmd
}

func newApprovalApproveCmd(app *app) *cobra.Command {
	var remark string

	cmd := &cobra.Command{
		Use:   "approve <approval-id>",
		Short: "Approve a pending request",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			approval, err := app.client.ApproveApproval(cmd.Context(), args[0], domain.ApprovalActionRequest{Remark: remark})
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s is now %s\n", approval.ID, approval.Status)
			return nil
		},
	}

	cmd.Flags().StringVar(&remark, "remark", "", "optional remark recorded with the decision")
	return cmd
}

func newApprovalRejectCmd(app *app) *cobra.Command {
	var remark string

	cmd := &cobra.Command{
		Use:   "reject <approval-id>",
		Short: "Reject a pending request",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			approval, err := app.client.RejectApproval(cmd.Context(), args[0], domain.ApprovalActionRequest{Remark: remark})
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s is now %s\n", approval.ID, approval.Status)
			return nil
		},
	}

	cmd.Flags().StringVar(&remark, "remark", "", "optional remark recorded with the decision")
	return cmd
}
