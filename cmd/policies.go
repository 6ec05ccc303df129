package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Calvin-Zhu01/agent-guard/internal/domain"
)

func newPolicyCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "policies",
		Short: "Manage guard policies",
	}

	cmd.AddCommand(
		newPolicyListCmd(app),
		newPolicyGetCmd(app),
		newPolicyEnableCmd(app),
		newPolicyDisableCmd(app),
	)

	return cmd
}

func newPolicyListCmd(app *app) *cobra.Command {
	var (
		query    domain.PolicyListQuery
		policy   string
		scope    string
		asJSON   bool
		page     int
		pageSize int
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List policies",
		RunE: func(cmd *cobra.Command, _ []string) error {
			query.Current = page
			query.Size = pageSize
			query.Type = domain.PolicyType(policy)
			query.Scope = domain.PolicyScope(scope)

			result, err := app.client.ListPolicies(cmd.Context(), query)
			if err != nil {
				return err
			}

			if asJSON {
				return printJSON(cmd.OutOrStdout(), result)
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "policies: %d\n", result.Total)
			for _, p := range result.Records {
				state := "disabled"
				if p.Enabled {
					state = "enabled"
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%s\t%s\t%s\n", p.ID, p.Name, p.Type, p.Action, state)
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&page, "page", 1, "page number")
	cmd.Flags().IntVar(&pageSize, "size", 20, "page size")
	cmd.Flags().StringVar(&query.Keyword, "keyword", "", "filter by name keyword")
	cmd.Flags().StringVar(&policy, "type", "", "filter by policy type")
	cmd.Flags().StringVar(&scope, "scope", "", "filter by scope (GLOBAL or AGENT)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "output as JSON")

	return cmd
}

func newPolicyGetCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "get <policy-id>",
		Short: "Show one policy",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			policy, err := app.client.GetPolicy(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), policy)
		},
	}
}

func newPolicyEnableCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "enable <policy-id>",
		Short: "Enable a policy",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.client.EnablePolicy(cmd.Context(), args[0]); err != nil {
				return err
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "enabled")
			return nil
		},
	}
}

func newPolicyDisableCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "disable <policy-id>",
		Short: "Disable a policy",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.client.DisablePolicy(cmd.Context(), args[0]); err != nil {
				return err
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "disabled")
			return nil
		},
	}
}
