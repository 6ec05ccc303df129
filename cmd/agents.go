package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Calvin-Zhu01/agent-guard/internal/domain"
)

func newAgentCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "agents",
		Short: "Manage agents",
	}

	cmd.AddCommand(
		newAgentListCmd(app),
		newAgentGetCmd(app),
		newAgentCreateCmd(app),
		newAgentDeleteCmd(app),
		newAgentBindCmd(app),
		newAgentUnbindCmd(app),
	)

	return cmd
}

func newAgentListCmd(app *app) *cobra.Command {
	var (
		query    domain.AgentListQuery
		asJSON   bool
		pageSize int
		page     int
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List agents",
		RunE: func(cmd *cobra.Command, _ []string) error {
			query.Current = page
			query.Size = pageSize
			result, err := app.client.ListAgents(cmd.Context(), query)
			if err != nil {
				return err
			}

			if asJSON {
				return printJSON(cmd.OutOrStdout(), result)
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "agents: %d\n", result.Total)
			for _, agent := range result.Records {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%d policies\n", agent.ID, agent.Name, len(agent.Policies))
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&page, "page", 1, "page number")
	cmd.Flags().IntVar(&pageSize, "size", 20, "page size")
	cmd.Flags().StringVar(&query.Keyword, "keyword", "", "filter by name keyword")
	cmd.Flags().BoolVar(&asJSON, "json", false, "output as JSON")

	return cmd
}

func newAgentGetCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "get <agent-id>",
		Short: "Show one agent",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			agent, err := app.client.GetAgent(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), agent)
		},
	}
}

func newAgentCreateCmd(app *app) *cobra.Command {
	var req domain.AgentCreateRequest

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Register a new agent",
		RunE: func(cmd *cobra.Command, _ []string) error {
			agent, err := app.client.CreateAgent(cmd.Context(), req)
			if err != nil {
				return err
			}

			// The API key is only returned on creation.
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "created %s\napi key: %s\n", agent.ID, agent.APIKey)
			return nil
		},
	}

	cmd.Flags().StringVar(&req.Name, "name", "", "agent name")
	cmd.Flags().StringVar(&req.Description, "description", "", "agent description")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}

func newAgentDeleteCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <agent-id>",
		Short: "Delete an agent",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.client.DeleteAgent(cmd.Context(), args[0]); err != nil {
				return err
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "deleted")
			return nil
		},
	}
}

func newAgentBindCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "bind <agent-id> <policy-id>",
		Short: "Attach a policy to an agent",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			binding, err := app.client.BindPolicy(cmd.Context(), args[0], args[1])
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "bound %s to %s\n", binding.PolicyName, binding.AgentName)
			return nil
		},
	}
}

func newAgentUnbindCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "unbind <agent-id> <policy-id>",
		Short: "Detach a policy from an agent",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.client.UnbindPolicy(cmd.Context(), args[0], args[1]); err != nil {
				return err
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "unbound")
			return nil
		},
	}
}
