package cmd

import (
	"github.com/spf13/cobra"

	"github.com/Calvin-Zhu01/agent-guard/internal/adapters/render/shell"
)

func newConsoleCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "console",
		Short: "Open the interactive tabbed console",
		RunE: func(_ *cobra.Command, _ []string) error {
			navigator := shell.NewNavigator()
			notifier := shell.NewNotifier()

			// Inside the console, pipeline notices and 401 redirects go to
			// the shell instead of stderr.
			app.client.BindNavigator(navigator)
			app.client.BindNotifier(notifier)

			model := shell.NewModel(app.guard, app.ledger, app.session, app.client, navigator)
			return shell.Run(model, navigator, notifier)
		},
	}
}
