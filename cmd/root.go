package cmd

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap/zapcore"
)

func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	var verbose bool

	rootCmd := &cobra.Command{
		Use:           "agc",
		Short:         "AgentGuard console (agc): manage agents, policies and approvals from the terminal",
		Long:          "agc talks to an AgentGuard control plane: sign in, browse agents, call logs, policies and cost statistics, act on pending approvals, and keep a persistent tabbed console session.",
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	app, err := wireApp()
	if err != nil {
		rootCmd.RunE = func(_ *cobra.Command, _ []string) error {
			return err
		}
		return rootCmd
	}

	rootCmd.PersistentPreRun = func(_ *cobra.Command, _ []string) {
		if verbose {
			app.logLevel.SetLevel(zapcore.DebugLevel)
		}
	}

	rootCmd.AddCommand(
		newVersionCmd(),
		newRegisterCmd(app),
		newLoginCmd(app),
		newLogoutCmd(app),
		newWhoamiCmd(app),
		newConsoleCmd(app),
		newAgentCmd(app),
		newPolicyCmd(app),
		newApprovalCmd(app),
		newAlertCmd(app),
		newStatsCmd(app),
		newLogsCmd(app),
	)

	return rootCmd
}
