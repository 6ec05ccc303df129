package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Calvin-Zhu01/agent-guard/internal/domain"
)

var errNotSignedIn = errors.New("not signed in, run `agc login` first")

func newRegisterCmd(app *app) *cobra.Command {
	var req domain.RegisterRequest

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create a new account",
		RunE: func(cmd *cobra.Command, _ []string) error {
			user, err := app.client.Register(cmd.Context(), req)
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "registered %s, run `agc login` to sign in\n", user.Username)
			return nil
		},
	}

	cmd.Flags().StringVar(&req.Username, "username", "", "account username")
	cmd.Flags().StringVar(&req.Password, "password", "", "account password")
	cmd.Flags().StringVar(&req.Email, "email", "", "account email (optional)")
	_ = cmd.MarkFlagRequired("username")
	_ = cmd.MarkFlagRequired("password")

	return cmd
}

func newLoginCmd(app *app) *cobra.Command {
	var req domain.LoginRequest

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Sign in and persist the session",
		RunE: func(cmd *cobra.Command, _ []string) error {
			session, err := app.client.Login(cmd.Context(), req)
			if err != nil {
				return err
			}

			if err := app.session.SetCredential(cmd.Context(), session.Token); err != nil {
				return fmt.Errorf("persist credential: %w", err)
			}
			if err := app.session.SetIdentity(cmd.Context(), session.User); err != nil {
				return fmt.Errorf("persist identity: %w", err)
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "signed in as %s (%s)\n", session.User.Username, session.User.Role)
			return nil
		},
	}

	cmd.Flags().StringVar(&req.Username, "username", "", "account username")
	cmd.Flags().StringVar(&req.Password, "password", "", "account password")
	_ = cmd.MarkFlagRequired("username")
	_ = cmd.MarkFlagRequired("password")

	return cmd
}

func newLogoutCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Sign out and discard the persisted session",
		RunE: func(cmd *cobra.Command, _ []string) error {
			// Purely local: the server is never consulted, and a half-broken
			// session still gets cleared.
			app.session.Logout(cmd.Context())
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "signed out")
			return nil
		},
	}
}

func newWhoamiCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the signed-in identity",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !app.session.EnsureAuthenticated(cmd.Context()) {
				return errNotSignedIn
			}

			user := app.session.Identity()
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%s\n", user.Username, user.Role, user.Email)
			return nil
		},
	}
}
