package auth

import (
	"errors"
	"time"

	"github.com/spf13/cobra"

	"github.com/soukonline/cli/internal/app"
	"github.com/soukonline/cli/internal/format"
	"github.com/soukonline/cli/internal/utils"
)

// New builds the auth command group
func New(resolve func() *app.App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "auth",
		Short: "Authentication commands",
		Long: `Authentication commands for the souk CLI.

This command group includes login, logout, and session status.`,
	}

	cmd.AddCommand(newLoginCmd(resolve))
	cmd.AddCommand(newLogoutCmd(resolve))
	cmd.AddCommand(newStatusCmd(resolve))

	return cmd
}

func newLoginCmd(resolve func() *app.App) *cobra.Command {
	var email, password string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Login to the backend",
		Long:  "Authenticate with email and password and persist the session token",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := utils.ValidateEmail(email); err != nil {
				return err
			}
			if password == "" {
				return errors.New("password is required")
			}

			_, err := resolve().Users.Login(cmd.Context(), email, password)
			return err
		},
	}

	cmd.Flags().StringVarP(&email, "email", "e", "", "account email")
	cmd.Flags().StringVarP(&password, "password", "p", "", "account password")

	return cmd
}

func newLogoutCmd(resolve func() *app.App) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Logout from the backend",
		Long:  "Drop the persisted session token and user profile",
		RunE: func(cmd *cobra.Command, args []string) error {
			a := resolve()
			if !a.Session.IsLoggedIn() {
				return errors.New("not logged in")
			}
			_, err := a.Users.Logout(cmd.Context())
			return err
		},
	}
}

func newStatusCmd(resolve func() *app.App) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show authentication status",
		Long:  "Display the current session's user profile and token expiry",
		RunE: func(cmd *cobra.Command, args []string) error {
			a := resolve()
			if !a.Session.IsLoggedIn() {
				format.PrintWarning("Not logged in")
				return nil
			}

			user := a.Session.User()
			if exp, ok := a.Session.TokenExpiry(); ok {
				if time.Now().After(exp) {
					format.PrintWarning("Session token expired %s", exp.Format(time.RFC3339))
				} else {
					format.PrintInfo("Session token valid until %s", exp.Format(time.RFC3339))
				}
			}
			return format.Print(user)
		},
	}
}
