package cmd

import (
	"github.com/bnema/carshare-cli/internal/adapters/render/view"
	"github.com/bnema/carshare-cli/internal/domain"
	"github.com/spf13/cobra"
)

func newLoginCmd(app *app) *cobra.Command {
	var email string
	var password string
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Log in and show your profile",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if _, err := app.auth.Login(cmd.Context(), domain.Credentials{Email: email, Password: password}); err != nil {
				return err
			}

			user, err := app.profile.Load(cmd.Context())
			if err != nil {
				return err
			}

			return writeOutput(cmd, app, asJSON, toUserJSON(user), view.Profile(user))
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "Account email")
	cmd.Flags().StringVar(&password, "password", "", "Account password")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("password")
	addJSONFlag(cmd, &asJSON)

	return cmd
}

func newLogoutCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Forget the stored session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			message, err := app.auth.Logout(cmd.Context())
			if err != nil {
				return err
			}

			return writeMessage(cmd, app, message)
		},
	}
}
