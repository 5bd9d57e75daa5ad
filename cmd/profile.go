package cmd

import (
	"github.com/bnema/carshare-cli/internal/adapters/render/view"
	"github.com/spf13/cobra"
)

func newProfileCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "profile",
		Short: "View or edit the logged-in user's profile",
	}

	cmd.AddCommand(newProfileShowCmd(app), newProfileUpdateCmd(app))

	return cmd
}

func newProfileShowCmd(app *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show your profile",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			user, err := app.profile.Load(cmd.Context())
			if err != nil {
				return err
			}

			return writeOutput(cmd, app, asJSON, toUserJSON(user), view.Profile(user))
		},
	}

	addJSONFlag(cmd, &asJSON)

	return cmd
}

func newProfileUpdateCmd(app *app) *cobra.Command {
	var form userForm

	cmd := &cobra.Command{
		Use:   "update",
		Short: "Update your profile",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			current, err := app.profile.Load(cmd.Context())
			if err != nil {
				return err
			}

			message, err := app.profile.Update(cmd.Context(), form.merge(cmd, current))
			if err != nil {
				return err
			}

			return writeMessage(cmd, app, message)
		},
	}

	form.bind(cmd, "")

	return cmd
}
