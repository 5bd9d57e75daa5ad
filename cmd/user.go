package cmd

import (
	"context"

	"github.com/bnema/carshare-cli/internal/adapters/render/view"
	"github.com/bnema/carshare-cli/internal/domain"
	"github.com/spf13/cobra"
)

// userForm holds the registration and profile form fields.
type userForm struct {
	name           string
	email          string
	password       string
	membershipTier string
}

func (f *userForm) bind(cmd *cobra.Command, defaultTier domain.MembershipTier) {
	cmd.Flags().StringVar(&f.name, "name", "", "Full name")
	cmd.Flags().StringVar(&f.email, "email", "", "Email address")
	cmd.Flags().StringVar(&f.password, "password", "", "Password")
	cmd.Flags().StringVar(&f.membershipTier, "membership-tier", string(defaultTier), "Membership tier (Basic|Premium|VIP)")
}

// merge builds an update from the stored user, overriding only the fields given
// on the command line. The password is never read back, so it is sent as given.
func (f userForm) merge(cmd *cobra.Command, current domain.User) domain.UserInput {
	input := domain.UserInput{
		Name:           current.Name,
		Email:          current.Email,
		Password:       f.password,
		MembershipTier: current.MembershipTier,
	}

	flags := cmd.Flags()
	if flags.Changed("name") {
		input.Name = f.name
	}
	if flags.Changed("email") {
		input.Email = f.email
	}
	if flags.Changed("membership-tier") {
		input.MembershipTier = domain.ParseMembershipTier(f.membershipTier)
	}

	return input
}

func (f userForm) input(id domain.UserID) domain.UserInput {
	return domain.UserInput{
		ID:             id,
		Name:           f.name,
		Email:          f.email,
		Password:       f.password,
		MembershipTier: domain.ParseMembershipTier(f.membershipTier),
	}
}

func newUserCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "user",
		Short: "Register and administer users",
	}

	cmd.AddCommand(
		newUserRegisterCmd(app),
		newUserListCmd(app),
		newUserUpdateCmd(app),
		newUserDeleteCmd(app),
	)

	return cmd
}

func newUserRegisterCmd(app *app) *cobra.Command {
	var id int
	var form userForm

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Register a new user",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			message, err := app.registration.Register(cmd.Context(), form.input(domain.UserID(id)))
			if err != nil {
				return err
			}

			return writeMessage(cmd, app, message)
		},
	}

	cmd.Flags().IntVar(&id, "id", 0, "User ID (0 lets the user service assign one)")
	form.bind(cmd, domain.MembershipBasic)
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("password")

	return cmd
}

func newUserListCmd(app *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List registered users",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var users []domain.User
			err := withSpinner(cmd, asJSON, "Fetching users...", func(ctx context.Context) error {
				var err error
				users, err = app.registration.ListUsers(ctx)
				return err
			})
			if err != nil {
				return err
			}

			return writeOutput(cmd, app, asJSON, toUsersJSON(users), view.Users(users))
		},
	}

	addJSONFlag(cmd, &asJSON)

	return cmd
}

func newUserUpdateCmd(app *app) *cobra.Command {
	var id int
	var form userForm

	cmd := &cobra.Command{
		Use:   "update",
		Short: "Update a user",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			current, err := app.registration.Get(cmd.Context(), domain.UserID(id))
			if err != nil {
				return err
			}

			message, err := app.registration.Update(cmd.Context(), domain.UserID(id), form.merge(cmd, current))
			if err != nil {
				return err
			}

			return writeMessage(cmd, app, message)
		},
	}

	cmd.Flags().IntVar(&id, "id", 0, "User ID")
	form.bind(cmd, "")
	_ = cmd.MarkFlagRequired("id")

	return cmd
}

func newUserDeleteCmd(app *app) *cobra.Command {
	var id int

	cmd := &cobra.Command{
		Use:   "delete",
		Short: "Delete a user",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			message, err := app.registration.Delete(cmd.Context(), domain.UserID(id))
			if err != nil {
				return err
			}

			return writeMessage(cmd, app, message)
		},
	}

	cmd.Flags().IntVar(&id, "id", 0, "User ID")
	_ = cmd.MarkFlagRequired("id")

	return cmd
}
