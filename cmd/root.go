package cmd

import (
	"io"

	"github.com/spf13/cobra"
)

func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "carshare",
		Short:         "Car sharing CLI: log in, manage vehicles, reservations and billing",
		Long:          "carshare talks to the car sharing user, vehicle, reservation and billing services. Log in once, then browse and book vehicles, manage your reservations and look up billing records from the terminal.",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	app, err := wireApp(commandErrWriter{cmd: rootCmd})
	if err != nil {
		rootCmd.RunE = func(_ *cobra.Command, _ []string) error {
			return err
		}
		return rootCmd
	}

	rootCmd.AddCommand(
		newVersionCmd(),
		newLoginCmd(app),
		newLogoutCmd(app),
		newProfileCmd(app),
		newUserCmd(app),
		newVehicleCmd(app),
		newReservationCmd(app),
		newBillingCmd(app),
	)

	return rootCmd
}

// commandErrWriter resolves the command's stderr at write time so diagnostics follow
// SetErr.
type commandErrWriter struct {
	cmd *cobra.Command
}

func (w commandErrWriter) Write(p []byte) (int, error) {
	return w.cmd.ErrOrStderr().Write(p)
}

var _ io.Writer = commandErrWriter{}
