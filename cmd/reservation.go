package cmd

import (
	"github.com/bnema/carshare-cli/internal/adapters/render/view"
	"github.com/bnema/carshare-cli/internal/application"
	"github.com/bnema/carshare-cli/internal/domain"
	"github.com/spf13/cobra"
)

func newReservationCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reservation",
		Short: "Find vehicles for a time window and manage reservations",
	}

	cmd.AddCommand(
		newReservationAvailableCmd(app),
		newReservationCreateCmd(app),
		newReservationModifyCmd(app),
		newReservationCancelCmd(app),
		newReservationListCmd(app),
	)

	return cmd
}

func newReservationAvailableCmd(app *app) *cobra.Command {
	var window domain.TimeWindow
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "available",
		Short: "List vehicles free during a time window",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			available, err := app.reservations.Available(cmd.Context(), window)
			if err != nil {
				return err
			}

			return writeOutput(cmd, app, asJSON, toAvailabilityJSON(available), view.Availability(available))
		},
	}

	bindWindowFlags(cmd, &window)
	addJSONFlag(cmd, &asJSON)

	return cmd
}

func newReservationCreateCmd(app *app) *cobra.Command {
	var vehicleID int
	var userID int
	var window domain.TimeWindow

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a reservation",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			message, err := app.reservations.Create(cmd.Context(), application.ReservationInput{
				VehicleID: domain.VehicleID(vehicleID),
				UserID:    domain.UserID(userID),
				Window:    window,
			})
			if err != nil {
				return err
			}

			return writeMessage(cmd, app, message)
		},
	}

	cmd.Flags().IntVar(&vehicleID, "vehicle-id", 0, "Vehicle ID")
	cmd.Flags().IntVar(&userID, "user-id", 0, "User ID (default: the logged-in user)")
	bindWindowFlags(cmd, &window)
	_ = cmd.MarkFlagRequired("vehicle-id")

	return cmd
}

func newReservationModifyCmd(app *app) *cobra.Command {
	var id int
	var window domain.TimeWindow

	cmd := &cobra.Command{
		Use:   "modify",
		Short: "Move a reservation to a new time window",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			message, err := app.reservations.Modify(cmd.Context(), domain.ReservationID(id), window)
			if err != nil {
				return err
			}

			return writeMessage(cmd, app, message)
		},
	}

	cmd.Flags().IntVar(&id, "id", 0, "Reservation ID")
	bindWindowFlags(cmd, &window)
	_ = cmd.MarkFlagRequired("id")

	return cmd
}

func newReservationCancelCmd(app *app) *cobra.Command {
	var id int

	cmd := &cobra.Command{
		Use:   "cancel",
		Short: "Cancel a reservation",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			message, err := app.reservations.Cancel(cmd.Context(), domain.ReservationID(id))
			if err != nil {
				return err
			}

			return writeMessage(cmd, app, message)
		},
	}

	cmd.Flags().IntVar(&id, "id", 0, "Reservation ID")
	_ = cmd.MarkFlagRequired("id")

	return cmd
}

func newReservationListCmd(app *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List your reservations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			reservations, err := app.reservations.ListMine(cmd.Context())
			if err != nil {
				return err
			}

			return writeOutput(cmd, app, asJSON, toReservationsJSON(reservations), view.Reservations(reservations))
		},
	}

	addJSONFlag(cmd, &asJSON)

	return cmd
}
