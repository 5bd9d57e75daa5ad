package cmd

import (
	"context"

	"github.com/bnema/carshare-cli/internal/adapters/render/view"
	"github.com/bnema/carshare-cli/internal/application"
	"github.com/bnema/carshare-cli/internal/domain"
	"github.com/spf13/cobra"
)

func newVehicleCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "vehicle",
		Short: "Browse, manage and reserve vehicles",
	}

	cmd.AddCommand(
		newVehicleListCmd(app),
		newVehicleShowCmd(app),
		newVehicleCreateCmd(app),
		newVehicleUpdateCmd(app),
		newVehicleDeleteCmd(app),
		newVehicleAvailableCmd(app),
		newVehicleReserveCmd(app),
	)

	return cmd
}

func newVehicleListCmd(app *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the whole fleet",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var vehicles []domain.Vehicle
			err := withSpinner(cmd, asJSON, "Fetching vehicles...", func(ctx context.Context) error {
				var err error
				vehicles, err = app.vehicles.List(ctx)
				return err
			})
			if err != nil {
				return err
			}

			return writeOutput(cmd, app, asJSON, toVehiclesJSON(vehicles), view.VehicleTable(vehicles))
		},
	}

	addJSONFlag(cmd, &asJSON)

	return cmd
}

func newVehicleShowCmd(app *app) *cobra.Command {
	var id int
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show one vehicle",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			vehicle, err := app.vehicles.Get(cmd.Context(), domain.VehicleID(id))
			if err != nil {
				return err
			}

			return writeOutput(cmd, app, asJSON, toVehicleJSON(vehicle), view.Vehicle(vehicle))
		},
	}

	cmd.Flags().IntVar(&id, "id", 0, "Vehicle ID")
	_ = cmd.MarkFlagRequired("id")
	addJSONFlag(cmd, &asJSON)

	return cmd
}

func newVehicleCreateCmd(app *app) *cobra.Command {
	var input domain.VehicleInput
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Add a vehicle to the fleet",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			result, err := app.vehicles.Save(cmd.Context(), 0, input)

			return writeVehicleMutation(cmd, app, asJSON, result, err)
		},
	}

	cmd.Flags().StringVar(&input.Make, "make", "", "Vehicle make")
	cmd.Flags().StringVar(&input.Model, "model", "", "Vehicle model")
	cmd.Flags().BoolVar(&input.Availability, "available", true, "Whether the vehicle can be booked")
	_ = cmd.MarkFlagRequired("make")
	_ = cmd.MarkFlagRequired("model")
	addJSONFlag(cmd, &asJSON)

	return cmd
}

// newVehicleUpdateCmd loads the vehicle first, like an edit form, and only
// overrides the fields given on the command line.
func newVehicleUpdateCmd(app *app) *cobra.Command {
	var id int
	var override domain.VehicleInput
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "update",
		Short: "Edit a vehicle",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			current, err := app.vehicles.Get(cmd.Context(), domain.VehicleID(id))
			if err != nil {
				return err
			}

			input := domain.VehicleInput{Make: current.Make, Model: current.Model, Availability: current.Availability}
			flags := cmd.Flags()
			if flags.Changed("make") {
				input.Make = override.Make
			}
			if flags.Changed("model") {
				input.Model = override.Model
			}
			if flags.Changed("available") {
				input.Availability = override.Availability
			}

			result, err := app.vehicles.Save(cmd.Context(), current.ID, input)

			return writeVehicleMutation(cmd, app, asJSON, result, err)
		},
	}

	cmd.Flags().IntVar(&id, "id", 0, "Vehicle ID")
	cmd.Flags().StringVar(&override.Make, "make", "", "Vehicle make")
	cmd.Flags().StringVar(&override.Model, "model", "", "Vehicle model")
	cmd.Flags().BoolVar(&override.Availability, "available", false, "Whether the vehicle can be booked")
	_ = cmd.MarkFlagRequired("id")
	addJSONFlag(cmd, &asJSON)

	return cmd
}

func newVehicleDeleteCmd(app *app) *cobra.Command {
	var id int
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "delete",
		Short: "Delete a vehicle and show the reloaded fleet",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			result, err := app.vehicles.Delete(cmd.Context(), domain.VehicleID(id))

			return writeVehicleMutation(cmd, app, asJSON, result, err)
		},
	}

	cmd.Flags().IntVar(&id, "id", 0, "Vehicle ID")
	_ = cmd.MarkFlagRequired("id")
	addJSONFlag(cmd, &asJSON)

	return cmd
}

func newVehicleAvailableCmd(app *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "available",
		Short: "List vehicles that can be booked now",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var available application.AvailabilityView
			err := withSpinner(cmd, asJSON, "Fetching available vehicles...", func(ctx context.Context) error {
				var err error
				available, err = app.vehicles.ListAvailable(ctx)
				return err
			})
			if err != nil {
				return err
			}

			return writeOutput(cmd, app, asJSON, toAvailabilityJSON(available), view.VehicleAvailability(available))
		},
	}

	addJSONFlag(cmd, &asJSON)

	return cmd
}

func newVehicleReserveCmd(app *app) *cobra.Command {
	var id int
	var window domain.TimeWindow
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "reserve",
		Short: "Reserve a vehicle for the logged-in user",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			result, err := app.vehicles.Reserve(cmd.Context(), domain.VehicleID(id), window)
			if result.Message == "" {
				return err
			}

			return writeThenFail(cmd, app, asJSON, toReserveJSON(result), view.Reserved(result), err)
		},
	}

	cmd.Flags().IntVar(&id, "id", 0, "Vehicle ID")
	bindWindowFlags(cmd, &window)
	_ = cmd.MarkFlagRequired("id")
	addJSONFlag(cmd, &asJSON)

	return cmd
}

func bindWindowFlags(cmd *cobra.Command, window *domain.TimeWindow) {
	cmd.Flags().StringVar(&window.Start, "start", "", "Start time, e.g. 2024-05-01T10:00")
	cmd.Flags().StringVar(&window.End, "end", "", "End time, e.g. 2024-05-01T12:00")
	_ = cmd.MarkFlagRequired("start")
	_ = cmd.MarkFlagRequired("end")
}

// writeVehicleMutation prints the mutation message and whatever fleet was reloaded,
// then reports err. Nothing is printed when there is neither.
func writeVehicleMutation(cmd *cobra.Command, app *app, asJSON bool, result application.VehicleMutation, err error) error {
	if result.Message == "" && result.Vehicles == nil {
		return err
	}

	return writeThenFail(cmd, app, asJSON, toVehicleMutationJSON(result), view.VehicleMutation(result), err)
}
