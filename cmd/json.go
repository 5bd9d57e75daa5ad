package cmd

import (
	"github.com/bnema/carshare-cli/internal/application"
	"github.com/bnema/carshare-cli/internal/domain"
)

// JSON shapes for --json output. Field names follow the backend services.

type userJSON struct {
	ID             int    `json:"id"`
	Name           string `json:"name"`
	Email          string `json:"email"`
	MembershipTier string `json:"membership_tier"`
}

type vehicleJSON struct {
	ID           int    `json:"id"`
	Make         string `json:"make"`
	Model        string `json:"model"`
	Availability bool   `json:"availability"`
}

type vehicleMutationJSON struct {
	Message  string        `json:"message,omitempty"`
	Vehicles []vehicleJSON `json:"vehicles"`
}

type availabilityJSON struct {
	Vehicles []vehicleJSON `json:"vehicles"`
	Message  string        `json:"message,omitempty"`
}

type reserveJSON struct {
	ReservationID int              `json:"reservation_id"`
	Message       string           `json:"message"`
	Available     availabilityJSON `json:"available"`
}

type reservationJSON struct {
	ID        int    `json:"id"`
	Vehicle   string `json:"vehicle"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
	Status    string `json:"status"`
}

func toUserJSON(user domain.User) userJSON {
	return userJSON{
		ID:             int(user.ID),
		Name:           user.Name,
		Email:          user.Email,
		MembershipTier: string(user.MembershipTier),
	}
}

func toUsersJSON(users []domain.User) []userJSON {
	out := make([]userJSON, 0, len(users))
	for _, user := range users {
		out = append(out, toUserJSON(user))
	}
	return out
}

func toVehicleJSON(vehicle domain.Vehicle) vehicleJSON {
	return vehicleJSON{
		ID:           int(vehicle.ID),
		Make:         vehicle.Make,
		Model:        vehicle.Model,
		Availability: vehicle.Availability,
	}
}

// toVehiclesJSON keeps a nil list nil so a failed reload encodes as null.
func toVehiclesJSON(vehicles []domain.Vehicle) []vehicleJSON {
	if vehicles == nil {
		return nil
	}

	out := make([]vehicleJSON, 0, len(vehicles))
	for _, vehicle := range vehicles {
		out = append(out, toVehicleJSON(vehicle))
	}
	return out
}

func toVehicleMutationJSON(result application.VehicleMutation) vehicleMutationJSON {
	return vehicleMutationJSON{Message: result.Message, Vehicles: toVehiclesJSON(result.Vehicles)}
}

func toAvailabilityJSON(available application.AvailabilityView) availabilityJSON {
	return availabilityJSON{Vehicles: toVehiclesJSON(available.Vehicles), Message: available.Message}
}

func toReserveJSON(result application.ReserveResult) reserveJSON {
	return reserveJSON{
		ReservationID: int(result.ReservationID),
		Message:       result.Message,
		Available:     toAvailabilityJSON(result.Available),
	}
}

func toReservationsJSON(reservations []domain.UserReservation) []reservationJSON {
	out := make([]reservationJSON, 0, len(reservations))
	for _, r := range reservations {
		out = append(out, reservationJSON{
			ID:        int(r.ID),
			Vehicle:   r.Vehicle,
			StartTime: r.Window.Start,
			EndTime:   r.Window.End,
			Status:    r.Status,
		})
	}
	return out
}
