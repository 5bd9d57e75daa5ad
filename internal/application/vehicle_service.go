package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/bnema/carshare-cli/internal/domain"
	"github.com/bnema/carshare-cli/internal/ports"
)

// VehicleMutation is the outcome of a list-then-mutate action: the message for the
// mutation and the freshly reloaded list.
type VehicleMutation struct {
	Message  string           `json:"message,omitempty"`
	Vehicles []domain.Vehicle `json:"vehicles"`
}

type ReserveResult struct {
	ReservationID domain.ReservationID `json:"reservation_id"`
	Message       string               `json:"message"`
	Available     AvailabilityView     `json:"available"`
}

type VehicleService struct {
	vehicles     ports.VehicleAPI
	reservations ports.ReservationAPI
	session      ports.SessionStore
	log          *slog.Logger
}

func NewVehicleService(vehicles ports.VehicleAPI, reservations ports.ReservationAPI, session ports.SessionStore, log *slog.Logger) *VehicleService {
	return &VehicleService{
		vehicles:     vehicles,
		reservations: reservations,
		session:      session,
		log:          loggerOrDiscard(log),
	}
}

func (s *VehicleService) List(ctx context.Context) ([]domain.Vehicle, error) {
	vehicles, err := s.vehicles.List(ctx)
	if err != nil {
		return nil, fail(s.log, "fetch vehicles", MsgVehiclesFetchFailed, err)
	}

	return vehicles, nil
}

func (s *VehicleService) Get(ctx context.Context, id domain.VehicleID) (domain.Vehicle, error) {
	vehicle, err := s.vehicles.Get(ctx, id)
	if err != nil {
		return domain.Vehicle{}, fail(s.log, "fetch vehicle", MsgVehicleFetchFailed, err)
	}

	return vehicle, nil
}

// Save creates the vehicle when id is zero and updates it otherwise. A create is
// followed by a reload only when it succeeds; an update is followed by one whenever
// the backend answered, whatever the status.
func (s *VehicleService) Save(ctx context.Context, id domain.VehicleID, input domain.VehicleInput) (VehicleMutation, error) {
	if id == 0 {
		if err := s.vehicles.Create(ctx, input); err != nil {
			return VehicleMutation{}, fail(s.log, "create vehicle", MsgVehicleCreateFailed, err)
		}
		return s.reload(ctx, MsgVehicleCreated, nil)
	}

	err := s.vehicles.Update(ctx, id, input)
	switch {
	case err == nil:
		return s.reload(ctx, MsgVehicleUpdated, nil)
	case errors.Is(err, domain.ErrUnexpectedStatus):
		return s.reload(ctx, "", fail(s.log, "update vehicle", MsgVehicleUpdateFailed, err))
	default:
		return VehicleMutation{}, fail(s.log, "update vehicle", MsgVehicleUpdateFailed, err)
	}
}

// Delete issues the delete and then reloads the full list whatever the delete
// outcome was, so repeating a delete of a missing vehicle looks the same.
func (s *VehicleService) Delete(ctx context.Context, id domain.VehicleID) (VehicleMutation, error) {
	if err := s.vehicles.Delete(ctx, id); err != nil {
		return s.reload(ctx, "", fail(s.log, "delete vehicle", MsgVehicleDeleteFailed, err))
	}

	return s.reload(ctx, MsgVehicleDeleted, nil)
}

// reload fetches the fleet after a mutation. The mutation message is kept even
// when the reload itself fails.
func (s *VehicleService) reload(ctx context.Context, message string, mutationErr error) (VehicleMutation, error) {
	vehicles, err := s.List(ctx)

	return VehicleMutation{Message: message, Vehicles: vehicles}, errors.Join(mutationErr, err)
}

func (s *VehicleService) ListAvailable(ctx context.Context) (AvailabilityView, error) {
	vehicles, err := s.vehicles.ListAvailable(ctx)
	if err != nil {
		return AvailabilityView{}, fail(s.log, "fetch available vehicles", MsgAvailabilityFailed, err)
	}

	return newAvailabilityView(vehicles, MsgNoVehiclesAvailable), nil
}

// Reserve books a vehicle for the logged-in user and reloads the available list on
// success.
func (s *VehicleService) Reserve(ctx context.Context, vehicleID domain.VehicleID, window domain.TimeWindow) (ReserveResult, error) {
	userID, err := sessionUserID(ctx, s.session, s.log)
	if err != nil {
		return ReserveResult{}, domain.NewActionError(MsgUserNotLoggedIn, err)
	}

	s.log.Debug("submitting reservation",
		slog.Int("user_id", int(userID)),
		slog.Int("vehicle_id", int(vehicleID)),
		slog.String("start_time", window.Start),
		slog.String("end_time", window.End),
	)

	reservationID, err := s.reservations.Create(ctx, domain.ReservationRequest{
		VehicleID: vehicleID,
		UserID:    userID,
		Window:    window,
	})
	if err != nil {
		return ReserveResult{}, fail(s.log, "create reservation", MsgReservationFailed, err)
	}

	result := ReserveResult{
		ReservationID: reservationID,
		Message:       fmt.Sprintf(msgReservationSucceeded, reservationID),
	}

	available, err := s.ListAvailable(ctx)
	if err != nil {
		return result, err
	}
	result.Available = available

	return result, nil
}
