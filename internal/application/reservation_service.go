package application

import (
	"context"
	"log/slog"

	"github.com/bnema/carshare-cli/internal/domain"
	"github.com/bnema/carshare-cli/internal/ports"
)

// AvailabilityView is a vehicle list plus the message shown in place of an empty
// list.
type AvailabilityView struct {
	Vehicles []domain.Vehicle `json:"vehicles"`
	Message  string           `json:"message,omitempty"`
}

type ReservationInput struct {
	VehicleID domain.VehicleID
	// UserID is taken from the session when zero.
	UserID domain.UserID
	Window domain.TimeWindow
}

type ReservationService struct {
	api     ports.ReservationAPI
	session ports.SessionStore
	log     *slog.Logger
}

func NewReservationService(api ports.ReservationAPI, session ports.SessionStore, log *slog.Logger) *ReservationService {
	return &ReservationService{api: api, session: session, log: loggerOrDiscard(log)}
}

func (s *ReservationService) Available(ctx context.Context, window domain.TimeWindow) (AvailabilityView, error) {
	vehicles, err := s.api.AvailableVehicles(ctx, window)
	if err != nil {
		return AvailabilityView{}, fail(s.log, "fetch available vehicles", MsgAvailabilityFailed, err)
	}

	return newAvailabilityView(vehicles, MsgNoVehiclesInWindow), nil
}

func (s *ReservationService) Create(ctx context.Context, input ReservationInput) (string, error) {
	userID := input.UserID
	if userID == 0 {
		id, err := sessionUserID(ctx, s.session, s.log)
		if err != nil {
			return "", domain.NewActionError(MsgUserNotLoggedIn, err)
		}
		userID = id
	}

	_, err := s.api.Create(ctx, domain.ReservationRequest{
		VehicleID: input.VehicleID,
		UserID:    userID,
		Window:    input.Window,
	})
	if err != nil {
		return "", fail(s.log, "create reservation", MsgReservationFailed, err)
	}

	return MsgReservationCreated, nil
}

func (s *ReservationService) Modify(ctx context.Context, id domain.ReservationID, window domain.TimeWindow) (string, error) {
	if err := s.api.Modify(ctx, id, window); err != nil {
		return "", fail(s.log, "modify reservation", MsgModifyFailed, err)
	}

	return MsgReservationModified, nil
}

func (s *ReservationService) Cancel(ctx context.Context, id domain.ReservationID) (string, error) {
	if err := s.api.Cancel(ctx, id); err != nil {
		return "", fail(s.log, "cancel reservation", MsgCancelFailed, err)
	}

	return MsgReservationCanceled, nil
}

// ListMine lists the reservations of the logged-in user.
func (s *ReservationService) ListMine(ctx context.Context) ([]domain.UserReservation, error) {
	userID, err := sessionUserID(ctx, s.session, s.log)
	if err != nil {
		return nil, domain.NewActionError(MsgUserNotLoggedIn, err)
	}

	reservations, err := s.api.ListByUser(ctx, userID)
	if err != nil {
		return nil, fail(s.log, "list reservations", MsgReservationsFailed, err)
	}

	return reservations, nil
}

func newAvailabilityView(vehicles []domain.Vehicle, emptyMessage string) AvailabilityView {
	if len(vehicles) == 0 {
		return AvailabilityView{Vehicles: []domain.Vehicle{}, Message: emptyMessage}
	}

	return AvailabilityView{Vehicles: vehicles}
}
