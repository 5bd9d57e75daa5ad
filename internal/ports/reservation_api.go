package ports

import (
	"context"

	"github.com/bnema/carshare-cli/internal/domain"
)

type ReservationAPI interface {
	AvailableVehicles(ctx context.Context, window domain.TimeWindow) ([]domain.Vehicle, error)
	Create(ctx context.Context, req domain.ReservationRequest) (domain.ReservationID, error)
	Modify(ctx context.Context, id domain.ReservationID, window domain.TimeWindow) error
	Cancel(ctx context.Context, id domain.ReservationID) error
	ListByUser(ctx context.Context, userID domain.UserID) ([]domain.UserReservation, error)
}
