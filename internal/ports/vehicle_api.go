package ports

import (
	"context"

	"github.com/bnema/carshare-cli/internal/domain"
)

type VehicleAPI interface {
	List(ctx context.Context) ([]domain.Vehicle, error)
	Get(ctx context.Context, id domain.VehicleID) (domain.Vehicle, error)
	Create(ctx context.Context, input domain.VehicleInput) error
	Update(ctx context.Context, id domain.VehicleID, input domain.VehicleInput) error
	Delete(ctx context.Context, id domain.VehicleID) error
	ListAvailable(ctx context.Context) ([]domain.Vehicle, error)
}
