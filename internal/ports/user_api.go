package ports

import (
	"context"

	"github.com/bnema/carshare-cli/internal/domain"
)

type UserAPI interface {
	Login(ctx context.Context, credentials domain.Credentials) (domain.UserID, error)
	GetUser(ctx context.Context, id domain.UserID) (domain.User, error)
	ListUsers(ctx context.Context) ([]domain.User, error)
	CreateUser(ctx context.Context, input domain.UserInput) error
	UpdateUser(ctx context.Context, id domain.UserID, input domain.UserInput) error
	DeleteUser(ctx context.Context, id domain.UserID) error
}
