package application

import (
	"context"
	"errors"
	"log/slog"

	"github.com/bnema/carshare-cli/internal/domain"
	"github.com/bnema/carshare-cli/internal/ports"
)

type RegistrationService struct {
	users ports.UserAPI
	log   *slog.Logger
}

func NewRegistrationService(users ports.UserAPI, log *slog.Logger) *RegistrationService {
	return &RegistrationService{users: users, log: loggerOrDiscard(log)}
}

func (s *RegistrationService) Register(ctx context.Context, input domain.UserInput) (string, error) {
	if err := s.users.CreateUser(ctx, input); err != nil {
		return "", fail(s.log, "register user", MsgRegistrationFailed, err)
	}

	return MsgUserRegistered, nil
}

func (s *RegistrationService) ListUsers(ctx context.Context) ([]domain.User, error) {
	users, err := s.users.ListUsers(ctx)
	if err != nil {
		return nil, fail(s.log, "list users", MsgUsersFetchFailed, err)
	}

	return users, nil
}

func (s *RegistrationService) Get(ctx context.Context, id domain.UserID) (domain.User, error) {
	user, err := s.users.GetUser(ctx, id)
	if err != nil {
		return domain.User{}, fail(s.log, "fetch user", MsgUserFetchFailed, err)
	}

	return user, nil
}

func (s *RegistrationService) Update(ctx context.Context, id domain.UserID, input domain.UserInput) (string, error) {
	if err := s.users.UpdateUser(ctx, id, input); err != nil {
		return "", fail(s.log, "update user", MsgUserUpdateFailed, err)
	}

	return MsgUserUpdated, nil
}

// Delete distinguishes a rejected delete (the service answered with a non-2xx
// status) from one that never completed.
func (s *RegistrationService) Delete(ctx context.Context, id domain.UserID) (string, error) {
	err := s.users.DeleteUser(ctx, id)
	switch {
	case err == nil:
		return MsgUserDeleted, nil
	case errors.Is(err, domain.ErrUnexpectedStatus):
		return "", fail(s.log, "delete user", MsgUserDeleteRejected, err)
	default:
		return "", fail(s.log, "delete user", MsgUserDeleteFailed, err)
	}
}
