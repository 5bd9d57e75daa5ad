package application

import (
	"context"
	"log/slog"

	"github.com/bnema/carshare-cli/internal/domain"
	"github.com/bnema/carshare-cli/internal/ports"
)

type ProfileService struct {
	users   ports.UserAPI
	session ports.SessionStore
	log     *slog.Logger
}

func NewProfileService(users ports.UserAPI, session ports.SessionStore, log *slog.Logger) *ProfileService {
	return &ProfileService{users: users, session: session, log: loggerOrDiscard(log)}
}

// Load fetches the logged-in user's profile. Without a valid session no request is
// made and the caller is sent back to login.
func (s *ProfileService) Load(ctx context.Context) (domain.User, error) {
	id, err := s.guard(ctx)
	if err != nil {
		return domain.User{}, err
	}

	user, err := s.users.GetUser(ctx, id)
	if err != nil {
		return domain.User{}, fail(s.log, "fetch user profile", MsgProfileLoadFailed, err)
	}

	return user, nil
}

func (s *ProfileService) Update(ctx context.Context, input domain.UserInput) (string, error) {
	id, err := s.guard(ctx)
	if err != nil {
		return "", err
	}

	if err := s.users.UpdateUser(ctx, id, input); err != nil {
		return "", fail(s.log, "update profile", MsgProfileUpdateFailed, err)
	}

	return MsgProfileUpdated, nil
}

func (s *ProfileService) guard(ctx context.Context) (domain.UserID, error) {
	id, err := sessionUserID(ctx, s.session, s.log)
	if err != nil {
		return 0, domain.NewActionError(MsgNoUserRedirect, err)
	}

	return id, nil
}
