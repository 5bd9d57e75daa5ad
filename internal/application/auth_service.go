package application

import (
	"context"
	"log/slog"

	"github.com/bnema/carshare-cli/internal/domain"
	"github.com/bnema/carshare-cli/internal/ports"
)

type AuthService struct {
	users   ports.UserAPI
	session ports.SessionStore
	log     *slog.Logger
}

func NewAuthService(users ports.UserAPI, session ports.SessionStore, log *slog.Logger) *AuthService {
	return &AuthService{users: users, session: session, log: loggerOrDiscard(log)}
}

// Login authenticates and, only on success, stores the returned user id in the
// session slot. The session is left untouched on failure.
func (s *AuthService) Login(ctx context.Context, credentials domain.Credentials) (domain.UserID, error) {
	s.log.Debug("attempting login", slog.String("email", credentials.Email))

	id, err := s.users.Login(ctx, credentials)
	if err != nil {
		return 0, fail(s.log, "login", MsgInvalidCredentials, err)
	}

	if err := s.session.Set(ctx, domain.FormatSessionUserID(id)); err != nil {
		return 0, fail(s.log, "store session", MsgSessionSaveFailed, err)
	}

	s.log.Debug("login successful", slog.Int("user_id", int(id)))
	return id, nil
}

func (s *AuthService) Logout(ctx context.Context) (string, error) {
	if err := s.session.Clear(ctx); err != nil {
		return "", fail(s.log, "clear session", MsgSessionSaveFailed, err)
	}

	return MsgLoggedOut, nil
}
