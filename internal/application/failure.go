package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/bnema/carshare-cli/internal/domain"
	"github.com/bnema/carshare-cli/internal/logging"
	"github.com/bnema/carshare-cli/internal/ports"
)

// fail records the diagnostic for a failed action and converts it into the
// terminal, user-facing error. Nothing is retried.
func fail(log *slog.Logger, op, message string, err error) error {
	log.Error(op+" failed", slog.String("message", message), logging.Err(err))
	return domain.NewActionError(message, fmt.Errorf("%s: %w", op, err))
}

// sessionUserID reads and validates the session slot. Any read failure is treated
// as "not logged in" for the current command.
func sessionUserID(ctx context.Context, store ports.SessionStore, log *slog.Logger) (domain.UserID, error) {
	raw, err := store.Get(ctx)
	if err != nil {
		if !errors.Is(err, domain.ErrSessionNotFound) {
			log.Warn("read session failed", logging.Err(err))
		}
		return 0, fmt.Errorf("%w: %w", domain.ErrNotLoggedIn, err)
	}

	id, err := domain.ParseSessionUserID(raw)
	if err != nil {
		log.Warn("invalid session user id", slog.String("raw", raw))
		return 0, err
	}

	return id, nil
}

func loggerOrDiscard(log *slog.Logger) *slog.Logger {
	if log == nil {
		return logging.Discard()
	}

	return log
}
