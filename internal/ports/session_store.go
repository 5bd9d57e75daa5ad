package ports

import "context"

// SessionStore holds the single logged-in user id slot. Get returns
// domain.ErrSessionNotFound when nothing has been stored.
type SessionStore interface {
	Get(ctx context.Context) (string, error)
	Set(ctx context.Context, value string) error
	Clear(ctx context.Context) error
}
