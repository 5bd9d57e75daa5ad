// Package memory keeps the session slot in process memory, scoped to the lifetime
// of one Store, like a browser tab's session storage.
package memory

import (
	"context"
	"sync"

	"github.com/bnema/carshare-cli/internal/domain"
	"github.com/bnema/carshare-cli/internal/ports"
)

type Store struct {
	mu    sync.RWMutex
	value string
	set   bool
}

var _ ports.SessionStore = (*Store)(nil)

func NewStore() *Store {
	return &Store{}
}

func (s *Store) Get(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.set {
		return "", domain.ErrSessionNotFound
	}

	return s.value, nil
}

func (s *Store) Set(ctx context.Context, value string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.value = value
	s.set = true
	return nil
}

func (s *Store) Clear(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.value = ""
	s.set = false
	return nil
}
