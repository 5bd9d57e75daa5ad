package application

import (
	"bytes"
	"errors"
	"log/slog"
	"testing"

	"github.com/bnema/carshare-cli/internal/domain"
	"github.com/bnema/carshare-cli/internal/logging"
	"github.com/stretchr/testify/require"
)

var errConnRefused = errors.New("dial tcp 127.0.0.1:5002: connect: connection refused")

func newTestLogger() (*slog.Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	return logging.New(&buf, "debug"), &buf
}

func requireActionMessage(t *testing.T, err error, want string) {
	t.Helper()

	require.Error(t, err)
	msg, ok := domain.UserMessage(err)
	require.True(t, ok, "expected an action error, got %v", err)
	require.Equal(t, want, msg)
}
