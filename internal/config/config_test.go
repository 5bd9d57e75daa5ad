package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	chdir(t, t.TempDir())

	cfg, err := Load(viper.New())
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:5001/api/v1", cfg.UsersBaseURL)
	assert.Equal(t, "http://localhost:5000", cfg.VehiclesBaseURL)
	assert.Equal(t, "http://localhost:5000", cfg.ReservationsBaseURL)
	assert.Equal(t, "http://localhost:5002", cfg.BillingBaseURL)
	assert.Equal(t, filepath.Join(home, ".carshare", "session.toml"), cfg.SessionPath)
	assert.Equal(t, SessionBackendFile, cfg.SessionBackend)
	assert.Equal(t, "warn", cfg.LogLevel)
}

func TestLoadReadsConfigFile(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	chdir(t, t.TempDir())

	dir := filepath.Join(home, ".carshare")
	require.NoError(t, os.MkdirAll(dir, 0o700))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"), []byte(`
[billing]
base_url = "http://billing.internal:9000/"

[log]
level = "debug"
`), 0o600))

	cfg, err := Load(viper.New())
	require.NoError(t, err)

	assert.Equal(t, "http://billing.internal:9000", cfg.BillingBaseURL)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "http://localhost:5000", cfg.VehiclesBaseURL)
}

func TestLoadEnvironmentOverridesConfigFile(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	chdir(t, t.TempDir())

	dir := filepath.Join(home, ".carshare")
	require.NoError(t, os.MkdirAll(dir, 0o700))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"), []byte(`
[reservations]
base_url = "http://from-file:5000"
`), 0o600))
	t.Setenv("CARSHARE_RESERVATIONS_BASE_URL", "http://from-env:5001")

	cfg, err := Load(viper.New())
	require.NoError(t, err)
	assert.Equal(t, "http://from-env:5001", cfg.ReservationsBaseURL)
}

func TestLoadReadsDotEnv(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	workDir := t.TempDir()
	chdir(t, workDir)
	require.NoError(t, os.WriteFile(filepath.Join(workDir, ".env"), []byte("CARSHARE_USERS_BASE_URL=http://dotenv:5001/api/v1\n"), 0o600))
	t.Cleanup(func() { _ = os.Unsetenv("CARSHARE_USERS_BASE_URL") })

	cfg, err := Load(viper.New())
	require.NoError(t, err)
	assert.Equal(t, "http://dotenv:5001/api/v1", cfg.UsersBaseURL)
}

func TestLoadRejectsEmptyBaseURL(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	chdir(t, t.TempDir())

	v := viper.New()
	v.Set(VehiclesBaseURLKey, "")

	_, err := Load(v)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "vehicles.base_url")
}

func TestLoadSessionBackend(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	chdir(t, t.TempDir())
	t.Setenv("CARSHARE_SESSION_BACKEND", "Memory")

	cfg, err := Load(viper.New())
	require.NoError(t, err)
	assert.Equal(t, SessionBackendMemory, cfg.SessionBackend)
}

func TestLoadRejectsUnknownSessionBackend(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	chdir(t, t.TempDir())

	v := viper.New()
	v.Set(SessionBackendKey, "redis")

	_, err := Load(v)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "session.backend")
}

// chdir mirrors testing.T.Chdir (Go 1.24+) for older toolchains: it changes
// the working directory and restores the previous one when the test ends.
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() {
		if err := os.Chdir(prev); err != nil {
			t.Fatalf("restore working directory: %v", err)
		}
	})
}
