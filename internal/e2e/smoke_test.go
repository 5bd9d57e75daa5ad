package e2e

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSmokeFlow(t *testing.T) {
	server := newUserService(t)
	home := t.TempDir()
	binaryPath := buildBinary(t)
	require.NoError(t, writeConfigFixture(home, server.URL))

	stdout, stderr, err := runCarshare(t, binaryPath, home, "login", "--email", "a@b.com", "--password", "x")
	require.NoError(t, err, "stderr: %s", stderr)
	assert.Contains(t, stdout, "Ann Lee")

	stdout, stderr, err = runCarshare(t, binaryPath, home, "profile", "show")
	require.NoError(t, err, "stderr: %s", stderr)
	assert.Contains(t, stdout, "a@b.com")

	_, stderr, err = runCarshare(t, binaryPath, home, "logout")
	require.NoError(t, err, "stderr: %s", stderr)

	_, stderr, err = runCarshare(t, binaryPath, home, "profile", "show")
	require.Error(t, err)
	assert.Contains(t, stderr, "No user logged in. Redirecting to login page.")
}

func newUserService(t *testing.T) *httptest.Server {
	t.Helper()

	router := mux.NewRouter()
	router.HandleFunc("/api/v1/login", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, `{"id":42}`)
	}).Methods(http.MethodPost)
	router.HandleFunc("/api/v1/users/{id}", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, fmt.Sprintf(`{"id":%s,"name":"Ann Lee","email":"a@b.com","membership_tier":"Basic"}`, mux.Vars(r)["id"]))
	}).Methods(http.MethodGet)

	server := httptest.NewServer(router)
	t.Cleanup(server.Close)
	return server
}

func writeJSON(w http.ResponseWriter, body string) {
	w.Header().Set("Content-Type", "application/json")
	_, _ = io.WriteString(w, body)
}

func buildBinary(t *testing.T) string {
	t.Helper()

	binaryPath := filepath.Join(t.TempDir(), "carshare-e2e")
	cmd := exec.Command("go", "build", "-o", binaryPath, "./cmd/carshare")
	cmd.Dir = repoRoot(t)

	output, err := cmd.CombinedOutput()
	require.NoError(t, err, "build carshare binary: %s", string(output))
	return binaryPath
}

func runCarshare(t *testing.T, binaryPath, home string, args ...string) (string, string, error) {
	t.Helper()

	cmd := exec.Command(binaryPath, args...)
	cmd.Env = append(os.Environ(), "HOME="+home)
	cmd.Dir = home

	var stdout bytes.Buffer
	var stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	return stdout.String(), stderr.String(), err
}

func repoRoot(t *testing.T) string {
	t.Helper()

	wd, err := os.Getwd()
	require.NoError(t, err)
	return filepath.Clean(filepath.Join(wd, "..", ".."))
}

func writeConfigFixture(home, usersURL string) error {
	configDir := filepath.Join(home, ".carshare")
	if err := os.MkdirAll(configDir, 0o700); err != nil {
		return err
	}

	config := fmt.Sprintf(`[users]
base_url = "%s/api/v1"

[log]
level = "debug"
`, usersURL)

	return os.WriteFile(filepath.Join(configDir, "config.toml"), []byte(config), 0o600)
}
