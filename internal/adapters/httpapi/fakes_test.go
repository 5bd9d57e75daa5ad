package httpapi

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/require"
)

type recordedRequest struct {
	Method    string
	Path      string
	Query     string
	Body      string
	Header    http.Header
	RouteVars map[string]string
}

// fakeBackend routes requests the way the real services do and records every
// request it receives.
type fakeBackend struct {
	router   *mux.Router
	mu       sync.Mutex
	requests []recordedRequest
}

func newFakeBackend(t *testing.T) (*fakeBackend, *httptest.Server) {
	t.Helper()

	backend := &fakeBackend{router: mux.NewRouter()}
	server := httptest.NewServer(backend)
	t.Cleanup(server.Close)

	return backend, server
}

func (b *fakeBackend) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	b.router.ServeHTTP(w, r)
}

func (b *fakeBackend) handle(path, method string, status int, body string) {
	b.router.HandleFunc(path, func(w http.ResponseWriter, r *http.Request) {
		data, _ := io.ReadAll(r.Body)
		b.mu.Lock()
		b.requests = append(b.requests, recordedRequest{
			Method:    r.Method,
			Path:      r.URL.Path,
			Query:     r.URL.RawQuery,
			Body:      string(data),
			Header:    r.Header.Clone(),
			RouteVars: mux.Vars(r),
		})
		b.mu.Unlock()

		if body != "" {
			w.Header().Set("Content-Type", "application/json")
		}
		w.WriteHeader(status)
		_, _ = io.WriteString(w, body)
	}).Methods(method)
}

func (b *fakeBackend) recorded() []recordedRequest {
	b.mu.Lock()
	defer b.mu.Unlock()

	return append([]recordedRequest(nil), b.requests...)
}

func (b *fakeBackend) only(t *testing.T) recordedRequest {
	t.Helper()

	requests := b.recorded()
	require.Len(t, requests, 1)
	return requests[0]
}

func decodeBody(t *testing.T, body string) map[string]any {
	t.Helper()

	var decoded map[string]any
	require.NoError(t, json.Unmarshal([]byte(body), &decoded))
	return decoded
}
