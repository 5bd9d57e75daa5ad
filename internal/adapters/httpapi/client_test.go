package httpapi

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/bnema/carshare-cli/internal/domain"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClientNonSuccessStatusIsUnexpectedStatus(t *testing.T) {
	backend, server := newFakeBackend(t)
	backend.handle("/billings/{id}", http.MethodGet, http.StatusNotFound, "Billing not found\n")

	client := NewBillingClient(Config{BaseURL: server.URL})
	_, err := client.GetBilling(context.Background(), 9)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrUnexpectedStatus)
	assert.Contains(t, err.Error(), "status 404: Billing not found")
}

func TestClientServerErrorIsNotDistinguishedFromNotFound(t *testing.T) {
	backend, server := newFakeBackend(t)
	backend.handle("/billings/{id}", http.MethodGet, http.StatusInternalServerError, "boom")

	client := NewBillingClient(Config{BaseURL: server.URL})
	_, err := client.GetBilling(context.Background(), 9)

	assert.ErrorIs(t, err, domain.ErrUnexpectedStatus)
}

func TestClientNonJSONBodyIsInvalidResponse(t *testing.T) {
	backend, server := newFakeBackend(t)
	backend.handle("/vehicles", http.MethodGet, http.StatusOK, "<html>oops</html>")

	client := NewVehicleClient(Config{BaseURL: server.URL})
	_, err := client.List(context.Background())

	assert.ErrorIs(t, err, domain.ErrInvalidResponse)
}

func TestClientTransportFailure(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	baseURL := server.URL
	server.Close()

	client := NewVehicleClient(Config{BaseURL: baseURL})
	_, err := client.List(context.Background())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "perform request")
	assert.NotErrorIs(t, err, domain.ErrUnexpectedStatus)
}

func TestClientHonorsCanceledContext(t *testing.T) {
	backend, server := newFakeBackend(t)
	backend.handle("/vehicles", http.MethodGet, http.StatusOK, "[]")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	client := NewVehicleClient(Config{BaseURL: server.URL})
	_, err := client.List(ctx)

	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, backend.recorded())
}

func TestClientSetsHeaders(t *testing.T) {
	backend, server := newFakeBackend(t)
	backend.handle("/vehicles", http.MethodPost, http.StatusCreated, `{"id":5}`)
	backend.handle("/vehicles", http.MethodGet, http.StatusOK, `[]`)

	client := NewVehicleClient(Config{BaseURL: server.URL + "/"})
	require.NoError(t, client.Create(context.Background(), domain.VehicleInput{Make: "Tesla", Model: "3"}))
	_, err := client.List(context.Background())
	require.NoError(t, err)

	requests := backend.recorded()
	require.Len(t, requests, 2)

	post := requests[0]
	assert.Equal(t, "application/json", post.Header.Get("Content-Type"))
	assert.Equal(t, "application/json", post.Header.Get("Accept"))
	_, err = uuid.Parse(post.Header.Get("X-Request-Id"))
	assert.NoError(t, err)

	get := requests[1]
	assert.Empty(t, get.Header.Get("Content-Type"))
	assert.Empty(t, get.Body)
	assert.NotEqual(t, post.Header.Get("X-Request-Id"), get.Header.Get("X-Request-Id"))
}

func TestFlexIntAcceptsNumbersAndNumericStrings(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    flexInt
		wantErr bool
	}{
		{name: "number", input: `{"id":42}`, want: 42},
		{name: "string", input: `{"id":"42"}`, want: 42},
		{name: "empty string", input: `{"id":""}`, want: 0},
		{name: "null", input: `{"id":null}`, want: 0},
		{name: "missing", input: `{}`, want: 0},
		{name: "word", input: `{"id":"abc"}`, wantErr: true},
		{name: "float", input: `{"id":4.5}`, wantErr: true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var payload struct {
				ID flexInt `json:"id"`
			}
			err := json.Unmarshal([]byte(tc.input), &payload)
			if tc.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, payload.ID)
		})
	}
}
