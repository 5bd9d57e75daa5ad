package httpapi

import (
	"context"
	"net/http"
	"net/url"
	"testing"

	"github.com/bnema/carshare-cli/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReservationClientAvailableVehiclesSendsWindow(t *testing.T) {
	backend, server := newFakeBackend(t)
	backend.handle("/api/v1/vehicles/available", http.MethodGet, http.StatusOK, `[{"id":1,"make":"Toyota","model":"Prius"}]`)

	client := NewReservationClient(Config{BaseURL: server.URL})
	vehicles, err := client.AvailableVehicles(context.Background(), domain.TimeWindow{
		Start: "2024-05-01T10:00",
		End:   "2024-05-01T12:00",
	})

	require.NoError(t, err)
	require.Len(t, vehicles, 1)

	query, err := url.ParseQuery(backend.only(t).Query)
	require.NoError(t, err)
	assert.Equal(t, "2024-05-01T10:00", query.Get("start_time"))
	assert.Equal(t, "2024-05-01T12:00", query.Get("end_time"))
}

func TestReservationClientCreate(t *testing.T) {
	backend, server := newFakeBackend(t)
	backend.handle("/reservations", http.MethodPost, http.StatusCreated, `{"reservation_id":11}`)

	client := NewReservationClient(Config{BaseURL: server.URL})
	id, err := client.Create(context.Background(), domain.ReservationRequest{
		VehicleID: 3,
		UserID:    42,
		Window:    domain.TimeWindow{Start: "2024-05-01 10:00:00", End: "2024-05-01 12:00:00"},
	})

	require.NoError(t, err)
	assert.Equal(t, domain.ReservationID(11), id)
	assert.Equal(t, map[string]any{
		"vehicle_id": float64(3),
		"user_id":    float64(42),
		"start_time": "2024-05-01 10:00:00",
		"end_time":   "2024-05-01 12:00:00",
	}, decodeBody(t, backend.only(t).Body))
}

func TestReservationClientCreateConflict(t *testing.T) {
	backend, server := newFakeBackend(t)
	backend.handle("/reservations", http.MethodPost, http.StatusConflict, "Vehicle is not available for the requested time")

	client := NewReservationClient(Config{BaseURL: server.URL})
	_, err := client.Create(context.Background(), domain.ReservationRequest{VehicleID: 3, UserID: 42})

	assert.ErrorIs(t, err, domain.ErrUnexpectedStatus)
	assert.Contains(t, err.Error(), "status 409")
}

func TestReservationClientModify(t *testing.T) {
	backend, server := newFakeBackend(t)
	backend.handle("/reservations/{id}", http.MethodPut, http.StatusOK, `{"message":"Reservation updated successfully"}`)

	client := NewReservationClient(Config{BaseURL: server.URL})
	err := client.Modify(context.Background(), 8, domain.TimeWindow{Start: "a", End: "b"})

	require.NoError(t, err)
	request := backend.only(t)
	assert.Equal(t, "/reservations/8", request.Path)
	assert.Equal(t, map[string]any{"start_time": "a", "end_time": "b"}, decodeBody(t, request.Body))
}

func TestReservationClientCancel(t *testing.T) {
	backend, server := newFakeBackend(t)
	backend.handle("/reservations/{id}", http.MethodDelete, http.StatusOK, "")

	client := NewReservationClient(Config{BaseURL: server.URL})
	require.NoError(t, client.Cancel(context.Background(), 8))

	request := backend.only(t)
	assert.Equal(t, "/reservations/8", request.Path)
	assert.Empty(t, request.Body)
}

func TestReservationClientListByUser(t *testing.T) {
	backend, server := newFakeBackend(t)
	backend.handle("/api/reservations", http.MethodGet, http.StatusOK, `[
		{"id":5,"vehicle":"Toyota Prius","start_time":"2024-05-01 10:00:00","end_time":"2024-05-01 12:00:00","status":"Active"}
	]`)

	client := NewReservationClient(Config{BaseURL: server.URL})
	reservations, err := client.ListByUser(context.Background(), 42)

	require.NoError(t, err)
	assert.Equal(t, []domain.UserReservation{{
		ID:      5,
		Vehicle: "Toyota Prius",
		Window:  domain.TimeWindow{Start: "2024-05-01 10:00:00", End: "2024-05-01 12:00:00"},
		Status:  "Active",
	}}, reservations)
	assert.Equal(t, "user_id=42", backend.only(t).Query)
}
