package httpapi

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/bnema/carshare-cli/internal/domain"
	"github.com/bnema/carshare-cli/internal/ports"
)

type ReservationClient struct {
	*Client
}

var _ ports.ReservationAPI = (*ReservationClient)(nil)

func NewReservationClient(cfg Config) *ReservationClient {
	return &ReservationClient{Client: NewClient(cfg)}
}

type createReservationRequest struct {
	VehicleID int    `json:"vehicle_id"`
	UserID    int    `json:"user_id"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
}

type createReservationResponse struct {
	ReservationID int `json:"reservation_id" validate:"required,gt=0"`
}

type timeWindowRequest struct {
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
}

type userReservationPayload struct {
	ID        flexInt `json:"id" validate:"gte=0"`
	Vehicle   string  `json:"vehicle"`
	StartTime string  `json:"start_time"`
	EndTime   string  `json:"end_time"`
	Status    string  `json:"status"`
}

func (c *ReservationClient) AvailableVehicles(ctx context.Context, window domain.TimeWindow) ([]domain.Vehicle, error) {
	query := url.Values{}
	query.Set("start_time", window.Start)
	query.Set("end_time", window.End)

	var payload []vehiclePayload
	if err := c.do(ctx, http.MethodGet, "/api/v1/vehicles/available", query, nil, &payload); err != nil {
		return nil, err
	}

	return vehiclesFromPayload(c.Client, payload)
}

func (c *ReservationClient) Create(ctx context.Context, req domain.ReservationRequest) (domain.ReservationID, error) {
	var response createReservationResponse
	err := c.do(ctx, http.MethodPost, "/reservations", nil, createReservationRequest{
		VehicleID: int(req.VehicleID),
		UserID:    int(req.UserID),
		StartTime: req.Window.Start,
		EndTime:   req.Window.End,
	}, &response)
	if err != nil {
		return 0, err
	}
	if err := c.validateStruct(response); err != nil {
		return 0, err
	}

	return domain.ReservationID(response.ReservationID), nil
}

func (c *ReservationClient) Modify(ctx context.Context, id domain.ReservationID, window domain.TimeWindow) error {
	return c.expectJSON(ctx, http.MethodPut, idPath("/reservations", int(id)), timeWindowRequest{
		StartTime: window.Start,
		EndTime:   window.End,
	})
}

func (c *ReservationClient) Cancel(ctx context.Context, id domain.ReservationID) error {
	return c.do(ctx, http.MethodDelete, idPath("/reservations", int(id)), nil, nil, nil)
}

func (c *ReservationClient) ListByUser(ctx context.Context, userID domain.UserID) ([]domain.UserReservation, error) {
	query := url.Values{}
	query.Set("user_id", strconv.Itoa(int(userID)))

	var payload []userReservationPayload
	if err := c.do(ctx, http.MethodGet, "/api/reservations", query, nil, &payload); err != nil {
		return nil, err
	}
	if err := validateEach(c.Client, payload); err != nil {
		return nil, err
	}

	reservations := make([]domain.UserReservation, 0, len(payload))
	for _, entry := range payload {
		reservations = append(reservations, domain.UserReservation{
			ID:      domain.ReservationID(entry.ID),
			Vehicle: entry.Vehicle,
			Window:  domain.TimeWindow{Start: entry.StartTime, End: entry.EndTime},
			Status:  entry.Status,
		})
	}

	return reservations, nil
}
