package httpapi

import (
	"context"
	"net/http"

	"github.com/bnema/carshare-cli/internal/domain"
	"github.com/bnema/carshare-cli/internal/ports"
)

type VehicleClient struct {
	*Client
}

var _ ports.VehicleAPI = (*VehicleClient)(nil)

func NewVehicleClient(cfg Config) *VehicleClient {
	return &VehicleClient{Client: NewClient(cfg)}
}

type vehiclePayload struct {
	ID           flexInt `json:"id" validate:"gte=0"`
	Make         string  `json:"make"`
	Model        string  `json:"model"`
	Availability bool    `json:"availability"`
}

type vehicleWriteRequest struct {
	Make         string `json:"make"`
	Model        string `json:"model"`
	Availability bool   `json:"availability"`
}

func (c *VehicleClient) List(ctx context.Context) ([]domain.Vehicle, error) {
	return c.list(ctx, "/vehicles")
}

func (c *VehicleClient) ListAvailable(ctx context.Context) ([]domain.Vehicle, error) {
	return c.list(ctx, "/api/v1/vehicles/available")
}

func (c *VehicleClient) Get(ctx context.Context, id domain.VehicleID) (domain.Vehicle, error) {
	var payload vehiclePayload
	if err := c.do(ctx, http.MethodGet, idPath("/vehicles", int(id)), nil, nil, &payload); err != nil {
		return domain.Vehicle{}, err
	}
	if err := c.validateStruct(payload); err != nil {
		return domain.Vehicle{}, err
	}

	return payload.toDomain(), nil
}

func (c *VehicleClient) Create(ctx context.Context, input domain.VehicleInput) error {
	return c.expectJSON(ctx, http.MethodPost, "/vehicles", toVehicleWriteRequest(input))
}

func (c *VehicleClient) Update(ctx context.Context, id domain.VehicleID, input domain.VehicleInput) error {
	return c.do(ctx, http.MethodPut, idPath("/vehicles", int(id)), nil, toVehicleWriteRequest(input), nil)
}

func (c *VehicleClient) Delete(ctx context.Context, id domain.VehicleID) error {
	return c.do(ctx, http.MethodDelete, idPath("/vehicles", int(id)), nil, nil, nil)
}

func (c *VehicleClient) list(ctx context.Context, path string) ([]domain.Vehicle, error) {
	var payload []vehiclePayload
	if err := c.do(ctx, http.MethodGet, path, nil, nil, &payload); err != nil {
		return nil, err
	}

	return vehiclesFromPayload(c.Client, payload)
}

func vehiclesFromPayload(c *Client, payload []vehiclePayload) ([]domain.Vehicle, error) {
	if err := validateEach(c, payload); err != nil {
		return nil, err
	}

	vehicles := make([]domain.Vehicle, 0, len(payload))
	for _, entry := range payload {
		vehicles = append(vehicles, entry.toDomain())
	}

	return vehicles, nil
}

func toVehicleWriteRequest(input domain.VehicleInput) vehicleWriteRequest {
	return vehicleWriteRequest{
		Make:         input.Make,
		Model:        input.Model,
		Availability: input.Availability,
	}
}

func (p vehiclePayload) toDomain() domain.Vehicle {
	return domain.Vehicle{
		ID:           domain.VehicleID(p.ID),
		Make:         p.Make,
		Model:        p.Model,
		Availability: p.Availability,
	}
}
