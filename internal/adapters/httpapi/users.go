package httpapi

import (
	"context"
	"net/http"
	"strconv"

	"github.com/bnema/carshare-cli/internal/domain"
	"github.com/bnema/carshare-cli/internal/ports"
)

type UserClient struct {
	*Client
}

var _ ports.UserAPI = (*UserClient)(nil)

func NewUserClient(cfg Config) *UserClient {
	return &UserClient{Client: NewClient(cfg)}
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	ID int `json:"id" validate:"required,gt=0"`
}

type userPayload struct {
	ID             flexInt `json:"id" validate:"gte=0"`
	Name           string  `json:"name"`
	Email          string  `json:"email"`
	MembershipTier string  `json:"membership_tier"`
}

type createUserRequest struct {
	ID             string `json:"id,omitempty"`
	Name           string `json:"name"`
	Email          string `json:"email"`
	Password       string `json:"password"`
	MembershipTier string `json:"membership_tier"`
}

type updateUserRequest struct {
	Name           string `json:"name"`
	Email          string `json:"email"`
	Password       string `json:"password"`
	MembershipTier string `json:"membership_tier"`
}

func (c *UserClient) Login(ctx context.Context, credentials domain.Credentials) (domain.UserID, error) {
	var response loginResponse
	err := c.do(ctx, http.MethodPost, "/login", nil, loginRequest{
		Email:    credentials.Email,
		Password: credentials.Password,
	}, &response)
	if err != nil {
		return 0, err
	}
	if err := c.validateStruct(response); err != nil {
		return 0, err
	}

	return domain.UserID(response.ID), nil
}

func (c *UserClient) GetUser(ctx context.Context, id domain.UserID) (domain.User, error) {
	var payload userPayload
	if err := c.do(ctx, http.MethodGet, idPath("/users", int(id)), nil, nil, &payload); err != nil {
		return domain.User{}, err
	}
	if err := c.validateStruct(payload); err != nil {
		return domain.User{}, err
	}

	return payload.toDomain(), nil
}

func (c *UserClient) ListUsers(ctx context.Context) ([]domain.User, error) {
	var payload []userPayload
	if err := c.do(ctx, http.MethodGet, "/users", nil, nil, &payload); err != nil {
		return nil, err
	}
	if err := validateEach(c.Client, payload); err != nil {
		return nil, err
	}

	users := make([]domain.User, 0, len(payload))
	for _, entry := range payload {
		users = append(users, entry.toDomain())
	}

	return users, nil
}

func (c *UserClient) CreateUser(ctx context.Context, input domain.UserInput) error {
	request := createUserRequest{
		Name:           input.Name,
		Email:          input.Email,
		Password:       input.Password,
		MembershipTier: string(input.MembershipTier),
	}
	if input.ID > 0 {
		request.ID = strconv.Itoa(int(input.ID))
	}

	return c.expectJSON(ctx, http.MethodPost, "/users", request)
}

func (c *UserClient) UpdateUser(ctx context.Context, id domain.UserID, input domain.UserInput) error {
	return c.expectJSON(ctx, http.MethodPut, idPath("/users", int(id)), updateUserRequest{
		Name:           input.Name,
		Email:          input.Email,
		Password:       input.Password,
		MembershipTier: string(input.MembershipTier),
	})
}

func (c *UserClient) DeleteUser(ctx context.Context, id domain.UserID) error {
	return c.do(ctx, http.MethodDelete, idPath("/users", int(id)), nil, nil, nil)
}

func (p userPayload) toDomain() domain.User {
	return domain.User{
		ID:             domain.UserID(p.ID),
		Name:           p.Name,
		Email:          p.Email,
		MembershipTier: domain.MembershipTier(p.MembershipTier),
	}
}
