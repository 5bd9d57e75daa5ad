package httpapi

import (
	"context"
	"net/http"
	"testing"

	"github.com/bnema/carshare-cli/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserClientLogin(t *testing.T) {
	backend, server := newFakeBackend(t)
	backend.handle("/api/v1/login", http.MethodPost, http.StatusOK, `{"id":42,"name":"Ann","email":"a@b.com"}`)

	client := NewUserClient(Config{BaseURL: server.URL + "/api/v1"})
	id, err := client.Login(context.Background(), domain.Credentials{Email: "a@b.com", Password: "x"})

	require.NoError(t, err)
	assert.Equal(t, domain.UserID(42), id)

	request := backend.only(t)
	assert.Equal(t, map[string]any{"email": "a@b.com", "password": "x"}, decodeBody(t, request.Body))
}

func TestUserClientLoginRejectsNonNumericID(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "missing", body: `{"name":"Ann"}`},
		{name: "string", body: `{"id":"42"}`},
		{name: "zero", body: `{"id":0}`},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			backend, server := newFakeBackend(t)
			backend.handle("/login", http.MethodPost, http.StatusOK, tc.body)

			client := NewUserClient(Config{BaseURL: server.URL})
			_, err := client.Login(context.Background(), domain.Credentials{Email: "a@b.com", Password: "x"})
			assert.ErrorIs(t, err, domain.ErrInvalidResponse)
		})
	}
}

func TestUserClientLoginUnauthorized(t *testing.T) {
	backend, server := newFakeBackend(t)
	backend.handle("/login", http.MethodPost, http.StatusUnauthorized, "Invalid email or password")

	client := NewUserClient(Config{BaseURL: server.URL})
	_, err := client.Login(context.Background(), domain.Credentials{Email: "a@b.com", Password: "bad"})

	assert.ErrorIs(t, err, domain.ErrUnexpectedStatus)
}

func TestUserClientGetUserAcceptsStringID(t *testing.T) {
	backend, server := newFakeBackend(t)
	backend.handle("/users/{id}", http.MethodGet, http.StatusOK, `{"id":"7","name":"Ann","email":"a@b.com","membership_tier":"VIP"}`)

	client := NewUserClient(Config{BaseURL: server.URL})
	user, err := client.GetUser(context.Background(), 7)

	require.NoError(t, err)
	assert.Equal(t, domain.User{ID: 7, Name: "Ann", Email: "a@b.com", MembershipTier: domain.MembershipVIP}, user)
	assert.Equal(t, "7", backend.only(t).RouteVars["id"])
}

func TestUserClientListUsers(t *testing.T) {
	backend, server := newFakeBackend(t)
	backend.handle("/users", http.MethodGet, http.StatusOK, `[
		{"id":"1","name":"Ann","email":"a@b.com","membership_tier":"Basic"},
		{"id":2,"name":"Bob","email":"b@b.com","membership_tier":"Premium"}
	]`)

	client := NewUserClient(Config{BaseURL: server.URL})
	users, err := client.ListUsers(context.Background())

	require.NoError(t, err)
	require.Len(t, users, 2)
	assert.Equal(t, domain.UserID(1), users[0].ID)
	assert.Equal(t, "Bob", users[1].Name)
}

func TestUserClientCreateUserSendsIDAsString(t *testing.T) {
	backend, server := newFakeBackend(t)
	backend.handle("/users", http.MethodPost, http.StatusCreated, `{"id":"5"}`)

	client := NewUserClient(Config{BaseURL: server.URL})
	err := client.CreateUser(context.Background(), domain.UserInput{
		ID:             5,
		Name:           "Ann",
		Email:          "a@b.com",
		Password:       "pw",
		MembershipTier: domain.MembershipBasic,
	})
	require.NoError(t, err)

	assert.Equal(t, map[string]any{
		"id":              "5",
		"name":            "Ann",
		"email":           "a@b.com",
		"password":        "pw",
		"membership_tier": "Basic",
	}, decodeBody(t, backend.only(t).Body))
}

func TestUserClientCreateUserOmitsUnsetID(t *testing.T) {
	backend, server := newFakeBackend(t)
	backend.handle("/users", http.MethodPost, http.StatusCreated, `{}`)

	client := NewUserClient(Config{BaseURL: server.URL})
	require.NoError(t, client.CreateUser(context.Background(), domain.UserInput{Name: "Ann"}))

	assert.NotContains(t, decodeBody(t, backend.only(t).Body), "id")
}

func TestUserClientUpdateUser(t *testing.T) {
	backend, server := newFakeBackend(t)
	backend.handle("/users/{id}", http.MethodPut, http.StatusOK, `{"message":"ok"}`)

	client := NewUserClient(Config{BaseURL: server.URL})
	err := client.UpdateUser(context.Background(), 3, domain.UserInput{
		Name:           "Ann",
		Email:          "a@b.com",
		Password:       "",
		MembershipTier: domain.MembershipPremium,
	})
	require.NoError(t, err)

	request := backend.only(t)
	assert.Equal(t, "/users/3", request.Path)
	assert.Equal(t, map[string]any{
		"name":            "Ann",
		"email":           "a@b.com",
		"password":        "",
		"membership_tier": "Premium",
	}, decodeBody(t, request.Body))
}

func TestUserClientUpdateUserRequiresJSONResponse(t *testing.T) {
	backend, server := newFakeBackend(t)
	backend.handle("/users/{id}", http.MethodPut, http.StatusOK, "User updated")

	client := NewUserClient(Config{BaseURL: server.URL})
	err := client.UpdateUser(context.Background(), 3, domain.UserInput{Name: "Ann"})
	assert.ErrorIs(t, err, domain.ErrInvalidResponse)
}

func TestUserClientDeleteUserSendsNoBody(t *testing.T) {
	backend, server := newFakeBackend(t)
	backend.handle("/users/{id}", http.MethodDelete, http.StatusNoContent, "")

	client := NewUserClient(Config{BaseURL: server.URL})
	require.NoError(t, client.DeleteUser(context.Background(), 3))

	request := backend.only(t)
	assert.Equal(t, http.MethodDelete, request.Method)
	assert.Empty(t, request.Body)
}
