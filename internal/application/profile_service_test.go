package application

import (
	"context"
	"errors"
	"testing"

	"github.com/bnema/carshare-cli/internal/adapters/session/memory"
	"github.com/bnema/carshare-cli/internal/domain"
	"github.com/bnema/carshare-cli/internal/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestProfileServiceLoad(t *testing.T) {
	users := mocks.NewMockUserAPI(t)
	session := memory.NewStore()
	require.NoError(t, session.Set(context.Background(), "42"))
	service := NewProfileService(users, session, nil)

	want := domain.User{ID: 42, Name: "Ann", Email: "a@b.com", MembershipTier: domain.MembershipVIP}
	users.EXPECT().GetUser(mock.Anything, domain.UserID(42)).Return(want, nil).Once()

	got, err := service.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestProfileServiceLoadWithoutValidSessionMakesNoRequest(t *testing.T) {
	tests := []struct {
		name  string
		setup func(*memory.Store)
	}{
		{name: "absent", setup: func(*memory.Store) {}},
		{name: "empty", setup: func(s *memory.Store) { _ = s.Set(context.Background(), "") }},
		{name: "non numeric", setup: func(s *memory.Store) { _ = s.Set(context.Background(), "abc") }},
		{name: "null string", setup: func(s *memory.Store) { _ = s.Set(context.Background(), "null") }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			users := mocks.NewMockUserAPI(t)
			session := memory.NewStore()
			tc.setup(session)
			service := NewProfileService(users, session, nil)

			_, err := service.Load(context.Background())
			requireActionMessage(t, err, MsgNoUserRedirect)
			assert.ErrorIs(t, err, domain.ErrNotLoggedIn)
			users.AssertNotCalled(t, "GetUser", mock.Anything, mock.Anything)
		})
	}
}

func TestProfileServiceLoadFailure(t *testing.T) {
	users := mocks.NewMockUserAPI(t)
	session := memory.NewStore()
	require.NoError(t, session.Set(context.Background(), "42"))
	service := NewProfileService(users, session, nil)

	users.EXPECT().GetUser(mock.Anything, domain.UserID(42)).Return(domain.User{}, errConnRefused).Once()

	_, err := service.Load(context.Background())
	requireActionMessage(t, err, MsgProfileLoadFailed)
}

func TestProfileServiceUpdate(t *testing.T) {
	users := mocks.NewMockUserAPI(t)
	session := memory.NewStore()
	require.NoError(t, session.Set(context.Background(), "42"))
	service := NewProfileService(users, session, nil)

	input := domain.UserInput{Name: "Ann", Email: "a@b.com", Password: "pw", MembershipTier: domain.MembershipPremium}
	users.EXPECT().UpdateUser(mock.Anything, domain.UserID(42), input).Return(nil).Once()

	msg, err := service.Update(context.Background(), input)
	require.NoError(t, err)
	assert.Equal(t, MsgProfileUpdated, msg)
}

func TestProfileServiceUpdateFailure(t *testing.T) {
	users := mocks.NewMockUserAPI(t)
	session := memory.NewStore()
	require.NoError(t, session.Set(context.Background(), "42"))
	service := NewProfileService(users, session, nil)

	input := domain.UserInput{Name: "Ann"}
	users.EXPECT().UpdateUser(mock.Anything, domain.UserID(42), input).Return(errors.New("boom")).Once()

	_, err := service.Update(context.Background(), input)
	requireActionMessage(t, err, MsgProfileUpdateFailed)
}

func TestProfileServiceTreatsUnreadableSessionAsLoggedOut(t *testing.T) {
	users := mocks.NewMockUserAPI(t)
	session := mocks.NewMockSessionStore(t)
	log, buf := newTestLogger()
	service := NewProfileService(users, session, log)

	session.EXPECT().Get(mock.Anything).Return("", errors.New("decode session file")).Once()

	_, err := service.Load(context.Background())
	requireActionMessage(t, err, MsgNoUserRedirect)
	assert.Contains(t, buf.String(), "read session failed")
}
