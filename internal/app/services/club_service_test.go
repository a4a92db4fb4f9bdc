package services

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arivera/clubchat/internal/app/gateway"
	"github.com/arivera/clubchat/internal/app/models/dto"
	"github.com/arivera/clubchat/internal/pkg/apperrors"
)

func TestClubServiceGetClubs(t *testing.T) {
	gw := newTestGateway(t)
	svc := NewClubService(gw, zerolog.Nop())

	response, err := svc.GetClubs(testCtx("user-1"))
	require.NoError(t, err)
	assert.Len(t, response.Clubs, 2)
}

func TestClubServiceSearchClubs(t *testing.T) {
	gw := newTestGateway(t)
	svc := NewClubService(gw, zerolog.Nop())

	t.Run("query matches name", func(t *testing.T) {
		response, err := svc.SearchClubs(testCtx("user-1"), &dto.SearchClubsRequest{Query: "  Tech "})
		require.NoError(t, err)
		require.Len(t, response.Clubs, 1)
		assert.Equal(t, "club-1", response.Clubs[0].ID)
	})

	t.Run("privacy filter narrows results", func(t *testing.T) {
		response, err := svc.SearchClubs(testCtx("user-1"), &dto.SearchClubsRequest{Privacy: "private"})
		require.NoError(t, err)
		require.Len(t, response.Clubs, 1)
		assert.Equal(t, "club-2", response.Clubs[0].ID)
	})
}

func TestClubServiceJoinClub(t *testing.T) {
	gw := newTestGateway(t)
	svc := NewClubService(gw, zerolog.Nop())

	club, err := svc.JoinClub(testCtx("user-2"), "club-2")
	require.NoError(t, err)
	assert.Equal(t, 2, club.MemberCount)

	club, err = svc.JoinClub(testCtx("user-2"), "club-2")
	require.NoError(t, err)
	assert.Equal(t, 2, club.MemberCount, "joining twice never double-counts")
}

func TestClubServiceGetClubByID(t *testing.T) {
	gw := newTestGateway(t)
	svc := NewClubService(gw, zerolog.Nop())

	club, err := svc.GetClubByID(testCtx("user-1"), "club-1")
	require.NoError(t, err)
	assert.Equal(t, "Tech Innovators", club.Name)

	_, err = svc.GetClubByID(testCtx("user-1"), "club-99")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestEventServiceGetEvents(t *testing.T) {
	gw := newTestGateway(t)
	svc := NewEventService(gw, zerolog.Nop())

	t.Run("filter by derived status", func(t *testing.T) {
		response, err := svc.GetEvents(testCtx("user-1"), gateway.EventFilterActive)
		require.NoError(t, err)
		require.Len(t, response.Events, 1)
		assert.Equal(t, "event-1", response.Events[0].ID)
		assert.Equal(t, "active", response.Events[0].Status)
	})

	t.Run("empty filter defaults to all", func(t *testing.T) {
		response, err := svc.GetEvents(testCtx("user-1"), "")
		require.NoError(t, err)
		assert.Len(t, response.Events, 2)
	})

	t.Run("unknown filter is rejected", func(t *testing.T) {
		_, err := svc.GetEvents(testCtx("user-1"), "upcoming")
		assert.ErrorIs(t, err, apperrors.ErrValidation)
	})
}
