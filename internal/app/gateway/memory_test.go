package gateway

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arivera/clubchat/internal/app/models"
	"github.com/arivera/clubchat/internal/pkg/apperrors"
)

var testNow = time.Date(2024, 1, 16, 12, 0, 0, 0, time.UTC)

func newTestMemory(t *testing.T) *Memory {
	t.Helper()

	m := NewMemory(zerolog.Nop()).WithClock(func() time.Time { return testNow })

	m.SeedUser(models.User{ID: "user-1", Email: "alex@example.com", DisplayName: "Alex"})
	m.SeedUser(models.User{ID: "user-2", Email: "sarah@example.com", DisplayName: "Sarah"})

	m.SeedClub(models.Club{
		ID:          "club-1",
		Name:        "Tech Innovators",
		Description: "A community for developers",
		Privacy:     models.ClubPrivacyPublic,
		OwnerID:     "user-2",
		MemberCount: 2,
	}, "user-1", "user-2")
	m.SeedClub(models.Club{
		ID:          "club-2",
		Name:        "Design Masters",
		Description: "Where creativity meets excellence",
		Privacy:     models.ClubPrivacyPrivate,
		OwnerID:     "user-1",
		MemberCount: 1,
	}, "user-1")

	m.SeedMessage(models.Message{
		ID:        "msg-1",
		ClubID:    "club-1",
		SenderID:  "user-2",
		Type:      models.MessageTypeText,
		Content:   "hello",
		CreatedAt: testNow.Add(-time.Hour),
	})

	m.SeedPoll(models.Poll{
		ID:       "poll-1",
		ClubID:   "club-1",
		Question: "Favourite language?",
		Options: []models.PollOption{
			{ID: "opt-1", Text: "TypeScript", Votes: 42},
			{ID: "opt-2", Text: "Python", Votes: 38},
			{ID: "opt-3", Text: "Rust", Votes: 15},
			{ID: "opt-4", Text: "Go", Votes: 22},
		},
	})

	m.SeedEvent(models.Event{
		ID:       "event-1",
		ClubID:   "club-1",
		Title:    "Meetup",
		StartsAt: testNow.Add(24 * time.Hour),
		EndsAt:   testNow.Add(27 * time.Hour),
	})
	m.SeedEvent(models.Event{
		ID:       "event-2",
		ClubID:   "club-1",
		Title:    "Hackathon",
		StartsAt: testNow.Add(-48 * time.Hour),
		EndsAt:   testNow.Add(-24 * time.Hour),
	})

	m.SeedForm(models.Form{
		ID:     "form-1",
		ClubID: "club-1",
		Title:  "Feedback",
		Questions: []models.FormQuestion{
			{ID: "q-1", Type: models.FormQuestionRating, Question: "Rate it", Required: true},
		},
	})

	return m
}

func TestVotePoll(t *testing.T) {
	ctx := context.Background()

	t.Run("first vote increments one option and the total", func(t *testing.T) {
		m := newTestMemory(t)

		poll, err := m.VotePoll(ctx, "poll-1", "opt-4", "user-1")
		require.NoError(t, err)

		assert.Equal(t, 23, poll.Options[3].Votes)
		assert.Equal(t, 118, poll.TotalVotes())
	})

	t.Run("changing a single-choice vote retracts the prior one", func(t *testing.T) {
		m := newTestMemory(t)

		_, err := m.VotePoll(ctx, "poll-1", "opt-4", "user-1")
		require.NoError(t, err)

		poll, err := m.VotePoll(ctx, "poll-1", "opt-1", "user-1")
		require.NoError(t, err)

		assert.Equal(t, 43, poll.Options[0].Votes, "new option gains the vote")
		assert.Equal(t, 22, poll.Options[3].Votes, "prior option returns to its baseline")
		assert.Equal(t, 118, poll.TotalVotes(), "total counts the user once")
	})

	t.Run("revoting the same option is a no-op", func(t *testing.T) {
		m := newTestMemory(t)

		_, err := m.VotePoll(ctx, "poll-1", "opt-2", "user-1")
		require.NoError(t, err)
		poll, err := m.VotePoll(ctx, "poll-1", "opt-2", "user-1")
		require.NoError(t, err)

		assert.Equal(t, 39, poll.Options[1].Votes)
		assert.Equal(t, 118, poll.TotalVotes())
	})

	t.Run("unknown option leaves all counts untouched", func(t *testing.T) {
		m := newTestMemory(t)

		_, err := m.VotePoll(ctx, "poll-1", "opt-99", "user-1")
		assert.ErrorIs(t, err, apperrors.ErrNotFound)

		poll, err := m.FetchPoll(ctx, "poll-1")
		require.NoError(t, err)
		assert.Equal(t, 117, poll.TotalVotes())
	})

	t.Run("unknown poll", func(t *testing.T) {
		m := newTestMemory(t)

		_, err := m.VotePoll(ctx, "poll-99", "opt-1", "user-1")
		assert.ErrorIs(t, err, apperrors.ErrNotFound)
	})

	t.Run("returned views are isolated from later votes", func(t *testing.T) {
		m := newTestMemory(t)

		before, err := m.FetchPoll(ctx, "poll-1")
		require.NoError(t, err)

		_, err = m.VotePoll(ctx, "poll-1", "opt-1", "user-1")
		require.NoError(t, err)

		assert.Equal(t, 42, before.Options[0].Votes, "earlier view keeps its counts")
	})
}

func TestRsvpEvent(t *testing.T) {
	ctx := context.Background()

	t.Run("rsvp adds the user to the tally", func(t *testing.T) {
		m := newTestMemory(t)

		event, err := m.RsvpEvent(ctx, "event-1", "user-1", models.RSVPGoing)
		require.NoError(t, err)
		assert.Equal(t, 1, event.Attendees.Going)
	})

	t.Run("a new response replaces the previous one", func(t *testing.T) {
		m := newTestMemory(t)

		_, err := m.RsvpEvent(ctx, "event-1", "user-1", models.RSVPGoing)
		require.NoError(t, err)

		event, err := m.RsvpEvent(ctx, "event-1", "user-1", models.RSVPMaybe)
		require.NoError(t, err)

		assert.Equal(t, 0, event.Attendees.Going)
		assert.Equal(t, 1, event.Attendees.Maybe)
	})

	t.Run("expired events reject rsvps", func(t *testing.T) {
		m := newTestMemory(t)

		_, err := m.RsvpEvent(ctx, "event-2", "user-1", models.RSVPGoing)
		assert.ErrorIs(t, err, apperrors.ErrInvalidState)
	})

	t.Run("status is derived from the clock", func(t *testing.T) {
		m := newTestMemory(t)

		event, err := m.FetchEvent(ctx, "event-2")
		require.NoError(t, err)
		assert.Equal(t, models.EventStatusExpired, event.Status(m.Now()))

		event, err = m.FetchEvent(ctx, "event-1")
		require.NoError(t, err)
		assert.Equal(t, models.EventStatusActive, event.Status(m.Now()))
	})
}

func TestFetchEventsFilter(t *testing.T) {
	ctx := context.Background()
	m := newTestMemory(t)

	all, err := m.FetchEvents(ctx, EventFilterAll)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	active, err := m.FetchEvents(ctx, EventFilterActive)
	require.NoError(t, err)
	require.Len(t, active, 1)
	assert.Equal(t, "event-1", active[0].ID)

	expired, err := m.FetchEvents(ctx, EventFilterExpired)
	require.NoError(t, err)
	require.Len(t, expired, 1)
	assert.Equal(t, "event-2", expired[0].ID)
}

func TestToggleReaction(t *testing.T) {
	ctx := context.Background()

	t.Run("toggle on, on again by another user, off", func(t *testing.T) {
		m := newTestMemory(t)

		msg, err := m.ToggleReaction(ctx, "msg-1", "👍", "user-1")
		require.NoError(t, err)
		require.Len(t, msg.Reactions, 1)
		assert.Equal(t, []string{"user-1"}, msg.Reactions[0].UserIDs)

		msg, err = m.ToggleReaction(ctx, "msg-1", "👍", "user-2")
		require.NoError(t, err)
		assert.Equal(t, []string{"user-1", "user-2"}, msg.Reactions[0].UserIDs)

		msg, err = m.ToggleReaction(ctx, "msg-1", "👍", "user-1")
		require.NoError(t, err)
		assert.Equal(t, []string{"user-2"}, msg.Reactions[0].UserIDs)
	})

	t.Run("removing the last reactor drops the emoji slot", func(t *testing.T) {
		m := newTestMemory(t)

		_, err := m.ToggleReaction(ctx, "msg-1", "🎉", "user-1")
		require.NoError(t, err)

		msg, err := m.ToggleReaction(ctx, "msg-1", "🎉", "user-1")
		require.NoError(t, err)
		assert.Empty(t, msg.Reactions)
	})
}

func TestSendMessage(t *testing.T) {
	ctx := context.Background()

	t.Run("stores the message and updates the club preview", func(t *testing.T) {
		m := newTestMemory(t)

		msg, err := m.SendMessage(ctx, SendMessageParams{
			ClubID:   "club-1",
			SenderID: "user-1",
			Type:     models.MessageTypeText,
			Content:  "a new message",
		})
		require.NoError(t, err)
		assert.NotEmpty(t, msg.ID)
		assert.Equal(t, testNow, msg.CreatedAt)

		club, err := m.FetchClub(ctx, "club-1")
		require.NoError(t, err)
		assert.Equal(t, "a new message", club.LastMessage)
		require.NotNil(t, club.LastMessageAt)
		assert.Equal(t, testNow, *club.LastMessageAt)
	})

	t.Run("referenced types require a payload id", func(t *testing.T) {
		m := newTestMemory(t)

		_, err := m.SendMessage(ctx, SendMessageParams{
			ClubID:   "club-1",
			SenderID: "user-1",
			Type:     models.MessageTypePoll,
			Content:  "poll without a poll",
		})
		assert.ErrorIs(t, err, apperrors.ErrValidation)
	})

	t.Run("reply target must exist", func(t *testing.T) {
		m := newTestMemory(t)

		_, err := m.SendMessage(ctx, SendMessageParams{
			ClubID:    "club-1",
			SenderID:  "user-1",
			Type:      models.MessageTypeText,
			Content:   "replying to nothing",
			ReplyToID: "msg-99",
		})
		assert.ErrorIs(t, err, apperrors.ErrNotFound)
	})

	t.Run("unknown club", func(t *testing.T) {
		m := newTestMemory(t)

		_, err := m.SendMessage(ctx, SendMessageParams{
			ClubID:   "club-99",
			SenderID: "user-1",
			Type:     models.MessageTypeText,
			Content:  "hello",
		})
		assert.ErrorIs(t, err, apperrors.ErrNotFound)
	})
}

func TestJoinClub(t *testing.T) {
	ctx := context.Background()

	t.Run("joining is idempotent", func(t *testing.T) {
		m := newTestMemory(t)

		club, err := m.JoinClub(ctx, "club-2", "user-2")
		require.NoError(t, err)
		assert.Equal(t, 2, club.MemberCount)

		club, err = m.JoinClub(ctx, "club-2", "user-2")
		require.NoError(t, err)
		assert.Equal(t, 2, club.MemberCount, "second join does not double-count")
	})

	t.Run("unknown user", func(t *testing.T) {
		m := newTestMemory(t)

		_, err := m.JoinClub(ctx, "club-1", "user-99")
		assert.ErrorIs(t, err, apperrors.ErrNotFound)
	})
}

func TestSearchClubs(t *testing.T) {
	ctx := context.Background()
	m := newTestMemory(t)

	t.Run("matches name case-insensitively", func(t *testing.T) {
		clubs, err := m.SearchClubs(ctx, "tech", SearchFilters{})
		require.NoError(t, err)
		require.Len(t, clubs, 1)
		assert.Equal(t, "club-1", clubs[0].ID)
	})

	t.Run("matches description", func(t *testing.T) {
		clubs, err := m.SearchClubs(ctx, "creativity", SearchFilters{})
		require.NoError(t, err)
		require.Len(t, clubs, 1)
		assert.Equal(t, "club-2", clubs[0].ID)
	})

	t.Run("privacy filter", func(t *testing.T) {
		private := models.ClubPrivacyPrivate
		clubs, err := m.SearchClubs(ctx, "", SearchFilters{Privacy: &private})
		require.NoError(t, err)
		require.Len(t, clubs, 1)
		assert.Equal(t, "club-2", clubs[0].ID)
	})

	t.Run("no match", func(t *testing.T) {
		clubs, err := m.SearchClubs(ctx, "chess", SearchFilters{})
		require.NoError(t, err)
		assert.Empty(t, clubs)
	})
}

func TestSubmitFormResponse(t *testing.T) {
	ctx := context.Background()

	t.Run("each response raises the count", func(t *testing.T) {
		m := newTestMemory(t)

		form, err := m.SubmitFormResponse(ctx, "form-1", "user-1", []models.FormAnswer{
			{QuestionID: "q-1", Value: "5"},
		})
		require.NoError(t, err)
		assert.Equal(t, 1, form.ResponseCount)

		form, err = m.SubmitFormResponse(ctx, "form-1", "user-2", []models.FormAnswer{
			{QuestionID: "q-1", Value: "4"},
		})
		require.NoError(t, err)
		assert.Equal(t, 2, form.ResponseCount)
	})

	t.Run("responses stack on the seeded baseline count", func(t *testing.T) {
		m := newTestMemory(t)
		m.SeedForm(models.Form{
			ID:            "form-2",
			ClubID:        "club-1",
			Title:         "Semester survey",
			ResponseCount: 42,
			Questions: []models.FormQuestion{
				{ID: "q-1", Type: models.FormQuestionRating, Question: "Rate it", Required: true},
			},
		})

		form, err := m.SubmitFormResponse(ctx, "form-2", "user-1", []models.FormAnswer{
			{QuestionID: "q-1", Value: "5"},
		})
		require.NoError(t, err)
		assert.Equal(t, 43, form.ResponseCount)

		fetched, err := m.FetchForm(ctx, "form-2")
		require.NoError(t, err)
		assert.Equal(t, 43, fetched.ResponseCount)
	})
}

func TestCreateUser(t *testing.T) {
	ctx := context.Background()
	m := newTestMemory(t)

	user, err := m.CreateUser(ctx, &models.User{
		Email:       "emma@example.com",
		DisplayName: "Emma",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, user.ID)

	_, err = m.CreateUser(ctx, &models.User{
		Email:       "emma@example.com",
		DisplayName: "Other Emma",
	})
	assert.True(t, errors.Is(err, apperrors.ErrEmailAlreadyExists))
}
