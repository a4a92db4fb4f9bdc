package services

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/arivera/clubchat/internal/app/gateway"
	"github.com/arivera/clubchat/internal/app/models"
)

var testNow = time.Date(2024, 1, 16, 12, 0, 0, 0, time.UTC)

func testCtx(userID string) context.Context {
	return context.WithValue(context.Background(), userIDKey, userID) //nolint:staticcheck // matches the gin context key
}

// newTestGateway builds an in-memory gateway with a small fixture set:
// two users, two clubs, a poll referenced from chat, an active and an
// expired event, and a form.
func newTestGateway(t *testing.T) *gateway.Memory {
	t.Helper()

	m := gateway.NewMemory(zerolog.Nop()).WithClock(func() time.Time { return testNow })

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
		CreatedAt: testNow.Add(-2 * time.Hour),
	})
	m.SeedMessage(models.Message{
		ID:        "msg-2",
		ClubID:    "club-1",
		SenderID:  "user-1",
		Type:      models.MessageTypeText,
		Content:   "hi there",
		CreatedAt: testNow.Add(-time.Hour),
	})
	m.SeedMessage(models.Message{
		ID:        "msg-3",
		ClubID:    "club-1",
		SenderID:  "user-2",
		Type:      models.MessageTypePoll,
		Content:   "Favourite language?",
		RefID:     "poll-1",
		CreatedAt: testNow.Add(-30 * time.Minute),
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
			{ID: "q-2", Type: models.FormQuestionMultipleChoice, Question: "Come again?", Options: []string{"Yes", "No"}},
		},
	})

	return m
}
