package gateway

import (
	"context"
	"time"

	"github.com/arivera/clubchat/internal/app/models"
)

// EventFilter selects which events FetchEvents returns, by derived status.
type EventFilter string

const (
	EventFilterAll     EventFilter = "all"
	EventFilterActive  EventFilter = "active"
	EventFilterExpired EventFilter = "expired"
)

// Valid reports whether f is a known event filter.
func (f EventFilter) Valid() bool {
	switch f {
	case EventFilterAll, EventFilterActive, EventFilterExpired:
		return true
	}
	return false
}

// SearchFilters narrows club discovery results
type SearchFilters struct {
	Privacy *models.ClubPrivacy
}

// SendMessageParams describes a new chat message
type SendMessageParams struct {
	ClubID    string
	SenderID  string
	Type      models.MessageType
	Content   string
	RefID     string
	ReplyToID string
}

// CreatePollParams describes a new poll
type CreatePollParams struct {
	ClubID         string
	CreatorID      string
	Question       string
	Options        []string
	MultipleChoice bool
	Anonymous      bool
}

// CreateEventParams describes a new event
type CreateEventParams struct {
	ClubID      string
	CreatorID   string
	Title       string
	Description string
	StartsAt    time.Time
	EndsAt      time.Time
	Location    string
}

// CreateFormParams describes a new form
type CreateFormParams struct {
	ClubID      string
	CreatorID   string
	Title       string
	Description string
	Questions   []models.FormQuestion
}

// UpdateProfileParams carries a partial profile update; nil fields are untouched
type UpdateProfileParams struct {
	DisplayName *string
	AvatarURL   *string
	Bio         *string
}

// Gateway is the backend collaborator performing all entity reads and
// writes. The in-process Memory implementation backs the service today; the
// contract is designed to be swappable for a real network client. Every
// call is request/response with an explicit error; ordering-sensitive
// operations (votes on one poll, RSVPs on one event) are serialized by the
// implementation, never assumed serial by callers.
type Gateway interface {
	// Clubs
	FetchClubs(ctx context.Context) ([]models.Club, error)
	SearchClubs(ctx context.Context, query string, filters SearchFilters) ([]models.Club, error)
	FetchClub(ctx context.Context, id string) (*models.Club, error)
	JoinClub(ctx context.Context, clubID, userID string) (*models.Club, error)

	// Messages
	FetchMessages(ctx context.Context, clubID string) ([]models.Message, error)
	FetchMessage(ctx context.Context, messageID string) (*models.Message, error)
	SendMessage(ctx context.Context, params SendMessageParams) (*models.Message, error)
	PinMessage(ctx context.Context, messageID string) (*models.Message, error)
	ToggleReaction(ctx context.Context, messageID, emoji, userID string) (*models.Message, error)

	// Polls
	FetchPoll(ctx context.Context, id string) (*models.Poll, error)
	VotePoll(ctx context.Context, pollID, optionID, userID string) (*models.Poll, error)
	CreatePoll(ctx context.Context, params CreatePollParams) (*models.Poll, error)

	// Events
	FetchEvents(ctx context.Context, filter EventFilter) ([]models.Event, error)
	FetchEvent(ctx context.Context, id string) (*models.Event, error)
	RsvpEvent(ctx context.Context, eventID, userID string, response models.RSVPResponse) (*models.Event, error)
	CreateEvent(ctx context.Context, params CreateEventParams) (*models.Event, error)

	// Forms
	FetchForm(ctx context.Context, id string) (*models.Form, error)
	CreateForm(ctx context.Context, params CreateFormParams) (*models.Form, error)
	SubmitFormResponse(ctx context.Context, formID, userID string, answers []models.FormAnswer) (*models.Form, error)

	// Users
	FetchUser(ctx context.Context, id string) (*models.User, error)
	FetchUserByEmail(ctx context.Context, email string) (*models.User, error)
	CreateUser(ctx context.Context, user *models.User) (*models.User, error)
	UpdateProfile(ctx context.Context, userID string, params UpdateProfileParams) (*models.User, error)

	// Now exposes the gateway's clock so derived state (event status) is
	// computed consistently by callers.
	Now() time.Time
}
