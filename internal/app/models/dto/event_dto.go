package dto

import (
	"time"

	"github.com/arivera/clubchat/internal/app/models"
)

// --- Request DTOs ---

// CreateEventRequest represents data for creating a new event
type CreateEventRequest struct {
	Title       string    `json:"title" binding:"required"`
	Description string    `json:"description"`
	StartsAt    time.Time `json:"startsAt" binding:"required"`
	EndsAt      time.Time `json:"endsAt" binding:"required"`
	Location    string    `json:"location"`
}

// RSVPRequest represents a user's response to an event
type RSVPRequest struct {
	Response string `json:"response" binding:"required,oneof=going maybe not_going"`
}

// --- Response DTOs ---

// AttendeeTallyResponse mirrors the event's RSVP tally
type AttendeeTallyResponse struct {
	Going    int `json:"going"`
	Maybe    int `json:"maybe"`
	NotGoing int `json:"notGoing"`
}

// EventResponse represents an event with its derived status
type EventResponse struct {
	ID          string                `json:"id"`
	ClubID      string                `json:"clubId"`
	CreatorID   string                `json:"creatorId"`
	Title       string                `json:"title"`
	Description string                `json:"description"`
	StartsAt    time.Time             `json:"startsAt"`
	EndsAt      time.Time             `json:"endsAt"`
	Location    string                `json:"location"`
	Attendees   AttendeeTallyResponse `json:"attendees"`
	Status      string                `json:"status"`
	CreatedAt   time.Time             `json:"createdAt"`
}

// EventListResponse represents a list of events
type EventListResponse struct {
	Events []EventResponse `json:"events"`
}

// CreateEventResponse is returned when an event is created and posted
type CreateEventResponse struct {
	Event   EventResponse   `json:"event"`
	Message MessageResponse `json:"message"`
}

// ToEventResponse converts an event model to its response DTO.
// Status is derived from the supplied clock, never read from storage.
func ToEventResponse(event *models.Event, now time.Time) EventResponse {
	return EventResponse{
		ID:          event.ID,
		ClubID:      event.ClubID,
		CreatorID:   event.CreatorID,
		Title:       event.Title,
		Description: event.Description,
		StartsAt:    event.StartsAt,
		EndsAt:      event.EndsAt,
		Location:    event.Location,
		Attendees: AttendeeTallyResponse{
			Going:    event.Attendees.Going,
			Maybe:    event.Attendees.Maybe,
			NotGoing: event.Attendees.NotGoing,
		},
		Status:    string(event.Status(now)),
		CreatedAt: event.CreatedAt,
	}
}
