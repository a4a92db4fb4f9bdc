package models

import "time"

// EventStatus represents an event's lifecycle state
type EventStatus string

const (
	EventStatusActive  EventStatus = "active"
	EventStatusExpired EventStatus = "expired"
)

// RSVPResponse represents a user's reply to an event invitation
type RSVPResponse string

const (
	RSVPGoing    RSVPResponse = "going"
	RSVPMaybe    RSVPResponse = "maybe"
	RSVPNotGoing RSVPResponse = "not_going"
)

// Valid reports whether r is a known RSVP response.
func (r RSVPResponse) Valid() bool {
	switch r {
	case RSVPGoing, RSVPMaybe, RSVPNotGoing:
		return true
	}
	return false
}

// AttendeeTally counts RSVP responses per category
type AttendeeTally struct {
	Going    int `json:"going"`
	Maybe    int `json:"maybe"`
	NotGoing int `json:"notGoing"`
}

// Event represents a scheduled club event
type Event struct {
	ID          string        `json:"id"`
	ClubID      string        `json:"clubId"`
	CreatorID   string        `json:"creatorId"`
	Title       string        `json:"title"`
	Description string        `json:"description"`
	StartsAt    time.Time     `json:"startsAt"`
	EndsAt      time.Time     `json:"endsAt"`
	Location    string        `json:"location"`
	Attendees   AttendeeTally `json:"attendees"`
	CreatedAt   time.Time     `json:"createdAt"`

	// Related entities
	Creator *User `json:"creator,omitempty"`
}

// Status is derived from the clock against the event's end time; it is
// never an independently settable field.
func (e *Event) Status(now time.Time) EventStatus {
	if now.After(e.EndsAt) {
		return EventStatusExpired
	}
	return EventStatusActive
}
