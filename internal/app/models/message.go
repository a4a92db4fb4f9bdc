package models

import "time"

// MessageType represents the closed set of message payload variants
type MessageType string

const (
	MessageTypeText  MessageType = "text"
	MessageTypeImage MessageType = "image"
	MessageTypePoll  MessageType = "poll"
	MessageTypeEvent MessageType = "event"
	MessageTypeForm  MessageType = "form"
)

// HasRef reports whether this message type carries a payload entity
// reference that must resolve to an entity of matching type.
func (t MessageType) HasRef() bool {
	switch t {
	case MessageTypePoll, MessageTypeEvent, MessageTypeForm:
		return true
	}
	return false
}

// Valid reports whether t is a known message type.
func (t MessageType) Valid() bool {
	switch t {
	case MessageTypeText, MessageTypeImage, MessageTypePoll, MessageTypeEvent, MessageTypeForm:
		return true
	}
	return false
}

// Message represents a single entry in a club's chat history.
// Non-text variants carry a typed RefID pointing at the poll, event or
// form entity they render.
type Message struct {
	ID        string      `json:"id"`
	ClubID    string      `json:"clubId"`
	SenderID  string      `json:"senderId"`
	Type      MessageType `json:"type"`
	Content   string      `json:"content"`
	RefID     string      `json:"refId,omitempty"`
	ReplyToID string      `json:"replyToId,omitempty"`
	Pinned    bool        `json:"pinned"`
	Reactions []Reaction  `json:"reactions,omitempty"`
	CreatedAt time.Time   `json:"createdAt"`

	// Related entities
	Sender *User `json:"sender,omitempty"`
}

// Reaction groups the users who reacted to a message with one emoji
type Reaction struct {
	Emoji   string   `json:"emoji"`
	UserIDs []string `json:"userIds"`
}

// HasReactor reports whether userID is in the reaction's reactor set.
func (r Reaction) HasReactor(userID string) bool {
	for _, id := range r.UserIDs {
		if id == userID {
			return true
		}
	}
	return false
}
