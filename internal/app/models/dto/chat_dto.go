package dto

import (
	"time"

	"github.com/arivera/clubchat/internal/app/models"
)

// --- Request DTOs ---

// SendMessageRequest represents data for posting a new chat message.
// Only text and image messages are posted directly; poll, event and form
// messages are created through their own endpoints.
type SendMessageRequest struct {
	Type    string `json:"type,omitempty" binding:"omitempty,oneof=text image"`
	Content string `json:"content" binding:"required"`
	ReplyTo string `json:"replyTo,omitempty"`
}

// ForwardMessageRequest represents forwarding an existing message to another club
type ForwardMessageRequest struct {
	TargetClubID string `json:"targetClubId" binding:"required"`
}

// ToggleReactionRequest represents adding or removing an emoji reaction
type ToggleReactionRequest struct {
	Emoji string `json:"emoji" binding:"required"`
}

// --- Response DTOs ---

// ReactionResponse groups reactor ids under one emoji
type ReactionResponse struct {
	Emoji   string   `json:"emoji"`
	UserIDs []string `json:"userIds"`
	Count   int      `json:"count"`
}

// MessageResponse represents a chat message
type MessageResponse struct {
	ID        string             `json:"id"`
	ClubID    string             `json:"clubId"`
	SenderID  string             `json:"senderId"`
	Type      string             `json:"type"`
	Content   string             `json:"content"`
	RefID     string             `json:"refId,omitempty"`
	ReplyTo   string             `json:"replyTo,omitempty"`
	Pinned    bool               `json:"pinned"`
	Reactions []ReactionResponse `json:"reactions,omitempty"`
	CreatedAt time.Time          `json:"createdAt"`

	// Sender information, when resolved
	SenderName      string `json:"senderName,omitempty"`
	SenderAvatarURL string `json:"senderAvatarUrl,omitempty"`
}

// TimelineEntryResponse is one renderable unit of a club's chat view.
// Kind selects which payload pointer is populated.
type TimelineEntryResponse struct {
	Kind    string          `json:"kind"`
	Message MessageResponse `json:"message"`
	IsOwn   bool            `json:"isOwn"`
	Poll    *PollResponse   `json:"poll,omitempty"`
	Event   *EventResponse  `json:"event,omitempty"`
	Form    *FormResponse   `json:"form,omitempty"`
}

// UnresolvedRefResponse reports a message whose payload reference did not
// resolve; such messages are dropped from the timeline, never rendered empty.
type UnresolvedRefResponse struct {
	MessageID string `json:"messageId"`
	Kind      string `json:"kind"`
	RefID     string `json:"refId"`
}

// TimelineResponse represents a club's assembled chat timeline
type TimelineResponse struct {
	Entries    []TimelineEntryResponse `json:"entries"`
	Unresolved []UnresolvedRefResponse `json:"unresolved,omitempty"`
}

// ToMessageResponse converts a message model to its response DTO
func ToMessageResponse(message *models.Message) MessageResponse {
	response := MessageResponse{
		ID:        message.ID,
		ClubID:    message.ClubID,
		SenderID:  message.SenderID,
		Type:      string(message.Type),
		Content:   message.Content,
		RefID:     message.RefID,
		ReplyTo:   message.ReplyToID,
		Pinned:    message.Pinned,
		CreatedAt: message.CreatedAt,
	}

	for _, r := range message.Reactions {
		response.Reactions = append(response.Reactions, ReactionResponse{
			Emoji:   r.Emoji,
			UserIDs: r.UserIDs,
			Count:   len(r.UserIDs),
		})
	}

	if message.Sender != nil {
		response.SenderName = message.Sender.DisplayName
		response.SenderAvatarURL = message.Sender.AvatarURL
	}

	return response
}
