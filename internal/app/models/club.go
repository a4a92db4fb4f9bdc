package models

import "time"

// ClubPrivacy represents a club's visibility
type ClubPrivacy string

const (
	ClubPrivacyPublic  ClubPrivacy = "public"
	ClubPrivacyPrivate ClubPrivacy = "private"
)

// Club represents a chat community owned by a user
type Club struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	Slug        string      `json:"slug"`
	Description string      `json:"description"`
	CoverURL    string      `json:"coverUrl"`
	Privacy     ClubPrivacy `json:"privacy"`
	OwnerID     string      `json:"ownerId"`
	MemberCount int         `json:"memberCount"`
	CreatedAt   time.Time   `json:"createdAt"`

	// Listing conveniences maintained by the gateway
	UnreadCount   int        `json:"unreadCount,omitempty"`
	LastMessage   string     `json:"lastMessage,omitempty"`
	LastMessageAt *time.Time `json:"lastMessageAt,omitempty"`

	// Related entities
	Owner *User `json:"owner,omitempty"`
}
