package dto

import (
	"time"

	"github.com/arivera/clubchat/internal/app/models"
)

// ClubResponse represents a club in listings and detail views
type ClubResponse struct {
	ID            string     `json:"id"`
	Name          string     `json:"name"`
	Slug          string     `json:"slug"`
	Description   string     `json:"description"`
	CoverURL      string     `json:"coverUrl"`
	Privacy       string     `json:"privacy"`
	OwnerID       string     `json:"ownerId"`
	MemberCount   int        `json:"memberCount"`
	UnreadCount   int        `json:"unreadCount"`
	LastMessage   string     `json:"lastMessage,omitempty"`
	LastMessageAt *time.Time `json:"lastMessageAt,omitempty"`
	CreatedAt     time.Time  `json:"createdAt"`
}

// ClubListResponse represents a list of clubs
type ClubListResponse struct {
	Clubs []ClubResponse `json:"clubs"`
}

// SearchClubsRequest represents club discovery filter parameters
type SearchClubsRequest struct {
	Query   string `form:"q"`
	Privacy string `form:"privacy" binding:"omitempty,oneof=public private"`
}

// ToClubResponse converts a club model to its response DTO
func ToClubResponse(club *models.Club) ClubResponse {
	return ClubResponse{
		ID:            club.ID,
		Name:          club.Name,
		Slug:          club.Slug,
		Description:   club.Description,
		CoverURL:      club.CoverURL,
		Privacy:       string(club.Privacy),
		OwnerID:       club.OwnerID,
		MemberCount:   club.MemberCount,
		UnreadCount:   club.UnreadCount,
		LastMessage:   club.LastMessage,
		LastMessageAt: club.LastMessageAt,
		CreatedAt:     club.CreatedAt,
	}
}
