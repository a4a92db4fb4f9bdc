package dto

import (
	"time"

	"github.com/arivera/clubchat/internal/app/models"
)

// --- Request DTOs ---

// CreatePollRequest represents data for creating a new poll
type CreatePollRequest struct {
	Question       string   `json:"question" binding:"required"`
	Options        []string `json:"options" binding:"required"`
	MultipleChoice bool     `json:"multipleChoice"`
	Anonymous      bool     `json:"anonymous"`
}

// VotePollRequest represents casting a vote for one poll option
type VotePollRequest struct {
	OptionID string `json:"optionId" binding:"required"`
}

// --- Response DTOs ---

// PollOptionResponse represents one poll option with its vote share
type PollOptionResponse struct {
	ID         string  `json:"id"`
	Text       string  `json:"text"`
	Votes      int     `json:"votes"`
	Percentage float64 `json:"percentage"`
}

// PollSettingsResponse mirrors the poll's voting settings
type PollSettingsResponse struct {
	MultipleChoice bool `json:"multipleChoice"`
	Anonymous      bool `json:"anonymous"`
}

// PollResponse represents a poll with derived totals
type PollResponse struct {
	ID         string               `json:"id"`
	ClubID     string               `json:"clubId"`
	CreatorID  string               `json:"creatorId"`
	Question   string               `json:"question"`
	Options    []PollOptionResponse `json:"options"`
	Settings   PollSettingsResponse `json:"settings"`
	TotalVotes int                  `json:"totalVotes"`
	CreatedAt  time.Time            `json:"createdAt"`
}

// CreatePollResponse is returned when a poll is created and posted
type CreatePollResponse struct {
	Poll    PollResponse    `json:"poll"`
	Message MessageResponse `json:"message"`
}

// ToPollResponse converts a poll model to its response DTO.
// TotalVotes and option percentages are computed from the option counts.
func ToPollResponse(poll *models.Poll) PollResponse {
	total := poll.TotalVotes()

	options := make([]PollOptionResponse, 0, len(poll.Options))
	for _, opt := range poll.Options {
		pct := 0.0
		if total > 0 {
			pct = float64(opt.Votes) / float64(total) * 100
		}
		options = append(options, PollOptionResponse{
			ID:         opt.ID,
			Text:       opt.Text,
			Votes:      opt.Votes,
			Percentage: pct,
		})
	}

	return PollResponse{
		ID:        poll.ID,
		ClubID:    poll.ClubID,
		CreatorID: poll.CreatorID,
		Question:  poll.Question,
		Options:   options,
		Settings: PollSettingsResponse{
			MultipleChoice: poll.Settings.MultipleChoice,
			Anonymous:      poll.Settings.Anonymous,
		},
		TotalVotes: total,
		CreatedAt:  poll.CreatedAt,
	}
}
