package services

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/arivera/clubchat/internal/app/gateway"
	"github.com/arivera/clubchat/internal/app/models/dto"
)

// PollService handles poll lookup
type PollService interface {
	GetPollByID(ctx context.Context, id string) (*dto.PollResponse, error)
}

type pollService struct {
	gateway gateway.Gateway
	logger  zerolog.Logger
}

// NewPollService creates a new PollService
func NewPollService(gw gateway.Gateway, logger zerolog.Logger) PollService {
	return &pollService{
		gateway: gw,
		logger:  logger.With().Str("service", "poll").Logger(),
	}
}

func (s *pollService) GetPollByID(ctx context.Context, id string) (*dto.PollResponse, error) {
	poll, err := s.gateway.FetchPoll(ctx, id)
	if err != nil {
		return nil, err
	}

	response := dto.ToPollResponse(poll)
	return &response, nil
}
