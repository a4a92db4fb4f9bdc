package services

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/arivera/clubchat/internal/app/gateway"
	"github.com/arivera/clubchat/internal/app/models/dto"
	"github.com/arivera/clubchat/internal/pkg/apperrors"
)

// EventService handles event listing and lookup
type EventService interface {
	// GetEvents lists events filtered by derived status. An empty filter
	// defaults to all.
	GetEvents(ctx context.Context, filter gateway.EventFilter) (*dto.EventListResponse, error)
	GetEventByID(ctx context.Context, id string) (*dto.EventResponse, error)
}

type eventService struct {
	gateway gateway.Gateway
	logger  zerolog.Logger
}

// NewEventService creates a new EventService
func NewEventService(gw gateway.Gateway, logger zerolog.Logger) EventService {
	return &eventService{
		gateway: gw,
		logger:  logger.With().Str("service", "event").Logger(),
	}
}

func (s *eventService) GetEvents(ctx context.Context, filter gateway.EventFilter) (*dto.EventListResponse, error) {
	if filter == "" {
		filter = gateway.EventFilterAll
	}
	if !filter.Valid() {
		return nil, apperrors.NewFieldValidationError("status", "unknown event filter "+string(filter))
	}

	events, err := s.gateway.FetchEvents(ctx, filter)
	if err != nil {
		return nil, err
	}

	now := s.gateway.Now()
	response := &dto.EventListResponse{Events: make([]dto.EventResponse, 0, len(events))}
	for i := range events {
		response.Events = append(response.Events, dto.ToEventResponse(&events[i], now))
	}
	return response, nil
}

func (s *eventService) GetEventByID(ctx context.Context, id string) (*dto.EventResponse, error) {
	event, err := s.gateway.FetchEvent(ctx, id)
	if err != nil {
		return nil, err
	}

	response := dto.ToEventResponse(event, s.gateway.Now())
	return &response, nil
}
