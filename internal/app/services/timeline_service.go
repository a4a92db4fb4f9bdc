package services

import (
	"context"
	"sort"

	"github.com/rs/zerolog"

	"github.com/arivera/clubchat/internal/app/gateway"
	"github.com/arivera/clubchat/internal/app/models"
	"github.com/arivera/clubchat/internal/app/models/dto"
)

// TimelineService assembles a club's chat history into render-ready
// entries, resolving poll, event and form references to their payloads.
type TimelineService interface {
	// AssembleTimeline returns the club's messages in ascending creation
	// order. Messages whose reference does not resolve are dropped from
	// the entries and reported in the unresolved list instead.
	AssembleTimeline(ctx context.Context, clubID string) (*dto.TimelineResponse, error)
}

type timelineService struct {
	gateway gateway.Gateway
	logger  zerolog.Logger
}

// NewTimelineService creates a new TimelineService
func NewTimelineService(gw gateway.Gateway, logger zerolog.Logger) TimelineService {
	return &timelineService{
		gateway: gw,
		logger:  logger.With().Str("service", "timeline").Logger(),
	}
}

func (s *timelineService) AssembleTimeline(ctx context.Context, clubID string) (*dto.TimelineResponse, error) {
	userID, err := currentUserID(ctx)
	if err != nil {
		return nil, err
	}

	// Confirms the club exists before fetching its history, so an
	// unknown id surfaces as not-found rather than an empty timeline.
	if _, err := s.gateway.FetchClub(ctx, clubID); err != nil {
		return nil, err
	}

	messages, err := s.gateway.FetchMessages(ctx, clubID)
	if err != nil {
		return nil, err
	}

	sort.SliceStable(messages, func(i, j int) bool {
		return messages[i].CreatedAt.Before(messages[j].CreatedAt)
	})

	now := s.gateway.Now()
	response := &dto.TimelineResponse{
		Entries: make([]dto.TimelineEntryResponse, 0, len(messages)),
	}

	for i := range messages {
		message := &messages[i]

		entry := dto.TimelineEntryResponse{
			Kind:    string(message.Type),
			Message: dto.ToMessageResponse(message),
			IsOwn:   message.SenderID == userID,
		}

		switch message.Type {
		case models.MessageTypePoll:
			poll, err := s.gateway.FetchPoll(ctx, message.RefID)
			if err != nil {
				response.Unresolved = append(response.Unresolved, s.unresolved(message))
				continue
			}
			pollResponse := dto.ToPollResponse(poll)
			entry.Poll = &pollResponse
		case models.MessageTypeEvent:
			event, err := s.gateway.FetchEvent(ctx, message.RefID)
			if err != nil {
				response.Unresolved = append(response.Unresolved, s.unresolved(message))
				continue
			}
			eventResponse := dto.ToEventResponse(event, now)
			entry.Event = &eventResponse
		case models.MessageTypeForm:
			form, err := s.gateway.FetchForm(ctx, message.RefID)
			if err != nil {
				response.Unresolved = append(response.Unresolved, s.unresolved(message))
				continue
			}
			formResponse := dto.ToFormResponse(form)
			entry.Form = &formResponse
		}

		response.Entries = append(response.Entries, entry)
	}

	return response, nil
}

func (s *timelineService) unresolved(message *models.Message) dto.UnresolvedRefResponse {
	s.logger.Warn().
		Str("messageId", message.ID).
		Str("kind", string(message.Type)).
		Str("refId", message.RefID).
		Msg("Dropping message with unresolvable reference")

	return dto.UnresolvedRefResponse{
		MessageID: message.ID,
		Kind:      string(message.Type),
		RefID:     message.RefID,
	}
}
