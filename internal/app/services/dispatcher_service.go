package services

import (
	"context"
	"strconv"
	"strings"

	"github.com/rs/zerolog"

	"github.com/arivera/clubchat/internal/app/gateway"
	"github.com/arivera/clubchat/internal/app/models"
	"github.com/arivera/clubchat/internal/app/models/dto"
	"github.com/arivera/clubchat/internal/pkg/apperrors"
	"github.com/arivera/clubchat/internal/pkg/validation"
)

// DispatcherService performs all user-initiated mutations: posting and
// forwarding messages, voting, RSVPs, reactions, pins, and the
// create-then-post flows for polls, events and forms. Requests that fail
// local validation are rejected before any gateway call is made.
type DispatcherService interface {
	SendMessage(ctx context.Context, clubID string, req *dto.SendMessageRequest) (*dto.MessageResponse, error)
	ForwardMessage(ctx context.Context, messageID, targetClubID string) (*dto.MessageResponse, error)
	ToggleReaction(ctx context.Context, messageID, emoji string) (*dto.MessageResponse, error)
	TogglePin(ctx context.Context, messageID string) (*dto.MessageResponse, error)
	VotePoll(ctx context.Context, pollID, optionID string) (*dto.PollResponse, error)
	RsvpEvent(ctx context.Context, eventID string, response models.RSVPResponse) (*dto.EventResponse, error)
	CreatePoll(ctx context.Context, clubID string, req *dto.CreatePollRequest) (*dto.CreatePollResponse, error)
	CreateEvent(ctx context.Context, clubID string, req *dto.CreateEventRequest) (*dto.CreateEventResponse, error)
	CreateForm(ctx context.Context, clubID string, req *dto.CreateFormRequest) (*dto.CreateFormResponse, error)
	SubmitFormResponse(ctx context.Context, formID string, req *dto.SubmitFormRequest) (*dto.FormResponse, error)
}

type dispatcherService struct {
	gateway gateway.Gateway
	logger  zerolog.Logger
}

// NewDispatcherService creates a new DispatcherService
func NewDispatcherService(gw gateway.Gateway, logger zerolog.Logger) DispatcherService {
	return &dispatcherService{
		gateway: gw,
		logger:  logger.With().Str("service", "dispatcher").Logger(),
	}
}

func (s *dispatcherService) SendMessage(ctx context.Context, clubID string, req *dto.SendMessageRequest) (*dto.MessageResponse, error) {
	userID, err := currentUserID(ctx)
	if err != nil {
		return nil, err
	}

	content := strings.TrimSpace(req.Content)
	if content == "" {
		return nil, apperrors.NewFieldValidationError("content", "message content must not be empty")
	}

	messageType := models.MessageTypeText
	if req.Type != "" {
		messageType = models.MessageType(req.Type)
	}
	if messageType.HasRef() {
		return nil, apperrors.NewFieldValidationError("type", "referenced message types are posted through their own endpoints")
	}

	message, err := s.gateway.SendMessage(ctx, gateway.SendMessageParams{
		ClubID:    clubID,
		SenderID:  userID,
		Type:      messageType,
		Content:   content,
		ReplyToID: req.ReplyTo,
	})
	if err != nil {
		return nil, err
	}

	s.logger.Debug().Str("clubId", clubID).Str("messageId", message.ID).Msg("Message sent")

	response := dto.ToMessageResponse(message)
	return &response, nil
}

func (s *dispatcherService) ForwardMessage(ctx context.Context, messageID, targetClubID string) (*dto.MessageResponse, error) {
	userID, err := currentUserID(ctx)
	if err != nil {
		return nil, err
	}

	original, err := s.gateway.FetchMessage(ctx, messageID)
	if err != nil {
		return nil, err
	}

	if original.ClubID == targetClubID {
		return nil, apperrors.NewInvalidStateError("message is already in the target club")
	}

	// The forwarded copy keeps the payload reference but not the reply
	// link, which is meaningless outside the source club.
	message, err := s.gateway.SendMessage(ctx, gateway.SendMessageParams{
		ClubID:   targetClubID,
		SenderID: userID,
		Type:     original.Type,
		Content:  original.Content,
		RefID:    original.RefID,
	})
	if err != nil {
		return nil, err
	}

	response := dto.ToMessageResponse(message)
	return &response, nil
}

func (s *dispatcherService) ToggleReaction(ctx context.Context, messageID, emoji string) (*dto.MessageResponse, error) {
	userID, err := currentUserID(ctx)
	if err != nil {
		return nil, err
	}

	if !validation.NonEmpty(emoji) {
		return nil, apperrors.NewFieldValidationError("emoji", "emoji must not be empty")
	}

	message, err := s.gateway.ToggleReaction(ctx, messageID, emoji, userID)
	if err != nil {
		return nil, err
	}

	response := dto.ToMessageResponse(message)
	return &response, nil
}

func (s *dispatcherService) TogglePin(ctx context.Context, messageID string) (*dto.MessageResponse, error) {
	if _, err := currentUserID(ctx); err != nil {
		return nil, err
	}

	message, err := s.gateway.PinMessage(ctx, messageID)
	if err != nil {
		return nil, err
	}

	response := dto.ToMessageResponse(message)
	return &response, nil
}

func (s *dispatcherService) VotePoll(ctx context.Context, pollID, optionID string) (*dto.PollResponse, error) {
	userID, err := currentUserID(ctx)
	if err != nil {
		return nil, err
	}

	if !validation.NonEmpty(optionID) {
		return nil, apperrors.NewFieldValidationError("optionId", "optionId must not be empty")
	}

	poll, err := s.gateway.VotePoll(ctx, pollID, optionID, userID)
	if err != nil {
		return nil, err
	}

	response := dto.ToPollResponse(poll)
	return &response, nil
}

func (s *dispatcherService) RsvpEvent(ctx context.Context, eventID string, rsvp models.RSVPResponse) (*dto.EventResponse, error) {
	userID, err := currentUserID(ctx)
	if err != nil {
		return nil, err
	}

	if !rsvp.Valid() {
		return nil, apperrors.NewFieldValidationError("response", "unknown RSVP response")
	}

	event, err := s.gateway.RsvpEvent(ctx, eventID, userID, rsvp)
	if err != nil {
		return nil, err
	}

	response := dto.ToEventResponse(event, s.gateway.Now())
	return &response, nil
}

// CreatePoll creates the poll, then posts the message announcing it to
// the club chat. The two gateway calls are not atomic; a poll whose
// announcement fails still exists and is reported as a gateway error.
func (s *dispatcherService) CreatePoll(ctx context.Context, clubID string, req *dto.CreatePollRequest) (*dto.CreatePollResponse, error) {
	userID, err := currentUserID(ctx)
	if err != nil {
		return nil, err
	}

	question := strings.TrimSpace(req.Question)
	if question == "" {
		return nil, apperrors.NewFieldValidationError("question", "poll question must not be empty")
	}

	options, ok := validation.PollOptions(req.Options)
	if !ok {
		return nil, apperrors.NewFieldValidationError("options",
			"polls need between "+strconv.Itoa(validation.PollMinOptions)+" and "+strconv.Itoa(validation.PollMaxOptions)+" distinct non-empty options",
		)
	}

	poll, err := s.gateway.CreatePoll(ctx, gateway.CreatePollParams{
		ClubID:         clubID,
		CreatorID:      userID,
		Question:       question,
		Options:        options,
		MultipleChoice: req.MultipleChoice,
		Anonymous:      req.Anonymous,
	})
	if err != nil {
		return nil, err
	}

	message, err := s.gateway.SendMessage(ctx, gateway.SendMessageParams{
		ClubID:   clubID,
		SenderID: userID,
		Type:     models.MessageTypePoll,
		Content:  question,
		RefID:    poll.ID,
	})
	if err != nil {
		s.logger.Error().Err(err).Str("pollId", poll.ID).Msg("Poll created but announcement failed")
		return nil, apperrors.NewGatewayError("poll created but could not be posted to the chat")
	}

	return &dto.CreatePollResponse{
		Poll:    dto.ToPollResponse(poll),
		Message: dto.ToMessageResponse(message),
	}, nil
}

// CreateEvent mirrors CreatePoll's create-then-post flow.
func (s *dispatcherService) CreateEvent(ctx context.Context, clubID string, req *dto.CreateEventRequest) (*dto.CreateEventResponse, error) {
	userID, err := currentUserID(ctx)
	if err != nil {
		return nil, err
	}

	title := strings.TrimSpace(req.Title)
	if title == "" {
		return nil, apperrors.NewFieldValidationError("title", "event title must not be empty")
	}
	if req.EndsAt.Before(req.StartsAt) {
		return nil, apperrors.NewFieldValidationError("endsAt", "event must not end before it starts")
	}

	event, err := s.gateway.CreateEvent(ctx, gateway.CreateEventParams{
		ClubID:      clubID,
		CreatorID:   userID,
		Title:       title,
		Description: req.Description,
		StartsAt:    req.StartsAt,
		EndsAt:      req.EndsAt,
		Location:    req.Location,
	})
	if err != nil {
		return nil, err
	}

	message, err := s.gateway.SendMessage(ctx, gateway.SendMessageParams{
		ClubID:   clubID,
		SenderID: userID,
		Type:     models.MessageTypeEvent,
		Content:  title,
		RefID:    event.ID,
	})
	if err != nil {
		s.logger.Error().Err(err).Str("eventId", event.ID).Msg("Event created but announcement failed")
		return nil, apperrors.NewGatewayError("event created but could not be posted to the chat")
	}

	return &dto.CreateEventResponse{
		Event:   dto.ToEventResponse(event, s.gateway.Now()),
		Message: dto.ToMessageResponse(message),
	}, nil
}

// CreateForm mirrors CreatePoll's create-then-post flow.
func (s *dispatcherService) CreateForm(ctx context.Context, clubID string, req *dto.CreateFormRequest) (*dto.CreateFormResponse, error) {
	userID, err := currentUserID(ctx)
	if err != nil {
		return nil, err
	}

	title := strings.TrimSpace(req.Title)
	if title == "" {
		return nil, apperrors.NewFieldValidationError("title", "form title must not be empty")
	}

	questions := make([]models.FormQuestion, 0, len(req.Questions))
	for i, q := range req.Questions {
		questionType := models.FormQuestionType(q.Type)
		if !questionType.Valid() {
			return nil, apperrors.NewFieldValidationError("questions", "unknown question type "+q.Type)
		}
		if !validation.NonEmpty(q.Question) {
			return nil, apperrors.NewFieldValidationError("questions", "question "+strconv.Itoa(i+1)+" must not be empty")
		}
		if questionType.HasOptions() && len(q.Options) < 2 {
			return nil, apperrors.NewFieldValidationError("questions", "question "+strconv.Itoa(i+1)+" needs at least two options")
		}
		questions = append(questions, models.FormQuestion{
			Type:     questionType,
			Question: strings.TrimSpace(q.Question),
			Options:  q.Options,
			Required: q.Required,
		})
	}

	form, err := s.gateway.CreateForm(ctx, gateway.CreateFormParams{
		ClubID:      clubID,
		CreatorID:   userID,
		Title:       title,
		Description: req.Description,
		Questions:   questions,
	})
	if err != nil {
		return nil, err
	}

	message, err := s.gateway.SendMessage(ctx, gateway.SendMessageParams{
		ClubID:   clubID,
		SenderID: userID,
		Type:     models.MessageTypeForm,
		Content:  title,
		RefID:    form.ID,
	})
	if err != nil {
		s.logger.Error().Err(err).Str("formId", form.ID).Msg("Form created but announcement failed")
		return nil, apperrors.NewGatewayError("form created but could not be posted to the chat")
	}

	return &dto.CreateFormResponse{
		Form:    dto.ToFormResponse(form),
		Message: dto.ToMessageResponse(message),
	}, nil
}

func (s *dispatcherService) SubmitFormResponse(ctx context.Context, formID string, req *dto.SubmitFormRequest) (*dto.FormResponse, error) {
	userID, err := currentUserID(ctx)
	if err != nil {
		return nil, err
	}

	form, err := s.gateway.FetchForm(ctx, formID)
	if err != nil {
		return nil, err
	}

	answers, err := s.validateAnswers(form, req.Answers)
	if err != nil {
		return nil, err
	}

	updated, err := s.gateway.SubmitFormResponse(ctx, formID, userID, answers)
	if err != nil {
		return nil, err
	}

	response := dto.ToFormResponse(updated)
	return &response, nil
}

// validateAnswers checks a submission against the form definition:
// every answer must target a known question, every required question
// must be answered, choice answers must use declared options and rating
// answers must parse as 1..5.
func (s *dispatcherService) validateAnswers(form *models.Form, answers []dto.FormAnswerRequest) ([]models.FormAnswer, error) {
	answered := make(map[string]bool, len(answers))
	result := make([]models.FormAnswer, 0, len(answers))

	for _, answer := range answers {
		idx := form.Question(answer.QuestionID)
		if idx < 0 {
			return nil, apperrors.NewValidationError("answer targets unknown question " + answer.QuestionID)
		}
		if answered[answer.QuestionID] {
			return nil, apperrors.NewValidationError("question " + answer.QuestionID + " answered twice")
		}
		answered[answer.QuestionID] = true

		question := form.Questions[idx]
		switch question.Type {
		case models.FormQuestionMultipleChoice:
			if !question.HasOption(answer.Value) {
				return nil, apperrors.NewValidationError("answer for " + answer.QuestionID + " is not one of the declared options")
			}
		case models.FormQuestionCheckbox:
			for _, value := range answer.Values {
				if !question.HasOption(value) {
					return nil, apperrors.NewValidationError("answer for " + answer.QuestionID + " is not one of the declared options")
				}
			}
		case models.FormQuestionRating:
			rating, err := strconv.Atoi(answer.Value)
			if err != nil || rating < 1 || rating > 5 {
				return nil, apperrors.NewValidationError("rating for " + answer.QuestionID + " must be between 1 and 5")
			}
		}

		result = append(result, models.FormAnswer{
			QuestionID: answer.QuestionID,
			Value:      answer.Value,
			Values:     answer.Values,
		})
	}

	for _, question := range form.Questions {
		if question.Required && !answered[question.ID] {
			return nil, apperrors.NewValidationError("required question " + question.ID + " is unanswered")
		}
	}

	return result, nil
}
