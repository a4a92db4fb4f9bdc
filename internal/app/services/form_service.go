package services

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/arivera/clubchat/internal/app/gateway"
	"github.com/arivera/clubchat/internal/app/models/dto"
)

// FormService handles form lookup
type FormService interface {
	GetFormByID(ctx context.Context, id string) (*dto.FormResponse, error)
}

type formService struct {
	gateway gateway.Gateway
	logger  zerolog.Logger
}

// NewFormService creates a new FormService
func NewFormService(gw gateway.Gateway, logger zerolog.Logger) FormService {
	return &formService{
		gateway: gw,
		logger:  logger.With().Str("service", "form").Logger(),
	}
}

func (s *formService) GetFormByID(ctx context.Context, id string) (*dto.FormResponse, error) {
	form, err := s.gateway.FetchForm(ctx, id)
	if err != nil {
		return nil, err
	}

	response := dto.ToFormResponse(form)
	return &response, nil
}
