package services

import (
	"context"
	"strings"

	"github.com/rs/zerolog"

	"github.com/arivera/clubchat/internal/app/gateway"
	"github.com/arivera/clubchat/internal/app/models/dto"
	"github.com/arivera/clubchat/internal/pkg/apperrors"
	"github.com/arivera/clubchat/internal/pkg/validation"
)

// UserService handles the authenticated user's profile
type UserService interface {
	GetProfile(ctx context.Context) (*dto.UserResponse, error)
	UpdateProfile(ctx context.Context, req *dto.UpdateProfileRequest) (*dto.UserResponse, error)
}

type userService struct {
	gateway gateway.Gateway
	logger  zerolog.Logger
}

// NewUserService creates a new UserService
func NewUserService(gw gateway.Gateway, logger zerolog.Logger) UserService {
	return &userService{
		gateway: gw,
		logger:  logger.With().Str("service", "user").Logger(),
	}
}

func (s *userService) GetProfile(ctx context.Context) (*dto.UserResponse, error) {
	userID, err := currentUserID(ctx)
	if err != nil {
		return nil, err
	}

	user, err := s.gateway.FetchUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	response := dto.ToUserResponse(user)
	return &response, nil
}

func (s *userService) UpdateProfile(ctx context.Context, req *dto.UpdateProfileRequest) (*dto.UserResponse, error) {
	userID, err := currentUserID(ctx)
	if err != nil {
		return nil, err
	}

	params := gateway.UpdateProfileParams{
		AvatarURL: req.AvatarURL,
		Bio:       req.Bio,
	}
	if req.DisplayName != nil {
		displayName := strings.TrimSpace(*req.DisplayName)
		if !validation.DisplayName(displayName) {
			return nil, apperrors.NewFieldValidationError("displayName", "display name length is out of bounds")
		}
		params.DisplayName = &displayName
	}

	user, err := s.gateway.UpdateProfile(ctx, userID, params)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("userId", userID).Msg("Profile updated")

	response := dto.ToUserResponse(user)
	return &response, nil
}
