package services

import (
	"context"
	"errors"
	"strings"

	"github.com/rs/zerolog"

	"github.com/arivera/clubchat/internal/app/gateway"
	"github.com/arivera/clubchat/internal/app/models"
	"github.com/arivera/clubchat/internal/app/models/dto"
	"github.com/arivera/clubchat/internal/pkg/apperrors"
	"github.com/arivera/clubchat/internal/pkg/auth"
	"github.com/arivera/clubchat/internal/pkg/validation"
)

// AuthService handles signup and login
type AuthService interface {
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error)
	Signup(ctx context.Context, req *dto.SignupRequest) (*dto.AuthResponse, error)
}

type authService struct {
	gateway    gateway.Gateway
	jwtService *auth.JWTService
	logger     zerolog.Logger
}

// NewAuthService creates a new AuthService
func NewAuthService(gw gateway.Gateway, jwtService *auth.JWTService, logger zerolog.Logger) AuthService {
	return &authService{
		gateway:    gw,
		jwtService: jwtService,
		logger:     logger.With().Str("service", "auth").Logger(),
	}
}

func (s *authService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	user, err := s.gateway.FetchUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			// Same error as a wrong password so login probes cannot
			// distinguish unknown accounts.
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, err
	}

	if !auth.CheckPassword(user.Password, req.Password) {
		s.logger.Warn().Str("email", email).Msg("Failed login attempt")
		return nil, apperrors.ErrInvalidCredentials
	}

	return s.issueTokens(user)
}

func (s *authService) Signup(ctx context.Context, req *dto.SignupRequest) (*dto.AuthResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	if !validation.Email(email) {
		return nil, apperrors.NewFieldValidationError("email", "invalid email address")
	}
	if !validation.Password(req.Password) {
		return nil, apperrors.NewFieldValidationError("password", "password does not meet the minimum requirements")
	}
	displayName := strings.TrimSpace(req.DisplayName)
	if !validation.DisplayName(displayName) {
		return nil, apperrors.NewFieldValidationError("displayName", "display name length is out of bounds")
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user, err := s.gateway.CreateUser(ctx, &models.User{
		Email:       email,
		Password:    hash,
		DisplayName: displayName,
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("userId", user.ID).Msg("User registered")

	return s.issueTokens(user)
}

func (s *authService) issueTokens(user *models.User) (*dto.AuthResponse, error) {
	accessToken, refreshToken, expiresIn, refreshExpiresIn, err := s.jwtService.GenerateTokenPair(user)
	if err != nil {
		return nil, err
	}

	return &dto.AuthResponse{
		User: dto.ToUserResponse(user),
		Tokens: dto.TokenResponse{
			AccessToken:      accessToken,
			RefreshToken:     refreshToken,
			TokenType:        "Bearer",
			ExpiresIn:        expiresIn,
			RefreshExpiresIn: refreshExpiresIn,
		},
	}, nil
}
