package services

import (
	"context"
	"strings"

	"github.com/rs/zerolog"

	"github.com/arivera/clubchat/internal/app/gateway"
	"github.com/arivera/clubchat/internal/app/models"
	"github.com/arivera/clubchat/internal/app/models/dto"
	"github.com/arivera/clubchat/internal/pkg/apperrors"
)

// ClubService handles club listing, discovery and membership
type ClubService interface {
	GetClubs(ctx context.Context) (*dto.ClubListResponse, error)
	SearchClubs(ctx context.Context, req *dto.SearchClubsRequest) (*dto.ClubListResponse, error)
	GetClubByID(ctx context.Context, id string) (*dto.ClubResponse, error)
	JoinClub(ctx context.Context, clubID string) (*dto.ClubResponse, error)
}

type clubService struct {
	gateway gateway.Gateway
	logger  zerolog.Logger
}

// NewClubService creates a new ClubService
func NewClubService(gw gateway.Gateway, logger zerolog.Logger) ClubService {
	return &clubService{
		gateway: gw,
		logger:  logger.With().Str("service", "club").Logger(),
	}
}

func (s *clubService) GetClubs(ctx context.Context) (*dto.ClubListResponse, error) {
	clubs, err := s.gateway.FetchClubs(ctx)
	if err != nil {
		return nil, err
	}
	return toClubList(clubs), nil
}

func (s *clubService) SearchClubs(ctx context.Context, req *dto.SearchClubsRequest) (*dto.ClubListResponse, error) {
	filters := gateway.SearchFilters{}
	if req.Privacy != "" {
		privacy := models.ClubPrivacy(req.Privacy)
		filters.Privacy = &privacy
	}

	clubs, err := s.gateway.SearchClubs(ctx, strings.TrimSpace(req.Query), filters)
	if err != nil {
		return nil, err
	}
	return toClubList(clubs), nil
}

func (s *clubService) GetClubByID(ctx context.Context, id string) (*dto.ClubResponse, error) {
	if id == "" {
		return nil, apperrors.NewValidationError("club id must not be empty")
	}

	club, err := s.gateway.FetchClub(ctx, id)
	if err != nil {
		return nil, err
	}

	response := dto.ToClubResponse(club)
	return &response, nil
}

// JoinClub adds the authenticated user to the club. Joining a club the
// user already belongs to succeeds without a second membership.
func (s *clubService) JoinClub(ctx context.Context, clubID string) (*dto.ClubResponse, error) {
	userID, err := currentUserID(ctx)
	if err != nil {
		return nil, err
	}

	club, err := s.gateway.JoinClub(ctx, clubID, userID)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("clubId", clubID).Str("userId", userID).Msg("User joined club")

	response := dto.ToClubResponse(club)
	return &response, nil
}

func toClubList(clubs []models.Club) *dto.ClubListResponse {
	response := &dto.ClubListResponse{Clubs: make([]dto.ClubResponse, 0, len(clubs))}
	for i := range clubs {
		response.Clubs = append(response.Clubs, dto.ToClubResponse(&clubs[i]))
	}
	return response
}
