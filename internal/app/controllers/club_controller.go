package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/arivera/clubchat/internal/app/models/dto"
	"github.com/arivera/clubchat/internal/app/services"
	"github.com/arivera/clubchat/internal/middleware"
)

// ClubController handles club listing, discovery and membership
type ClubController struct {
	clubService services.ClubService
}

// NewClubController creates a new ClubController
func NewClubController(clubService services.ClubService) *ClubController {
	return &ClubController{clubService: clubService}
}

// GetClubs handles retrieving all clubs
// @Summary Get all clubs
// @Description Retrieves every club visible to the authenticated user
// @Tags clubs
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=dto.ClubListResponse} "Clubs retrieved successfully"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Router /clubs [get]
func (c *ClubController) GetClubs(ctx *gin.Context) {
	response, err := c.clubService.GetClubs(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(response))
}

// SearchClubs handles club discovery
// @Summary Search clubs
// @Description Searches clubs by name or description with an optional privacy filter
// @Tags clubs
// @Produce json
// @Security BearerAuth
// @Param q query string false "Search text"
// @Param privacy query string false "Privacy filter" Enums(public, private)
// @Success 200 {object} dto.APIResponse{data=dto.ClubListResponse} "Clubs retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request parameters"
// @Router /clubs/search [get]
func (c *ClubController) SearchClubs(ctx *gin.Context) {
	var req dto.SearchClubsRequest
	if err := ctx.ShouldBindQuery(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeInvalidRequest, "Invalid request parameters").WithDetails(err.Error())))
		return
	}

	response, err := c.clubService.SearchClubs(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(response))
}

// GetClubByID handles retrieving a specific club
// @Summary Get club by ID
// @Description Retrieves a specific club by its ID
// @Tags clubs
// @Produce json
// @Security BearerAuth
// @Param id path string true "Club ID"
// @Success 200 {object} dto.APIResponse{data=dto.ClubResponse} "Club retrieved successfully"
// @Failure 404 {object} dto.ErrorResponse "Club not found"
// @Router /clubs/{id} [get]
func (c *ClubController) GetClubByID(ctx *gin.Context) {
	club, err := c.clubService.GetClubByID(ctx, ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(club))
}

// JoinClub handles joining a club
// @Summary Join a club
// @Description Adds the authenticated user to the club; joining twice is a no-op
// @Tags clubs
// @Produce json
// @Security BearerAuth
// @Param id path string true "Club ID"
// @Success 200 {object} dto.APIResponse{data=dto.ClubResponse} "Joined successfully"
// @Failure 404 {object} dto.ErrorResponse "Club not found"
// @Router /clubs/{id}/join [post]
func (c *ClubController) JoinClub(ctx *gin.Context) {
	club, err := c.clubService.JoinClub(ctx, ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(club))
}
