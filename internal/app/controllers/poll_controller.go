package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/arivera/clubchat/internal/app/models/dto"
	"github.com/arivera/clubchat/internal/app/services"
	"github.com/arivera/clubchat/internal/middleware"
)

// PollController handles poll operations
type PollController struct {
	dispatcherService services.DispatcherService
	pollService       services.PollService
}

// NewPollController creates a new PollController
func NewPollController(dispatcherService services.DispatcherService, pollService services.PollService) *PollController {
	return &PollController{
		dispatcherService: dispatcherService,
		pollService:       pollService,
	}
}

// GetPollByID handles retrieving a poll
// @Summary Get poll by ID
// @Description Retrieves a poll with its options and derived vote totals
// @Tags polls
// @Produce json
// @Security BearerAuth
// @Param id path string true "Poll ID"
// @Success 200 {object} dto.APIResponse{data=dto.PollResponse} "Poll retrieved successfully"
// @Failure 404 {object} dto.ErrorResponse "Poll not found"
// @Router /polls/{id} [get]
func (c *PollController) GetPollByID(ctx *gin.Context) {
	poll, err := c.pollService.GetPollByID(ctx, ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(poll))
}

// VotePoll handles casting a vote
// @Summary Vote on a poll
// @Description Records the user's vote; on single-choice polls a new vote replaces the previous one
// @Tags polls
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Poll ID"
// @Param request body dto.VotePollRequest true "Vote data"
// @Success 200 {object} dto.APIResponse{data=dto.PollResponse} "Vote recorded successfully"
// @Failure 404 {object} dto.ErrorResponse "Poll or option not found"
// @Router /polls/{id}/votes [post]
func (c *PollController) VotePoll(ctx *gin.Context) {
	var req dto.VotePollRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeInvalidRequest, "Invalid request format").WithDetails(err.Error())))
		return
	}

	poll, err := c.dispatcherService.VotePoll(ctx, ctx.Param("id"), req.OptionID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(poll))
}

// CreatePoll handles creating a poll and announcing it in the club chat
// @Summary Create a poll
// @Description Creates a poll and posts its announcement message to the club chat
// @Tags polls
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Club ID"
// @Param request body dto.CreatePollRequest true "Poll data"
// @Success 201 {object} dto.APIResponse{data=dto.CreatePollResponse} "Poll created successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request format"
// @Failure 404 {object} dto.ErrorResponse "Club not found"
// @Router /clubs/{id}/polls [post]
func (c *PollController) CreatePoll(ctx *gin.Context) {
	var req dto.CreatePollRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeInvalidRequest, "Invalid request format").WithDetails(err.Error())))
		return
	}

	response, err := c.dispatcherService.CreatePoll(ctx, ctx.Param("id"), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(response))
}
