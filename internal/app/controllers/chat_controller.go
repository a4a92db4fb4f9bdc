package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/arivera/clubchat/internal/app/models/dto"
	"github.com/arivera/clubchat/internal/app/services"
	"github.com/arivera/clubchat/internal/middleware"
)

// ChatController handles the club chat timeline and message operations
type ChatController struct {
	timelineService   services.TimelineService
	dispatcherService services.DispatcherService
}

// NewChatController creates a new ChatController
func NewChatController(timelineService services.TimelineService, dispatcherService services.DispatcherService) *ChatController {
	return &ChatController{
		timelineService:   timelineService,
		dispatcherService: dispatcherService,
	}
}

// GetTimeline handles retrieving a club's assembled chat timeline
// @Summary Get club timeline
// @Description Retrieves the club's messages in chronological order with poll, event and form payloads resolved
// @Tags chat
// @Produce json
// @Security BearerAuth
// @Param id path string true "Club ID"
// @Success 200 {object} dto.APIResponse{data=dto.TimelineResponse} "Timeline retrieved successfully"
// @Failure 404 {object} dto.ErrorResponse "Club not found"
// @Router /clubs/{id}/timeline [get]
func (c *ChatController) GetTimeline(ctx *gin.Context) {
	timeline, err := c.timelineService.AssembleTimeline(ctx, ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(timeline))
}

// SendMessage handles posting a new chat message
// @Summary Send a message
// @Description Posts a text or image message to the club chat
// @Tags chat
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Club ID"
// @Param request body dto.SendMessageRequest true "Message data"
// @Success 201 {object} dto.APIResponse{data=dto.MessageResponse} "Message sent successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request format"
// @Failure 404 {object} dto.ErrorResponse "Club not found"
// @Router /clubs/{id}/messages [post]
func (c *ChatController) SendMessage(ctx *gin.Context) {
	var req dto.SendMessageRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeInvalidRequest, "Invalid request format").WithDetails(err.Error())))
		return
	}

	message, err := c.dispatcherService.SendMessage(ctx, ctx.Param("id"), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(message))
}

// ForwardMessage handles forwarding a message to another club
// @Summary Forward a message
// @Description Posts a copy of an existing message to another club's chat
// @Tags chat
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Club ID"
// @Param messageId path string true "Message ID"
// @Param request body dto.ForwardMessageRequest true "Forward target"
// @Success 201 {object} dto.APIResponse{data=dto.MessageResponse} "Message forwarded successfully"
// @Failure 404 {object} dto.ErrorResponse "Message not found"
// @Failure 409 {object} dto.ErrorResponse "Message already in target club"
// @Router /clubs/{id}/messages/{messageId}/forward [post]
func (c *ChatController) ForwardMessage(ctx *gin.Context) {
	var req dto.ForwardMessageRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeInvalidRequest, "Invalid request format").WithDetails(err.Error())))
		return
	}

	message, err := c.dispatcherService.ForwardMessage(ctx, ctx.Param("messageId"), req.TargetClubID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(message))
}

// ToggleReaction handles adding or removing an emoji reaction
// @Summary Toggle a reaction
// @Description Adds the user's reaction to a message, or removes it if already present
// @Tags chat
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param messageId path string true "Message ID"
// @Param request body dto.ToggleReactionRequest true "Reaction data"
// @Success 200 {object} dto.APIResponse{data=dto.MessageResponse} "Reaction toggled successfully"
// @Failure 404 {object} dto.ErrorResponse "Message not found"
// @Router /messages/{messageId}/reactions [post]
func (c *ChatController) ToggleReaction(ctx *gin.Context) {
	var req dto.ToggleReactionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeInvalidRequest, "Invalid request format").WithDetails(err.Error())))
		return
	}

	message, err := c.dispatcherService.ToggleReaction(ctx, ctx.Param("messageId"), req.Emoji)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(message))
}

// TogglePin handles pinning or unpinning a message
// @Summary Toggle a pin
// @Description Pins the message, or unpins it if already pinned
// @Tags chat
// @Produce json
// @Security BearerAuth
// @Param messageId path string true "Message ID"
// @Success 200 {object} dto.APIResponse{data=dto.MessageResponse} "Pin toggled successfully"
// @Failure 404 {object} dto.ErrorResponse "Message not found"
// @Router /messages/{messageId}/pin [post]
func (c *ChatController) TogglePin(ctx *gin.Context) {
	message, err := c.dispatcherService.TogglePin(ctx, ctx.Param("messageId"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(message))
}
