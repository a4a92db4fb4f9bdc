package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/arivera/clubchat/internal/app/gateway"
	"github.com/arivera/clubchat/internal/app/models"
	"github.com/arivera/clubchat/internal/app/models/dto"
	"github.com/arivera/clubchat/internal/app/services"
	"github.com/arivera/clubchat/internal/middleware"
)

// EventController handles event operations
type EventController struct {
	eventService      services.EventService
	dispatcherService services.DispatcherService
}

// NewEventController creates a new EventController
func NewEventController(eventService services.EventService, dispatcherService services.DispatcherService) *EventController {
	return &EventController{
		eventService:      eventService,
		dispatcherService: dispatcherService,
	}
}

// GetEvents handles listing events
// @Summary Get events
// @Description Lists events, optionally filtered by derived status
// @Tags events
// @Produce json
// @Security BearerAuth
// @Param status query string false "Status filter" Enums(all, active, expired) default(all)
// @Success 200 {object} dto.APIResponse{data=dto.EventListResponse} "Events retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid status filter"
// @Router /events [get]
func (c *EventController) GetEvents(ctx *gin.Context) {
	filter := gateway.EventFilter(ctx.DefaultQuery("status", string(gateway.EventFilterAll)))

	response, err := c.eventService.GetEvents(ctx, filter)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(response))
}

// GetEventByID handles retrieving an event
// @Summary Get event by ID
// @Description Retrieves an event with its derived status and RSVP tally
// @Tags events
// @Produce json
// @Security BearerAuth
// @Param id path string true "Event ID"
// @Success 200 {object} dto.APIResponse{data=dto.EventResponse} "Event retrieved successfully"
// @Failure 404 {object} dto.ErrorResponse "Event not found"
// @Router /events/{id} [get]
func (c *EventController) GetEventByID(ctx *gin.Context) {
	event, err := c.eventService.GetEventByID(ctx, ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(event))
}

// RsvpEvent handles responding to an event
// @Summary RSVP to an event
// @Description Records the user's attendance response; a new response replaces the previous one
// @Tags events
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Event ID"
// @Param request body dto.RSVPRequest true "RSVP data"
// @Success 200 {object} dto.APIResponse{data=dto.EventResponse} "RSVP recorded successfully"
// @Failure 404 {object} dto.ErrorResponse "Event not found"
// @Failure 409 {object} dto.ErrorResponse "Event already over"
// @Router /events/{id}/rsvp [post]
func (c *EventController) RsvpEvent(ctx *gin.Context) {
	var req dto.RSVPRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeInvalidRequest, "Invalid request format").WithDetails(err.Error())))
		return
	}

	event, err := c.dispatcherService.RsvpEvent(ctx, ctx.Param("id"), models.RSVPResponse(req.Response))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(event))
}

// CreateEvent handles creating an event and announcing it in the club chat
// @Summary Create an event
// @Description Creates an event and posts its announcement message to the club chat
// @Tags events
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Club ID"
// @Param request body dto.CreateEventRequest true "Event data"
// @Success 201 {object} dto.APIResponse{data=dto.CreateEventResponse} "Event created successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request format"
// @Failure 404 {object} dto.ErrorResponse "Club not found"
// @Router /clubs/{id}/events [post]
func (c *EventController) CreateEvent(ctx *gin.Context) {
	var req dto.CreateEventRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeInvalidRequest, "Invalid request format").WithDetails(err.Error())))
		return
	}

	response, err := c.dispatcherService.CreateEvent(ctx, ctx.Param("id"), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(response))
}
