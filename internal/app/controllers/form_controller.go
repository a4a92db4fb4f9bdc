package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/arivera/clubchat/internal/app/models/dto"
	"github.com/arivera/clubchat/internal/app/services"
	"github.com/arivera/clubchat/internal/middleware"
)

// FormController handles form operations
type FormController struct {
	formService       services.FormService
	dispatcherService services.DispatcherService
}

// NewFormController creates a new FormController
func NewFormController(formService services.FormService, dispatcherService services.DispatcherService) *FormController {
	return &FormController{
		formService:       formService,
		dispatcherService: dispatcherService,
	}
}

// GetFormByID handles retrieving a form definition
// @Summary Get form by ID
// @Description Retrieves a form with its questions and response count
// @Tags forms
// @Produce json
// @Security BearerAuth
// @Param id path string true "Form ID"
// @Success 200 {object} dto.APIResponse{data=dto.FormResponse} "Form retrieved successfully"
// @Failure 404 {object} dto.ErrorResponse "Form not found"
// @Router /forms/{id} [get]
func (c *FormController) GetFormByID(ctx *gin.Context) {
	form, err := c.formService.GetFormByID(ctx, ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(form))
}

// CreateForm handles creating a form and announcing it in the club chat
// @Summary Create a form
// @Description Creates a form and posts its announcement message to the club chat
// @Tags forms
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Club ID"
// @Param request body dto.CreateFormRequest true "Form data"
// @Success 201 {object} dto.APIResponse{data=dto.CreateFormResponse} "Form created successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request format"
// @Failure 404 {object} dto.ErrorResponse "Club not found"
// @Router /clubs/{id}/forms [post]
func (c *FormController) CreateForm(ctx *gin.Context) {
	var req dto.CreateFormRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeInvalidRequest, "Invalid request format").WithDetails(err.Error())))
		return
	}

	response, err := c.dispatcherService.CreateForm(ctx, ctx.Param("id"), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(response))
}

// SubmitFormResponse handles submitting answers to a form
// @Summary Submit a form response
// @Description Validates the submission against the form definition and records it
// @Tags forms
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Form ID"
// @Param request body dto.SubmitFormRequest true "Submission data"
// @Success 200 {object} dto.APIResponse{data=dto.FormResponse} "Response recorded successfully"
// @Failure 400 {object} dto.ErrorResponse "Submission does not match the form definition"
// @Failure 404 {object} dto.ErrorResponse "Form not found"
// @Router /forms/{id}/responses [post]
func (c *FormController) SubmitFormResponse(ctx *gin.Context) {
	var req dto.SubmitFormRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeInvalidRequest, "Invalid request format").WithDetails(err.Error())))
		return
	}

	form, err := c.dispatcherService.SubmitFormResponse(ctx, ctx.Param("id"), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(form))
}
