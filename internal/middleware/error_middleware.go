package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/arivera/clubchat/internal/app/models/dto"
	"github.com/arivera/clubchat/internal/pkg/apperrors"
)

// HandleAPIError maps service errors onto the standard error envelope.
// The error taxonomy is small on purpose: validation 400, not-found 404,
// invalid-state 409, gateway failure 502, auth errors 401/403,
// everything else 500.
func HandleAPIError(c *gin.Context, err error) {
	var custom *apperrors.CustomError
	errors.As(err, &custom)

	detail := func(code dto.ErrorCode, fallback string) *dto.ErrorDetail {
		message := fallback
		if custom != nil && custom.Message != "" {
			message = custom.Message
		}
		errorDetail := dto.NewErrorDetail(code, message)
		if custom != nil && custom.Field != "" {
			errorDetail = errorDetail.WithField(custom.Field)
		}
		if custom != nil && custom.Details != nil {
			errorDetail = errorDetail.WithDetails(custom.Details)
		}
		return errorDetail
	}

	switch {
	case errors.Is(err, apperrors.ErrValidation):
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(detail(dto.ErrorCodeValidationFailed, "Validation failed")))
	case errors.Is(err, apperrors.ErrNotFound):
		c.JSON(http.StatusNotFound, dto.NewErrorResponse(detail(dto.ErrorCodeResourceNotFound, "Resource not found")))
	case errors.Is(err, apperrors.ErrInvalidState):
		c.JSON(http.StatusConflict, dto.NewErrorResponse(detail(dto.ErrorCodeInvalidState, "Operation not permitted in the current state")))
	case errors.Is(err, apperrors.ErrGateway):
		c.JSON(http.StatusBadGateway, dto.NewErrorResponse(detail(dto.ErrorCodeGatewayError, "Backend gateway failure")))
	case errors.Is(err, apperrors.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, dto.NewErrorResponse(dto.NewErrorDetail(dto.ErrorCodeInvalidCredentials, "Invalid credentials")))
	case errors.Is(err, apperrors.ErrUnauthorized):
		c.JSON(http.StatusUnauthorized, dto.NewErrorResponse(dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")))
	case errors.Is(err, apperrors.ErrTokenExpired):
		c.JSON(http.StatusUnauthorized, dto.NewErrorResponse(dto.NewErrorDetail(dto.ErrorCodeExpiredToken, "Token expired")))
	case errors.Is(err, apperrors.ErrTokenInvalid):
		c.JSON(http.StatusUnauthorized, dto.NewErrorResponse(dto.NewErrorDetail(dto.ErrorCodeInvalidToken, "Invalid token")))
	case errors.Is(err, apperrors.ErrPermissionDenied):
		c.JSON(http.StatusForbidden, dto.NewErrorResponse(dto.NewErrorDetail(dto.ErrorCodeForbidden, "Permission denied")))
	case errors.Is(err, apperrors.ErrEmailAlreadyExists):
		c.JSON(http.StatusConflict, dto.NewErrorResponse(dto.NewErrorDetail(dto.ErrorCodeResourceAlreadyExists, "Email already exists")))
	default:
		c.JSON(http.StatusInternalServerError, dto.NewErrorResponse(dto.NewErrorDetail(dto.ErrorCodeInternalServer, "Internal server error")))
	}
}
