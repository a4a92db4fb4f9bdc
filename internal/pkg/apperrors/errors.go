package apperrors

import "errors"

// Core error taxonomy. Every failure surfaced by the service wraps one of
// these sentinels so controllers can map them to HTTP responses.
var (
	// ErrValidation marks a client-side precondition failure. No gateway
	// call is made when this is returned.
	ErrValidation = errors.New("validation failed")

	// ErrNotFound marks a referenced entity id that does not resolve.
	ErrNotFound = errors.New("resource not found")

	// ErrInvalidState marks an operation not permitted in the entity's
	// current state, e.g. RSVP to an expired event.
	ErrInvalidState = errors.New("invalid state")

	// ErrGateway marks a failed or rejected backend gateway call.
	ErrGateway = errors.New("gateway failure")
)

// Authentication errors
var (
	ErrUnauthorized       = errors.New("authentication required")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrTokenExpired       = errors.New("token expired")
	ErrTokenInvalid       = errors.New("invalid token")
	ErrInvalidFormat      = errors.New("invalid token format")
	ErrPermissionDenied   = errors.New("permission denied")
	ErrEmailAlreadyExists = errors.New("email already exists")
)

// NewValidationError creates a validation error with a message
func NewValidationError(message string) error {
	return &CustomError{
		Err:     ErrValidation,
		Message: message,
	}
}

// NewFieldValidationError creates a validation error tied to one request field
func NewFieldValidationError(field, message string) error {
	return &CustomError{
		Err:     ErrValidation,
		Message: message,
		Field:   field,
	}
}

// NewNotFoundError creates a not-found error with a message
func NewNotFoundError(message string) error {
	return &CustomError{
		Err:     ErrNotFound,
		Message: message,
	}
}

// NewInvalidStateError creates an invalid-state error with a message
func NewInvalidStateError(message string) error {
	return &CustomError{
		Err:     ErrInvalidState,
		Message: message,
	}
}

// NewGatewayError wraps a backend gateway failure with a message
func NewGatewayError(message string) error {
	return &CustomError{
		Err:     ErrGateway,
		Message: message,
	}
}

// Is returns whether target matches any of the errors in errList
func Is(err, target error, errList ...error) bool {
	if errors.Is(err, target) {
		return true
	}

	for _, e := range errList {
		if errors.Is(err, e) {
			return true
		}
	}

	return false
}

// CustomError represents application-specific errors with additional context
type CustomError struct {
	Err     error
	Message string
	Field   string
	Details map[string]interface{}
}

// Error implements error interface
func (e *CustomError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "unknown error"
}

// Unwrap implements errors.Unwrap interface
func (e *CustomError) Unwrap() error {
	return e.Err
}

// WithField records the request field the error relates to
func (e *CustomError) WithField(field string) *CustomError {
	e.Field = field
	return e
}

// WithDetails adds context details to the error
func (e *CustomError) WithDetails(details map[string]interface{}) *CustomError {
	e.Details = details
	return e
}
