// Package errors defines the application-facing error taxonomy. Every failure
// surfaced to a caller carries a stable machine-readable code, an HTTP status,
// and a short human message; validation failures additionally carry a
// structured details payload enumerating the offending values.
package errors

import (
	"net/http"

	"crewdir/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() any      // Structured error details (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   any
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns structured error details
func (e *BaseError) Details() any {
	return e.details
}

// WithMessage returns a copy of the error with a more specific message.
func (e *BaseError) WithMessage(message string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   message,
		details:   e.details,
	}
}

// WithDetails returns a copy of the error carrying a details payload.
func (e *BaseError) WithDetails(details any) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Predefined error types
var (
	// Authorization errors
	ErrUnauthorized = NewBaseError(
		http.StatusUnauthorized,
		"UNAUTHORIZED",
		"Caller identity could not be resolved",
	)

	ErrForbidden = NewBaseError(
		http.StatusForbidden,
		"FORBIDDEN",
		"Admin role is required for this operation",
	)

	// Resource errors
	ErrAgencyNotFound = NewBaseError(
		http.StatusNotFound,
		"AGENCY_NOT_FOUND",
		"Agency not found",
	)

	ErrComplianceNotFound = NewBaseError(
		http.StatusNotFound,
		"COMPLIANCE_NOT_FOUND",
		"No compliance record found for this agency and type",
	)

	ErrNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND",
		"Resource not found",
	)

	// Validation errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Input validation failed",
	)

	// Primary-path failures
	ErrStoreFailed = NewBaseError(
		http.StatusInternalServerError,
		"STORE_FAILED",
		"Database operation failed",
	)

	ErrStorageFailed = NewBaseError(
		http.StatusInternalServerError,
		"STORAGE_FAILED",
		"Document storage operation failed",
	)

	// General errors
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Internal server error",
	)

	ErrConflict = NewBaseError(
		http.StatusConflict,
		"CONFLICT",
		"Resource conflict",
	)
)

// NewValidationError builds a validation failure carrying a structured
// details payload, e.g. {"invalid_trade_ids": [...]}.
func NewValidationError(message string, details map[string]any) *BaseError {
	return &BaseError{
		httpCode:  http.StatusBadRequest,
		errorCode: "VALIDATION_FAILED",
		message:   message,
		details:   details,
	}
}
