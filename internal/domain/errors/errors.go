// Package errors defines the application error taxonomy: a closed set of
// domain errors that the delivery layer translates into the response envelope.
package errors

import (
	"net/http"

	"github.com/pkg/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
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

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// Is matches errors carrying the same business error code. A copy produced by
// WithDetails still compares equal to its sentinel under errors.Is.
func (e *BaseError) Is(target error) bool {
	var base *BaseError
	if errors.As(target, &base) {
		return e.errorCode == base.errorCode
	}

	return false
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Predefined error types
var (
	// ErrResourceNotFound deliberately covers both "does not exist" and
	// "exists but belongs to another tenant"; distinguishing them would leak
	// existence information across tenants.
	ErrResourceNotFound = NewBaseError(
		http.StatusNotFound,
		"RESOURCE_NOT_FOUND",
		"resource not found",
		"",
	)

	ErrEmailTaken = NewBaseError(
		http.StatusConflict,
		"EMAIL_TAKEN",
		"email is already registered",
		"",
	)

	ErrInvalidCredentials = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_CREDENTIALS",
		"invalid email or password",
		"",
	)

	// Authentication-header outcomes, one per failure mode so clients can tell
	// a missing header from a stale token.
	ErrAuthMissingToken = NewBaseError(
		http.StatusUnauthorized,
		"AUTH_MISSING_TOKEN",
		"authorization header is missing",
		"",
	)

	ErrAuthMalformedToken = NewBaseError(
		http.StatusUnauthorized,
		"AUTH_MALFORMED_TOKEN",
		"authorization header must be a Bearer token",
		"",
	)

	ErrAuthTokenExpired = NewBaseError(
		http.StatusUnauthorized,
		"AUTH_TOKEN_EXPIRED",
		"access token has expired",
		"",
	)

	ErrAuthTokenInvalid = NewBaseError(
		http.StatusUnauthorized,
		"AUTH_TOKEN_INVALID",
		"access token is invalid",
		"",
	)

	ErrRefreshTokenInvalid = NewBaseError(
		http.StatusUnauthorized,
		"REFRESH_TOKEN_INVALID",
		"invalid or expired refresh token",
		"",
	)

	ErrPasswordStrength = NewBaseError(
		http.StatusBadRequest,
		"PASSWORD_STRENGTH",
		"password does not meet strength requirements",
		"",
	)

	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"request validation failed",
		"",
	)

	ErrInternal = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"internal server error",
		"",
	)
)

// NewDatabaseExecuteError wraps an unexpected driver error. The raw detail is
// kept for logs only; the delivery layer redacts it outside debug mode.
func NewDatabaseExecuteError(err error, message string) *BaseError {
	detail := ""
	if err != nil {
		detail = err.Error()
	}

	return NewBaseError(http.StatusInternalServerError, "DATABASE_ERROR", message, detail)
}
