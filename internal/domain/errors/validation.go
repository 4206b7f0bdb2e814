package errors

import (
	"net/http"
	"strings"
)

// ValidationError carries every field-level violation found in a request.
// Violations are collected before any repository call, so a failing request
// never causes a partial write.
type ValidationError struct {
	*BaseError
	Violations []string
}

// NewValidationError builds a ValidationError from the collected violations.
func NewValidationError(violations []string) *ValidationError {
	return &ValidationError{
		BaseError: NewBaseError(
			http.StatusBadRequest,
			"VALIDATION_FAILED",
			"request validation failed",
			strings.Join(violations, "; "),
		),
		Violations: violations,
	}
}
