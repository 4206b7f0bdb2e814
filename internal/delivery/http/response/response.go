// Package response renders the unified API envelope.
package response

import (
	"net/http"

	"garage/internal/usecase"

	"github.com/labstack/echo/v4"
)

// Status values carried in every envelope.
const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// Envelope is the unified API response structure. Every endpoint, success or
// failure, renders one of these.
type Envelope struct {
	Status     string              `json:"status"`
	Message    string              `json:"message,omitempty"`
	Data       any                 `json:"data,omitempty"`
	Pagination *usecase.Pagination `json:"pagination,omitempty"`
	Errors     []string            `json:"errors,omitempty"`
}

// Success renders a 200 envelope with optional data.
func Success(c echo.Context, data any, message string) error {
	return c.JSON(http.StatusOK, Envelope{
		Status:  StatusSuccess,
		Message: message,
		Data:    data,
	})
}

// Created renders a 201 envelope for newly created resources.
func Created(c echo.Context, data any, message string) error {
	return c.JSON(http.StatusCreated, Envelope{
		Status:  StatusSuccess,
		Message: message,
		Data:    data,
	})
}

// Paginated renders a 200 envelope carrying one page of a listing.
func Paginated(c echo.Context, data any, pagination usecase.Pagination) error {
	return c.JSON(http.StatusOK, Envelope{
		Status:     StatusSuccess,
		Data:       data,
		Pagination: &pagination,
	})
}

// Error renders an error envelope with the given status code and message.
func Error(c echo.Context, statusCode int, message string) error {
	if message == "" {
		message = http.StatusText(statusCode)
	}

	return c.JSON(statusCode, Envelope{
		Status:  StatusError,
		Message: message,
	})
}

// ValidationFailed renders a 400 envelope listing every field violation.
func ValidationFailed(c echo.Context, message string, violations []string) error {
	return c.JSON(http.StatusBadRequest, Envelope{
		Status:  StatusError,
		Message: message,
		Errors:  violations,
	})
}
