package middleware

import (
	"log/slog"
	"net/http"

	"garage/config"
	deliverycontext "garage/internal/delivery/context"
	"garage/internal/delivery/http/response"
	domainerrors "garage/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ErrorMiddleware translates errors escaping the handlers into the API envelope.
type ErrorMiddleware struct {
	logger *slog.Logger
	debug  bool
}

// NewErrorMiddleware creates a new error handling middleware.
func NewErrorMiddleware(logger *slog.Logger, cfg *config.Config) *ErrorMiddleware {
	return &ErrorMiddleware{
		logger: logger,
		debug:  cfg.Env.Debug,
	}
}

// HandleHTTPError is installed as Echo's HTTPErrorHandler. It is the single
// place where domain errors become status codes and envelope bodies.
func (m *ErrorMiddleware) HandleHTTPError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	var validationErr *domainerrors.ValidationError
	if errors.As(err, &validationErr) {
		_ = response.ValidationFailed(c, validationErr.Message(), validationErr.Violations)

		return
	}

	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		m.writeAppError(err, appErr, c)

		return
	}

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		m.writeEchoError(httpErr, c)

		return
	}

	m.log(c).Error("Unhandled error",
		slog.Any("error", err),
		slog.String("method", c.Request().Method),
		slog.String("path", c.Request().URL.Path),
	)

	message := "internal server error"
	if m.debug {
		message = err.Error()
	}
	_ = response.Error(c, http.StatusInternalServerError, message)
}

func (m *ErrorMiddleware) writeAppError(err error, appErr domainerrors.AppError, c echo.Context) {
	if appErr.HTTPCode() >= http.StatusInternalServerError {
		m.log(c).Error("Request failed",
			slog.Any("error", err),
			slog.String("errorCode", appErr.ErrorCode()),
			slog.String("detail", appErr.Details()),
			slog.String("method", c.Request().Method),
			slog.String("path", c.Request().URL.Path),
		)
	}

	message := appErr.Message()
	if m.debug && appErr.Details() != "" {
		message = message + ": " + appErr.Details()
	}
	_ = response.Error(c, appErr.HTTPCode(), message)
}

// writeEchoError covers the errors Echo itself raises before or instead of the
// handlers, such as the body size limit and unknown routes.
func (m *ErrorMiddleware) writeEchoError(httpErr *echo.HTTPError, c echo.Context) {
	message := ""
	switch httpErr.Code {
	case http.StatusRequestEntityTooLarge:
		message = "request body too large"
	case http.StatusBadRequest:
		message = "malformed request body"
	case http.StatusNotFound:
		message = "route not found"
	case http.StatusMethodNotAllowed:
		message = "method not allowed"
	default:
		if text, ok := httpErr.Message.(string); ok {
			message = text
		}
	}

	_ = response.Error(c, httpErr.Code, message)
}

func (m *ErrorMiddleware) log(c echo.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(c.Request().Context(), m.logger)
}
