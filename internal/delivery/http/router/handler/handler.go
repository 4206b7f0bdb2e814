// Package handler contains the HTTP handlers for the application.
package handler

import (
	"strconv"

	"garage/internal/delivery/http/middleware"
	"garage/internal/delivery/http/response"
	domainerrors "garage/internal/domain/errors"
	"garage/internal/domain/service"

	"github.com/labstack/echo/v4"
)

// HealthCheck reports service liveness.
func HealthCheck(c echo.Context) error {
	return response.Success(c, nil, "ok")
}

// principal returns the authenticated identity. Routes reaching a handler
// through the auth middleware always carry one; the error branch only fires
// on a miswired route.
func principal(c echo.Context) (*service.Principal, error) {
	p, ok := middleware.CurrentPrincipal(c)
	if !ok {
		return nil, domainerrors.ErrAuthMissingToken
	}

	return p, nil
}

// pathID parses a positive numeric path parameter.
func pathID(c echo.Context, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, domainerrors.NewValidationError([]string{name + " must be a positive integer"})
	}

	return id, nil
}
