package handler

import (
	"log/slog"

	"garage/internal/delivery/http/response"
	"garage/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

const (
	defaultPage  = 1
	defaultLimit = 10
)

// VehicleHandler holds dependencies for the vehicle endpoints.
type VehicleHandler struct {
	uc     usecase.VehicleUsecase
	logger *slog.Logger
}

// NewVehicleHandler is the constructor for VehicleHandler, injected by Fx.
func NewVehicleHandler(uc usecase.VehicleUsecase, logger *slog.Logger) *VehicleHandler {
	return &VehicleHandler{uc: uc, logger: logger}
}

type createVehicleRequest struct {
	Name         string `json:"name" validate:"required,min=1,max=100"`
	LicensePlate string `json:"license_plate" validate:"omitempty,max=20"`
}

// listQuery is the shared pagination query shape. Zero values mean "not
// provided" and fall back to the defaults after validation.
type listQuery struct {
	Page   int    `query:"page" json:"page" validate:"omitempty,gte=1"`
	Limit  int    `query:"limit" json:"limit" validate:"omitempty,gte=1,lte=100"`
	Search string `query:"search" json:"search" validate:"omitempty,max=100"`
}

func (q *listQuery) applyDefaults() {
	if q.Page == 0 {
		q.Page = defaultPage
	}
	if q.Limit == 0 {
		q.Limit = defaultLimit
	}
}

// Create handles vehicle registration.
func (h *VehicleHandler) Create(c echo.Context) error {
	p, err := principal(c)
	if err != nil {
		return err
	}

	var req createVehicleRequest
	if err := c.Bind(&req); err != nil {
		return err
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	vehicle, err := h.uc.CreateVehicle(c.Request().Context(), &usecase.CreateVehicleInput{
		UserID:       p.UserID,
		Name:         req.Name,
		LicensePlate: req.LicensePlate,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Created(c, vehicle, "vehicle created")
}

// List returns one page of the caller's vehicles.
func (h *VehicleHandler) List(c echo.Context) error {
	p, err := principal(c)
	if err != nil {
		return err
	}

	var query listQuery
	if err := c.Bind(&query); err != nil {
		return err
	}
	if err := c.Validate(&query); err != nil {
		return err
	}
	query.applyDefaults()

	output, err := h.uc.ListVehicles(c.Request().Context(), &usecase.ListVehiclesInput{
		UserID: p.UserID,
		Search: query.Search,
		Page:   query.Page,
		Limit:  query.Limit,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Paginated(c, output.Items, output.Pagination)
}

// Get returns a single vehicle owned by the caller.
func (h *VehicleHandler) Get(c echo.Context) error {
	p, err := principal(c)
	if err != nil {
		return err
	}

	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	vehicle, err := h.uc.GetVehicle(c.Request().Context(), p.UserID, id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, vehicle, "")
}

// Delete removes a vehicle and its maintenance history.
func (h *VehicleHandler) Delete(c echo.Context) error {
	p, err := principal(c)
	if err != nil {
		return err
	}

	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	if err := h.uc.DeleteVehicle(c.Request().Context(), p.UserID, id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, nil, "vehicle deleted")
}
