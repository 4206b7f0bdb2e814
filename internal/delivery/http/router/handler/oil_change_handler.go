package handler

import (
	"log/slog"
	"time"

	"garage/internal/delivery/http/response"
	"garage/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// OilChangeHandler holds dependencies for the oil change endpoints.
type OilChangeHandler struct {
	uc     usecase.OilChangeUsecase
	logger *slog.Logger
}

// NewOilChangeHandler is the constructor for OilChangeHandler, injected by Fx.
func NewOilChangeHandler(uc usecase.OilChangeUsecase, logger *slog.Logger) *OilChangeHandler {
	return &OilChangeHandler{uc: uc, logger: logger}
}

// Pointer fields keep "absent" distinct from a legitimate zero: mileage 0 is
// a valid reading and must not look like a missing field.
type createOilChangeRequest struct {
	ChangeDate string `json:"change_date" validate:"required,datetime=2006-01-02"`
	Mileage    *int64 `json:"mileage" validate:"required,gte=0"`
	Notes      string `json:"notes" validate:"omitempty,max=1000"`
}

type updateOilChangeRequest struct {
	ChangeDate *string `json:"change_date" validate:"omitempty,datetime=2006-01-02"`
	Mileage    *int64  `json:"mileage" validate:"omitempty,gte=0"`
	Notes      *string `json:"notes" validate:"omitempty,max=1000"`
}

// Create records an oil change under a vehicle.
func (h *OilChangeHandler) Create(c echo.Context) error {
	p, err := principal(c)
	if err != nil {
		return err
	}

	vehicleID, err := pathID(c, "vehicleId")
	if err != nil {
		return err
	}

	var req createOilChangeRequest
	if err := c.Bind(&req); err != nil {
		return err
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	changeDate, err := time.Parse(usecase.DateLayout, req.ChangeDate)
	if err != nil {
		return errors.WithStack(err)
	}

	record, err := h.uc.CreateOilChange(c.Request().Context(), &usecase.CreateOilChangeInput{
		UserID:     p.UserID,
		VehicleID:  vehicleID,
		ChangeDate: changeDate,
		Mileage:    *req.Mileage,
		Notes:      req.Notes,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Created(c, record, "oil change recorded")
}

// List returns one page of a vehicle's oil changes.
func (h *OilChangeHandler) List(c echo.Context) error {
	p, err := principal(c)
	if err != nil {
		return err
	}

	vehicleID, err := pathID(c, "vehicleId")
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

	output, err := h.uc.ListOilChanges(c.Request().Context(), &usecase.ListOilChangesInput{
		UserID:    p.UserID,
		VehicleID: vehicleID,
		Page:      query.Page,
		Limit:     query.Limit,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Paginated(c, output.Items, output.Pagination)
}

// Get returns a single oil change owned by the caller.
func (h *OilChangeHandler) Get(c echo.Context) error {
	p, err := principal(c)
	if err != nil {
		return err
	}

	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	record, err := h.uc.GetOilChange(c.Request().Context(), p.UserID, id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, record, "")
}

// Update applies a partial update to an oil change.
func (h *OilChangeHandler) Update(c echo.Context) error {
	p, err := principal(c)
	if err != nil {
		return err
	}

	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req updateOilChangeRequest
	if err := c.Bind(&req); err != nil {
		return err
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	input := &usecase.UpdateOilChangeInput{
		UserID:  p.UserID,
		ID:      id,
		Mileage: req.Mileage,
		Notes:   req.Notes,
	}

	if req.ChangeDate != nil {
		changeDate, err := time.Parse(usecase.DateLayout, *req.ChangeDate)
		if err != nil {
			return errors.WithStack(err)
		}
		input.ChangeDate = &changeDate
	}

	record, err := h.uc.UpdateOilChange(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, record, "oil change updated")
}

// Delete removes a single oil change.
func (h *OilChangeHandler) Delete(c echo.Context) error {
	p, err := principal(c)
	if err != nil {
		return err
	}

	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	if err := h.uc.DeleteOilChange(c.Request().Context(), p.UserID, id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, nil, "oil change deleted")
}
