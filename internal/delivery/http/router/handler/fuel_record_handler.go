package handler

import (
	"log/slog"
	"time"

	"garage/internal/delivery/http/response"
	"garage/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// FuelRecordHandler holds dependencies for the fuel record endpoints.
type FuelRecordHandler struct {
	uc     usecase.FuelRecordUsecase
	logger *slog.Logger
}

// NewFuelRecordHandler is the constructor for FuelRecordHandler, injected by Fx.
func NewFuelRecordHandler(uc usecase.FuelRecordUsecase, logger *slog.Logger) *FuelRecordHandler {
	return &FuelRecordHandler{uc: uc, logger: logger}
}

type createFuelRecordRequest struct {
	FillDate      string   `json:"fill_date" validate:"required,datetime=2006-01-02"`
	PricePerLiter *float64 `json:"price_per_liter" validate:"required,gt=0"`
	LitersFilled  *float64 `json:"liters_filled" validate:"required,gt=0"`
}

type updateFuelRecordRequest struct {
	FillDate      *string  `json:"fill_date" validate:"omitempty,datetime=2006-01-02"`
	PricePerLiter *float64 `json:"price_per_liter" validate:"omitempty,gt=0"`
	LitersFilled  *float64 `json:"liters_filled" validate:"omitempty,gt=0"`
}

// Create records a refueling under a vehicle.
func (h *FuelRecordHandler) Create(c echo.Context) error {
	p, err := principal(c)
	if err != nil {
		return err
	}

	vehicleID, err := pathID(c, "vehicleId")
	if err != nil {
		return err
	}

	var req createFuelRecordRequest
	if err := c.Bind(&req); err != nil {
		return err
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	fillDate, err := time.Parse(usecase.DateLayout, req.FillDate)
	if err != nil {
		return errors.WithStack(err)
	}

	record, err := h.uc.CreateFuelRecord(c.Request().Context(), &usecase.CreateFuelRecordInput{
		UserID:        p.UserID,
		VehicleID:     vehicleID,
		FillDate:      fillDate,
		PricePerLiter: *req.PricePerLiter,
		LitersFilled:  *req.LitersFilled,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Created(c, record, "fuel record created")
}

// List returns one page of a vehicle's fuel records.
func (h *FuelRecordHandler) List(c echo.Context) error {
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

	output, err := h.uc.ListFuelRecords(c.Request().Context(), &usecase.ListFuelRecordsInput{
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

// Get returns a single fuel record owned by the caller.
func (h *FuelRecordHandler) Get(c echo.Context) error {
	p, err := principal(c)
	if err != nil {
		return err
	}

	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	record, err := h.uc.GetFuelRecord(c.Request().Context(), p.UserID, id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, record, "")
}

// Update applies a partial update to a fuel record.
func (h *FuelRecordHandler) Update(c echo.Context) error {
	p, err := principal(c)
	if err != nil {
		return err
	}

	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req updateFuelRecordRequest
	if err := c.Bind(&req); err != nil {
		return err
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	input := &usecase.UpdateFuelRecordInput{
		UserID:        p.UserID,
		ID:            id,
		PricePerLiter: req.PricePerLiter,
		LitersFilled:  req.LitersFilled,
	}

	if req.FillDate != nil {
		fillDate, err := time.Parse(usecase.DateLayout, *req.FillDate)
		if err != nil {
			return errors.WithStack(err)
		}
		input.FillDate = &fillDate
	}

	record, err := h.uc.UpdateFuelRecord(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, record, "fuel record updated")
}

// Delete removes a single fuel record.
func (h *FuelRecordHandler) Delete(c echo.Context) error {
	p, err := principal(c)
	if err != nil {
		return err
	}

	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	if err := h.uc.DeleteFuelRecord(c.Request().Context(), p.UserID, id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, nil, "fuel record deleted")
}
