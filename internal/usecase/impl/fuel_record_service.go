package impl

import (
	"context"
	"log/slog"

	deliverycontext "garage/internal/delivery/context"
	"garage/internal/domain/entity"
	domainerrors "garage/internal/domain/errors"
	"garage/internal/domain/repository"
	"garage/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// fuelRecordService implements the FuelRecordUsecase interface.
type fuelRecordService struct {
	fuelRecordRepo repository.FuelRecordRepository
	vehicleRepo    repository.VehicleRepository
	logger         *slog.Logger
}

// FuelRecordServiceParams holds dependencies for FuelRecordService, injected by Fx.
type FuelRecordServiceParams struct {
	fx.In

	FuelRecordRepo repository.FuelRecordRepository
	VehicleRepo    repository.VehicleRepository
	Logger         *slog.Logger
}

// NewFuelRecordService is the constructor for fuelRecordService.
func NewFuelRecordService(params FuelRecordServiceParams) usecase.FuelRecordUsecase {
	return &fuelRecordService{
		fuelRecordRepo: params.FuelRecordRepo,
		vehicleRepo:    params.VehicleRepo,
		logger:         params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *fuelRecordService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *fuelRecordService) requireVehicle(ctx context.Context, vehicleID, userID int64) error {
	owned, err := srv.vehicleRepo.OwnedByUser(ctx, vehicleID, userID)
	if err != nil {
		return errors.Wrap(err, "failed to check vehicle ownership")
	}
	if !owned {
		return domainerrors.ErrResourceNotFound.WrapMessage("vehicle not found")
	}

	return nil
}

// CreateFuelRecord records a refueling for one of the caller's vehicles.
func (srv *fuelRecordService) CreateFuelRecord(ctx context.Context, input *usecase.CreateFuelRecordInput) (*usecase.FuelRecordDTO, error) {
	if err := srv.requireVehicle(ctx, input.VehicleID, input.UserID); err != nil {
		return nil, err
	}

	record := &entity.FuelRecord{
		VehicleID:     input.VehicleID,
		FillDate:      input.FillDate,
		PricePerLiter: input.PricePerLiter,
		LitersFilled:  input.LitersFilled,
	}

	if err := srv.fuelRecordRepo.Create(ctx, record); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, domainerrors.ErrResourceNotFound.WrapMessage("vehicle not found")
		}

		srv.log(ctx).Error("Failed to create fuel record", slog.Int64("vehicleID", input.VehicleID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create fuel record")
	}

	srv.log(ctx).Debug("Fuel record created", slog.Int64("vehicleID", input.VehicleID), slog.Int64("fuelRecordID", record.ID))

	return toFuelRecordDTO(record), nil
}

// ListFuelRecords returns one page of a vehicle's fuel records, newest fill date first.
func (srv *fuelRecordService) ListFuelRecords(ctx context.Context, input *usecase.ListFuelRecordsInput) (*usecase.FuelRecordListOutput, error) {
	if err := srv.requireVehicle(ctx, input.VehicleID, input.UserID); err != nil {
		return nil, err
	}

	page := repository.PageRequest{Page: input.Page, Limit: input.Limit}

	records, total, err := srv.fuelRecordRepo.ListByVehicle(ctx, input.VehicleID, input.UserID, page)
	if err != nil {
		srv.log(ctx).Error("Failed to list fuel records", slog.Int64("vehicleID", input.VehicleID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to list fuel records")
	}

	items := make([]*usecase.FuelRecordDTO, 0, len(records))
	for _, record := range records {
		items = append(items, toFuelRecordDTO(record))
	}

	return &usecase.FuelRecordListOutput{
		Items:      items,
		Pagination: usecase.NewPagination(input.Page, input.Limit, total),
	}, nil
}

// GetFuelRecord retrieves a single fuel record owned by the caller.
func (srv *fuelRecordService) GetFuelRecord(ctx context.Context, userID, id int64) (*usecase.FuelRecordDTO, error) {
	record, err := srv.fuelRecordRepo.FindByID(ctx, id, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, domainerrors.ErrResourceNotFound.WrapMessage("fuel record not found")
		}

		return nil, errors.Wrap(err, "failed to find fuel record")
	}

	return toFuelRecordDTO(record), nil
}

// UpdateFuelRecord applies a partial update and returns the fresh record.
func (srv *fuelRecordService) UpdateFuelRecord(ctx context.Context, input *usecase.UpdateFuelRecordInput) (*usecase.FuelRecordDTO, error) {
	changes := repository.FuelRecordChanges{
		FillDate:      input.FillDate,
		PricePerLiter: input.PricePerLiter,
		LitersFilled:  input.LitersFilled,
	}

	record, err := srv.fuelRecordRepo.Update(ctx, input.ID, input.UserID, changes)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, domainerrors.ErrResourceNotFound.WrapMessage("fuel record not found")
		}

		return nil, errors.Wrap(err, "failed to update fuel record")
	}

	srv.log(ctx).Debug("Fuel record updated", slog.Int64("fuelRecordID", input.ID))

	return toFuelRecordDTO(record), nil
}

// DeleteFuelRecord removes a single fuel record owned by the caller.
func (srv *fuelRecordService) DeleteFuelRecord(ctx context.Context, userID, id int64) error {
	if err := srv.fuelRecordRepo.Delete(ctx, id, userID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return domainerrors.ErrResourceNotFound.WrapMessage("fuel record not found")
		}

		return errors.Wrap(err, "failed to delete fuel record")
	}

	srv.log(ctx).Debug("Fuel record deleted", slog.Int64("fuelRecordID", id))

	return nil
}

func toFuelRecordDTO(record *entity.FuelRecord) *usecase.FuelRecordDTO {
	return &usecase.FuelRecordDTO{
		ID:            record.ID,
		VehicleID:     record.VehicleID,
		FillDate:      record.FillDate.Format(usecase.DateLayout),
		PricePerLiter: record.PricePerLiter,
		LitersFilled:  record.LitersFilled,
		TotalCost:     record.TotalCost(),
		CreatedAt:     record.CreatedAt,
	}
}
