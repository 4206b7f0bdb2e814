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

// oilChangeService implements the OilChangeUsecase interface.
type oilChangeService struct {
	oilChangeRepo repository.OilChangeRepository
	vehicleRepo   repository.VehicleRepository
	logger        *slog.Logger
}

// OilChangeServiceParams holds dependencies for OilChangeService, injected by Fx.
type OilChangeServiceParams struct {
	fx.In

	OilChangeRepo repository.OilChangeRepository
	VehicleRepo   repository.VehicleRepository
	Logger        *slog.Logger
}

// NewOilChangeService is the constructor for oilChangeService.
func NewOilChangeService(params OilChangeServiceParams) usecase.OilChangeUsecase {
	return &oilChangeService{
		oilChangeRepo: params.OilChangeRepo,
		vehicleRepo:   params.VehicleRepo,
		logger:        params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *oilChangeService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// requireVehicle confirms the target vehicle exists and belongs to the caller
// before any child row is written or listed.
func (srv *oilChangeService) requireVehicle(ctx context.Context, vehicleID, userID int64) error {
	owned, err := srv.vehicleRepo.OwnedByUser(ctx, vehicleID, userID)
	if err != nil {
		return errors.Wrap(err, "failed to check vehicle ownership")
	}
	if !owned {
		return domainerrors.ErrResourceNotFound.WrapMessage("vehicle not found")
	}

	return nil
}

// CreateOilChange records an oil change for one of the caller's vehicles.
func (srv *oilChangeService) CreateOilChange(ctx context.Context, input *usecase.CreateOilChangeInput) (*usecase.OilChangeDTO, error) {
	if err := srv.requireVehicle(ctx, input.VehicleID, input.UserID); err != nil {
		return nil, err
	}

	oilChange := &entity.OilChange{
		VehicleID:  input.VehicleID,
		ChangeDate: input.ChangeDate,
		Mileage:    input.Mileage,
		Notes:      input.Notes,
	}

	if err := srv.oilChangeRepo.Create(ctx, oilChange); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			// Vehicle deleted between the ownership check and the insert.
			return nil, domainerrors.ErrResourceNotFound.WrapMessage("vehicle not found")
		}

		srv.log(ctx).Error("Failed to create oil change", slog.Int64("vehicleID", input.VehicleID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create oil change")
	}

	srv.log(ctx).Debug("Oil change recorded", slog.Int64("vehicleID", input.VehicleID), slog.Int64("oilChangeID", oilChange.ID))

	return toOilChangeDTO(oilChange), nil
}

// ListOilChanges returns one page of a vehicle's oil changes, newest change date first.
func (srv *oilChangeService) ListOilChanges(ctx context.Context, input *usecase.ListOilChangesInput) (*usecase.OilChangeListOutput, error) {
	if err := srv.requireVehicle(ctx, input.VehicleID, input.UserID); err != nil {
		return nil, err
	}

	page := repository.PageRequest{Page: input.Page, Limit: input.Limit}

	records, total, err := srv.oilChangeRepo.ListByVehicle(ctx, input.VehicleID, input.UserID, page)
	if err != nil {
		srv.log(ctx).Error("Failed to list oil changes", slog.Int64("vehicleID", input.VehicleID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to list oil changes")
	}

	items := make([]*usecase.OilChangeDTO, 0, len(records))
	for _, record := range records {
		items = append(items, toOilChangeDTO(record))
	}

	return &usecase.OilChangeListOutput{
		Items:      items,
		Pagination: usecase.NewPagination(input.Page, input.Limit, total),
	}, nil
}

// GetOilChange retrieves a single oil change owned by the caller.
func (srv *oilChangeService) GetOilChange(ctx context.Context, userID, id int64) (*usecase.OilChangeDTO, error) {
	record, err := srv.oilChangeRepo.FindByID(ctx, id, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, domainerrors.ErrResourceNotFound.WrapMessage("oil change not found")
		}

		return nil, errors.Wrap(err, "failed to find oil change")
	}

	return toOilChangeDTO(record), nil
}

// UpdateOilChange applies a partial update and returns the fresh record.
func (srv *oilChangeService) UpdateOilChange(ctx context.Context, input *usecase.UpdateOilChangeInput) (*usecase.OilChangeDTO, error) {
	changes := repository.OilChangeChanges{
		ChangeDate: input.ChangeDate,
		Mileage:    input.Mileage,
		Notes:      input.Notes,
	}

	record, err := srv.oilChangeRepo.Update(ctx, input.ID, input.UserID, changes)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, domainerrors.ErrResourceNotFound.WrapMessage("oil change not found")
		}

		return nil, errors.Wrap(err, "failed to update oil change")
	}

	srv.log(ctx).Debug("Oil change updated", slog.Int64("oilChangeID", input.ID))

	return toOilChangeDTO(record), nil
}

// DeleteOilChange removes a single oil change owned by the caller.
func (srv *oilChangeService) DeleteOilChange(ctx context.Context, userID, id int64) error {
	if err := srv.oilChangeRepo.Delete(ctx, id, userID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return domainerrors.ErrResourceNotFound.WrapMessage("oil change not found")
		}

		return errors.Wrap(err, "failed to delete oil change")
	}

	srv.log(ctx).Debug("Oil change deleted", slog.Int64("oilChangeID", id))

	return nil
}

func toOilChangeDTO(record *entity.OilChange) *usecase.OilChangeDTO {
	return &usecase.OilChangeDTO{
		ID:         record.ID,
		VehicleID:  record.VehicleID,
		ChangeDate: record.ChangeDate.Format(usecase.DateLayout),
		Mileage:    record.Mileage,
		Notes:      record.Notes,
		CreatedAt:  record.CreatedAt,
	}
}
