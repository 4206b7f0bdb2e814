package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "garage/internal/delivery/context"
	"garage/internal/domain/entity"
	domainerrors "garage/internal/domain/errors"
	"garage/internal/domain/repository"
	"garage/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// vehicleService implements the VehicleUsecase interface.
type vehicleService struct {
	vehicleRepo repository.VehicleRepository
	logger      *slog.Logger
}

// VehicleServiceParams holds dependencies for VehicleService, injected by Fx.
type VehicleServiceParams struct {
	fx.In

	VehicleRepo repository.VehicleRepository
	Logger      *slog.Logger
}

// NewVehicleService is the constructor for vehicleService.
func NewVehicleService(params VehicleServiceParams) usecase.VehicleUsecase {
	return &vehicleService{
		vehicleRepo: params.VehicleRepo,
		logger:      params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *vehicleService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateVehicle registers a new vehicle under the calling user.
func (srv *vehicleService) CreateVehicle(ctx context.Context, input *usecase.CreateVehicleInput) (*usecase.VehicleDTO, error) {
	vehicle := &entity.Vehicle{
		UserID:       input.UserID,
		Name:         strings.TrimSpace(input.Name),
		LicensePlate: strings.TrimSpace(input.LicensePlate),
	}

	if err := srv.vehicleRepo.Create(ctx, vehicle); err != nil {
		srv.log(ctx).Error("Failed to create vehicle", slog.Int64("userID", input.UserID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create vehicle")
	}

	srv.log(ctx).Debug("Vehicle created", slog.Int64("userID", input.UserID), slog.Int64("vehicleID", vehicle.ID))

	return toVehicleDTO(vehicle), nil
}

// ListVehicles returns one page of the calling user's vehicles, optionally
// filtered by a case-insensitive substring match on name or license plate.
func (srv *vehicleService) ListVehicles(ctx context.Context, input *usecase.ListVehiclesInput) (*usecase.VehicleListOutput, error) {
	filter := repository.VehicleFilter{Search: strings.TrimSpace(input.Search)}
	page := repository.PageRequest{Page: input.Page, Limit: input.Limit}

	vehicles, total, err := srv.vehicleRepo.List(ctx, input.UserID, filter, page)
	if err != nil {
		srv.log(ctx).Error("Failed to list vehicles", slog.Int64("userID", input.UserID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to list vehicles")
	}

	items := make([]*usecase.VehicleDTO, 0, len(vehicles))
	for _, vehicle := range vehicles {
		items = append(items, toVehicleDTO(vehicle))
	}

	return &usecase.VehicleListOutput{
		Items:      items,
		Pagination: usecase.NewPagination(input.Page, input.Limit, total),
	}, nil
}

// GetVehicle retrieves one of the calling user's vehicles.
func (srv *vehicleService) GetVehicle(ctx context.Context, userID, id int64) (*usecase.VehicleDTO, error) {
	vehicle, err := srv.vehicleRepo.FindByID(ctx, id, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, domainerrors.ErrResourceNotFound.WrapMessage("vehicle not found")
		}

		return nil, errors.Wrap(err, "failed to find vehicle")
	}

	return toVehicleDTO(vehicle), nil
}

// DeleteVehicle removes one of the calling user's vehicles together with its
// maintenance history.
func (srv *vehicleService) DeleteVehicle(ctx context.Context, userID, id int64) error {
	if err := srv.vehicleRepo.Delete(ctx, id, userID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return domainerrors.ErrResourceNotFound.WrapMessage("vehicle not found")
		}

		return errors.Wrap(err, "failed to delete vehicle")
	}

	srv.log(ctx).Info("Vehicle deleted", slog.Int64("userID", userID), slog.Int64("vehicleID", id))

	return nil
}

func toVehicleDTO(vehicle *entity.Vehicle) *usecase.VehicleDTO {
	return &usecase.VehicleDTO{
		ID:           vehicle.ID,
		Name:         vehicle.Name,
		LicensePlate: vehicle.LicensePlate,
		CreatedAt:    vehicle.CreatedAt,
	}
}
