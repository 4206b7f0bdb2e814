package postgres

import (
	"context"
	"strings"

	"github.com/pkg/errors"
	"gorm.io/gorm"

	"garage/internal/domain/entity"
	domainerrors "garage/internal/domain/errors"
	"garage/internal/domain/repository"
	"garage/internal/infra/persistence/model"
)

// vehicleRepository implements the repository.VehicleRepository interface.
// Every query predicate carries user_id; a row owned by another tenant is
// simply zero rows, which is the load-bearing security property of this layer.
type vehicleRepository struct {
	db *gorm.DB
}

// NewVehicleRepository is the constructor for vehicleRepository.
func NewVehicleRepository(db *gorm.DB) repository.VehicleRepository {
	return &vehicleRepository{db: db}
}

// Create persists a new vehicle for its owning user.
func (repo *vehicleRepository) Create(ctx context.Context, vehicle *entity.Vehicle) error {
	vehicleM := fromVehicleDomain(vehicle)

	if err := repo.db.WithContext(ctx).Create(vehicleM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.NewDatabaseExecuteError(err, "invalid user reference")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.NewDatabaseExecuteError(err, "missing required vehicle information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create vehicle")
	}

	vehicle.ID = vehicleM.ID
	vehicle.CreatedAt = vehicleM.CreatedAt

	return nil
}

// FindByID retrieves a vehicle scoped to its owning user.
func (repo *vehicleRepository) FindByID(ctx context.Context, id, userID int64) (*entity.Vehicle, error) {
	var vehicleM model.VehicleModel

	if err := repo.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(&vehicleM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrNotFound
		}

		return nil, errors.Wrap(err, "failed to find vehicle by id")
	}

	return toVehicleDomain(&vehicleM), nil
}

// List returns one page of the user's vehicles and the total count. The count
// query and the item query share the same scope closure, so their predicates
// cannot drift apart and skew the page totals.
func (repo *vehicleRepository) List(ctx context.Context, userID int64, filter repository.VehicleFilter, page repository.PageRequest) ([]*entity.Vehicle, int64, error) {
	scope := func(db *gorm.DB) *gorm.DB {
		db = db.Where("user_id = ?", userID)

		if term := strings.TrimSpace(filter.Search); term != "" {
			pattern := "%" + term + "%"
			db = db.Where("LOWER(name) LIKE LOWER(?) OR LOWER(license_plate) LIKE LOWER(?)", pattern, pattern)
		}

		return db
	}

	var total int64
	if err := repo.db.WithContext(ctx).
		Model(&model.VehicleModel{}).
		Scopes(scope).
		Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to count vehicles")
	}

	var vehicleModels []*model.VehicleModel
	if err := repo.db.WithContext(ctx).
		Model(&model.VehicleModel{}).
		Scopes(scope).
		Order("created_at DESC, id DESC").
		Limit(page.Limit).
		Offset(page.Offset()).
		Find(&vehicleModels).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to list vehicles")
	}

	vehicles := make([]*entity.Vehicle, 0, len(vehicleModels))
	for _, vehicleM := range vehicleModels {
		vehicles = append(vehicles, toVehicleDomain(vehicleM))
	}

	return vehicles, total, nil
}

// Delete removes a vehicle scoped to its owning user. The store's cascade
// constraint removes the vehicle's oil changes and fuel records with it.
func (repo *vehicleRepository) Delete(ctx context.Context, id, userID int64) error {
	result := repo.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&model.VehicleModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete vehicle")
	}

	if result.RowsAffected == 0 {
		return repository.ErrNotFound
	}

	return nil
}

// OwnedByUser reports whether the vehicle exists and belongs to the user.
func (repo *vehicleRepository) OwnedByUser(ctx context.Context, vehicleID, userID int64) (bool, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.VehicleModel{}).
		Where("id = ? AND user_id = ?", vehicleID, userID).
		Count(&count).Error; err != nil {
		return false, errors.Wrap(err, "failed to check vehicle ownership")
	}

	return count > 0, nil
}

// ownedVehicleIDs builds the subquery used to scope child-resource mutations
// through the parent vehicle's owner.
func ownedVehicleIDs(db *gorm.DB, userID int64) *gorm.DB {
	return db.Model(&model.VehicleModel{}).Select("id").Where("user_id = ?", userID)
}

// --- Mapper Functions ---

// toVehicleDomain converts a GORM VehicleModel to a domain Vehicle entity.
func toVehicleDomain(data *model.VehicleModel) *entity.Vehicle {
	if data == nil {
		return nil
	}

	return &entity.Vehicle{
		ID:           data.ID,
		UserID:       data.UserID,
		Name:         data.Name,
		LicensePlate: data.LicensePlate,
		CreatedAt:    data.CreatedAt,
	}
}

// fromVehicleDomain converts a domain Vehicle entity to a GORM VehicleModel.
func fromVehicleDomain(data *entity.Vehicle) *model.VehicleModel {
	if data == nil {
		return nil
	}

	return &model.VehicleModel{
		ID:           data.ID,
		UserID:       data.UserID,
		Name:         data.Name,
		LicensePlate: data.LicensePlate,
	}
}
