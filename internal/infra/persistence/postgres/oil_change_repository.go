package postgres

import (
	"context"

	"github.com/pkg/errors"
	"gorm.io/gorm"

	"garage/internal/domain/entity"
	domainerrors "garage/internal/domain/errors"
	"garage/internal/domain/repository"
	"garage/internal/infra/persistence/model"
)

// oilChangeRepository implements the repository.OilChangeRepository interface.
// Ownership is transitive: reads join vehicles on the owner, mutations scope
// vehicle_id through the owned-vehicles subquery.
type oilChangeRepository struct {
	db *gorm.DB
}

// NewOilChangeRepository is the constructor for oilChangeRepository.
func NewOilChangeRepository(db *gorm.DB) repository.OilChangeRepository {
	return &oilChangeRepository{db: db}
}

// Create persists a new oil change. The caller is expected to have passed the
// vehicle ownership check; a foreign-key violation here means the parent went
// away in between and is reported as not-found.
func (repo *oilChangeRepository) Create(ctx context.Context, oilChange *entity.OilChange) error {
	oilChangeM := fromOilChangeDomain(oilChange)

	if err := repo.db.WithContext(ctx).Create(oilChangeM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrNotFound
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.NewDatabaseExecuteError(err, "missing required oil change information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create oil change")
	}

	oilChange.ID = oilChangeM.ID
	oilChange.CreatedAt = oilChangeM.CreatedAt

	return nil
}

// FindByID retrieves one oil change, scoped through the parent vehicle's owner.
func (repo *oilChangeRepository) FindByID(ctx context.Context, id, userID int64) (*entity.OilChange, error) {
	var oilChangeM model.OilChangeModel

	if err := repo.db.WithContext(ctx).
		Select("oil_changes.*").
		Joins("JOIN vehicles ON vehicles.id = oil_changes.vehicle_id").
		Where("oil_changes.id = ? AND vehicles.user_id = ?", id, userID).
		First(&oilChangeM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrNotFound
		}

		return nil, errors.Wrap(err, "failed to find oil change by id")
	}

	return toOilChangeDomain(&oilChangeM), nil
}

// ListByVehicle returns one page of a vehicle's oil changes plus the total
// count, both through the same ownership-scoped predicate.
func (repo *oilChangeRepository) ListByVehicle(ctx context.Context, vehicleID, userID int64, page repository.PageRequest) ([]*entity.OilChange, int64, error) {
	scope := func(db *gorm.DB) *gorm.DB {
		return db.
			Joins("JOIN vehicles ON vehicles.id = oil_changes.vehicle_id").
			Where("oil_changes.vehicle_id = ? AND vehicles.user_id = ?", vehicleID, userID)
	}

	var total int64
	if err := repo.db.WithContext(ctx).
		Model(&model.OilChangeModel{}).
		Scopes(scope).
		Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to count oil changes")
	}

	var oilChangeModels []*model.OilChangeModel
	if err := repo.db.WithContext(ctx).
		Model(&model.OilChangeModel{}).
		Scopes(scope).
		Select("oil_changes.*").
		Order("oil_changes.change_date DESC, oil_changes.id DESC").
		Limit(page.Limit).
		Offset(page.Offset()).
		Find(&oilChangeModels).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to list oil changes")
	}

	oilChanges := make([]*entity.OilChange, 0, len(oilChangeModels))
	for _, oilChangeM := range oilChangeModels {
		oilChanges = append(oilChanges, toOilChangeDomain(oilChangeM))
	}

	return oilChanges, total, nil
}

// Update applies the non-nil changes in a single owner-scoped statement, then
// returns the fresh row snapshot.
func (repo *oilChangeRepository) Update(ctx context.Context, id, userID int64, changes repository.OilChangeChanges) (*entity.OilChange, error) {
	updates := map[string]any{}
	if changes.ChangeDate != nil {
		updates["change_date"] = *changes.ChangeDate
	}
	if changes.Mileage != nil {
		updates["mileage"] = *changes.Mileage
	}
	if changes.Notes != nil {
		updates["notes"] = *changes.Notes
	}

	if len(updates) > 0 {
		result := repo.db.WithContext(ctx).
			Model(&model.OilChangeModel{}).
			Where("id = ? AND vehicle_id IN (?)", id, ownedVehicleIDs(repo.db, userID)).
			Updates(updates)

		if result.Error != nil {
			return nil, domainerrors.NewDatabaseExecuteError(result.Error, "failed to update oil change")
		}

		if result.RowsAffected == 0 {
			return nil, repository.ErrNotFound
		}
	}

	return repo.FindByID(ctx, id, userID)
}

// Delete removes one oil change, scoped through the parent vehicle's owner.
func (repo *oilChangeRepository) Delete(ctx context.Context, id, userID int64) error {
	result := repo.db.WithContext(ctx).
		Where("id = ? AND vehicle_id IN (?)", id, ownedVehicleIDs(repo.db, userID)).
		Delete(&model.OilChangeModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete oil change")
	}

	if result.RowsAffected == 0 {
		return repository.ErrNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toOilChangeDomain converts a GORM OilChangeModel to a domain OilChange entity.
func toOilChangeDomain(data *model.OilChangeModel) *entity.OilChange {
	if data == nil {
		return nil
	}

	return &entity.OilChange{
		ID:         data.ID,
		VehicleID:  data.VehicleID,
		ChangeDate: data.ChangeDate,
		Mileage:    data.Mileage,
		Notes:      data.Notes,
		CreatedAt:  data.CreatedAt,
	}
}

// fromOilChangeDomain converts a domain OilChange entity to a GORM OilChangeModel.
func fromOilChangeDomain(data *entity.OilChange) *model.OilChangeModel {
	if data == nil {
		return nil
	}

	return &model.OilChangeModel{
		ID:         data.ID,
		VehicleID:  data.VehicleID,
		ChangeDate: data.ChangeDate,
		Mileage:    data.Mileage,
		Notes:      data.Notes,
	}
}
