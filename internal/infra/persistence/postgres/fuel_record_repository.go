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

// fuelRecordRepository implements the repository.FuelRecordRepository
// interface with the same transitive-ownership scoping as the oil change
// repository.
type fuelRecordRepository struct {
	db *gorm.DB
}

// NewFuelRecordRepository is the constructor for fuelRecordRepository.
func NewFuelRecordRepository(db *gorm.DB) repository.FuelRecordRepository {
	return &fuelRecordRepository{db: db}
}

// Create persists a new fuel record under an already-ownership-checked vehicle.
func (repo *fuelRecordRepository) Create(ctx context.Context, record *entity.FuelRecord) error {
	recordM := fromFuelRecordDomain(record)

	if err := repo.db.WithContext(ctx).Create(recordM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrNotFound
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.NewDatabaseExecuteError(err, "missing required fuel record information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create fuel record")
	}

	record.ID = recordM.ID
	record.CreatedAt = recordM.CreatedAt

	return nil
}

// FindByID retrieves one fuel record, scoped through the parent vehicle's owner.
func (repo *fuelRecordRepository) FindByID(ctx context.Context, id, userID int64) (*entity.FuelRecord, error) {
	var recordM model.FuelRecordModel

	if err := repo.db.WithContext(ctx).
		Select("fuel_records.*").
		Joins("JOIN vehicles ON vehicles.id = fuel_records.vehicle_id").
		Where("fuel_records.id = ? AND vehicles.user_id = ?", id, userID).
		First(&recordM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrNotFound
		}

		return nil, errors.Wrap(err, "failed to find fuel record by id")
	}

	return toFuelRecordDomain(&recordM), nil
}

// ListByVehicle returns one page of a vehicle's fuel records plus the total
// count, both through the same ownership-scoped predicate.
func (repo *fuelRecordRepository) ListByVehicle(ctx context.Context, vehicleID, userID int64, page repository.PageRequest) ([]*entity.FuelRecord, int64, error) {
	scope := func(db *gorm.DB) *gorm.DB {
		return db.
			Joins("JOIN vehicles ON vehicles.id = fuel_records.vehicle_id").
			Where("fuel_records.vehicle_id = ? AND vehicles.user_id = ?", vehicleID, userID)
	}

	var total int64
	if err := repo.db.WithContext(ctx).
		Model(&model.FuelRecordModel{}).
		Scopes(scope).
		Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to count fuel records")
	}

	var recordModels []*model.FuelRecordModel
	if err := repo.db.WithContext(ctx).
		Model(&model.FuelRecordModel{}).
		Scopes(scope).
		Select("fuel_records.*").
		Order("fuel_records.fill_date DESC, fuel_records.id DESC").
		Limit(page.Limit).
		Offset(page.Offset()).
		Find(&recordModels).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to list fuel records")
	}

	records := make([]*entity.FuelRecord, 0, len(recordModels))
	for _, recordM := range recordModels {
		records = append(records, toFuelRecordDomain(recordM))
	}

	return records, total, nil
}

// Update applies the non-nil changes in a single owner-scoped statement, then
// returns the fresh row snapshot.
func (repo *fuelRecordRepository) Update(ctx context.Context, id, userID int64, changes repository.FuelRecordChanges) (*entity.FuelRecord, error) {
	updates := map[string]any{}
	if changes.FillDate != nil {
		updates["fill_date"] = *changes.FillDate
	}
	if changes.PricePerLiter != nil {
		updates["price_per_liter"] = *changes.PricePerLiter
	}
	if changes.LitersFilled != nil {
		updates["liters_filled"] = *changes.LitersFilled
	}

	if len(updates) > 0 {
		result := repo.db.WithContext(ctx).
			Model(&model.FuelRecordModel{}).
			Where("id = ? AND vehicle_id IN (?)", id, ownedVehicleIDs(repo.db, userID)).
			Updates(updates)

		if result.Error != nil {
			return nil, domainerrors.NewDatabaseExecuteError(result.Error, "failed to update fuel record")
		}

		if result.RowsAffected == 0 {
			return nil, repository.ErrNotFound
		}
	}

	return repo.FindByID(ctx, id, userID)
}

// Delete removes one fuel record, scoped through the parent vehicle's owner.
func (repo *fuelRecordRepository) Delete(ctx context.Context, id, userID int64) error {
	result := repo.db.WithContext(ctx).
		Where("id = ? AND vehicle_id IN (?)", id, ownedVehicleIDs(repo.db, userID)).
		Delete(&model.FuelRecordModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete fuel record")
	}

	if result.RowsAffected == 0 {
		return repository.ErrNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toFuelRecordDomain converts a GORM FuelRecordModel to a domain FuelRecord entity.
func toFuelRecordDomain(data *model.FuelRecordModel) *entity.FuelRecord {
	if data == nil {
		return nil
	}

	return &entity.FuelRecord{
		ID:            data.ID,
		VehicleID:     data.VehicleID,
		FillDate:      data.FillDate,
		PricePerLiter: data.PricePerLiter,
		LitersFilled:  data.LitersFilled,
		CreatedAt:     data.CreatedAt,
	}
}

// fromFuelRecordDomain converts a domain FuelRecord entity to a GORM FuelRecordModel.
func fromFuelRecordDomain(data *entity.FuelRecord) *model.FuelRecordModel {
	if data == nil {
		return nil
	}

	return &model.FuelRecordModel{
		ID:            data.ID,
		VehicleID:     data.VehicleID,
		FillDate:      data.FillDate,
		PricePerLiter: data.PricePerLiter,
		LitersFilled:  data.LitersFilled,
	}
}
