package repository

import (
	"context"
	"time"

	"garage/internal/domain/entity"
)

// FuelRecordChanges lists the fields a partial update may touch. Nil pointers
// leave the corresponding column untouched.
type FuelRecordChanges struct {
	FillDate      *time.Time
	PricePerLiter *float64
	LitersFilled  *float64
}

// FuelRecordRepository defines persistence for fuel records, with the same
// transitive-ownership scoping as OilChangeRepository.
type FuelRecordRepository interface {
	// Create persists a new fuel record under an already-ownership-checked vehicle.
	Create(ctx context.Context, record *entity.FuelRecord) error

	// FindByID retrieves one fuel record, scoped through the parent vehicle's owner.
	FindByID(ctx context.Context, id, userID int64) (*entity.FuelRecord, error)

	// ListByVehicle returns one page of a vehicle's fuel records plus the total
	// count, ordered by fill date descending with id as the stable tie-break.
	ListByVehicle(ctx context.Context, vehicleID, userID int64, page PageRequest) ([]*entity.FuelRecord, int64, error)

	// Update applies the non-nil changes in a single owner-scoped statement and
	// returns the fresh row snapshot.
	Update(ctx context.Context, id, userID int64, changes FuelRecordChanges) (*entity.FuelRecord, error)

	// Delete removes one fuel record, scoped through the parent vehicle's owner.
	Delete(ctx context.Context, id, userID int64) error
}
