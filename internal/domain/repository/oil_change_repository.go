package repository

import (
	"context"
	"time"

	"garage/internal/domain/entity"
)

// OilChangeChanges lists the fields a partial update may touch. Nil pointers
// leave the corresponding column untouched.
type OilChangeChanges struct {
	ChangeDate *time.Time
	Mileage    *int64
	Notes      *string
}

// OilChangeRepository defines persistence for oil changes. Ownership is
// transitive through the parent vehicle: every operation joins or subqueries
// vehicles and requires vehicles.user_id to match, so a cross-tenant id simply
// matches zero rows.
type OilChangeRepository interface {
	// Create persists a new oil change under an already-ownership-checked vehicle.
	Create(ctx context.Context, oilChange *entity.OilChange) error

	// FindByID retrieves one oil change, scoped through the parent vehicle's owner.
	FindByID(ctx context.Context, id, userID int64) (*entity.OilChange, error)

	// ListByVehicle returns one page of a vehicle's oil changes plus the total
	// count, ordered by change date descending with id as the stable tie-break.
	ListByVehicle(ctx context.Context, vehicleID, userID int64, page PageRequest) ([]*entity.OilChange, int64, error)

	// Update applies the non-nil changes in a single owner-scoped statement and
	// returns the fresh row snapshot. ErrNotFound covers absent and foreign rows alike.
	Update(ctx context.Context, id, userID int64, changes OilChangeChanges) (*entity.OilChange, error)

	// Delete removes one oil change, scoped through the parent vehicle's owner.
	Delete(ctx context.Context, id, userID int64) error
}
