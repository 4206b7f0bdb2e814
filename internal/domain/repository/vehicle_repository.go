package repository

import (
	"context"
	"errors"

	"garage/internal/domain/entity"
)

// ErrNotFound is the merged "absent or not yours" error shared by the scoped
// resource repositories. A row owned by another tenant is indistinguishable
// from a row that does not exist, so existence never leaks across tenants.
var ErrNotFound = errors.New("resource not found")

// VehicleRepository defines owner-scoped persistence for vehicles. Every read
// and mutation carries the owner in its query predicate; filtering never
// happens after the fact in application code.
type VehicleRepository interface {
	// Create persists a new vehicle owned by vehicle.UserID and fills in the
	// server-assigned ID and creation timestamp.
	Create(ctx context.Context, vehicle *entity.Vehicle) error

	// FindByID retrieves a vehicle by id, scoped to the owning user.
	// Returns ErrNotFound when the row is absent or owned by someone else.
	FindByID(ctx context.Context, id, userID int64) (*entity.Vehicle, error)

	// List returns one page of the user's vehicles plus the total count for the
	// same filter. Ordered newest-created first with id as the stable tie-break.
	List(ctx context.Context, userID int64, filter VehicleFilter, page PageRequest) ([]*entity.Vehicle, int64, error)

	// Delete removes a vehicle scoped to the owning user; its oil changes and
	// fuel records go with it via the store's cascade constraint.
	Delete(ctx context.Context, id, userID int64) error

	// OwnedByUser reports whether the vehicle exists and belongs to the user.
	// Child-resource creation must pass this check before writing.
	OwnedByUser(ctx context.Context, vehicleID, userID int64) (bool, error)
}
