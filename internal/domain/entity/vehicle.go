package entity

import "time"

// Vehicle belongs to exactly one user. Deleting a vehicle removes all of its
// oil changes and fuel records through the store's cascade constraint.
type Vehicle struct {
	ID           int64     // Server-assigned identifier.
	UserID       int64     // Owning user; every query on vehicles is scoped by it.
	Name         string    // Display name, 1-100 characters.
	LicensePlate string    // Optional plate, up to 20 characters.
	CreatedAt    time.Time // Timestamp of creation; newest-first list ordering key.
}
