package entity

import "time"

// OilChange records a single oil change for a vehicle. Ownership is transitive:
// a principal owns an oil change iff it owns the parent vehicle.
type OilChange struct {
	ID         int64     // Server-assigned identifier.
	VehicleID  int64     // Parent vehicle; never orphaned thanks to cascade delete.
	ChangeDate time.Time // Calendar date of the change (time-of-day is not significant).
	Mileage    int64     // Odometer reading at the time of the change, >= 0.
	Notes      string    // Optional free text, up to 1000 characters.
	CreatedAt  time.Time // Timestamp of creation; tie-break for list ordering.
}
