// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import "time"

// User is the identity anchor for ownership. It is created on registration and
// never updated or deleted afterwards.
type User struct {
	ID           int64     // Server-assigned identifier; monotonically increasing, never reused.
	Email        string    // Unique login identifier, stored normalized (lowercase).
	PasswordHash string    // bcrypt hash of the user's password. Never leaves the service.
	CreatedAt    time.Time // Timestamp of registration.
}
