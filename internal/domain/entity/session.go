package entity

import "time"

// RefreshToken represents a long-lived, authorized user session. It is used to
// obtain a new access token after the old one expires, without credentials.
// Only a SHA-256 hash of the raw token is ever stored.
type RefreshToken struct {
	ID        int64     // Server-assigned identifier.
	UserID    int64     // Session owner.
	TokenHash string    // SHA-256 hex digest of the raw refresh token.
	ExpiresAt time.Time // Moment after which the session can no longer be refreshed.
	CreatedAt time.Time // When the session was created (login or rotation).
}
