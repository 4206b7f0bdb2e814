package repository

import (
	"context"
	"errors"

	"garage/internal/domain/entity"
)

// ErrRefreshTokenNotFound is returned when no stored session matches the token hash.
var ErrRefreshTokenNotFound = errors.New("refresh token not found")

// RefreshTokenRepository defines persistence for login sessions.
type RefreshTokenRepository interface {
	// Create persists a new session record.
	Create(ctx context.Context, token *entity.RefreshToken) error

	// FindByTokenHash retrieves a session by the SHA-256 hash of its raw token.
	FindByTokenHash(ctx context.Context, tokenHash string) (*entity.RefreshToken, error)

	// FindByUserID returns all sessions for a user, oldest first.
	FindByUserID(ctx context.Context, userID int64) ([]*entity.RefreshToken, error)

	// DeleteByID removes one session record.
	DeleteByID(ctx context.Context, id int64) error

	// DeleteByTokenHash removes the session matching the token hash.
	DeleteByTokenHash(ctx context.Context, tokenHash string) error
}
