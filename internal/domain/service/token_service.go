// Package service defines interfaces for core, stateless domain logic.
// These services encapsulate business rules that don't naturally fit within a single entity.
package service

import (
	"errors"
	"time"

	"garage/internal/domain/entity"
)

// Principal is the authenticated identity derived from a verified access token.
// Its fields come straight from the token claims and are trusted as-is for the
// lifetime of the request; they are not re-fetched from storage.
type Principal struct {
	UserID int64
	Email  string
}

// ErrTokenExpired marks a token whose signature is valid but whose lifetime has passed.
var ErrTokenExpired = errors.New("token has expired")

// ErrTokenInvalid marks any other verification failure (bad signature, wrong
// type, malformed structure, unparsable claims).
var ErrTokenInvalid = errors.New("token is invalid")

// TokenService defines the interface for generating and validating JWTs.
// This abstracts the details of token creation from the use cases.
type TokenService interface {
	// GenerateTokens creates a new access token and refresh token for a given user.
	GenerateTokens(user *entity.User) (accessToken string, refreshToken string, err error)

	// ValidateAccessToken verifies an access token and extracts the principal.
	// A pure function of the token, the shared secret and the current time.
	ValidateAccessToken(tokenString string) (*Principal, error)

	// ValidateRefreshToken verifies a refresh token and returns the subject user id.
	ValidateRefreshToken(tokenString string) (int64, error)

	// RefreshTokenDuration returns the configured lifetime for refresh tokens.
	RefreshTokenDuration() time.Duration
}
