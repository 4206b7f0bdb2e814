package usecase

import (
	"context"
	"time"
)

// --- Input DTOs ---

// RegisterInput defines the data required to register a new user.
type RegisterInput struct {
	Email    string
	Password string
}

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	Email    string
	Password string
}

// RefreshInput carries the raw refresh token presented for rotation.
type RefreshInput struct {
	RefreshToken string
}

// LogoutInput carries the raw refresh token of the session being revoked.
type LogoutInput struct {
	RefreshToken string
}

// --- Output DTOs ---

// UserDTO is the public shape of a user: no password hash, ever.
type UserDTO struct {
	ID        int64     `json:"id"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

// TokenPairOutput returns the generated tokens after login or refresh.
type TokenPairOutput struct {
	AccessToken  string   `json:"access_token"`
	RefreshToken string   `json:"refresh_token"`
	User         *UserDTO `json:"user"`
}

// UserUsecase defines the interface for authentication-related business operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type UserUsecase interface {
	Register(ctx context.Context, input *RegisterInput) (*UserDTO, error)
	Login(ctx context.Context, input *LoginInput) (*TokenPairOutput, error)
	Refresh(ctx context.Context, input *RefreshInput) (*TokenPairOutput, error)
	Logout(ctx context.Context, input *LogoutInput) error
}
