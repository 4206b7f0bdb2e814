package repository

import "context"

// RepositoryFactory hands out repository instances bound to one transaction.
type RepositoryFactory interface {
	UserRepo() UserRepository
	RefreshTokenRepo() RefreshTokenRepository
}

// TransactionManager runs a unit of work atomically. Single-statement mutations
// do not need it; it exists for the few multi-step writes (session rotation)
// that must not be left half-applied.
type TransactionManager interface {
	Execute(ctx context.Context, fn func(repoFactory RepositoryFactory) error) error
}
