package repository

import (
	"context"

	"arches/internal/errors"
)

// ErrConcurrentUpdate is returned when a write lost a race with a concurrent
// transaction (serialization failure, deadlock or unique backstop). Callers may retry.
var ErrConcurrentUpdate = errors.New("concurrent update")

// TransactionManager defines the interface for managing store transactions.
// This allows the use case layer to handle transactions without depending on a specific DB driver like GORM.
type TransactionManager interface {
	// Execute runs a function within a transaction.
	// If the function returns an error, the transaction is rolled back. Otherwise, it's committed.
	// All repository operations within the function will use the same transaction.
	Execute(ctx context.Context, fn func(txRepoFactory RepositoryFactory) error) error
}

// RepositoryFactory provides a way to get repository instances that are bound to a specific transaction.
type RepositoryFactory interface {
	// NewUserRepository returns a UserRepository instance bound to the current transaction.
	NewUserRepository() UserRepository

	// NewLocationRepository returns a LocationRepository instance bound to the current transaction.
	NewLocationRepository() LocationRepository

	// NewVisitRepository returns a VisitRepository instance bound to the current transaction.
	NewVisitRepository() VisitRepository
}
