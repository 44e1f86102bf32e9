// Package memory is a process-local persistence backend for development and tests.
// It implements the same repository contracts as the postgres package.
package memory

import (
	"context"
	"sync"

	"arches/internal/domain/repository"
	"arches/internal/infra/spatial"
)

type pairKey struct {
	userID     int64
	locationID int64
}

// Store holds users and visits in maps and serves locations from a catalog.
type Store struct {
	catalog *spatial.Catalog

	mu        sync.RWMutex
	users     map[int64]*userRecord
	usernames map[string]int64
	nextUser  int64
	visits    map[pairKey]*visitRecord
	nextVisit int64

	// txMu serializes Execute calls, standing in for transaction isolation.
	txMu sync.Mutex
}

// NewStore creates an empty store over catalog.
func NewStore(catalog *spatial.Catalog) *Store {
	return &Store{
		catalog:   catalog,
		users:     map[int64]*userRecord{},
		usernames: map[string]int64{},
		visits:    map[pairKey]*visitRecord{},
	}
}

type memoryTransactionManager struct {
	store *Store
}

type memoryRepositoryFactory struct {
	store *Store
}

func (f *memoryRepositoryFactory) NewUserRepository() repository.UserRepository {
	return NewUserRepository(f.store)
}

func (f *memoryRepositoryFactory) NewLocationRepository() repository.LocationRepository {
	return NewLocationRepository(f.store)
}

func (f *memoryRepositoryFactory) NewVisitRepository() repository.VisitRepository {
	return NewVisitRepository(f.store)
}

// NewTransactionManager returns a TransactionManager that runs one function at a time.
// Writes are applied as they happen; there is no rollback, so callers keep a
// single write as the last step of fn.
func NewTransactionManager(store *Store) repository.TransactionManager {
	return &memoryTransactionManager{store: store}
}

func (tm *memoryTransactionManager) Execute(ctx context.Context, fn func(repoFactory repository.RepositoryFactory) error) error {
	tm.store.txMu.Lock()
	defer tm.store.txMu.Unlock()

	if err := ctx.Err(); err != nil {
		return err //nolint:wrapcheck // context errors are classified by callers.
	}

	return fn(&memoryRepositoryFactory{store: tm.store})
}

// NewLocationRepository returns the store's catalog.
func NewLocationRepository(store *Store) repository.LocationRepository {
	return store.catalog
}
