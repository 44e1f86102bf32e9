package memory

import (
	"context"
	"sync"
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"arches/internal/domain/entity"
	"arches/internal/domain/repository"
	"arches/internal/errors"
	"arches/internal/infra/spatial"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()

	catalog := spatial.NewCatalog(1)
	require.NoError(t, catalog.Load([]*entity.Location{
		{ID: 1, Address: "5th Ave", Point: orb.Point{-73.99, 40.75}},
		{ID: 2, Address: "Broadway", Point: orb.Point{-73.98, 40.76}},
		{ID: 3, Address: "Sunset Blvd", Point: orb.Point{-118.24, 34.05}},
	}))

	return NewStore(catalog)
}

func createUser(t *testing.T, store *Store, username string) *entity.User {
	t.Helper()

	user := &entity.User{Username: username, PasswordHash: "hash"}
	require.NoError(t, NewUserRepository(store).Create(context.Background(), user))

	return user
}

func TestUserRepository(t *testing.T) {
	store := newTestStore(t)
	repo := NewUserRepository(store)
	ctx := context.Background()

	user := createUser(t, store, "alice")
	assert.Equal(t, int64(1), user.ID)
	assert.False(t, user.CreatedAt.IsZero())

	byName, err := repo.FindByUsername(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, user.ID, byName.ID)

	byID, err := repo.FindByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "alice", byID.Username)

	err = repo.Create(ctx, &entity.User{Username: "alice", PasswordHash: "other"})
	assert.True(t, errors.Is(err, repository.ErrUsernameTaken))

	_, err = repo.FindByUsername(ctx, "bob")
	assert.True(t, errors.Is(err, repository.ErrUserNotFound))
}

func TestVisitRepository_ToggleTwiceRestoresState(t *testing.T) {
	store := newTestStore(t)
	repo := NewVisitRepository(store)
	ctx := context.Background()
	user := createUser(t, store, "alice")

	outcome, err := repo.Toggle(ctx, user.ID, 2)
	require.NoError(t, err)
	assert.Equal(t, entity.ToggleAdded, outcome)

	visited, err := repo.Exists(ctx, user.ID, 2)
	require.NoError(t, err)
	assert.True(t, visited)

	outcome, err = repo.Toggle(ctx, user.ID, 2)
	require.NoError(t, err)
	assert.Equal(t, entity.ToggleRemoved, outcome)

	visited, err = repo.Exists(ctx, user.ID, 2)
	require.NoError(t, err)
	assert.False(t, visited)
}

func TestVisitRepository_ToggleUnknownReferences(t *testing.T) {
	store := newTestStore(t)
	repo := NewVisitRepository(store)
	ctx := context.Background()
	user := createUser(t, store, "alice")

	_, err := repo.Toggle(ctx, user.ID, 999)
	assert.True(t, errors.Is(err, repository.ErrLocationNotFound))

	_, err = repo.Toggle(ctx, 999, 1)
	assert.True(t, errors.Is(err, repository.ErrUserNotFound))

	visited, err := repo.FindVisitedByUser(ctx, user.ID)
	require.NoError(t, err)
	assert.Empty(t, visited)
}

func TestVisitRepository_FindVisitedByUserIsolatedAndOrdered(t *testing.T) {
	store := newTestStore(t)
	repo := NewVisitRepository(store)
	ctx := context.Background()
	alice := createUser(t, store, "alice")
	bob := createUser(t, store, "bob")

	for _, locationID := range []int64{3, 1} {
		_, err := repo.Toggle(ctx, alice.ID, locationID)
		require.NoError(t, err)
	}
	_, err := repo.Toggle(ctx, bob.ID, 2)
	require.NoError(t, err)

	visited, err := repo.FindVisitedByUser(ctx, alice.ID)
	require.NoError(t, err)
	require.Len(t, visited, 2)
	assert.Equal(t, int64(3), visited[0].Location.ID)
	assert.Equal(t, int64(1), visited[1].Location.ID)
	assert.Less(t, visited[0].VisitID, visited[1].VisitID)

	bobVisited, err := repo.FindVisitedByUser(ctx, bob.ID)
	require.NoError(t, err)
	require.Len(t, bobVisited, 1)
	assert.Equal(t, "Broadway", bobVisited[0].Location.Address)
}

func TestVisitRepository_ConcurrentTogglesKeepParity(t *testing.T) {
	store := newTestStore(t)
	repo := NewVisitRepository(store)
	ctx := context.Background()
	user := createUser(t, store, "alice")

	const toggles = 51

	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		added   int
		removed int
	)

	for range toggles {
		wg.Add(1)
		go func() {
			defer wg.Done()

			outcome, err := repo.Toggle(ctx, user.ID, 1)
			assert.NoError(t, err)

			mu.Lock()
			defer mu.Unlock()
			if outcome == entity.ToggleAdded {
				added++
			} else {
				removed++
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, toggles, added+removed)
	assert.Equal(t, 1, added-removed)

	visited, err := repo.Exists(ctx, user.ID, 1)
	require.NoError(t, err)
	assert.True(t, visited)

	rows, err := repo.FindVisitedByUser(ctx, user.ID)
	require.NoError(t, err)
	assert.Len(t, rows, 1)
}

func TestTransactionManager_Execute(t *testing.T) {
	store := newTestStore(t)
	tm := NewTransactionManager(store)
	user := createUser(t, store, "alice")

	err := tm.Execute(context.Background(), func(factory repository.RepositoryFactory) error {
		if _, err := factory.NewLocationRepository().FindByID(context.Background(), 1); err != nil {
			return err
		}
		_, err := factory.NewVisitRepository().Toggle(context.Background(), user.ID, 1)

		return err
	})
	require.NoError(t, err)

	visited, err := NewVisitRepository(store).Exists(context.Background(), user.ID, 1)
	require.NoError(t, err)
	assert.True(t, visited)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err = tm.Execute(ctx, func(repository.RepositoryFactory) error {
		t.Fatal("must not run with a cancelled context")

		return nil
	})
	assert.ErrorIs(t, err, context.Canceled)
}
