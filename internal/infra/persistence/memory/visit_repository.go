package memory

import (
	"cmp"
	"context"
	"slices"
	"time"

	"arches/internal/domain/entity"
	"arches/internal/domain/repository"
	"arches/internal/errors"
)

type visitRecord struct {
	id        int64
	createdAt time.Time
}

type visitRepository struct {
	store *Store
}

// NewVisitRepository creates a visit repository over store.
func NewVisitRepository(store *Store) repository.VisitRepository {
	return &visitRepository{store: store}
}

func (repo *visitRepository) FindVisitedByUser(ctx context.Context, userID int64) ([]*entity.VisitedLocation, error) {
	type visited struct {
		visitID    int64
		locationID int64
	}

	repo.store.mu.RLock()
	var rows []visited
	for key, record := range repo.store.visits {
		if key.userID == userID {
			rows = append(rows, visited{visitID: record.id, locationID: key.locationID})
		}
	}
	repo.store.mu.RUnlock()

	slices.SortFunc(rows, func(a, b visited) int {
		return cmp.Compare(a.visitID, b.visitID)
	})

	result := make([]*entity.VisitedLocation, 0, len(rows))
	for _, row := range rows {
		loc, err := repo.store.catalog.FindByID(ctx, row.locationID)
		if errors.Is(err, repository.ErrLocationNotFound) {
			continue
		}
		if err != nil {
			return nil, err
		}
		result = append(result, &entity.VisitedLocation{VisitID: row.visitID, Location: loc})
	}

	return result, nil
}

func (repo *visitRepository) Exists(_ context.Context, userID, locationID int64) (bool, error) {
	repo.store.mu.RLock()
	defer repo.store.mu.RUnlock()

	_, ok := repo.store.visits[pairKey{userID: userID, locationID: locationID}]

	return ok, nil
}

func (repo *visitRepository) Toggle(ctx context.Context, userID, locationID int64) (entity.ToggleOutcome, error) {
	if err := ctx.Err(); err != nil {
		return "", err //nolint:wrapcheck // context errors are classified by callers.
	}

	if _, err := repo.store.catalog.FindByID(ctx, locationID); err != nil {
		return "", err
	}

	repo.store.mu.Lock()
	defer repo.store.mu.Unlock()

	if _, ok := repo.store.users[userID]; !ok {
		return "", repository.ErrUserNotFound
	}

	key := pairKey{userID: userID, locationID: locationID}
	if _, ok := repo.store.visits[key]; ok {
		delete(repo.store.visits, key)

		return entity.ToggleRemoved, nil
	}

	repo.store.nextVisit++
	repo.store.visits[key] = &visitRecord{id: repo.store.nextVisit, createdAt: time.Now().UTC()}

	return entity.ToggleAdded, nil
}
