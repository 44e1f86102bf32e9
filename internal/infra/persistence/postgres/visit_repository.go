package postgres

import (
	"context"

	"github.com/paulmach/orb"
	"github.com/pkg/errors"
	"gorm.io/gorm"

	"arches/internal/domain/entity"
	"arches/internal/domain/repository"
	"arches/internal/infra/persistence/model"
)

const findVisitedSQL = `
SELECT visits.id AS visit_id, ` + locationColumns + `
FROM visits
JOIN locations ON locations.id = visits.location_id
WHERE visits.user_id = ?
ORDER BY visits.id ASC`

type visitRepository struct {
	db *gorm.DB
}

// NewVisitRepository creates a visit repository.
func NewVisitRepository(db *gorm.DB) repository.VisitRepository {
	return &visitRepository{db: db}
}

func (repo *visitRepository) FindVisitedByUser(ctx context.Context, userID int64) ([]*entity.VisitedLocation, error) {
	var rows []*model.VisitedLocationModel
	if err := repo.db.WithContext(ctx).Raw(findVisitedSQL, userID).Scan(&rows).Error; err != nil {
		return nil, storeError(err, "failed to list visited locations")
	}

	visited := make([]*entity.VisitedLocation, 0, len(rows))
	for _, row := range rows {
		visited = append(visited, &entity.VisitedLocation{
			VisitID: row.VisitID,
			Location: &entity.Location{
				ID:      row.ID,
				Address: row.Address,
				Point:   orb.Point{row.Longitude, row.Latitude},
			},
		})
	}

	return visited, nil
}

func (repo *visitRepository) Exists(ctx context.Context, userID, locationID int64) (bool, error) {
	var count int64
	err := repo.db.WithContext(ctx).
		Model(&model.VisitModel{}).
		Where("user_id = ? AND location_id = ?", userID, locationID).
		Count(&count).Error
	if err != nil {
		return false, storeError(err, "failed to check visit")
	}

	return count > 0, nil
}

// Toggle flips the pair inside a transaction (a savepoint when already in one).
// A transaction-scoped advisory lock keyed by the pair serializes concurrent
// toggles on it; the unique constraint remains the backstop.
func (repo *visitRepository) Toggle(ctx context.Context, userID, locationID int64) (entity.ToggleOutcome, error) {
	var outcome entity.ToggleOutcome

	err := repo.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec("SELECT pg_advisory_xact_lock(?)", pairLockKey(userID, locationID)).Error; err != nil {
			return err
		}

		var removed []int64
		err := tx.Raw(
			"DELETE FROM visits WHERE user_id = ? AND location_id = ? RETURNING id",
			userID, locationID,
		).Scan(&removed).Error
		if err != nil {
			return err
		}
		if len(removed) > 0 {
			outcome = entity.ToggleRemoved

			return nil
		}

		var inserted []int64
		err = tx.Raw(
			"INSERT INTO visits (user_id, location_id, created_at) VALUES (?, ?, NOW()) "+
				"ON CONFLICT (user_id, location_id) DO NOTHING RETURNING id",
			userID, locationID,
		).Scan(&inserted).Error
		if err != nil {
			return err
		}
		if len(inserted) == 0 {
			return repository.ErrConcurrentUpdate
		}
		outcome = entity.ToggleAdded

		return nil
	})
	if err != nil {
		return "", classifyToggleError(err)
	}

	return outcome, nil
}

func classifyToggleError(err error) error {
	switch {
	case errors.Is(err, repository.ErrConcurrentUpdate):
		return err
	case isConcurrencyConflict(err):
		return errors.Wrap(repository.ErrConcurrentUpdate, err.Error())
	case isForeignKeyConstraintViolation(err):
		// The user or location disappeared between the existence checks and the insert.
		return errors.Wrap(repository.ErrLocationNotFound, err.Error())
	default:
		return storeError(err, "failed to toggle visit")
	}
}

// pairLockKey folds the pair into the single bigint advisory lock space.
// Collisions only serialize unrelated pairs; they never break correctness.
func pairLockKey(userID, locationID int64) int64 {
	return userID<<32 ^ (locationID & 0xffffffff)
}
