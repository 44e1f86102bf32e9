package repository

import (
	"context"

	"arches/internal/domain/entity"
)

// VisitRepository manages the per-user visited set.
type VisitRepository interface {
	// FindVisitedByUser returns the user's visits joined with their locations, ordered by visit ID.
	FindVisitedByUser(ctx context.Context, userID int64) ([]*entity.VisitedLocation, error)

	// Exists reports whether the user has a visit for the location.
	Exists(ctx context.Context, userID, locationID int64) (bool, error)

	// Toggle atomically removes the visit if it exists or creates it otherwise.
	// Concurrent toggles on the same pair are serialized; a toggle that still
	// loses a race fails with ErrConcurrentUpdate.
	Toggle(ctx context.Context, userID, locationID int64) (entity.ToggleOutcome, error)
}
