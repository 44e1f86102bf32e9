package usecase

import (
	"context"

	"arches/internal/domain/entity"
)

// NearbyQuery describes a proximity search. A nil RadiusMeters uses the default radius.
type NearbyQuery struct {
	Coordinate   entity.Coordinate
	RadiusMeters *float64
}

// CoordinatorUsecase is the entry point used by the delivery layer. It resolves
// the caller's identity and delegates to the visit and proximity use cases.
type CoordinatorUsecase interface {
	// GetVisitedForUser fails with ErrUnauthenticated when identity is nil or stale.
	GetVisitedForUser(ctx context.Context, identity *entity.Identity) ([]VisitedItem, error)

	FindNearby(ctx context.Context, query NearbyQuery) ([]NearbyItem, error)
	FindAll(ctx context.Context) ([]CatalogItem, error)

	ToggleVisit(ctx context.Context, identity *entity.Identity, locationID int64) (entity.ToggleOutcome, error)
	IsVisited(ctx context.Context, identity *entity.Identity, locationID int64) (bool, error)
}
