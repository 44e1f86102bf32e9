package usecase

import (
	"context"

	"arches/internal/domain/entity"
)

// NearbyItem is a location inside the search radius.
type NearbyItem struct {
	LocationID     int64   `json:"id"`
	Address        string  `json:"address"`
	X              float64 `json:"x"`
	Y              float64 `json:"y"`
	DistanceMeters float64 `json:"distance_meters"`
}

// CatalogItem is one entry of the full catalog listing.
type CatalogItem struct {
	X          float64 `json:"x"`
	Y          float64 `json:"y"`
	LocationID int64   `json:"id"`
}

// ProximityUsecase answers radius queries over the catalog. It holds no per-request state.
type ProximityUsecase interface {
	// FindNearby returns locations within radiusMeters of coord, nearest first.
	FindNearby(ctx context.Context, coord entity.Coordinate, radiusMeters float64) ([]NearbyItem, error)

	// FindNearbyDefault is FindNearby with the configured default radius.
	FindNearbyDefault(ctx context.Context, coord entity.Coordinate) ([]NearbyItem, error)

	// FindAll lists the whole catalog ordered by location ID.
	FindAll(ctx context.Context) ([]CatalogItem, error)
}
