package repository

import (
	"context"

	"arches/internal/domain/entity"
	"arches/internal/errors"
)

// ErrLocationNotFound is returned when a location is not found.
var ErrLocationNotFound = errors.New("location not found")

// LocationRepository reads the location catalog.
type LocationRepository interface {
	// FindByID retrieves a location by ID. Returns ErrLocationNotFound if absent.
	FindByID(ctx context.Context, id int64) (*entity.Location, error)

	// FindAll returns the whole catalog ordered by ID.
	FindAll(ctx context.Context) ([]*entity.Location, error)

	// FindWithin returns every location whose geodesic distance from center is
	// at most radiusMeters, ordered by distance then ID. The boundary is inclusive.
	// Fails with entity.ErrCoordinateOutOfRange or entity.ErrInvalidRadius on bad input.
	FindWithin(ctx context.Context, center entity.Coordinate, radiusMeters float64) ([]*entity.NearbyLocation, error)
}

// ValidateWithinQuery checks the arguments of FindWithin.
func ValidateWithinQuery(center entity.Coordinate, radiusMeters float64) error {
	if err := center.Validate(); err != nil {
		return err
	}

	return entity.ValidateRadius(radiusMeters)
}
