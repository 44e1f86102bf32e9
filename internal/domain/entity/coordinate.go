package entity

import (
	"math"

	"github.com/paulmach/orb"

	"arches/internal/errors"
)

var (
	ErrCoordinateOutOfRange = errors.New("coordinate out of range")
	ErrInvalidRadius        = errors.New("invalid radius")
)

// Coordinate is a WGS84 (SRID 4326) position in decimal degrees.
type Coordinate struct {
	Longitude float64
	Latitude  float64
}

// NewCoordinate builds a coordinate in longitude, latitude order.
func NewCoordinate(longitude, latitude float64) Coordinate {
	return Coordinate{Longitude: longitude, Latitude: latitude}
}

// CoordinateFromPoint converts an orb point (X = longitude, Y = latitude).
func CoordinateFromPoint(p orb.Point) Coordinate {
	return Coordinate{Longitude: p.Lon(), Latitude: p.Lat()}
}

// Validate checks both components are finite and inside the WGS84 range.
func (c Coordinate) Validate() error {
	if !isFinite(c.Longitude) || c.Longitude < -180 || c.Longitude > 180 {
		return errors.Wrapf(ErrCoordinateOutOfRange, "longitude %v", c.Longitude)
	}
	if !isFinite(c.Latitude) || c.Latitude < -90 || c.Latitude > 90 {
		return errors.Wrapf(ErrCoordinateOutOfRange, "latitude %v", c.Latitude)
	}

	return nil
}

// Point returns the coordinate as an orb point.
func (c Coordinate) Point() orb.Point {
	return orb.Point{c.Longitude, c.Latitude}
}

// ValidateRadius checks a search radius in meters.
func ValidateRadius(radiusMeters float64) error {
	if !isFinite(radiusMeters) || radiusMeters < 0 {
		return errors.Wrapf(ErrInvalidRadius, "radius %v", radiusMeters)
	}

	return nil
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
