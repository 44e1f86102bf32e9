package entity

import "github.com/paulmach/orb"

// Location is a restaurant in the catalog. The catalog is seeded offline and
// is read-only at runtime.
type Location struct {
	ID      int64     // Store-assigned identifier.
	Address string    // Human-readable street address.
	Point   orb.Point // X is longitude, Y is latitude.
}

// Coordinate returns the location position.
func (l *Location) Coordinate() Coordinate {
	return CoordinateFromPoint(l.Point)
}

// NearbyLocation is a location matched by a radius query.
type NearbyLocation struct {
	Location       *Location
	DistanceMeters float64
}
