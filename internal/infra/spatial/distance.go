// Package spatial answers radius queries over an in-memory location catalog.
package spatial

import (
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"
	"github.com/tidwall/geodesic"
)

// DistanceMeters returns the geodesic distance between two points on the
// WGS84 ellipsoid, the same measure PostGIS uses for geography columns.
func DistanceMeters(a, b orb.Point) float64 {
	var meters float64
	geodesic.WGS84.Inverse(a.Lat(), a.Lon(), b.Lat(), b.Lon(), &meters, nil, nil)

	return meters
}

// searchBound returns a lon/lat box containing every point within radiusMeters
// of center. The box is built on a sphere; one degree of latitude on the
// ellipsoid is at most 0.7% shorter than on that sphere, so the padding keeps
// every boundary point inside.
// When the box crosses the antimeridian Min.Lon() is greater than Max.Lon().
func searchBound(center orb.Point, radiusMeters float64) orb.Bound {
	const pad = 1.01

	return geo.NewBoundAroundPoint(center, radiusMeters*pad+1)
}
