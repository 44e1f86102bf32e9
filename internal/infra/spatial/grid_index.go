package spatial

import (
	"cmp"
	"math"
	"slices"

	"github.com/paulmach/orb"

	"arches/internal/domain/entity"
)

const kmPerDegree = 111.32

// GridIndex buckets locations into fixed lon/lat cells so a radius query only
// measures locations in the cells overlapping the query box.
type GridIndex struct {
	locations []*entity.Location
	grid      map[gridKey][]int // maps grid cell to location indices
	cellSize  float64           // grid cell size in degrees on both axes
}

type gridKey struct {
	latCell int
	lngCell int
}

// Match is a location found by Within.
type Match struct {
	Location       *entity.Location
	DistanceMeters float64
}

// NewGridIndex creates an empty index.
// cellSizeKm determines the grid cell size (smaller = more cells, faster lookup but more memory)
func NewGridIndex(cellSizeKm float64) *GridIndex {
	if cellSizeKm <= 0 {
		cellSizeKm = 1
	}

	return &GridIndex{
		grid:     make(map[gridKey][]int),
		cellSize: cellSizeKm / kmPerDegree,
	}
}

// Build replaces the indexed locations.
func (g *GridIndex) Build(locations []*entity.Location) {
	g.locations = locations
	g.grid = make(map[gridKey][]int, len(locations))

	for idx, loc := range locations {
		key := g.getGridKey(loc.Point)
		g.grid[key] = append(g.grid[key], idx)
	}
}

// Size returns the number of locations in the index
func (g *GridIndex) Size() int {
	return len(g.locations)
}

// Within returns every location at most radiusMeters from center, ordered by
// distance then ID.
func (g *GridIndex) Within(center orb.Point, radiusMeters float64) []Match {
	if len(g.locations) == 0 || radiusMeters < 0 {
		return []Match{}
	}

	var matches []Match
	collect := func(idx int) {
		loc := g.locations[idx]
		dist := DistanceMeters(center, loc.Point)
		if dist <= radiusMeters {
			matches = append(matches, Match{Location: loc, DistanceMeters: dist})
		}
	}

	ranges := g.cellRanges(searchBound(center, radiusMeters))
	if ranges.cellCount() > len(g.grid) {
		// The box covers more cells than are occupied, so a linear scan is cheaper.
		for idx := range g.locations {
			collect(idx)
		}
	} else {
		for _, lng := range ranges.lng {
			for latCell := ranges.lat.from; latCell <= ranges.lat.to; latCell++ {
				for lngCell := lng.from; lngCell <= lng.to; lngCell++ {
					for _, idx := range g.grid[gridKey{latCell: latCell, lngCell: lngCell}] {
						collect(idx)
					}
				}
			}
		}
	}

	slices.SortFunc(matches, func(a, b Match) int {
		if c := cmp.Compare(a.DistanceMeters, b.DistanceMeters); c != 0 {
			return c
		}

		return cmp.Compare(a.Location.ID, b.Location.ID)
	})

	if matches == nil {
		return []Match{}
	}

	return matches
}

type cellRange struct {
	from int
	to   int
}

type queryRanges struct {
	lat cellRange
	lng []cellRange // two ranges when the box wraps the antimeridian
}

func (q queryRanges) cellCount() int {
	lngCells := 0
	for _, r := range q.lng {
		lngCells += r.to - r.from + 1
	}

	return (q.lat.to - q.lat.from + 1) * lngCells
}

func (g *GridIndex) cellRanges(bound orb.Bound) queryRanges {
	ranges := queryRanges{
		lat: cellRange{from: g.cell(bound.Min.Lat()), to: g.cell(bound.Max.Lat())},
	}

	minLng, maxLng := bound.Min.Lon(), bound.Max.Lon()
	if minLng <= maxLng {
		ranges.lng = []cellRange{{from: g.cell(minLng), to: g.cell(maxLng)}}
	} else {
		ranges.lng = []cellRange{
			{from: g.cell(minLng), to: g.cell(180)},
			{from: g.cell(-180), to: g.cell(maxLng)},
		}
	}

	return ranges
}

func (g *GridIndex) getGridKey(p orb.Point) gridKey {
	return gridKey{latCell: g.cell(p.Lat()), lngCell: g.cell(p.Lon())}
}

func (g *GridIndex) cell(deg float64) int {
	return int(math.Floor(deg / g.cellSize))
}
