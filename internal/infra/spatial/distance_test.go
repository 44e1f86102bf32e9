package spatial

import (
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"

	"arches/internal/domain/entity"
)

func TestDistanceMeters_WGS84(t *testing.T) {
	tests := []struct {
		name string
		to   orb.Point
		want float64
	}{
		{name: "same point", to: orb.Point{0, 0}, want: 0},
		{name: "0.045 degrees north along the meridian", to: orb.Point{0, 0.045}, want: 4975.84},
		{name: "0.045 degrees east along the equator", to: orb.Point{0.045, 0}, want: 5009.38},
		{name: "0.044 degrees north", to: orb.Point{0, 0.044}, want: 4865.27},
		{name: "0.046 degrees north", to: orb.Point{0, 0.046}, want: 5086.42},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, DistanceMeters(orb.Point{0, 0}, tt.to), 0.05)
		})
	}
}

func TestGridIndex_Within_UsesEllipsoidalBoundary(t *testing.T) {
	index := NewGridIndex(1.0)
	index.Build([]*entity.Location{
		loc(1, 0, 0.045), // ~4975.8 m on the ellipsoid, ~5009 m on a sphere
		loc(2, 0.045, 0), // ~5009.4 m either way
	})

	matches := index.Within(orb.Point{0, 0}, 5000)

	assert.Equal(t, []int64{1}, matchIDs(matches))
}
