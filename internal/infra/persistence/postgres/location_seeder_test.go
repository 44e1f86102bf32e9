package postgres

import (
	"strings"
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"

	"arches/internal/domain/entity"
)

func TestBuildInsertBatch(t *testing.T) {
	sql, args := buildInsertBatch([]*entity.Location{
		{ID: 7, Address: "5th Ave", Point: orb.Point{-73.99, 40.75}},
		{Address: "Broadway", Point: orb.Point{-73.98, 40.76}},
	})

	assert.True(t, strings.HasPrefix(sql, "INSERT INTO locations (id, address, geom) VALUES "))
	assert.Equal(t, 2, strings.Count(sql, "ST_MakePoint(?, ?)"))
	assert.Contains(t, sql, "(DEFAULT, ?, ")
	assert.Equal(t, []any{int64(7), "5th Ave", -73.99, 40.75, "Broadway", -73.98, 40.76}, args)
}

func TestNewLocationSeeder_DefaultBatchSize(t *testing.T) {
	assert.Equal(t, defaultSeedBatchSize, NewLocationSeeder(nil, 0).batchSize)
	assert.Equal(t, 10, NewLocationSeeder(nil, 10).batchSize)
}
