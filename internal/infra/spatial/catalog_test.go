package spatial

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"arches/internal/domain/entity"
	"arches/internal/domain/repository"
	"arches/internal/errors"
)

func TestCatalog_FindByID(t *testing.T) {
	catalog := NewCatalog(1)
	require.NoError(t, catalog.Load([]*entity.Location{loc(2, 1, 1), loc(1, 0, 0)}))

	got, err := catalog.FindByID(context.Background(), 2)
	require.NoError(t, err)
	assert.Equal(t, int64(2), got.ID)

	_, err = catalog.FindByID(context.Background(), 99)
	assert.True(t, errors.Is(err, repository.ErrLocationNotFound))
}

func TestCatalog_FindAllOrderedByID(t *testing.T) {
	catalog := NewCatalog(1)
	require.NoError(t, catalog.Load([]*entity.Location{loc(3, 2, 2), loc(1, 0, 0), loc(2, 1, 1)}))

	all, err := catalog.FindAll(context.Background())
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, []int64{1, 2, 3}, []int64{all[0].ID, all[1].ID, all[2].ID})
	assert.Equal(t, 3, catalog.Size())
}

func TestCatalog_LoadRejectsBadInput(t *testing.T) {
	catalog := NewCatalog(1)

	require.Error(t, catalog.Load([]*entity.Location{loc(1, 200, 0)}))
	require.Error(t, catalog.Load([]*entity.Location{loc(1, 0, 0), loc(1, 1, 1)}))
	assert.Equal(t, 0, catalog.Size())
}

func TestCatalog_FindWithinValidates(t *testing.T) {
	catalog := NewCatalog(1)
	require.NoError(t, catalog.Load([]*entity.Location{loc(1, 0, 0)}))

	_, err := catalog.FindWithin(context.Background(), entity.NewCoordinate(0, 91), 100)
	assert.True(t, errors.Is(err, entity.ErrCoordinateOutOfRange))

	_, err = catalog.FindWithin(context.Background(), entity.NewCoordinate(0, 0), -1)
	assert.True(t, errors.Is(err, entity.ErrInvalidRadius))

	_, err = catalog.FindWithin(context.Background(), entity.NewCoordinate(math.NaN(), 0), 100)
	assert.True(t, errors.Is(err, entity.ErrCoordinateOutOfRange))
}

func TestCatalog_FindWithin(t *testing.T) {
	catalog := NewCatalog(1)
	require.NoError(t, catalog.Load([]*entity.Location{
		loc(1, -73.99, 40.75),
		loc(2, -73.991, 40.751),
		loc(3, -118.24, 34.05),
	}))

	nearby, err := catalog.FindWithin(context.Background(), entity.NewCoordinate(-73.99, 40.75), 5000)
	require.NoError(t, err)
	require.Len(t, nearby, 2)
	assert.Equal(t, int64(1), nearby[0].Location.ID)
	assert.Equal(t, int64(2), nearby[1].Location.ID)

	none, err := catalog.FindWithin(context.Background(), entity.NewCoordinate(0, 0), 5000)
	require.NoError(t, err)
	assert.NotNil(t, none)
	assert.Empty(t, none)
}

type stubSource struct {
	repository.LocationRepository
	locations []*entity.Location
	err       error
}

func (s stubSource) FindAll(context.Context) ([]*entity.Location, error) {
	return s.locations, s.err
}

func TestCatalog_LoadFrom(t *testing.T) {
	catalog := NewCatalog(1)

	require.NoError(t, catalog.LoadFrom(context.Background(), stubSource{locations: []*entity.Location{loc(5, 1, 1)}}))
	assert.Equal(t, 1, catalog.Size())

	err := catalog.LoadFrom(context.Background(), stubSource{err: errors.New("down")})
	require.Error(t, err)
	assert.Equal(t, 1, catalog.Size())
}
