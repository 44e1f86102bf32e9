package spatial

import (
	"cmp"
	"context"
	"slices"
	"sync"

	"arches/internal/domain/entity"
	"arches/internal/domain/repository"
	"arches/internal/errors"
)

// Catalog is a read-only LocationRepository backed by a GridIndex snapshot.
// Load swaps the snapshot atomically; readers never see a partial catalog.
type Catalog struct {
	cellSizeKm float64

	mu    sync.RWMutex
	index *GridIndex
	byID  map[int64]*entity.Location
	all   []*entity.Location
}

var _ repository.LocationRepository = (*Catalog)(nil)

// NewCatalog creates an empty catalog.
func NewCatalog(cellSizeKm float64) *Catalog {
	return &Catalog{
		cellSizeKm: cellSizeKm,
		index:      NewGridIndex(cellSizeKm),
		byID:       map[int64]*entity.Location{},
	}
}

// Load replaces the catalog contents. Locations with invalid coordinates or
// duplicate IDs are rejected.
func (c *Catalog) Load(locations []*entity.Location) error {
	byID := make(map[int64]*entity.Location, len(locations))
	all := make([]*entity.Location, 0, len(locations))

	for _, loc := range locations {
		if err := loc.Coordinate().Validate(); err != nil {
			return errors.Wrapf(err, "location %d", loc.ID)
		}
		if _, dup := byID[loc.ID]; dup {
			return errors.Errorf("duplicate location id %d", loc.ID)
		}
		byID[loc.ID] = loc
		all = append(all, loc)
	}

	slices.SortFunc(all, func(a, b *entity.Location) int {
		return cmp.Compare(a.ID, b.ID)
	})

	index := NewGridIndex(c.cellSizeKm)
	index.Build(all)

	c.mu.Lock()
	c.index, c.byID, c.all = index, byID, all
	c.mu.Unlock()

	return nil
}

// LoadFrom replaces the catalog with everything source returns.
func (c *Catalog) LoadFrom(ctx context.Context, source repository.LocationRepository) error {
	locations, err := source.FindAll(ctx)
	if err != nil {
		return errors.Wrap(err, "load catalog")
	}

	return c.Load(locations)
}

// Size returns the number of locations in the catalog.
func (c *Catalog) Size() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return len(c.all)
}

func (c *Catalog) FindByID(_ context.Context, id int64) (*entity.Location, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	loc, ok := c.byID[id]
	if !ok {
		return nil, repository.ErrLocationNotFound
	}

	return loc, nil
}

func (c *Catalog) FindAll(_ context.Context) ([]*entity.Location, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return slices.Clone(c.all), nil
}

func (c *Catalog) FindWithin(_ context.Context, center entity.Coordinate, radiusMeters float64) ([]*entity.NearbyLocation, error) {
	if err := repository.ValidateWithinQuery(center, radiusMeters); err != nil {
		return nil, err
	}

	c.mu.RLock()
	matches := c.index.Within(center.Point(), radiusMeters)
	c.mu.RUnlock()

	result := make([]*entity.NearbyLocation, 0, len(matches))
	for _, m := range matches {
		result = append(result, &entity.NearbyLocation{Location: m.Location, DistanceMeters: m.DistanceMeters})
	}

	return result, nil
}
