package postgres

import (
	"context"

	"github.com/paulmach/orb"
	"github.com/pkg/errors"
	"gorm.io/gorm"

	"arches/internal/domain/entity"
	"arches/internal/domain/repository"
	"arches/internal/infra/persistence/model"
)

// locationColumns unpacks the geography point; X is longitude and Y is latitude.
const locationColumns = "locations.id, locations.address, " +
	"ST_X(locations.geom::geometry) AS longitude, ST_Y(locations.geom::geometry) AS latitude"

// findWithinSQL keeps ST_DWithin as the filter so the GiST index on geom is used.
// Distances are spheroidal, matching the geography type.
const findWithinSQL = `
SELECT ` + locationColumns + `,
       ST_Distance(locations.geom, ST_SetSRID(ST_MakePoint(@lon, @lat), 4326)::geography) AS distance_meters
FROM locations
WHERE ST_DWithin(locations.geom, ST_SetSRID(ST_MakePoint(@lon, @lat), 4326)::geography, @radius)
ORDER BY distance_meters ASC, locations.id ASC`

type locationRepository struct {
	db *gorm.DB
}

// NewLocationRepository creates a PostGIS backed location repository.
func NewLocationRepository(db *gorm.DB) repository.LocationRepository {
	return &locationRepository{db: db}
}

func (repo *locationRepository) FindByID(ctx context.Context, id int64) (*entity.Location, error) {
	var locationM model.LocationModel
	err := repo.db.WithContext(ctx).
		Table("locations").
		Select(locationColumns).
		Where("locations.id = ?", id).
		Take(&locationM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrLocationNotFound
		}

		return nil, storeError(err, "failed to find location by id")
	}

	return toLocationDomain(&locationM), nil
}

func (repo *locationRepository) FindAll(ctx context.Context) ([]*entity.Location, error) {
	var locationMs []*model.LocationModel
	err := repo.db.WithContext(ctx).
		Table("locations").
		Select(locationColumns).
		Order("locations.id ASC").
		Find(&locationMs).Error
	if err != nil {
		return nil, storeError(err, "failed to list locations")
	}

	locations := make([]*entity.Location, 0, len(locationMs))
	for _, locationM := range locationMs {
		locations = append(locations, toLocationDomain(locationM))
	}

	return locations, nil
}

func (repo *locationRepository) FindWithin(ctx context.Context, center entity.Coordinate, radiusMeters float64) ([]*entity.NearbyLocation, error) {
	if err := repository.ValidateWithinQuery(center, radiusMeters); err != nil {
		return nil, err
	}

	var rows []*model.NearbyLocationModel
	err := repo.db.WithContext(ctx).
		Raw(findWithinSQL, map[string]any{
			"lon":    center.Longitude,
			"lat":    center.Latitude,
			"radius": radiusMeters,
		}).
		Scan(&rows).Error
	if err != nil {
		return nil, storeError(err, "failed to find locations within radius")
	}

	nearby := make([]*entity.NearbyLocation, 0, len(rows))
	for _, row := range rows {
		nearby = append(nearby, &entity.NearbyLocation{
			Location:       toLocationDomain(&row.LocationModel),
			DistanceMeters: row.DistanceMeters,
		})
	}

	return nearby, nil
}

// --- Mapper Functions ---

func toLocationDomain(data *model.LocationModel) *entity.Location {
	if data == nil {
		return nil
	}

	return &entity.Location{
		ID:      data.ID,
		Address: data.Address,
		Point:   orb.Point{data.Longitude, data.Latitude},
	}
}
