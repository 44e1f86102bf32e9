package postgres

import (
	"context"
	"strings"

	"gorm.io/gorm"

	"arches/internal/domain/entity"
	"arches/internal/errors"
)

const defaultSeedBatchSize = 500

// LocationSeeder bulk-loads the catalog. It is only used by the seed command;
// the serving path never writes locations.
type LocationSeeder struct {
	db        *gorm.DB
	batchSize int
}

// SeedResult summarizes a seed run.
type SeedResult struct {
	Inserted int
	Replaced bool
}

// NewLocationSeeder creates a seeder writing batchSize rows per statement.
func NewLocationSeeder(db *gorm.DB, batchSize int) *LocationSeeder {
	if batchSize <= 0 {
		batchSize = defaultSeedBatchSize
	}

	return &LocationSeeder{db: db, batchSize: batchSize}
}

// Seed inserts locations in one transaction. With replace set, the existing
// catalog (and visits pointing at it) is removed first. Locations carrying an
// ID keep it; the sequence is advanced past the largest ID afterwards.
func (s *LocationSeeder) Seed(ctx context.Context, locations []*entity.Location, replace bool) (*SeedResult, error) {
	result := &SeedResult{Replaced: replace}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if replace {
			if err := tx.Exec("TRUNCATE visits, locations RESTART IDENTITY").Error; err != nil {
				return errors.Wrap(err, "truncate catalog")
			}
		}

		for start := 0; start < len(locations); start += s.batchSize {
			batch := locations[start:min(start+s.batchSize, len(locations))]

			sql, args := buildInsertBatch(batch)
			if err := tx.Exec(sql, args...).Error; err != nil {
				return errors.Wrapf(err, "insert batch starting at row %d", start+1)
			}
			result.Inserted += len(batch)
		}

		return tx.Exec("SELECT setval(pg_get_serial_sequence('locations', 'id'), " +
			"GREATEST((SELECT COALESCE(MAX(id), 0) FROM locations), 1))").Error
	})
	if err != nil {
		return nil, storeError(err, "failed to seed locations")
	}

	return result, nil
}

func buildInsertBatch(batch []*entity.Location) (string, []any) {
	var sb strings.Builder
	args := make([]any, 0, len(batch)*4)

	sb.WriteString("INSERT INTO locations (id, address, geom) VALUES ")
	for idx, loc := range batch {
		if idx > 0 {
			sb.WriteString(", ")
		}
		if loc.ID > 0 {
			sb.WriteString("(?, ?, ST_SetSRID(ST_MakePoint(?, ?), 4326)::geography)")
			args = append(args, loc.ID)
		} else {
			sb.WriteString("(DEFAULT, ?, ST_SetSRID(ST_MakePoint(?, ?), 4326)::geography)")
		}
		args = append(args, loc.Address, loc.Point.Lon(), loc.Point.Lat())
	}

	return sb.String(), args
}
