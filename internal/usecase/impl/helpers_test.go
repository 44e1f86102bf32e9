package impl

import (
	"io"
	"log/slog"
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/require"

	"arches/config"
	"arches/internal/domain/entity"
	"arches/internal/infra/spatial"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig() *config.Config {
	cfg := &config.Config{}
	cfg.ApplyDefaults()

	return cfg
}

func newTestCatalog(t *testing.T, locations ...*entity.Location) *spatial.Catalog {
	t.Helper()

	catalog := spatial.NewCatalog(1)
	require.NoError(t, catalog.Load(locations))

	return catalog
}

func newLocation(id int64, address string, lon, lat float64) *entity.Location {
	return &entity.Location{ID: id, Address: address, Point: orb.Point{lon, lat}}
}
