package impl

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"go.uber.org/fx"

	"arches/config"
	deliverycontext "arches/internal/delivery/context"
	"arches/internal/domain/entity"
	domainerrors "arches/internal/domain/errors"
	"arches/internal/domain/repository"
	"arches/internal/domain/service"
	"arches/internal/usecase"
)

const (
	cacheOpNearby  = "nearby"
	cacheOpCatalog = "catalog"
)

type proximityService struct {
	locations     repository.LocationRepository
	cache         service.ResultCache
	metrics       service.MetricsRecorder
	strategy      string
	defaultRadius float64
	maxRadius     float64
	queryTimeout  time.Duration
	cacheTTL      time.Duration
	logger        *slog.Logger
}

// ProximityServiceParams holds dependencies for ProximityService, injected by Fx.
type ProximityServiceParams struct {
	fx.In

	Locations repository.LocationRepository
	Cache     service.ResultCache
	Metrics   service.MetricsRecorder
	Config    *config.Config
	Logger    *slog.Logger
}

// NewProximityService builds the proximity matcher over the configured location source.
func NewProximityService(params ProximityServiceParams) usecase.ProximityUsecase {
	cfg := params.Config

	srv := &proximityService{
		locations:     params.Locations,
		cache:         params.Cache,
		metrics:       params.Metrics,
		strategy:      cfg.Proximity.Strategy,
		defaultRadius: cfg.Proximity.DefaultRadiusMeters,
		maxRadius:     cfg.Proximity.MaxRadiusMeters,
		queryTimeout:  cfg.Store.QueryTimeout,
		logger:        params.Logger,
	}
	if cfg.Cache != nil && cfg.Cache.Enabled {
		srv.cacheTTL = cfg.Cache.TTL
	}

	return srv
}

func (srv *proximityService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// FindNearbyDefault searches with the configured default radius.
func (srv *proximityService) FindNearbyDefault(ctx context.Context, coord entity.Coordinate) ([]usecase.NearbyItem, error) {
	return srv.FindNearby(ctx, coord, srv.defaultRadius)
}

// FindNearby validates the query, then serves it from cache or the location source.
func (srv *proximityService) FindNearby(ctx context.Context, coord entity.Coordinate, radiusMeters float64) ([]usecase.NearbyItem, error) {
	if err := repository.ValidateWithinQuery(coord, radiusMeters); err != nil {
		return nil, translateError(err, "validate nearby query")
	}
	if srv.maxRadius > 0 && radiusMeters > srv.maxRadius {
		return nil, domainerrors.ErrInvalidRadius.WithDetails("radius exceeds the configured maximum")
	}

	key := nearbyCacheKey(coord.Longitude, coord.Latitude, radiusMeters)

	var items []usecase.NearbyItem
	if srv.readCache(ctx, cacheOpNearby, key, &items) {
		return items, nil
	}

	queryCtx, cancel := withQueryTimeout(ctx, srv.queryTimeout)
	defer cancel()

	start := time.Now()
	matches, err := srv.locations.FindWithin(queryCtx, coord, radiusMeters)
	srv.metrics.ObserveProximityQuery(srv.strategy, time.Since(start))
	if err != nil {
		return nil, translateError(err, "find locations within radius")
	}

	items = make([]usecase.NearbyItem, 0, len(matches))
	for _, match := range matches {
		items = append(items, usecase.NearbyItem{
			LocationID:     match.Location.ID,
			Address:        match.Location.Address,
			X:              match.Location.Point.Lon(),
			Y:              match.Location.Point.Lat(),
			DistanceMeters: match.DistanceMeters,
		})
	}

	srv.writeCache(ctx, key, items)

	return items, nil
}

// FindAll lists the catalog as (x, y, id) triples.
func (srv *proximityService) FindAll(ctx context.Context) ([]usecase.CatalogItem, error) {
	key := catalogCacheKey()

	var items []usecase.CatalogItem
	if srv.readCache(ctx, cacheOpCatalog, key, &items) {
		return items, nil
	}

	queryCtx, cancel := withQueryTimeout(ctx, srv.queryTimeout)
	defer cancel()

	locations, err := srv.locations.FindAll(queryCtx)
	if err != nil {
		return nil, translateError(err, "find all locations")
	}

	items = make([]usecase.CatalogItem, 0, len(locations))
	for _, loc := range locations {
		items = append(items, usecase.CatalogItem{
			X:          loc.Point.Lon(),
			Y:          loc.Point.Lat(),
			LocationID: loc.ID,
		})
	}

	srv.writeCache(ctx, key, items)

	return items, nil
}

// readCache decodes a cached value into dst. Any cache failure counts as a miss.
func (srv *proximityService) readCache(ctx context.Context, op, key string, dst any) bool {
	if srv.cacheTTL <= 0 {
		return false
	}

	raw, ok, err := srv.cache.Get(ctx, key)
	if err != nil {
		srv.metrics.RecordCacheLookup(op, "error")
		srv.log(ctx).Warn("Result cache read failed", slog.String("key", key), slog.Any("error", err))

		return false
	}
	if !ok {
		srv.metrics.RecordCacheLookup(op, "miss")

		return false
	}

	if err := json.Unmarshal(raw, dst); err != nil {
		srv.metrics.RecordCacheLookup(op, "error")
		srv.log(ctx).Warn("Discarding undecodable cache entry", slog.String("key", key), slog.Any("error", err))

		return false
	}

	srv.metrics.RecordCacheLookup(op, "hit")

	return true
}

func (srv *proximityService) writeCache(ctx context.Context, key string, value any) {
	if srv.cacheTTL <= 0 {
		return
	}

	raw, err := json.Marshal(value)
	if err != nil {
		srv.log(ctx).Warn("Failed to encode cache entry", slog.String("key", key), slog.Any("error", err))

		return
	}

	if err := srv.cache.Set(ctx, key, raw, srv.cacheTTL); err != nil {
		srv.log(ctx).Warn("Result cache write failed", slog.String("key", key), slog.Any("error", err))
	}
}
