package cache

import (
	"context"
	"log/slog"

	"go.uber.org/fx"

	"arches/config"
	"arches/internal/domain/service"
)

// CacheParams holds dependencies for ResultCache, injected by Fx
type CacheParams struct {
	fx.In

	Lc     fx.Lifecycle
	Config *config.Config
	Logger *slog.Logger
}

// NewResultCache creates a ResultCache based on configuration
func NewResultCache(params CacheParams) (service.ResultCache, error) {
	cfg := params.Config.Cache
	if cfg == nil || !cfg.Enabled {
		params.Logger.Info("Result cache disabled")

		return NewNoopCache(), nil
	}

	resultCache, err := NewValkeyCache(cfg.Address, params.Logger)
	if err != nil {
		return nil, err
	}

	params.Logger.Info("Result cache enabled",
		slog.String("address", cfg.Address),
		slog.Duration("ttl", cfg.TTL),
	)

	params.Lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			return resultCache.Close()
		},
	})

	return resultCache, nil
}

// Module provides the cache FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewResultCache),
)
