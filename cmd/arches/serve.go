package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/fx"
	"gorm.io/gorm"

	"arches/config"
	"arches/internal/delivery"
	"arches/internal/delivery/http"
	httpmiddleware "arches/internal/delivery/http/middleware"
	"arches/internal/delivery/http/router/handler"
	"arches/internal/domain/lifecycle"
	"arches/internal/domain/repository"
	"arches/internal/domain/service"
	"arches/internal/errors"
	"arches/internal/infra/auth"
	"arches/internal/infra/cache"
	logs "arches/internal/infra/log"
	"arches/internal/infra/metrics"
	"arches/internal/infra/persistence/memory"
	"arches/internal/infra/persistence/postgres"
	"arches/internal/infra/pubsub"
	"arches/internal/infra/seed"
	"arches/internal/infra/spatial"
	"arches/internal/usecase/impl"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP server",
		RunE: func(_ *cobra.Command, _ []string) error {
			cfg, err := config.New()
			if err != nil {
				return err
			}

			app := fx.New(newServerOptions(cfg))
			if err := app.Err(); err != nil {
				return errors.WithStack(err)
			}

			app.Run()

			return nil
		},
	}
}

func newServerOptions(cfg *config.Config) fx.Option {
	return fx.Options(
		fx.Supply(cfg),
		injectInfra(),
		injectStore(cfg),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			startServer,
		),
	)
}

func injectInfra() fx.Option {
	return fx.Options(
		fx.Provide(
			logs.New,
			context.Background,
		),
		metrics.Module,
		fx.Provide(func(m *metrics.Metrics) service.MetricsRecorder { return m }),
		cache.Module,
		pubsub.Module,
	)
}

// injectStore wires the repositories for the configured driver and proximity strategy.
func injectStore(cfg *config.Config) fx.Option {
	if cfg.Store.Driver == config.StoreDriverMemory {
		return fx.Options(
			fx.Provide(
				newSeededCatalog,
				memory.NewStore,
				memory.NewUserRepository,
				memory.NewVisitRepository,
				memory.NewLocationRepository,
				memory.NewTransactionManager,
			),
		)
	}

	locations := fx.Provide(postgres.NewLocationRepository)
	if cfg.Proximity.Strategy == config.StrategyIndex {
		locations = fx.Provide(newIndexedLocations)
	}

	return fx.Options(
		fx.Provide(
			postgres.New,
			postgres.NewUserRepository,
			postgres.NewVisitRepository,
			postgres.NewTransactionManager,
		),
		locations,
	)
}

// newSeededCatalog fills the memory driver's catalog from the seed bucket on start.
func newSeededCatalog(lc fx.Lifecycle, cfg *config.Config, logger *slog.Logger) *spatial.Catalog {
	catalog := spatial.NewCatalog(cfg.Proximity.GridCellSizeKm)

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if cfg.Store.SeedBucket == "" {
				logger.Warn("No seed bucket configured, serving an empty catalog")

				return nil
			}

			locations, err := seed.LoadFromBucket(ctx, logger, cfg.Store.SeedBucket, cfg.Store.SeedKey)
			if err != nil {
				return err
			}

			return errors.Wrap(catalog.Load(locations), "load seeded catalog")
		},
	})

	return catalog
}

// newIndexedLocations serves radius queries from an in-process grid built from PostgreSQL at start.
func newIndexedLocations(lc fx.Lifecycle, cfg *config.Config, db *gorm.DB, logger *slog.Logger) repository.LocationRepository {
	catalog := spatial.NewCatalog(cfg.Proximity.GridCellSizeKm)

	lc.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := catalog.LoadFrom(ctx, postgres.NewLocationRepository(db)); err != nil {
				return err
			}

			logger.Info("Built in-process location index", slog.Int("locations", catalog.Size()))

			return nil
		},
	})

	return catalog
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			fx.Annotate(
				auth.NewJWTService,
				fx.As(new(service.TokenService)),
				fx.As(new(service.IdentityResolver)),
			),
		),
	)
}

func injectUsecase() fx.Option {
	return impl.Module
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			httpmiddleware.NewIdentityMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewAuthHandler,
			handler.NewLegacyHandler,
			handler.NewLocationHandler,
			handler.NewVisitHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				http.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

// startServer launches every delivery once the other start hooks (ping, migrations, catalog load) succeeded.
func startServer(ctx context.Context, params startServerParams) {
	params.Append(fx.Hook{
		OnStart: func(context.Context) error {
			for _, delivery := range params.Deliveries {
				go func() {
					if err := delivery.Serve(ctx); err != nil {
						slog.Error("Failed to start server", slog.Any("error", err))
						os.Exit(1)
					}
				}()
			}

			return nil
		},
	})
}
