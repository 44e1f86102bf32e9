package main

import (
	"context"
	"database/sql"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"gorm.io/gorm"

	"arches/config"
	"arches/internal/errors"
	logs "arches/internal/infra/log"
	"arches/internal/infra/persistence/migrations"
	"arches/internal/infra/persistence/postgres"
)

func newMigrateCmd() *cobra.Command {
	migrateCmd := &cobra.Command{
		Use:   "migrate",
		Short: "Manage the database schema",
	}

	migrateCmd.AddCommand(
		&cobra.Command{
			Use:   "up",
			Short: "Apply all pending migrations",
			RunE: func(cmd *cobra.Command, _ []string) error {
				return withDatabase(cmd.Context(), func(ctx context.Context, env *commandEnv) error {
					return migrations.Up(ctx, env.SQL, env.Logger)
				})
			},
		},
		&cobra.Command{
			Use:   "down",
			Short: "Roll back the most recent migration",
			RunE: func(cmd *cobra.Command, _ []string) error {
				return withDatabase(cmd.Context(), func(ctx context.Context, env *commandEnv) error {
					return migrations.Down(ctx, env.SQL, env.Logger)
				})
			},
		},
		&cobra.Command{
			Use:   "version",
			Short: "Print the current schema version",
			RunE: func(cmd *cobra.Command, _ []string) error {
				return withDatabase(cmd.Context(), func(ctx context.Context, env *commandEnv) error {
					version, err := migrations.Version(ctx, env.SQL, env.Logger)
					if err != nil {
						return err
					}

					cmd.Printf("schema version %d\n", version)

					return nil
				})
			},
		},
	)

	return migrateCmd
}

// commandEnv is what a one-shot database command runs against.
type commandEnv struct {
	Config *config.Config
	Logger *slog.Logger
	DB     *gorm.DB
	SQL    *sql.DB
}

// withDatabase opens PostgreSQL from config.yaml for a one-shot command and closes it afterwards.
func withDatabase(ctx context.Context, fn func(ctx context.Context, env *commandEnv) error) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger, err := logs.NewWithWriter(cfg, os.Stderr)
	if err != nil {
		return err
	}

	db, err := postgres.Open(cfg, logger)
	if err != nil {
		return err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return errors.Wrap(err, "failed to get PostgreSQL sql.DB")
	}
	defer sqlDB.Close()

	if err := sqlDB.PingContext(ctx); err != nil {
		return errors.Wrap(err, "failed to ping PostgreSQL")
	}

	return fn(ctx, &commandEnv{Config: cfg, Logger: logger, DB: db, SQL: sqlDB})
}
