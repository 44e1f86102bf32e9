package main

import (
	"context"
	"log/slog"

	"github.com/spf13/cobra"

	"arches/internal/errors"
	"arches/internal/infra/persistence/postgres"
	"arches/internal/infra/seed"
)

const defaultSeedBatchSize = 500

type seedFlags struct {
	bucket    string
	key       string
	replace   bool
	batchSize int
}

func newSeedCmd() *cobra.Command {
	var flags seedFlags

	seedCmd := &cobra.Command{
		Use:   "seed",
		Short: "Import the location catalog into PostgreSQL",
		Long: `Read a CSV with address,longitude,latitude columns (and an optional id column)
from a gocloud blob bucket such as file:///data or gs://bucket and insert it
into the locations table. Bucket and key default to store.seedBucket and store.seedKey.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if flags.batchSize <= 0 {
				return errors.Errorf("--batch-size must be positive, got %d", flags.batchSize)
			}

			return withDatabase(cmd.Context(), func(ctx context.Context, env *commandEnv) error {
				return runSeed(ctx, env, flags)
			})
		},
	}

	seedCmd.Flags().StringVar(&flags.bucket, "bucket", "", "Bucket URL (default: store.seedBucket)")
	seedCmd.Flags().StringVar(&flags.key, "key", "", "Object key of the CSV (default: store.seedKey)")
	seedCmd.Flags().BoolVar(&flags.replace, "replace", false, "Delete existing locations and visits first")
	seedCmd.Flags().IntVar(&flags.batchSize, "batch-size", defaultSeedBatchSize, "Rows per INSERT statement")

	return seedCmd
}

func runSeed(ctx context.Context, env *commandEnv, flags seedFlags) error {
	bucket, key := flags.bucket, flags.key
	if bucket == "" {
		bucket = env.Config.Store.SeedBucket
	}
	if key == "" {
		key = env.Config.Store.SeedKey
	}

	locations, err := seed.LoadFromBucket(ctx, env.Logger, bucket, key)
	if err != nil {
		return err
	}

	result, err := postgres.NewLocationSeeder(env.DB, flags.batchSize).Seed(ctx, locations, flags.replace)
	if err != nil {
		return errors.Wrap(err, "seed locations")
	}

	env.Logger.Info("Seeded location catalog",
		slog.Int("inserted", result.Inserted),
		slog.Bool("replaced", result.Replaced),
	)

	return nil
}
