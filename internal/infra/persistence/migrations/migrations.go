// Package migrations embeds the goose SQL migrations for the postgres schema.
package migrations

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"log/slog"
	"strings"

	"github.com/pkg/errors"
	"github.com/pressly/goose/v3"
)

//go:embed *.sql
var embedMigrations embed.FS

// Up applies every pending migration.
func Up(ctx context.Context, db *sql.DB, logger *slog.Logger) error {
	if err := configure(logger); err != nil {
		return err
	}

	if err := goose.UpContext(ctx, db, "."); err != nil {
		return errors.Wrap(err, "apply migrations")
	}

	return nil
}

// Down rolls back the most recent migration.
func Down(ctx context.Context, db *sql.DB, logger *slog.Logger) error {
	if err := configure(logger); err != nil {
		return err
	}

	if err := goose.DownContext(ctx, db, "."); err != nil {
		return errors.Wrap(err, "roll back migration")
	}

	return nil
}

// Version returns the current schema version.
func Version(ctx context.Context, db *sql.DB, logger *slog.Logger) (int64, error) {
	if err := configure(logger); err != nil {
		return 0, err
	}

	version, err := goose.GetDBVersionContext(ctx, db)
	if err != nil {
		return 0, errors.Wrap(err, "read schema version")
	}

	return version, nil
}

func configure(logger *slog.Logger) error {
	goose.SetBaseFS(embedMigrations)
	goose.SetLogger(gooseLogger{logger: logger})

	if err := goose.SetDialect("postgres"); err != nil {
		return errors.Wrap(err, "set goose dialect")
	}

	return nil
}

// gooseLogger routes goose output through slog.
type gooseLogger struct {
	logger *slog.Logger
}

func (l gooseLogger) Fatalf(format string, v ...any) {
	l.logger.Error("goose: " + strings.TrimSpace(fmt.Sprintf(format, v...)))
}

func (l gooseLogger) Printf(format string, v ...any) {
	l.logger.Info("goose: " + strings.TrimSpace(fmt.Sprintf(format, v...)))
}
