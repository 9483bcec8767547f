package sqlite

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"io/fs"

	"github.com/pressly/goose/v3"

	"github.com/bnema/workbench/internal/logging"
)

//go:embed migrations/*.sql
var embedMigrations embed.FS

func newMigrator(db *sql.DB) (*goose.Provider, error) {
	fsys, err := fs.Sub(embedMigrations, "migrations")
	if err != nil {
		return nil, err
	}
	return goose.NewProvider(goose.DialectSQLite3, db, fsys)
}

// RunMigrations brings the item table schema up to date.
func RunMigrations(ctx context.Context, db *sql.DB) error {
	migrator, err := newMigrator(db)
	if err != nil {
		return fmt.Errorf("failed to load migrations: %w", err)
	}

	applied, err := migrator.Up(ctx)
	if err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	log := logging.FromContext(ctx)
	if len(applied) == 0 {
		log.Debug().Msg("storage schema up to date")
		return nil
	}
	for _, res := range applied {
		log.Info().
			Int64("version", res.Source.Version).
			Dur("took", res.Duration).
			Msg("storage migration applied")
	}
	return nil
}

// GetMigrationStatus returns the schema version recorded in db.
func GetMigrationStatus(ctx context.Context, db *sql.DB) (int64, error) {
	migrator, err := newMigrator(db)
	if err != nil {
		return 0, err
	}
	return migrator.GetDBVersion(ctx)
}
