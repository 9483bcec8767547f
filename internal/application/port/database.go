// Package port declares what the use cases need from the outside world.
package port

import (
	"context"
	"database/sql"
)

// DatabaseProvider hands out the SQLite handle backing the item table.
type DatabaseProvider interface {
	// DB opens the database on first use.
	DB(ctx context.Context) (*sql.DB, error)
	Close() error
	IsInitialized() bool
}
