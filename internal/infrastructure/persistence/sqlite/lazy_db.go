package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"sync"

	"github.com/bnema/workbench/internal/application/port"
	"github.com/bnema/workbench/internal/logging"
)

// LazyDB opens the state database on first use. Commands that never read
// or write recents skip the driver startup and migrations entirely.
type LazyDB struct {
	path string

	once sync.Once
	mu   sync.RWMutex
	db   *sql.DB
	err  error
}

var _ port.DatabaseProvider = (*LazyDB)(nil)

// NewLazyDB returns a provider for the database at path.
func NewLazyDB(path string) *LazyDB {
	return &LazyDB{path: path}
}

// DB opens the database on the first call and returns the same handle, or the
// same error, on every later call.
func (l *LazyDB) DB(ctx context.Context) (*sql.DB, error) {
	l.once.Do(func() {
		db, err := NewConnection(ctx, l.path)
		if err != nil {
			logging.FromContext(ctx).Error().Err(err).Str("path", l.path).Msg("opening state database failed")
		}

		l.mu.Lock()
		l.db, l.err = db, err
		l.mu.Unlock()
	})

	l.mu.RLock()
	defer l.mu.RUnlock()
	if l.err != nil {
		return nil, fmt.Errorf("open state database: %w", l.err)
	}
	return l.db, nil
}

// Close releases the handle. It is a no-op before the first DB call.
func (l *LazyDB) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return Close(l.db)
}

// IsInitialized reports whether DB has opened the database.
func (l *LazyDB) IsInitialized() bool {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.db != nil
}

// Path returns the database file path.
func (l *LazyDB) Path() string {
	return l.path
}
