package sqlite_test

import (
	"context"
	"database/sql"
	"path/filepath"
	"sync"
	"testing"

	"github.com/bnema/workbench/internal/infrastructure/persistence/sqlite"
	"github.com/bnema/workbench/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCtx() context.Context {
	logger := logging.NewFromConfigValues("debug", "console")
	return logging.WithContext(context.Background(), logger)
}

func TestLazyDB_NotInitializedByDefault(t *testing.T) {
	lazy := sqlite.NewLazyDB(filepath.Join(t.TempDir(), "state.db"))

	assert.False(t, lazy.IsInitialized())
}

func TestLazyDB_InitializesOnFirstAccess(t *testing.T) {
	ctx := testCtx()
	lazy := sqlite.NewLazyDB(filepath.Join(t.TempDir(), "nested", "state.db"))

	db, err := lazy.DB(ctx)
	require.NoError(t, err)
	require.NotNil(t, db)
	assert.True(t, lazy.IsInitialized())

	version, err := sqlite.GetMigrationStatus(ctx, db)
	require.NoError(t, err)
	assert.Equal(t, int64(1), version)

	require.NoError(t, lazy.Close())
}

func TestLazyDB_ConcurrentAccess(t *testing.T) {
	ctx := testCtx()
	lazy := sqlite.NewLazyDB(filepath.Join(t.TempDir(), "state.db"))
	t.Cleanup(func() { _ = lazy.Close() })

	const goroutines = 10
	var wg sync.WaitGroup
	dbs := make([]*sql.DB, goroutines)
	errs := make([]error, goroutines)

	for i := range goroutines {
		wg.Add(1)
		go func() {
			defer wg.Done()
			dbs[i], errs[i] = lazy.DB(ctx)
		}()
	}
	wg.Wait()

	for i := range goroutines {
		require.NoError(t, errs[i])
		assert.Same(t, dbs[0], dbs[i])
	}
}

func TestLazyDB_CloseBeforeInit(t *testing.T) {
	lazy := sqlite.NewLazyDB(filepath.Join(t.TempDir(), "state.db"))

	assert.NoError(t, lazy.Close())
}

func TestLazyDB_EmptyPathFails(t *testing.T) {
	lazy := sqlite.NewLazyDB("")

	_, err := lazy.DB(testCtx())
	require.Error(t, err)

	// The failure is sticky.
	_, err = lazy.DB(testCtx())
	require.Error(t, err)
	assert.False(t, lazy.IsInitialized())
}

func TestLazyDB_Path(t *testing.T) {
	lazy := sqlite.NewLazyDB("/some/path/state.db")

	assert.Equal(t, "/some/path/state.db", lazy.Path())
}
