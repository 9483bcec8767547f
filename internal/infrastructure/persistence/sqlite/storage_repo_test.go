package sqlite_test

import (
	"path/filepath"
	"testing"

	"github.com/bnema/workbench/internal/domain/entity"
	"github.com/bnema/workbench/internal/infrastructure/persistence/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStorageRepository_CRUD(t *testing.T) {
	ctx := testCtx()
	lazy := sqlite.NewLazyDB(filepath.Join(t.TempDir(), "state.db"))
	t.Cleanup(func() { _ = lazy.Close() })

	repo := sqlite.NewStorageRepository(lazy)

	_, found, err := repo.Get(ctx, entity.StorageScopeGlobal, entity.RecentlyOpenedStorageKey)
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, repo.Store(ctx, entity.StorageScopeGlobal, entity.RecentlyOpenedStorageKey, `{"files":[]}`))
	require.NoError(t, repo.Store(ctx, entity.StorageScopeGlobal, entity.RecentlyOpenedStorageKey, `{"workspaces":[]}`))

	value, found, err := repo.Get(ctx, entity.StorageScopeGlobal, entity.RecentlyOpenedStorageKey)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, `{"workspaces":[]}`, value)

	// Keys are independent.
	_, found, err = repo.Get(ctx, entity.StorageScopeGlobal, "layout")
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, repo.Delete(ctx, entity.StorageScopeGlobal, entity.RecentlyOpenedStorageKey))
	_, found, err = repo.Get(ctx, entity.StorageScopeGlobal, entity.RecentlyOpenedStorageKey)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestStorageRepository_SurvivesReopen(t *testing.T) {
	ctx := testCtx()
	dbPath := filepath.Join(t.TempDir(), "state.db")

	first := sqlite.NewLazyDB(dbPath)
	require.NoError(t, sqlite.NewStorageRepository(first).Store(ctx, entity.StorageScopeGlobal, "k", "v"))
	require.NoError(t, first.Close())

	second := sqlite.NewLazyDB(dbPath)
	t.Cleanup(func() { _ = second.Close() })

	value, found, err := sqlite.NewStorageRepository(second).Get(ctx, entity.StorageScopeGlobal, "k")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "v", value)
}

func TestStorageRepository_InvalidScope(t *testing.T) {
	ctx := testCtx()
	lazy := sqlite.NewLazyDB(filepath.Join(t.TempDir(), "state.db"))
	repo := sqlite.NewStorageRepository(lazy)

	require.Error(t, repo.Store(ctx, entity.StorageScope("bogus"), "k", "v"))
	_, _, err := repo.Get(ctx, entity.StorageScope("bogus"), "k")
	require.Error(t, err)
	assert.False(t, lazy.IsInitialized())
}
