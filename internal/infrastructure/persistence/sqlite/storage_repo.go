// Package sqlite provides the SQLite-backed state storage.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/bnema/workbench/internal/application/port"
	"github.com/bnema/workbench/internal/domain/entity"
	"github.com/bnema/workbench/internal/domain/repository"
	"github.com/bnema/workbench/internal/logging"
)

const (
	getItemSQL    = `SELECT value FROM item_table WHERE scope = ? AND key = ?`
	upsertItemSQL = `INSERT INTO item_table (scope, key, value, updated_at)
VALUES (?, ?, ?, CURRENT_TIMESTAMP)
ON CONFLICT (scope, key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`
	deleteItemSQL = `DELETE FROM item_table WHERE scope = ? AND key = ?`
)

type storageRepo struct {
	provider port.DatabaseProvider
}

// NewStorageRepository creates a key/value storage repository on top of provider.
// The database is opened on the first call that needs it.
func NewStorageRepository(provider port.DatabaseProvider) repository.StorageRepository {
	return &storageRepo{provider: provider}
}

func (r *storageRepo) Get(ctx context.Context, scope entity.StorageScope, key string) (string, bool, error) {
	if !scope.IsValid() {
		return "", false, fmt.Errorf("get %q: invalid scope %q", key, scope)
	}
	db, err := r.provider.DB(ctx)
	if err != nil {
		return "", false, err
	}

	var value string
	err = db.QueryRowContext(ctx, getItemSQL, string(scope), key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("get %s/%s: %w", scope, key, err)
	}
	return value, true, nil
}

func (r *storageRepo) Store(ctx context.Context, scope entity.StorageScope, key, value string) error {
	if !scope.IsValid() {
		return fmt.Errorf("store %q: invalid scope %q", key, scope)
	}
	db, err := r.provider.DB(ctx)
	if err != nil {
		return err
	}

	logging.FromContext(ctx).Debug().
		Str("scope", string(scope)).
		Str("key", key).
		Int("bytes", len(value)).
		Msg("storing item")

	if _, err := db.ExecContext(ctx, upsertItemSQL, string(scope), key, value); err != nil {
		return fmt.Errorf("store %s/%s: %w", scope, key, err)
	}
	return nil
}

func (r *storageRepo) Delete(ctx context.Context, scope entity.StorageScope, key string) error {
	db, err := r.provider.DB(ctx)
	if err != nil {
		return err
	}
	if _, err := db.ExecContext(ctx, deleteItemSQL, string(scope), key); err != nil {
		return fmt.Errorf("delete %s/%s: %w", scope, key, err)
	}
	return nil
}
