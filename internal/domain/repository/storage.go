// Package repository defines persistence boundaries for the domain.
package repository

import (
	"context"

	"github.com/bnema/workbench/internal/domain/entity"
)

// StorageRepository is a scoped key/value store of opaque text values.
// Store replaces the whole value in a single write.
type StorageRepository interface {
	// Get returns the value for key. found is false when the key does not exist.
	Get(ctx context.Context, scope entity.StorageScope, key string) (value string, found bool, err error)

	// Store writes value under key, replacing any previous value.
	Store(ctx context.Context, scope entity.StorageScope, key, value string) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, scope entity.StorageScope, key string) error
}
