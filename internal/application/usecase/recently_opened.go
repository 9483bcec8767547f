package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/bnema/workbench/internal/domain/entity"
	"github.com/bnema/workbench/internal/domain/repository"
	"github.com/bnema/workbench/internal/logging"
)

// ErrPersistRecents wraps storage failures while writing the recent history.
var ErrPersistRecents = errors.New("failed to persist recently opened")

// RecentsLimits caps the length of each recent list. Zero means unlimited.
type RecentsLimits struct {
	MaxFiles      int
	MaxWorkspaces int
}

// RecentlyOpenedUseCase owns the recently opened history and its persisted form.
//
// The history is loaded lazily on first use from the global storage key
// entity.RecentlyOpenedStorageKey and written back after every mutation. Mutations are
// write-then-commit: if the write fails the in-memory history is left unchanged.
type RecentlyOpenedUseCase struct {
	storage repository.StorageRepository
	limits  RecentsLimits

	mu        sync.Mutex
	history   *entity.RecentHistory // nil until loaded
	listeners []func(*entity.RecentHistory)
}

// NewRecentlyOpenedUseCase creates a new recently opened use case.
func NewRecentlyOpenedUseCase(storage repository.StorageRepository, limits RecentsLimits) *RecentlyOpenedUseCase {
	return &RecentlyOpenedUseCase{
		storage: storage,
		limits:  limits,
	}
}

// OnDidChange registers a callback invoked with a copy of the history after each
// committed mutation.
func (uc *RecentlyOpenedUseCase) OnDidChange(fn func(*entity.RecentHistory)) {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	uc.listeners = append(uc.listeners, fn)
}

// GetRecentlyOpened returns a copy of the current history.
func (uc *RecentlyOpenedUseCase) GetRecentlyOpened(ctx context.Context) (*entity.RecentHistory, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	if err := uc.ensureLoaded(ctx); err != nil {
		return nil, err
	}
	return uc.history.Clone(), nil
}

// Add records entries in the given order; the last entry ends up frontmost.
func (uc *RecentlyOpenedUseCase) Add(ctx context.Context, entries ...entity.RecentEntry) error {
	log := logging.FromContext(ctx)
	log.Debug().Int("count", len(entries)).Msg("adding recently opened entries")

	return uc.mutate(ctx, func(h *entity.RecentHistory) error {
		if err := h.Add(entries...); err != nil {
			return err
		}
		h.Truncate(uc.limits.MaxFiles, uc.limits.MaxWorkspaces)
		return nil
	})
}

// Remove drops every entry whose location matches one of locations.
// Removing a location that is not present is a no-op (the history is still written).
func (uc *RecentlyOpenedUseCase) Remove(ctx context.Context, locations ...entity.Location) error {
	log := logging.FromContext(ctx)

	return uc.mutate(ctx, func(h *entity.RecentHistory) error {
		removed := h.Remove(locations...)
		log.Debug().Int("requested", len(locations)).Int("removed", removed).Msg("removing recently opened entries")
		return nil
	})
}

// Clear empties the history and deletes its stored item.
func (uc *RecentlyOpenedUseCase) Clear(ctx context.Context) error {
	logging.FromContext(ctx).Info().Msg("clearing recently opened")

	return uc.mutate(ctx, func(h *entity.RecentHistory) error {
		h.Files = h.Files[:0]
		h.Workspaces = h.Workspaces[:0]
		return nil
	})
}

// mutate applies fn to a copy of the history, persists the copy and commits it.
func (uc *RecentlyOpenedUseCase) mutate(ctx context.Context, fn func(*entity.RecentHistory) error) error {
	uc.mu.Lock()

	if err := uc.ensureLoaded(ctx); err != nil {
		uc.mu.Unlock()
		return err
	}

	next := uc.history.Clone()
	if err := fn(next); err != nil {
		uc.mu.Unlock()
		return err
	}

	if err := uc.persist(ctx, next); err != nil {
		uc.mu.Unlock()
		return err
	}

	uc.history = next
	listeners := make([]func(*entity.RecentHistory), len(uc.listeners))
	copy(listeners, uc.listeners)
	uc.mu.Unlock()

	for _, listener := range listeners {
		listener(next.Clone())
	}
	return nil
}

// ensureLoaded reads and decodes the persisted history once. Must be called with uc.mu held.
func (uc *RecentlyOpenedUseCase) ensureLoaded(ctx context.Context) error {
	if uc.history != nil {
		return nil
	}

	raw, found, err := uc.storage.Get(ctx, entity.StorageScopeGlobal, entity.RecentlyOpenedStorageKey)
	if err != nil {
		return fmt.Errorf("failed to load recently opened: %w", err)
	}
	if !found {
		uc.history = entity.NewRecentHistory()
		return nil
	}

	uc.history = DecodeRecentHistory(ctx, raw)
	return nil
}

// persist writes h, or deletes the stored item when h is empty.
func (uc *RecentlyOpenedUseCase) persist(ctx context.Context, h *entity.RecentHistory) error {
	if h.Len() == 0 {
		if err := uc.storage.Delete(ctx, entity.StorageScopeGlobal, entity.RecentlyOpenedStorageKey); err != nil {
			logging.FromContext(ctx).Error().Err(err).Msg("failed to delete recently opened")
			return fmt.Errorf("%w: %w", ErrPersistRecents, err)
		}
		return nil
	}

	data, err := EncodeRecentHistory(h)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrPersistRecents, err)
	}

	if err := uc.storage.Store(ctx, entity.StorageScopeGlobal, entity.RecentlyOpenedStorageKey, data); err != nil {
		logging.FromContext(ctx).Error().Err(err).Msg("failed to store recently opened")
		return fmt.Errorf("%w: %w", ErrPersistRecents, err)
	}
	return nil
}

// EncodeRecentHistory serializes a history to its persisted JSON form.
func EncodeRecentHistory(h *entity.RecentHistory) (string, error) {
	data, err := json.Marshal(h.ToSerialized())
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// DecodeRecentHistory parses the persisted JSON form. Malformed input is logged and
// decodes to an empty history; it never fails.
func DecodeRecentHistory(ctx context.Context, raw string) *entity.RecentHistory {
	log := logging.FromContext(ctx)

	var serialized entity.SerializedRecentHistory
	if err := json.Unmarshal([]byte(raw), &serialized); err != nil {
		log.Warn().Err(err).Msg("discarding unreadable recently opened history")
		return entity.NewRecentHistory()
	}

	h, skipped := entity.RecentHistoryFromSerialized(&serialized)
	if skipped > 0 {
		log.Debug().Int("skipped", skipped).Msg("skipped unrecognized recently opened entries")
	}
	return h
}
