// Package yamlstore provides a single-file YAML implementation of the state storage.
package yamlstore

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/bnema/workbench/internal/domain/entity"
	"github.com/bnema/workbench/internal/domain/repository"
	"github.com/bnema/workbench/internal/logging"
)

const (
	dirPerm  = 0o750
	filePerm = 0o600
)

// document is the on-disk layout: scope -> key -> value.
type document map[entity.StorageScope]map[string]string

// Store keeps every item in one YAML file. Every call re-reads the file under an
// advisory lock so several processes can share it.
type Store struct {
	path string
	mu   sync.Mutex
}

var _ repository.StorageRepository = (*Store)(nil)

// New creates a store backed by the file at path. The file is created on first write.
func New(path string) *Store {
	return &Store{path: path}
}

// Path returns the backing file path.
func (s *Store) Path() string {
	return s.path
}

func (s *Store) Get(ctx context.Context, scope entity.StorageScope, key string) (string, bool, error) {
	if !scope.IsValid() {
		return "", false, fmt.Errorf("get %q: invalid scope %q", key, scope)
	}

	var (
		value string
		found bool
	)
	err := s.withLock(ctx, false, func(doc document) (bool, error) {
		value, found = doc[scope][key]
		return false, nil
	})
	return value, found, err
}

func (s *Store) Store(ctx context.Context, scope entity.StorageScope, key, value string) error {
	if !scope.IsValid() {
		return fmt.Errorf("store %q: invalid scope %q", key, scope)
	}

	return s.withLock(ctx, true, func(doc document) (bool, error) {
		items := doc[scope]
		if items == nil {
			items = make(map[string]string)
			doc[scope] = items
		}
		items[key] = value
		return true, nil
	})
}

func (s *Store) Delete(ctx context.Context, scope entity.StorageScope, key string) error {
	return s.withLock(ctx, true, func(doc document) (bool, error) {
		items, ok := doc[scope]
		if !ok {
			return false, nil
		}
		if _, ok := items[key]; !ok {
			return false, nil
		}
		delete(items, key)
		if len(items) == 0 {
			delete(doc, scope)
		}
		return true, nil
	})
}

// withLock loads the document, runs fn and saves the document when fn reports a change.
func (s *Store) withLock(ctx context.Context, exclusive bool, fn func(document) (bool, error)) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.MkdirAll(filepath.Dir(s.path), dirPerm); err != nil {
		return fmt.Errorf("create state directory: %w", err)
	}

	unlock, err := lockFile(s.path+".lock", exclusive)
	if err != nil {
		return fmt.Errorf("lock state file: %w", err)
	}
	defer unlock()

	doc, err := s.load(ctx)
	if err != nil {
		return err
	}

	changed, err := fn(doc)
	if err != nil || !changed {
		return err
	}
	return s.save(doc)
}

func (s *Store) load(ctx context.Context) (document, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return make(document), nil
	}
	if err != nil {
		return nil, fmt.Errorf("read state file: %w", err)
	}

	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		// A corrupt file would otherwise block every write forever.
		logging.FromContext(ctx).Warn().Err(err).Str("path", s.path).Msg("discarding unreadable state file")
		return make(document), nil
	}
	if doc == nil {
		doc = make(document)
	}
	return doc, nil
}

// save writes to a temp file in the same directory and renames it over the target.
func (s *Store) save(doc document) error {
	data, err := yaml.Marshal(doc)
	if err != nil {
		return fmt.Errorf("marshal state: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(s.path), ".state-*.yaml")
	if err != nil {
		return fmt.Errorf("create temp state file: %w", err)
	}
	tmpPath := tmp.Name()
	defer func() { _ = os.Remove(tmpPath) }()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("write state file: %w", err)
	}
	if err := tmp.Chmod(filePerm); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("chmod state file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close state file: %w", err)
	}
	if err := os.Rename(tmpPath, s.path); err != nil {
		return fmt.Errorf("replace state file: %w", err)
	}
	return nil
}
