// Lunchmap - Team Restaurant Sharing and Geographic Rating
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/lunchmap

package store

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/goccy/go-json"

	"github.com/tomtom215/lunchmap/internal/logging"
	"github.com/tomtom215/lunchmap/internal/models"
)

// FileStore persists the dataset as one pretty-printed JSON document.
//
// Save writes to a temp file in the same directory and renames it over the
// target, so readers never observe a torn document. A process-local mutex
// serializes writes; cross-process writers still race last-write-wins.
type FileStore struct {
	path string
	mu   sync.Mutex
}

// NewFileStore creates a file store backed by the given path.
// The parent directory is created on first write if missing.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Path returns the backing file path.
func (s *FileStore) Path() string {
	return s.path
}

// Load reads and parses the dataset. A missing file initializes default
// state; an unreadable or unparsable file fails with ErrUnavailable.
// Pending migrations are applied and persisted before returning.
func (s *FileStore) Load(ctx context.Context) (*models.Dataset, error) {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: read %s: %v", ErrUnavailable, s.path, err)
		}

		ds := DefaultDataset()
		migrate(ds)
		if err := s.write(ds); err != nil {
			return nil, err
		}
		logging.Ctx(ctx).Info().Str("path", s.path).Msg("Initialized data file with default team")
		return ds, nil
	}

	ds := &models.Dataset{}
	if err := json.Unmarshal(raw, ds); err != nil {
		return nil, fmt.Errorf("%w: parse %s: %v", ErrUnavailable, s.path, err)
	}

	if migrate(ds) {
		if err := s.write(ds); err != nil {
			return nil, err
		}
		logging.Ctx(ctx).Info().Str("path", s.path).Msg("Applied data file migrations")
	}

	return ds, nil
}

// Save atomically replaces the persisted document.
func (s *FileStore) Save(_ context.Context, ds *models.Dataset) error {
	return s.write(ds)
}

// write marshals the dataset and swaps it into place via temp file + rename.
func (s *FileStore) write(ds *models.Dataset) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := json.MarshalIndent(ds, "", "  ")
	if err != nil {
		return fmt.Errorf("%w: encode dataset: %v", ErrUnavailable, err)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("%w: create %s: %v", ErrUnavailable, dir, err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(s.path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("%w: create temp file: %v", ErrUnavailable, err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("%w: write temp file: %v", ErrUnavailable, err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("%w: sync temp file: %v", ErrUnavailable, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("%w: close temp file: %v", ErrUnavailable, err)
	}

	if err := os.Rename(tmpName, s.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("%w: replace %s: %v", ErrUnavailable, s.path, err)
	}

	return nil
}
