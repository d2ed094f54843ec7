// Lunchmap - Team Restaurant Sharing and Geographic Rating
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/lunchmap

package store

import (
	"context"
	"fmt"
	"sync"

	"github.com/goccy/go-json"

	"github.com/tomtom215/lunchmap/internal/models"
)

// MemoryStore is an in-memory Store. It backs tests and ephemeral
// deployments; data is lost when the process exits.
//
// Load and Save deep-copy the dataset so callers can never alias the
// canonical copy, matching FileStore's read-fresh semantics.
type MemoryStore struct {
	mu sync.Mutex
	ds *models.Dataset

	// LoadErr and SaveErr, when set, are returned by the corresponding
	// operation. Tests use these to exercise StorageUnavailable paths.
	LoadErr error
	SaveErr error
}

// NewMemoryStore creates a memory store initialized with the default team,
// migrated the same way a fresh data file would be.
func NewMemoryStore() *MemoryStore {
	ds := DefaultDataset()
	migrate(ds)
	return &MemoryStore{ds: ds}
}

// NewMemoryStoreWith creates a memory store holding the given dataset
// as-is. No migration is applied; tests control the exact state.
func NewMemoryStoreWith(ds *models.Dataset) *MemoryStore {
	return &MemoryStore{ds: ds}
}

// Load returns a deep copy of the current dataset.
func (s *MemoryStore) Load(_ context.Context) (*models.Dataset, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.LoadErr != nil {
		return nil, s.LoadErr
	}
	return deepCopy(s.ds)
}

// Save replaces the held dataset with a deep copy of the given one.
func (s *MemoryStore) Save(_ context.Context, ds *models.Dataset) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.SaveErr != nil {
		return s.SaveErr
	}

	cp, err := deepCopy(ds)
	if err != nil {
		return err
	}
	s.ds = cp
	return nil
}

// deepCopy clones a dataset through its JSON representation, the same
// round trip the file store performs.
func deepCopy(ds *models.Dataset) (*models.Dataset, error) {
	raw, err := json.Marshal(ds)
	if err != nil {
		return nil, fmt.Errorf("%w: encode dataset: %v", ErrUnavailable, err)
	}
	cp := &models.Dataset{}
	if err := json.Unmarshal(raw, cp); err != nil {
		return nil, fmt.Errorf("%w: decode dataset: %v", ErrUnavailable, err)
	}
	return cp, nil
}
