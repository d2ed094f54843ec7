// Lunchmap - Team Restaurant Sharing and Geographic Rating
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/lunchmap

package store

import (
	"context"
	"time"

	"github.com/tomtom215/lunchmap/internal/metrics"
	"github.com/tomtom215/lunchmap/internal/models"
)

// InstrumentedStore decorates a Store with Prometheus metrics: operation
// latency, error counts, and dataset collection sizes.
type InstrumentedStore struct {
	inner Store
}

// Instrument wraps a store with metrics collection.
func Instrument(inner Store) *InstrumentedStore {
	return &InstrumentedStore{inner: inner}
}

// Load delegates to the inner store, recording latency and gauges.
func (s *InstrumentedStore) Load(ctx context.Context) (*models.Dataset, error) {
	start := time.Now()
	ds, err := s.inner.Load(ctx)
	metrics.RecordStoreOperation("load", time.Since(start), err)
	if err == nil {
		updateGauges(ds)
	}
	return ds, err
}

// Save delegates to the inner store, recording latency and gauges.
func (s *InstrumentedStore) Save(ctx context.Context, ds *models.Dataset) error {
	start := time.Now()
	err := s.inner.Save(ctx, ds)
	metrics.RecordStoreOperation("save", time.Since(start), err)
	if err == nil {
		updateGauges(ds)
	}
	return err
}

func updateGauges(ds *models.Dataset) {
	metrics.UpdateDatasetGauges(len(ds.Teams), len(ds.Users), len(ds.Restaurants), len(ds.Reviews))
}
