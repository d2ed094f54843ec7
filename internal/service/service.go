// Lunchmap - Team Restaurant Sharing and Geographic Rating
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/lunchmap

// Package service implements the Lunchmap business operations over the
// dataset store: registration and login, the team-scoped restaurant
// directory, reviews, and the public team metadata.
//
// Every mutating operation runs a load, mutate, save cycle against the
// store under a process-wide mutex, so concurrent writers within the
// process never interleave. Cross-process writers are out of scope; the
// store's atomic replace makes the race last-write-wins, never a torn
// document.
package service

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/tomtom215/lunchmap/internal/auth"
	"github.com/tomtom215/lunchmap/internal/store"
)

// Service executes Lunchmap operations. Construct with New; the zero
// value is not usable.
type Service struct {
	store store.Store
	auth  *auth.Authenticator

	// mu serializes load-mutate-save cycles.
	mu sync.Mutex

	// Injection points for deterministic tests.
	now   func() time.Time
	newID func() string

	startedAt time.Time
	version   string
}

// New creates a service over the given store and authenticator.
func New(st store.Store, authenticator *auth.Authenticator, version string) *Service {
	return &Service{
		store:     st,
		auth:      authenticator,
		now:       func() time.Time { return time.Now().UTC() },
		newID:     uuid.NewString,
		startedAt: time.Now(),
		version:   version,
	}
}
