// Lunchmap - Team Restaurant Sharing and Geographic Rating
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/lunchmap

package services

import (
	"context"
	"time"

	"github.com/tomtom215/lunchmap/internal/logging"
	"github.com/tomtom215/lunchmap/internal/metrics"
)

// SessionSweeper matches the expired-session cleanup method of
// auth.SessionStore. The narrow interface keeps this package from
// importing auth directly.
type SessionSweeper interface {
	DeleteExpired(ctx context.Context) (int, error)
}

// SweeperService periodically removes expired sessions from the session
// store. Badger expires its entries via TTL on its own; the sweep keeps
// the memory store bounded and the badger value log compact.
type SweeperService struct {
	sweeper  SessionSweeper
	interval time.Duration
	name     string
}

// NewSweeperService creates a sweeper running at the given interval.
// Intervals of zero or less fall back to 15 minutes.
func NewSweeperService(sweeper SessionSweeper, interval time.Duration) *SweeperService {
	if interval <= 0 {
		interval = 15 * time.Minute
	}
	return &SweeperService{
		sweeper:  sweeper,
		interval: interval,
		name:     "session-sweeper",
	}
}

// Serve implements suture.Service. A failing sweep is logged and retried
// on the next tick; only context cancellation stops the service.
func (s *SweeperService) Serve(ctx context.Context) error {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			n, err := s.sweeper.DeleteExpired(ctx)
			if err != nil {
				logging.Warn().Err(err).Msg("Session sweep failed")
				continue
			}
			metrics.RecordSessionsSwept(n)
			if n > 0 {
				logging.Debug().Int("removed", n).Msg("Swept expired sessions")
			}
		}
	}
}

// String implements fmt.Stringer for logging.
func (s *SweeperService) String() string {
	return s.name
}
