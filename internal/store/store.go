// Lunchmap - Team Restaurant Sharing and Geographic Rating
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/lunchmap

// Package store provides the single source of truth for all persisted state:
// one JSON document holding the team, user, restaurant, and review
// collections.
//
// Store is an injected interface so services and tests can substitute the
// in-memory implementation for the JSON-file one. Both implementations hand
// out independent copies on Load; the caller mutates its copy and passes it
// back to Save, which atomically replaces the persisted content. Concurrent
// writers race last-write-wins; that is an accepted property of the
// whole-document design, not something the store papers over.
package store

import (
	"context"
	"errors"

	"github.com/tomtom215/lunchmap/internal/models"
)

// ErrUnavailable is returned when the backing medium cannot be read or
// written. It is fatal for the current operation; no retry is attempted.
var ErrUnavailable = errors.New("storage unavailable")

// Store loads and persists the full dataset.
type Store interface {
	// Load returns the full dataset. If no prior state exists, the store
	// initializes it with the default team and empty collections, applies
	// pending migrations, and persists the result before returning.
	Load(ctx context.Context) (*models.Dataset, error)

	// Save atomically replaces the persisted content with the given
	// dataset. The entire previous content is overwritten.
	Save(ctx context.Context, ds *models.Dataset) error
}

// DefaultTeams returns the fixed seed team directory used when no prior
// state exists. The join code and department codes are fixed so fresh
// deployments are immediately joinable.
func DefaultTeams() []models.Team {
	return []models.Team{
		{
			ID:          "team-default",
			Name:        "Lunch Crew",
			Code:        "LUNCH-TEAM",
			Description: "Default team. Adjust the join code in configuration.",
			Departments: []models.Department{
				{Name: "Engineering", Code: "ENG"},
				{Name: "Product", Code: "PRD"},
				{Name: "Design", Code: "DSG"},
				{Name: "Marketing", Code: "MKT"},
				{Name: "Operations", Code: "OPS"},
			},
		},
	}
}

// DefaultDataset returns a fresh dataset containing the default team and
// empty user/restaurant/review collections.
func DefaultDataset() *models.Dataset {
	return &models.Dataset{
		Teams:       DefaultTeams(),
		Users:       []models.User{},
		Restaurants: []models.Restaurant{},
		Reviews:     []models.Review{},
	}
}
