// Lunchmap - Team Restaurant Sharing and Geographic Rating
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/lunchmap

package service

import (
	"context"
	"time"

	"github.com/tomtom215/lunchmap/internal/models"
)

// ListTeams returns the public team directory: every team with its join
// code stripped. Unauthenticated; the registration form needs it.
func (s *Service) ListTeams(ctx context.Context) ([]models.PublicTeam, error) {
	ds, err := s.store.Load(ctx)
	if err != nil {
		return nil, err
	}

	teams := make([]models.PublicTeam, len(ds.Teams))
	for i := range ds.Teams {
		teams[i] = ds.Teams[i].Public()
	}
	return teams, nil
}

// ListDepartments returns the deduplicated department list across all
// teams, in first-seen order.
func (s *Service) ListDepartments(ctx context.Context) ([]models.Department, error) {
	ds, err := s.store.Load(ctx)
	if err != nil {
		return nil, err
	}

	seen := map[string]bool{}
	departments := []models.Department{}
	for _, team := range ds.Teams {
		for _, dept := range team.Departments {
			key := dept.Name + "\x00" + dept.Code
			if seen[key] {
				continue
			}
			seen[key] = true
			departments = append(departments, dept)
		}
	}
	return departments, nil
}

// Health probes the store and reports service status. A failing store
// degrades the status rather than erroring; the health endpoint always
// answers.
func (s *Service) Health(ctx context.Context) models.HealthStatus {
	status := models.HealthStatus{
		Status:        "healthy",
		Version:       s.version,
		StoreWritable: true,
		Uptime:        time.Since(s.startedAt).Seconds(),
	}
	if _, err := s.store.Load(ctx); err != nil {
		status.Status = "degraded"
		status.StoreWritable = false
	}
	return status
}
