// Lunchmap - Team Restaurant Sharing and Geographic Rating
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/lunchmap

package service

import (
	"context"
	"strings"
	"testing"

	"github.com/goccy/go-json"

	"github.com/tomtom215/lunchmap/internal/store"
)

func TestListTeams_OmitsJoinCodes(t *testing.T) {
	svc, _ := newTestService(t, testDataset(t))

	teams, err := svc.ListTeams(context.Background())
	if err != nil {
		t.Fatalf("ListTeams: %v", err)
	}
	if len(teams) != 2 {
		t.Fatalf("expected 2 teams, got %d", len(teams))
	}

	raw, err := json.Marshal(teams)
	if err != nil {
		t.Fatal(err)
	}
	for _, code := range []string{"LUNCH-TEAM", "BRANCH"} {
		if strings.Contains(string(raw), code) {
			t.Errorf("join code %q leaked into public directory: %s", code, raw)
		}
	}
}

func TestListDepartments_Deduplicates(t *testing.T) {
	ds := testDataset(t)
	// Duplicate Engineering/ENG on the second team.
	ds.Teams[1].Departments = append(ds.Teams[1].Departments,
		ds.Teams[0].Departments[0])
	svc, _ := newTestService(t, ds)

	departments, err := svc.ListDepartments(context.Background())
	if err != nil {
		t.Fatalf("ListDepartments: %v", err)
	}

	// Engineering, Product, Warehouse; the duplicate collapses.
	if len(departments) != 3 {
		t.Errorf("departments = %+v, want 3 unique entries", departments)
	}
	if departments[0].Name != "Engineering" {
		t.Errorf("first-seen order broken: %+v", departments)
	}
}

func TestHealth(t *testing.T) {
	svc, st := newTestService(t, testDataset(t))

	status := svc.Health(context.Background())
	if status.Status != "healthy" || !status.StoreWritable {
		t.Errorf("healthy store reported %+v", status)
	}
	if status.Version != "test" {
		t.Errorf("version = %q", status.Version)
	}

	st.LoadErr = store.ErrUnavailable
	status = svc.Health(context.Background())
	if status.Status != "degraded" || status.StoreWritable {
		t.Errorf("failing store reported %+v", status)
	}
}
