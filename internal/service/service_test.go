// Lunchmap - Team Restaurant Sharing and Geographic Rating
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/lunchmap

package service

import (
	"fmt"
	"testing"
	"time"

	"github.com/tomtom215/lunchmap/internal/auth"
	"github.com/tomtom215/lunchmap/internal/models"
	"github.com/tomtom215/lunchmap/internal/store"
)

var testClock = time.Date(2026, 3, 2, 12, 0, 0, 0, time.UTC)

// testDataset builds two teams with members, one restaurant per team,
// and one review, so isolation tests have something to leak.
func testDataset(t *testing.T) *models.Dataset {
	t.Helper()

	aliceHash, err := auth.HashPassword("alice-password")
	if err != nil {
		t.Fatal(err)
	}

	return &models.Dataset{
		Teams: []models.Team{
			{
				ID:   "team-default",
				Name: "Lunch Crew",
				Code: "LUNCH-TEAM",
				Departments: []models.Department{
					{Name: "Engineering", Code: "ENG"},
					{Name: "Product", Code: "PRD"},
				},
			},
			{
				ID:          "team-branch",
				Name:        "Branch Office",
				Code:        "BRANCH",
				Departments: []models.Department{{Name: "Warehouse", Code: "WHS"}},
			},
		},
		Users: []models.User{
			{
				ID: "u-alice", Username: "alice", DisplayName: "Alice",
				Department: "Engineering", DepartmentCode: "ENG",
				TeamID: "team-default", CreatedAt: testClock,
				Credential: &models.Credential{Hash: aliceHash},
			},
			{
				ID: "u-bob", Username: "bob", DisplayName: "Bob",
				Department: "Product", DepartmentCode: "PRD",
				TeamID: "team-default", CreatedAt: testClock,
				Credential: &models.Credential{Hash: aliceHash},
			},
			{
				ID: "u-carol", Username: "carol", DisplayName: "Carol",
				Department: "Warehouse", TeamID: "team-branch", CreatedAt: testClock,
				Credential: &models.Credential{Hash: aliceHash},
			},
		},
		Restaurants: []models.Restaurant{
			{
				ID: "r-noodle", TeamID: "team-default", Name: "Noodle Bar",
				Lat: 37.51, Lng: 127.02, CreatedBy: "u-alice", CreatedAt: testClock,
			},
			{
				ID: "r-branch", TeamID: "team-branch", Name: "Branch Diner",
				Lat: 35.1, Lng: 129.0, CreatedBy: "u-carol", CreatedAt: testClock,
			},
		},
		Reviews: []models.Review{
			{
				ID: "v-1", RestaurantID: "r-noodle", UserID: "u-bob",
				Rating: 4, ShortComment: "Solid", CreatedAt: testClock,
			},
		},
	}
}

// newTestService wires a service over a memory store with deterministic
// IDs and clock.
func newTestService(t *testing.T, ds *models.Dataset) (*Service, *store.MemoryStore) {
	t.Helper()

	st := store.NewMemoryStoreWith(ds)
	authenticator := auth.NewAuthenticator(auth.ModeSession, auth.NewMemorySessionStore(), nil, time.Hour)
	svc := New(st, authenticator, "test")

	seq := 0
	svc.newID = func() string {
		seq++
		return fmt.Sprintf("id-%04d", seq)
	}
	svc.now = func() time.Time { return testClock.Add(time.Duration(seq) * time.Minute) }

	return svc, st
}

func alice() *auth.Requester {
	return &auth.Requester{UserID: "u-alice", TeamID: "team-default"}
}

func bob() *auth.Requester {
	return &auth.Requester{UserID: "u-bob", TeamID: "team-default"}
}

func carol() *auth.Requester {
	return &auth.Requester{UserID: "u-carol", TeamID: "team-branch"}
}
