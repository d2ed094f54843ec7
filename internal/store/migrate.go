// Lunchmap - Team Restaurant Sharing and Geographic Rating
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/lunchmap

package store

import (
	"strings"
	"time"
	"unicode"

	"github.com/tomtom215/lunchmap/internal/models"
)

// Fixed IDs for the one-time example seed so it is deterministic across
// deployments and recognizable in the data file.
const (
	seedRestaurantID = "seed-restaurant-001"
	seedReviewID     = "seed-review-001"
)

// migrate reconciles a loaded dataset against the current schema.
// Returns true when the dataset was modified and must be persisted.
//
// Two migrations exist:
//  1. Department codes: deployments created before join codes existed carry
//     departments without codes. Codes from the default directory are
//     injected by name into the default team; unknown names get a derived
//     code. Other teams are left untouched.
//  2. Example seed: the first time no restaurant has valid coordinates, one
//     example restaurant with a review is added so a fresh deployment does
//     not greet users with an empty map.
func migrate(ds *models.Dataset) bool {
	changed := false

	if ds.Teams == nil {
		ds.Teams = DefaultTeams()
		changed = true
	}
	if ds.Users == nil {
		ds.Users = []models.User{}
		changed = true
	}
	if ds.Restaurants == nil {
		ds.Restaurants = []models.Restaurant{}
		changed = true
	}
	if ds.Reviews == nil {
		ds.Reviews = []models.Review{}
		changed = true
	}

	if migrateDefaultTeamDepartments(ds) {
		changed = true
	}
	if seedExampleRestaurant(ds) {
		changed = true
	}

	return changed
}

// migrateDefaultTeamDepartments injects missing department codes into the
// default team without disturbing other teams.
func migrateDefaultTeamDepartments(ds *models.Dataset) bool {
	defaults := DefaultTeams()[0]
	team := ds.TeamByID(defaults.ID)
	if team == nil {
		return false
	}

	changed := false

	codeByName := make(map[string]string, len(defaults.Departments))
	for _, d := range defaults.Departments {
		codeByName[d.Name] = d.Code
	}

	taken := make(map[string]bool)
	for _, d := range team.Departments {
		if d.Code != "" {
			taken[d.Code] = true
		}
	}

	for i := range team.Departments {
		if team.Departments[i].Code != "" {
			continue
		}
		code := codeByName[team.Departments[i].Name]
		if code == "" || taken[code] {
			code = deriveDepartmentCode(team.Departments[i].Name, taken)
		}
		team.Departments[i].Code = code
		taken[code] = true
		changed = true
	}

	// Departments added to the directory after initial deployment.
	existing := make(map[string]bool, len(team.Departments))
	for _, d := range team.Departments {
		existing[d.Name] = true
	}
	for _, d := range defaults.Departments {
		if !existing[d.Name] && !taken[d.Code] {
			team.Departments = append(team.Departments, d)
			taken[d.Code] = true
			changed = true
		}
	}

	return changed
}

// deriveDepartmentCode builds a stable code for a department name that has
// no canonical code: the first three letters upper-cased, suffixed with a
// digit on collision.
func deriveDepartmentCode(name string, taken map[string]bool) string {
	var b strings.Builder
	for _, r := range name {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(unicode.ToUpper(r))
		}
		if b.Len() >= 3 {
			break
		}
	}
	base := b.String()
	if base == "" {
		base = "DEP"
	}

	code := base
	for n := 2; taken[code]; n++ {
		code = base + string(rune('0'+n%10))
	}
	return code
}

// seedExampleRestaurant adds one example restaurant and review the first
// time no restaurant has valid coordinates. The review's author is a
// non-existent user on purpose; the aggregator renders it under the
// "Other" department with an "Unknown" author.
func seedExampleRestaurant(ds *models.Dataset) bool {
	for i := range ds.Restaurants {
		if ds.Restaurants[i].HasValidCoordinates() {
			return false
		}
	}
	if len(ds.Teams) == 0 {
		return false
	}

	teamID := ds.Teams[0].ID
	if t := ds.TeamByID(DefaultTeams()[0].ID); t != nil {
		teamID = t.ID
	}

	now := time.Now().UTC()
	ds.Restaurants = append(ds.Restaurants, models.Restaurant{
		ID:          seedRestaurantID,
		TeamID:      teamID,
		Name:        "Kimchi House",
		Address:     "12 Example Street",
		Lat:         37.5,
		Lng:         127.0,
		Category:    "Korean",
		Description: "Example entry added on first start. Delete it once real spots are in.",
		CreatedBy:   "seed",
		CreatedAt:   now,
	})
	ds.Reviews = append(ds.Reviews, models.Review{
		ID:           seedReviewID,
		RestaurantID: seedRestaurantID,
		UserID:       "seed",
		Rating:       5,
		ShortComment: "Team favorite",
		Comment:      "Generous portions, quick service, walkable from the office.",
		CreatedAt:    now,
	})
	return true
}
