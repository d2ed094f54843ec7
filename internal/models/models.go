// Lunchmap - Team Restaurant Sharing and Geographic Rating
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/lunchmap

// Package models defines the persisted entities and response shapes for
// Lunchmap: teams, users, restaurants, reviews, and the aggregated summary
// views served by the API.
//
// JSON field names follow the wire format consumed by the frontend
// (camelCase: teamId, shortComment, createdAt). The Dataset type mirrors the
// single persisted document exactly; all four collections are owned by the
// store and treated as the canonical copies.
package models

import (
	"strings"
	"time"
)

// Placeholders substituted by the aggregator when a review's author cannot
// be resolved against the user collection.
const (
	// DepartmentOther is the department bucket for reviews with no
	// resolvable author.
	DepartmentOther = "Other"

	// AuthorUnknown is the display name used when a review's author cannot
	// be resolved.
	AuthorUnknown = "Unknown"
)

// Rating bounds for reviews. Only whole-star ratings are persisted.
const (
	MinRating = 1
	MaxRating = 5
)

// Comment length limits. Longer input is truncated, not rejected.
const (
	MaxShortCommentLen = 120
	MaxCommentLen      = 2000
)

// Department is a named department within a team, joined by a short code.
type Department struct {
	Name string `json:"name"`
	Code string `json:"code"`
}

// Team is the tenant boundary. Users, restaurants, and reviews are
// partitioned by team ID; teams are created at seed time and immutable at
// runtime.
type Team struct {
	ID          string       `json:"id"`
	Name        string       `json:"name"`
	Code        string       `json:"code"` // join code, not exposed publicly
	Description string       `json:"description,omitempty"`
	Departments []Department `json:"departments"`
}

// PublicTeam is the directory view of a team with the join code omitted.
type PublicTeam struct {
	ID          string       `json:"id"`
	Name        string       `json:"name"`
	Description string       `json:"description,omitempty"`
	Departments []Department `json:"departments"`
}

// Public returns the team's directory representation.
func (t *Team) Public() PublicTeam {
	return PublicTeam{
		ID:          t.ID,
		Name:        t.Name,
		Description: t.Description,
		Departments: t.Departments,
	}
}

// Credential is the stored password material for a user. The hash is a
// bcrypt hash (salt and cost are encoded within it). Opaque to everything
// except the auth package.
type Credential struct {
	Hash string `json:"hash"`
}

// User is a registered team member. Users are created at registration and
// never mutated or deleted afterwards.
type User struct {
	ID             string      `json:"id"`
	Username       string      `json:"username"` // unique, lowercase
	DisplayName    string      `json:"displayName"`
	Department     string      `json:"department"`
	DepartmentCode string      `json:"departmentCode,omitempty"`
	TeamID         string      `json:"teamId"`
	CreatedAt      time.Time   `json:"createdAt"`
	Credential     *Credential `json:"password,omitempty"`
}

// Public returns a copy of the user with credential material stripped.
// Every API response carrying a user goes through this.
func (u User) Public() User {
	u.Credential = nil
	return u
}

// Restaurant is a shared lunch spot. Visible only to users sharing its team
// ID; deletable only by its creator, which cascades to its reviews.
type Restaurant struct {
	ID          string    `json:"id"`
	TeamID      string    `json:"teamId"`
	Name        string    `json:"name"`
	Address     string    `json:"address,omitempty"`
	Lat         float64   `json:"lat"`
	Lng         float64   `json:"lng"`
	Category    string    `json:"category,omitempty"`
	Description string    `json:"description,omitempty"`
	CreatedBy   string    `json:"createdBy"`
	CreatedAt   time.Time `json:"createdAt"`
}

// HasValidCoordinates reports whether the restaurant carries plausible map
// coordinates. (0,0) is treated as unset; it is the zero value written by
// broken clients, not a real lunch spot in the Gulf of Guinea.
func (r *Restaurant) HasValidCoordinates() bool {
	if r.Lat == 0 && r.Lng == 0 {
		return false
	}
	return r.Lat >= -90 && r.Lat <= 90 && r.Lng >= -180 && r.Lng <= 180
}

// Review is a 1-5 star rating of a restaurant by a team member.
// Deletable only by its author.
type Review struct {
	ID           string    `json:"id"`
	RestaurantID string    `json:"restaurantId"`
	UserID       string    `json:"userId"`
	Rating       int       `json:"rating"`
	ShortComment string    `json:"shortComment,omitempty"`
	Comment      string    `json:"comment,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
}

// Dataset is the whole persisted document: four named collections.
// The store owns the canonical copy; services mutate it in memory and hand
// it back to the store for persistence.
type Dataset struct {
	Teams       []Team       `json:"teams"`
	Users       []User       `json:"users"`
	Restaurants []Restaurant `json:"restaurants"`
	Reviews     []Review     `json:"reviews"`
}

// TeamByID returns the team with the given ID, or nil.
func (d *Dataset) TeamByID(id string) *Team {
	for i := range d.Teams {
		if d.Teams[i].ID == id {
			return &d.Teams[i]
		}
	}
	return nil
}

// TeamByCode returns the team with the given join code, or nil.
func (d *Dataset) TeamByCode(code string) *Team {
	for i := range d.Teams {
		if d.Teams[i].Code == code {
			return &d.Teams[i]
		}
	}
	return nil
}

// FindDepartmentByCode resolves a department code against the team
// directory. Teams are scanned in stored order and the first match wins;
// the seeder never issues duplicate codes, so resolution is deterministic.
func (d *Dataset) FindDepartmentByCode(code string) (*Team, *Department) {
	for i := range d.Teams {
		for j := range d.Teams[i].Departments {
			if d.Teams[i].Departments[j].Code == code {
				return &d.Teams[i], &d.Teams[i].Departments[j]
			}
		}
	}
	return nil, nil
}

// UserByID returns the user with the given ID, or nil.
func (d *Dataset) UserByID(id string) *User {
	for i := range d.Users {
		if d.Users[i].ID == id {
			return &d.Users[i]
		}
	}
	return nil
}

// UserByUsername returns the user with the given username, compared
// case-insensitively, or nil. Usernames are stored lowercase but lookups
// normalize anyway so a stray mixed-case record cannot hide.
func (d *Dataset) UserByUsername(username string) *User {
	username = strings.ToLower(strings.TrimSpace(username))
	for i := range d.Users {
		if strings.ToLower(d.Users[i].Username) == username {
			return &d.Users[i]
		}
	}
	return nil
}

// UsersByID builds an ID-keyed index of the user collection.
func (d *Dataset) UsersByID() map[string]*User {
	idx := make(map[string]*User, len(d.Users))
	for i := range d.Users {
		idx[d.Users[i].ID] = &d.Users[i]
	}
	return idx
}

// RestaurantByID returns the restaurant with the given ID scoped to a team,
// or nil. Team isolation is enforced here: a restaurant outside the team is
// indistinguishable from a missing one.
func (d *Dataset) RestaurantByID(teamID, id string) *Restaurant {
	for i := range d.Restaurants {
		if d.Restaurants[i].ID == id && d.Restaurants[i].TeamID == teamID {
			return &d.Restaurants[i]
		}
	}
	return nil
}

// RestaurantsByTeam returns all restaurants belonging to a team, in stored
// (insertion) order.
func (d *Dataset) RestaurantsByTeam(teamID string) []Restaurant {
	var out []Restaurant
	for i := range d.Restaurants {
		if d.Restaurants[i].TeamID == teamID {
			out = append(out, d.Restaurants[i])
		}
	}
	return out
}

// ReviewsByRestaurant returns all reviews referencing a restaurant, in
// stored (insertion) order.
func (d *Dataset) ReviewsByRestaurant(restaurantID string) []Review {
	var out []Review
	for i := range d.Reviews {
		if d.Reviews[i].RestaurantID == restaurantID {
			out = append(out, d.Reviews[i])
		}
	}
	return out
}
