// Lunchmap - Team Restaurant Sharing and Geographic Rating
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/lunchmap

package models

import "time"

// ReviewHighlight is the condensed review embedded in summaries: the latest
// review overall and per department bucket.
type ReviewHighlight struct {
	ID           string    `json:"id,omitempty"`
	Rating       int       `json:"rating"`
	ShortComment string    `json:"shortComment,omitempty"`
	Comment      string    `json:"comment,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
	Department   string    `json:"department,omitempty"`
	AuthorName   string    `json:"authorName"`
}

// DepartmentStats is the per-department aggregation bucket within a summary.
type DepartmentStats struct {
	Department    string           `json:"department"`
	ReviewCount   int              `json:"reviewCount"`
	AverageRating float64          `json:"averageRating"`
	LatestReview  *ReviewHighlight `json:"latestReview"`
}

// RestaurantSummary is the response-shaped view of a restaurant: every
// original restaurant field plus the computed rating aggregates. Callers
// treat it as the restaurant's public representation.
type RestaurantSummary struct {
	Restaurant

	ReviewCount   int                        `json:"reviewCount"`
	AverageRating float64                    `json:"averageRating"`
	Departments   map[string]DepartmentStats `json:"departments"`
	LatestReview  *ReviewHighlight           `json:"latestReview"`
}

// ReviewDetail is a review enriched with author display name and department,
// as returned by the restaurant detail and add-review operations.
type ReviewDetail struct {
	ID           string    `json:"id"`
	Rating       int       `json:"rating"`
	ShortComment string    `json:"shortComment,omitempty"`
	Comment      string    `json:"comment,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
	AuthorID     string    `json:"authorId"`
	AuthorName   string    `json:"authorName"`
	Department   string    `json:"department"`
}

// RestaurantDetail is the full detail payload: the summary plus all reviews
// ordered most-recent-first.
type RestaurantDetail struct {
	Restaurant RestaurantSummary `json:"restaurant"`
	Reviews    []ReviewDetail    `json:"reviews"`
}

// HealthStatus is the health endpoint payload.
type HealthStatus struct {
	Status        string  `json:"status"` // healthy or degraded
	Version       string  `json:"version"`
	StoreWritable bool    `json:"storeWritable"`
	Uptime        float64 `json:"uptime"` // seconds
}
