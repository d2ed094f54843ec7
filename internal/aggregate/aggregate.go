// Lunchmap - Team Restaurant Sharing and Geographic Rating
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/lunchmap

// Package aggregate computes response-ready restaurant summaries: overall
// rating, per-department buckets, and the latest review, all derived from
// the live collections without side effects.
package aggregate

import (
	"math"

	"github.com/tomtom215/lunchmap/internal/models"
)

// Summarize builds the public representation of a restaurant from the full
// review and user collections. Deterministic given the same inputs; the
// caller's slices are never modified.
//
// Reviews are bucketed by the author's department; a review whose author
// cannot be resolved lands in the "Other" bucket with an "Unknown" author
// name. "Most recent" compares creation timestamps; on an exact tie the
// review encountered later in the slice wins (slice order is the store's
// insertion order, so the result is stable).
func Summarize(restaurant models.Restaurant, reviews []models.Review, users []models.User) models.RestaurantSummary {
	summary := models.RestaurantSummary{
		Restaurant:  restaurant,
		Departments: map[string]models.DepartmentStats{},
	}

	userIdx := make(map[string]*models.User, len(users))
	for i := range users {
		userIdx[users[i].ID] = &users[i]
	}

	ratingSums := map[string]int{}
	var (
		total  int
		latest *models.Review
	)

	for i := range reviews {
		review := &reviews[i]
		if review.RestaurantID != restaurant.ID {
			continue
		}

		summary.ReviewCount++
		total += review.Rating
		if latest == nil || !latest.CreatedAt.After(review.CreatedAt) {
			latest = review
		}

		author := userIdx[review.UserID]
		department := models.DepartmentOther
		if author != nil && author.Department != "" {
			department = author.Department
		}

		bucket, ok := summary.Departments[department]
		if !ok {
			bucket = models.DepartmentStats{Department: department}
		}
		bucket.ReviewCount++
		ratingSums[department] += review.Rating
		if bucket.LatestReview == nil || !bucket.LatestReview.CreatedAt.After(review.CreatedAt) {
			bucket.LatestReview = highlight(review, author, false)
		}
		summary.Departments[department] = bucket
	}

	for department, bucket := range summary.Departments {
		bucket.AverageRating = round2(float64(ratingSums[department]) / float64(bucket.ReviewCount))
		summary.Departments[department] = bucket
	}

	if summary.ReviewCount > 0 {
		summary.AverageRating = round2(float64(total) / float64(summary.ReviewCount))
		summary.LatestReview = highlight(latest, userIdx[latest.UserID], true)
	}

	return summary
}

// SummarizeAll summarizes every restaurant in the slice against the same
// review and user collections.
func SummarizeAll(restaurants []models.Restaurant, reviews []models.Review, users []models.User) []models.RestaurantSummary {
	out := make([]models.RestaurantSummary, len(restaurants))
	for i := range restaurants {
		out[i] = Summarize(restaurants[i], reviews, users)
	}
	return out
}

// EnrichReview projects a review into its detail form with the author's
// display name and department resolved, substituting the placeholders when
// the author is gone.
func EnrichReview(review models.Review, author *models.User) models.ReviewDetail {
	detail := models.ReviewDetail{
		ID:           review.ID,
		Rating:       review.Rating,
		ShortComment: review.ShortComment,
		Comment:      review.Comment,
		CreatedAt:    review.CreatedAt,
		AuthorID:     review.UserID,
		AuthorName:   models.AuthorUnknown,
		Department:   models.DepartmentOther,
	}
	if author != nil {
		detail.AuthorName = author.DisplayName
		if author.Department != "" {
			detail.Department = author.Department
		}
	}
	return detail
}

// highlight builds the condensed review view. The top-level latest review
// carries the author's department; department buckets do not repeat it.
func highlight(review *models.Review, author *models.User, withDepartment bool) *models.ReviewHighlight {
	h := &models.ReviewHighlight{
		ID:           review.ID,
		Rating:       review.Rating,
		ShortComment: review.ShortComment,
		Comment:      review.Comment,
		CreatedAt:    review.CreatedAt,
		AuthorName:   models.AuthorUnknown,
	}
	if author != nil {
		h.AuthorName = author.DisplayName
	}
	if withDepartment {
		h.Department = models.DepartmentOther
		if author != nil && author.Department != "" {
			h.Department = author.Department
		}
	}
	return h
}

// round2 rounds to two decimal places, the precision served to clients.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
