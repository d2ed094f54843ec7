// Lunchmap - Team Restaurant Sharing and Geographic Rating
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/lunchmap

package service

import (
	"context"
	"sort"
	"strings"

	"github.com/tomtom215/lunchmap/internal/aggregate"
	"github.com/tomtom215/lunchmap/internal/auth"
	"github.com/tomtom215/lunchmap/internal/logging"
	"github.com/tomtom215/lunchmap/internal/models"
	"github.com/tomtom215/lunchmap/internal/validation"
)

// CreateRestaurantInput is the payload for sharing a new lunch spot.
type CreateRestaurantInput struct {
	Name        string  `json:"name" validate:"required,max=200"`
	Address     string  `json:"address" validate:"max=500"`
	Lat         float64 `json:"lat" validate:"latitude"`
	Lng         float64 `json:"lng" validate:"longitude"`
	Category    string  `json:"category" validate:"max=100"`
	Description string  `json:"description" validate:"max=2000"`
}

// AddReviewInput is the payload for rating a restaurant. Comments over
// the length limits are truncated, not rejected.
type AddReviewInput struct {
	Rating       int    `json:"rating" validate:"gte=1,lte=5"`
	ShortComment string `json:"shortComment"`
	Comment      string `json:"comment"`
}

// AddReviewResult is the add-review response: the stored review enriched
// with author info, plus the restaurant's recomputed summary.
type AddReviewResult struct {
	Review     models.ReviewDetail      `json:"review"`
	Restaurant models.RestaurantSummary `json:"restaurant"`
}

// ListRestaurants returns every restaurant in the caller's team as
// summaries, in stored (insertion) order.
func (s *Service) ListRestaurants(ctx context.Context, requester *auth.Requester) ([]models.RestaurantSummary, error) {
	ds, err := s.store.Load(ctx)
	if err != nil {
		return nil, err
	}

	restaurants := ds.RestaurantsByTeam(requester.TeamID)
	summaries := aggregate.SummarizeAll(restaurants, ds.Reviews, ds.Users)
	if summaries == nil {
		summaries = []models.RestaurantSummary{}
	}
	return summaries, nil
}

// CreateRestaurant validates and stores a new restaurant owned by the
// caller, returning its summary (zero reviews).
func (s *Service) CreateRestaurant(ctx context.Context, requester *auth.Requester, input CreateRestaurantInput) (*models.RestaurantSummary, error) {
	// Trim before validating so a whitespace-only name fails required.
	input.Name = strings.TrimSpace(input.Name)
	if verr := validation.ValidateStruct(&input); verr != nil {
		return nil, verr
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	ds, err := s.store.Load(ctx)
	if err != nil {
		return nil, err
	}

	restaurant := models.Restaurant{
		ID:          s.newID(),
		TeamID:      requester.TeamID,
		Name:        input.Name,
		Address:     strings.TrimSpace(input.Address),
		Lat:         input.Lat,
		Lng:         input.Lng,
		Category:    strings.TrimSpace(input.Category),
		Description: strings.TrimSpace(input.Description),
		CreatedBy:   requester.UserID,
		CreatedAt:   s.now(),
	}
	ds.Restaurants = append(ds.Restaurants, restaurant)

	if err := s.store.Save(ctx, ds); err != nil {
		return nil, err
	}

	logging.Ctx(ctx).Info().
		Str("restaurant_id", restaurant.ID).
		Str("team_id", restaurant.TeamID).
		Msg("Created restaurant")

	summary := aggregate.Summarize(restaurant, ds.Reviews, ds.Users)
	return &summary, nil
}

// GetRestaurantDetail returns a restaurant's summary plus all of its
// reviews enriched with author info, newest first. Restaurants outside
// the caller's team surface as ErrNotFound.
func (s *Service) GetRestaurantDetail(ctx context.Context, requester *auth.Requester, restaurantID string) (*models.RestaurantDetail, error) {
	ds, err := s.store.Load(ctx)
	if err != nil {
		return nil, err
	}

	restaurant := ds.RestaurantByID(requester.TeamID, restaurantID)
	if restaurant == nil {
		return nil, ErrNotFound
	}

	userIdx := ds.UsersByID()
	reviews := ds.ReviewsByRestaurant(restaurantID)
	details := make([]models.ReviewDetail, len(reviews))
	for i, review := range reviews {
		details[i] = aggregate.EnrichReview(review, userIdx[review.UserID])
	}
	sort.SliceStable(details, func(i, j int) bool {
		return details[i].CreatedAt.After(details[j].CreatedAt)
	})

	return &models.RestaurantDetail{
		Restaurant: aggregate.Summarize(*restaurant, ds.Reviews, ds.Users),
		Reviews:    details,
	}, nil
}

// DeleteRestaurant removes a restaurant and every review attached to it.
// Only the creator may delete; other team members get ErrForbidden.
func (s *Service) DeleteRestaurant(ctx context.Context, requester *auth.Requester, restaurantID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	ds, err := s.store.Load(ctx)
	if err != nil {
		return err
	}

	restaurant := ds.RestaurantByID(requester.TeamID, restaurantID)
	if restaurant == nil {
		return ErrNotFound
	}
	if restaurant.CreatedBy != requester.UserID {
		return ErrForbidden
	}

	kept := ds.Restaurants[:0]
	for _, r := range ds.Restaurants {
		if r.ID != restaurantID {
			kept = append(kept, r)
		}
	}
	ds.Restaurants = kept

	removedReviews := 0
	keptReviews := ds.Reviews[:0]
	for _, review := range ds.Reviews {
		if review.RestaurantID == restaurantID {
			removedReviews++
			continue
		}
		keptReviews = append(keptReviews, review)
	}
	ds.Reviews = keptReviews

	if err := s.store.Save(ctx, ds); err != nil {
		return err
	}

	logging.Ctx(ctx).Info().
		Str("restaurant_id", restaurantID).
		Int("cascaded_reviews", removedReviews).
		Msg("Deleted restaurant")

	return nil
}

// AddReview validates and stores a review of a restaurant in the
// caller's team, returning the enriched review and the recomputed
// summary.
func (s *Service) AddReview(ctx context.Context, requester *auth.Requester, restaurantID string, input AddReviewInput) (*AddReviewResult, error) {
	if verr := validation.ValidateStruct(&input); verr != nil {
		return nil, verr
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	ds, err := s.store.Load(ctx)
	if err != nil {
		return nil, err
	}

	restaurant := ds.RestaurantByID(requester.TeamID, restaurantID)
	if restaurant == nil {
		return nil, ErrNotFound
	}

	review := models.Review{
		ID:           s.newID(),
		RestaurantID: restaurantID,
		UserID:       requester.UserID,
		Rating:       input.Rating,
		ShortComment: truncateRunes(strings.TrimSpace(input.ShortComment), models.MaxShortCommentLen),
		Comment:      truncateRunes(strings.TrimSpace(input.Comment), models.MaxCommentLen),
		CreatedAt:    s.now(),
	}
	ds.Reviews = append(ds.Reviews, review)

	if err := s.store.Save(ctx, ds); err != nil {
		return nil, err
	}

	logging.Ctx(ctx).Info().
		Str("restaurant_id", restaurantID).
		Str("review_id", review.ID).
		Int("rating", review.Rating).
		Msg("Added review")

	return &AddReviewResult{
		Review:     aggregate.EnrichReview(review, ds.UserByID(requester.UserID)),
		Restaurant: aggregate.Summarize(*restaurant, ds.Reviews, ds.Users),
	}, nil
}

// DeleteReview removes a review. Only the author may delete; the
// restaurant must be visible to the caller's team.
func (s *Service) DeleteReview(ctx context.Context, requester *auth.Requester, restaurantID, reviewID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	ds, err := s.store.Load(ctx)
	if err != nil {
		return err
	}

	if ds.RestaurantByID(requester.TeamID, restaurantID) == nil {
		return ErrNotFound
	}

	idx := -1
	for i := range ds.Reviews {
		if ds.Reviews[i].ID == reviewID && ds.Reviews[i].RestaurantID == restaurantID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return ErrNotFound
	}
	if ds.Reviews[idx].UserID != requester.UserID {
		return ErrForbidden
	}

	ds.Reviews = append(ds.Reviews[:idx], ds.Reviews[idx+1:]...)

	if err := s.store.Save(ctx, ds); err != nil {
		return err
	}

	logging.Ctx(ctx).Info().
		Str("review_id", reviewID).
		Str("restaurant_id", restaurantID).
		Msg("Deleted review")

	return nil
}

// truncateRunes clips a string to at most max runes, never splitting a
// multi-byte character.
func truncateRunes(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max])
}
