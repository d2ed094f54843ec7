// Lunchmap - Team Restaurant Sharing and Geographic Rating
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/lunchmap

package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/tomtom215/lunchmap/internal/service"
)

// ListRestaurants handles GET /api/v1/restaurants.
func (h *Handler) ListRestaurants(w http.ResponseWriter, r *http.Request) {
	requester := h.requester(w, r)
	if requester == nil {
		return
	}

	summaries, err := h.svc.ListRestaurants(r.Context(), requester)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondSuccess(w, http.StatusOK, map[string]interface{}{"restaurants": summaries})
}

// CreateRestaurant handles POST /api/v1/restaurants.
func (h *Handler) CreateRestaurant(w http.ResponseWriter, r *http.Request) {
	requester := h.requester(w, r)
	if requester == nil {
		return
	}

	var input service.CreateRestaurantInput
	if !decodeBody(w, r, &input) {
		return
	}

	summary, err := h.svc.CreateRestaurant(r.Context(), requester, input)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondSuccess(w, http.StatusCreated, map[string]interface{}{"restaurant": summary})
}

// GetRestaurant handles GET /api/v1/restaurants/{id}.
func (h *Handler) GetRestaurant(w http.ResponseWriter, r *http.Request) {
	requester := h.requester(w, r)
	if requester == nil {
		return
	}

	detail, err := h.svc.GetRestaurantDetail(r.Context(), requester, chi.URLParam(r, "id"))
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondSuccess(w, http.StatusOK, detail)
}

// DeleteRestaurant handles DELETE /api/v1/restaurants/{id}.
func (h *Handler) DeleteRestaurant(w http.ResponseWriter, r *http.Request) {
	requester := h.requester(w, r)
	if requester == nil {
		return
	}

	if err := h.svc.DeleteRestaurant(r.Context(), requester, chi.URLParam(r, "id")); err != nil {
		respondServiceError(w, err)
		return
	}

	respondSuccess(w, http.StatusOK, map[string]string{"message": "Restaurant deleted"})
}

// AddReview handles POST /api/v1/restaurants/{id}/reviews.
func (h *Handler) AddReview(w http.ResponseWriter, r *http.Request) {
	requester := h.requester(w, r)
	if requester == nil {
		return
	}

	var input service.AddReviewInput
	if !decodeBody(w, r, &input) {
		return
	}

	result, err := h.svc.AddReview(r.Context(), requester, chi.URLParam(r, "id"), input)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondSuccess(w, http.StatusCreated, result)
}

// DeleteReview handles DELETE /api/v1/restaurants/{id}/reviews/{reviewId}.
func (h *Handler) DeleteReview(w http.ResponseWriter, r *http.Request) {
	requester := h.requester(w, r)
	if requester == nil {
		return
	}

	err := h.svc.DeleteReview(r.Context(), requester,
		chi.URLParam(r, "id"), chi.URLParam(r, "reviewId"))
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondSuccess(w, http.StatusOK, map[string]string{"message": "Review deleted"})
}
