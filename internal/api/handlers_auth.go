// Lunchmap - Team Restaurant Sharing and Geographic Rating
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/lunchmap

package api

import (
	"errors"
	"net/http"
	"strings"

	"github.com/tomtom215/lunchmap/internal/metrics"
	"github.com/tomtom215/lunchmap/internal/service"
)

// Register handles POST /api/v1/auth/register.
func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	var input service.RegisterInput
	if !decodeBody(w, r, &input) {
		return
	}

	result, err := h.svc.Register(r.Context(), input)
	if err != nil {
		metrics.RecordAuthAttempt("register", false)
		respondServiceError(w, err)
		return
	}

	metrics.RecordAuthAttempt("register", true)
	respondSuccess(w, http.StatusCreated, result)
}

// Login handles POST /api/v1/auth/login.
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var input service.LoginInput
	if !decodeBody(w, r, &input) {
		return
	}

	result, err := h.svc.Login(r.Context(), input)
	if err != nil {
		metrics.RecordAuthAttempt("login", false)
		respondServiceError(w, err)
		return
	}

	metrics.RecordAuthAttempt("login", true)
	respondSuccess(w, http.StatusOK, result)
}

// Logout handles POST /api/v1/auth/logout. Always succeeds; revoking an
// already dead token is not an error.
func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	header := r.Header.Get("Authorization")
	if token, ok := strings.CutPrefix(header, "Bearer "); ok {
		if err := h.svc.Logout(r.Context(), token); err != nil {
			respondServiceError(w, err)
			return
		}
	}
	respondSuccess(w, http.StatusOK, map[string]string{"message": "Logged out"})
}

// Me handles GET /api/v1/auth/me. A token whose user has vanished from
// the dataset reads as an expired session, not a 404.
func (h *Handler) Me(w http.ResponseWriter, r *http.Request) {
	requester := h.requester(w, r)
	if requester == nil {
		return
	}

	user, err := h.svc.CurrentUser(r.Context(), requester)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			respondError(w, http.StatusUnauthorized, "SESSION_EXPIRED", "Session is no longer valid", nil)
			return
		}
		respondServiceError(w, err)
		return
	}

	respondSuccess(w, http.StatusOK, map[string]interface{}{"user": user})
}
