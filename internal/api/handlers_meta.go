// Lunchmap - Team Restaurant Sharing and Geographic Rating
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/lunchmap

package api

import "net/http"

// Teams handles GET /api/v1/meta/teams: the public team directory with
// join codes stripped. Unauthenticated; the registration form uses it.
func (h *Handler) Teams(w http.ResponseWriter, r *http.Request) {
	teams, err := h.svc.ListTeams(r.Context())
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondSuccess(w, http.StatusOK, map[string]interface{}{"teams": teams})
}

// Departments handles GET /api/v1/meta/departments: the deduplicated
// department list across all teams.
func (h *Handler) Departments(w http.ResponseWriter, r *http.Request) {
	departments, err := h.svc.ListDepartments(r.Context())
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondSuccess(w, http.StatusOK, map[string]interface{}{"departments": departments})
}

// Health handles GET /api/v1/health. Always 200; a degraded store shows
// in the payload, not the status code, so load balancers keep routing
// to the instance that can still explain itself.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	respondSuccess(w, http.StatusOK, h.svc.Health(r.Context()))
}

// HealthLive handles GET /api/v1/health/live: process liveness only.
func (h *Handler) HealthLive(w http.ResponseWriter, r *http.Request) {
	respondSuccess(w, http.StatusOK, map[string]string{"status": "alive"})
}

// HealthReady handles GET /api/v1/health/ready. Unlike the main health
// endpoint this answers 503 when the store is unreachable, so
// orchestrators hold traffic until the data file is readable again.
func (h *Handler) HealthReady(w http.ResponseWriter, r *http.Request) {
	status := h.svc.Health(r.Context())
	if status.Status != "healthy" {
		respondError(w, http.StatusServiceUnavailable, "STORAGE_UNAVAILABLE",
			"Dataset store is not ready", nil)
		return
	}
	respondSuccess(w, http.StatusOK, map[string]string{"status": "ready"})
}
