// Lunchmap - Team Restaurant Sharing and Geographic Rating
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/lunchmap

package api

import (
	"net/http"

	"github.com/tomtom215/lunchmap/internal/auth"
	"github.com/tomtom215/lunchmap/internal/service"
)

// Handler holds the request handlers' dependencies.
type Handler struct {
	svc  *service.Service
	auth *auth.Authenticator
}

// NewHandler creates the handler set over a service and authenticator.
func NewHandler(svc *service.Service, authenticator *auth.Authenticator) *Handler {
	return &Handler{svc: svc, auth: authenticator}
}

// requester returns the authenticated caller. The auth middleware
// guarantees presence on protected routes; a nil result on one is a
// routing bug, answered as unauthorized rather than a panic.
func (h *Handler) requester(w http.ResponseWriter, r *http.Request) *auth.Requester {
	requester := auth.RequesterFromContext(r.Context())
	if requester == nil {
		respondError(w, http.StatusUnauthorized, "UNAUTHORIZED", "Authentication required", nil)
	}
	return requester
}
