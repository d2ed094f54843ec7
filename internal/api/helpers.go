// Lunchmap - Team Restaurant Sharing and Geographic Rating
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/lunchmap

package api

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/goccy/go-json"

	"github.com/tomtom215/lunchmap/internal/auth"
	"github.com/tomtom215/lunchmap/internal/logging"
	"github.com/tomtom215/lunchmap/internal/models"
	"github.com/tomtom215/lunchmap/internal/service"
	"github.com/tomtom215/lunchmap/internal/store"
	"github.com/tomtom215/lunchmap/internal/validation"
)

// maxRequestBody caps request bodies at 64KB. The largest legitimate
// payload is a review with a 2000-rune comment.
const maxRequestBody = 64 << 10

// sanitizeLogValue removes control characters from strings so attacker
// input cannot forge log entries.
func sanitizeLogValue(s string) string {
	var result strings.Builder
	result.Grow(len(s))
	for _, r := range s {
		if r < 0x20 || r == 0x7F {
			result.WriteString(fmt.Sprintf("\\x%02x", r))
		} else {
			result.WriteRune(r)
		}
	}
	return result.String()
}

// respondJSON sends a JSON response with proper headers.
func respondJSON(w http.ResponseWriter, status int, response *models.APIResponse) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", "no-store")

	data, err := json.Marshal(response)
	if err != nil {
		logging.Error().Err(err).Msg("Failed to marshal JSON response")
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.WriteHeader(status)
	if _, err := w.Write(data); err != nil {
		logging.Error().Err(err).Msg("Failed to write JSON response")
	}
}

// respondSuccess wraps a payload in the success envelope.
func respondSuccess(w http.ResponseWriter, status int, data interface{}) {
	respondJSON(w, status, &models.APIResponse{
		Status:   "success",
		Data:     data,
		Metadata: models.Metadata{Timestamp: time.Now().UTC()},
	})
}

// respondError sends an error response.
func respondError(w http.ResponseWriter, status int, code, message string, details map[string]interface{}) {
	respondJSON(w, status, &models.APIResponse{
		Status:   "error",
		Metadata: models.Metadata{Timestamp: time.Now().UTC()},
		Error: &models.APIError{
			Code:    code,
			Message: message,
			Details: details,
		},
	})
}

// respondServiceError maps service-layer errors onto the HTTP error
// taxonomy. Unrecognized errors become opaque 500s; the detail stays in
// the log, not the response.
func respondServiceError(w http.ResponseWriter, err error) {
	var verr *validation.RequestValidationError
	switch {
	case errors.As(err, &verr):
		fields := make([]map[string]interface{}, len(verr.Fields()))
		for i, fe := range verr.Fields() {
			fields[i] = map[string]interface{}{"field": fe.Field, "tag": fe.Tag}
		}
		respondError(w, http.StatusBadRequest, "VALIDATION_ERROR", verr.Error(),
			map[string]interface{}{"fields": fields})

	case errors.Is(err, service.ErrNotFound):
		respondError(w, http.StatusNotFound, "NOT_FOUND", "Resource not found", nil)

	case errors.Is(err, service.ErrForbidden):
		respondError(w, http.StatusForbidden, "FORBIDDEN", "You do not have permission to do that", nil)

	case errors.Is(err, service.ErrUsernameTaken):
		respondError(w, http.StatusConflict, "CONFLICT", "Username is already taken", nil)

	case errors.Is(err, auth.ErrInvalidCredentials):
		respondError(w, http.StatusUnauthorized, "INVALID_CREDENTIALS", "Invalid username or password", nil)

	case errors.Is(err, store.ErrUnavailable):
		logging.Error().Err(err).Msg("Storage unavailable")
		respondError(w, http.StatusServiceUnavailable, "STORAGE_UNAVAILABLE", "Data store is temporarily unavailable", nil)

	default:
		logging.Error().Str("error", sanitizeLogValue(err.Error())).Msg("Unhandled API error")
		respondError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
	}
}

// decodeBody parses a JSON request body into dst, rejecting oversized
// and malformed payloads.
func decodeBody(w http.ResponseWriter, r *http.Request, dst interface{}) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBody)

	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		respondError(w, http.StatusBadRequest, "VALIDATION_ERROR", "Request body is not valid JSON", nil)
		return false
	}
	return true
}
