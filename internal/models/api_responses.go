// Lunchmap - Team Restaurant Sharing and Geographic Rating
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/lunchmap

package models

import "time"

// APIResponse is the standardized wrapper used by every HTTP endpoint.
//
// Status is "success" or "error". Data carries the payload on success;
// Error is populated only on failure.
//
// Example error response:
//
//	{
//	  "status": "error",
//	  "error": {
//	    "code": "VALIDATION_ERROR",
//	    "message": "rating must be between 1 and 5",
//	    "details": {"fields": [{"field": "Rating", "tag": "gte"}]}
//	  },
//	  "metadata": {"timestamp": "2026-03-02T12:00:00Z"}
//	}
type APIResponse struct {
	Status   string      `json:"status"`
	Data     interface{} `json:"data"`
	Metadata Metadata    `json:"metadata"`
	Error    *APIError   `json:"error,omitempty"`
}

// Metadata is per-response metadata for observability.
type Metadata struct {
	Timestamp time.Time `json:"timestamp"`
}

// APIError carries structured error details.
//
// Error codes used by Lunchmap:
//   - VALIDATION_ERROR: invalid input
//   - UNAUTHORIZED: missing or invalid token
//   - INVALID_CREDENTIALS: login failure
//   - SESSION_EXPIRED: token valid but account gone
//   - FORBIDDEN: authenticated but not permitted
//   - NOT_FOUND: resource missing or outside the caller's team
//   - CONFLICT: username already taken
//   - RATE_LIMITED: too many requests
//   - STORAGE_UNAVAILABLE: dataset cannot be read or written
//   - INTERNAL_ERROR: anything else
type APIError struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}
