// Lunchmap - Team Restaurant Sharing and Geographic Rating
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/lunchmap

package service

import "errors"

// Sentinel errors returned by service operations. The HTTP layer maps
// these to status codes; validation failures surface as
// *validation.RequestValidationError and storage failures as
// store.ErrUnavailable, both passed through unwrapped.
var (
	// ErrNotFound covers both genuinely missing resources and resources
	// outside the caller's team. The two cases are deliberately
	// indistinguishable so team isolation leaks nothing.
	ErrNotFound = errors.New("resource not found")

	// ErrForbidden is returned when the caller is authenticated but not
	// permitted, e.g. deleting another member's restaurant.
	ErrForbidden = errors.New("operation not permitted")

	// ErrUsernameTaken is returned at registration when the username is
	// already in use, compared case-insensitively.
	ErrUsernameTaken = errors.New("username already taken")
)
