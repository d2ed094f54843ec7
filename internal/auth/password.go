// Lunchmap - Team Restaurant Sharing and Geographic Rating
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/lunchmap

// Package auth provides password hashing, session management, and the
// request authentication middleware. Tokens are opaque session IDs by
// default; an HS256 JWT mode is available for stateless deployments.
package auth

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// bcryptCost is the work factor for new password hashes. 12 keeps
// verification around 250ms on current hardware, slow enough to blunt
// offline guessing without making login sluggish.
const bcryptCost = 12

// Password length bounds enforced at registration. The maximum matches
// bcrypt's 72-byte input limit; GenerateFromPassword errors on anything
// longer, so the cap turns that into a clear validation failure instead.
const (
	MinPasswordLen = 8
	MaxPasswordLen = 72
)

// ErrInvalidCredentials is returned when a password does not match the
// stored hash. Callers must not distinguish it from an unknown username.
var ErrInvalidCredentials = errors.New("invalid credentials")

// HashPassword derives a bcrypt hash for storage.
func HashPassword(password string) (string, error) {
	if len(password) < MinPasswordLen {
		return "", fmt.Errorf("password must be at least %d characters", MinPasswordLen)
	}
	if len(password) > MaxPasswordLen {
		return "", fmt.Errorf("password must be at most %d characters", MaxPasswordLen)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hash), nil
}

// VerifyPassword checks a candidate password against a stored bcrypt hash.
// Returns ErrInvalidCredentials on mismatch.
func VerifyPassword(hash, password string) error {
	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)); err != nil {
		return ErrInvalidCredentials
	}
	return nil
}
