// Lunchmap - Team Restaurant Sharing and Geographic Rating
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/lunchmap

package auth

import (
	"errors"
	"testing"
	"time"
)

const testSecret = "0123456789abcdef0123456789abcdef"

func TestJWTManager_RoundTrip(t *testing.T) {
	m, err := NewJWTManager(testSecret, time.Hour)
	if err != nil {
		t.Fatalf("NewJWTManager: %v", err)
	}

	token, err := m.Generate("u1", "team-default")
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	claims, err := m.Verify(token)
	if err != nil {
		t.Fatalf("Verify: %v", err)
	}
	if claims.UserID != "u1" || claims.TeamID != "team-default" {
		t.Errorf("claims = %+v", claims)
	}
}

func TestJWTManager_RejectsShortSecret(t *testing.T) {
	if _, err := NewJWTManager("too short", time.Hour); err == nil {
		t.Error("expected error for short secret")
	}
}

func TestJWTManager_RejectsTampering(t *testing.T) {
	m, _ := NewJWTManager(testSecret, time.Hour)
	token, _ := m.Generate("u1", "team-default")

	tampered := token[:len(token)-2] + "xx"
	if _, err := m.Verify(tampered); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("tampered token = %v, want ErrInvalidToken", err)
	}
}

func TestJWTManager_RejectsWrongKey(t *testing.T) {
	m1, _ := NewJWTManager(testSecret, time.Hour)
	m2, _ := NewJWTManager("fedcba9876543210fedcba9876543210", time.Hour)

	token, _ := m1.Generate("u1", "team-default")
	if _, err := m2.Verify(token); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("cross-key token = %v, want ErrInvalidToken", err)
	}
}

func TestJWTManager_RejectsExpired(t *testing.T) {
	m, _ := NewJWTManager(testSecret, time.Nanosecond)
	token, _ := m.Generate("u1", "team-default")

	time.Sleep(10 * time.Millisecond)
	if _, err := m.Verify(token); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("expired token = %v, want ErrInvalidToken", err)
	}
}

func TestJWTManager_RejectsGarbage(t *testing.T) {
	m, _ := NewJWTManager(testSecret, time.Hour)
	for _, token := range []string{"", "not.a.jwt", "a.b"} {
		if _, err := m.Verify(token); !errors.Is(err, ErrInvalidToken) {
			t.Errorf("Verify(%q) = %v, want ErrInvalidToken", token, err)
		}
	}
}
