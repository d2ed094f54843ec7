// Lunchmap - Team Restaurant Sharing and Geographic Rating
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/lunchmap

package auth

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"sync"
	"time"
)

// DefaultSessionTTL is the lifetime of a session issued at login.
const DefaultSessionTTL = 12 * time.Hour

// Session store errors.
var (
	ErrSessionNotFound = errors.New("session not found")
	ErrSessionExpired  = errors.New("session expired")
)

// Session is an authenticated login. The ID doubles as the bearer token;
// UserID and TeamID are denormalized so request authentication never has
// to touch the dataset.
type Session struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	TeamID    string    `json:"teamId"`
	CreatedAt time.Time `json:"createdAt"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// IsExpired reports whether the session has passed its expiry.
func (s *Session) IsExpired() bool {
	return time.Now().After(s.ExpiresAt)
}

// NewSession creates a session for a user with a random 256-bit ID.
func NewSession(userID, teamID string, ttl time.Duration) (*Session, error) {
	id, err := generateSessionID()
	if err != nil {
		return nil, err
	}
	now := time.Now().UTC()
	return &Session{
		ID:        id,
		UserID:    userID,
		TeamID:    teamID,
		CreatedAt: now,
		ExpiresAt: now.Add(ttl),
	}, nil
}

// generateSessionID returns 32 bytes of crypto/rand entropy, hex encoded.
func generateSessionID() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("generate session ID: %w", err)
	}
	return hex.EncodeToString(b), nil
}

// SessionStore persists active sessions. Implementations must be safe for
// concurrent use.
type SessionStore interface {
	// Create stores a new session.
	Create(ctx context.Context, session *Session) error

	// Get retrieves a session by ID. Returns ErrSessionNotFound for an
	// unknown ID and ErrSessionExpired for one past its expiry.
	Get(ctx context.Context, id string) (*Session, error)

	// Delete removes a session. Deleting an unknown ID is not an error.
	Delete(ctx context.Context, id string) error

	// DeleteExpired removes all expired sessions and reports how many
	// were dropped. Called periodically by the maintenance sweeper.
	DeleteExpired(ctx context.Context) (int, error)

	// Close releases any underlying resources.
	Close() error
}

// MemorySessionStore keeps sessions in a map. Sessions do not survive a
// restart; the badger store exists for deployments that need them to.
type MemorySessionStore struct {
	mu       sync.RWMutex
	sessions map[string]*Session
}

// NewMemorySessionStore creates an empty in-memory session store.
func NewMemorySessionStore() *MemorySessionStore {
	return &MemorySessionStore{sessions: make(map[string]*Session)}
}

// Create stores the session keyed by its ID.
func (s *MemorySessionStore) Create(_ context.Context, session *Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	cp := *session
	s.sessions[session.ID] = &cp
	return nil
}

// Get returns a copy of the stored session.
func (s *MemorySessionStore) Get(_ context.Context, id string) (*Session, error) {
	s.mu.RLock()
	session, ok := s.sessions[id]
	s.mu.RUnlock()

	if !ok {
		return nil, ErrSessionNotFound
	}
	if session.IsExpired() {
		return nil, ErrSessionExpired
	}
	cp := *session
	return &cp, nil
}

// Delete removes the session if present.
func (s *MemorySessionStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.sessions, id)
	return nil
}

// DeleteExpired drops every session past its expiry.
func (s *MemorySessionStore) DeleteExpired(_ context.Context) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	removed := 0
	for id, session := range s.sessions {
		if session.IsExpired() {
			delete(s.sessions, id)
			removed++
		}
	}
	return removed, nil
}

// Close is a no-op for the in-memory store.
func (s *MemorySessionStore) Close() error {
	return nil
}

// Len reports the number of stored sessions, expired or not. Test helper.
func (s *MemorySessionStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}
