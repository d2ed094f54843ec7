// Lunchmap - Team Restaurant Sharing and Geographic Rating
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/lunchmap

package auth

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/goccy/go-json"

	"github.com/tomtom215/lunchmap/internal/logging"
)

// Mode selects how bearer tokens are issued and verified.
type Mode string

const (
	// ModeSession issues opaque session IDs looked up in the session
	// store. Tokens are revocable; the default.
	ModeSession Mode = "session"

	// ModeJWT issues self-contained HS256 tokens. Nothing is stored
	// server-side and logout is a client-side discard.
	ModeJWT Mode = "jwt"
)

// Requester identifies the authenticated caller of a request.
type Requester struct {
	UserID string
	TeamID string
}

type requesterCtxKey struct{}

// ContextWithRequester attaches the authenticated caller to a context.
func ContextWithRequester(ctx context.Context, r *Requester) context.Context {
	return context.WithValue(ctx, requesterCtxKey{}, r)
}

// RequesterFromContext extracts the authenticated caller, or nil when the
// request did not pass through the auth middleware.
func RequesterFromContext(ctx context.Context) *Requester {
	r, _ := ctx.Value(requesterCtxKey{}).(*Requester)
	return r
}

// Authenticator issues, verifies, and revokes bearer tokens in the
// configured mode.
type Authenticator struct {
	mode     Mode
	sessions SessionStore
	jwt      *JWTManager
	ttl      time.Duration
}

// NewAuthenticator builds an authenticator. The session store is required
// in session mode; the JWT manager in jwt mode.
func NewAuthenticator(mode Mode, sessions SessionStore, jwtManager *JWTManager, ttl time.Duration) *Authenticator {
	if mode == "" {
		mode = ModeSession
	}
	if ttl <= 0 {
		ttl = DefaultSessionTTL
	}
	return &Authenticator{mode: mode, sessions: sessions, jwt: jwtManager, ttl: ttl}
}

// IssueToken creates a bearer token for a freshly authenticated user.
func (a *Authenticator) IssueToken(ctx context.Context, userID, teamID string) (string, error) {
	if a.mode == ModeJWT {
		return a.jwt.Generate(userID, teamID)
	}

	session, err := NewSession(userID, teamID, a.ttl)
	if err != nil {
		return "", err
	}
	if err := a.sessions.Create(ctx, session); err != nil {
		return "", err
	}
	return session.ID, nil
}

// Resolve verifies a bearer token and returns the caller it represents.
// All failure modes collapse to ErrInvalidToken; callers never learn
// whether a token was malformed, unknown, or expired.
func (a *Authenticator) Resolve(ctx context.Context, token string) (*Requester, error) {
	if token == "" {
		return nil, ErrInvalidToken
	}

	if a.mode == ModeJWT {
		claims, err := a.jwt.Verify(token)
		if err != nil {
			return nil, ErrInvalidToken
		}
		return &Requester{UserID: claims.UserID, TeamID: claims.TeamID}, nil
	}

	session, err := a.sessions.Get(ctx, token)
	if err != nil {
		return nil, ErrInvalidToken
	}
	return &Requester{UserID: session.UserID, TeamID: session.TeamID}, nil
}

// Revoke invalidates a token. JWTs cannot be revoked server-side; the
// call succeeds so logout behaves uniformly across modes.
func (a *Authenticator) Revoke(ctx context.Context, token string) error {
	if a.mode == ModeJWT {
		return nil
	}
	return a.sessions.Delete(ctx, token)
}

// Middleware rejects requests without a valid bearer token and attaches
// the resolved caller to the request context.
func (a *Authenticator) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := bearerToken(r)
		requester, err := a.Resolve(r.Context(), token)
		if err != nil {
			logging.Ctx(r.Context()).Debug().
				Str("path", r.URL.Path).
				Msg("Rejected unauthenticated request")
			writeUnauthorized(w)
			return
		}

		ctx := ContextWithRequester(r.Context(), requester)
		ctx = logging.ContextWithUserID(ctx, requester.UserID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// bearerToken extracts the token from the Authorization header.
func bearerToken(r *http.Request) string {
	header := r.Header.Get("Authorization")
	if header == "" {
		return ""
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}

// writeUnauthorized emits the standard error envelope without importing
// the api package, which sits above this one.
func writeUnauthorized(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	_ = json.NewEncoder(w).Encode(map[string]interface{}{
		"status": "error",
		"error": map[string]string{
			"code":    "UNAUTHORIZED",
			"message": "Authentication required",
		},
	})
}
