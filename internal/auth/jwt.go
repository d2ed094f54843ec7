// Lunchmap - Team Restaurant Sharing and Geographic Rating
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/lunchmap

package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// minJWTSecretLen guards against weak HS256 keys. 32 bytes matches the
// hash output size, the smallest key that does not reduce security.
const minJWTSecretLen = 32

// ErrInvalidToken is returned for tokens that fail signature or claim
// validation, including expired ones.
var ErrInvalidToken = errors.New("invalid token")

// Claims are the JWT claims Lunchmap issues: the registered set plus the
// user and team identifiers needed to scope a request.
type Claims struct {
	UserID string `json:"uid"`
	TeamID string `json:"tid"`
	jwt.RegisteredClaims
}

// JWTManager signs and verifies HS256 tokens for the stateless auth mode.
type JWTManager struct {
	secret []byte
	ttl    time.Duration
}

// NewJWTManager creates a manager with the given signing secret and token
// lifetime.
func NewJWTManager(secret string, ttl time.Duration) (*JWTManager, error) {
	if len(secret) < minJWTSecretLen {
		return nil, fmt.Errorf("jwt secret must be at least %d characters", minJWTSecretLen)
	}
	if ttl <= 0 {
		ttl = DefaultSessionTTL
	}
	return &JWTManager{secret: []byte(secret), ttl: ttl}, nil
}

// Generate issues a signed token for a user.
func (m *JWTManager) Generate(userID, teamID string) (string, error) {
	now := time.Now()
	claims := Claims{
		UserID: userID,
		TeamID: teamID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
			Issuer:    "lunchmap",
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// Verify parses and validates a token, returning its claims.
func (m *JWTManager) Verify(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims,
		func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
			}
			return m.secret, nil
		},
		jwt.WithValidMethods([]string{"HS256"}),
		jwt.WithIssuer("lunchmap"),
	)
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}
	if claims.UserID == "" {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
