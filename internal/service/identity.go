// Lunchmap - Team Restaurant Sharing and Geographic Rating
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/lunchmap

package service

import (
	"context"
	"strings"

	"github.com/tomtom215/lunchmap/internal/auth"
	"github.com/tomtom215/lunchmap/internal/logging"
	"github.com/tomtom215/lunchmap/internal/models"
	"github.com/tomtom215/lunchmap/internal/validation"
)

// RegisterInput is the payload for creating an account. The team code is
// the join code shared out of band; the department code is optional and
// must belong to the joined team when present.
type RegisterInput struct {
	Username       string `json:"username" validate:"required,min=3,max=32"`
	Password       string `json:"password" validate:"required,min=8,max=72"`
	DisplayName    string `json:"displayName" validate:"max=64"`
	TeamCode       string `json:"teamCode" validate:"required"`
	DepartmentCode string `json:"departmentCode"`
	Department     string `json:"department" validate:"max=64"`
}

// LoginInput is the payload for authenticating an existing account.
type LoginInput struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// AuthResult is a successful registration or login: the sanitized user
// plus a bearer token for subsequent requests.
type AuthResult struct {
	Token string      `json:"token"`
	User  models.User `json:"user"`
}

// Register creates a new account in the team matching the join code and
// returns a logged-in session for it. Usernames are normalized to
// lowercase and must be unique across all teams.
func (s *Service) Register(ctx context.Context, input RegisterInput) (*AuthResult, error) {
	if verr := validation.ValidateStruct(&input); verr != nil {
		return nil, verr
	}

	hash, err := auth.HashPassword(input.Password)
	if err != nil {
		return nil, validation.NewFieldError("password", "password", err.Error())
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	ds, err := s.store.Load(ctx)
	if err != nil {
		return nil, err
	}

	team := ds.TeamByCode(strings.TrimSpace(input.TeamCode))
	if team == nil {
		return nil, validation.NewFieldError("teamCode", "exists", "Invalid team code")
	}

	username := strings.ToLower(strings.TrimSpace(input.Username))
	if ds.UserByUsername(username) != nil {
		return nil, ErrUsernameTaken
	}

	department := strings.TrimSpace(input.Department)
	departmentCode := strings.TrimSpace(input.DepartmentCode)
	if departmentCode != "" {
		deptTeam, dept := ds.FindDepartmentByCode(departmentCode)
		if dept == nil || deptTeam.ID != team.ID {
			return nil, validation.NewFieldError("departmentCode", "exists", "Unknown department code")
		}
		department = dept.Name
	}
	if department == "" {
		department = models.DepartmentOther
	}

	displayName := strings.TrimSpace(input.DisplayName)
	if displayName == "" {
		displayName = username
	}

	user := models.User{
		ID:             s.newID(),
		Username:       username,
		DisplayName:    displayName,
		Department:     department,
		DepartmentCode: departmentCode,
		TeamID:         team.ID,
		CreatedAt:      s.now(),
		Credential:     &models.Credential{Hash: hash},
	}
	ds.Users = append(ds.Users, user)

	if err := s.store.Save(ctx, ds); err != nil {
		return nil, err
	}

	token, err := s.auth.IssueToken(ctx, user.ID, user.TeamID)
	if err != nil {
		return nil, err
	}

	logging.Ctx(ctx).Info().
		Str("user_id", user.ID).
		Str("team_id", user.TeamID).
		Msg("Registered new user")

	return &AuthResult{Token: token, User: user.Public()}, nil
}

// Login authenticates a username and password. Unknown usernames and
// wrong passwords both return auth.ErrInvalidCredentials; callers learn
// nothing about which half failed.
func (s *Service) Login(ctx context.Context, input LoginInput) (*AuthResult, error) {
	if verr := validation.ValidateStruct(&input); verr != nil {
		return nil, verr
	}

	ds, err := s.store.Load(ctx)
	if err != nil {
		return nil, err
	}

	user := ds.UserByUsername(input.Username)
	if user == nil || user.Credential == nil {
		return nil, auth.ErrInvalidCredentials
	}
	if err := auth.VerifyPassword(user.Credential.Hash, input.Password); err != nil {
		return nil, err
	}

	token, err := s.auth.IssueToken(ctx, user.ID, user.TeamID)
	if err != nil {
		return nil, err
	}

	logging.Ctx(ctx).Info().
		Str("user_id", user.ID).
		Msg("User logged in")

	return &AuthResult{Token: token, User: user.Public()}, nil
}

// Logout revokes the bearer token. Revoking an unknown or already
// revoked token succeeds; logout is idempotent.
func (s *Service) Logout(ctx context.Context, token string) error {
	return s.auth.Revoke(ctx, token)
}

// CurrentUser returns the sanitized profile of the authenticated caller.
// A valid token referencing a user missing from the dataset yields
// ErrNotFound; the HTTP layer treats that as an expired login.
func (s *Service) CurrentUser(ctx context.Context, requester *auth.Requester) (*models.User, error) {
	ds, err := s.store.Load(ctx)
	if err != nil {
		return nil, err
	}

	user := ds.UserByID(requester.UserID)
	if user == nil {
		return nil, ErrNotFound
	}
	pub := user.Public()
	return &pub, nil
}
