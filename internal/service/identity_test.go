// Lunchmap - Team Restaurant Sharing and Geographic Rating
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/lunchmap

package service

import (
	"context"
	"errors"
	"testing"

	"github.com/tomtom215/lunchmap/internal/auth"
	"github.com/tomtom215/lunchmap/internal/models"
	"github.com/tomtom215/lunchmap/internal/store"
	"github.com/tomtom215/lunchmap/internal/validation"
)

func TestRegister_Success(t *testing.T) {
	svc, st := newTestService(t, testDataset(t))
	ctx := context.Background()

	result, err := svc.Register(ctx, RegisterInput{
		Username:       "  Dave  ",
		Password:       "dave-password",
		DisplayName:    "Dave",
		TeamCode:       "LUNCH-TEAM",
		DepartmentCode: "ENG",
	})
	if err != nil {
		t.Fatalf("Register: %v", err)
	}

	if result.User.Username != "dave" {
		t.Errorf("username not normalized: %q", result.User.Username)
	}
	if result.User.TeamID != "team-default" {
		t.Errorf("team = %q", result.User.TeamID)
	}
	if result.User.Department != "Engineering" {
		t.Errorf("department not resolved from code: %q", result.User.Department)
	}
	if result.User.Credential != nil {
		t.Error("credential leaked in registration response")
	}
	if result.Token == "" {
		t.Error("no token issued")
	}

	// The issued token must authenticate as the new user.
	requester, err := svc.auth.Resolve(ctx, result.Token)
	if err != nil {
		t.Fatalf("token does not resolve: %v", err)
	}
	if requester.UserID != result.User.ID {
		t.Errorf("token resolves to %q, want %q", requester.UserID, result.User.ID)
	}

	// And the user must be persisted with a hash, not the password.
	ds, _ := st.Load(ctx)
	stored := ds.UserByUsername("dave")
	if stored == nil {
		t.Fatal("user not persisted")
	}
	if stored.Credential == nil || stored.Credential.Hash == "dave-password" {
		t.Error("password stored without hashing")
	}
}

func TestRegister_Defaults(t *testing.T) {
	svc, _ := newTestService(t, testDataset(t))

	result, err := svc.Register(context.Background(), RegisterInput{
		Username: "erin",
		Password: "erin-password",
		TeamCode: "LUNCH-TEAM",
	})
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if result.User.DisplayName != "erin" {
		t.Errorf("display name should default to username, got %q", result.User.DisplayName)
	}
	if result.User.Department != models.DepartmentOther {
		t.Errorf("department should default to %q, got %q", models.DepartmentOther, result.User.Department)
	}
}

func TestRegister_ValidationFailures(t *testing.T) {
	svc, _ := newTestService(t, testDataset(t))
	ctx := context.Background()

	cases := map[string]RegisterInput{
		"missing username": {Password: "long-enough", TeamCode: "LUNCH-TEAM"},
		"short username":   {Username: "ab", Password: "long-enough", TeamCode: "LUNCH-TEAM"},
		"short password":   {Username: "frank", Password: "short", TeamCode: "LUNCH-TEAM"},
		"missing team":     {Username: "frank", Password: "long-enough"},
		"bad team code":    {Username: "frank", Password: "long-enough", TeamCode: "NOPE"},
		"bad department":   {Username: "frank", Password: "long-enough", TeamCode: "LUNCH-TEAM", DepartmentCode: "XXX"},
		"wrong team dept":  {Username: "frank", Password: "long-enough", TeamCode: "LUNCH-TEAM", DepartmentCode: "WHS"},
	}
	for name, input := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := svc.Register(ctx, input)
			var verr *validation.RequestValidationError
			if !errors.As(err, &verr) {
				t.Errorf("Register = %v, want validation error", err)
			}
		})
	}
}

func TestRegister_UsernameTaken(t *testing.T) {
	svc, _ := newTestService(t, testDataset(t))

	// "Alice" collides with the existing lowercase "alice".
	_, err := svc.Register(context.Background(), RegisterInput{
		Username: "Alice",
		Password: "another-password",
		TeamCode: "LUNCH-TEAM",
	})
	if !errors.Is(err, ErrUsernameTaken) {
		t.Errorf("Register = %v, want ErrUsernameTaken", err)
	}
}

func TestLogin_Success(t *testing.T) {
	svc, _ := newTestService(t, testDataset(t))
	ctx := context.Background()

	result, err := svc.Login(ctx, LoginInput{Username: "ALICE", Password: "alice-password"})
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if result.User.ID != "u-alice" {
		t.Errorf("logged in as %q", result.User.ID)
	}
	if result.User.Credential != nil {
		t.Error("credential leaked in login response")
	}

	requester, err := svc.auth.Resolve(ctx, result.Token)
	if err != nil || requester.UserID != "u-alice" {
		t.Errorf("token resolve = %+v, %v", requester, err)
	}
}

func TestLogin_Failures(t *testing.T) {
	svc, _ := newTestService(t, testDataset(t))
	ctx := context.Background()

	// Wrong password and unknown username return the same error.
	_, err1 := svc.Login(ctx, LoginInput{Username: "alice", Password: "wrong-password"})
	_, err2 := svc.Login(ctx, LoginInput{Username: "nobody", Password: "wrong-password"})
	if !errors.Is(err1, auth.ErrInvalidCredentials) {
		t.Errorf("wrong password = %v", err1)
	}
	if !errors.Is(err2, auth.ErrInvalidCredentials) {
		t.Errorf("unknown user = %v", err2)
	}
}

func TestLogout_RevokesToken(t *testing.T) {
	svc, _ := newTestService(t, testDataset(t))
	ctx := context.Background()

	result, err := svc.Login(ctx, LoginInput{Username: "alice", Password: "alice-password"})
	if err != nil {
		t.Fatal(err)
	}

	if err := svc.Logout(ctx, result.Token); err != nil {
		t.Fatalf("Logout: %v", err)
	}
	if _, err := svc.auth.Resolve(ctx, result.Token); err == nil {
		t.Error("token still valid after logout")
	}

	// Logout is idempotent.
	if err := svc.Logout(ctx, result.Token); err != nil {
		t.Errorf("second Logout: %v", err)
	}
}

func TestCurrentUser(t *testing.T) {
	svc, _ := newTestService(t, testDataset(t))
	ctx := context.Background()

	user, err := svc.CurrentUser(ctx, alice())
	if err != nil {
		t.Fatalf("CurrentUser: %v", err)
	}
	if user.ID != "u-alice" || user.Credential != nil {
		t.Errorf("CurrentUser = %+v", user)
	}

	// A token referencing a vanished user is a stale login.
	_, err = svc.CurrentUser(ctx, &auth.Requester{UserID: "ghost", TeamID: "team-default"})
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("ghost user = %v, want ErrNotFound", err)
	}
}

func TestIdentity_StorageUnavailable(t *testing.T) {
	svc, st := newTestService(t, testDataset(t))
	st.LoadErr = store.ErrUnavailable

	_, err := svc.Login(context.Background(), LoginInput{Username: "alice", Password: "alice-password"})
	if !errors.Is(err, store.ErrUnavailable) {
		t.Errorf("Login = %v, want ErrUnavailable passthrough", err)
	}

	_, err = svc.Register(context.Background(), RegisterInput{
		Username: "gina", Password: "gina-password", TeamCode: "LUNCH-TEAM",
	})
	if !errors.Is(err, store.ErrUnavailable) {
		t.Errorf("Register = %v, want ErrUnavailable passthrough", err)
	}
}
