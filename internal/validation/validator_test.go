// Lunchmap - Team Restaurant Sharing and Geographic Rating
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/lunchmap

package validation

import (
	"strings"
	"testing"
)

type coordRequest struct {
	Name string  `validate:"required"`
	Lat  float64 `validate:"latitude"`
	Lng  float64 `validate:"longitude"`
}

type ratingRequest struct {
	Rating int `validate:"min=1,max=5"`
}

func TestValidateStruct_Valid(t *testing.T) {
	tests := []struct {
		name string
		req  coordRequest
	}{
		{"typical", coordRequest{Name: "Kimchi House", Lat: 37.5, Lng: 127.0}},
		{"lat boundary low", coordRequest{Name: "a", Lat: -90, Lng: 0.1}},
		{"lat boundary high", coordRequest{Name: "a", Lat: 90, Lng: 0.1}},
		{"lng boundary low", coordRequest{Name: "a", Lat: 0.1, Lng: -180}},
		{"lng boundary high", coordRequest{Name: "a", Lat: 0.1, Lng: 180}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := ValidateStruct(&tt.req); err != nil {
				t.Errorf("expected valid, got %v", err)
			}
		})
	}
}

func TestValidateStruct_Invalid(t *testing.T) {
	tests := []struct {
		name      string
		req       coordRequest
		wantField string
	}{
		{"missing name", coordRequest{Lat: 37.5, Lng: 127.0}, "Name"},
		{"latitude 91", coordRequest{Name: "a", Lat: 91, Lng: 0.1}, "Lat"},
		{"longitude 181", coordRequest{Name: "a", Lat: 0.1, Lng: 181}, "Lng"},
		{"latitude -91", coordRequest{Name: "a", Lat: -91, Lng: 0.1}, "Lat"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			verr := ValidateStruct(&tt.req)
			if verr == nil {
				t.Fatal("expected validation error, got nil")
			}
			found := false
			for _, fe := range verr.Fields() {
				if fe.Field == tt.wantField {
					found = true
				}
			}
			if !found {
				t.Errorf("expected field %q in errors, got %v", tt.wantField, verr.Fields())
			}
		})
	}
}

func TestValidateStruct_MultipleFields(t *testing.T) {
	req := coordRequest{Lat: 91, Lng: 181}
	verr := ValidateStruct(&req)
	if verr == nil {
		t.Fatal("expected validation error")
	}
	if len(verr.Fields()) != 3 {
		t.Errorf("expected 3 field errors, got %d: %v", len(verr.Fields()), verr.Fields())
	}
}

func TestValidateStruct_RatingBounds(t *testing.T) {
	for rating := 1; rating <= 5; rating++ {
		if err := ValidateStruct(&ratingRequest{Rating: rating}); err != nil {
			t.Errorf("rating %d should be valid: %v", rating, err)
		}
	}
	for _, rating := range []int{0, 6, -1} {
		if err := ValidateStruct(&ratingRequest{Rating: rating}); err == nil {
			t.Errorf("rating %d should be invalid", rating)
		}
	}
}

func TestTranslatedMessages(t *testing.T) {
	verr := ValidateStruct(&coordRequest{Name: "a", Lat: 91, Lng: 0.1})
	if verr == nil {
		t.Fatal("expected validation error")
	}
	if !strings.Contains(verr.Error(), "valid latitude") {
		t.Errorf("expected translated latitude message, got %q", verr.Error())
	}
}

func TestNewFieldError(t *testing.T) {
	verr := NewFieldError("departmentCode", "exists", "departmentCode does not match any department")
	if len(verr.Fields()) != 1 {
		t.Fatalf("expected 1 field, got %d", len(verr.Fields()))
	}
	if verr.Fields()[0].Field != "departmentCode" {
		t.Errorf("unexpected field: %+v", verr.Fields()[0])
	}
}
