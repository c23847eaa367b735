package errors

import (
	"strings"
	"testing"
)

func TestValidatePropertyName(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"simple", "Density", false},
		{"with spaces", "Young Modulus", false},
		{"with unit suffix", "Fracture Toughness", false},
		{"empty", "", true},
		{"control characters", "Density\x00", true},
		{"newline", "Density\nhigh", true},
		{"too long", strings.Repeat("a", 129), true},
		{"max length", strings.Repeat("a", 128), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePropertyName(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidatePropertyName(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err != nil && !Is(err, ErrCodeUnknownProperty) {
				t.Errorf("error code = %v, want %v", GetCode(err), ErrCodeUnknownProperty)
			}
		})
	}
}

func TestValidateCategoryName(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"simple", "Metals", false},
		{"multi word", "Technical ceramics", false},
		{"empty", "", true},
		{"whitespace only", "   ", true},
		{"control characters", "Metals\t", true},
		{"too long", strings.Repeat("x", 129), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateCategoryName(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateCategoryName(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

func TestValidateScaleFactor(t *testing.T) {
	tests := []struct {
		name    string
		factor  float64
		wantErr bool
	}{
		{"typical enlargement", 1.1, false},
		{"identity", 1.0, false},
		{"shrink", 0.5, false},
		{"zero", 0, true},
		{"negative", -1.5, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateScaleFactor(tt.factor)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateScaleFactor(%v) error = %v, wantErr %v", tt.factor, err, tt.wantErr)
			}
			if err != nil && !Is(err, ErrCodeInvalidScale) {
				t.Errorf("error code = %v, want %v", GetCode(err), ErrCodeInvalidScale)
			}
		})
	}
}

func TestValidateInterpolationCount(t *testing.T) {
	tests := []struct {
		name    string
		n       int
		wantErr bool
	}{
		{"typical", 1000, false},
		{"minimum", 2, false},
		{"one", 1, true},
		{"zero", 0, true},
		{"negative", -5, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateInterpolationCount(tt.n)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateInterpolationCount(%d) error = %v, wantErr %v", tt.n, err, tt.wantErr)
			}
		})
	}
}
