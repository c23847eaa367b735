package errors

import (
	"strings"
	"unicode"
)

// ValidatePropertyName validates a material property column name.
// Property names come from user-supplied spreadsheet headers, so the
// rules are intentionally conservative:
//   - No empty names
//   - No control characters
//   - Maximum length of 128 characters
//
// Unit and color lookups are validated separately by the materials package.
func ValidatePropertyName(name string) error {
	if name == "" {
		return New(ErrCodeUnknownProperty, "property name cannot be empty")
	}

	if len(name) > 128 {
		return New(ErrCodeUnknownProperty, "property name too long (max 128 characters)")
	}

	for _, r := range name {
		if unicode.IsControl(r) {
			return New(ErrCodeUnknownProperty, "property name contains invalid control characters")
		}
	}

	return nil
}

// ValidateCategoryName validates a material category label.
// Categories key into the color palette, so they follow the same
// conservative rules as property names.
func ValidateCategoryName(name string) error {
	if strings.TrimSpace(name) == "" {
		return New(ErrCodeUnknownCategory, "category name cannot be empty")
	}

	if len(name) > 128 {
		return New(ErrCodeUnknownCategory, "category name too long (max 128 characters)")
	}

	for _, r := range name {
		if unicode.IsControl(r) {
			return New(ErrCodeUnknownCategory, "category name contains invalid control characters")
		}
	}

	return nil
}

// ValidateScaleFactor validates a hull scale factor.
// Scale factors must be strictly positive; values < 1 shrink, 1 is a no-op.
func ValidateScaleFactor(f float64) error {
	if f <= 0 {
		return New(ErrCodeInvalidScale, "scale factor must be positive, got %v", f)
	}
	return nil
}

// ValidateInterpolationCount validates the smoothed-boundary sample count.
// A closed curve needs at least two samples.
func ValidateInterpolationCount(n int) error {
	if n < 2 {
		return New(ErrCodeInvalidInput, "interpolation count must be at least 2, got %d", n)
	}
	return nil
}
