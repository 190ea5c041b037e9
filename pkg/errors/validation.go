package errors

import (
	"math"
	"regexp"
	"unicode"
)

// elementIDRegex matches ids that are safe to use as element references
// in scene files and URLs.
var elementIDRegex = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9._-]*$`)

// ValidateElementID validates an element id.
//
// The rules are intentionally conservative:
//   - No empty ids
//   - Maximum length of 128 characters
//   - No control characters
//   - Letters, digits, '.', '_' and '-' only, starting with a letter or digit
func ValidateElementID(id string) error {
	if id == "" {
		return New(ErrCodeInvalidInput, "element id cannot be empty")
	}

	if len(id) > 128 {
		return New(ErrCodeInvalidInput, "element id too long (max 128 characters)")
	}

	for _, r := range id {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidInput, "element id contains invalid control characters")
		}
	}

	if !elementIDRegex.MatchString(id) {
		return New(ErrCodeInvalidInput, "invalid element id: %q", id)
	}

	return nil
}

// ValidateDimension validates a width or height. Zero is allowed: collapsed
// elements are valid geometry.
func ValidateDimension(name string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return New(ErrCodeInvalidInput, "%s must be a finite number", name)
	}
	if v < 0 {
		return New(ErrCodeInvalidInput, "%s cannot be negative (got %g)", name, v)
	}
	return nil
}

// ValidateCoordinate validates a position component. Negative values are
// allowed since nothing is clamped to the viewport.
func ValidateCoordinate(name string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return New(ErrCodeInvalidInput, "%s must be a finite number", name)
	}
	return nil
}
