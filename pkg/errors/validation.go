package errors

import (
	"math"
	"strings"
	"unicode"
)

// ValidatePositive checks that a layout or scale option is a finite number
// greater than zero.
func ValidatePositive(name string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return New(ErrCodeInvalidOption, "%s must be a finite number", name)
	}
	if v <= 0 {
		return New(ErrCodeInvalidOption, "%s must be greater than zero, got %g", name, v)
	}
	return nil
}

// ValidateNonNegative checks that an option is a finite number >= 0.
func ValidateNonNegative(name string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return New(ErrCodeInvalidOption, "%s must be a finite number", name)
	}
	if v < 0 {
		return New(ErrCodeInvalidOption, "%s must not be negative, got %g", name, v)
	}
	return nil
}

// ValidateFileBase validates an export file base name for safety.
// It must be a simple name without path components or control characters.
//
// Validation rules:
//   - Name cannot be empty
//   - Maximum length of 200 characters
//   - No control characters
//   - No path separators or traversal sequences
func ValidateFileBase(name string) error {
	if name == "" {
		return New(ErrCodeInvalidInput, "file name cannot be empty")
	}

	const maxLength = 200
	if len(name) > maxLength {
		return New(ErrCodeInvalidInput, "file name too long (max %d characters)", maxLength)
	}

	for _, r := range name {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidInput, "file name contains invalid control characters")
		}
	}

	if strings.ContainsAny(name, "/\\") {
		return New(ErrCodeInvalidInput, "file name cannot contain path separators")
	}

	if strings.Contains(name, "..") {
		return New(ErrCodeInvalidInput, "file name cannot contain path traversal sequences (..)")
	}

	return nil
}
