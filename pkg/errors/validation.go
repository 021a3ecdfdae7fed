package errors

import (
	"math"
	"path/filepath"
	"strings"
	"unicode"
)

// ValidateWeight checks an edge weight before it reaches a store.
//
// Negative weights are reported with ErrCodeNegativeWeight. NaN and
// infinities are reported with ErrCodeInvalidWeight: neither can take part
// in cycle collapse, which subtracts the minimum weight along a cycle.
func ValidateWeight(weight float64) error {
	if math.IsNaN(weight) || math.IsInf(weight, 0) {
		return New(ErrCodeInvalidWeight, "weight must be a finite number, got %v", weight)
	}
	if weight < 0 {
		return New(ErrCodeNegativeWeight, "negative weights are not supported, got %v", weight)
	}
	return nil
}

// ValidateThreshold validates a non-negative, finite configuration value
// such as a visibility floor or an epsilon. The name is used in messages.
func ValidateThreshold(name string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return New(ErrCodeInvalidInput, "%s must be a finite number, got %v", name, v)
	}
	if v < 0 {
		return New(ErrCodeInvalidInput, "%s must not be negative, got %v", name, v)
	}
	return nil
}

// ValidatePath validates a local file path passed to the CLI.
//
// Validation rules:
//   - Path cannot be empty
//   - Maximum length of 4096 characters
//   - No null bytes or control characters
func ValidatePath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidPath, "path cannot be empty")
	}

	const maxPathLength = 4096
	if len(path) > maxPathLength {
		return New(ErrCodeInvalidPath, "path too long (max %d characters)", maxPathLength)
	}

	for _, r := range path {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "path contains invalid characters")
		}
	}

	return nil
}

// ValidateExtension checks that path ends in one of the allowed extensions
// (compared case-insensitively, including the leading dot).
func ValidateExtension(path string, allowed ...string) error {
	ext := strings.ToLower(filepath.Ext(path))
	for _, a := range allowed {
		if ext == a {
			return nil
		}
	}
	return New(ErrCodeInvalidFormat, "unsupported file extension %q (want one of %s)", ext, strings.Join(allowed, ", "))
}
