package errors

import (
	"regexp"
	"strings"
	"unicode"
)

// MaxKindNameLength bounds core kind names accepted from users and catalog files.
const MaxKindNameLength = 64

// kindNameRegex matches catalog kind names: a letter followed by letters,
// digits, dashes or underscores.
var kindNameRegex = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9_-]*$`)

// ValidateKindName validates a core kind name for safety and correctness.
//
// The rules are intentionally conservative:
//   - No empty names
//   - No control characters or whitespace
//   - Maximum length of MaxKindNameLength characters
//   - Letters, digits, dash and underscore only, starting with a letter
func ValidateKindName(name string) error {
	if name == "" {
		return New(ErrCodeInvalidRequest, "core kind cannot be empty")
	}

	if len(name) > MaxKindNameLength {
		return New(ErrCodeInvalidRequest, "core kind too long (max %d characters)", MaxKindNameLength)
	}

	for _, r := range name {
		if unicode.IsControl(r) || unicode.IsSpace(r) {
			return New(ErrCodeInvalidRequest, "core kind contains invalid characters")
		}
	}

	if !kindNameRegex.MatchString(name) {
		return New(ErrCodeInvalidRequest, "invalid core kind: %q", name)
	}

	return nil
}

// ValidatePositions checks a layout request's ring positions before any
// routing happens.
//
// Validation rules:
//   - every position lies in [0, size)
//   - inputs are pairwise distinct, outputs are pairwise distinct
//   - no position is both an input and an output
func ValidatePositions[P ~int](inputs, outputs []P, size int) error {
	seen := make(map[P]string, len(inputs)+len(outputs))
	check := func(p P, role string) error {
		if int(p) < 0 || int(p) >= size {
			return New(ErrCodeInvalidRequest, "%s position %d out of range (0-%d)", role, int(p), size-1)
		}
		if prev, ok := seen[p]; ok {
			if prev == role {
				return New(ErrCodeInvalidRequest, "%s position %d given twice", role, int(p))
			}
			return New(ErrCodeInvalidRequest, "conflict between inputs and outputs, position %d is used by both", int(p))
		}
		seen[p] = role
		return nil
	}

	for _, p := range inputs {
		if err := check(p, "input"); err != nil {
			return err
		}
	}
	for _, p := range outputs {
		if err := check(p, "output"); err != nil {
			return err
		}
	}
	return nil
}

// ValidateOutputPath validates a file path given for an export artifact.
// Only obviously broken values are rejected; the filesystem does the rest.
func ValidateOutputPath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidInput, "output path cannot be empty")
	}

	const maxPathLength = 500
	if len(path) > maxPathLength {
		return New(ErrCodeInvalidInput, "output path too long (max %d characters)", maxPathLength)
	}

	for _, r := range path {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidInput, "output path contains invalid control characters")
		}
	}

	if strings.HasSuffix(path, "/") {
		return New(ErrCodeInvalidInput, "output path must name a file, not a directory")
	}

	return nil
}
