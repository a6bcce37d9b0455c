package utils

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"
)

// String length limits for API input.
const (
	MaxIdentityLength = 255
	MaxLabelLength    = 256
	MaxQueryLength    = 512
)

// IdentityPattern matches package-style and desktop-file identities:
// dot-separated alphanumeric segments with hyphens and underscores.
var IdentityPattern = regexp.MustCompile(`^[a-zA-Z0-9_-]+(\.[a-zA-Z0-9_-]+)*$`)

// ValidateString validates a string field with length and content checks.
func ValidateString(value, fieldName string, minLen, maxLen int, required bool) error {
	if required && value == "" {
		return fmt.Errorf("%s is required", fieldName)
	}
	if value == "" && !required {
		return nil
	}

	length := utf8.RuneCountInString(value)
	if length < minLen {
		return fmt.Errorf("%s must be at least %d characters", fieldName, minLen)
	}
	if length > maxLen {
		return fmt.Errorf("%s must not exceed %d characters", fieldName, maxLen)
	}

	if strings.Contains(value, "\x00") {
		return fmt.Errorf("%s contains invalid characters", fieldName)
	}
	return nil
}

// ValidateIdentity validates an application identity from API input.
func ValidateIdentity(identity string) error {
	if err := ValidateString(identity, "identity", 1, MaxIdentityLength, true); err != nil {
		return err
	}
	if !IdentityPattern.MatchString(identity) {
		return fmt.Errorf("identity contains invalid characters (dot-separated alphanumeric segments allowed)")
	}
	return nil
}

// ValidateLabel validates a user-supplied display label.
func ValidateLabel(label string) error {
	return ValidateString(label, "label", 1, MaxLabelLength, true)
}

// ValidateQuery validates a search query string. Empty queries are valid
// and mean "match everything".
func ValidateQuery(query string) error {
	return ValidateString(query, "query", 0, MaxQueryLength, false)
}
