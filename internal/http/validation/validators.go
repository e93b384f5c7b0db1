package validation

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// Validator is a function that validates a string value and returns an error message if invalid.
type Validator func(v string) string

// Required validates that a field is not empty and does not exceed maxLen characters.
// Uses rune count for proper Unicode support.
func Required(fieldName string, maxLen int) Validator {
	return func(v string) string {
		v = strings.TrimSpace(v)
		if v == "" {
			return fieldName + " is required."
		}
		if utf8.RuneCountInString(v) > maxLen {
			return fmt.Sprintf("%s cannot exceed %d characters.", fieldName, maxLen)
		}
		return ""
	}
}

// RequiredRange validates that a field is not empty and is between minLen and
// maxLen characters. Uses rune count for proper Unicode support.
func RequiredRange(fieldName string, minLen, maxLen int) Validator {
	return func(v string) string {
		v = strings.TrimSpace(v)
		if v == "" {
			return fieldName + " is required."
		}
		n := utf8.RuneCountInString(v)
		if n < minLen || n > maxLen {
			return fmt.Sprintf("%s must be between %d and %d characters.", fieldName, minLen, maxLen)
		}
		return ""
	}
}

// Matches validates that a field equals the value of another field, for
// confirm-password style inputs.
func Matches(fieldName, other string) Validator {
	return func(v string) string {
		if v != other {
			return fieldName + " does not match."
		}
		return ""
	}
}

// Run applies validators to named values and collects the first error per field.
func Run(values map[string]string, rules map[string][]Validator) map[string]string {
	errs := map[string]string{}
	for field, validators := range rules {
		for _, validate := range validators {
			if msg := validate(values[field]); msg != "" {
				errs[field] = msg
				break
			}
		}
	}
	return errs
}
