// Package validation implements the client-side rule engine behind every
// profile and service form: per-field checks, schema-driven form validation,
// file constraints, and the password strength policy. All functions are pure;
// the form layer decides what to do with the messages.
package validation

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"
)

// Kind tags the variant of a field. Validation dispatches on it with an
// exhaustive switch; unknown kinds are a programming error, not user input.
type Kind int

const (
	KindText Kind = iota
	KindEmail
	KindNumber
	KindFile
	KindFileList
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// FieldRule is the declarative rule set for one form field.
type FieldRule struct {
	Label    string
	Kind     Kind
	Required bool
	ReadOnly bool

	// Scalar rules
	MinLength int
	MaxLength int
	Pattern   *regexp.Regexp
	Min       *float64
	Max       *float64

	// File rules
	MaxSizeKB   int64
	AllowedExts []string
	MaxFiles    int
}

func (r FieldRule) label() string {
	if r.Label != "" {
		return r.Label
	}
	return "This field"
}

// ValidateField checks a scalar value against the rule. An empty required
// value yields exactly one message and short-circuits; an empty optional
// value is skipped entirely. Otherwise every applicable check runs and every
// failing check contributes a message.
func ValidateField(value string, rule FieldRule) []string {
	trimmed := strings.TrimSpace(value)

	if trimmed == "" {
		if rule.Required {
			return []string{fmt.Sprintf("%s is required", rule.label())}
		}
		return nil
	}

	var errs []string

	if rule.Kind == KindEmail && !emailPattern.MatchString(trimmed) {
		errs = append(errs, "Please enter a valid email address")
	}
	// Length limits count characters, not bytes.
	length := utf8.RuneCountInString(trimmed)
	if rule.MinLength > 0 && length < rule.MinLength {
		errs = append(errs, fmt.Sprintf("%s must be at least %d characters", rule.label(), rule.MinLength))
	}
	if rule.MaxLength > 0 && length > rule.MaxLength {
		errs = append(errs, fmt.Sprintf("%s must not exceed %d characters", rule.label(), rule.MaxLength))
	}
	if rule.Pattern != nil && !rule.Pattern.MatchString(trimmed) {
		errs = append(errs, fmt.Sprintf("%s format is invalid", rule.label()))
	}
	if rule.Kind == KindNumber {
		errs = append(errs, validateNumeric(trimmed, rule)...)
	}

	return errs
}

func validateNumeric(value string, rule FieldRule) []string {
	n, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return []string{fmt.Sprintf("%s must be a valid number", rule.label())}
	}

	var errs []string
	if rule.Min != nil && n < *rule.Min {
		errs = append(errs, fmt.Sprintf("%s must be at least %s", rule.label(), formatBound(*rule.Min)))
	}
	if rule.Max != nil && n > *rule.Max {
		errs = append(errs, fmt.Sprintf("%s must not exceed %s", rule.label(), formatBound(*rule.Max)))
	}
	return errs
}

func formatBound(n float64) string {
	return strconv.FormatFloat(n, 'f', -1, 64)
}

// Bound is a convenience for populating Min/Max on a FieldRule literal.
func Bound(n float64) *float64 {
	return &n
}
