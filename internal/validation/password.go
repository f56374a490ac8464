package validation

import (
	"strings"

	"github.com/sithum-sy/hireme-client/internal/common"
)

// Score is a 0..5 strength rating with its display label.
type Score struct {
	Value int    `json:"value"`
	Label string `json:"label"`
}

// PasswordStrength is the result of evaluating a candidate password.
type PasswordStrength struct {
	Errors []string `json:"errors"`
	Score  Score    `json:"score"`
}

const passwordSpecials = "@$!%*?&"

// EvaluatePassword scores a candidate against five independent checks, each
// either contributing a message or one point: length of at least 8, a
// lowercase letter, an uppercase letter, a digit, and a special character.
func EvaluatePassword(password string) PasswordStrength {
	if password == "" {
		return PasswordStrength{
			Errors: []string{"Password is required"},
			Score:  Score{Value: 0, Label: "Very Weak"},
		}
	}

	var errs []string
	score := 0

	if len(password) >= 8 {
		score++
	} else {
		errs = append(errs, "Password must be at least 8 characters long")
	}
	if strings.ContainsFunc(password, func(r rune) bool { return r >= 'a' && r <= 'z' }) {
		score++
	} else {
		errs = append(errs, "Password must contain at least one lowercase letter")
	}
	if strings.ContainsFunc(password, func(r rune) bool { return r >= 'A' && r <= 'Z' }) {
		score++
	} else {
		errs = append(errs, "Password must contain at least one uppercase letter")
	}
	if strings.ContainsFunc(password, func(r rune) bool { return r >= '0' && r <= '9' }) {
		score++
	} else {
		errs = append(errs, "Password must contain at least one number")
	}
	if strings.ContainsAny(password, passwordSpecials) {
		score++
	} else {
		errs = append(errs, "Password must contain at least one special character (@$!%*?&)")
	}

	return PasswordStrength{Errors: errs, Score: Score{Value: score, Label: strengthLabel(score)}}
}

// strengthLabel maps a score to its label, highest threshold first so a 4
// never falls through to "Medium".
func strengthLabel(score int) string {
	switch {
	case score >= 5:
		return "Very Strong"
	case score >= 4:
		return "Strong"
	case score >= 3:
		return "Medium"
	case score >= 2:
		return "Weak"
	default:
		return "Very Weak"
	}
}

// PasswordPolicy is the single home for the password-change rules that were
// previously scattered across the security form and its submit handler.
type PasswordPolicy struct {
	// MinSubmitScore is the strength score below which the change action is
	// disabled before submission is even attempted.
	MinSubmitScore int
}

// DefaultPasswordPolicy matches the product's security form behavior.
func DefaultPasswordPolicy() PasswordPolicy {
	return PasswordPolicy{MinSubmitScore: 3}
}

// ValidateChange runs the full submit-time validation for a password change.
// Explicit field errors reported here take precedence over the strength gate:
// CanSubmit only decides whether the action is offered, this decides whether
// it goes through.
func (p PasswordPolicy) ValidateChange(current, newPassword, confirmation string) common.FieldErrors {
	errs := make(common.FieldErrors)

	if strings.TrimSpace(current) == "" {
		errs["current_password"] = []string{"Current password is required"}
	}

	strength := EvaluatePassword(newPassword)
	if len(strength.Errors) > 0 {
		errs["new_password"] = strength.Errors
	} else if newPassword == current && current != "" {
		errs["new_password"] = []string{"New password must be different from your current password"}
	}

	if confirmation != newPassword {
		errs["new_password_confirmation"] = []string{"Passwords do not match"}
	}

	if len(errs) == 0 {
		return nil
	}
	return errs
}

// CanSubmit reports whether the change action should be enabled for the given
// candidate. It is a pre-submit gate only; ValidateChange remains authoritative.
func (p PasswordPolicy) CanSubmit(newPassword string) bool {
	return EvaluatePassword(newPassword).Score.Value >= p.MinSubmitScore
}
