package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEvaluatePassword_Empty(t *testing.T) {
	got := EvaluatePassword("")
	assert.Equal(t, 0, got.Score.Value)
	assert.Equal(t, "Very Weak", got.Score.Label)
	assert.Equal(t, []string{"Password is required"}, got.Errors)
}

func TestEvaluatePassword_AllChecksPass(t *testing.T) {
	got := EvaluatePassword("Abcdef1!")
	assert.Equal(t, 5, got.Score.Value)
	assert.Equal(t, "Very Strong", got.Score.Label)
	assert.Empty(t, got.Errors)
}

func TestEvaluatePassword_ScoresAndLabels(t *testing.T) {
	tests := []struct {
		name      string
		password  string
		wantScore int
		wantLabel string
	}{
		{"lowercase only, short", "abc", 1, "Very Weak"},
		{"lower and upper, short", "abcDEF", 2, "Weak"},
		{"lower upper digit, short", "abcDE1", 3, "Medium"},
		{"four checks", "abcdefG1", 4, "Strong"},
		{"all five", "abcdefG1!", 5, "Very Strong"},
		{"long digits only", "123456789", 2, "Weak"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := EvaluatePassword(tt.password)
			assert.Equal(t, tt.wantScore, got.Score.Value)
			assert.Equal(t, tt.wantLabel, got.Score.Label)
			assert.Len(t, got.Errors, 5-tt.wantScore)
		})
	}
}

func TestEvaluatePassword_SpecialCharacterSet(t *testing.T) {
	// Only @$!%*?& count as specials.
	withHash := EvaluatePassword("Abcdefg1#")
	assert.Equal(t, 4, withHash.Score.Value)
	assert.Contains(t, withHash.Errors, "Password must contain at least one special character (@$!%*?&)")

	withAmp := EvaluatePassword("Abcdefg1&")
	assert.Equal(t, 5, withAmp.Score.Value)
}

func TestPasswordPolicy_ValidateChange(t *testing.T) {
	policy := DefaultPasswordPolicy()

	t.Run("valid change passes", func(t *testing.T) {
		errs := policy.ValidateChange("OldPass1!", "NewPass1!", "NewPass1!")
		assert.Empty(t, errs)
	})

	t.Run("missing current password", func(t *testing.T) {
		errs := policy.ValidateChange("", "NewPass1!", "NewPass1!")
		assert.Equal(t, []string{"Current password is required"}, errs["current_password"])
	})

	t.Run("new password equals current", func(t *testing.T) {
		errs := policy.ValidateChange("SamePass1!", "SamePass1!", "SamePass1!")
		assert.Equal(t, []string{"New password must be different from your current password"}, errs["new_password"])
	})

	t.Run("weak new password reports strength errors", func(t *testing.T) {
		errs := policy.ValidateChange("OldPass1!", "weak", "weak")
		assert.NotEmpty(t, errs["new_password"])
	})

	t.Run("confirmation mismatch", func(t *testing.T) {
		errs := policy.ValidateChange("OldPass1!", "NewPass1!", "Different1!")
		assert.Equal(t, []string{"Passwords do not match"}, errs["new_password_confirmation"])
	})
}

func TestPasswordPolicy_CanSubmit(t *testing.T) {
	policy := DefaultPasswordPolicy()

	assert.False(t, policy.CanSubmit(""))
	assert.False(t, policy.CanSubmit("abcDEF")) // score 2
	assert.True(t, policy.CanSubmit("abcDE1"))  // score 3
	assert.True(t, policy.CanSubmit("Abcdef1!"))
}
