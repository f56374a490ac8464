package form

import (
	"context"
	"sync"

	"github.com/sithum-sy/hireme-client/internal/common"
	"github.com/sithum-sy/hireme-client/internal/validation"

	"go.uber.org/zap"
)

// ChangePasswordFunc is the container action behind the security form.
type ChangePasswordFunc func(ctx context.Context, current, newPassword, confirmation string) common.Result

// SecurityController is the password-change variant of a form controller.
// It recomputes strength on every keystroke, detects a confirmation mismatch
// from whichever of the two password fields changed last, and enforces the
// password policy at submit time. Password fields are never drafted.
type SecurityController struct {
	mu sync.Mutex

	current      string
	newPassword  string
	confirmation string

	strength     validation.PasswordStrength
	mismatch     bool
	localErrors  common.FieldErrors
	remoteErrors common.FieldErrors
	banner       string
	submitting   bool

	policy         validation.PasswordPolicy
	changePassword ChangePasswordFunc
	onSuccess      func()
	logger         *zap.Logger
}

// NewSecurityController creates the security form controller.
func NewSecurityController(policy validation.PasswordPolicy, change ChangePasswordFunc, onSuccess func(), logger *zap.Logger) *SecurityController {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SecurityController{
		strength:       validation.EvaluatePassword(""),
		policy:         policy,
		changePassword: change,
		onSuccess:      onSuccess,
		logger:         logger.Named("SecurityForm"),
	}
}

// SetCurrentPassword records the current-password field.
func (c *SecurityController) SetCurrentPassword(value string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.current = value
	c.clearField("current_password")
}

// SetNewPassword records the new-password field, recomputing strength and the
// confirmation mismatch.
func (c *SecurityController) SetNewPassword(value string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.newPassword = value
	c.strength = validation.EvaluatePassword(value)
	c.mismatch = c.confirmation != "" && c.confirmation != c.newPassword
	c.clearField("new_password")
	c.clearField("new_password_confirmation")
}

// SetConfirmation records the confirmation field, recomputing the mismatch.
func (c *SecurityController) SetConfirmation(value string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.confirmation = value
	c.mismatch = c.confirmation != "" && c.confirmation != c.newPassword
	c.clearField("new_password_confirmation")
}

func (c *SecurityController) clearField(field string) {
	if c.localErrors != nil {
		c.localErrors.Clear(field)
	}
	if c.remoteErrors != nil {
		c.remoteErrors.Clear(field)
	}
}

// Strength returns the live strength of the new password.
func (c *SecurityController) Strength() validation.PasswordStrength {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.strength
}

// Mismatch reports whether the confirmation currently disagrees with the new
// password.
func (c *SecurityController) Mismatch() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.mismatch
}

// CanSubmit gates the submit action: the strength score must reach the policy
// minimum and the confirmation must agree. Explicit submit-time validation
// remains authoritative; this only decides whether the button is enabled.
func (c *SecurityController) CanSubmit() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return !c.submitting && !c.mismatch && c.policy.CanSubmit(c.newPassword)
}

// Banner returns the general error from the last failed submit.
func (c *SecurityController) Banner() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.banner
}

// Errors returns the merged view of both error channels.
func (c *SecurityController) Errors() common.FieldErrors {
	c.mu.Lock()
	defer c.mu.Unlock()
	return common.MergeFieldErrors(c.localErrors, c.remoteErrors)
}

// Submit runs the full password policy and, if it passes, performs the change
// through the container action. On success all fields reset.
func (c *SecurityController) Submit(ctx context.Context) common.Result {
	c.mu.Lock()
	if c.submitting {
		c.mu.Unlock()
		return common.Fail("A password change is already in progress", nil)
	}

	localErrors := c.policy.ValidateChange(c.current, c.newPassword, c.confirmation)
	c.localErrors = localErrors
	if localErrors.HasErrors() {
		c.mu.Unlock()
		return common.Fail("Please fix the errors below", localErrors.Clone())
	}

	c.submitting = true
	current, newPassword, confirmation := c.current, c.newPassword, c.confirmation
	c.mu.Unlock()

	res := c.changePassword(ctx, current, newPassword, confirmation)

	c.mu.Lock()
	defer c.mu.Unlock()
	c.submitting = false

	if !res.Success {
		c.remoteErrors = res.Errors.Clone()
		c.banner = res.Message
		c.logger.Info("Password change failed", zap.String("message", res.Message))
		return res
	}

	c.current = ""
	c.newPassword = ""
	c.confirmation = ""
	c.strength = validation.EvaluatePassword("")
	c.mismatch = false
	c.localErrors = nil
	c.remoteErrors = nil
	c.banner = ""
	if c.onSuccess != nil {
		c.onSuccess()
	}
	return res
}
