// Package form implements the per-section form controllers: local form state,
// live validation, draft autosave, and submission through a container action.
// A controller is a small state machine:
//
//	Viewing -> Editing(clean) -> Editing(dirty) -> Submitting
//	Submitting -> Viewing on success, back to Editing(dirty) on failure
package form

import (
	"context"
	"sync"
	"time"

	"github.com/sithum-sy/hireme-client/internal/common"
	"github.com/sithum-sy/hireme-client/internal/draft"
	"github.com/sithum-sy/hireme-client/internal/validation"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// State of a form section.
type State int

const (
	Viewing State = iota
	Editing
	Submitting
)

func (s State) String() string {
	switch s {
	case Viewing:
		return "viewing"
	case Editing:
		return "editing"
	case Submitting:
		return "submitting"
	default:
		return "unknown"
	}
}

// SubmitFunc is the container action a controller calls on a passing submit.
type SubmitFunc func(ctx context.Context, values map[string]interface{}) common.Result

// Options configure a Controller.
type Options struct {
	UserID   uuid.UUID
	Section  string
	Schema   validation.Schema
	Initial  validation.Values // entity's current values
	Drafts   *draft.Service    // nil disables autosave (security forms)
	Submit   SubmitFunc
	OnSubmit func() // success callback supplied by the embedding view
	Debounce time.Duration
	Logger   *zap.Logger
}

// Controller owns one section's form state.
type Controller struct {
	mu sync.Mutex

	userID  uuid.UUID
	section string
	schema  validation.Schema

	state    State
	values   validation.Values
	original validation.Values
	dirty    bool

	// Two independent error channels: synchronous local validation and
	// per-field errors the backend reported on the last failed submit.
	localErrors  common.FieldErrors
	remoteErrors common.FieldErrors
	banner       string

	drafts    *draft.Service
	timer     *autosaveTimer
	submit    SubmitFunc
	onSubmit  func()
	logger    *zap.Logger
}

// NewController builds the controller and runs the mount transition: initial
// values are the entity's current values overlaid by any saved draft (the
// draft wins conflicts), and the section enters Editing when it has at least
// one editable field.
func NewController(ctx context.Context, opts Options) *Controller {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	c := &Controller{
		userID:   opts.UserID,
		section:  opts.Section,
		schema:   opts.Schema,
		state:    Viewing,
		values:   cloneValues(opts.Initial),
		original: cloneValues(opts.Initial),
		drafts:   opts.Drafts,
		timer:    newAutosaveTimer(opts.Debounce),
		submit:   opts.Submit,
		onSubmit: opts.OnSubmit,
		logger:   logger.Named("FormController").With(zap.String("section", opts.Section)),
	}
	if c.values == nil {
		c.values = make(validation.Values)
	}
	if c.original == nil {
		c.original = make(validation.Values)
	}

	if c.hasEditableFields() {
		c.state = Editing
	}

	if c.drafts != nil {
		if saved := c.drafts.Load(ctx, c.userID, c.section); saved != nil {
			for field, value := range saved {
				c.values[field] = value
			}
			c.dirty = true
			c.logger.Debug("Restored draft on mount", zap.Int("fields", len(saved)))
		}
	}

	return c
}

func (c *Controller) hasEditableFields() bool {
	for _, rule := range c.schema.Fields {
		if !rule.ReadOnly {
			return true
		}
	}
	return false
}

// State returns the current machine state.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Dirty reports whether there are unsaved edits.
func (c *Controller) Dirty() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.dirty
}

// Value returns the current value of one field.
func (c *Controller) Value(field string) interface{} {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.values[field]
}

// Values returns a snapshot of the current form values.
func (c *Controller) Values() validation.Values {
	c.mu.Lock()
	defer c.mu.Unlock()
	return cloneValues(c.values)
}

// Banner returns the general error message from the last failed submit.
func (c *Controller) Banner() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.banner
}

// Errors returns the merged view of both error channels; local validation
// messages shadow backend ones per field.
func (c *Controller) Errors() common.FieldErrors {
	c.mu.Lock()
	defer c.mu.Unlock()
	return common.MergeFieldErrors(c.localErrors, c.remoteErrors)
}

// SetField records an edit: marks the form dirty, clears both error channels
// for that field, runs live validation, and (re)schedules the draft autosave.
func (c *Controller) SetField(field string, value interface{}) {
	c.mu.Lock()
	if c.state != Editing {
		c.mu.Unlock()
		return
	}

	c.values[field] = value
	c.dirty = true
	if c.localErrors != nil {
		c.localErrors.Clear(field)
	}
	if c.remoteErrors != nil {
		c.remoteErrors.Clear(field)
	}

	if rule, ok := c.schema.Fields[field]; ok && !rule.ReadOnly {
		if errs := c.liveValidate(field, rule); len(errs) > 0 {
			if c.localErrors == nil {
				c.localErrors = make(common.FieldErrors)
			}
			c.localErrors[field] = errs
		}
	}

	snapshot := cloneValues(c.values)
	c.mu.Unlock()

	if c.drafts != nil {
		c.timer.Schedule(func() {
			c.drafts.Save(context.Background(), c.userID, c.section, snapshot)
		})
	}
}

func (c *Controller) liveValidate(field string, rule validation.FieldRule) []string {
	switch rule.Kind {
	case validation.KindFile:
		return validation.ValidateFile(c.values.File(field), rule)
	case validation.KindFileList:
		return validation.ValidateFiles(c.values.Files(field), rule)
	default:
		return validation.ValidateField(c.values.Scalar(field), rule)
	}
}

// Submit runs full validation and, if it passes, hands the values to the
// container action. On validation errors the form stays in Editing and no
// network call happens. On action failure the backend's field errors and
// banner message land in state and the form stays editable.
func (c *Controller) Submit(ctx context.Context) common.Result {
	c.mu.Lock()
	if c.state != Editing {
		c.mu.Unlock()
		return common.Fail("Form is not editable", nil)
	}

	// Each validation pass replaces the whole local channel.
	localErrors := validation.ValidateForm(c.values, c.schema)
	c.localErrors = localErrors
	if localErrors.HasErrors() {
		c.mu.Unlock()
		return common.Fail("Please fix the errors below", localErrors.Clone())
	}

	c.state = Submitting
	snapshot := cloneValues(c.values)
	c.mu.Unlock()

	res := c.submit(ctx, snapshot)

	c.mu.Lock()
	if !res.Success {
		c.state = Editing
		c.remoteErrors = res.Errors.Clone()
		c.banner = res.Message
		c.mu.Unlock()
		c.logger.Info("Submit failed", zap.String("message", res.Message))
		return res
	}

	c.state = Viewing
	c.dirty = false
	c.localErrors = nil
	c.remoteErrors = nil
	c.banner = ""
	c.original = cloneValues(c.values)
	callback := c.onSubmit
	c.mu.Unlock()

	c.timer.Stop()
	if c.drafts != nil {
		c.drafts.Clear(ctx, c.userID, c.section)
	}
	if callback != nil {
		callback()
	}
	return res
}

// Reset discards unsaved edits after interactive confirmation: original
// entity values are restored, the dirty flag and both error channels clear,
// and the draft is removed. Returns whether the reset happened.
func (c *Controller) Reset(ctx context.Context, confirm func() bool) bool {
	if confirm != nil && !confirm() {
		return false
	}

	c.mu.Lock()
	c.values = cloneValues(c.original)
	c.dirty = false
	c.localErrors = nil
	c.remoteErrors = nil
	c.banner = ""
	if c.state == Submitting {
		c.state = Editing
	}
	c.mu.Unlock()

	c.timer.Stop()
	if c.drafts != nil {
		c.drafts.Clear(ctx, c.userID, c.section)
	}
	return true
}

// Close releases the autosave timer. Call on unmount; no draft write can
// fire afterwards.
func (c *Controller) Close() {
	c.timer.Close()
}

func cloneValues(v validation.Values) validation.Values {
	if v == nil {
		return nil
	}
	out := make(validation.Values, len(v))
	for k, val := range v {
		out[k] = val
	}
	return out
}
