package validation

import (
	"fmt"
	"strconv"

	"github.com/sithum-sy/hireme-client/internal/common"
)

// Values holds the current form state. Scalar fields map to strings (or
// anything stringable — drafts round-trip through JSON, so numbers come back
// as float64); file fields map to *FileMeta or []FileMeta.
type Values map[string]interface{}

// Scalar coerces a form value to its string form.
func (v Values) Scalar(field string) string {
	raw, ok := v[field]
	if !ok || raw == nil {
		return ""
	}
	switch val := raw.(type) {
	case string:
		return val
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case int:
		return strconv.Itoa(val)
	case bool:
		return strconv.FormatBool(val)
	default:
		return fmt.Sprintf("%v", val)
	}
}

// File extracts a single-file value, tolerating both pointer and value forms.
func (v Values) File(field string) *FileMeta {
	switch val := v[field].(type) {
	case *FileMeta:
		return val
	case FileMeta:
		return &val
	default:
		return nil
	}
}

// Files extracts a multi-file value.
func (v Values) Files(field string) []FileMeta {
	if val, ok := v[field].([]FileMeta); ok {
		return val
	}
	return nil
}

// Schema declares the fields of one form section.
type Schema struct {
	Fields map[string]FieldRule
}

// ValidateForm applies every field's rule to the corresponding value.
// Read-only fields are skipped entirely: never validated, never reported.
// A field appears in the result only if it produced at least one message.
func ValidateForm(values Values, schema Schema) common.FieldErrors {
	result := make(common.FieldErrors)

	for name, rule := range schema.Fields {
		if rule.ReadOnly {
			continue
		}

		var errs []string
		switch rule.Kind {
		case KindText, KindEmail, KindNumber:
			errs = ValidateField(values.Scalar(name), rule)
		case KindFile:
			errs = ValidateFile(values.File(name), rule)
		case KindFileList:
			errs = ValidateFiles(values.Files(name), rule)
		}

		if len(errs) > 0 {
			result[name] = errs
		}
	}

	return result
}

// HasFormErrors reports whether the map holds any non-empty error list.
func HasFormErrors(errs common.FieldErrors) bool {
	return errs.HasErrors()
}
