package form

import (
	"github.com/sithum-sy/hireme-client/internal/shared"
	"github.com/sithum-sy/hireme-client/internal/validation"
)

// ApplyPermissions narrows a section schema to what the role-based permission
// config allows: hidden fields are dropped, non-editable fields are marked
// read-only. The mount transition then derives the section state from the
// resulting rules, so a section whose every field the role may only view
// mounts in Viewing. A nil config (not yet fetched) leaves the schema as is.
func ApplyPermissions(schema validation.Schema, perms *shared.PermissionConfig) validation.Schema {
	if perms == nil {
		return schema
	}

	out := validation.Schema{Fields: make(map[string]validation.FieldRule, len(schema.Fields))}
	for name, rule := range schema.Fields {
		if !perms.CanViewField(name) {
			continue
		}
		if !perms.CanEditField(name) {
			rule.ReadOnly = true
		}
		out.Fields[name] = rule
	}
	return out
}
