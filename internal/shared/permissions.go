package shared

// PermissionConfig is the role-based field visibility/editability map the
// backend issues once per session. The form layer only reads it.
type PermissionConfig struct {
	CanEdit  map[string]bool `json:"can_edit"`
	CanView  map[string]bool `json:"can_view"`
	ReadOnly map[string]bool `json:"read_only"`
}

// CanEditField reports whether the current role may change the field.
// Fields in the ReadOnly set are never editable regardless of CanEdit.
func (p *PermissionConfig) CanEditField(field string) bool {
	if p == nil {
		return false
	}
	if p.ReadOnly[field] {
		return false
	}
	return p.CanEdit[field]
}

// CanViewField reports whether the field should render at all.
func (p *PermissionConfig) CanViewField(field string) bool {
	if p == nil {
		return false
	}
	return p.CanView[field]
}

// EditableFields lists the fields of the given set the role may change.
func (p *PermissionConfig) EditableFields(fields []string) []string {
	var editable []string
	for _, f := range fields {
		if p.CanEditField(f) {
			editable = append(editable, f)
		}
	}
	return editable
}

// HasEditableFields reports whether any of the given section fields is
// editable, e.g. for deciding whether to render an edit affordance at all.
// Controllers themselves derive the mount state from schema rules; see
// form.ApplyPermissions for the bridge.
func (p *PermissionConfig) HasEditableFields(fields []string) bool {
	for _, f := range fields {
		if p.CanEditField(f) {
			return true
		}
	}
	return false
}
