package shared

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPermissionConfig_ReadOnlyWinsOverCanEdit(t *testing.T) {
	cfg := &PermissionConfig{
		CanEdit:  map[string]bool{"email": true, "first_name": true},
		CanView:  map[string]bool{"email": true, "first_name": true},
		ReadOnly: map[string]bool{"email": true},
	}

	assert.True(t, cfg.CanEditField("first_name"))
	assert.False(t, cfg.CanEditField("email"))
	assert.False(t, cfg.CanEditField("unknown"))
	assert.True(t, cfg.CanViewField("email"))
}

func TestPermissionConfig_NilIsLockedDown(t *testing.T) {
	var cfg *PermissionConfig
	assert.False(t, cfg.CanEditField("anything"))
	assert.False(t, cfg.CanViewField("anything"))
}

func TestPermissionConfig_EditableFields(t *testing.T) {
	cfg := &PermissionConfig{
		CanEdit:  map[string]bool{"a": true, "b": true},
		ReadOnly: map[string]bool{"b": true},
	}

	fields := []string{"a", "b", "c"}
	assert.Equal(t, []string{"a"}, cfg.EditableFields(fields))
	assert.True(t, cfg.HasEditableFields(fields))
	assert.False(t, cfg.HasEditableFields([]string{"b", "c"}))
}
