package form

import (
	"context"
	"testing"

	"github.com/sithum-sy/hireme-client/internal/shared"
	"github.com/sithum-sy/hireme-client/internal/validation"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyPermissions(t *testing.T) {
	schema := validation.Schema{Fields: map[string]validation.FieldRule{
		"business_name": {Label: "Business name", Required: true},
		"email":         {Label: "Email", Kind: validation.KindEmail},
		"internal_note": {Label: "Internal note"},
	}}
	perms := &shared.PermissionConfig{
		CanView:  map[string]bool{"business_name": true, "email": true},
		CanEdit:  map[string]bool{"business_name": true, "email": true},
		ReadOnly: map[string]bool{"email": true},
	}

	narrowed := ApplyPermissions(schema, perms)

	require.Len(t, narrowed.Fields, 2, "Hidden fields are dropped")
	assert.NotContains(t, narrowed.Fields, "internal_note")
	assert.False(t, narrowed.Fields["business_name"].ReadOnly)
	assert.True(t, narrowed.Fields["email"].ReadOnly, "ReadOnly set wins over CanEdit")

	// The input schema is untouched.
	assert.False(t, schema.Fields["email"].ReadOnly)
}

func TestApplyPermissions_NilConfigLeavesSchema(t *testing.T) {
	schema := validation.Schema{Fields: map[string]validation.FieldRule{
		"bio": {Label: "Bio"},
	}}
	assert.Equal(t, schema, ApplyPermissions(schema, nil))
}

func TestController_MountsViewingWhenPermissionsAllowNoEdits(t *testing.T) {
	perms := &shared.PermissionConfig{
		CanView: map[string]bool{"business_name": true, "bio": true, "email": true},
		CanEdit: map[string]bool{},
	}

	c := NewController(context.Background(), Options{
		UserID:  uuid.New(),
		Section: "business",
		Schema:  ApplyPermissions(businessSchema(), perms),
		Submit:  okSubmit(nil),
	})
	defer c.Close()

	assert.Equal(t, Viewing, c.State())
}
