package authorization

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseUserRole_ValidRoles(t *testing.T) {
	for _, role := range AllRoles() {
		t.Run(role.String(), func(t *testing.T) {
			assert.Equal(t, role, ParseUserRole(role.String()))
		})
	}
}

// TestParseUserRole_LegacyAdminVariant verifies the regional admin role
// stored by older deployments collapses into the canonical admin role.
func TestParseUserRole_LegacyAdminVariant(t *testing.T) {
	assert.Equal(t, RoleAdmin, ParseUserRole("admin_uk"))
}

// TestParseUserRole_UnknownStaysInvalid verifies an unrecognized role is
// not coerced to any known role; it must fail IsValid so allow-lists and
// list dispatch treat the caller as having no privileges.
func TestParseUserRole_UnknownStaysInvalid(t *testing.T) {
	for _, s := range []string{"superuser", "root", "", "Tenant"} {
		t.Run(s, func(t *testing.T) {
			role := ParseUserRole(s)
			assert.False(t, role.IsValid())
			assert.NotEqual(t, RoleTenant, role)
		})
	}
}

func TestUserRole_IsStaff(t *testing.T) {
	tests := []struct {
		role  UserRole
		staff bool
	}{
		{RoleAdmin, true},
		{RoleManager, true},
		{RoleAgent, true},
		{RoleService, true},
		{RoleOwner, false},
		{RoleTenant, false},
		{UserRole("superuser"), false},
	}

	for _, tt := range tests {
		t.Run(tt.role.String(), func(t *testing.T) {
			assert.Equal(t, tt.staff, tt.role.IsStaff())
		})
	}
}
