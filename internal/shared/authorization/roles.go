package authorization

type UserRole string

const (
	RoleAdmin   UserRole = "admin"
	RoleManager UserRole = "manager"
	RoleOwner   UserRole = "owner"
	RoleTenant  UserRole = "tenant"
	RoleAgent   UserRole = "agent"
	RoleService UserRole = "service"
)

func (r UserRole) String() string {
	return string(r)
}

func (r UserRole) IsAdmin() bool {
	return r == RoleAdmin
}

// IsStaff reports whether the role belongs to the operations side of the
// platform (people who work tickets rather than raise them).
func (r UserRole) IsStaff() bool {
	switch r {
	case RoleAdmin, RoleManager, RoleAgent, RoleService:
		return true
	}
	return false
}

func (r UserRole) IsValid() bool {
	switch r {
	case RoleAdmin, RoleManager, RoleOwner, RoleTenant, RoleAgent, RoleService:
		return true
	}
	return false
}

// ParseUserRole maps a stored role string to a UserRole. Legacy region
// variants of the admin role collapse into RoleAdmin. Unknown values pass
// through unchanged so IsValid reports them and callers reject rather than
// granting any default privilege.
func ParseUserRole(s string) UserRole {
	if s == "admin_uk" {
		return RoleAdmin
	}
	return UserRole(s)
}

func AllRoles() []UserRole {
	return []UserRole{RoleAdmin, RoleManager, RoleOwner, RoleTenant, RoleAgent, RoleService}
}
