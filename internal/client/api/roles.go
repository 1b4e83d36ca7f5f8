package api

import "strings"

// Role is the closed set of user roles the client understands.
type Role string

const (
	RoleStudent    Role = "student"
	RoleSuperAdmin Role = "superadmin"
)

// ParseRole maps the server's roles string onto the closed Role set.
// Comparison is case-insensitive; anything that is not a recognised admin
// role is treated as a student.
func ParseRole(s string) Role {
	if strings.EqualFold(strings.TrimSpace(s), string(RoleSuperAdmin)) {
		return RoleSuperAdmin
	}
	return RoleStudent
}

func (r Role) String() string { return string(r) }

// IsAdmin reports whether the role grants access to the admin surface.
func (r Role) IsAdmin() bool { return r == RoleSuperAdmin }
