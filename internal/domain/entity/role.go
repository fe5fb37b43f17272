// Package entity contains the core business objects of the project.
package entity

// Role is the free-form role label attached to an account, e.g. "admin" or "teacher".
type Role string

const (
	RoleAdmin   Role = "admin"
	RoleTeacher Role = "teacher"
	RoleParent  Role = "parent"
	RoleStudent Role = "student"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsKnown reports whether the label is one of the roles the school recognises.
// Unknown labels are still stored as given.
func (r Role) IsKnown() bool {
	switch r {
	case RoleAdmin, RoleTeacher, RoleParent, RoleStudent:
		return true
	default:
		return false
	}
}
