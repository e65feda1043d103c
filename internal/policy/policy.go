// Package policy decides whether a caller's role may perform an
// operation. It is deliberately transport-independent: handlers and
// middleware pass in the role string supplied by the upstream identity
// layer and get back a plain allow/deny.
package policy

// Roles recognized by the service.
const (
	RoleAttendee   = "attendee"
	RoleManager    = "manager"
	RoleSuperAdmin = "super_admin"
)

// Allow reports whether the actual role is one of the allowed roles.
func Allow(actual string, allowed ...string) bool {
	for _, role := range allowed {
		if actual == role {
			return true
		}
	}
	return false
}

// Known reports whether the role is one the service recognizes.
func Known(role string) bool {
	return role == RoleAttendee || role == RoleManager || role == RoleSuperAdmin
}
