package constants

// UserRole is the pilot's role within the logbook. Admins can read every
// user's flights and the audit trail; pilots only their own.
type UserRole string

const (
	RolePilot UserRole = "PILOT"
	RoleAdmin UserRole = "ADMIN"
)

func (r UserRole) IsAdmin() bool {
	return r == RoleAdmin
}
