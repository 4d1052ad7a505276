package domain

// Role is the tenant-scoped role of a user. There are exactly two values;
// anything else is rejected before it reaches a decision.
type Role string

const (
	RoleUser         Role = "user"
	RoleAccountAdmin Role = "account_admin"
)

// Valid reports whether r is one of the two known roles.
func (r Role) Valid() bool {
	return r == RoleUser || r == RoleAccountAdmin
}

// HasRole reports whether caller matches required. Both sides must be valid
// roles; an unknown role on either side is an ErrInvalidRole, not a mismatch.
// Unreachable with tokens we issued ourselves, but tokens are input.
func HasRole(caller, required Role) (bool, error) {
	if !caller.Valid() || !required.Valid() {
		return false, ErrInvalidRole
	}
	return caller == required, nil
}
