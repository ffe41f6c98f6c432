package domain

import "fmt"

// Role is a capability class. The set is closed; use AllRoles to iterate it.
type Role uint8

const (
	RoleDefaultAdmin Role = iota + 1 // super-admin, administers itself and by default every other role
	RoleAdmin
	RoleInvestor
	RoleAuditor
	RoleCompliance
	RoleRegulator
)

// AllRoles lists every role in declaration order.
var AllRoles = []Role{RoleDefaultAdmin, RoleAdmin, RoleInvestor, RoleAuditor, RoleCompliance, RoleRegulator}

var roleNames = map[Role]string{
	RoleDefaultAdmin: "DEFAULT_ADMIN",
	RoleAdmin:        "ADMIN",
	RoleInvestor:     "INVESTOR",
	RoleAuditor:      "AUDITOR",
	RoleCompliance:   "COMPLIANCE",
	RoleRegulator:    "REGULATOR",
}

func (r Role) String() string {
	if name, ok := roleNames[r]; ok {
		return name
	}
	return fmt.Sprintf("ROLE(%d)", uint8(r))
}

// Valid reports whether r is one of the declared roles.
func (r Role) Valid() bool {
	_, ok := roleNames[r]
	return ok
}

// ParseRole maps a role name back to its Role.
func ParseRole(name string) (Role, bool) {
	for role, n := range roleNames {
		if n == name {
			return role, true
		}
	}
	return 0, false
}

// RoleAssignment is a single (role, account) grant.
type RoleAssignment struct {
	Role    Role    `json:"role"`
	Account Address `json:"account"`
}

// MarshalText encodes the role by name.
func (r Role) MarshalText() ([]byte, error) {
	if !r.Valid() {
		return nil, fmt.Errorf("unknown role %d", uint8(r))
	}
	return []byte(r.String()), nil
}

// UnmarshalText decodes a role name.
func (r *Role) UnmarshalText(text []byte) error {
	role, ok := ParseRole(string(text))
	if !ok {
		return fmt.Errorf("unknown role %q", string(text))
	}
	*r = role
	return nil
}
