package model

// Role is the closed set of staff roles. The role string is embedded in the
// session token and drives both route gating and ledger row routing, so
// unknown values are rejected at user creation instead of silently falling
// through to a default.
type Role string

const (
	RoleAdmin             Role = "admin"
	RoleProductManagement Role = "Product Management"
	RoleWasteManagement   Role = "Waste Management"
)

// AllRoles lists every valid role.
var AllRoles = []Role{RoleAdmin, RoleProductManagement, RoleWasteManagement}

// Valid reports whether r is a member of the closed role set.
func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleProductManagement, RoleWasteManagement:
		return true
	}
	return false
}

func (r Role) String() string {
	return string(r)
}
