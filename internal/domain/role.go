package domain

import "fmt"

// Role represents a marketplace user role as issued by the REST API
type Role string

const (
	RoleAdmin    Role = "admin"
	RoleVendedor Role = "vendedor"
	RoleUsuario  Role = "usuario"
)

// ErrUnknownRole is returned by ParseRole for role names the client does not know
var ErrUnknownRole = fmt.Errorf("unknown role")

// ParseRole converts a wire role name into a Role
func ParseRole(name string) (Role, error) {
	switch Role(name) {
	case RoleAdmin:
		return RoleAdmin, nil
	case RoleVendedor:
		return RoleVendedor, nil
	case RoleUsuario:
		return RoleUsuario, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownRole, name)
	}
}

// RoleSet is the set of roles held by a session
type RoleSet map[Role]struct{}

// NewRoleSet builds a set from the given roles
func NewRoleSet(roles ...Role) RoleSet {
	set := make(RoleSet, len(roles))
	for _, role := range roles {
		set[role] = struct{}{}
	}
	return set
}

// ParseRoleSet converts wire role names into a set.
// Unknown names are skipped and returned separately so the caller can log them.
func ParseRoleSet(names []string) (RoleSet, []string) {
	set := make(RoleSet, len(names))
	var unknown []string
	for _, name := range names {
		role, err := ParseRole(name)
		if err != nil {
			unknown = append(unknown, name)
			continue
		}
		set[role] = struct{}{}
	}
	return set, unknown
}

// Has returns true if the role is a member of the set
func (s RoleSet) Has(role Role) bool {
	_, ok := s[role]
	return ok
}

// List returns the roles in a stable order
func (s RoleSet) List() []Role {
	out := make([]Role, 0, len(s))
	for _, role := range AllRoles {
		if s.Has(role) {
			out = append(out, role)
		}
	}
	return out
}

// Strings returns the role names in a stable order
func (s RoleSet) Strings() []string {
	out := make([]string, 0, len(s))
	for _, role := range AllRoles {
		if s.Has(role) {
			out = append(out, string(role))
		}
	}
	return out
}

// AllRoles lists every known role
var AllRoles = []Role{RoleAdmin, RoleVendedor, RoleUsuario}
