package domain

import (
	dErrors "opendid/pkg/domain-errors"
)

// Role is a capability label granted to an Address.
// Labels are case-sensitive. The known roles form a closed set; unknown
// labels are tolerated as custom roles unless strict parsing is requested.
type Role string

const (
	RoleAdmin  Role = "Admin"
	RoleTas    Role = "Tas"
	RoleIssuer Role = "Issuer"
)

// knownRoles is the single source of truth for built-in roles.
var knownRoles = map[string]Role{
	"Admin":  RoleAdmin,
	"Tas":    RoleTas,
	"Issuer": RoleIssuer,
}

// ParseRole maps an external label onto a Role.
//
// Errors: CodeInvalidInput when the label is empty, or when strict is set and
// the label is not a built-in role. The second return value reports whether
// the label is a built-in role.
func ParseRole(label string, strict bool) (Role, bool, error) {
	if label == "" {
		return "", false, dErrors.New(dErrors.CodeInvalidInput, "Role type cannot be empty")
	}
	if r, ok := knownRoles[label]; ok {
		return r, true, nil
	}
	if strict {
		return "", false, dErrors.New(dErrors.CodeInvalidInput, "unknown role: "+label)
	}
	return Role(label), false, nil
}

// IsKnown reports whether r is a built-in role.
func (r Role) IsKnown() bool {
	_, ok := knownRoles[string(r)]
	return ok
}

func (r Role) String() string {
	return string(r)
}

// KnownRoles lists the built-in roles in a stable order.
func KnownRoles() []Role {
	return []Role{RoleAdmin, RoleTas, RoleIssuer}
}
