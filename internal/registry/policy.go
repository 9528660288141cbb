package registry

import (
	"slices"
	"strings"

	"github.com/samber/lo"

	"opendid/pkg/domain"
	dErrors "opendid/pkg/domain-errors"
)

// Operation names a gated orchestrator operation.
type Operation string

const (
	OpRegisterRole                 Operation = "RegisterRole"
	OpRegisterDidDoc               Operation = "RegisterDidDoc"
	OpUpdateDidDoc                 Operation = "UpdateDidDoc"
	OpUpdateDidDocStatusInService  Operation = "UpdateDidDocStatusInService"
	OpUpdateDidDocStatusRevocation Operation = "UpdateDidDocStatusRevocation"
	OpRemoveDocument               Operation = "RemoveDocument"
	OpRegistVcMetaData             Operation = "RegistVcMetaData"
	OpUpdateVcMetaStatus           Operation = "UpdateVcMetaStatus"
	OpRegistVcSchema               Operation = "RegistVcSchema"
	OpRegistZKPCredential          Operation = "RegistZKPCredential"
	OpRemoveZKPCredential          Operation = "RemoveZKPCredential"
	OpRegistZKPDefinition          Operation = "RegistZKPCredentialDefinition"
	OpRemoveZKPDefinition          Operation = "RemoveZKPCredentialDefinition"
	OpSetStorage                   Operation = "SetStorage"
	OpUpgrade                      Operation = "Upgrade"
)

var gatedOperations = []Operation{
	OpRegisterRole,
	OpRegisterDidDoc,
	OpUpdateDidDoc,
	OpUpdateDidDocStatusInService,
	OpUpdateDidDocStatusRevocation,
	OpRemoveDocument,
	OpRegistVcMetaData,
	OpUpdateVcMetaStatus,
	OpRegistVcSchema,
	OpRegistZKPCredential,
	OpRemoveZKPCredential,
	OpRegistZKPDefinition,
	OpRemoveZKPDefinition,
	OpSetStorage,
	OpUpgrade,
}

// Policy is the replaceable behaviour of the orchestrator: which role each
// operation requires, tagged with a version. An empty role means the
// operation is open to any caller.
type Policy struct {
	Version      string                    `json:"version"`
	Requirements map[Operation]domain.Role `json:"requirements"`
}

// DefaultPolicy is the policy installed at initialization.
func DefaultPolicy(restrictRoleGrants bool) Policy {
	p := Policy{
		Version: "1.0.0",
		Requirements: map[Operation]domain.Role{
			OpRegisterDidDoc:               domain.RoleTas,
			OpUpdateDidDoc:                 domain.RoleTas,
			OpUpdateDidDocStatusInService:  domain.RoleTas,
			OpUpdateDidDocStatusRevocation: domain.RoleTas,
			OpRemoveDocument:               domain.RoleAdmin,
			OpRegistVcMetaData:             domain.RoleIssuer,
			OpUpdateVcMetaStatus:           domain.RoleIssuer,
			OpRegistVcSchema:               domain.RoleIssuer,
			OpRegistZKPCredential:          domain.RoleIssuer,
			OpRemoveZKPCredential:          domain.RoleIssuer,
			OpRegistZKPDefinition:          domain.RoleIssuer,
			OpRemoveZKPDefinition:          domain.RoleIssuer,
			OpSetStorage:                   domain.RoleAdmin,
			OpUpgrade:                      domain.RoleAdmin,
		},
	}
	if restrictRoleGrants {
		p.Requirements[OpRegisterRole] = domain.RoleAdmin
	}
	return p
}

// Required returns the role op needs, or "" when it is open.
func (p Policy) Required(op Operation) domain.Role {
	if op == OpUpgrade {
		return domain.RoleAdmin
	}
	return p.Requirements[op]
}

// Operations lists the operations the policy gates, sorted.
func (p Policy) Operations() []Operation {
	ops := lo.Keys(lo.PickBy(p.Requirements, func(_ Operation, r domain.Role) bool { return r != "" }))
	slices.Sort(ops)
	return ops
}

// Validate checks a proposed policy. Unknown operations are rejected and
// the upgrade requirement is pinned to Admin.
func (p Policy) Validate() error {
	if strings.TrimSpace(p.Version) == "" {
		return dErrors.New(dErrors.CodeInvalidInput, "policy version is required")
	}
	for op, role := range p.Requirements {
		if !slices.Contains(gatedOperations, op) {
			return dErrors.New(dErrors.CodeInvalidInput, "unknown operation in policy: "+string(op))
		}
		if op == OpUpgrade && role != domain.RoleAdmin {
			return dErrors.New(dErrors.CodeInvalidInput, "upgrade requirement cannot be changed")
		}
	}
	return nil
}

func (p Policy) clone() Policy {
	return Policy{Version: p.Version, Requirements: lo.Assign(p.Requirements)}
}
