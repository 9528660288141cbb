package registry

import (
	"context"
	"strconv"
	"time"

	"opendid/internal/credential"
	"opendid/internal/document"
	"opendid/internal/events"
	"opendid/internal/zkp"
	"opendid/pkg/domain"
	dErrors "opendid/pkg/domain-errors"
)

// RegisterRole grants label to target. Open to any caller unless the policy
// requires a role for it.
func (o *Orchestrator) RegisterRole(ctx context.Context, caller, target domain.Address, label string) error {
	return o.run(ctx, OpRegisterRole, caller, writeAccess, false, func(ctx context.Context) error {
		return o.access.Grant(ctx, target, label)
	})
}

func (o *Orchestrator) HasRole(ctx context.Context, target domain.Address, label string) (bool, error) {
	var ok bool
	err := o.run(ctx, OpHasRole, "", readAccess, false, func(ctx context.Context) error {
		var err error
		ok, err = o.access.HasRole(ctx, target, label)
		return err
	})
	return ok, err
}

func (o *Orchestrator) Roles(ctx context.Context, target domain.Address) ([]domain.Role, error) {
	var roles []domain.Role
	err := o.run(ctx, OpRoles, "", readAccess, false, func(ctx context.Context) error {
		var err error
		roles, err = o.access.Roles(ctx, target)
		return err
	})
	return roles, err
}

// RegisterDidDoc stores a new DID document submitted by caller.
func (o *Orchestrator) RegisterDidDoc(ctx context.Context, caller domain.Address, doc document.Document) error {
	return o.run(ctx, OpRegisterDidDoc, caller, writeAccess, true, func(ctx context.Context) error {
		if err := o.handles.Documents.Register(ctx, doc, caller); err != nil {
			return err
		}
		o.emit(ctx, events.DIDCreated, caller, doc.ID, map[string]string{"version": doc.VersionID})
		return nil
	})
}

func (o *Orchestrator) UpdateDidDoc(ctx context.Context, caller domain.Address, doc document.Document, versionID string) error {
	return o.run(ctx, OpUpdateDidDoc, caller, writeAccess, true, func(ctx context.Context) error {
		if err := o.handles.Documents.Update(ctx, doc, doc.ID, versionID); err != nil {
			return err
		}
		o.emit(ctx, events.DIDUpdated, caller, doc.ID, map[string]string{"version": versionID})
		return nil
	})
}

// GetDidDoc returns the document and its status.
//
// Errors: CodeNotFound ("Document is not exist") for unknown ids.
func (o *Orchestrator) GetDidDoc(ctx context.Context, id string) (document.Record, error) {
	var rec document.Record
	err := o.run(ctx, OpGetDidDoc, "", readAccess, true, func(ctx context.Context) error {
		var err error
		rec, err = o.handles.Documents.Get(ctx, id)
		if dErrors.HasCode(err, dErrors.CodeNotFound) {
			return dErrors.New(dErrors.CodeNotFound, "Document is not exist")
		}
		return err
	})
	return rec, err
}

func (o *Orchestrator) GetDidDocStatus(ctx context.Context, id string) (document.StatusRecord, error) {
	var st document.StatusRecord
	err := o.run(ctx, OpGetDidDocStatus, "", readAccess, true, func(ctx context.Context) error {
		var err error
		st, err = o.handles.Documents.GetStatus(ctx, id)
		return err
	})
	return st, err
}

// UpdateDidDocStatusInService moves the document to the status named by
// label and records versionID on its status.
func (o *Orchestrator) UpdateDidDocStatusInService(ctx context.Context, caller domain.Address, id, label, versionID string) error {
	status, err := document.ParseStatus(label)
	if err != nil {
		return err
	}
	return o.run(ctx, OpUpdateDidDocStatusInService, caller, writeAccess, true, func(ctx context.Context) error {
		update := document.StatusRecord{
			ID:       id,
			Status:   status,
			Version:  versionID,
			RoleType: string(o.policy.Required(OpUpdateDidDocStatusInService)),
		}
		return o.updateStatus(ctx, caller, update)
	})
}

// UpdateDidDocStatusRevocation moves the document to the status named by
// label and records terminatedTime, which must be an RFC 3339 timestamp.
// ACTIVE is not a revocation target.
func (o *Orchestrator) UpdateDidDocStatusRevocation(ctx context.Context, caller domain.Address, id, label, terminatedTime string) error {
	status, err := document.ParseStatus(label)
	if err != nil {
		return err
	}
	if status < document.StatusDeactivated {
		return dErrors.New(dErrors.CodeInvalidTransition, "revocation requires a status of DEACTIVATED or later")
	}
	if _, err := time.Parse(time.RFC3339, terminatedTime); err != nil {
		return dErrors.New(dErrors.CodeInvalidInput, "terminatedTime must be an RFC 3339 timestamp")
	}
	return o.run(ctx, OpUpdateDidDocStatusRevocation, caller, writeAccess, true, func(ctx context.Context) error {
		update := document.StatusRecord{
			ID:             id,
			Status:         status,
			RoleType:       string(o.policy.Required(OpUpdateDidDocStatusRevocation)),
			TerminatedTime: terminatedTime,
		}
		return o.updateStatus(ctx, caller, update)
	})
}

func (o *Orchestrator) updateStatus(ctx context.Context, caller domain.Address, update document.StatusRecord) error {
	if err := o.handles.Documents.UpdateStatus(ctx, update, update.ID); err != nil {
		return err
	}
	attrs := map[string]string{"status": update.Status.String()}
	if update.Version != "" {
		attrs["version"] = update.Version
	}
	if update.TerminatedTime != "" {
		attrs["terminatedTime"] = update.TerminatedTime
	}
	o.emit(ctx, events.DIDStatusUpdated, caller, update.ID, attrs)
	return nil
}

// RemoveDocument deletes a document and its status from the active store.
func (o *Orchestrator) RemoveDocument(ctx context.Context, caller domain.Address, id string) error {
	return o.run(ctx, OpRemoveDocument, caller, writeAccess, true, func(ctx context.Context) error {
		return o.handles.Documents.Remove(ctx, id)
	})
}

func (o *Orchestrator) RegistVcMetaData(ctx context.Context, caller domain.Address, meta credential.VcMeta) error {
	return o.run(ctx, OpRegistVcMetaData, caller, writeAccess, true, func(ctx context.Context) error {
		if err := o.handles.Credentials.RegisterVcMeta(ctx, meta); err != nil {
			return err
		}
		o.emit(ctx, events.VCIssued, caller, meta.ID, map[string]string{"issuerDid": meta.Issuer.DID})
		return nil
	})
}

func (o *Orchestrator) GetVcMetaData(ctx context.Context, id string) (credential.VcMeta, error) {
	var meta credential.VcMeta
	err := o.run(ctx, OpGetVcMetaData, "", readAccess, true, func(ctx context.Context) error {
		var err error
		meta, err = o.handles.Credentials.GetVcMeta(ctx, id)
		return err
	})
	return meta, err
}

func (o *Orchestrator) UpdateVcMetaStatus(ctx context.Context, caller domain.Address, id, label string) error {
	return o.run(ctx, OpUpdateVcMetaStatus, caller, writeAccess, true, func(ctx context.Context) error {
		if err := o.handles.Credentials.UpdateVcMetaStatus(ctx, id, label); err != nil {
			return err
		}
		o.emit(ctx, events.VCStatusUpdated, caller, id, map[string]string{"status": label})
		return nil
	})
}

func (o *Orchestrator) RegistVcSchema(ctx context.Context, caller domain.Address, schema credential.VcSchema) error {
	return o.run(ctx, OpRegistVcSchema, caller, writeAccess, true, func(ctx context.Context) error {
		if err := o.handles.Credentials.RegisterVcSchema(ctx, schema); err != nil {
			return err
		}
		o.emit(ctx, events.VCSchemaCreated, caller, schema.ID, nil)
		return nil
	})
}

func (o *Orchestrator) GetVcSchema(ctx context.Context, id string) (credential.VcSchema, error) {
	var schema credential.VcSchema
	err := o.run(ctx, OpGetVcSchema, "", readAccess, true, func(ctx context.Context) error {
		var err error
		schema, err = o.handles.Credentials.GetVcSchema(ctx, id)
		return err
	})
	return schema, err
}

func (o *Orchestrator) RegistZKPCredential(ctx context.Context, caller domain.Address, schema zkp.Schema) error {
	return o.run(ctx, OpRegistZKPCredential, caller, writeAccess, true, func(ctx context.Context) error {
		if err := o.handles.ZKP.RegisterSchema(ctx, schema); err != nil {
			return err
		}
		o.emit(ctx, events.ZKPCredentialCreated, caller, schema.ID, map[string]string{"name": schema.Name, "version": schema.Version})
		return nil
	})
}

// GetZKPCredential never fails on a miss; the Lookup outcome tells a
// removed schema from an unknown one.
func (o *Orchestrator) GetZKPCredential(ctx context.Context, id string) (zkp.Lookup[zkp.Schema], error) {
	var l zkp.Lookup[zkp.Schema]
	err := o.run(ctx, OpGetZKPCredential, "", readAccess, true, func(ctx context.Context) error {
		var err error
		l, err = o.handles.ZKP.GetSchema(ctx, id)
		return err
	})
	return l, err
}

func (o *Orchestrator) RemoveZKPCredential(ctx context.Context, caller domain.Address, id string) error {
	return o.run(ctx, OpRemoveZKPCredential, caller, writeAccess, true, func(ctx context.Context) error {
		if err := o.handles.ZKP.RemoveSchema(ctx, id); err != nil {
			return err
		}
		o.emit(ctx, events.ZKPCredentialRemoved, caller, id, nil)
		return nil
	})
}

func (o *Orchestrator) RegistZKPCredentialDefinition(ctx context.Context, caller domain.Address, def zkp.Definition) error {
	return o.run(ctx, OpRegistZKPDefinition, caller, writeAccess, true, func(ctx context.Context) error {
		if err := o.handles.ZKP.RegisterCredentialDefinition(ctx, def); err != nil {
			return err
		}
		o.emit(ctx, events.ZKPDefinitionCreated, caller, def.ID, map[string]string{"schemaId": def.SchemaID})
		return nil
	})
}

func (o *Orchestrator) GetZKPCredentialDefinition(ctx context.Context, id string) (zkp.Lookup[zkp.Definition], error) {
	var l zkp.Lookup[zkp.Definition]
	err := o.run(ctx, OpGetZKPDefinition, "", readAccess, true, func(ctx context.Context) error {
		var err error
		l, err = o.handles.ZKP.GetCredentialDefinition(ctx, id)
		return err
	})
	return l, err
}

func (o *Orchestrator) RemoveZKPCredentialDefinition(ctx context.Context, caller domain.Address, id string) error {
	return o.run(ctx, OpRemoveZKPDefinition, caller, writeAccess, true, func(ctx context.Context) error {
		if err := o.handles.ZKP.RemoveCredentialDefinition(ctx, id); err != nil {
			return err
		}
		o.emit(ctx, events.ZKPDefinitionRemoved, caller, id, nil)
		return nil
	})
}

// SetDocumentStorage points the orchestrator at next. Records in the
// previous store stay there and are no longer reachable.
func (o *Orchestrator) SetDocumentStorage(ctx context.Context, caller domain.Address, next DocumentStore) error {
	if next == nil {
		return dErrors.New(dErrors.CodeInvalidInput, "store handle is required")
	}
	return o.swap(ctx, caller, KindDocument, next, func() Store {
		prev := o.handles.Documents
		o.handles.Documents = next
		return prev
	})
}

func (o *Orchestrator) SetVcMetaStorage(ctx context.Context, caller domain.Address, next CredentialStore) error {
	if next == nil {
		return dErrors.New(dErrors.CodeInvalidInput, "store handle is required")
	}
	return o.swap(ctx, caller, KindVcMeta, next, func() Store {
		prev := o.handles.Credentials
		o.handles.Credentials = next
		return prev
	})
}

func (o *Orchestrator) SetZKPStorage(ctx context.Context, caller domain.Address, next ZKPStore) error {
	if next == nil {
		return dErrors.New(dErrors.CodeInvalidInput, "store handle is required")
	}
	return o.swap(ctx, caller, KindZKP, next, func() Store {
		prev := o.handles.ZKP
		o.handles.ZKP = next
		return prev
	})
}

// swap runs under the commit lock: assign replaces the handle and returns
// the previous one.
func (o *Orchestrator) swap(ctx context.Context, caller domain.Address, kind StorageKind, next Store, assign func() Store) error {
	return o.run(ctx, OpSetStorage, caller, writeAccess, true, func(ctx context.Context) error {
		if err := ensureSetup(ctx, next); err != nil {
			return err
		}
		prev := assign()
		o.generations[kind]++
		gen := o.generations[kind]
		o.metrics.SetGeneration(string(kind), gen)

		o.emit(ctx, events.StorageSwapped, caller, string(kind), map[string]string{
			"from":       prev.ID(),
			"to":         next.ID(),
			"generation": strconv.FormatUint(gen, 10),
		})
		o.logger.InfoContext(ctx, "store handle swapped",
			"kind", kind,
			"from", prev.ID(),
			"to", next.ID(),
			"generation", gen,
		)
		return nil
	})
}

// Upgrade replaces the active policy. Handles and stored records are kept.
// Only an Admin may upgrade, whatever the current policy says.
//
// Errors: CodeUnauthorized (AccessControlUnauthorizedAccount) for non-Admin
// callers; CodeInvalidInput for malformed policies.
func (o *Orchestrator) Upgrade(ctx context.Context, caller domain.Address, next Policy) error {
	return o.run(ctx, OpUpgrade, caller, writeAccess, true, func(ctx context.Context) error {
		if err := next.Validate(); err != nil {
			return err
		}
		prev := o.policy.Version
		o.policy = next.clone()
		o.policy.Requirements[OpUpgrade] = domain.RoleAdmin
		o.metrics.IncrementUpgrades()

		o.emit(ctx, events.Upgraded, caller, "registry", map[string]string{
			"from": prev,
			"to":   o.policy.Version,
		})
		o.logger.InfoContext(ctx, "registry policy upgraded", "from", prev, "to", o.policy.Version)
		return nil
	})
}
