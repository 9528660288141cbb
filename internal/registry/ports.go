package registry

import (
	"context"

	"opendid/internal/credential"
	"opendid/internal/document"
	"opendid/internal/zkp"
	"opendid/pkg/domain"
)

//go:generate mockgen -source=ports.go -destination=mocks/mocks.go -package=mocks

// AccessControl answers and records role assignments.
type AccessControl interface {
	Grant(ctx context.Context, target domain.Address, label string) error
	HasRole(ctx context.Context, target domain.Address, label string) (bool, error)
	Roles(ctx context.Context, target domain.Address) ([]domain.Role, error)
}

// Store is the part every swappable handle shares.
type Store interface {
	ID() string
	Setup(ctx context.Context) error
	HasInitialized(ctx context.Context) (bool, error)
}

type DocumentStore interface {
	Store
	Register(ctx context.Context, doc document.Document, submitter domain.Address) error
	Update(ctx context.Context, doc document.Document, id, versionID string) error
	UpdateStatus(ctx context.Context, update document.StatusRecord, id string) error
	Get(ctx context.Context, id string) (document.Record, error)
	GetStatus(ctx context.Context, id string) (document.StatusRecord, error)
	Remove(ctx context.Context, id string) error
}

type CredentialStore interface {
	Store
	RegisterVcMeta(ctx context.Context, meta credential.VcMeta) error
	UpdateVcMetaStatus(ctx context.Context, id, status string) error
	GetVcMeta(ctx context.Context, id string) (credential.VcMeta, error)
	RegisterVcSchema(ctx context.Context, schema credential.VcSchema) error
	GetVcSchema(ctx context.Context, id string) (credential.VcSchema, error)
}

type ZKPStore interface {
	Store
	RegisterSchema(ctx context.Context, schema zkp.Schema) error
	GetSchema(ctx context.Context, id string) (zkp.Lookup[zkp.Schema], error)
	RemoveSchema(ctx context.Context, id string) error
	RegisterCredentialDefinition(ctx context.Context, def zkp.Definition) error
	GetCredentialDefinition(ctx context.Context, id string) (zkp.Lookup[zkp.Definition], error)
	RemoveCredentialDefinition(ctx context.Context, id string) error
}
