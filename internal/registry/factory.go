package registry

import (
	"database/sql"
	"log/slog"

	"opendid/internal/credential"
	vcstore "opendid/internal/credential/store"
	"opendid/internal/document"
	docstore "opendid/internal/document/store"
	"opendid/internal/events"
	"opendid/internal/zkp"
	zkpstore "opendid/internal/zkp/store"
	dErrors "opendid/pkg/domain-errors"
)

// Backend selects where a new store keeps its records.
type Backend string

const (
	BackendMemory   Backend = "memory"
	BackendPostgres Backend = "postgres"
)

func ParseBackend(s string) (Backend, error) {
	switch Backend(s) {
	case BackendMemory, BackendPostgres:
		return Backend(s), nil
	}
	return "", dErrors.New(dErrors.CodeInvalidInput, "unknown storage backend: "+s)
}

// Factory builds fresh store instances. Every instance gets its own
// namespace, so a new Postgres store starts empty even on a shared database.
type Factory struct {
	db      *sql.DB
	emitter events.Emitter
	logger  *slog.Logger
}

func NewFactory(db *sql.DB, emitter events.Emitter, logger *slog.Logger) *Factory {
	if emitter == nil {
		emitter = events.Discard{}
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Factory{db: db, emitter: emitter, logger: logger}
}

func (f *Factory) Documents(backend Backend) (DocumentStore, error) {
	var repo document.Repository
	switch backend {
	case BackendMemory:
		repo = docstore.NewInMemory()
	case BackendPostgres:
		if f.db == nil {
			return nil, errNoDatabase
		}
		repo = docstore.NewPostgres(f.db)
	default:
		return nil, dErrors.New(dErrors.CodeInvalidInput, "unknown storage backend: "+string(backend))
	}
	return document.New(repo, document.WithEmitter(f.emitter), document.WithLogger(f.logger)), nil
}

func (f *Factory) Credentials(backend Backend) (CredentialStore, error) {
	var repo credential.Repository
	switch backend {
	case BackendMemory:
		repo = vcstore.NewInMemory()
	case BackendPostgres:
		if f.db == nil {
			return nil, errNoDatabase
		}
		repo = vcstore.NewPostgres(f.db)
	default:
		return nil, dErrors.New(dErrors.CodeInvalidInput, "unknown storage backend: "+string(backend))
	}
	return credential.New(repo, credential.WithEmitter(f.emitter), credential.WithLogger(f.logger)), nil
}

func (f *Factory) ZKP(backend Backend) (ZKPStore, error) {
	var repo zkp.Repository
	switch backend {
	case BackendMemory:
		repo = zkpstore.NewInMemory()
	case BackendPostgres:
		if f.db == nil {
			return nil, errNoDatabase
		}
		repo = zkpstore.NewPostgres(f.db)
	default:
		return nil, dErrors.New(dErrors.CodeInvalidInput, "unknown storage backend: "+string(backend))
	}
	return zkp.New(repo, zkp.WithEmitter(f.emitter), zkp.WithLogger(f.logger)), nil
}

// Handles builds one store of each kind on backend.
func (f *Factory) Handles(backend Backend) (Handles, error) {
	docs, err := f.Documents(backend)
	if err != nil {
		return Handles{}, err
	}
	creds, err := f.Credentials(backend)
	if err != nil {
		return Handles{}, err
	}
	proofs, err := f.ZKP(backend)
	if err != nil {
		return Handles{}, err
	}
	return Handles{Documents: docs, Credentials: creds, ZKP: proofs}, nil
}

// Attach reopens the Postgres stores named by namespace so a restarted
// server sees the records written before. Stores created by the swap
// endpoint get fresh namespaces and are not reattached.
func (f *Factory) Attach(namespace string) (Handles, error) {
	if f.db == nil {
		return Handles{}, errNoDatabase
	}
	if namespace == "" {
		return Handles{}, dErrors.New(dErrors.CodeInvalidInput, "store namespace is required")
	}
	return Handles{
		Documents: document.New(docstore.NewPostgresWithID(f.db, namespace+":"+string(KindDocument)),
			document.WithEmitter(f.emitter), document.WithLogger(f.logger)),
		Credentials: credential.New(vcstore.NewPostgresWithID(f.db, namespace+":"+string(KindVcMeta)),
			credential.WithEmitter(f.emitter), credential.WithLogger(f.logger)),
		ZKP: zkp.New(zkpstore.NewPostgresWithID(f.db, namespace+":"+string(KindZKP)),
			zkp.WithEmitter(f.emitter), zkp.WithLogger(f.logger)),
	}, nil
}

var errNoDatabase = dErrors.New(dErrors.CodePrecondition, "postgres backend is not configured")
