// Package credential stores verifiable credential metadata and VC schemas.
// Registration overwrites by id.
package credential

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"opendid/internal/events"
	dErrors "opendid/pkg/domain-errors"
	"opendid/pkg/platform/sentinel"
	"opendid/pkg/requestcontext"
)

//go:generate mockgen -source=service.go -destination=mocks/mocks.go -package=mocks

// Repository persists metadata and schemas for one store instance.
type Repository interface {
	ID() string
	MarkSetup(ctx context.Context) (bool, error)
	IsSetup(ctx context.Context) (bool, error)
	// PutMeta inserts or overwrites.
	PutMeta(ctx context.Context, meta VcMeta) error
	// FindMeta returns sentinel.ErrNotFound when the id is absent.
	FindMeta(ctx context.Context, id string) (*VcMeta, error)
	// SetMetaStatus returns sentinel.ErrNotFound when the id is absent.
	SetMetaStatus(ctx context.Context, id, status string) error
	PutSchema(ctx context.Context, schema VcSchema) error
	FindSchema(ctx context.Context, id string) (*VcSchema, error)
}

type Service struct {
	repo    Repository
	emitter events.Emitter
	logger  *slog.Logger
}

type Option func(*Service)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

func WithEmitter(e events.Emitter) Option {
	return func(s *Service) {
		s.emitter = e
	}
}

func New(repo Repository, opts ...Option) *Service {
	s := &Service{repo: repo, emitter: events.Discard{}, logger: slog.Default()}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Service) ID() string {
	return s.repo.ID()
}

func (s *Service) Setup(ctx context.Context) error {
	ok, err := s.repo.MarkSetup(ctx)
	if err != nil {
		return dErrors.Wrap(err, dErrors.CodeInternal, "failed to set up vc meta store")
	}
	if !ok {
		return dErrors.New(dErrors.CodePrecondition, "vc meta store already initialized")
	}
	s.emit(ctx, events.VcMetaStorageSetup, s.repo.ID(), nil)
	return nil
}

func (s *Service) HasInitialized(ctx context.Context) (bool, error) {
	ok, err := s.repo.IsSetup(ctx)
	if err != nil {
		return false, dErrors.Wrap(err, dErrors.CodeInternal, "failed to read vc meta store state")
	}
	return ok, nil
}

// RegisterVcMeta stores meta, replacing any record with the same id.
func (s *Service) RegisterVcMeta(ctx context.Context, meta VcMeta) error {
	if err := meta.Validate(); err != nil {
		return err
	}
	if err := s.repo.PutMeta(ctx, meta); err != nil {
		return dErrors.Wrap(err, dErrors.CodeInternal, "failed to register vc meta")
	}
	s.emit(ctx, events.VcMetaRegistered, meta.ID, map[string]string{"issuer": meta.Issuer.DID})
	return nil
}

// UpdateVcMetaStatus overwrites the status label of id.
//
// Errors: CodeNotFound for unknown ids.
func (s *Service) UpdateVcMetaStatus(ctx context.Context, id, status string) error {
	if strings.TrimSpace(status) == "" {
		return dErrors.New(dErrors.CodeInvalidInput, "status is required")
	}
	if err := s.repo.SetMetaStatus(ctx, id, status); err != nil {
		return translate(err, "VcMeta does not exist", "failed to update vc meta status")
	}
	return nil
}

func (s *Service) GetVcMeta(ctx context.Context, id string) (VcMeta, error) {
	meta, err := s.repo.FindMeta(ctx, id)
	if err != nil {
		return VcMeta{}, translate(err, "VcMeta does not exist", "failed to load vc meta")
	}
	return *meta, nil
}

// RegisterVcSchema stores schema, replacing any schema with the same id.
func (s *Service) RegisterVcSchema(ctx context.Context, schema VcSchema) error {
	if err := schema.Validate(); err != nil {
		return err
	}
	if err := s.repo.PutSchema(ctx, schema); err != nil {
		return dErrors.Wrap(err, dErrors.CodeInternal, "failed to register vc schema")
	}
	s.emit(ctx, events.VcSchemaRegistered, schema.ID, nil)
	return nil
}

func (s *Service) GetVcSchema(ctx context.Context, id string) (VcSchema, error) {
	schema, err := s.repo.FindSchema(ctx, id)
	if err != nil {
		return VcSchema{}, translate(err, "VcSchema does not exist", "failed to load vc schema")
	}
	return *schema, nil
}

func translate(err error, missing, internal string) error {
	if errors.Is(err, sentinel.ErrNotFound) {
		return dErrors.New(dErrors.CodeNotFound, missing)
	}
	return dErrors.Wrap(err, dErrors.CodeInternal, internal)
}

func (s *Service) emit(ctx context.Context, name events.Name, subject string, attrs map[string]string) {
	err := s.emitter.Emit(ctx, events.Event{
		Name:       name,
		Source:     "credential:" + s.repo.ID(),
		Subject:    subject,
		Actor:      requestcontext.Caller(ctx),
		Attributes: attrs,
	})
	if err != nil {
		s.logger.WarnContext(ctx, "failed to emit credential event", "event", name, "error", err)
	}
}
