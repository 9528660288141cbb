// Package zkp stores zero-knowledge-proof credential schemas and
// definitions. Removal leaves a tombstone so lookups can tell a removed
// record from one that never existed.
package zkp

import (
	"context"
	"log/slog"

	"opendid/internal/events"
	dErrors "opendid/pkg/domain-errors"
	"opendid/pkg/requestcontext"
)

//go:generate mockgen -source=service.go -destination=mocks/mocks.go -package=mocks

// Repository persists schemas and definitions for one store instance.
// Put revives a removed id; Remove of an absent id is a no-op.
type Repository interface {
	ID() string
	MarkSetup(ctx context.Context) (bool, error)
	IsSetup(ctx context.Context) (bool, error)
	PutSchema(ctx context.Context, schema Schema) error
	FindSchema(ctx context.Context, id string) (Lookup[Schema], error)
	RemoveSchema(ctx context.Context, id string) error
	PutDefinition(ctx context.Context, def Definition) error
	FindDefinition(ctx context.Context, id string) (Lookup[Definition], error)
	RemoveDefinition(ctx context.Context, id string) error
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
		return dErrors.Wrap(err, dErrors.CodeInternal, "failed to set up zkp store")
	}
	if !ok {
		return dErrors.New(dErrors.CodePrecondition, "zkp store already initialized")
	}
	if err := s.emitter.Emit(ctx, events.Event{
		Name:    events.ZKPStorageSetup,
		Source:  "zkp:" + s.repo.ID(),
		Subject: s.repo.ID(),
		Actor:   requestcontext.Caller(ctx),
	}); err != nil {
		s.logger.WarnContext(ctx, "failed to emit zkp setup event", "error", err)
	}
	return nil
}

func (s *Service) HasInitialized(ctx context.Context) (bool, error) {
	ok, err := s.repo.IsSetup(ctx)
	if err != nil {
		return false, dErrors.Wrap(err, dErrors.CodeInternal, "failed to read zkp store state")
	}
	return ok, nil
}

func (s *Service) RegisterSchema(ctx context.Context, schema Schema) error {
	if err := schema.Validate(); err != nil {
		return err
	}
	if err := s.repo.PutSchema(ctx, schema); err != nil {
		return dErrors.Wrap(err, dErrors.CodeInternal, "failed to register zkp schema")
	}
	return nil
}

// GetSchema reports a miss through the Lookup outcome, not an error.
func (s *Service) GetSchema(ctx context.Context, id string) (Lookup[Schema], error) {
	l, err := s.repo.FindSchema(ctx, id)
	if err != nil {
		return Missing[Schema](), dErrors.Wrap(err, dErrors.CodeInternal, "failed to load zkp schema")
	}
	return l, nil
}

func (s *Service) RemoveSchema(ctx context.Context, id string) error {
	if err := s.repo.RemoveSchema(ctx, id); err != nil {
		return dErrors.Wrap(err, dErrors.CodeInternal, "failed to remove zkp schema")
	}
	return nil
}

func (s *Service) RegisterCredentialDefinition(ctx context.Context, def Definition) error {
	if err := def.Validate(); err != nil {
		return err
	}
	if err := s.repo.PutDefinition(ctx, def); err != nil {
		return dErrors.Wrap(err, dErrors.CodeInternal, "failed to register credential definition")
	}
	return nil
}

func (s *Service) GetCredentialDefinition(ctx context.Context, id string) (Lookup[Definition], error) {
	l, err := s.repo.FindDefinition(ctx, id)
	if err != nil {
		return Missing[Definition](), dErrors.Wrap(err, dErrors.CodeInternal, "failed to load credential definition")
	}
	return l, nil
}

func (s *Service) RemoveCredentialDefinition(ctx context.Context, id string) error {
	if err := s.repo.RemoveDefinition(ctx, id); err != nil {
		return dErrors.Wrap(err, dErrors.CodeInternal, "failed to remove credential definition")
	}
	return nil
}
