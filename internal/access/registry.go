// Package access maps addresses to role labels. Grants are idempotent and
// permanent: there is no revoke.
package access

import (
	"context"
	"log/slog"

	"opendid/internal/events"
	"opendid/pkg/domain"
	dErrors "opendid/pkg/domain-errors"
)

//go:generate mockgen -source=registry.go -destination=mocks/mocks.go -package=mocks

// Store persists role assignments.
type Store interface {
	Grant(ctx context.Context, addr domain.Address, role domain.Role) (bool, error)
	HasRole(ctx context.Context, addr domain.Address, role domain.Role) (bool, error)
	Roles(ctx context.Context, addr domain.Address) ([]domain.Role, error)
}

// Registry validates inputs and delegates to a Store.
type Registry struct {
	store       Store
	emitter     events.Emitter
	logger      *slog.Logger
	strictRoles bool
}

// Option configures a Registry.
type Option func(*Registry)

func WithLogger(logger *slog.Logger) Option {
	return func(r *Registry) {
		r.logger = logger
	}
}

func WithEmitter(e events.Emitter) Option {
	return func(r *Registry) {
		r.emitter = e
	}
}

// WithStrictRoles rejects labels outside the built-in role set.
func WithStrictRoles(strict bool) Option {
	return func(r *Registry) {
		r.strictRoles = strict
	}
}

func New(store Store, opts ...Option) *Registry {
	r := &Registry{store: store, emitter: events.Discard{}, logger: slog.Default()}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Grant gives label to target. Granting a held role is a no-op.
//
// Errors: CodeInvalidInput for a zero target or empty label (or an unknown
// label in strict mode); CodeInternal when the store fails.
func (r *Registry) Grant(ctx context.Context, target domain.Address, label string) error {
	role, err := r.validate(ctx, target, label)
	if err != nil {
		return err
	}
	added, err := r.store.Grant(ctx, target, role)
	if err != nil {
		return dErrors.Wrap(err, dErrors.CodeInternal, "failed to grant role")
	}
	if !added {
		return nil
	}

	if err := r.emitter.Emit(ctx, events.Event{
		Name:       events.RoleGranted,
		Source:     "access",
		Subject:    string(target),
		Attributes: map[string]string{"role": string(role)},
	}); err != nil {
		r.logger.WarnContext(ctx, "failed to emit role granted event", "error", err)
	}
	return nil
}

// HasRole reports whether target holds label. It never creates state.
func (r *Registry) HasRole(ctx context.Context, target domain.Address, label string) (bool, error) {
	role, err := r.validate(ctx, target, label)
	if err != nil {
		return false, err
	}
	ok, err := r.store.HasRole(ctx, target, role)
	if err != nil {
		return false, dErrors.Wrap(err, dErrors.CodeInternal, "failed to check role")
	}
	return ok, nil
}

// Roles lists the labels held by target.
func (r *Registry) Roles(ctx context.Context, target domain.Address) ([]domain.Role, error) {
	if target.IsZero() {
		return nil, dErrors.New(dErrors.CodeInvalidInput, "Target address cannot be zero")
	}
	roles, err := r.store.Roles(ctx, target)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to list roles")
	}
	return roles, nil
}

func (r *Registry) validate(ctx context.Context, target domain.Address, label string) (domain.Role, error) {
	if target.IsZero() {
		return "", dErrors.New(dErrors.CodeInvalidInput, "Target address cannot be zero")
	}
	role, known, err := domain.ParseRole(label, r.strictRoles)
	if err != nil {
		return "", err
	}
	if !known {
		r.logger.WarnContext(ctx, "custom role label", "role", label)
	}
	return role, nil
}
