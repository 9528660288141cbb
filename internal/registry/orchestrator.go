// Package registry composes the access-control registry and the document,
// credential and ZKP stores behind one authorization boundary. Every
// mutation is checked against the active Policy and serialized on a single
// commit lock.
package registry

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"opendid/internal/events"
	"opendid/internal/registry/metrics"
	"opendid/pkg/domain"
	dErrors "opendid/pkg/domain-errors"
	"opendid/pkg/requestcontext"
)

// Ungated operations, named for tracing and metrics only.
const (
	OpInitialize       Operation = "Initialize"
	OpHasRole          Operation = "HasRole"
	OpRoles            Operation = "Roles"
	OpGetDidDoc        Operation = "GetDidDoc"
	OpGetDidDocStatus  Operation = "GetDidDocStatus"
	OpGetVcMetaData    Operation = "GetVcMetaData"
	OpGetVcSchema      Operation = "GetVcSchema"
	OpGetZKPCredential Operation = "GetZKPCredential"
	OpGetZKPDefinition Operation = "GetZKPCredentialDefinition"
)

// StorageKind identifies one of the swappable store handles.
type StorageKind string

const (
	KindDocument StorageKind = "document"
	KindVcMeta   StorageKind = "vcmeta"
	KindZKP      StorageKind = "zkp"
)

func ParseStorageKind(s string) (StorageKind, error) {
	switch StorageKind(s) {
	case KindDocument, KindVcMeta, KindZKP:
		return StorageKind(s), nil
	}
	return "", dErrors.New(dErrors.CodeInvalidInput, "unknown storage kind: "+s)
}

// Handles are the stores the orchestrator routes to. The orchestrator does
// not own them; a swapped-out store keeps its data.
type Handles struct {
	Documents   DocumentStore
	Credentials CredentialStore
	ZKP         ZKPStore
}

func (h Handles) validate() error {
	if h.Documents == nil || h.Credentials == nil || h.ZKP == nil {
		return dErrors.New(dErrors.CodeInvalidInput, "all store handles are required")
	}
	return nil
}

// HandleInfo describes the active handle of one kind.
type HandleInfo struct {
	Kind       StorageKind `json:"kind"`
	ID         string      `json:"id"`
	Generation uint64      `json:"generation"`
}

// Status is a point-in-time view of the orchestrator.
type Status struct {
	Initialized   bool         `json:"initialized"`
	PolicyVersion string       `json:"policyVersion"`
	Handles       []HandleInfo `json:"handles"`
}

type Orchestrator struct {
	mu          sync.RWMutex
	access      AccessControl
	handles     Handles
	generations map[StorageKind]uint64
	initialized bool
	policy      Policy
	initial     Policy

	emitter events.Emitter
	logger  *slog.Logger
	metrics *metrics.Metrics
	tracer  trace.Tracer
}

type Option func(*Orchestrator)

func WithLogger(logger *slog.Logger) Option {
	return func(o *Orchestrator) {
		o.logger = logger
	}
}

func WithEmitter(e events.Emitter) Option {
	return func(o *Orchestrator) {
		o.emitter = e
	}
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(o *Orchestrator) {
		o.metrics = m
	}
}

func WithTracer(t trace.Tracer) Option {
	return func(o *Orchestrator) {
		o.tracer = t
	}
}

// WithPolicy sets the policy installed by Initialize.
func WithPolicy(p Policy) Option {
	return func(o *Orchestrator) {
		o.initial = p.clone()
	}
}

func New(access AccessControl, opts ...Option) *Orchestrator {
	o := &Orchestrator{
		access:      access,
		generations: make(map[StorageKind]uint64),
		initial:     DefaultPolicy(false),
		emitter:     events.Discard{},
		logger:      slog.Default(),
		tracer:      otel.Tracer("opendid/registry"),
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// Initialize installs the store handles and makes caller an Admin. It can
// run once; stores that have not been set up are set up first.
//
// Errors: CodeInvalidInput for a zero caller or missing handles;
// CodePrecondition if already initialized.
func (o *Orchestrator) Initialize(ctx context.Context, caller domain.Address, handles Handles) error {
	return o.observe(ctx, OpInitialize, caller, func(ctx context.Context) error {
		if caller.IsZero() {
			return dErrors.New(dErrors.CodeInvalidInput, "Target address cannot be zero")
		}
		if err := handles.validate(); err != nil {
			return err
		}

		o.mu.Lock()
		defer o.mu.Unlock()
		if o.initialized {
			return dErrors.New(dErrors.CodePrecondition, "registry already initialized")
		}
		for _, s := range []Store{handles.Documents, handles.Credentials, handles.ZKP} {
			if err := ensureSetup(ctx, s); err != nil {
				return err
			}
		}
		if err := o.access.Grant(ctx, caller, string(domain.RoleAdmin)); err != nil {
			return err
		}

		o.handles = handles
		o.policy = o.initial.clone()
		for _, kind := range []StorageKind{KindDocument, KindVcMeta, KindZKP} {
			o.generations[kind] = 1
			o.metrics.SetGeneration(string(kind), 1)
		}
		o.initialized = true

		o.emit(ctx, events.OpenDIDSetup, caller, "registry", map[string]string{
			"document": handles.Documents.ID(),
			"vcmeta":   handles.Credentials.ID(),
			"zkp":      handles.ZKP.ID(),
			"policy":   o.policy.Version,
		})
		o.logger.InfoContext(ctx, "registry initialized",
			"admin", caller,
			"policy_version", o.policy.Version,
		)
		return nil
	})
}

func (o *Orchestrator) HasInitialized() bool {
	o.mu.RLock()
	defer o.mu.RUnlock()
	return o.initialized
}

// Status reports initialization, the policy version and handle generations.
func (o *Orchestrator) Status() Status {
	o.mu.RLock()
	defer o.mu.RUnlock()
	return Status{
		Initialized:   o.initialized,
		PolicyVersion: o.policy.Version,
		Handles:       o.handleInfo(),
	}
}

// Handles lists the active handles with their generations.
func (o *Orchestrator) Handles() []HandleInfo {
	o.mu.RLock()
	defer o.mu.RUnlock()
	return o.handleInfo()
}

// Policy returns a copy of the active policy.
func (o *Orchestrator) Policy() Policy {
	o.mu.RLock()
	defer o.mu.RUnlock()
	return o.policy.clone()
}

func (o *Orchestrator) handleInfo() []HandleInfo {
	if !o.initialized {
		return nil
	}
	return []HandleInfo{
		{Kind: KindDocument, ID: o.handles.Documents.ID(), Generation: o.generations[KindDocument]},
		{Kind: KindVcMeta, ID: o.handles.Credentials.ID(), Generation: o.generations[KindVcMeta]},
		{Kind: KindZKP, ID: o.handles.ZKP.ID(), Generation: o.generations[KindZKP]},
	}
}

type lockMode uint8

const (
	readAccess lockMode = iota
	writeAccess
)

// run executes fn under the commit lock. Writes are authorized against the
// policy first; ops on stores need the registry initialized.
func (o *Orchestrator) run(ctx context.Context, op Operation, caller domain.Address, mode lockMode, needsInit bool, fn func(ctx context.Context) error) error {
	return o.observe(ctx, op, caller, func(ctx context.Context) error {
		if err := ctx.Err(); err != nil {
			return dErrors.Wrap(err, dErrors.CodeTimeout, "request cancelled")
		}
		if mode == writeAccess {
			o.mu.Lock()
			defer o.mu.Unlock()
		} else {
			o.mu.RLock()
			defer o.mu.RUnlock()
		}
		if needsInit && !o.initialized {
			return dErrors.New(dErrors.CodePrecondition, "registry is not initialized")
		}
		if mode == writeAccess {
			if err := o.authorize(ctx, op, caller); err != nil {
				return err
			}
		}
		return fn(ctx)
	})
}

func (o *Orchestrator) observe(ctx context.Context, op Operation, caller domain.Address, fn func(ctx context.Context) error) error {
	ctx, span := o.tracer.Start(ctx, "registry."+string(op),
		trace.WithAttributes(attribute.String("opendid.operation", string(op))))
	defer span.End()
	if !caller.IsZero() {
		span.SetAttributes(attribute.String("opendid.caller", string(caller)))
		ctx = requestcontext.WithCaller(ctx, caller)
	}

	start := time.Now()
	err := fn(ctx)
	outcome := "ok"
	if err != nil {
		outcome = string(dErrors.CodeOf(err))
		span.RecordError(err)
		span.SetStatus(codes.Error, outcome)
	}
	o.metrics.ObserveOperation(string(op), outcome, time.Since(start))
	return err
}

func (o *Orchestrator) authorize(ctx context.Context, op Operation, caller domain.Address) error {
	role := o.policy.Required(op)
	if role == "" {
		return nil
	}
	var ok bool
	if !caller.IsZero() {
		var err error
		ok, err = o.access.HasRole(ctx, caller, string(role))
		if err != nil {
			return dErrors.Wrap(err, dErrors.CodeInternal, "failed to check caller role")
		}
	}
	if ok {
		return nil
	}

	o.metrics.IncrementDenied(string(op), string(role))
	o.logger.WarnContext(ctx, "caller lacks required role",
		"request_id", requestcontext.RequestID(ctx),
		"operation", op,
		"caller", caller,
		"role", role,
	)
	if op == OpUpgrade {
		return dErrors.New(dErrors.CodeUnauthorized,
			fmt.Sprintf("AccessControlUnauthorizedAccount(%s, %s)", caller, role))
	}
	return dErrors.New(dErrors.CodeUnauthorized, fmt.Sprintf("Caller does not have %s role", role))
}

func (o *Orchestrator) emit(ctx context.Context, name events.Name, caller domain.Address, subject string, attrs map[string]string) {
	err := o.emitter.Emit(ctx, events.Event{
		Name:       name,
		Source:     "registry",
		Subject:    subject,
		Actor:      caller,
		Attributes: attrs,
	})
	if err != nil {
		o.logger.WarnContext(ctx, "failed to emit registry event", "event", name, "error", err)
	}
}

func ensureSetup(ctx context.Context, s Store) error {
	ok, err := s.HasInitialized(ctx)
	if err != nil {
		return err
	}
	if ok {
		return nil
	}
	return s.Setup(ctx)
}
