// Package document stores DID documents and drives their status through
// ACTIVE, DEACTIVATED, REVOKED and TERMINATED.
package document

import (
	"context"
	"errors"
	"log/slog"

	"opendid/internal/events"
	"opendid/internal/multibase"
	"opendid/pkg/domain"
	dErrors "opendid/pkg/domain-errors"
	"opendid/pkg/platform/sentinel"
	"opendid/pkg/requestcontext"
)

//go:generate mockgen -source=service.go -destination=mocks/mocks.go -package=mocks

// Repository persists documents for one store instance.
type Repository interface {
	// ID names the store instance. Two repositories with different IDs
	// never observe each other's rows.
	ID() string
	// MarkSetup records the one-time initialization; returns false if the
	// store was already set up.
	MarkSetup(ctx context.Context) (bool, error)
	IsSetup(ctx context.Context) (bool, error)
	// Insert returns sentinel.ErrConflict when the id exists.
	Insert(ctx context.Context, rec Stored) error
	// Find returns sentinel.ErrNotFound when the id is absent.
	Find(ctx context.Context, id string) (*Stored, error)
	// Modify loads id, applies fn and persists the result atomically.
	// Nothing is written when fn fails.
	Modify(ctx context.Context, id string, fn func(*Stored) error) (*Stored, error)
	// Delete returns sentinel.ErrNotFound when the id is absent.
	Delete(ctx context.Context, id string) error
}

// Service owns DID documents and their status records.
type Service struct {
	repo    Repository
	decoder Decoder
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

// WithDecoder replaces the key decoder used during validation.
func WithDecoder(d Decoder) Option {
	return func(s *Service) {
		s.decoder = d
	}
}

func New(repo Repository, opts ...Option) *Service {
	s := &Service{
		repo:    repo,
		decoder: multibase.New(),
		emitter: events.Discard{},
		logger:  slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ID identifies the underlying store instance.
func (s *Service) ID() string {
	return s.repo.ID()
}

// Setup marks the store initialized.
//
// Errors: CodePrecondition if it was already set up.
func (s *Service) Setup(ctx context.Context) error {
	ok, err := s.repo.MarkSetup(ctx)
	if err != nil {
		return dErrors.Wrap(err, dErrors.CodeInternal, "failed to set up document store")
	}
	if !ok {
		return dErrors.New(dErrors.CodePrecondition, "document store already initialized")
	}
	s.emit(ctx, events.DocumentStorageSetup, s.repo.ID(), nil)
	return nil
}

func (s *Service) HasInitialized(ctx context.Context) (bool, error) {
	ok, err := s.repo.IsSetup(ctx)
	if err != nil {
		return false, dErrors.Wrap(err, dErrors.CodeInternal, "failed to read document store state")
	}
	return ok, nil
}

// Register stores a new document with an ACTIVE status at its versionId,
// recording submitter as its registrant.
//
// Errors: CodeInvalidInput for malformed documents; CodeConflict if the id
// is already registered.
func (s *Service) Register(ctx context.Context, doc Document, submitter domain.Address) error {
	if err := Validate(doc, s.decoder); err != nil {
		return err
	}
	now := requestcontext.Now(ctx)
	doc.Deactivated = false
	rec := Stored{
		Document: doc,
		Status: StatusRecord{
			ID:      doc.ID,
			Status:  StatusActive,
			Version: doc.VersionID,
		},
		Submitter: string(submitter),
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.repo.Insert(ctx, rec); err != nil {
		if errors.Is(err, sentinel.ErrConflict) {
			return dErrors.New(dErrors.CodeConflict, "Document already exists")
		}
		return dErrors.Wrap(err, dErrors.CodeInternal, "failed to register document")
	}
	s.emit(ctx, events.DocumentRegistered, doc.ID, map[string]string{"version": doc.VersionID})
	return nil
}

// Update replaces the document at id. versionID must match the document's
// own versionId.
//
// Errors: CodeInvalidInput for malformed or mismatched input; CodeNotFound
// for unknown ids; CodeInvalidTransition once the document is TERMINATED.
func (s *Service) Update(ctx context.Context, doc Document, id, versionID string) error {
	if err := Validate(doc, s.decoder); err != nil {
		return err
	}
	if doc.ID != id {
		return dErrors.New(dErrors.CodeInvalidInput, "document id does not match target id")
	}
	if doc.VersionID != versionID {
		return dErrors.New(dErrors.CodeInvalidInput, "versionId does not match document")
	}

	now := requestcontext.Now(ctx)
	_, err := s.repo.Modify(ctx, id, func(st *Stored) error {
		if !st.CanUpdate() {
			return dErrors.New(dErrors.CodeInvalidTransition, "terminated documents cannot be updated")
		}
		st.ApplyUpdate(doc, versionID, now)
		return nil
	})
	if err != nil {
		return s.translate(err, "failed to update document")
	}
	s.emit(ctx, events.DocumentUpdated, id, map[string]string{"version": versionID})
	return nil
}

// UpdateStatus moves the status of id forward.
//
// Errors: CodeInvalidInput when update.ID names a different document;
// CodeNotFound for unknown ids; CodeInvalidTransition for backward moves or
// any move out of TERMINATED.
func (s *Service) UpdateStatus(ctx context.Context, update StatusRecord, id string) error {
	if update.ID == "" {
		update.ID = id
	}
	if update.ID != id {
		return dErrors.New(dErrors.CodeInvalidInput, "status id does not match target id")
	}
	if !update.Status.IsValid() {
		return dErrors.New(dErrors.CodeInvalidInput, "unknown document status")
	}

	now := requestcontext.Now(ctx)
	var from Status
	_, err := s.repo.Modify(ctx, id, func(st *Stored) error {
		from = st.Status.Status
		if !st.CanApplyStatus(update.Status) {
			return dErrors.New(dErrors.CodeInvalidTransition,
				"cannot move document from "+from.String()+" to "+update.Status.String())
		}
		st.ApplyStatus(update, now)
		return nil
	})
	if err != nil {
		return s.translate(err, "failed to update document status")
	}
	s.emit(ctx, events.DocumentStatusUpdated, id, map[string]string{
		"from": from.String(),
		"to":   update.Status.String(),
	})
	return nil
}

// Get returns the document and its status.
//
// Errors: CodeNotFound for unknown ids.
func (s *Service) Get(ctx context.Context, id string) (Record, error) {
	st, err := s.repo.Find(ctx, id)
	if err != nil {
		return Record{}, s.translate(err, "failed to load document")
	}
	return st.Record(), nil
}

// GetStatus returns the full status record of id.
func (s *Service) GetStatus(ctx context.Context, id string) (StatusRecord, error) {
	st, err := s.repo.Find(ctx, id)
	if err != nil {
		return StatusRecord{}, s.translate(err, "failed to load document status")
	}
	return st.Status, nil
}

// Remove deletes the document and its status.
//
// Errors: CodeNotFound for unknown ids.
func (s *Service) Remove(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return s.translate(err, "failed to remove document")
	}
	s.emit(ctx, events.DocumentRemoved, id, nil)
	return nil
}

func (s *Service) translate(err error, msg string) error {
	var coded *dErrors.Error
	switch {
	case errors.As(err, &coded):
		return err
	case errors.Is(err, sentinel.ErrNotFound):
		return dErrors.New(dErrors.CodeNotFound, "Document does not exist")
	default:
		return dErrors.Wrap(err, dErrors.CodeInternal, msg)
	}
}

func (s *Service) emit(ctx context.Context, name events.Name, subject string, attrs map[string]string) {
	err := s.emitter.Emit(ctx, events.Event{
		Name:       name,
		Source:     "document:" + s.repo.ID(),
		Subject:    subject,
		Actor:      requestcontext.Caller(ctx),
		Attributes: attrs,
	})
	if err != nil {
		s.logger.WarnContext(ctx, "failed to emit document event", "event", name, "error", err)
	}
}
