package store

import (
	"context"
	"slices"
	"sync"

	"github.com/google/uuid"

	"opendid/internal/document"
	"opendid/pkg/platform/sentinel"
)

// InMemory keeps documents in a map keyed by id.
type InMemory struct {
	id    string
	mu    sync.RWMutex
	setup bool
	docs  map[string]document.Stored
}

func NewInMemory() *InMemory {
	return &InMemory{
		id:   uuid.NewString(),
		docs: make(map[string]document.Stored),
	}
}

func (s *InMemory) ID() string {
	return s.id
}

func (s *InMemory) MarkSetup(_ context.Context) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.setup {
		return false, nil
	}
	s.setup = true
	return true, nil
}

func (s *InMemory) IsSetup(_ context.Context) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.setup, nil
}

func (s *InMemory) Insert(_ context.Context, rec document.Stored) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.docs[rec.Document.ID]; ok {
		return sentinel.ErrConflict
	}
	s.docs[rec.Document.ID] = clone(rec)
	return nil
}

func (s *InMemory) Find(_ context.Context, id string) (*document.Stored, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	rec, ok := s.docs[id]
	if !ok {
		return nil, sentinel.ErrNotFound
	}
	out := clone(rec)
	return &out, nil
}

func (s *InMemory) Modify(_ context.Context, id string, fn func(*document.Stored) error) (*document.Stored, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	rec, ok := s.docs[id]
	if !ok {
		return nil, sentinel.ErrNotFound
	}
	working := clone(rec)
	if err := fn(&working); err != nil {
		return nil, err
	}
	s.docs[id] = clone(working)
	return &working, nil
}

func (s *InMemory) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.docs[id]; !ok {
		return sentinel.ErrNotFound
	}
	delete(s.docs, id)
	return nil
}

// clone copies the slices so callers cannot mutate stored state.
func clone(rec document.Stored) document.Stored {
	d := rec.Document
	d.Context = slices.Clone(d.Context)
	d.VerificationMethod = slices.Clone(d.VerificationMethod)
	d.AssertionMethod = slices.Clone(d.AssertionMethod)
	d.Authentication = slices.Clone(d.Authentication)
	d.KeyAgreement = slices.Clone(d.KeyAgreement)
	d.CapabilityInvocation = slices.Clone(d.CapabilityInvocation)
	d.CapabilityDelegation = slices.Clone(d.CapabilityDelegation)
	if d.Service != nil {
		svc := make([]document.ServiceEndpoint, len(d.Service))
		for i, e := range d.Service {
			e.ServiceEndpoint = slices.Clone(e.ServiceEndpoint)
			svc[i] = e
		}
		d.Service = svc
	}
	rec.Document = d
	return rec
}
