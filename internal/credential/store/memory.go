package store

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"opendid/internal/credential"
	"opendid/pkg/platform/sentinel"
)

// InMemory keeps VC metadata and schemas in separate maps.
type InMemory struct {
	id      string
	mu      sync.RWMutex
	setup   bool
	metas   map[string]credential.VcMeta
	schemas map[string]credential.VcSchema
}

func NewInMemory() *InMemory {
	return &InMemory{
		id:      uuid.NewString(),
		metas:   make(map[string]credential.VcMeta),
		schemas: make(map[string]credential.VcSchema),
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

func (s *InMemory) PutMeta(_ context.Context, meta credential.VcMeta) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.metas[meta.ID] = meta
	return nil
}

func (s *InMemory) FindMeta(_ context.Context, id string) (*credential.VcMeta, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	meta, ok := s.metas[id]
	if !ok {
		return nil, sentinel.ErrNotFound
	}
	return &meta, nil
}

func (s *InMemory) SetMetaStatus(_ context.Context, id, status string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	meta, ok := s.metas[id]
	if !ok {
		return sentinel.ErrNotFound
	}
	meta.Status = status
	s.metas[id] = meta
	return nil
}

func (s *InMemory) PutSchema(_ context.Context, schema credential.VcSchema) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.schemas[schema.ID] = schema
	return nil
}

func (s *InMemory) FindSchema(_ context.Context, id string) (*credential.VcSchema, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	schema, ok := s.schemas[id]
	if !ok {
		return nil, sentinel.ErrNotFound
	}
	return &schema, nil
}
