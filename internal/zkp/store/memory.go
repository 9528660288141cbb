package store

import (
	"context"
	"slices"
	"sync"

	"github.com/google/uuid"

	"opendid/internal/zkp"
)

// entry holds a record and whether it has been removed. Removed entries keep
// no data.
type entry[T any] struct {
	record  T
	removed bool
}

// InMemory keeps schemas and definitions with tombstones for removals.
type InMemory struct {
	id          string
	mu          sync.RWMutex
	setup       bool
	schemas     map[string]entry[zkp.Schema]
	definitions map[string]entry[zkp.Definition]
}

func NewInMemory() *InMemory {
	return &InMemory{
		id:          uuid.NewString(),
		schemas:     make(map[string]entry[zkp.Schema]),
		definitions: make(map[string]entry[zkp.Definition]),
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

func (s *InMemory) PutSchema(_ context.Context, schema zkp.Schema) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	schema.AttrNames = slices.Clone(schema.AttrNames)
	s.schemas[schema.ID] = entry[zkp.Schema]{record: schema}
	return nil
}

func (s *InMemory) FindSchema(_ context.Context, id string) (zkp.Lookup[zkp.Schema], error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	e, ok := s.schemas[id]
	switch {
	case !ok:
		return zkp.Missing[zkp.Schema](), nil
	case e.removed:
		return zkp.Removed[zkp.Schema](), nil
	}
	out := e.record
	out.AttrNames = slices.Clone(out.AttrNames)
	return zkp.Found(out), nil
}

func (s *InMemory) RemoveSchema(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.schemas[id]; ok {
		s.schemas[id] = entry[zkp.Schema]{removed: true}
	}
	return nil
}

func (s *InMemory) PutDefinition(_ context.Context, def zkp.Definition) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.definitions[def.ID] = entry[zkp.Definition]{record: def}
	return nil
}

func (s *InMemory) FindDefinition(_ context.Context, id string) (zkp.Lookup[zkp.Definition], error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	e, ok := s.definitions[id]
	switch {
	case !ok:
		return zkp.Missing[zkp.Definition](), nil
	case e.removed:
		return zkp.Removed[zkp.Definition](), nil
	}
	return zkp.Found(e.record), nil
}

func (s *InMemory) RemoveDefinition(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.definitions[id]; ok {
		s.definitions[id] = entry[zkp.Definition]{removed: true}
	}
	return nil
}
