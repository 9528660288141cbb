package store

import (
	"context"
	"sort"
	"sync"

	"opendid/pkg/domain"
)

// InMemory keeps role assignments in a map of sets.
type InMemory struct {
	mu    sync.RWMutex
	roles map[domain.Address]map[domain.Role]struct{}
}

func NewInMemory() *InMemory {
	return &InMemory{roles: make(map[domain.Address]map[domain.Role]struct{})}
}

// Grant adds role to addr and reports whether it was newly added.
func (s *InMemory) Grant(_ context.Context, addr domain.Address, role domain.Role) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	set, ok := s.roles[addr]
	if !ok {
		set = make(map[domain.Role]struct{})
		s.roles[addr] = set
	}
	if _, exists := set[role]; exists {
		return false, nil
	}
	set[role] = struct{}{}
	return true, nil
}

func (s *InMemory) HasRole(_ context.Context, addr domain.Address, role domain.Role) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.roles[addr][role]
	return ok, nil
}

// Roles returns the roles held by addr, sorted.
func (s *InMemory) Roles(_ context.Context, addr domain.Address) ([]domain.Role, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Role, 0, len(s.roles[addr]))
	for r := range s.roles[addr] {
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out, nil
}
