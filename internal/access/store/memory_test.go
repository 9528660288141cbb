package store

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/suite"

	"opendid/pkg/domain"
)

type InMemorySuite struct {
	suite.Suite
	store *InMemory
	ctx   context.Context
}

func (s *InMemorySuite) SetupTest() {
	s.store = NewInMemory()
	s.ctx = context.Background()
}

func TestInMemorySuite(t *testing.T) {
	suite.Run(t, new(InMemorySuite))
}

var holder = domain.MustParseAddress("0xdbF03B407c01E7cD3CBea99509d93f8DDDC8C6FB")

func (s *InMemorySuite) TestGrantReportsNewAssignments() {
	added, err := s.store.Grant(s.ctx, holder, domain.RoleAdmin)
	s.Require().NoError(err)
	s.True(added)

	added, err = s.store.Grant(s.ctx, holder, domain.RoleAdmin)
	s.Require().NoError(err)
	s.False(added)
}

func (s *InMemorySuite) TestRolesSorted() {
	for _, r := range []domain.Role{domain.RoleTas, domain.RoleAdmin, domain.RoleIssuer} {
		_, err := s.store.Grant(s.ctx, holder, r)
		s.Require().NoError(err)
	}
	roles, err := s.store.Roles(s.ctx, holder)
	s.Require().NoError(err)
	s.Equal([]domain.Role{domain.RoleAdmin, domain.RoleIssuer, domain.RoleTas}, roles)
}

// TestConcurrentGrant verifies exactly one concurrent grant of the same pair reports an addition.
func (s *InMemorySuite) TestConcurrentGrant() {
	var wg sync.WaitGroup
	var added atomic.Int32
	for range 50 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if ok, err := s.store.Grant(s.ctx, holder, domain.RoleIssuer); err == nil && ok {
				added.Add(1)
			}
		}()
	}
	wg.Wait()
	s.Equal(int32(1), added.Load())
}
