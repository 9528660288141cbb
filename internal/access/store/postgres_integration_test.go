//go:build integration

package store_test

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/suite"

	"opendid/internal/access/store"
	"opendid/pkg/domain"
	"opendid/pkg/testutil/containers"
)

type PostgresStoreSuite struct {
	suite.Suite
	postgres *containers.PostgresContainer
	store    *store.Postgres
}

func TestPostgresStoreSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(PostgresStoreSuite))
}

func (s *PostgresStoreSuite) SetupSuite() {
	s.postgres = containers.GetManager().GetPostgres(s.T())
	s.store = store.NewPostgres(s.postgres.DB)
}

func (s *PostgresStoreSuite) SetupTest() {
	s.Require().NoError(s.postgres.TruncateTables(context.Background(), "role_assignments"))
}

var addr = domain.MustParseAddress("0xD1220A0cf47c7B9Be7A2E6BA89F429762e7b9aDb")

func (s *PostgresStoreSuite) TestGrantAndList() {
	ctx := context.Background()

	added, err := s.store.Grant(ctx, addr, domain.RoleTas)
	s.Require().NoError(err)
	s.True(added)

	added, err = s.store.Grant(ctx, addr, domain.RoleTas)
	s.Require().NoError(err)
	s.False(added)

	_, err = s.store.Grant(ctx, addr, domain.RoleAdmin)
	s.Require().NoError(err)

	roles, err := s.store.Roles(ctx, addr)
	s.Require().NoError(err)
	s.Equal([]domain.Role{domain.RoleAdmin, domain.RoleTas}, roles)

	ok, err := s.store.HasRole(ctx, addr, domain.RoleIssuer)
	s.Require().NoError(err)
	s.False(ok)
}

func (s *PostgresStoreSuite) TestRolesEmptyForUnknownAddress() {
	roles, err := s.store.Roles(context.Background(), addr)
	s.Require().NoError(err)
	s.Empty(roles)
}

// TestConcurrentGrant verifies ON CONFLICT leaves exactly one row and one "added" report.
func (s *PostgresStoreSuite) TestConcurrentGrant() {
	ctx := context.Background()
	var wg sync.WaitGroup
	var added atomic.Int32
	for range 20 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if ok, err := s.store.Grant(ctx, addr, domain.RoleIssuer); err == nil && ok {
				added.Add(1)
			}
		}()
	}
	wg.Wait()
	s.Equal(int32(1), added.Load())
}
