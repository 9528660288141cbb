//go:build integration

package store_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"opendid/internal/zkp"
	"opendid/internal/zkp/store"
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
}

func (s *PostgresStoreSuite) SetupTest() {
	s.Require().NoError(s.postgres.TruncateTables(context.Background(),
		"zkp_schemas", "zkp_credential_definitions", "store_setup"))
	s.store = store.NewPostgres(s.postgres.DB)
}

func (s *PostgresStoreSuite) TestSchemaTombstone() {
	ctx := context.Background()
	schema := zkp.Schema{ID: "s1", Name: "mdl", Version: "1.0", AttrNames: []string{"a", "b"}, Tag: "t"}
	s.Require().NoError(s.store.PutSchema(ctx, schema))

	l, err := s.store.FindSchema(ctx, "s1")
	s.Require().NoError(err)
	s.Equal(zkp.Found(schema), l)

	s.Require().NoError(s.store.RemoveSchema(ctx, "s1"))
	l, err = s.store.FindSchema(ctx, "s1")
	s.Require().NoError(err)
	s.Equal(zkp.OutcomeRemoved, l.Outcome)

	l, err = s.store.FindSchema(ctx, "s2")
	s.Require().NoError(err)
	s.Equal(zkp.OutcomeMissing, l.Outcome)
	s.Require().NoError(s.store.RemoveSchema(ctx, "s2"))
}

func (s *PostgresStoreSuite) TestDefinitionRevive() {
	ctx := context.Background()
	def := zkp.Definition{ID: "d1", SchemaID: "unregistered", Type: "CL", Tag: "t", Value: "{}"}
	s.Require().NoError(s.store.PutDefinition(ctx, def))
	s.Require().NoError(s.store.RemoveDefinition(ctx, "d1"))
	s.Require().NoError(s.store.PutDefinition(ctx, def))

	l, err := s.store.FindDefinition(ctx, "d1")
	s.Require().NoError(err)
	s.Equal(zkp.Found(def), l)
}
