//go:build integration

package store_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"opendid/internal/credential"
	"opendid/internal/credential/store"
	"opendid/pkg/platform/sentinel"
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
	s.Require().NoError(s.postgres.TruncateTables(context.Background(), "vc_meta", "vc_schemas", "store_setup"))
	s.store = store.NewPostgres(s.postgres.DB)
}

func (s *PostgresStoreSuite) TestMetaUpsertAndStatus() {
	ctx := context.Background()
	meta := credential.VcMeta{ID: "vc-1", Issuer: credential.Issuer{DID: "did:omn:issuer"}, Status: "ACTIVE", Language: "ko"}
	s.Require().NoError(s.store.PutMeta(ctx, meta))

	meta.Language = "en"
	s.Require().NoError(s.store.PutMeta(ctx, meta))
	s.Require().NoError(s.store.SetMetaStatus(ctx, "vc-1", "revoked"))

	got, err := s.store.FindMeta(ctx, "vc-1")
	s.Require().NoError(err)
	s.Equal("en", got.Language)
	s.Equal("revoked", got.Status)

	s.ErrorIs(s.store.SetMetaStatus(ctx, "vc-2", "revoked"), sentinel.ErrNotFound)
}

func (s *PostgresStoreSuite) TestSchemas() {
	ctx := context.Background()
	s.Require().NoError(s.store.PutSchema(ctx, credential.VcSchema{ID: "schema-1", Schema: "{}"}))

	got, err := s.store.FindSchema(ctx, "schema-1")
	s.Require().NoError(err)
	s.Equal("{}", got.Schema)

	_, err = store.NewPostgres(s.postgres.DB).FindSchema(ctx, "schema-1")
	s.ErrorIs(err, sentinel.ErrNotFound)
}
