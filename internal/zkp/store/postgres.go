package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"opendid/internal/zkp"
	txcontext "opendid/pkg/platform/tx"
)

const setupKind = "zkp"

// Postgres persists schemas and definitions with a removed_at tombstone,
// scoped to its own store_id.
type Postgres struct {
	db      *sql.DB
	storeID string
}

func NewPostgres(db *sql.DB) *Postgres {
	return NewPostgresWithID(db, uuid.NewString())
}

func NewPostgresWithID(db *sql.DB, storeID string) *Postgres {
	return &Postgres{db: db, storeID: storeID}
}

type dbExecutor interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

func (s *Postgres) execer(ctx context.Context) dbExecutor {
	if tx, ok := txcontext.From(ctx); ok {
		return tx
	}
	return s.db
}

func (s *Postgres) ID() string {
	return s.storeID
}

func (s *Postgres) MarkSetup(ctx context.Context) (bool, error) {
	res, err := s.execer(ctx).ExecContext(ctx, `
		INSERT INTO store_setup (store_id, kind, created_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (store_id, kind) DO NOTHING
	`, s.storeID, setupKind)
	if err != nil {
		return false, fmt.Errorf("mark setup: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("mark setup: %w", err)
	}
	return n > 0, nil
}

func (s *Postgres) IsSetup(ctx context.Context) (bool, error) {
	var ok bool
	err := s.execer(ctx).QueryRowContext(ctx,
		`SELECT EXISTS (SELECT 1 FROM store_setup WHERE store_id = $1 AND kind = $2)`,
		s.storeID, setupKind).Scan(&ok)
	if err != nil {
		return false, fmt.Errorf("read setup: %w", err)
	}
	return ok, nil
}

func (s *Postgres) PutSchema(ctx context.Context, schema zkp.Schema) error {
	attrs := schema.AttrNames
	if attrs == nil {
		attrs = []string{}
	}
	query := `
		INSERT INTO zkp_schemas (store_id, id, name, version, attr_names, tag, removed_at)
		VALUES ($1, $2, $3, $4, $5, $6, NULL)
		ON CONFLICT (store_id, id) DO UPDATE SET
			name = EXCLUDED.name,
			version = EXCLUDED.version,
			attr_names = EXCLUDED.attr_names,
			tag = EXCLUDED.tag,
			removed_at = NULL
	`
	_, err := s.execer(ctx).ExecContext(ctx, query,
		s.storeID, schema.ID, schema.Name, schema.Version, pq.Array(attrs), schema.Tag)
	if err != nil {
		return fmt.Errorf("put zkp schema: %w", err)
	}
	return nil
}

func (s *Postgres) FindSchema(ctx context.Context, id string) (zkp.Lookup[zkp.Schema], error) {
	var (
		schema  zkp.Schema
		attrs   pq.StringArray
		removed sql.NullTime
	)
	err := s.execer(ctx).QueryRowContext(ctx, `
		SELECT id, name, version, attr_names, tag, removed_at
		FROM zkp_schemas WHERE store_id = $1 AND id = $2
	`, s.storeID, id).Scan(&schema.ID, &schema.Name, &schema.Version, &attrs, &schema.Tag, &removed)
	if errors.Is(err, sql.ErrNoRows) {
		return zkp.Missing[zkp.Schema](), nil
	}
	if err != nil {
		return zkp.Missing[zkp.Schema](), fmt.Errorf("find zkp schema: %w", err)
	}
	if removed.Valid {
		return zkp.Removed[zkp.Schema](), nil
	}
	schema.AttrNames = []string(attrs)
	return zkp.Found(schema), nil
}

// RemoveSchema clears the payload and stamps removed_at.
func (s *Postgres) RemoveSchema(ctx context.Context, id string) error {
	_, err := s.execer(ctx).ExecContext(ctx, `
		UPDATE zkp_schemas
		SET name = '', version = '', attr_names = '{}', tag = '', removed_at = NOW()
		WHERE store_id = $1 AND id = $2 AND removed_at IS NULL
	`, s.storeID, id)
	if err != nil {
		return fmt.Errorf("remove zkp schema: %w", err)
	}
	return nil
}

func (s *Postgres) PutDefinition(ctx context.Context, def zkp.Definition) error {
	query := `
		INSERT INTO zkp_credential_definitions (store_id, id, schema_id, type, tag, value, removed_at)
		VALUES ($1, $2, $3, $4, $5, $6, NULL)
		ON CONFLICT (store_id, id) DO UPDATE SET
			schema_id = EXCLUDED.schema_id,
			type = EXCLUDED.type,
			tag = EXCLUDED.tag,
			value = EXCLUDED.value,
			removed_at = NULL
	`
	_, err := s.execer(ctx).ExecContext(ctx, query,
		s.storeID, def.ID, def.SchemaID, def.Type, def.Tag, def.Value)
	if err != nil {
		return fmt.Errorf("put credential definition: %w", err)
	}
	return nil
}

func (s *Postgres) FindDefinition(ctx context.Context, id string) (zkp.Lookup[zkp.Definition], error) {
	var (
		def     zkp.Definition
		removed sql.NullTime
	)
	err := s.execer(ctx).QueryRowContext(ctx, `
		SELECT id, schema_id, type, tag, value, removed_at
		FROM zkp_credential_definitions WHERE store_id = $1 AND id = $2
	`, s.storeID, id).Scan(&def.ID, &def.SchemaID, &def.Type, &def.Tag, &def.Value, &removed)
	if errors.Is(err, sql.ErrNoRows) {
		return zkp.Missing[zkp.Definition](), nil
	}
	if err != nil {
		return zkp.Missing[zkp.Definition](), fmt.Errorf("find credential definition: %w", err)
	}
	if removed.Valid {
		return zkp.Removed[zkp.Definition](), nil
	}
	return zkp.Found(def), nil
}

func (s *Postgres) RemoveDefinition(ctx context.Context, id string) error {
	_, err := s.execer(ctx).ExecContext(ctx, `
		UPDATE zkp_credential_definitions
		SET schema_id = '', type = '', tag = '', value = '', removed_at = NOW()
		WHERE store_id = $1 AND id = $2 AND removed_at IS NULL
	`, s.storeID, id)
	if err != nil {
		return fmt.Errorf("remove credential definition: %w", err)
	}
	return nil
}
