package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"opendid/internal/credential"
	"opendid/pkg/platform/sentinel"
	txcontext "opendid/pkg/platform/tx"
)

const setupKind = "vc_meta"

// Postgres persists metadata in vc_meta and schemas in vc_schemas, scoped to
// its own store_id.
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

func (s *Postgres) PutMeta(ctx context.Context, meta credential.VcMeta) error {
	body, err := json.Marshal(meta)
	if err != nil {
		return fmt.Errorf("marshal vc meta: %w", err)
	}
	query := `
		INSERT INTO vc_meta (store_id, id, issuer_did, status, meta, updated_at)
		VALUES ($1, $2, $3, $4, $5, NOW())
		ON CONFLICT (store_id, id) DO UPDATE SET
			issuer_did = EXCLUDED.issuer_did,
			status = EXCLUDED.status,
			meta = EXCLUDED.meta,
			updated_at = NOW()
	`
	if _, err := s.execer(ctx).ExecContext(ctx, query, s.storeID, meta.ID, meta.Issuer.DID, meta.Status, body); err != nil {
		return fmt.Errorf("put vc meta: %w", err)
	}
	return nil
}

// FindMeta reads the status column over the stored body; status updates only
// touch the column.
func (s *Postgres) FindMeta(ctx context.Context, id string) (*credential.VcMeta, error) {
	var (
		body   []byte
		status string
	)
	err := s.execer(ctx).QueryRowContext(ctx,
		`SELECT meta, status FROM vc_meta WHERE store_id = $1 AND id = $2`,
		s.storeID, id).Scan(&body, &status)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, sentinel.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find vc meta: %w", err)
	}
	var meta credential.VcMeta
	if err := json.Unmarshal(body, &meta); err != nil {
		return nil, fmt.Errorf("unmarshal vc meta: %w", err)
	}
	meta.Status = status
	return &meta, nil
}

func (s *Postgres) SetMetaStatus(ctx context.Context, id, status string) error {
	res, err := s.execer(ctx).ExecContext(ctx,
		`UPDATE vc_meta SET status = $3, updated_at = NOW() WHERE store_id = $1 AND id = $2`,
		s.storeID, id, status)
	if err != nil {
		return fmt.Errorf("update vc meta status: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("update vc meta status: %w", err)
	}
	if n == 0 {
		return sentinel.ErrNotFound
	}
	return nil
}

func (s *Postgres) PutSchema(ctx context.Context, schema credential.VcSchema) error {
	query := `
		INSERT INTO vc_schemas (store_id, id, schema)
		VALUES ($1, $2, $3)
		ON CONFLICT (store_id, id) DO UPDATE SET schema = EXCLUDED.schema
	`
	if _, err := s.execer(ctx).ExecContext(ctx, query, s.storeID, schema.ID, schema.Schema); err != nil {
		return fmt.Errorf("put vc schema: %w", err)
	}
	return nil
}

func (s *Postgres) FindSchema(ctx context.Context, id string) (*credential.VcSchema, error) {
	schema := credential.VcSchema{ID: id}
	err := s.execer(ctx).QueryRowContext(ctx,
		`SELECT schema FROM vc_schemas WHERE store_id = $1 AND id = $2`,
		s.storeID, id).Scan(&schema.Schema)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, sentinel.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find vc schema: %w", err)
	}
	return &schema, nil
}
