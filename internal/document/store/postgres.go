package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"opendid/internal/document"
	"opendid/internal/platform/postgres"
	"opendid/pkg/platform/sentinel"
	txcontext "opendid/pkg/platform/tx"
)

const setupKind = "document"

// Postgres persists documents in did_documents and did_document_status,
// scoped to its own store_id.
type Postgres struct {
	db      *sql.DB
	storeID string
}

// NewPostgres returns a store with a fresh namespace.
func NewPostgres(db *sql.DB) *Postgres {
	return NewPostgresWithID(db, uuid.NewString())
}

// NewPostgresWithID reattaches to an existing namespace, e.g. after restart.
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
	query := `
		INSERT INTO store_setup (store_id, kind, created_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (store_id, kind) DO NOTHING
	`
	res, err := s.execer(ctx).ExecContext(ctx, query, s.storeID, setupKind)
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
	query := `SELECT EXISTS (SELECT 1 FROM store_setup WHERE store_id = $1 AND kind = $2)`
	var ok bool
	if err := s.execer(ctx).QueryRowContext(ctx, query, s.storeID, setupKind).Scan(&ok); err != nil {
		return false, fmt.Errorf("read setup: %w", err)
	}
	return ok, nil
}

func (s *Postgres) Insert(ctx context.Context, rec document.Stored) error {
	body, err := json.Marshal(rec.Document)
	if err != nil {
		return fmt.Errorf("marshal document: %w", err)
	}
	return txcontext.RunInTx(ctx, s.db, func(ctx context.Context) error {
		_, err := s.execer(ctx).ExecContext(ctx, `
			INSERT INTO did_documents (store_id, id, controller, version_id, deactivated, document, submitter, created_at, updated_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		`, s.storeID, rec.Document.ID, rec.Document.Controller, rec.Document.VersionID,
			rec.Document.Deactivated, body, rec.Submitter, rec.CreatedAt, rec.UpdatedAt)
		if err != nil {
			if postgres.IsUniqueViolation(err) {
				return sentinel.ErrConflict
			}
			return fmt.Errorf("insert document: %w", err)
		}
		_, err = s.execer(ctx).ExecContext(ctx, `
			INSERT INTO did_document_status (store_id, id, status, version, role_type, terminated_time)
			VALUES ($1, $2, $3, $4, $5, $6)
		`, s.storeID, rec.Status.ID, int16(rec.Status.Status), rec.Status.Version,
			rec.Status.RoleType, rec.Status.TerminatedTime)
		if err != nil {
			return fmt.Errorf("insert document status: %w", err)
		}
		return nil
	})
}

func (s *Postgres) Find(ctx context.Context, id string) (*document.Stored, error) {
	return s.load(ctx, id, false)
}

// Modify locks the document row for the duration of fn.
func (s *Postgres) Modify(ctx context.Context, id string, fn func(*document.Stored) error) (*document.Stored, error) {
	var out *document.Stored
	err := txcontext.RunInTx(ctx, s.db, func(ctx context.Context) error {
		rec, err := s.load(ctx, id, true)
		if err != nil {
			return err
		}
		if err := fn(rec); err != nil {
			return err
		}
		if err := s.save(ctx, rec); err != nil {
			return err
		}
		out = rec
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (s *Postgres) Delete(ctx context.Context, id string) error {
	res, err := s.execer(ctx).ExecContext(ctx,
		`DELETE FROM did_documents WHERE store_id = $1 AND id = $2`, s.storeID, id)
	if err != nil {
		return fmt.Errorf("delete document: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete document: %w", err)
	}
	if n == 0 {
		return sentinel.ErrNotFound
	}
	return nil
}

func (s *Postgres) load(ctx context.Context, id string, forUpdate bool) (*document.Stored, error) {
	query := `
		SELECT d.document, d.deactivated, d.submitter, d.created_at, d.updated_at,
		       st.status, st.version, st.role_type, st.terminated_time
		FROM did_documents d
		JOIN did_document_status st ON st.store_id = d.store_id AND st.id = d.id
		WHERE d.store_id = $1 AND d.id = $2
	`
	if forUpdate {
		query += " FOR UPDATE OF d, st"
	}
	var (
		rec    document.Stored
		body   []byte
		status int16
	)
	err := s.execer(ctx).QueryRowContext(ctx, query, s.storeID, id).Scan(
		&body, &rec.Document.Deactivated, &rec.Submitter, &rec.CreatedAt, &rec.UpdatedAt,
		&status, &rec.Status.Version, &rec.Status.RoleType, &rec.Status.TerminatedTime,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, sentinel.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("load document: %w", err)
	}
	deactivated := rec.Document.Deactivated
	if err := json.Unmarshal(body, &rec.Document); err != nil {
		return nil, fmt.Errorf("unmarshal document: %w", err)
	}
	rec.Document.Deactivated = deactivated
	rec.Status.ID = id
	rec.Status.Status = document.Status(status)
	return &rec, nil
}

func (s *Postgres) save(ctx context.Context, rec *document.Stored) error {
	body, err := json.Marshal(rec.Document)
	if err != nil {
		return fmt.Errorf("marshal document: %w", err)
	}
	_, err = s.execer(ctx).ExecContext(ctx, `
		UPDATE did_documents
		SET controller = $3, version_id = $4, deactivated = $5, document = $6, updated_at = $7
		WHERE store_id = $1 AND id = $2
	`, s.storeID, rec.Document.ID, rec.Document.Controller, rec.Document.VersionID,
		rec.Document.Deactivated, body, rec.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update document: %w", err)
	}
	_, err = s.execer(ctx).ExecContext(ctx, `
		UPDATE did_document_status
		SET status = $3, version = $4, role_type = $5, terminated_time = $6
		WHERE store_id = $1 AND id = $2
	`, s.storeID, rec.Status.ID, int16(rec.Status.Status), rec.Status.Version,
		rec.Status.RoleType, rec.Status.TerminatedTime)
	if err != nil {
		return fmt.Errorf("update document status: %w", err)
	}
	return nil
}
