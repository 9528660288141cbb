package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/lib/pq"

	"opendid/pkg/domain"
	txcontext "opendid/pkg/platform/tx"
)

// Postgres persists role assignments in role_assignments.
type Postgres struct {
	db *sql.DB
}

func NewPostgres(db *sql.DB) *Postgres {
	return &Postgres{db: db}
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

func (s *Postgres) Grant(ctx context.Context, addr domain.Address, role domain.Role) (bool, error) {
	query := `
		INSERT INTO role_assignments (address, role, granted_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (address, role) DO NOTHING
	`
	res, err := s.execer(ctx).ExecContext(ctx, query, string(addr), string(role))
	if err != nil {
		return false, fmt.Errorf("grant role: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("grant role: %w", err)
	}
	return n > 0, nil
}

func (s *Postgres) HasRole(ctx context.Context, addr domain.Address, role domain.Role) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM role_assignments WHERE address = $1 AND role = $2)`
	var ok bool
	if err := s.execer(ctx).QueryRowContext(ctx, query, string(addr), string(role)).Scan(&ok); err != nil {
		return false, fmt.Errorf("check role: %w", err)
	}
	return ok, nil
}

func (s *Postgres) Roles(ctx context.Context, addr domain.Address) ([]domain.Role, error) {
	query := `
		SELECT COALESCE(array_agg(role ORDER BY role), '{}')
		FROM role_assignments
		WHERE address = $1
	`
	var labels pq.StringArray
	if err := s.execer(ctx).QueryRowContext(ctx, query, string(addr)).Scan(&labels); err != nil {
		return nil, fmt.Errorf("list roles: %w", err)
	}
	out := make([]domain.Role, 0, len(labels))
	for _, l := range labels {
		out = append(out, domain.Role(l))
	}
	return out, nil
}
