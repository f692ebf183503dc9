package cookies

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/rosdobro/dobrodela-cli/internal/dbx"
)

// SQLiteRepository implements Repository using a DBTX (either *sql.DB or *sql.Tx).
type SQLiteRepository struct {
	db dbx.DBTX
}

// NewSQLiteRepository returns a new SQLiteRepository bound to the given DBTX.
func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func (r *SQLiteRepository) Get(ctx context.Context, name string) (*Entry, error) {
	var (
		e         Entry
		expiresAt sql.NullInt64
	)
	err := r.db.QueryRowContext(ctx, `
		SELECT name, value, path, domain, secure, http_only, same_site, expires_at
		FROM cookies WHERE name = ?`, name).
		Scan(&e.Name, &e.Value, &e.Path, &e.Domain, &e.Secure, &e.HTTPOnly, &e.SameSite, &expiresAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get cookie[%s]: %w", name, err)
	}
	if expiresAt.Valid {
		e.ExpiresAt = time.Unix(expiresAt.Int64, 0)
	}
	return &e, nil
}

func (r *SQLiteRepository) Set(ctx context.Context, e *Entry) error {
	var expiresAt sql.NullInt64
	if !e.ExpiresAt.IsZero() {
		expiresAt = sql.NullInt64{Int64: e.ExpiresAt.Unix(), Valid: true}
	}
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO cookies (name, value, path, domain, secure, http_only, same_site, expires_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(name) DO UPDATE SET
			value = excluded.value,
			path = excluded.path,
			domain = excluded.domain,
			secure = excluded.secure,
			http_only = excluded.http_only,
			same_site = excluded.same_site,
			expires_at = excluded.expires_at
	`, e.Name, e.Value, e.Path, e.Domain, e.Secure, e.HTTPOnly, e.SameSite, expiresAt)
	if err != nil {
		return fmt.Errorf("failed to set cookie[%s]: %w", e.Name, err)
	}
	return nil
}

func (r *SQLiteRepository) Delete(ctx context.Context, name string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM cookies WHERE name = ?`, name)
	if err != nil {
		return fmt.Errorf("failed to delete cookie[%s]: %w", name, err)
	}
	return nil
}

func (r *SQLiteRepository) List(ctx context.Context) ([]*Entry, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT name, value, path, domain, secure, http_only, same_site, expires_at
		FROM cookies`)
	if err != nil {
		return nil, fmt.Errorf("failed to list cookies: %w", err)
	}
	defer rows.Close()

	var result []*Entry
	for rows.Next() {
		var (
			e         Entry
			expiresAt sql.NullInt64
		)
		if err := rows.Scan(&e.Name, &e.Value, &e.Path, &e.Domain, &e.Secure, &e.HTTPOnly, &e.SameSite, &expiresAt); err != nil {
			return nil, fmt.Errorf("failed to scan cookie row: %w", err)
		}
		if expiresAt.Valid {
			e.ExpiresAt = time.Unix(expiresAt.Int64, 0)
		}
		result = append(result, &e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate cookie rows: %w", err)
	}
	return result, nil
}

func (r *SQLiteRepository) Clear(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM cookies`)
	if err != nil {
		return fmt.Errorf("failed to clear cookies: %w", err)
	}
	return nil
}
