package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"github.com/jwalitptl/bloodbank-api/internal/schema"
	apperrors "github.com/jwalitptl/bloodbank-api/pkg/errors"
)

// repo holds what every entity repository needs: the shared pool and the
// schema adapter selected at startup.
type repo struct {
	db     *sqlx.DB
	schema schema.Adapter
}

// storageErr passes the driver message through verbatim. Storage failures are
// never retried or translated here.
func storageErr(err error) error {
	return apperrors.Storage(err)
}

// getRow runs a single-row lookup and maps a miss to the API's bare
// "not found".
func (r *repo) getRow(ctx context.Context, dest interface{}, query string, args ...interface{}) error {
	err := r.db.GetContext(ctx, dest, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return apperrors.NotFound("not found")
	}
	if err != nil {
		return storageErr(err)
	}
	return nil
}

// findRow is getRow for lookups where a miss is not an error (login path).
// The caller receives found=false instead.
func (r *repo) findRow(ctx context.Context, dest interface{}, query string, args ...interface{}) (bool, error) {
	err := r.db.GetContext(ctx, dest, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, storageErr(err)
	}
	return true, nil
}

// insertNamed executes a named insert. When the adapter reports storage-
// assigned ids the RETURNING value is scanned into id; otherwise id is left
// untouched.
func (r *repo) insertNamed(ctx context.Context, query string, arg interface{}, id *string) error {
	if !r.schema.GeneratesID() {
		if _, err := r.db.NamedExecContext(ctx, query, arg); err != nil {
			return storageErr(err)
		}
		return nil
	}

	rows, err := sqlx.NamedQueryContext(ctx, r.db, query, arg)
	if err != nil {
		return storageErr(err)
	}
	defer rows.Close()

	if rows.Next() {
		if err := rows.Scan(id); err != nil {
			return storageErr(err)
		}
	}
	if err := rows.Err(); err != nil {
		return storageErr(err)
	}
	return nil
}
