package database

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// Querier is the subset of *pgxpool.Pool, *pgx.Conn and pgx.Tx used by DB.
type Querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

// DB is the data store handed to services. Statements take positional
// placeholders ($1, $2) or pgx.NamedArgs for @name placeholders.
type DB struct {
	q Querier
}

// New wraps a pool, connection or transaction.
func New(q Querier) *DB {
	return &DB{q: q}
}

// Query prepares a statement; nothing runs until one of the Result readers is called.
func (db *DB) Query(ctx context.Context, sql string, args ...any) *Result {
	return &Result{q: db.q, ctx: ctx, sql: sql, args: args}
}

// Exec runs a statement returning no rows and reports the affected row count.
func (db *DB) Exec(ctx context.Context, sql string, args ...any) (int64, error) {
	tag, err := db.q.Exec(ctx, sql, args...)
	if err != nil {
		return 0, wrap(sql, err)
	}
	return tag.RowsAffected(), nil
}

// Result reads the rows of a prepared statement.
type Result struct {
	q    Querier
	ctx  context.Context
	sql  string
	args []any
}

// Find returns the first row as a column name to value map.
// ErrRecordNotFound is returned when there is no row.
func (r *Result) Find() (map[string]any, error) {
	rows, err := r.q.Query(r.ctx, r.sql, r.args...)
	if err != nil {
		return nil, wrap(r.sql, err)
	}

	row, err := pgx.CollectOneRow(rows, pgx.RowToMap)
	if err != nil {
		return nil, wrap(r.sql, err)
	}
	return row, nil
}

// FindAll returns every row as column name to value maps.
func (r *Result) FindAll() ([]map[string]any, error) {
	rows, err := r.q.Query(r.ctx, r.sql, r.args...)
	if err != nil {
		return nil, wrap(r.sql, err)
	}

	all, err := pgx.CollectRows(rows, pgx.RowToMap)
	if err != nil {
		return nil, wrap(r.sql, err)
	}
	return all, nil
}

// Count returns the first column of the first row, as in SELECT COUNT(*).
func (r *Result) Count() (int64, error) {
	var n int64
	if err := r.q.QueryRow(r.ctx, r.sql, r.args...).Scan(&n); err != nil {
		return 0, wrap(r.sql, err)
	}
	return n, nil
}

// Scan copies the columns of the first row into dest.
func (r *Result) Scan(dest ...any) error {
	if err := r.q.QueryRow(r.ctx, r.sql, r.args...).Scan(dest...); err != nil {
		return wrap(r.sql, err)
	}
	return nil
}

// One maps the first row onto T by column name.
func One[T any](r *Result) (T, error) {
	var zero T
	rows, err := r.q.Query(r.ctx, r.sql, r.args...)
	if err != nil {
		return zero, wrap(r.sql, err)
	}

	v, err := pgx.CollectOneRow(rows, pgx.RowToStructByNameLax[T])
	if err != nil {
		return zero, wrap(r.sql, err)
	}
	return v, nil
}

// All maps every row onto T by column name.
func All[T any](r *Result) ([]T, error) {
	rows, err := r.q.Query(r.ctx, r.sql, r.args...)
	if err != nil {
		return nil, wrap(r.sql, err)
	}

	v, err := pgx.CollectRows(rows, pgx.RowToStructByNameLax[T])
	if err != nil {
		return nil, wrap(r.sql, err)
	}
	return v, nil
}

func wrap(sql string, err error) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrRecordNotFound
	}
	return fmt.Errorf("%w: %s: %w", ErrQueryFailed, sql, err)
}
