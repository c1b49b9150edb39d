package database

import (
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

var (
	ErrFailedToOpenDBConnection = errors.New("database.open_failed")
	ErrUnsupportedDriver        = errors.New("database.unsupported_driver")
	ErrHealthcheckFailed        = errors.New("database.healthcheck_failed")
	ErrFailedToParseDBConfig    = errors.New("database.invalid_config")
	ErrFailedToApplyMigrations  = errors.New("database.migrations_failed")
	ErrRecordNotFound           = errors.New("database.record_not_found")
	ErrQueryFailed              = errors.New("database.query_failed")
)

// IsNotFoundError reports whether err means the query matched no row.
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrRecordNotFound) || errors.Is(err, pgx.ErrNoRows)
}

// IsDuplicateKeyError detects unique constraint violations (SQLSTATE 23505).
func IsDuplicateKeyError(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

// IsForeignKeyViolationError detects referential integrity violations (SQLSTATE 23503).
func IsForeignKeyViolationError(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23503"
}
