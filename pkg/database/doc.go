// Package database is the postgres data store used by services. It wraps
// pgx/v5 for connectivity and goose/v3 for migrations.
//
// Connect opens a *pgxpool.Pool from Config (DATABASE_URL or the discrete
// DB_* variables), retrying while the server comes up. Migrate applies goose
// migrations from an embedded filesystem through the same pool, and
// Healthcheck returns a probe suitable for readiness endpoints.
//
// Services talk to the database through DB:
//
//	db := database.New(pool)
//
//	n, err := db.Query(ctx, "SELECT COUNT(*) FROM users WHERE email = $1", email).Count()
//	row, err := db.Query(ctx, "SELECT * FROM users WHERE email = $1", email).Find()
//	user, err := database.One[User](db.Query(ctx, "SELECT * FROM users WHERE id = $1", id))
//
// Find and One report ErrRecordNotFound when no row matches; use
// IsNotFoundError, IsDuplicateKeyError and IsForeignKeyViolationError to
// classify failures.
package database
