package database

import (
	"context"
	"errors"
	"fmt"
	"io/fs"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
)

type logger interface {
	InfoContext(ctx context.Context, msg string, args ...any)
	ErrorContext(ctx context.Context, msg string, args ...any)
}

// Migrate applies the goose migrations found in dir of fsys, usually an
// embed.FS compiled into the binary.
func Migrate(ctx context.Context, pool *pgxpool.Pool, cfg Config, fsys fs.FS, dir string, log logger) error {
	if fsys == nil {
		return errors.Join(ErrFailedToApplyMigrations, errors.New("no migrations filesystem"))
	}

	// goose speaks database/sql; share the pool's connections through stdlib.
	db := stdlib.OpenDBFromPool(pool)
	defer func() {
		if err := db.Close(); err != nil {
			log.ErrorContext(ctx, "failed to close migrations connection", "error", err)
		}
	}()

	goose.SetBaseFS(fsys)
	goose.SetLogger(gooseLogger{log: log})
	if cfg.MigrationsTable != "" {
		goose.SetTableName(cfg.MigrationsTable)
	}

	if err := goose.SetDialect("postgres"); err != nil {
		return errors.Join(ErrFailedToApplyMigrations, err)
	}
	if err := goose.UpContext(ctx, db, dir); err != nil {
		return errors.Join(ErrFailedToApplyMigrations, err)
	}
	return nil
}

// gooseLogger routes goose output through the application logger.
type gooseLogger struct {
	log logger
}

func (l gooseLogger) Fatalf(format string, v ...any) {
	l.log.ErrorContext(context.Background(), fmt.Sprintf(format, v...))
}

func (l gooseLogger) Printf(format string, v ...any) {
	l.log.InfoContext(context.Background(), fmt.Sprintf(format, v...))
}
