package main

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/dmitrymomot/catalyst"
	"github.com/dmitrymomot/catalyst/internal/app"
	"github.com/dmitrymomot/catalyst/internal/app/migrations"
	"github.com/dmitrymomot/catalyst/internal/app/service"
	"github.com/dmitrymomot/catalyst/pkg/config"
	"github.com/dmitrymomot/catalyst/pkg/database"
	"github.com/dmitrymomot/catalyst/pkg/httpserver"
	"github.com/dmitrymomot/catalyst/pkg/logger"
	"github.com/dmitrymomot/catalyst/pkg/ratelimiter"
	"github.com/dmitrymomot/catalyst/pkg/redis"
	"github.com/dmitrymomot/catalyst/pkg/requestid"
	"github.com/dmitrymomot/catalyst/pkg/session"
)

func main() {
	cfg, err := config.Load[app.Config]()
	if err != nil {
		slog.Error("failed to load configuration", logger.Error(err))
		os.Exit(1)
	}

	log := logger.New(
		logger.WithEnvironment(cfg.App.Env, cfg.App.Name),
		logger.WithConfig(cfg.Log),
		logger.WithContextExtractors(requestid.LogExtractor),
	)
	logger.SetAsDefault(log)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, log); err != nil {
		log.Error("application stopped with error", logger.Error(err))
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg app.Config, log *slog.Logger) error {
	var (
		deps   = app.Deps{Logger: log}
		checks []func(context.Context) error
		opts   []session.Option
	)

	switch cfg.UserStore {
	case app.StoreMemory:
		log.Warn("users are kept in memory and lost on restart")
		deps.Users = service.NewMemoryUserStore()
	case app.StorePostgres:
		pool, err := database.Connect(ctx, cfg.Database)
		if err != nil {
			return err
		}
		defer pool.Close()

		if err := database.Migrate(ctx, pool, cfg.Database, migrations.FS, migrations.Dir, log); err != nil {
			return err
		}
		deps.Users = service.NewPostgresUserStore(database.New(pool))
		checks = append(checks, database.Healthcheck(pool))
	default:
		return errors.New("unknown USER_STORE " + cfg.UserStore)
	}

	if cfg.Session.Store == "redis" {
		client, err := redis.Connect(ctx, cfg.Redis)
		if err != nil {
			return err
		}
		defer client.Close()

		opts = append(opts, session.WithStore(session.NewRedisStore(client, cfg.Redis.SessionPrefix)))
		checks = append(checks, redis.Healthcheck(client))
	}

	sessions, err := session.NewFromConfig(cfg.Session, opts...)
	if err != nil {
		return err
	}
	defer sessions.Close()
	deps.Sessions = sessions

	limits := ratelimiter.NewMemoryStore()
	defer limits.Close()
	deps.Limits = limits

	appOpts := []catalyst.Option{catalyst.WithHealthChecks(checks...)}
	if cfg.App.StaticDir != "" {
		appOpts = append(appOpts, catalyst.WithStatic(cfg.App.StaticPrefix, os.DirFS(cfg.App.StaticDir)))
	}

	a, err := app.New(cfg, deps, appOpts...)
	if err != nil {
		return err
	}

	srv := httpserver.NewFromConfig(cfg.HTTP, httpserver.WithLogger(log))
	return a.Run(ctx, srv)
}
