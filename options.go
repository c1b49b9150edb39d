package catalyst

import (
	"context"
	"io/fs"
	"log/slog"

	"github.com/dmitrymomot/catalyst/pkg/container"
)

// Option configures an App.
type Option func(*App)

// WithLogger sets the logger of the app. It is also registered in the
// container as *slog.Logger unless a definition already exists.
func WithLogger(log *slog.Logger) Option {
	return func(a *App) {
		if log != nil {
			a.log = log
		}
	}
}

// WithContainer replaces the container of the app.
func WithContainer(c *container.Container) Option {
	return func(a *App) {
		if c != nil {
			a.container = c
		}
	}
}

// WithErrorHandler sets the function answering errors the chain returned
// before anything was written.
func WithErrorHandler(h ErrorHandler) Option {
	return func(a *App) {
		if h != nil {
			a.errorHandler = h
		}
	}
}

// WithHealthChecks adds readiness checks served under /health/ready.
func WithHealthChecks(checks ...func(context.Context) error) Option {
	return func(a *App) {
		a.checks = append(a.checks, checks...)
	}
}

// WithStatic serves fsys under prefix.
func WithStatic(prefix string, fsys fs.FS) Option {
	return func(a *App) {
		if fsys != nil {
			a.static = append(a.static, staticRoute{prefix: prefix, fsys: fsys})
		}
	}
}
