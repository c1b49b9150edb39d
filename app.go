package catalyst

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrymomot/catalyst/pkg/container"
	"github.com/dmitrymomot/catalyst/pkg/httpserver"
	"github.com/dmitrymomot/catalyst/pkg/logger"
	"github.com/dmitrymomot/catalyst/pkg/requestid"
	"github.com/dmitrymomot/catalyst/pkg/router"
)

// Health check paths served by Handler.
const (
	LivenessPath  = "/health/live"
	ReadinessPath = "/health/ready"
)

// ErrorHandler answers an error returned by the chain when the response was
// not written yet.
type ErrorHandler func(c *router.Context, err error)

type staticRoute struct {
	prefix string
	fsys   fs.FS
}

// App registers routes, middlewares and services, and serves HTTP.
//
// Registration is not safe for concurrent use and must be done before
// serving. Registration failures are collected and reported by Err and Run.
type App struct {
	router       *router.Router
	container    *container.Container
	log          *slog.Logger
	errorHandler ErrorHandler
	checks       []func(context.Context) error
	static       []staticRoute
	errs         []error
}

// New creates an App.
func New(opts ...Option) *App {
	a := &App{
		router:       router.New(),
		container:    container.New(),
		log:          logger.Discard(),
		errorHandler: defaultErrorHandler,
	}

	for _, opt := range opts {
		opt(a)
	}

	if !a.container.Has(container.Key[*slog.Logger]()) {
		a.container.AddDefinitions(container.Definitions{
			container.Key[*slog.Logger](): container.Value(a.log),
		})
	}

	return a
}

// Container returns the service container of the app.
func (a *App) Container() *container.Container {
	return a.container
}

// Router returns the route table of the app.
func (a *App) Router() *router.Router {
	return a.router
}

// Logger returns the app logger.
func (a *App) Logger() *slog.Logger {
	return a.log
}

// AddDefinitions registers service factories.
func (a *App) AddDefinitions(defs container.Definitions) *App {
	a.container.AddDefinitions(defs)
	return a
}

func (a *App) Get(path string, h router.Handler) *App {
	return a.Add(http.MethodGet, path, h)
}

func (a *App) Post(path string, h router.Handler) *App {
	return a.Add(http.MethodPost, path, h)
}

func (a *App) Put(path string, h router.Handler) *App {
	return a.Add(http.MethodPut, path, h)
}

func (a *App) Patch(path string, h router.Handler) *App {
	return a.Add(http.MethodPatch, path, h)
}

func (a *App) Delete(path string, h router.Handler) *App {
	return a.Add(http.MethodDelete, path, h)
}

// Add registers a route for method and path.
func (a *App) Add(method, path string, h router.Handler) *App {
	a.collect(a.router.Add(method, path, h))
	return a
}

// Middleware attaches a middleware constructor to the last registered route.
func (a *App) Middleware(id any) *App {
	a.collect(a.router.AddRouteMiddleware(id))
	return a
}

// AddMiddleware registers a middleware constructor applied to every route
// and to the error handler.
func (a *App) AddMiddleware(id any) *App {
	a.collect(a.router.AddMiddleware(id))
	return a
}

// SetErrorHandler sets the handler dispatched when no route matches.
func (a *App) SetErrorHandler(h router.Handler) *App {
	a.router.SetErrorHandler(h)
	return a
}

// Err returns the registration failures, if any.
func (a *App) Err() error {
	if len(a.errs) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %w", ErrInvalidRegistration, errors.Join(a.errs...))
}

func (a *App) collect(err error) {
	if err != nil {
		a.errs = append(a.errs, err)
	}
}

// ServeHTTP dispatches the request through the route table.
func (a *App) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	c := router.NewContext(w, r)

	err := a.router.Dispatch(c, a.container)
	if err == nil {
		return
	}
	if errors.Is(err, router.ErrNoErrorHandler) {
		err = errors.Join(router.ErrNotFound, err)
	}

	status := router.StatusCode(err)
	attrs := []slog.Attr{
		logger.Method(c.Method()),
		logger.Path(c.Path()),
		logger.Status(status),
		logger.Error(err),
	}
	if status >= http.StatusInternalServerError {
		a.log.LogAttrs(c, slog.LevelError, "unhandled request error", attrs...)
	} else {
		a.log.LogAttrs(c, slog.LevelDebug, "request error", attrs...)
	}

	if c.Written() {
		return
	}
	a.errorHandler(c, err)
}

// Handler returns the HTTP entry point: request ids, health checks, static
// files, and every other request dispatched through the route table.
func (a *App) Handler() http.Handler {
	mux := chi.NewRouter()
	mux.Use(requestid.Middleware)

	mux.Get(LivenessPath, httpserver.LivenessHandler())
	mux.Get(ReadinessPath, httpserver.ReadinessHandler(a.log, a.checks...))

	for _, sr := range a.static {
		prefix := "/" + strings.Trim(sr.prefix, "/") + "/"
		mux.Handle(prefix+"*", http.StripPrefix(prefix, http.FileServerFS(sr.fsys)))
	}

	mux.Handle("/*", a)
	return mux
}

// Run serves the app on srv until ctx is done or the process is asked to stop.
func (a *App) Run(ctx context.Context, srv *httpserver.Server) error {
	if err := a.Err(); err != nil {
		return err
	}
	return srv.Run(ctx, a.Handler())
}

func defaultErrorHandler(c *router.Context, err error) {
	status := router.StatusCode(err)
	http.Error(c.ResponseWriter(), http.StatusText(status), status)
}
