// Package app wires the sample application: services, routes and middlewares.
package app

import (
	"log/slog"

	"github.com/dmitrymomot/catalyst"
	"github.com/dmitrymomot/catalyst/internal/app/controller"
	"github.com/dmitrymomot/catalyst/internal/app/service"
	appview "github.com/dmitrymomot/catalyst/internal/app/view"
	"github.com/dmitrymomot/catalyst/middleware"
	"github.com/dmitrymomot/catalyst/pkg/container"
	"github.com/dmitrymomot/catalyst/pkg/ratelimiter"
	"github.com/dmitrymomot/catalyst/pkg/router"
	"github.com/dmitrymomot/catalyst/pkg/session"
	"github.com/dmitrymomot/catalyst/pkg/view"
)

// Deps are the resources opened by the caller and shared with the app.
type Deps struct {
	Logger   *slog.Logger
	Sessions *session.Manager
	Users    service.UserStore
	// Limits keeps the throttling buckets of the auth forms. When nil an
	// in-process store without stale bucket cleanup is used.
	Limits ratelimiter.Store
}

// New builds the application.
func New(cfg Config, deps Deps, opts ...catalyst.Option) (*catalyst.App, error) {
	app := catalyst.New(append([]catalyst.Option{catalyst.WithLogger(deps.Logger)}, opts...)...)

	app.AddDefinitions(definitions(cfg, deps))
	registerRoutes(app)
	registerMiddleware(app)

	if err := app.Err(); err != nil {
		return nil, err
	}
	return app, nil
}

func definitions(cfg Config, deps Deps) container.Definitions {
	views := view.New()
	views.AddGlobal(appview.AppNameKey, cfg.App.Name)
	appview.RegisterAll(views)

	limits := deps.Limits
	if limits == nil {
		limits = ratelimiter.NewMemoryStore(ratelimiter.WithCleanupInterval(0))
	}
	rateLimit := cfg.RateLimit
	if rateLimit == (ratelimiter.Config{}) {
		rateLimit = ratelimiter.DefaultConfig()
	}

	return container.Definitions{
		container.Key[*view.Engine]():                 container.Value(views),
		container.Key[*session.Manager]():             container.Value(deps.Sessions),
		container.Key[service.UserStore]():            container.Value(deps.Users),
		container.Key[*service.UserSettings]():        container.Value(&service.UserSettings{BcryptCost: cfg.Bcrypt}),
		container.Key[*service.ValidatorService]():    container.Constructor(service.NewValidatorService),
		container.Key[*service.UserService]():         container.Constructor(service.NewUserService),
		container.Key[*middleware.TemplateSettings](): container.Value(&middleware.TemplateSettings{Title: cfg.App.Name}),
		container.Key[*ratelimiter.Bucket](): func(*container.Container) (any, error) {
			return ratelimiter.NewBucket(limits, rateLimit)
		},
	}
}

func registerRoutes(app *catalyst.App) {
	home := router.Handle[*controller.HomeController]
	auth := router.Handle[*controller.AuthController]
	errs := router.Handle[*controller.ErrorController]

	app.Get("/", home(controller.NewHomeController, (*controller.HomeController).Home))

	app.Get("/register", auth(controller.NewAuthController, (*controller.AuthController).RegisterView)).
		Middleware(middleware.NewGuestOnly)
	app.Post("/register", auth(controller.NewAuthController, (*controller.AuthController).Register)).
		Middleware(middleware.NewGuestOnly).
		Middleware(middleware.NewThrottle)
	app.Get("/login", auth(controller.NewAuthController, (*controller.AuthController).LoginView)).
		Middleware(middleware.NewGuestOnly)
	app.Post("/login", auth(controller.NewAuthController, (*controller.AuthController).Login)).
		Middleware(middleware.NewGuestOnly).
		Middleware(middleware.NewThrottle)
	app.Get("/logout", auth(controller.NewAuthController, (*controller.AuthController).Logout)).
		Middleware(middleware.NewAuthRequired)

	app.SetErrorHandler(errs(controller.NewErrorController, (*controller.ErrorController).NotFound))
}

// registerMiddleware adds the global middlewares. The last one registered
// runs first: request id, logging and recovery wrap the session, which
// wraps the flash and CSRF handling.
func registerMiddleware(app *catalyst.App) {
	app.AddMiddleware(middleware.NewCSRFGuard)
	app.AddMiddleware(middleware.NewCSRFToken)
	app.AddMiddleware(middleware.NewTemplateData)
	app.AddMiddleware(middleware.NewValidationErrors)
	app.AddMiddleware(middleware.NewFlash)
	app.AddMiddleware(middleware.NewSession)
	app.AddMiddleware(middleware.NewRecover)
	app.AddMiddleware(middleware.NewLogging)
	app.AddMiddleware(middleware.NewRequestID)
}
