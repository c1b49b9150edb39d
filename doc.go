// Package catalyst is a small MVC web framework built from three parts: a
// router matching regex path templates and running onion middlewares, a
// container autowiring controllers and middlewares from their constructors,
// and a rule based validator.
//
// An App ties them together and serves HTTP:
//
//	app := catalyst.New(catalyst.WithLogger(log))
//	app.AddDefinitions(container.Definitions{
//		container.Key[*UserService](): container.Constructor(NewUserService),
//	})
//
//	app.Get("/", router.Handle[*HomeController](NewHomeController, (*HomeController).Index))
//	app.Get("/login", router.Handle[*AuthController](NewAuthController, (*AuthController).LoginForm)).
//		Middleware(middleware.NewGuestOnly)
//
//	app.AddMiddleware(middleware.NewSession)
//	if err := app.Run(ctx, httpserver.New()); err != nil { ... }
//
// Controllers and middlewares are built per request through the container, so
// their constructor parameters must be registered services. Global
// middlewares run in reverse registration order around the route middlewares.
//
// Errors returned by the chain are never swallowed by the router: the App
// logs them and, when nothing was written yet, answers with the status
// carried by a router.HTTPError or 500.
package catalyst
