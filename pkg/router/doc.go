// Package router matches requests against an ordered route table and runs the
// matched controller method inside an onion of middlewares.
//
// # Routes
//
// A route is a method, a path template and a Handler. Templates are
// normalized with NormalizePath, so "users/{id}" and "//users/{id}/" are the
// same route. A {name} segment captures exactly one path segment; every
// other character is matched literally.
//
//	r := router.New()
//	_ = r.Add(http.MethodGet, "/users/{id}", router.Handle[*UserController](NewUserController, (*UserController).Show))
//	_ = r.AddRouteMiddleware(middleware.NewAuthRequired)
//
// Routes are scanned in registration order and the first one matching both
// the path and the method wins. A POST request whose form carries a _METHOD
// field is dispatched as the method named by that field, which lets HTML
// forms reach DELETE routes.
//
// # Middlewares
//
// A middleware identifier is a constructor returning a Middleware. The
// constructor is resolved through the container on every dispatch, so its
// parameters are injected from the registered services.
//
// The chain of a route is its own middlewares followed by the global ones.
// Each middleware wraps the previous step, which means the last one in that
// list runs first: global middlewares run in reverse registration order, then
// the route middlewares in reverse registration order, then the handler. A
// middleware that returns without calling next stops the chain.
//
// # Errors
//
// The router does not catch errors. Anything returned by a handler or a
// middleware propagates through every outer middleware and out of Dispatch.
// When no route matches, the error handler runs wrapped by the global
// middlewares only; without an error handler Dispatch returns ErrNoErrorHandler.
package router
