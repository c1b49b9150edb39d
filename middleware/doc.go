// Package middleware holds the router middlewares of a catalyst application.
//
// Every middleware is a struct with a constructor whose parameters are
// services, so that the router can build it through the container:
//
//	app.AddMiddleware(middleware.NewCSRFGuard)
//	app.AddMiddleware(middleware.NewCSRFToken)
//	app.AddMiddleware(middleware.NewTemplateData)
//	app.AddMiddleware(middleware.NewValidationErrors)
//	app.AddMiddleware(middleware.NewFlash)
//	app.AddMiddleware(middleware.NewSession)
//
// Global middlewares run in reverse registration order, so the list above
// starts the session first and checks the CSRF token last, right before the
// route middlewares and the controller.
//
// GuestOnly, AuthRequired and Throttle are meant for single routes:
//
//	app.Post("/login", login).
//		Middleware(middleware.NewGuestOnly).
//		Middleware(middleware.NewThrottle)
package middleware
