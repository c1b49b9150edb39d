package router

import (
	"errors"
	"net/http"
)

var (
	// ErrInvalidPattern is returned by Add when a path template cannot be compiled.
	ErrInvalidPattern = errors.New("router.invalid_pattern")

	// ErrInvalidMethod is returned by Add for an empty HTTP method.
	ErrInvalidMethod = errors.New("router.invalid_method")

	// ErrInvalidHandler is returned when a handler was not built with Handle or HandleFunc.
	ErrInvalidHandler = errors.New("router.invalid_handler")

	// ErrInvalidMiddleware is returned when a middleware identifier is not a
	// constructor producing a Middleware.
	ErrInvalidMiddleware = errors.New("router.invalid_middleware")

	// ErrEmptyRouteTable is returned by AddRouteMiddleware before any route was added.
	ErrEmptyRouteTable = errors.New("router.empty_route_table")

	// ErrNoErrorHandler is returned by Dispatch when no route matches and no
	// error handler was configured.
	ErrNoErrorHandler = errors.New("router.no_error_handler")
)

// HTTPError is an error carrying the status code the host should answer with.
// Key is a stable identifier usable for translations.
type HTTPError struct {
	Code int
	Key  string
}

// Error implements the error interface.
func (e HTTPError) Error() string {
	return e.Key
}

var (
	ErrBadRequest          = HTTPError{Code: http.StatusBadRequest, Key: "bad_request"}
	ErrUnauthorized        = HTTPError{Code: http.StatusUnauthorized, Key: "unauthorized"}
	ErrForbidden           = HTTPError{Code: http.StatusForbidden, Key: "forbidden"}
	ErrNotFound            = HTTPError{Code: http.StatusNotFound, Key: "not_found"}
	ErrMethodNotAllowed    = HTTPError{Code: http.StatusMethodNotAllowed, Key: "method_not_allowed"}
	ErrInternalServerError = HTTPError{Code: http.StatusInternalServerError, Key: "internal_server_error"}
)

// StatusCode returns the status carried by err, or 500 when err is not an HTTPError.
func StatusCode(err error) int {
	var httpErr HTTPError
	if errors.As(err, &httpErr) && httpErr.Code != 0 {
		return httpErr.Code
	}
	return http.StatusInternalServerError
}
