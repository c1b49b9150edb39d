package router

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/dmitrymomot/catalyst/pkg/container"
)

// route is an entry of the route table.
type route struct {
	method      string
	path        string
	pattern     *regexp.Regexp
	params      []string
	handler     Handler
	middlewares []any
}

// RouteInfo describes a registered route.
type RouteInfo struct {
	Method      string
	Path        string
	Handler     string
	Middlewares int
}

// Router matches requests against an ordered route table and runs the
// matched handler inside its middleware chain.
//
// Routes and middlewares must be registered before the first Dispatch.
// After that the router is read-only and safe for concurrent use.
type Router struct {
	routes       []*route
	middlewares  []any
	errorHandler Handler
}

// New creates an empty router.
func New() *Router {
	return &Router{}
}

// Add appends a route. The path is normalized and every {name} segment
// becomes a single-segment capture.
func (r *Router) Add(method, path string, h Handler) error {
	method = strings.ToUpper(strings.TrimSpace(method))
	if method == "" {
		return fmt.Errorf("%w: empty method for %q", ErrInvalidMethod, path)
	}
	if !h.valid() {
		return fmt.Errorf("%w: %s %s", ErrInvalidHandler, method, path)
	}

	path = NormalizePath(path)
	pattern, params, err := compilePattern(path)
	if err != nil {
		return err
	}

	r.routes = append(r.routes, &route{
		method:  method,
		path:    path,
		pattern: pattern,
		params:  params,
		handler: h,
	})
	return nil
}

// AddRouteMiddleware appends a middleware constructor to the most recently added route.
func (r *Router) AddRouteMiddleware(id any) error {
	if len(r.routes) == 0 {
		return ErrEmptyRouteTable
	}
	if err := checkMiddleware(id); err != nil {
		return err
	}

	last := r.routes[len(r.routes)-1]
	last.middlewares = append(last.middlewares, id)
	return nil
}

// AddMiddleware appends a middleware constructor applied to every route and
// to the error handler. Middlewares registered later run first.
func (r *Router) AddMiddleware(id any) error {
	if err := checkMiddleware(id); err != nil {
		return err
	}

	r.middlewares = append(r.middlewares, id)
	return nil
}

// SetErrorHandler sets the handler used when no route matches.
func (r *Router) SetErrorHandler(h Handler) {
	r.errorHandler = h
}

// Routes lists the route table in registration order.
func (r *Router) Routes() []RouteInfo {
	routes := make([]RouteInfo, 0, len(r.routes))
	for _, rt := range r.routes {
		routes = append(routes, RouteInfo{
			Method:      rt.method,
			Path:        rt.path,
			Handler:     rt.handler.String(),
			Middlewares: len(rt.middlewares),
		})
	}
	return routes
}

// Dispatch runs the first route matching the request method and path. When
// nothing matches, the error handler runs wrapped by the global middlewares
// only. Errors returned by handlers and middlewares are passed through
// untouched.
//
// A nil container behaves like an empty one: only constructors without
// parameters can be resolved.
func (r *Router) Dispatch(c *Context, ctr *container.Container) error {
	if ctr == nil {
		ctr = container.New()
	}

	path := NormalizePath(c.Path())
	method := c.Method()

	for _, rt := range r.routes {
		values := rt.pattern.FindStringSubmatch(path)
		if values == nil || rt.method != method {
			continue
		}

		params := make(Params, len(rt.params))
		for i, name := range rt.params {
			params[name] = values[i+1]
		}
		c.params = params
		c.route = rt.path

		middlewares := make([]any, 0, len(rt.middlewares)+len(r.middlewares))
		middlewares = append(middlewares, rt.middlewares...)
		middlewares = append(middlewares, r.middlewares...)

		action, err := compose(c, ctr, rt.handler, params, middlewares)
		if err != nil {
			return fmt.Errorf("%s %s: %w", rt.method, rt.path, err)
		}
		return action()
	}

	return r.dispatchNotFound(c, ctr)
}

func (r *Router) dispatchNotFound(c *Context, ctr *container.Container) error {
	if !r.errorHandler.valid() {
		return ErrNoErrorHandler
	}

	params := Params{}
	c.params = params
	c.route = ""

	action, err := compose(c, ctr, r.errorHandler, params, r.middlewares)
	if err != nil {
		return fmt.Errorf("error handler: %w", err)
	}
	return action()
}

// compose resolves the handler owner and every middleware, then folds the
// middleware list around the handler call. Each step wraps the previous
// action, so the last middleware of the list ends up outermost. Nothing runs
// until the returned action is called.
func compose(c *Context, ctr *container.Container, h Handler, params Params, middlewares []any) (Action, error) {
	var owner any
	if h.constructor != nil {
		var err error
		if owner, err = ctr.Resolve(h.constructor); err != nil {
			return nil, fmt.Errorf("resolve %s: %w", h, err)
		}
	}

	action := Action(func() error {
		return h.invoke(owner, c, params)
	})

	for _, id := range middlewares {
		v, err := ctr.Resolve(id)
		if err != nil {
			return nil, fmt.Errorf("resolve middleware: %w", err)
		}
		m, ok := v.(Middleware)
		if !ok {
			return nil, fmt.Errorf("%w: %T", ErrInvalidMiddleware, v)
		}

		next := action
		action = func() error {
			return m.Process(c, next)
		}
	}

	return action, nil
}
