package router

import (
	"fmt"
	"reflect"
	"runtime"
	"strings"
)

// Params maps placeholder names of the matched template to path segments.
type Params map[string]string

// Action is a zero-argument step of a middleware chain.
type Action func() error

// Middleware wraps the rest of the chain. Process may do work before or
// after calling next, or return without calling it to stop the chain.
type Middleware interface {
	Process(c *Context, next Action) error
}

// MiddlewareFunc adapts a plain function to the Middleware interface.
type MiddlewareFunc func(c *Context, next Action) error

// Process calls f(c, next).
func (f MiddlewareFunc) Process(c *Context, next Action) error {
	return f(c, next)
}

// Use wraps an already built middleware into an identifier accepted by
// AddMiddleware and AddRouteMiddleware.
func Use(m Middleware) any {
	return func() Middleware { return m }
}

var (
	errorType      = reflect.TypeFor[error]()
	middlewareType = reflect.TypeFor[Middleware]()
)

// Handler is the target of a route: an owner built through the container
// plus one of its methods.
type Handler struct {
	constructor any
	invoke      func(owner any, c *Context, p Params) error
	name        string
}

// Handle binds a controller constructor to one of its methods. The
// constructor is resolved through the container on every dispatch, so its
// parameters must be registered services. Handle panics when constructor
// does not produce a T.
//
//	router.Handle[*AuthController](NewAuthController, (*AuthController).Login)
func Handle[T any](constructor any, method func(T, *Context, Params) error) Handler {
	if method == nil {
		panic("router: nil handler method")
	}

	want := reflect.TypeFor[T]()
	if err := checkConstructor(constructor, want); err != nil {
		panic(fmt.Sprintf("router: %v", err))
	}

	return Handler{
		constructor: constructor,
		invoke: func(owner any, c *Context, p Params) error {
			ctrl, ok := owner.(T)
			if !ok {
				return fmt.Errorf("%w: got %T, want %s", ErrInvalidHandler, owner, want)
			}
			return method(ctrl, c, p)
		},
		name: shortFuncName(method),
	}
}

// HandleFunc builds a Handler without an owner.
func HandleFunc(fn func(c *Context, p Params) error) Handler {
	if fn == nil {
		panic("router: nil handler func")
	}

	return Handler{
		invoke: func(_ any, c *Context, p Params) error {
			return fn(c, p)
		},
		name: shortFuncName(fn),
	}
}

// String returns the owner and method name, as in "(*AuthController).Login".
func (h Handler) String() string {
	return h.name
}

func (h Handler) valid() bool {
	return h.invoke != nil
}

// checkConstructor reports whether fn is a function returning (T) or (T, error)
// with T assignable to want.
func checkConstructor(fn any, want reflect.Type) error {
	ft := reflect.TypeOf(fn)
	if ft == nil || ft.Kind() != reflect.Func {
		return fmt.Errorf("%T is not a constructor", fn)
	}

	switch {
	case ft.NumOut() == 1:
	case ft.NumOut() == 2 && ft.Out(1) == errorType:
	default:
		return fmt.Errorf("%s must return (%s) or (%s, error)", ft, want, want)
	}

	if !ft.Out(0).AssignableTo(want) {
		return fmt.Errorf("%s does not produce %s", ft, want)
	}
	return nil
}

func checkMiddleware(id any) error {
	if err := checkConstructor(id, middlewareType); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidMiddleware, err)
	}
	return nil
}

// shortFuncName strips the import path from a function name.
func shortFuncName(fn any) string {
	v := reflect.ValueOf(fn)
	f := runtime.FuncForPC(v.Pointer())
	if f == nil {
		return v.Type().String()
	}

	name := f.Name()
	if i := strings.LastIndex(name, "/"); i >= 0 {
		name = name[i+1:]
	}
	if i := strings.Index(name, "."); i >= 0 {
		name = name[i+1:]
	}
	return strings.TrimSuffix(name, "-fm")
}
