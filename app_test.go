package catalyst_test

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync/atomic"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/catalyst"
	"github.com/dmitrymomot/catalyst/pkg/container"
	"github.com/dmitrymomot/catalyst/pkg/requestid"
	"github.com/dmitrymomot/catalyst/pkg/router"
)

type greeter struct {
	greeting string
}

type greetController struct {
	greeter *greeter
}

func newGreetController(g *greeter) *greetController {
	return &greetController{greeter: g}
}

func (ctrl *greetController) Hello(c *router.Context, p router.Params) error {
	return c.HTML(http.StatusOK, ctrl.greeter.greeting+", "+p["name"])
}

func (ctrl *greetController) Update(c *router.Context, p router.Params) error {
	return c.HTML(http.StatusOK, "updated "+p["name"])
}

func (ctrl *greetController) Missing(c *router.Context, _ router.Params) error {
	return c.HTML(http.StatusNotFound, "nothing here")
}

func newApp(opts ...catalyst.Option) *catalyst.App {
	app := catalyst.New(opts...)
	app.AddDefinitions(container.Definitions{
		container.Key[*greeter](): container.Value(&greeter{greeting: "Hello"}),
	})
	return app
}

func get(t *testing.T, h http.Handler, target string) *httptest.ResponseRecorder {
	t.Helper()

	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, target, nil))
	return w
}

func TestApp_Routes(t *testing.T) {
	t.Parallel()

	app := newApp()
	app.Get("/hello/{name}", router.Handle[*greetController](newGreetController, (*greetController).Hello))
	app.Put("/hello/{name}", router.Handle[*greetController](newGreetController, (*greetController).Update))
	require.NoError(t, app.Err())

	t.Run("autowired controller", func(t *testing.T) {
		t.Parallel()

		w := get(t, app, "/hello/jane")
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "Hello, jane", w.Body.String())
	})

	t.Run("method override", func(t *testing.T) {
		t.Parallel()

		form := url.Values{router.MethodOverrideField: {"PUT"}}
		req := httptest.NewRequest(http.MethodPost, "/hello/jane", strings.NewReader(form.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		w := httptest.NewRecorder()
		app.ServeHTTP(w, req)

		assert.Equal(t, "updated jane", w.Body.String())
	})

	t.Run("no route and no error handler", func(t *testing.T) {
		t.Parallel()

		w := get(t, app, "/nowhere")
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestApp_ErrorHandler(t *testing.T) {
	t.Parallel()

	app := newApp()
	app.SetErrorHandler(router.Handle[*greetController](newGreetController, (*greetController).Missing))

	w := get(t, app, "/nowhere")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "nothing here", w.Body.String())
}

func TestApp_Middlewares(t *testing.T) {
	t.Parallel()

	var calls []string
	mw := func(name string) any {
		return func() router.Middleware {
			return router.MiddlewareFunc(func(c *router.Context, next router.Action) error {
				calls = append(calls, name)
				return next()
			})
		}
	}

	app := newApp()
	app.Get("/hello/{name}", router.Handle[*greetController](newGreetController, (*greetController).Hello)).
		Middleware(mw("route"))
	app.AddMiddleware(mw("first")).AddMiddleware(mw("second"))
	require.NoError(t, app.Err())

	w := get(t, app, "/hello/jane")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, []string{"second", "first", "route"}, calls)
}

func TestApp_Errors(t *testing.T) {
	t.Parallel()

	failing := func(err error) router.Handler {
		return router.HandleFunc(func(*router.Context, router.Params) error { return err })
	}

	app := newApp()
	app.Get("/forbidden", failing(router.ErrForbidden))
	app.Get("/broken", failing(errors.New("boom")))
	app.Get("/written", router.HandleFunc(func(c *router.Context, _ router.Params) error {
		_ = c.HTML(http.StatusAccepted, "partial")
		return errors.New("late failure")
	}))

	assert.Equal(t, http.StatusForbidden, get(t, app, "/forbidden").Code)
	assert.Equal(t, http.StatusInternalServerError, get(t, app, "/broken").Code)

	w := get(t, app, "/written")
	assert.Equal(t, http.StatusAccepted, w.Code)
	assert.Equal(t, "partial", w.Body.String())
}

func TestApp_CustomErrorHandler(t *testing.T) {
	t.Parallel()

	app := newApp(catalyst.WithErrorHandler(func(c *router.Context, err error) {
		_ = c.HTML(router.StatusCode(err), "custom: "+err.Error())
	}))
	app.Get("/forbidden", router.HandleFunc(func(*router.Context, router.Params) error {
		return router.ErrForbidden
	}))

	w := get(t, app, "/forbidden")
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Equal(t, "custom: forbidden", w.Body.String())
}

func TestApp_RegistrationErrors(t *testing.T) {
	t.Parallel()

	app := newApp()
	app.Middleware(func() router.Middleware { return nil })
	app.AddMiddleware("not a constructor")

	err := app.Err()
	require.Error(t, err)
	assert.ErrorIs(t, err, catalyst.ErrInvalidRegistration)
	assert.ErrorIs(t, err, router.ErrEmptyRouteTable)
	assert.ErrorIs(t, err, router.ErrInvalidMiddleware)

	assert.ErrorIs(t, app.Run(context.Background(), nil), catalyst.ErrInvalidRegistration)
}

func TestApp_Handler(t *testing.T) {
	t.Parallel()

	var ready atomic.Bool
	ready.Store(true)
	static := fstest.MapFS{"app.css": {Data: []byte("body{}")}}

	app := newApp(
		catalyst.WithStatic("/static/", static),
		catalyst.WithHealthChecks(func(context.Context) error {
			if !ready.Load() {
				return errors.New("not ready")
			}
			return nil
		}),
	)
	app.Get("/hello/{name}", router.Handle[*greetController](newGreetController, (*greetController).Hello))
	app.Get("/request-id", router.HandleFunc(func(c *router.Context, _ router.Params) error {
		return c.HTML(http.StatusOK, requestid.FromContext(c))
	}))

	srv := httptest.NewServer(app.Handler())
	defer srv.Close()

	fetch := func(path string) (int, string, http.Header) {
		resp, err := http.Get(srv.URL + path)
		require.NoError(t, err)
		defer resp.Body.Close()
		body, err := io.ReadAll(resp.Body)
		require.NoError(t, err)
		return resp.StatusCode, string(body), resp.Header
	}

	code, body, _ := fetch(catalyst.LivenessPath)
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, "ALIVE", body)

	code, body, _ = fetch(catalyst.ReadinessPath)
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, "READY", body)

	code, body, _ = fetch("/static/app.css")
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, "body{}", body)

	code, body, _ = fetch("/hello/bob")
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, "Hello, bob", body)

	code, body, header := fetch("/request-id")
	assert.Equal(t, http.StatusOK, code)
	assert.NotEmpty(t, body)
	assert.Equal(t, body, header.Get(requestid.Header))

	ready.Store(false)
	code, _, _ = fetch(catalyst.ReadinessPath)
	assert.Equal(t, http.StatusServiceUnavailable, code)
}

func TestConfig(t *testing.T) {
	t.Parallel()

	assert.True(t, catalyst.Config{Env: catalyst.EnvProduction}.IsProduction())
	assert.False(t, catalyst.Config{Env: catalyst.EnvDevelopment}.IsProduction())
}
