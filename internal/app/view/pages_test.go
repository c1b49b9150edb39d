package view_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appview "github.com/dmitrymomot/catalyst/internal/app/view"
	"github.com/dmitrymomot/catalyst/pkg/view"
)

func newEngine() *view.Engine {
	engine := view.New()
	engine.AddGlobal(appview.AppNameKey, "Catalyst")
	appview.RegisterAll(engine)
	return engine
}

func TestRegisterAll(t *testing.T) {
	t.Parallel()

	assert.Equal(t,
		[]string{appview.Login, appview.Register, appview.Home, appview.NotFound},
		newEngine().Views(),
	)
}

func TestRegisterPage(t *testing.T) {
	t.Parallel()

	html, err := newEngine().Render(context.Background(), appview.Register, view.Data{
		view.TitleKey:     "Register",
		view.CSRFTokenKey: "tok123",
		view.ErrorsKey:    map[string][]string{"email": {"Email is already taken"}},
		view.OldInputKey:  map[string]string{"email": `<jane@example.com>`},
	})
	require.NoError(t, err)

	assert.Contains(t, html, "<title>Catalyst | Register</title>")
	assert.Contains(t, html, `name="csrf_token" value="tok123"`)
	assert.Contains(t, html, "Email is already taken")
	assert.Contains(t, html, `value="&lt;jane@example.com&gt;"`)
	assert.Contains(t, html, `href="/login" class="nav-link"`)
	assert.NotContains(t, html, "/logout")
}

func TestLayout_Authenticated(t *testing.T) {
	t.Parallel()

	html, err := newEngine().Render(context.Background(), appview.Home, view.Data{
		view.TitleKey:            "Home",
		appview.AuthenticatedKey: true,
	})
	require.NoError(t, err)

	assert.Contains(t, html, `href="/logout"`)
	assert.NotContains(t, html, `href="/register" class="nav-link"`)
}

func TestNotFoundPage(t *testing.T) {
	t.Parallel()

	html, err := newEngine().Render(context.Background(), appview.NotFound, nil)
	require.NoError(t, err)
	assert.Contains(t, html, "404")
	assert.Contains(t, html, "We can't find that page.")
}
