package router_test

import (
	"context"
	"net/http"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/catalyst/pkg/session"
)

func TestContext_Input(t *testing.T) {
	t.Parallel()

	c, _ := newRequestContext(http.MethodPost, "/register?ref=mail", url.Values{
		"email": {"jane@example.com", "ignored"},
		"age":   {"30"},
	})

	assert.Equal(t, map[string]string{"email": "jane@example.com", "age": "30"}, c.Input())
	assert.Equal(t, "30", c.FormValue("age"))
	assert.Equal(t, "mail", c.Query("ref"))
}

func TestContext_RedirectBack(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		referer string
		want    string
	}{
		{"same host", "http://example.com/register", "http://example.com/register"},
		{"relative", "/login", "/login"},
		{"foreign host", "https://evil.test/phish", "/"},
		{"missing", "", "/"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			c, w := newRequestContext(http.MethodPost, "http://example.com/register", url.Values{})
			if tt.referer != "" {
				c.Request().Header.Set("Referer", tt.referer)
			}

			require.NoError(t, c.RedirectBack("/"))
			assert.Equal(t, http.StatusSeeOther, w.Code)
			assert.Equal(t, tt.want, w.Header().Get("Location"))
		})
	}
}

func TestContext_State(t *testing.T) {
	t.Parallel()

	c, w := newRequestContext(http.MethodGet, "/", nil)

	assert.False(t, c.Written())
	assert.Nil(t, c.Session())
	s := session.NewSession(0)
	c.SetSession(s)
	assert.Same(t, s, c.Session())

	c.Share("title", "Home")
	shared := c.Shared()
	shared["title"] = "changed"
	assert.Equal(t, "Home", c.Shared()["title"])

	type key struct{}
	c.WithValue(key{}, "v")
	assert.Equal(t, "v", c.Value(key{}))

	var ctx context.Context = c
	assert.NoError(t, ctx.Err())

	require.NoError(t, c.HTML(http.StatusCreated, "<p>ok</p>"))
	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "text/html; charset=utf-8", w.Header().Get("Content-Type"))
	assert.Equal(t, "<p>ok</p>", w.Body.String())
	assert.True(t, c.Written())
	assert.Equal(t, http.StatusCreated, c.StatusCode())
}
