package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/catalyst/pkg/router"
	"github.com/dmitrymomot/catalyst/pkg/session"
)

const testSecret = "0123456789abcdef0123456789abcdef"

func newContext(method, target string, form url.Values) (*router.Context, *httptest.ResponseRecorder) {
	var req *http.Request
	if form != nil {
		req = httptest.NewRequest(method, target, strings.NewReader(form.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	w := httptest.NewRecorder()
	return router.NewContext(w, req), w
}

// withSession returns a context already carrying an anonymous session.
func withSession(method, target string, form url.Values) (*router.Context, *httptest.ResponseRecorder, *session.Session) {
	c, w := newContext(method, target, form)
	s := session.NewSession(time.Hour)
	c.SetSession(s)
	return c, w, s
}

func newManager(t *testing.T) *session.Manager {
	t.Helper()

	store := session.NewMemoryStore(0)
	t.Cleanup(func() { _ = store.Close() })

	m, err := session.New([]string{testSecret}, session.WithStore(store))
	require.NoError(t, err)
	return m
}

func called(flag *bool) router.Action {
	return func() error {
		*flag = true
		return nil
	}
}
