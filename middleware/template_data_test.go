package middleware_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/catalyst/middleware"
	"github.com/dmitrymomot/catalyst/pkg/view"
)

func TestTemplateData(t *testing.T) {
	t.Parallel()

	mw := middleware.NewTemplateData(&middleware.TemplateSettings{
		Title: "Catalyst",
		Data:  map[string]any{"year": 2026},
	})

	c, _ := newContext(http.MethodGet, "/", nil)
	require.NoError(t, mw.Process(c, func() error { return nil }))

	shared := c.Shared()
	assert.Equal(t, "Catalyst", shared[view.TitleKey])
	assert.Equal(t, 2026, shared["year"])
}
