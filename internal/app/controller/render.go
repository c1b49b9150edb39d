package controller

import (
	"net/http"

	appview "github.com/dmitrymomot/catalyst/internal/app/view"
	"github.com/dmitrymomot/catalyst/pkg/router"
	"github.com/dmitrymomot/catalyst/pkg/view"
)

func render(c *router.Context, engine *view.Engine, status int, name string, data view.Data) error {
	if data == nil {
		data = view.Data{}
	}
	data[appview.AuthenticatedKey] = c.Session().IsAuthenticated()

	html, err := engine.Render(c, name, data)
	if err != nil {
		return err
	}
	return c.HTML(status, html)
}

func ok(c *router.Context, engine *view.Engine, name string, data view.Data) error {
	return render(c, engine, http.StatusOK, name, data)
}
