package controller

import (
	"net/http"

	appview "github.com/dmitrymomot/catalyst/internal/app/view"
	"github.com/dmitrymomot/catalyst/pkg/router"
	"github.com/dmitrymomot/catalyst/pkg/view"
)

type ErrorController struct {
	views *view.Engine
}

func NewErrorController(views *view.Engine) *ErrorController {
	return &ErrorController{views: views}
}

// NotFound renders the 404 page. It runs when no route matches.
func (h *ErrorController) NotFound(c *router.Context, _ router.Params) error {
	return render(c, h.views, http.StatusNotFound, appview.NotFound, nil)
}
