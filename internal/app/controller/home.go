package controller

import (
	appview "github.com/dmitrymomot/catalyst/internal/app/view"
	"github.com/dmitrymomot/catalyst/pkg/router"
	"github.com/dmitrymomot/catalyst/pkg/view"
)

type HomeController struct {
	views *view.Engine
}

func NewHomeController(views *view.Engine) *HomeController {
	return &HomeController{views: views}
}

func (h *HomeController) Home(c *router.Context, _ router.Params) error {
	return ok(c, h.views, appview.Home, view.Data{view.TitleKey: "Home"})
}
