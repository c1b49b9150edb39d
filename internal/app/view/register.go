package view

import "github.com/dmitrymomot/catalyst/pkg/view"

// Page names.
const (
	Home     = "index"
	Register = "auth/register"
	Login    = "auth/login"
	NotFound = "misc/404"
)

// Keys of the values the controllers and bootstrap hand to every page.
const (
	AppNameKey       = "appName"
	AuthenticatedKey = "authenticated"
)

// RegisterAll adds every page to engine.
func RegisterAll(engine *view.Engine) {
	engine.Register(Home, homePage)
	engine.Register(Register, registerPage)
	engine.Register(Login, loginPage)
	engine.Register(NotFound, notFoundPage)
}
