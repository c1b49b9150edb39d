package controller

import (
	"github.com/dmitrymomot/catalyst/internal/app/service"
	appview "github.com/dmitrymomot/catalyst/internal/app/view"
	"github.com/dmitrymomot/catalyst/pkg/router"
	"github.com/dmitrymomot/catalyst/pkg/session"
	"github.com/dmitrymomot/catalyst/pkg/validator"
	"github.com/dmitrymomot/catalyst/pkg/view"
)

// AuthController handles registration, login and logout.
type AuthController struct {
	views     *view.Engine
	validator *service.ValidatorService
	users     *service.UserService
	sessions  *session.Manager
}

func NewAuthController(
	views *view.Engine,
	validator *service.ValidatorService,
	users *service.UserService,
	sessions *session.Manager,
) *AuthController {
	return &AuthController{
		views:     views,
		validator: validator,
		users:     users,
		sessions:  sessions,
	}
}

func (h *AuthController) RegisterView(c *router.Context, _ router.Params) error {
	return ok(c, h.views, appview.Register, view.Data{view.TitleKey: "Register"})
}

// Register validates the form, creates the account and signs the user in.
func (h *AuthController) Register(c *router.Context, _ router.Params) error {
	input := validator.Data(c.Input())
	if err := h.validator.ValidateRegister(input); err != nil {
		return err
	}

	id, err := h.users.Register(c, input["email"], input["password"])
	if err != nil {
		return err
	}

	c.Session().SetUser(id)
	if err := h.sessions.Regenerate(c, c.ResponseWriter(), c.Session()); err != nil {
		return err
	}
	return c.Redirect("/")
}

func (h *AuthController) LoginView(c *router.Context, _ router.Params) error {
	return ok(c, h.views, appview.Login, view.Data{view.TitleKey: "Login"})
}

// Login checks the credentials and moves the session to a fresh token.
func (h *AuthController) Login(c *router.Context, _ router.Params) error {
	input := validator.Data(c.Input())
	if err := h.validator.ValidateLogin(input); err != nil {
		return err
	}

	user, err := h.users.Authenticate(c, input["email"], input["password"])
	if err != nil {
		return err
	}

	c.Session().SetUser(user.ID)
	if err := h.sessions.Regenerate(c, c.ResponseWriter(), c.Session()); err != nil {
		return err
	}
	return c.Redirect("/")
}

// Logout destroys the session.
func (h *AuthController) Logout(c *router.Context, _ router.Params) error {
	if err := h.sessions.Destroy(c, c.ResponseWriter(), c.Session()); err != nil {
		return err
	}
	return c.Redirect("/login")
}
