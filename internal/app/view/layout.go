package view

import (
	"github.com/a-h/templ"

	"github.com/dmitrymomot/catalyst/pkg/view"
)

func layout(d view.Data, body templ.Component) templ.Component {
	nav := group(
		raw(`<a href="/login" class="nav-link">Login</a>`),
		raw(`<a href="/register" class="nav-link">Register</a>`),
	)
	if authenticated, _ := d[AuthenticatedKey].(bool); authenticated {
		nav = raw(`<a href="/logout" class="nav-link">Logout</a>`)
	}

	return group(
		raw(`<!DOCTYPE html><html lang="en"><head><meta charset="UTF-8"/>`),
		raw(`<meta name="viewport" content="width=device-width, initial-scale=1.0"/>`),
		rawf(`<title>%s | %s</title>`, d.String(AppNameKey), d.String(view.TitleKey)),
		raw(`<link rel="stylesheet" href="/static/main.css"/></head><body>`),
		rawf(`<header><nav><a href="/" class="brand">%s</a><div class="links">`, d.String(AppNameKey)),
		nav,
		raw(`</div></nav></header><main>`),
		body,
		raw(`</main></body></html>`),
	)
}

func group(components ...templ.Component) templ.Component {
	return view.Group(components...)
}
