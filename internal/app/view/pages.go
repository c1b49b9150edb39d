package view

import (
	"github.com/a-h/templ"

	"github.com/dmitrymomot/catalyst/pkg/view"
)

func homePage(d view.Data) templ.Component {
	return layout(d, group(
		rawf(`<section class="hero"><h2>%s Framework</h2>`, d.String(AppNameKey)),
		raw(`<p class="lead">A small MVC framework: regex routes, onion middlewares, an autowiring container and rule based validation.</p></section>`),
		raw(`<dl class="features">`),
		feature("Autowiring", "Controllers and middlewares are built from their constructors."),
		feature("Validation", "Rule sets live in YAML and report every failing rule."),
		feature("Sessions", "Signed cookie tokens with memory or redis storage."),
		feature("Views", "Composable templ components with request scoped data."),
		raw(`</dl>`),
	))
}

func feature(title, text string) templ.Component {
	return rawf(`<div class="feature"><dt>%s</dt><dd>%s</dd></div>`, title, text)
}

func registerPage(d view.Data) templ.Component {
	return layout(d, form(d, "Register your account", "Sign up",
		input(d, "email", "email", "Enter email", true),
		input(d, "password", "password", "Enter password", false),
		input(d, "confirmPassword", "password", "Confirm password", false),
		raw(`<p class="hint">Have an account? <a href="/login">Sign in</a></p>`),
	))
}

func loginPage(d view.Data) templ.Component {
	return layout(d, form(d, "Sign in to your account", "Sign in",
		input(d, "email", "email", "Enter email", true),
		input(d, "password", "password", "Enter password", false),
		raw(`<p class="hint">No account? <a href="/register">Sign up</a></p>`),
	))
}

func notFoundPage(view.Data) templ.Component {
	return group(
		raw(`<!DOCTYPE html><html lang="en"><head><meta charset="UTF-8"/><title>404 Not Found</title>`),
		raw(`<link rel="stylesheet" href="/static/main.css"/></head><body>`),
		raw(`<div class="not-found"><h1>404</h1><p class="title">Uh-oh!</p>`),
		raw(`<p>We can't find that page.</p><a href="/" class="button">Go Back Home</a></div>`),
		raw(`</body></html>`),
	)
}

func form(d view.Data, heading, submit string, fields ...templ.Component) templ.Component {
	return group(
		raw(`<form method="POST" class="card">`),
		view.CSRFField(d.CSRFToken()),
		rawf(`<p class="heading">%s</p>`, heading),
		group(fields[:len(fields)-1]...),
		rawf(`<button type="submit">%s</button>`, submit),
		fields[len(fields)-1],
		raw(`</form>`),
	)
}

// input renders a field with its validation messages. Secret fields never
// get their old value back.
func input(d view.Data, name, kind, placeholder string, keepOld bool) templ.Component {
	value := ""
	if keepOld {
		value = d.Old(name, "")
	}

	parts := []templ.Component{
		rawf(`<div class="field"><input type="%s" name="%s" placeholder="%s" value="%s"/></div>`, kind, name, placeholder, value),
	}
	for _, msg := range d.Errors(name) {
		parts = append(parts, rawf(`<div class="error">%s</div>`, msg))
	}
	return group(parts...)
}
