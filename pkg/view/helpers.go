package view

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

// CSRFFieldName is the form field carrying the CSRF token.
const CSRFFieldName = "csrf_token"

// CSRFField renders the hidden input holding token.
func CSRFField(token string) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		_, err := io.WriteString(w, `<input type="hidden" name="`+CSRFFieldName+`" value="`+templ.EscapeString(token)+`">`)
		return err
	})
}

// Text renders s escaped.
func Text(s string) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		_, err := io.WriteString(w, templ.EscapeString(s))
		return err
	})
}

// Group renders components one after another.
func Group(components ...templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		for _, c := range components {
			if c == nil {
				continue
			}
			if err := c.Render(ctx, w); err != nil {
				return err
			}
		}
		return nil
	})
}
