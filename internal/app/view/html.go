package view

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"
)

// raw writes trusted markup.
func raw(s string) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		_, err := io.WriteString(w, s)
		return err
	})
}

// rawf formats trusted markup; every argument is escaped.
func rawf(format string, args ...any) templ.Component {
	escaped := make([]any, len(args))
	for i, a := range args {
		escaped[i] = templ.EscapeString(fmt.Sprint(a))
	}
	return raw(fmt.Sprintf(format, escaped...))
}
