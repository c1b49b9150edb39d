package middleware

import (
	"log/slog"
	"runtime"

	"github.com/dmitrymomot/catalyst/pkg/router"
)

const stackSize = 4096

// Recover turns a panic of the rest of the chain into a *PanicError.
type Recover struct {
	log *slog.Logger
}

// NewRecover creates the middleware logging recovered panics to log.
func NewRecover(log *slog.Logger) *Recover {
	return &Recover{log: log}
}

// Process returns a *PanicError when the chain panics.
func (m *Recover) Process(c *router.Context, next router.Action) (err error) {
	defer func() {
		if r := recover(); r != nil {
			stack := make([]byte, stackSize)
			stack = stack[:runtime.Stack(stack, false)]

			m.log.ErrorContext(c, "panic recovered", slog.Any("panic", r), slog.String("stack", string(stack)))
			err = &PanicError{Value: r, Stack: stack}
		}
	}()
	return next()
}
