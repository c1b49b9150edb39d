package view

import "errors"

var (
	// ErrViewNotFound is returned when rendering a name nobody registered.
	ErrViewNotFound = errors.New("view.not_found")

	// ErrRenderFailed wraps errors returned by a component while rendering.
	ErrRenderFailed = errors.New("view.render_failed")
)
