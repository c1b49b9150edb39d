// Package view renders named templ components to strings.
//
// Views are registered once at boot under a name such as "auth/login":
//
//	engine := view.New()
//	engine.Register("index", func(data view.Data) templ.Component {
//		return pages.Index(data.String("title"))
//	})
//
// Render merges three layers of data, later layers winning: process wide
// globals added with AddGlobal, request scoped values exposed by the render
// context (any context implementing Sharer, such as router.Context), and the
// data passed to Render itself. The merged data is also stored in the render
// context so that partials can read it with FromContext.
//
// Escaping is left to templ, which escapes every interpolated value.
package view
