// Package container implements the dependency container used by the router to
// build controllers and middlewares.
//
// Resolution happens on two tiers:
//
//   - Services are registered explicitly as factory definitions keyed by their
//     type and reached through Get. The first Get for a key invokes the factory
//     and memoizes the result, so every later Get returns the same instance.
//   - Leaf types (controllers, middlewares) are reached through Resolve. The
//     leaf is described by its constructor function; Resolve inspects the
//     constructor parameters, obtains each one with Get and calls the
//     constructor. Leaves are never cached, so every Resolve returns a fresh
//     value while the services injected into it are shared.
//
// Only "class-shaped" parameters are injectable: pointers to structs and
// interfaces. A constructor taking a string, an int or any other builtin kind
// fails with ErrMissingTypeHint.
//
// # Usage
//
//	c := container.New()
//	c.AddDefinitions(container.Definitions{
//		container.Key[*view.Engine](): func(c *container.Container) (any, error) {
//			return view.New(), nil
//		},
//		container.Key[*services.UserService](): container.Constructor(services.NewUserService),
//	})
//
//	ctrl, err := container.Resolve[*controllers.AuthController](c, controllers.NewAuthController)
//
// # Error Handling
//
// All failures wrap one of the sentinel errors and can be matched with
// errors.Is: ErrUnknownService, ErrNotInstantiable, ErrMissingTypeHint and
// ErrCyclicDependency. A failed resolution never returns a partially built
// value and never poisons the instance cache.
//
// # Concurrency
//
// Definitions are expected to be registered before the first Get. Get itself
// is safe for concurrent use: the cache check and the factory call are done
// under a build lock, so a factory runs at most once per key.
package container
