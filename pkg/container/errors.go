package container

import "errors"

var (
	// ErrUnknownService is returned by Get when no definition exists for the key.
	ErrUnknownService = errors.New("container.unknown_service")

	// ErrNotInstantiable is returned by Resolve when the value is not a usable constructor
	// or the constructor produced nothing.
	ErrNotInstantiable = errors.New("container.not_instantiable")

	// ErrMissingTypeHint is returned by Resolve when a constructor parameter is not
	// a pointer to a struct or an interface.
	ErrMissingTypeHint = errors.New("container.missing_type_hint")

	// ErrCyclicDependency is returned when a service depends on itself, directly or not.
	ErrCyclicDependency = errors.New("container.cyclic_dependency")

	// ErrFactoryFailed wraps an error returned by a factory or a constructor.
	ErrFactoryFailed = errors.New("container.factory_failed")
)
