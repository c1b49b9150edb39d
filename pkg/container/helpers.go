package container

import (
	"fmt"
	"reflect"
)

// Key returns the type identifier used to register and look up T.
func Key[T any]() reflect.Type {
	return reflect.TypeFor[T]()
}

// Get is the typed form of Container.Get.
func Get[T any](c *Container) (T, error) {
	var zero T

	v, err := c.Get(Key[T]())
	if err != nil {
		return zero, err
	}
	if v == nil {
		return zero, nil
	}

	t, ok := v.(T)
	if !ok {
		return zero, fmt.Errorf("%w: %s is registered as %T", ErrFactoryFailed, Key[T](), v)
	}
	return t, nil
}

// MustGet is like Get but panics on error. Use it in factories whose
// dependencies are known to be registered.
func MustGet[T any](c *Container) T {
	v, err := Get[T](c)
	if err != nil {
		panic(err)
	}
	return v
}

// Resolve is the typed form of Container.Resolve.
func Resolve[T any](c *Container, constructor any) (T, error) {
	var zero T

	v, err := c.Resolve(constructor)
	if err != nil {
		return zero, err
	}

	t, ok := v.(T)
	if !ok {
		return zero, fmt.Errorf("%w: constructor returned %T, want %s", ErrNotInstantiable, v, Key[T]())
	}
	return t, nil
}

// Value returns a factory that always yields v.
func Value[T any](v T) Factory {
	return func(*Container) (any, error) {
		return v, nil
	}
}

// Constructor returns a factory that autowires fn through Resolve. The
// produced service is then memoized like any other definition.
//
//	container.Definitions{
//		container.Key[*UserService](): container.Constructor(NewUserService),
//	}
func Constructor(fn any) Factory {
	return func(c *Container) (any, error) {
		return c.Resolve(fn)
	}
}

// Provide pairs a typed factory with its key, ready to be put into Definitions.
func Provide[T any](fn func(c *Container) (T, error)) (reflect.Type, Factory) {
	return Key[T](), func(c *Container) (any, error) {
		return fn(c)
	}
}
