package container

import (
	"errors"
	"fmt"
	"maps"
	"reflect"
	"runtime"
	"slices"
	"strings"
	"sync"
)

// Factory builds a service. It receives the container so it can look up its
// own dependencies with Get or Resolve.
type Factory func(c *Container) (any, error)

// Definitions maps a type identifier to the factory producing it.
type Definitions map[reflect.Type]Factory

var errorType = reflect.TypeFor[error]()

// registry is the state shared by a container and the scoped views handed to factories.
type registry struct {
	mu          sync.RWMutex
	definitions Definitions
	resolved    map[reflect.Type]any

	// build serializes factory calls started from the outside.
	build sync.Mutex
}

// Container holds service definitions and the memoized service instances.
type Container struct {
	reg *registry

	// chain lists the keys being built by the current resolution. It is empty
	// for the root container and set on the scoped copy passed to factories.
	chain []reflect.Type
}

// New creates an empty container.
func New() *Container {
	return &Container{
		reg: &registry{
			definitions: make(Definitions),
			resolved:    make(map[reflect.Type]any),
		},
	}
}

// AddDefinitions merges definitions into the registry. A key that already
// exists is replaced by the new factory.
func (c *Container) AddDefinitions(defs Definitions) {
	c.reg.mu.Lock()
	defer c.reg.mu.Unlock()

	maps.Copy(c.reg.definitions, defs)
}

// Has reports whether a definition exists for id.
func (c *Container) Has(id reflect.Type) bool {
	c.reg.mu.RLock()
	defer c.reg.mu.RUnlock()

	_, ok := c.reg.definitions[id]
	return ok
}

// Get returns the service registered under id, building it on first use.
func (c *Container) Get(id reflect.Type) (any, error) {
	c.reg.mu.RLock()
	factory, defined := c.reg.definitions[id]
	instance, cached := c.reg.resolved[id]
	c.reg.mu.RUnlock()

	if !defined {
		return nil, fmt.Errorf("%w: %s", ErrUnknownService, typeName(id))
	}
	if cached {
		return instance, nil
	}

	if slices.Contains(c.chain, id) {
		return nil, fmt.Errorf("%w: %s", ErrCyclicDependency, c.describeChain(id))
	}

	// Nested calls run inside the outermost build and must not lock again.
	if len(c.chain) == 0 {
		c.reg.build.Lock()
		defer c.reg.build.Unlock()

		c.reg.mu.RLock()
		instance, cached = c.reg.resolved[id]
		c.reg.mu.RUnlock()
		if cached {
			return instance, nil
		}
	}

	instance, err := factory(c.scoped(id))
	if err != nil {
		return nil, wrapFactoryError(id, err)
	}

	c.reg.mu.Lock()
	c.reg.resolved[id] = instance
	c.reg.mu.Unlock()

	return instance, nil
}

// Resolve builds a fresh value by calling constructor with its parameters
// fetched from the registry. The constructor must be a function returning
// either (T) or (T, error). The result is never cached.
func (c *Container) Resolve(constructor any) (any, error) {
	fn := reflect.ValueOf(constructor)
	if !fn.IsValid() || fn.Kind() != reflect.Func || fn.IsNil() {
		return nil, fmt.Errorf("%w: %T is not a constructor", ErrNotInstantiable, constructor)
	}

	ft := fn.Type()
	name := funcName(fn)

	if err := checkResults(ft); err != nil {
		return nil, fmt.Errorf("%w: %s %s", ErrNotInstantiable, name, err)
	}
	if ft.IsVariadic() {
		return nil, fmt.Errorf("%w: %s is variadic", ErrNotInstantiable, name)
	}

	args := make([]reflect.Value, ft.NumIn())
	for i := range ft.NumIn() {
		param := ft.In(i)
		if !injectable(param) {
			return nil, fmt.Errorf("%w: %s parameter %d has type %s", ErrMissingTypeHint, name, i, param)
		}

		dep, err := c.Get(param)
		if err != nil {
			return nil, fmt.Errorf("resolve %s: %w", name, err)
		}
		if dep == nil {
			args[i] = reflect.Zero(param)
			continue
		}
		v := reflect.ValueOf(dep)
		if !v.Type().AssignableTo(param) {
			return nil, fmt.Errorf("%w: %s parameter %d wants %s, registry holds %s", ErrFactoryFailed, name, i, param, v.Type())
		}
		args[i] = v
	}

	out := fn.Call(args)
	if len(out) == 2 && !out[1].IsNil() {
		return nil, errors.Join(ErrFactoryFailed, fmt.Errorf("%s: %w", name, out[1].Interface().(error)))
	}

	result := out[0]
	if isNil(result) {
		return nil, fmt.Errorf("%w: %s returned nil", ErrNotInstantiable, name)
	}

	return result.Interface(), nil
}

// scoped returns a view of the container that remembers id as being built.
func (c *Container) scoped(id reflect.Type) *Container {
	chain := make([]reflect.Type, len(c.chain), len(c.chain)+1)
	copy(chain, c.chain)
	return &Container{reg: c.reg, chain: append(chain, id)}
}

func (c *Container) describeChain(id reflect.Type) string {
	names := make([]string, 0, len(c.chain)+1)
	for _, t := range c.chain {
		names = append(names, typeName(t))
	}
	names = append(names, typeName(id))
	return strings.Join(names, " -> ")
}

// wrapFactoryError keeps container errors coming from nested resolutions as they are.
func wrapFactoryError(id reflect.Type, err error) error {
	for _, known := range []error{ErrUnknownService, ErrNotInstantiable, ErrMissingTypeHint, ErrCyclicDependency, ErrFactoryFailed} {
		if errors.Is(err, known) {
			return err
		}
	}
	return errors.Join(ErrFactoryFailed, fmt.Errorf("%s: %w", typeName(id), err))
}

func checkResults(ft reflect.Type) error {
	switch ft.NumOut() {
	case 1:
		if ft.Out(0) == errorType {
			return errors.New("returns only an error")
		}
		return nil
	case 2:
		if ft.Out(1) != errorType {
			return fmt.Errorf("second result must be error, got %s", ft.Out(1))
		}
		return nil
	default:
		return fmt.Errorf("must return (T) or (T, error), got %d results", ft.NumOut())
	}
}

// injectable reports whether t can be looked up in the registry.
func injectable(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Interface:
		return true
	case reflect.Pointer:
		return t.Elem().Kind() == reflect.Struct
	default:
		return false
	}
}

func isNil(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		return v.IsNil()
	default:
		return !v.IsValid()
	}
}

func funcName(fn reflect.Value) string {
	if f := runtime.FuncForPC(fn.Pointer()); f != nil {
		return f.Name()
	}
	return fn.Type().String()
}

func typeName(t reflect.Type) string {
	if t == nil {
		return "<nil>"
	}
	return t.String()
}
