package view

import (
	"context"
	"fmt"
	"io"
	"maps"
	"slices"
	"strings"
	"sync"

	"github.com/a-h/templ"
)

// ViewFunc builds the component of a view from its data.
type ViewFunc func(data Data) templ.Component

// Engine is a registry of named views plus process wide globals.
type Engine struct {
	mu      sync.RWMutex
	views   map[string]ViewFunc
	globals Data
}

// New creates an empty engine.
func New() *Engine {
	return &Engine{
		views:   make(map[string]ViewFunc),
		globals: make(Data),
	}
}

// Register adds or replaces the view called name.
func (e *Engine) Register(name string, fn ViewFunc) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.views[name] = fn
}

// Has reports whether a view called name is registered.
func (e *Engine) Has(name string) bool {
	e.mu.RLock()
	defer e.mu.RUnlock()
	_, ok := e.views[name]
	return ok
}

// Views returns the registered view names in sorted order.
func (e *Engine) Views() []string {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return slices.Sorted(maps.Keys(e.views))
}

// AddGlobal makes value available to every view under key.
// Request specific values belong in the request context instead.
func (e *Engine) AddGlobal(key string, value any) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.globals[key] = value
}

// Globals returns a copy of the process wide data.
func (e *Engine) Globals() Data {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return maps.Clone(e.globals)
}

// Render renders the view called name and returns the markup.
func (e *Engine) Render(ctx context.Context, name string, data Data) (string, error) {
	var sb strings.Builder
	if err := e.Write(ctx, &sb, name, data); err != nil {
		return "", err
	}
	return sb.String(), nil
}

// Write renders the view called name into w.
func (e *Engine) Write(ctx context.Context, w io.Writer, name string, data Data) error {
	e.mu.RLock()
	fn, ok := e.views[name]
	globals := maps.Clone(e.globals)
	e.mu.RUnlock()

	if !ok {
		return fmt.Errorf("%w: %s", ErrViewNotFound, name)
	}

	var shared map[string]any
	if s, ok := ctx.(Sharer); ok {
		shared = s.Shared()
	}

	merged := merge(globals, shared, data)
	ctx = context.WithValue(ctx, dataKey{}, merged)

	if err := fn(merged).Render(ctx, w); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrRenderFailed, name, err)
	}
	return nil
}
