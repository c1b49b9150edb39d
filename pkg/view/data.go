package view

import (
	"context"
	"maps"
)

// Data is the set of values available to a view.
type Data map[string]any

// Keys under which the session flash values are exposed to views.
const (
	ErrorsKey    = "errors"
	OldInputKey  = "oldFormData"
	CSRFTokenKey = "csrfToken"
	TitleKey     = "title"
)

// Sharer is implemented by render contexts carrying request scoped view data.
type Sharer interface {
	Shared() map[string]any
}

type dataKey struct{}

// FromContext returns the data of the view being rendered, or nil outside of Render.
func FromContext(ctx context.Context) Data {
	d, _ := ctx.Value(dataKey{}).(Data)
	return d
}

// String returns the value under key when it is a string.
func (d Data) String(key string) string {
	s, _ := d[key].(string)
	return s
}

// Errors returns the validation messages staged for field.
func (d Data) Errors(field string) []string {
	switch errs := d[ErrorsKey].(type) {
	case map[string][]string:
		return errs[field]
	case map[string]any:
		return toStrings(errs[field])
	}
	return nil
}

// Old returns the previously submitted value of field, or def.
func (d Data) Old(field, def string) string {
	switch old := d[OldInputKey].(type) {
	case map[string]string:
		if v, ok := old[field]; ok {
			return v
		}
	case map[string]any:
		if v, ok := old[field].(string); ok {
			return v
		}
	}
	return def
}

// CSRFToken returns the token rendered in forms.
func (d Data) CSRFToken() string {
	return d.String(CSRFTokenKey)
}

func merge(layers ...map[string]any) Data {
	out := make(Data)
	for _, layer := range layers {
		maps.Copy(out, layer)
	}
	return out
}

func toStrings(v any) []string {
	switch vals := v.(type) {
	case []string:
		return vals
	case []any:
		out := make([]string, 0, len(vals))
		for _, val := range vals {
			if s, ok := val.(string); ok {
				out = append(out, s)
			}
		}
		return out
	}
	return nil
}
