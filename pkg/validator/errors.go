package validator

import (
	"errors"
	"fmt"
	"maps"
	"net/url"
	"slices"
	"strings"
)

var (
	// ErrUnknownRule is returned when a rule spec names an alias that was never added.
	ErrUnknownRule = errors.New("validator.unknown_rule")

	// ErrInvalidRuleParams is returned when a rule spec lacks parameters the
	// rule needs or carries malformed ones.
	ErrInvalidRuleParams = errors.New("validator.invalid_rule_params")
)

// ValidationError represents field validation errors.
// It's based on url.Values to leverage built-in string slice handling.
type ValidationError url.Values

// Error implements the error interface.
// Returns a human-readable error message summarizing validation failures.
func (e ValidationError) Error() string {
	if len(e) == 0 {
		return "validation failed"
	}

	var parts []string
	for _, field := range e.Fields() {
		parts = append(parts, fmt.Sprintf("%s: %s", field, e.Get(field)))
	}

	return fmt.Sprintf("validation failed: %s", strings.Join(parts, "; "))
}

// NewValidationError creates a new validation error.
func NewValidationError() ValidationError {
	return make(ValidationError)
}

// Add adds an error message for a field.
func (e ValidationError) Add(field, message string) {
	url.Values(e).Add(field, message)
}

// Get returns the first error message for a field.
func (e ValidationError) Get(field string) string {
	return url.Values(e).Get(field)
}

// Messages returns every error message for a field in the order the rules ran.
func (e ValidationError) Messages(field string) []string {
	return e[field]
}

// Has checks if a field has any errors.
func (e ValidationError) Has(field string) bool {
	return len(e[field]) > 0
}

// Fields returns the names of the failed fields, sorted.
func (e ValidationError) Fields() []string {
	return slices.Sorted(maps.Keys(e))
}

// IsEmpty returns true if there are no validation errors.
func (e ValidationError) IsEmpty() bool {
	return len(e) == 0
}

// AsValidationError extracts a ValidationError from err.
func AsValidationError(err error) (ValidationError, bool) {
	var verr ValidationError
	if errors.As(err, &verr) {
		return verr, true
	}
	return nil, false
}
