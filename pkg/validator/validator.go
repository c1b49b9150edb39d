package validator

import (
	"fmt"
	"maps"
	"slices"
	"strings"
	"sync"
)

// Data is the record being validated. A missing field reads as "".
type Data map[string]string

// RuleSet maps a field name to its ordered rule specs. A spec is either
// "name" or "name:p1,p2,...".
type RuleSet map[string][]string

// Rule is a named predicate plus the message reported when it fails. Rules
// receive the whole record so they can compare fields with each other.
type Rule interface {
	Validate(data Data, field string, params []string) bool
	Message(data Data, field string, params []string) string
}

// ParamsChecker is implemented by rules that need parameters. CheckParams
// runs before Validate and a failure aborts the validation.
type ParamsChecker interface {
	CheckParams(params []string) error
}

// Validator holds a registry of rules addressed by alias.
// It is safe for concurrent use.
type Validator struct {
	mu    sync.RWMutex
	rules map[string]Rule
}

// New creates a validator with no rules registered.
func New() *Validator {
	return &Validator{rules: make(map[string]Rule)}
}

// Default creates a validator with every built-in rule registered under its
// usual alias.
func Default() *Validator {
	v := New()
	v.Add("required", RequiredRule{})
	v.Add("email", EmailRule{})
	v.Add("url", URLRule{})
	v.Add("min", MinRule{})
	v.Add("max", MaxRule{})
	v.Add("match", MatchRule{})
	v.Add("numeric", NumericRule{})
	v.Add("alphanumeric", AlphanumericRule{})
	v.Add("alpha", AlphaRule{})
	v.Add("regex", &RegexRule{})
	v.Add("length", LengthRule{})
	v.Add("in", InRule{})
	v.Add("date_format", DateFormatRule{})
	v.Add("uuid", UUIDRule{})
	return v
}

// Add registers rule under alias, replacing any rule with the same alias.
func (v *Validator) Add(alias string, rule Rule) {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.rules[alias] = rule
}

// Has reports whether a rule is registered under alias.
func (v *Validator) Has(alias string) bool {
	v.mu.RLock()
	defer v.mu.RUnlock()

	_, ok := v.rules[alias]
	return ok
}

// Validate runs every rule of every field against data. Failures do not
// stop the evaluation: the returned ValidationError holds all messages,
// per field in rule order. It returns nil when data is valid.
//
// An unknown alias or invalid rule parameters abort the validation with
// ErrUnknownRule or ErrInvalidRuleParams.
func (v *Validator) Validate(data Data, rules RuleSet) error {
	if data == nil {
		data = Data{}
	}

	errs := NewValidationError()

	// Sorted so that the first fatal error is deterministic.
	for _, field := range slices.Sorted(maps.Keys(rules)) {
		for _, spec := range rules[field] {
			rule, params, err := v.lookup(spec)
			if err != nil {
				return fmt.Errorf("field %q: %w", field, err)
			}

			if rule.Validate(data, field, params) {
				continue
			}
			errs.Add(field, rule.Message(data, field, params))
		}
	}

	if errs.IsEmpty() {
		return nil
	}
	return errs
}

// Check verifies that every spec of rules names a registered rule with valid
// parameters, without validating any data.
func (v *Validator) Check(rules RuleSet) error {
	for _, field := range slices.Sorted(maps.Keys(rules)) {
		for _, spec := range rules[field] {
			if _, _, err := v.lookup(spec); err != nil {
				return fmt.Errorf("field %q: %w", field, err)
			}
		}
	}
	return nil
}

func (v *Validator) lookup(spec string) (Rule, []string, error) {
	name, params := ParseSpec(spec)

	v.mu.RLock()
	rule, ok := v.rules[name]
	v.mu.RUnlock()

	if !ok {
		return nil, nil, fmt.Errorf("%w: %q", ErrUnknownRule, name)
	}

	if checker, ok := rule.(ParamsChecker); ok {
		if err := checker.CheckParams(params); err != nil {
			return nil, nil, fmt.Errorf("%w: %s: %w", ErrInvalidRuleParams, spec, err)
		}
	}

	return rule, params, nil
}

// ParseSpec splits "name:p1,p2" into the rule alias and its parameters.
// Only the first colon separates the alias, so parameters may contain colons.
func ParseSpec(spec string) (string, []string) {
	name, rest, found := strings.Cut(spec, ":")
	name = strings.TrimSpace(name)
	if !found {
		return name, nil
	}
	return name, strings.Split(rest, ",")
}
