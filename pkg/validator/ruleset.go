package validator

import (
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// LoadRuleSets reads named rule sets from YAML:
//
//	register:
//	  email: [required, email]
//	  password: [required, "min:8"]
//	login:
//	  email: [required, email]
//
// An empty document yields an empty map.
func LoadRuleSets(r io.Reader) (map[string]RuleSet, error) {
	sets := make(map[string]RuleSet)

	if err := yaml.NewDecoder(r).Decode(&sets); err != nil {
		if errors.Is(err, io.EOF) {
			return sets, nil
		}
		return nil, fmt.Errorf("decode rule sets: %w", err)
	}
	return sets, nil
}

// CheckRuleSets runs Check on every named rule set.
func (v *Validator) CheckRuleSets(sets map[string]RuleSet) error {
	for name, rules := range sets {
		if err := v.Check(rules); err != nil {
			return fmt.Errorf("rule set %q: %w", name, err)
		}
	}
	return nil
}
