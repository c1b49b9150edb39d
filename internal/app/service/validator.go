package service

import (
	"bytes"
	_ "embed"
	"fmt"

	"github.com/dmitrymomot/catalyst/pkg/validator"
)

//go:embed rules.yaml
var rulesYAML []byte

// Names of the rule sets in rules.yaml.
const (
	RulesRegister = "register"
	RulesLogin    = "login"
)

// ValidatorService validates the application forms.
type ValidatorService struct {
	validator *validator.Validator
	rules     map[string]validator.RuleSet
}

// NewValidatorService loads the form rule sets and checks them against the
// registered rules.
func NewValidatorService() (*ValidatorService, error) {
	v := validator.New()
	v.Add("required", validator.RequiredRule{})
	v.Add("email", validator.EmailRule{})
	v.Add("min", validator.MinRule{})
	v.Add("max", validator.MaxRule{})
	v.Add("match", validator.MatchRule{})

	rules, err := validator.LoadRuleSets(bytes.NewReader(rulesYAML))
	if err != nil {
		return nil, err
	}
	if err := v.CheckRuleSets(rules); err != nil {
		return nil, err
	}

	for _, name := range []string{RulesRegister, RulesLogin} {
		if _, ok := rules[name]; !ok {
			return nil, fmt.Errorf("missing rule set %q", name)
		}
	}

	return &ValidatorService{validator: v, rules: rules}, nil
}

func (s *ValidatorService) ValidateRegister(data validator.Data) error {
	return s.validator.Validate(data, s.rules[RulesRegister])
}

func (s *ValidatorService) ValidateLogin(data validator.Data) error {
	return s.validator.Validate(data, s.rules[RulesLogin])
}
