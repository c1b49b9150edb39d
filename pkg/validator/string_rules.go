package validator

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"
)

var (
	alphanumericRegex = regexp.MustCompile(`^[a-zA-Z0-9]+$`)
	alphaRegex        = regexp.MustCompile(`^[a-zA-Z]+$`)
)

// RequiredRule fails when the field is missing or blank. "0" is a value.
type RequiredRule struct{}

func (RequiredRule) Validate(data Data, field string, _ []string) bool {
	return strings.TrimSpace(data[field]) != ""
}

func (RequiredRule) Message(Data, string, []string) string {
	return "This field is required"
}

// MinRule requires at least params[0] characters.
type MinRule struct{}

func (MinRule) CheckParams(params []string) error {
	_, err := lengthParam(params, 0, "minimum length")
	return err
}

func (MinRule) Validate(data Data, field string, params []string) bool {
	n, _ := lengthParam(params, 0, "minimum length")
	return utf8.RuneCountInString(data[field]) >= n
}

func (MinRule) Message(_ Data, _ string, params []string) string {
	return fmt.Sprintf("Must be at least %s characters", param(params, 0))
}

// MaxRule requires strictly fewer than params[0] characters: a value whose
// length equals the bound fails.
type MaxRule struct{}

func (MaxRule) CheckParams(params []string) error {
	_, err := lengthParam(params, 0, "max length")
	return err
}

func (MaxRule) Validate(data Data, field string, params []string) bool {
	n, _ := lengthParam(params, 0, "max length")
	return utf8.RuneCountInString(data[field]) < n
}

func (MaxRule) Message(_ Data, _ string, params []string) string {
	return fmt.Sprintf("Exceeds max character limit of %s", param(params, 0))
}

// LengthRule requires between params[0] and params[1] characters, inclusive.
type LengthRule struct{}

func (LengthRule) CheckParams(params []string) error {
	lo, err := lengthParam(params, 0, "minimum length")
	if err != nil {
		return err
	}
	hi, err := lengthParam(params, 1, "maximum length")
	if err != nil {
		return err
	}
	if lo > hi {
		return fmt.Errorf("minimum length %d is greater than maximum length %d", lo, hi)
	}
	return nil
}

func (LengthRule) Validate(data Data, field string, params []string) bool {
	lo, _ := lengthParam(params, 0, "minimum length")
	hi, _ := lengthParam(params, 1, "maximum length")
	n := utf8.RuneCountInString(data[field])
	return n >= lo && n <= hi
}

func (LengthRule) Message(_ Data, _ string, params []string) string {
	return fmt.Sprintf("The value must be between %s and %s characters", param(params, 0), param(params, 1))
}

// MatchRule requires the field to equal the field named by params[0].
type MatchRule struct{}

func (MatchRule) CheckParams(params []string) error {
	if param(params, 0) == "" {
		return errors.New("field to match against not specified")
	}
	return nil
}

func (MatchRule) Validate(data Data, field string, params []string) bool {
	return data[field] == data[param(params, 0)]
}

func (MatchRule) Message(_ Data, field string, params []string) string {
	return fmt.Sprintf("The field %s does not match the %s field", field, param(params, 0))
}

// AlphanumericRule accepts ASCII letters and digits only. An empty value fails.
type AlphanumericRule struct{}

func (AlphanumericRule) Validate(data Data, field string, _ []string) bool {
	return alphanumericRegex.MatchString(data[field])
}

func (AlphanumericRule) Message(Data, string, []string) string {
	return "This field only accepts alphanumeric characters"
}

// AlphaRule accepts ASCII letters only. An empty value fails.
type AlphaRule struct{}

func (AlphaRule) Validate(data Data, field string, _ []string) bool {
	return alphaRegex.MatchString(data[field])
}

func (AlphaRule) Message(Data, string, []string) string {
	return "This field only accepts letters"
}

// param returns params[i], or "" when absent.
func param(params []string, i int) string {
	if i < len(params) {
		return params[i]
	}
	return ""
}

func lengthParam(params []string, i int, name string) (int, error) {
	raw := strings.TrimSpace(param(params, i))
	if raw == "" {
		return 0, fmt.Errorf("%s not specified", name)
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return 0, fmt.Errorf("%s must be a non-negative integer, got %q", name, raw)
	}
	return n, nil
}
