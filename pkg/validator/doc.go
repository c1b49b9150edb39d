// Package validator checks form input against declarative rule sets.
//
// A Validator owns a registry of rules addressed by alias. A rule set maps
// field names to ordered rule specs written as "name" or "name:p1,p2":
//
//	v := validator.Default()
//	err := v.Validate(validator.Data(c.Input()), validator.RuleSet{
//		"email":           {"required", "email"},
//		"password":        {"required", "min:8"},
//		"confirmPassword": {"required", "match:password"},
//	})
//
// Every rule of every field is evaluated, so a single failed request reports
// all problems at once. The failure is a ValidationError mapping each field
// to its messages in rule order:
//
//	if verr, ok := validator.AsValidationError(err); ok {
//		verr.Messages("email") // ["This field is required", "Enter a valid email address"]
//	}
//
// # Built-in rules
//
// Default registers required, email, url, min, max, length, match, numeric,
// alphanumeric, alpha, regex, in, date_format and uuid. Lengths count
// characters, not bytes. The max rule is strict: "max:5" rejects a value of
// exactly five characters while "min:5" accepts it.
//
// # Custom rules
//
// Any type implementing Rule can be registered with Add. Rules needing
// parameters should also implement ParamsChecker so that malformed specs
// fail with ErrInvalidRuleParams instead of silently rejecting input.
//
// # Errors
//
// ErrUnknownRule and ErrInvalidRuleParams signal a broken rule set and abort
// the validation. Use Check or CheckRuleSets at startup to catch them early.
package validator
