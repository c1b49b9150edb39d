package validator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/catalyst/pkg/validator"
)

// check runs a single rule spec against value stored under field "f".
func check(t *testing.T, spec, value string) bool {
	t.Helper()

	err := validator.Default().Validate(validator.Data{"f": value}, validator.RuleSet{"f": {spec}})
	if err == nil {
		return true
	}
	_, ok := validator.AsValidationError(err)
	if !ok {
		t.Fatalf("unexpected error for %q: %v", spec, err)
	}
	return false
}

func TestRules(t *testing.T) {
	t.Parallel()

	tests := []struct {
		spec  string
		value string
		want  bool
	}{
		{"required", "x", true},
		{"required", "0", true},
		{"required", "", false},
		{"required", "   ", false},

		{"email", "jane@example.com", true},
		{"email", "jane.doe+tag@mail.example.org", true},
		{"email", "", false},
		{"email", "jane", false},
		{"email", "jane@localhost", false},
		{"email", "jane@example..com", false},
		{"email", "Jane <jane@example.com>", false},

		{"url", "https://example.com/path?q=1", true},
		{"url", "ftp://files.example.com", true},
		{"url", "example.com", false},
		{"url", "/relative", false},
		{"url", "", false},

		{"min:3", "abc", true},
		{"min:3", "ab", false},
		{"min:3", "héé", true},

		// max is strict: a value as long as the bound fails.
		{"max:5", "abcd", true},
		{"max:5", "abcde", false},
		{"max:5", "abcdef", false},

		{"length:2,4", "ab", true},
		{"length:2,4", "abcd", true},
		{"length:2,4", "a", false},
		{"length:2,4", "abcde", false},

		{"numeric", "42", true},
		{"numeric", "-1.5", true},
		{"numeric", " 3.0 ", true},
		{"numeric", ".5", true},
		{"numeric", "2e10", true},
		{"numeric", "", false},
		{"numeric", "12a", false},
		{"numeric", "0x1A", false},
		{"numeric", "NaN", false},

		{"alphanumeric", "abc123", true},
		{"alphanumeric", "abc 123", false},
		{"alphanumeric", "", false},

		{"alpha", "abc", true},
		{"alpha", "abc1", false},

		{`regex:^\d{3}$`, "123", true},
		{`regex:^\d{3}$`, "1234", false},
		{"regex:/^[a-z]+$/i", "ABC", true},
		{"regex:/^[a-z]+$/", "ABC", false},
		{"regex:^a{1,2}$", "aa", true},
		{"regex:^a{1,2}$", "aaa", false},

		{"in:red,green,blue", "green", true},
		{"in:red,green,blue", "Green", false},
		{"in:red,green,blue", "", false},

		{"date_format:Y-m-d", "2024-02-29", true},
		{"date_format:Y-m-d", "2023-02-29", false},
		{"date_format:Y-m-d", "29/02/2024", false},
		{"date_format:d/m/Y H:i", "01/12/2024 13:45", true},
		{"date_format:D, d M Y", "Mon, 02 Jan 2006", true},

		{"uuid", "3f1c2a9e-8b7d-4c6e-9f01-23456789abcd", true},
		{"uuid", "3f1c2a9e8b7d4c6e9f0123456789abcd", false},
		{"uuid", "not-a-uuid", false},
	}

	for _, tt := range tests {
		t.Run(tt.spec+"/"+tt.value, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, check(t, tt.spec, tt.value))
		})
	}
}

func TestMatchRule(t *testing.T) {
	t.Parallel()

	v := validator.Default()
	rules := validator.RuleSet{"confirmPassword": {"match:password"}}

	assert.NoError(t, v.Validate(validator.Data{"password": "s3cret", "confirmPassword": "s3cret"}, rules))

	err := v.Validate(validator.Data{"password": "s3cret", "confirmPassword": "other"}, rules)
	verr, ok := validator.AsValidationError(err)
	assert.True(t, ok)
	assert.Equal(t, "The field confirmPassword does not match the password field", verr.Get("confirmPassword"))
}

func TestRuleMessages(t *testing.T) {
	t.Parallel()

	tests := []struct {
		spec string
		want string
	}{
		{"email", "Enter a valid email address"},
		{"url", "Please provide a valid URL"},
		{"min:8", "Must be at least 8 characters"},
		{"max:1", "Exceeds max character limit of 1"},
		{"length:5,9", "The value must be between 5 and 9 characters"},
		{"numeric", "This field must contain only numbers"},
		{"alphanumeric", "This field only accepts alphanumeric characters"},
		{"regex:^z$", "The field f is not in the required format"},
		{"in:a,b", "The value must be one of the following values: a, b"},
		{"date_format:Y-m-d", "Must be a valid date in the format Y-m-d"},
	}

	for _, tt := range tests {
		t.Run(tt.spec, func(t *testing.T) {
			t.Parallel()

			err := validator.Default().Validate(validator.Data{"f": "!"}, validator.RuleSet{"f": {tt.spec}})
			verr, ok := validator.AsValidationError(err)
			if assert.True(t, ok) {
				assert.Equal(t, tt.want, verr.Get("f"))
			}
		})
	}
}

func TestRequiredMessage(t *testing.T) {
	t.Parallel()

	err := validator.Default().Validate(validator.Data{}, validator.RuleSet{"f": {"required"}})
	verr, ok := validator.AsValidationError(err)
	if assert.True(t, ok) {
		assert.Equal(t, "This field is required", verr.Get("f"))
	}
}

func TestGoLayout(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "2006-01-02", validator.GoLayout("Y-m-d"))
	assert.Equal(t, "02/01/2006 15:04:05", validator.GoLayout("d/m/Y H:i:s"))
	assert.Equal(t, "2006-01-02T15:04", validator.GoLayout(`Y-m-d\TH:i`))
	assert.Equal(t, "Mon, 02 Jan 2006", validator.GoLayout("D, d M Y"))
}
