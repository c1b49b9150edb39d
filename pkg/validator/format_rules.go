package validator

import (
	"errors"
	"fmt"
	"net/mail"
	"net/url"
	"regexp"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

var numericRegex = regexp.MustCompile(`^[+-]?(\d+(\.\d*)?|\.\d+)([eE][+-]?\d+)?$`)

// EmailRule requires a bare address such as "jane@example.com".
type EmailRule struct{}

func (EmailRule) Validate(data Data, field string, _ []string) bool {
	return isEmail(data[field])
}

func (EmailRule) Message(Data, string, []string) string {
	return "Enter a valid email address"
}

func isEmail(value string) bool {
	if strings.TrimSpace(value) == "" {
		return false
	}

	addr, err := mail.ParseAddress(value)
	if err != nil || addr.Address != value {
		return false
	}

	local, domain, ok := strings.Cut(addr.Address, "@")
	if !ok || local == "" {
		return false
	}

	// Domain must contain at least one dot and no empty labels
	if !strings.Contains(domain, ".") {
		return false
	}
	for part := range strings.SplitSeq(domain, ".") {
		if part == "" {
			return false
		}
	}

	return true
}

// URLRule requires an absolute URL with a scheme and a host.
type URLRule struct{}

func (URLRule) Validate(data Data, field string, _ []string) bool {
	value := data[field]
	if strings.TrimSpace(value) == "" {
		return false
	}

	u, err := url.ParseRequestURI(value)
	if err != nil {
		return false
	}
	return u.Scheme != "" && u.Host != ""
}

func (URLRule) Message(Data, string, []string) string {
	return "Please provide a valid URL"
}

// NumericRule accepts integers and decimals with an optional sign and
// exponent, such as "42", "-1.5" or "2e10". Surrounding whitespace is ignored.
type NumericRule struct{}

func (NumericRule) Validate(data Data, field string, _ []string) bool {
	return numericRegex.MatchString(strings.TrimSpace(data[field]))
}

func (NumericRule) Message(Data, string, []string) string {
	return "This field must contain only numbers"
}

// RegexRule matches the field against a pattern. The parameters are joined
// back with commas, so the pattern may contain them. Both bare Go patterns
// and delimited ones with flags, like "/^[a-z]+$/i", are accepted.
type RegexRule struct {
	cache sync.Map
}

func (r *RegexRule) CheckParams(params []string) error {
	_, err := r.compile(params)
	return err
}

func (r *RegexRule) Validate(data Data, field string, params []string) bool {
	re, err := r.compile(params)
	if err != nil {
		return false
	}
	return re.MatchString(data[field])
}

func (*RegexRule) Message(_ Data, field string, _ []string) string {
	return fmt.Sprintf("The field %s is not in the required format", field)
}

func (r *RegexRule) compile(params []string) (*regexp.Regexp, error) {
	pattern := strings.Join(params, ",")
	if pattern == "" {
		return nil, errors.New("regular expression not specified")
	}

	if re, ok := r.cache.Load(pattern); ok {
		return re.(*regexp.Regexp), nil
	}

	re, err := regexp.Compile(translatePattern(pattern))
	if err != nil {
		return nil, err
	}
	r.cache.Store(pattern, re)
	return re, nil
}

// translatePattern converts a delimited pattern like "#^\d+$#i" into Go
// syntax. Patterns without a recognised delimiter are returned as is.
func translatePattern(pattern string) string {
	if len(pattern) < 2 {
		return pattern
	}

	delim := pattern[0]
	if !strings.ContainsRune("/#~!@%|", rune(delim)) {
		return pattern
	}

	end := strings.LastIndexByte(pattern, delim)
	if end == 0 {
		return pattern
	}

	body, modifiers := pattern[1:end], pattern[end+1:]
	var flags strings.Builder
	for _, m := range modifiers {
		switch m {
		case 'i', 'm', 's', 'U':
			flags.WriteRune(m)
		case 'x', 'u', 'D':
		default:
			return pattern
		}
	}

	if flags.Len() == 0 {
		return body
	}
	return "(?" + flags.String() + ")" + body
}

// DateFormatRule requires a date written in the layout of params[0]. The
// layout uses the usual date format letters (Y, m, d, H, i, s, ...); a
// backslash escapes a literal character. Parameters are joined back with
// commas, so layouts like "D, d M Y" work.
type DateFormatRule struct{}

func (DateFormatRule) CheckParams(params []string) error {
	if strings.Join(params, ",") == "" {
		return errors.New("date format not specified")
	}
	return nil
}

func (DateFormatRule) Validate(data Data, field string, params []string) bool {
	layout := GoLayout(strings.Join(params, ","))
	_, err := time.Parse(layout, data[field])
	return err == nil
}

func (DateFormatRule) Message(_ Data, _ string, params []string) string {
	return fmt.Sprintf("Must be a valid date in the format %s", strings.Join(params, ","))
}

var layoutTokens = map[rune]string{
	'd': "02",
	'j': "2",
	'D': "Mon",
	'l': "Monday",
	'm': "01",
	'n': "1",
	'M': "Jan",
	'F': "January",
	'Y': "2006",
	'y': "06",
	'H': "15",
	'h': "03",
	'g': "3",
	'i': "04",
	's': "05",
	'A': "PM",
	'a': "pm",
	'T': "MST",
	'P': "-07:00",
	'O': "-0700",
}

// GoLayout converts a format such as "Y-m-d H:i" into the Go reference
// layout "2006-01-02 15:04".
func GoLayout(format string) string {
	var b strings.Builder
	escaped := false
	for _, r := range format {
		switch {
		case escaped:
			b.WriteRune(r)
			escaped = false
		case r == '\\':
			escaped = true
		default:
			if token, ok := layoutTokens[r]; ok {
				b.WriteString(token)
			} else {
				b.WriteRune(r)
			}
		}
	}
	return b.String()
}

// InRule requires the value to be exactly one of the parameters.
type InRule struct{}

func (InRule) CheckParams(params []string) error {
	if len(params) == 0 || (len(params) == 1 && params[0] == "") {
		return errors.New("allowed set of values not specified")
	}
	return nil
}

func (InRule) Validate(data Data, field string, params []string) bool {
	return slices.Contains(params, data[field])
}

func (InRule) Message(_ Data, _ string, params []string) string {
	return fmt.Sprintf("The value must be one of the following values: %s", strings.Join(params, ", "))
}

// UUIDRule requires a canonical UUID string.
type UUIDRule struct{}

func (UUIDRule) Validate(data Data, field string, _ []string) bool {
	value := data[field]
	if len(value) != 36 {
		return false
	}
	_, err := uuid.Parse(value)
	return err == nil
}

func (UUIDRule) Message(Data, string, []string) string {
	return "Must be a valid UUID"
}
