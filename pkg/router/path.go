package router

import (
	"fmt"
	"regexp"
	"strings"
)

var (
	repeatedSlashes = regexp.MustCompile(`/{2,}`)
	placeholder     = regexp.MustCompile(`\{([^/{}]+)\}`)
)

// NormalizePath trims surrounding slashes, forces exactly one leading and one
// trailing slash and collapses repeated slashes. The root path becomes "/".
// NormalizePath is idempotent.
func NormalizePath(path string) string {
	path = strings.Trim(path, "/")
	path = "/" + path + "/"
	return repeatedSlashes.ReplaceAllString(path, "/")
}

// compilePattern turns a normalized template into an anchored regular
// expression. Every {name} placeholder becomes a single-segment capture group
// and every other character is matched literally. Placeholder names are
// returned in their order of appearance.
func compilePattern(path string) (*regexp.Regexp, []string, error) {
	locs := placeholder.FindAllStringSubmatchIndex(path, -1)

	var b strings.Builder
	b.WriteString("^")

	names := make([]string, 0, len(locs))
	seen := make(map[string]struct{}, len(locs))
	last := 0

	for _, loc := range locs {
		literal := path[last:loc[0]]
		if strings.ContainsAny(literal, "{}") {
			return nil, nil, fmt.Errorf("%w: stray brace in %q", ErrInvalidPattern, path)
		}
		b.WriteString(regexp.QuoteMeta(literal))
		b.WriteString("([^/]+)")

		name := path[loc[2]:loc[3]]
		if _, dup := seen[name]; dup {
			return nil, nil, fmt.Errorf("%w: duplicate placeholder {%s} in %q", ErrInvalidPattern, name, path)
		}
		seen[name] = struct{}{}
		names = append(names, name)
		last = loc[1]
	}

	tail := path[last:]
	if strings.ContainsAny(tail, "{}") {
		return nil, nil, fmt.Errorf("%w: stray brace in %q", ErrInvalidPattern, path)
	}
	b.WriteString(regexp.QuoteMeta(tail))
	b.WriteString("$")

	re, err := regexp.Compile(b.String())
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %q: %w", ErrInvalidPattern, path, err)
	}
	if re.NumSubexp() != len(names) {
		return nil, nil, fmt.Errorf("%w: %q has %d placeholders and %d groups", ErrInvalidPattern, path, len(names), re.NumSubexp())
	}

	return re, names, nil
}
