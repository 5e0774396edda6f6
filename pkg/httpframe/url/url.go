// Package url implements a request-path template matcher: a compiled
// template turns "{name}" placeholders into named capture groups, and
// optional query constraints (with a "*" wildcard) are checked against
// the request's query string once a path matches.
//
// Built on stdlib regexp: template compilation happens once at
// route-registration time, off the request hot path, so regexp's
// allocation profile is not a concern here (see DESIGN.md).
package url

import (
	"net/url"
	"regexp"
	"strings"
)

// Template is a compiled path pattern with optional query constraints.
type Template struct {
	raw        string
	re         *regexp.Regexp
	queryRules map[string]string // name -> required value, "*" meaning "present"
}

var placeholder = regexp.MustCompile(`\{([A-Za-z_][A-Za-z0-9_]*)\}`)

// Compile turns a path pattern like "/users/{id}/posts/{postID}" into a
// Template. Each "{name}" becomes a named capture group matching one path
// segment (no '/' or '?').
func Compile(pattern string) (*Template, error) {
	var b strings.Builder
	last := 0
	for _, loc := range placeholder.FindAllStringSubmatchIndex(pattern, -1) {
		b.WriteString(regexp.QuoteMeta(pattern[last:loc[0]]))
		name := pattern[loc[2]:loc[3]]
		b.WriteString(`(?P<` + name + `>[^/?]+)`)
		last = loc[1]
	}
	b.WriteString(regexp.QuoteMeta(pattern[last:]))

	re, err := regexp.Compile("^" + b.String() + "$")
	if err != nil {
		return nil, err
	}
	return &Template{raw: pattern, re: re}, nil
}

// WithQuery attaches a query constraint: name must be present with exactly
// value, or with any value at all when value is "*".
func (t *Template) WithQuery(name, value string) *Template {
	if t.queryRules == nil {
		t.queryRules = make(map[string]string)
	}
	t.queryRules[name] = value
	return t
}

// MatchResult holds the named path parameters extracted by a successful Match.
type MatchResult struct {
	Params map[string]string
}

// Match reports whether path (plus optional "?query") satisfies t,
// returning the extracted named path parameters on success.
func (t *Template) Match(requestTarget string) (MatchResult, bool) {
	path := requestTarget
	var rawQuery string
	if idx := strings.IndexByte(requestTarget, '?'); idx >= 0 {
		path = requestTarget[:idx]
		rawQuery = requestTarget[idx+1:]
	}

	m := t.re.FindStringSubmatch(path)
	if m == nil {
		return MatchResult{}, false
	}

	params := make(map[string]string, len(t.re.SubexpNames()))
	for i, name := range t.re.SubexpNames() {
		if i == 0 || name == "" {
			continue
		}
		params[name] = m[i]
	}

	if len(t.queryRules) > 0 {
		values, err := url.ParseQuery(rawQuery)
		if err != nil {
			return MatchResult{}, false
		}
		for name, want := range t.queryRules {
			got, ok := values[name]
			if !ok || len(got) == 0 {
				return MatchResult{}, false
			}
			if want != "*" && got[len(got)-1] != want {
				return MatchResult{}, false
			}
		}
	}

	return MatchResult{Params: params}, true
}

// String returns the original, uncompiled pattern.
func (t *Template) String() string { return t.raw }
