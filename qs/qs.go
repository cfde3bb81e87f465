package qs

import (
	"fmt"
	"net/url"
	"strings"
)

/*
qs tokenizes decoded query-string fragments into an ordered parameter list.
Bracket keys are split into segments with the grammar in grammar.go, and
comma-joined values become arrays. Order is preserved deliberately: the filter
compiler's fold and its error short-circuit are both sensitive to the order
parameters appear in the query string, so the result is a slice rather than a
map.
*/

////////////////////////////////////////////////////////////////////////////////

// Param is one tokenized query-string parameter.
type Param struct {
	// Prefix is the top-level key segment, e.g. "filter" in filter[age]=10.
	Prefix string
	// Segments holds the bracketed segments after the prefix, in order.
	Segments []string
	// Values holds the comma-split values. Always at least one element; a
	// parameter with no "=" tokenizes to a single empty string.
	Values []string
	// IsArray reports whether the raw value was comma-joined.
	IsArray bool
}

// Key reconstructs the bracket-notation key for diagnostics.
func (p Param) Key() string {
	return Key{Prefix: p.Prefix, Segments: p.Segments}.String()
}

// Value reconstructs the raw value string.
func (p Param) Value() string {
	return strings.Join(p.Values, ",")
}

// Params is an ordered sequence of tokenized parameters.
type Params []Param

// WithPrefix returns the parameters whose top-level segment matches prefix,
// preserving order.
func (ps Params) WithPrefix(prefix string) Params {
	out := Params{}
	for _, p := range ps {
		if p.Prefix == prefix {
			out = append(out, p)
		}
	}
	return out
}

// First returns the first parameter with the given prefix, if any.
func (ps Params) First(prefix string) (Param, bool) {
	for _, p := range ps {
		if p.Prefix == prefix {
			return p, true
		}
	}
	return Param{}, false
}

// Parse tokenizes a query-string fragment. Percent escapes are decoded before
// bracket splitting so encoded brackets behave like literal ones.
func Parse(rawQuery string) (Params, error) {
	parser := NewKeyParser()
	params := Params{}
	for _, pair := range strings.Split(rawQuery, "&") {
		if pair == "" {
			continue
		}
		rawKey, rawValue, _ := strings.Cut(pair, "=")
		key, err := url.QueryUnescape(rawKey)
		if err != nil {
			return nil, fmt.Errorf("failed to decode key %q: %w", rawKey, err)
		}
		value, err := url.QueryUnescape(rawValue)
		if err != nil {
			return nil, fmt.Errorf("failed to decode value %q: %w", rawValue, err)
		}
		parsed, err := parser.ParseString("", key)
		if err != nil {
			return nil, fmt.Errorf("failed to parse key %q: %w", key, err)
		}
		if parsed.Segments == nil {
			parsed.Segments = []string{}
		}
		values := strings.Split(value, ",")
		params = append(params, Param{
			Prefix:   parsed.Prefix,
			Segments: parsed.Segments,
			Values:   values,
			IsArray:  len(values) > 1,
		})
	}
	return params, nil
}
