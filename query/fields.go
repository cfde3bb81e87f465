package query

import (
	"github.com/bmatcuk/doublestar/v4"
	"github.com/qsift/qsift/qs"
)

// Selection is a per-resource field selection, e.g.
// fields[users]=name,address.* selects the name field and everything under
// address on the users resource.
type Selection struct {
	Resource string   `json:"resource"`
	Patterns []string `json:"patterns"`
}

// Match reports whether a field path is covered by the selection. Patterns
// are glob patterns over dotted field paths.
func (s Selection) Match(field string) bool {
	for _, pattern := range s.Patterns {
		if ok, err := doublestar.Match(pattern, field); err == nil && ok {
			return true
		}
	}
	return false
}

// ParseFields reshapes the fields parameters into per-resource selections,
// preserving order. Pure reshaping; pattern syntax errors surface lazily as
// non-matches.
func ParseFields(params qs.Params) []Selection {
	selections := []Selection{}
	for _, p := range params.WithPrefix("fields") {
		if len(p.Segments) == 0 {
			continue
		}
		selections = append(selections, Selection{
			Resource: p.Segments[0],
			Patterns: p.Values,
		})
	}
	if len(selections) == 0 {
		return nil
	}
	return selections
}
