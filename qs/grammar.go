package qs

import (
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

/*
This file contains a participle grammar for bracket-notation parameter keys.
A key is a top-level prefix followed by zero or more bracketed segments, e.g.
"filter[age][greater-than]". Segments are kept verbatim so downstream parsers
can re-split field names from operator tokens.
*/

////////////////////////////////////////////////////////////////////////////////

var (
	Options = []participle.Option{ // nolint:gochecknoglobals
		participle.Lexer(
			lexer.MustSimple([]lexer.SimpleRule{
				{Name: "Bracket", Pattern: `[\[\]]`},
				{Name: "Segment", Pattern: `[^\[\]]+`},
			}),
		),
	}
)

// Key represents a bracket-notation parameter key.
type Key struct {
	Prefix   string   `parser:"@Segment"`
	Segments []string `parser:"('[' @Segment ']')*"`
}

// String reconstructs the bracket notation.
func (k Key) String() string {
	sb := &strings.Builder{}
	sb.WriteString(k.Prefix)
	for _, seg := range k.Segments {
		sb.WriteString("[")
		sb.WriteString(seg)
		sb.WriteString("]")
	}
	return sb.String()
}

// NewKeyParser returns a new bracket-notation key parser.
func NewKeyParser() *participle.Parser[Key] {
	return participle.MustBuild[Key](Options...)
}
