package filter

import (
	"math"
	"strconv"
	"strings"

	"github.com/relvacode/iso8601"
)

/*
Value classification and coercion. Raw query string values are untyped text;
classification assigns each value sequence a single ValueType and coercion
converts the text into the Go representation downstream consumers expect.
Classification is whole-sequence: a mixed array has no sensible type and is
rejected rather than guessed at.
*/

////////////////////////////////////////////////////////////////////////////////

// ValueType describes the inferred type of a value sequence.
type ValueType int

const (
	TypeNumber ValueType = iota
	TypeDate
	TypeNull
	TypeString
)

// String returns a human-readable name for the type.
func (vt ValueType) String() string {
	switch vt {
	case TypeNumber:
		return "number"
	case TypeDate:
		return "date"
	case TypeNull:
		return "null"
	case TypeString:
		return "string"
	default:
		panic("unknown value type")
	}
}

// classify infers the type of a single raw value. The null sentinel is
// checked first, then numeric and date syntax. Anything else is a string.
// Non-finite numerals (NaN, Inf) are strings: they have no JSON
// representation, so they must never reach a predicate as numbers.
func classify(raw string) ValueType {
	if strings.EqualFold(raw, "null") {
		return TypeNull
	}
	if f, err := strconv.ParseFloat(raw, 64); err == nil && !math.IsNaN(f) && !math.IsInf(f, 0) {
		return TypeNumber
	}
	if _, err := iso8601.ParseString(raw); err == nil {
		return TypeDate
	}
	return TypeString
}

// Classify infers a single type for the full value sequence. Sequences mixing
// types are rejected.
func Classify(values []string) (ValueType, error) {
	vt := classify(values[0])
	for _, v := range values[1:] {
		if classify(v) != vt {
			return 0, MixedValueTypesError{}
		}
	}
	return vt, nil
}

// Coerce converts raw values into their typed representations. Numbers become
// float64, nulls become nil, and dates pass through as their original text.
func Coerce(vt ValueType, values []string) []any {
	coerced := make([]any, len(values))
	for i, v := range values {
		switch vt {
		case TypeNull:
			coerced[i] = nil
		case TypeNumber:
			f, err := strconv.ParseFloat(v, 64)
			if err != nil {
				panic("coercing unclassified value: " + v)
			}
			coerced[i] = f
		case TypeDate, TypeString:
			coerced[i] = v
		default:
			panic("unknown value type")
		}
	}
	return coerced
}
