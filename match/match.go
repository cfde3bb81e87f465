package match

import (
	"fmt"
	"strings"

	"github.com/qsift/qsift/filter"
)

/*
match compiles predicate trees into filter functions over flat records. A
filter has signature func(record) (bool, error), where the bool indicates
whether the record satisfies the predicate. Compilation walks the tree once
and returns a closure per node, so a compiled filter can run over many
records without re-inspecting the tree.

Null semantics follow SQL-ish conventions: a field that is absent from the
record evaluates like a null, satisfying is-null and failing every
comparison. Type mismatches between a predicate value and a record value are
errors rather than silent non-matches.
*/

////////////////////////////////////////////////////////////////////////////////

// Record is a flat field-to-value mapping to evaluate predicates against.
type Record map[string]any

// Filter is a compiled predicate.
type Filter func(record Record) (bool, error)

// TypeMismatchError indicates a record value of a different type than the
// predicate value it is compared against.
type TypeMismatchError struct {
	Field string
	Value any
}

func (e TypeMismatchError) Error() string {
	return fmt.Sprintf("field %s has incompatible value %v", e.Field, e.Value)
}

// Compile compiles a predicate tree into a filter. A nil tree compiles to a
// filter that accepts every record.
func Compile(node filter.Node) (Filter, error) {
	if node == nil {
		return func(Record) (bool, error) { return true, nil }, nil
	}
	switch n := node.(type) {
	case *filter.Condition:
		return compileCondition(n)
	case *filter.NullCheck:
		return compileNullCheck(n)
	case *filter.And:
		left, err := Compile(n.Left)
		if err != nil {
			return nil, err
		}
		right, err := Compile(n.Right)
		if err != nil {
			return nil, err
		}
		return func(record Record) (bool, error) {
			if ok, err := left(record); !ok || err != nil {
				return ok, err
			}
			return right(record)
		}, nil
	default:
		return nil, fmt.Errorf("unrecognized node type %T", node)
	}
}

func compileNullCheck(n *filter.NullCheck) (Filter, error) {
	switch n.Op {
	case filter.TargetIsNull:
		return func(record Record) (bool, error) {
			return record[n.Field] == nil, nil
		}, nil
	case filter.TargetIsNotNull:
		return func(record Record) (bool, error) {
			return record[n.Field] != nil, nil
		}, nil
	default:
		return nil, fmt.Errorf("unrecognized null check operator %s", n.Op)
	}
}

func compileCondition(c *filter.Condition) (Filter, error) {
	switch c.Op {
	case filter.TargetEquals:
		return compileEquality(c, false), nil
	case filter.TargetNotEquals:
		return compileEquality(c, true), nil
	case filter.TargetGreaterThan:
		return compileOrdering(c, func(cmp int) bool { return cmp > 0 }), nil
	case filter.TargetGreaterOrEqual:
		return compileOrdering(c, func(cmp int) bool { return cmp >= 0 }), nil
	case filter.TargetLessThan:
		return compileOrdering(c, func(cmp int) bool { return cmp < 0 }), nil
	case filter.TargetLessOrEqual:
		return compileOrdering(c, func(cmp int) bool { return cmp <= 0 }), nil
	case filter.TargetSubstringMatch:
		return compileSubstring(c)
	case filter.TargetInSet:
		return compileMembership(c, false), nil
	case filter.TargetNotInSet:
		return compileMembership(c, true), nil
	default:
		return nil, fmt.Errorf("unrecognized comparison operator %s", c.Op)
	}
}

func compileEquality(c *filter.Condition, negate bool) Filter {
	target := c.Values[0]
	return func(record Record) (bool, error) {
		v := record[c.Field]
		if v == nil {
			return false, nil
		}
		ok, err := equal(c.Field, v, target)
		if err != nil {
			return false, err
		}
		return ok != negate, nil
	}
}

func compileOrdering(c *filter.Condition, accept func(cmp int) bool) Filter {
	target := c.Values[0]
	return func(record Record) (bool, error) {
		v := record[c.Field]
		if v == nil {
			return false, nil
		}
		cmp, err := compare(c.Field, v, target)
		if err != nil {
			return false, err
		}
		return accept(cmp), nil
	}
}

func compileSubstring(c *filter.Condition) (Filter, error) {
	needle, ok := c.Values[0].(string)
	if !ok {
		return nil, TypeMismatchError{Field: c.Field, Value: c.Values[0]}
	}
	needle = strings.Trim(needle, "%")
	return func(record Record) (bool, error) {
		v := record[c.Field]
		if v == nil {
			return false, nil
		}
		s, ok := v.(string)
		if !ok {
			return false, TypeMismatchError{Field: c.Field, Value: v}
		}
		return strings.Contains(s, needle), nil
	}, nil
}

func compileMembership(c *filter.Condition, negate bool) Filter {
	return func(record Record) (bool, error) {
		v := record[c.Field]
		if v == nil {
			return false, nil
		}
		for _, target := range c.Values {
			ok, err := equal(c.Field, v, target)
			if err != nil {
				return false, err
			}
			if ok {
				return !negate, nil
			}
		}
		return negate, nil
	}
}

// equal compares a record value to a predicate value. Numbers compare across
// integer and floating point representations.
func equal(field string, v, target any) (bool, error) {
	if tf, ok := asFloat(target); ok {
		vf, ok := asFloat(v)
		if !ok {
			return false, TypeMismatchError{Field: field, Value: v}
		}
		return vf == tf, nil
	}
	ts, ok := target.(string)
	if !ok {
		return false, TypeMismatchError{Field: field, Value: target}
	}
	vs, ok := v.(string)
	if !ok {
		return false, TypeMismatchError{Field: field, Value: v}
	}
	return vs == ts, nil
}

// compare orders a record value against a predicate value, returning the
// usual negative/zero/positive contract. Dates travel as ISO 8601 strings,
// which order correctly under lexical comparison.
func compare(field string, v, target any) (int, error) {
	if tf, ok := asFloat(target); ok {
		vf, ok := asFloat(v)
		if !ok {
			return 0, TypeMismatchError{Field: field, Value: v}
		}
		switch {
		case vf < tf:
			return -1, nil
		case vf > tf:
			return 1, nil
		default:
			return 0, nil
		}
	}
	ts, ok := target.(string)
	if !ok {
		return 0, TypeMismatchError{Field: field, Value: target}
	}
	vs, ok := v.(string)
	if !ok {
		return 0, TypeMismatchError{Field: field, Value: v}
	}
	return strings.Compare(vs, ts), nil
}

func asFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	default:
		return 0, false
	}
}
