package filter

import (
	"fmt"
	"strings"

	json "github.com/goccy/go-json"
)

/*
Predicate tree. Compiled filters are binary trees of nodes: Condition for
n-ary comparisons, NullCheck for the unary null tests, and And for the
conjunction of two subtrees. Nodes serialize to the wire format consumers
expect and print as s-expressions, which the tests lean on heavily as a
compact oracle for tree shape.
*/

////////////////////////////////////////////////////////////////////////////////

// Node is a node in a compiled predicate tree.
type Node interface {
	fmt.Stringer
	json.Marshaler

	node()
}

// FieldRef renders a field name in the wire format's reference notation,
// distinguishing it from a literal string value.
func FieldRef(name string) string {
	return "#" + name
}

// Condition is a comparison between a field and one or more values.
type Condition struct {
	Op     TargetOperator
	Field  string
	Values []any
}

// NewCondition builds a condition, applying the wire-format value
// transformations owned by construction: substring matches wrap their value
// in wildcards.
func NewCondition(op TargetOperator, field string, values []any) *Condition {
	if op == TargetSubstringMatch {
		wrapped := make([]any, len(values))
		for i, v := range values {
			wrapped[i] = fmt.Sprintf("%%%v%%", v)
		}
		values = wrapped
	}
	return &Condition{Op: op, Field: field, Values: values}
}

func (c *Condition) node() {}

// String returns the condition as an s-expression.
func (c *Condition) String() string {
	if c.Op == TargetInSet || c.Op == TargetNotInSet {
		terms := make([]string, len(c.Values))
		for i, v := range c.Values {
			terms[i] = fmt.Sprintf("%v", v)
		}
		return fmt.Sprintf("[%s %s (%s)]", c.Op, FieldRef(c.Field), strings.Join(terms, " "))
	}
	return fmt.Sprintf("[%s %s %v]", c.Op, FieldRef(c.Field), c.Values[0])
}

// MarshalJSON serializes the condition to its wire form. Set operators nest
// their values as an array; other operators splice the single value in
// beside the field reference.
func (c *Condition) MarshalJSON() ([]byte, error) {
	operands := []any{FieldRef(c.Field)}
	if c.Op == TargetInSet || c.Op == TargetNotInSet {
		operands = append(operands, c.Values)
	} else {
		operands = append(operands, c.Values...)
	}
	return json.Marshal(map[string][]any{c.Op.String(): operands})
}

// NullCheck is a unary null test on a field.
type NullCheck struct {
	Op    TargetOperator
	Field string
}

func (n *NullCheck) node() {}

// String returns the null check as an s-expression.
func (n *NullCheck) String() string {
	return fmt.Sprintf("[%s %s]", n.Op, FieldRef(n.Field))
}

// MarshalJSON serializes the null check to its wire form, a bare field
// reference under the operator key.
func (n *NullCheck) MarshalJSON() ([]byte, error) {
	return json.Marshal(map[string]string{n.Op.String(): FieldRef(n.Field)})
}

// And is the conjunction of two predicate subtrees.
type And struct {
	Left  Node
	Right Node
}

func (a *And) node() {}

// String returns the conjunction as an s-expression.
func (a *And) String() string {
	return fmt.Sprintf("[and %s %s]", a.Left, a.Right)
}

// MarshalJSON serializes the conjunction to its wire form.
func (a *And) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		And [2]Node `json:"AND"`
	}{And: [2]Node{a.Left, a.Right}})
}

// Fold combines predicates into a single left-leaning conjunction tree. A
// single predicate is returned unwrapped and an empty slice yields nil.
func Fold(preds []Node) Node {
	if len(preds) == 0 {
		return nil
	}
	tree := preds[0]
	for _, p := range preds[1:] {
		tree = &And{Left: tree, Right: p}
	}
	return tree
}
