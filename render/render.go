package render

import (
	"fmt"
	"strings"

	"github.com/qsift/qsift/filter"
)

/*
render turns a compiled predicate tree into a parameterized SQL WHERE clause.
Values always travel as placeholder arguments, never spliced into the clause;
field names are the only interpolated identifiers and are double-quoted.
Rendering is deterministic for a given tree. Executing the resulting query is
the caller's business.
*/

////////////////////////////////////////////////////////////////////////////////

// SQL renders a predicate tree into a WHERE clause body and its placeholder
// arguments. A nil tree renders to a clause that matches everything.
func SQL(node filter.Node) (string, []any, error) {
	if node == nil {
		return "1 = 1", []any{}, nil
	}
	sb := &strings.Builder{}
	args := []any{}
	if err := renderNode(sb, &args, node); err != nil {
		return "", nil, err
	}
	return sb.String(), args, nil
}

func renderNode(sb *strings.Builder, args *[]any, node filter.Node) error {
	switch n := node.(type) {
	case *filter.Condition:
		return renderCondition(sb, args, n)
	case *filter.NullCheck:
		return renderNullCheck(sb, n)
	case *filter.And:
		sb.WriteString("(")
		if err := renderNode(sb, args, n.Left); err != nil {
			return err
		}
		sb.WriteString(" AND ")
		if err := renderNode(sb, args, n.Right); err != nil {
			return err
		}
		sb.WriteString(")")
		return nil
	default:
		return fmt.Errorf("unrecognized node type %T", node)
	}
}

func renderCondition(sb *strings.Builder, args *[]any, c *filter.Condition) error {
	switch c.Op {
	case filter.TargetInSet, filter.TargetNotInSet:
		keyword := "IN"
		if c.Op == filter.TargetNotInSet {
			keyword = "NOT IN"
		}
		placeholders := make([]string, len(c.Values))
		for i := range c.Values {
			placeholders[i] = "?"
		}
		fmt.Fprintf(sb, "%s %s (%s)", quote(c.Field), keyword, strings.Join(placeholders, ", "))
		*args = append(*args, c.Values...)
		return nil
	default:
		op, err := comparison(c.Op)
		if err != nil {
			return err
		}
		fmt.Fprintf(sb, "%s %s ?", quote(c.Field), op)
		*args = append(*args, c.Values[0])
		return nil
	}
}

func renderNullCheck(sb *strings.Builder, n *filter.NullCheck) error {
	switch n.Op {
	case filter.TargetIsNull:
		fmt.Fprintf(sb, "%s IS NULL", quote(n.Field))
	case filter.TargetIsNotNull:
		fmt.Fprintf(sb, "%s IS NOT NULL", quote(n.Field))
	default:
		return fmt.Errorf("unrecognized null check operator %s", n.Op)
	}
	return nil
}

func comparison(op filter.TargetOperator) (string, error) {
	switch op {
	case filter.TargetEquals:
		return "=", nil
	case filter.TargetNotEquals:
		return "!=", nil
	case filter.TargetGreaterThan:
		return ">", nil
	case filter.TargetGreaterOrEqual:
		return ">=", nil
	case filter.TargetLessThan:
		return "<", nil
	case filter.TargetLessOrEqual:
		return "<=", nil
	case filter.TargetSubstringMatch:
		return "LIKE", nil
	default:
		return "", fmt.Errorf("unrecognized comparison operator %s", op)
	}
}

func quote(field string) string {
	return `"` + strings.ReplaceAll(field, `"`, `""`) + `"`
}
