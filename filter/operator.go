package filter

/*
This file defines the two operator vocabularies and the logic that moves a
field between them: defaulting when the query string names no operator,
validating operator/type/arity combinations, and mapping the source
vocabulary into the target predicate vocabulary. Both enumerations are
closed; every switch over them is exhaustive and panics on values that
cannot occur, so adding an operator fails loudly everywhere it matters.
*/

////////////////////////////////////////////////////////////////////////////////

// SourceOperator enumerates the comparison vocabulary accepted in the query
// string's bracket notation.
type SourceOperator int

const (
	SourceEquals SourceOperator = iota
	SourceNotEquals
	SourceGreaterThan
	SourceGreaterOrEqual
	SourceLessThan
	SourceLessOrEqual
	SourceSubstringMatch
	SourceInSet
	SourceNotInSet

	// SourceIsNull is the internal null-equality case. It is never parsed
	// from a key segment; it arises only by defaulting on a null scalar.
	SourceIsNull
)

// String returns the bracket-notation spelling of the operator.
func (op SourceOperator) String() string {
	switch op {
	case SourceEquals:
		return "equals"
	case SourceNotEquals:
		return "not-equals"
	case SourceGreaterThan:
		return "greater-than"
	case SourceGreaterOrEqual:
		return "greater-or-equal"
	case SourceLessThan:
		return "less-than"
	case SourceLessOrEqual:
		return "less-or-equal"
	case SourceSubstringMatch:
		return "substring-match"
	case SourceInSet:
		return "in-set"
	case SourceNotInSet:
		return "not-in-set"
	case SourceIsNull:
		return "is-null"
	default:
		panic("unknown source operator")
	}
}

// ParseSourceOperator resolves an operator token from a bracket segment. The
// boolean is false for tokens outside the vocabulary, including the internal
// is-null case, which cannot be requested explicitly.
func ParseSourceOperator(token string) (SourceOperator, bool) {
	switch token {
	case "equals":
		return SourceEquals, true
	case "not-equals":
		return SourceNotEquals, true
	case "greater-than":
		return SourceGreaterThan, true
	case "greater-or-equal":
		return SourceGreaterOrEqual, true
	case "less-than":
		return SourceLessThan, true
	case "less-or-equal":
		return SourceLessOrEqual, true
	case "substring-match":
		return SourceSubstringMatch, true
	case "in-set":
		return SourceInSet, true
	case "not-in-set":
		return SourceNotInSet, true
	default:
		return 0, false
	}
}

// TargetOperator enumerates the predicate vocabulary expected by downstream
// consumers. It is distinct from SourceOperator because null-valued equality
// collapses to the dedicated null operators.
type TargetOperator int

const (
	TargetEquals TargetOperator = iota
	TargetNotEquals
	TargetGreaterThan
	TargetGreaterOrEqual
	TargetLessThan
	TargetLessOrEqual
	TargetSubstringMatch
	TargetInSet
	TargetNotInSet
	TargetIsNull
	TargetIsNotNull
)

// String returns the wire spelling of the operator.
func (op TargetOperator) String() string {
	switch op {
	case TargetEquals:
		return "equals"
	case TargetNotEquals:
		return "not-equals"
	case TargetGreaterThan:
		return "greater-than"
	case TargetGreaterOrEqual:
		return "greater-or-equal"
	case TargetLessThan:
		return "less-than"
	case TargetLessOrEqual:
		return "less-or-equal"
	case TargetSubstringMatch:
		return "substring-match"
	case TargetInSet:
		return "in-set"
	case TargetNotInSet:
		return "not-in-set"
	case TargetIsNull:
		return "is-null"
	case TargetIsNotNull:
		return "is-not-null"
	default:
		panic("unknown target operator")
	}
}

// ParseTargetOperator resolves a target operator from its wire spelling.
func ParseTargetOperator(token string) (TargetOperator, bool) {
	for op := TargetEquals; op <= TargetIsNotNull; op++ {
		if op.String() == token {
			return op, true
		}
	}
	return 0, false
}

// IsUnary reports whether the operator takes no values.
func (op TargetOperator) IsUnary() bool {
	return op == TargetIsNull || op == TargetIsNotNull
}

// DefaultOperator returns the operator assumed when the query string names
// none. Arrays always read as set membership regardless of element type;
// scalars default by value type. The asymmetry is deliberate.
func DefaultOperator(isArray bool, vt ValueType) SourceOperator {
	if isArray {
		return SourceInSet
	}
	switch vt {
	case TypeNumber, TypeDate:
		return SourceEquals
	case TypeNull:
		return SourceIsNull
	case TypeString:
		return SourceSubstringMatch
	default:
		panic("unknown value type")
	}
}

// isOrdering reports whether the operator imposes an ordering on its operands.
func isOrdering(op SourceOperator) bool {
	switch op {
	case SourceGreaterThan, SourceGreaterOrEqual, SourceLessThan, SourceLessOrEqual:
		return true
	default:
		return false
	}
}

// ValidateOperator rejects operator/type/arity combinations that carry no
// meaning. Rules are checked in order and the first match wins:
//  1. array values pair only with the set operators
//  2. null values reject ordering and substring operators
//  3. numbers reject substring matching
//  4. dates reject substring matching
//  5. strings reject ordering operators
func ValidateOperator(op SourceOperator, isArray bool, vt ValueType) error {
	switch {
	case isArray && op != SourceInSet && op != SourceNotInSet:
		return OperatorArityError{Op: op}
	case vt == TypeNull && (isOrdering(op) || op == SourceSubstringMatch):
		return OperatorTypeError{Op: op, Type: TypeNull}
	case vt == TypeNumber && op == SourceSubstringMatch:
		return OperatorTypeError{Op: op, Type: TypeNumber}
	case vt == TypeDate && op == SourceSubstringMatch:
		return OperatorTypeError{Op: op, Type: TypeDate}
	case vt == TypeString && isOrdering(op):
		return OperatorTypeError{Op: op, Type: TypeString}
	}
	return nil
}

// MapOperator translates a validated source operator into the target
// vocabulary. The null adjustment fires only after the base mapping:
// null-valued equality becomes is-null and null-valued inequality becomes
// is-not-null.
func MapOperator(op SourceOperator, vt ValueType) TargetOperator {
	var mapped TargetOperator
	switch op {
	case SourceEquals:
		mapped = TargetEquals
	case SourceNotEquals:
		mapped = TargetNotEquals
	case SourceGreaterThan:
		mapped = TargetGreaterThan
	case SourceGreaterOrEqual:
		mapped = TargetGreaterOrEqual
	case SourceLessThan:
		mapped = TargetLessThan
	case SourceLessOrEqual:
		mapped = TargetLessOrEqual
	case SourceSubstringMatch:
		mapped = TargetSubstringMatch
	case SourceInSet:
		mapped = TargetInSet
	case SourceNotInSet:
		mapped = TargetNotInSet
	case SourceIsNull:
		mapped = TargetIsNull
	default:
		panic("unknown source operator")
	}
	if vt == TypeNull {
		switch mapped {
		case TargetEquals:
			mapped = TargetIsNull
		case TargetNotEquals:
			mapped = TargetIsNotNull
		}
	}
	return mapped
}
