package filter

import "fmt"

/*
Error types for filter compilation. Classification and validation failures
inside the pipeline are typed errors carrying only their message; the
orchestrator wraps whichever one surfaces into a ParsingError that names the
query string and the offending parameter, which is the shape callers and the
HTTP layer report.
*/

////////////////////////////////////////////////////////////////////////////////

// ParsingError describes a parameter that could not be compiled into a
// predicate. It is the only error shape the package returns to callers.
type ParsingError struct {
	Message     string `json:"message"`
	Querystring string `json:"querystring"`
	ParamKey    string `json:"paramKey"`
	ParamValue  string `json:"paramValue"`
}

func (e ParsingError) Error() string {
	return e.Message
}

// Detail returns the offending parameter, for HTTP error responses.
func (e ParsingError) Detail() string {
	return fmt.Sprintf("%s=%s", e.ParamKey, e.ParamValue)
}

// Is matches any other ParsingError regardless of detail, for errors.Is.
func (e ParsingError) Is(target error) bool {
	_, ok := target.(ParsingError)
	return ok
}

// MixedValueTypesError indicates an array whose elements classify to more
// than one value type.
type MixedValueTypesError struct{}

func (e MixedValueTypesError) Error() string {
	return "arrays should not mix multiple value types"
}

// OperatorArityError indicates a scalar operator applied to an array value.
type OperatorArityError struct {
	Op SourceOperator
}

func (e OperatorArityError) Error() string {
	return fmt.Sprintf("%s operator should not be used with array value", e.Op)
}

// OperatorTypeError indicates an operator applied to a value type it does
// not support.
type OperatorTypeError struct {
	Op   SourceOperator
	Type ValueType
}

func (e OperatorTypeError) Error() string {
	return fmt.Sprintf("%s operator should not be used with %s value", e.Op, e.Type)
}

// UnknownOperatorError indicates an operator token outside the vocabulary.
type UnknownOperatorError struct {
	Token string
}

func (e UnknownOperatorError) Error() string {
	return fmt.Sprintf("unknown operator %q", e.Token)
}
