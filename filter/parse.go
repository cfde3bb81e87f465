package filter

import (
	"github.com/qsift/qsift/qs"
)

/*
Extraction and orchestration. Extract selects the filter parameters out of a
parsed query string and reshapes them into fields; Parse runs each field
through the compilation pipeline and assembles either a conjunction tree or
the first error encountered. Parse is total: every failure mode surfaces as
a ParsingError in the result, never as a Go error to the caller.
*/

////////////////////////////////////////////////////////////////////////////////

// Prefix is the query string prefix that marks filter parameters.
const Prefix = "filter"

// Field is one filter parameter reshaped for compilation. Operator is the
// raw bracket token and is empty when the parameter named none.
type Field struct {
	Name     string
	Operator string
	Values   []string
	IsArray  bool

	param qs.Param
}

// Result is the outcome of filter compilation. Exactly one of Results and
// Errors is populated; an empty query string yields neither.
type Result struct {
	Results Node           `json:"results"`
	Errors  []ParsingError `json:"errors"`
}

// Extract selects the filter parameters from a parsed query string and
// reshapes them into fields, preserving order. Parameters with the filter
// prefix but no field segment are ignored.
func Extract(params qs.Params) []Field {
	fields := []Field{}
	for _, p := range params.WithPrefix(Prefix) {
		if len(p.Segments) == 0 {
			continue
		}
		f := Field{
			Name:    p.Segments[0],
			Values:  p.Values,
			IsArray: p.IsArray,
			param:   p,
		}
		if len(p.Segments) > 1 {
			f.Operator = p.Segments[1]
		}
		fields = append(fields, f)
	}
	return fields
}

// Parse compiles the filter parameters of a query string into a predicate
// tree. Upstream errors from earlier parsing stages pass through verbatim
// and suppress compilation. Within the filter itself the first field to fail
// terminates compilation, so the result carries at most one filter error and
// never a partial tree.
func Parse(querystring string, params qs.Params, upstream []ParsingError) Result {
	if len(upstream) > 0 {
		return Result{Errors: upstream}
	}
	preds := []Node{}
	for _, f := range Extract(params) {
		node, err := compileField(f)
		if err != nil {
			return Result{Errors: []ParsingError{{
				Message:     err.Error(),
				Querystring: querystring,
				ParamKey:    f.param.Key(),
				ParamValue:  f.param.Value(),
			}}}
		}
		preds = append(preds, node)
	}
	return Result{Results: Fold(preds), Errors: []ParsingError{}}
}

// compileField runs one field through the pipeline: classify the values,
// resolve the operator, validate the combination, map into the target
// vocabulary, and build the predicate node.
func compileField(f Field) (Node, error) {
	vt, err := Classify(f.Values)
	if err != nil {
		return nil, err
	}
	var op SourceOperator
	if f.Operator == "" {
		op = DefaultOperator(f.IsArray, vt)
	} else {
		var ok bool
		if op, ok = ParseSourceOperator(f.Operator); !ok {
			return nil, UnknownOperatorError{Token: f.Operator}
		}
	}
	if err := ValidateOperator(op, f.IsArray, vt); err != nil {
		return nil, err
	}
	target := MapOperator(op, vt)
	if target.IsUnary() {
		return &NullCheck{Op: target, Field: f.Name}, nil
	}
	return NewCondition(target, f.Name, Coerce(vt, f.Values)), nil
}
