package query

import "github.com/qsift/qsift/filter"

// NotAnArrayError indicates an include value of the wrong shape.
type NotAnArrayError struct{}

func (e NotAnArrayError) Error() string {
	return "include value should be an array"
}

// ValidateInclude checks a pre-parsed include value and echoes the relation
// names it selects. Prior errors pass through verbatim and suppress the
// check. Anything other than an array of names is a NotAnArrayError; an
// empty array is a valid empty selection.
func ValidateInclude(value any, prior []filter.ParsingError) ([]string, []filter.ParsingError) {
	if len(prior) > 0 {
		return nil, prior
	}
	var names []string
	switch v := value.(type) {
	case []string:
		names = v
	case []any:
		names = make([]string, 0, len(v))
		for _, item := range v {
			name, ok := item.(string)
			if !ok {
				return nil, []filter.ParsingError{{Message: NotAnArrayError{}.Error(), ParamKey: "include"}}
			}
			names = append(names, name)
		}
	default:
		return nil, []filter.ParsingError{{Message: NotAnArrayError{}.Error(), ParamKey: "include"}}
	}
	return names, []filter.ParsingError{}
}
