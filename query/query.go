package query

import (
	"github.com/qsift/qsift/filter"
	"github.com/qsift/qsift/qs"
)

/*
query composes the section parsers over a single tokenization pass. The
sections run in a fixed order (sort, pagination, fields, filter) and the
filter stage receives whatever errors the earlier stages produced, so a
failed section suppresses filter compilation and the aggregate error list
surfaces in one place.
*/

////////////////////////////////////////////////////////////////////////////////

// Result is the outcome of parsing a full query string.
type Result struct {
	Sort   []SortTerm    `json:"sort,omitempty"`
	Page   Page          `json:"page"`
	Fields []Selection   `json:"fields,omitempty"`
	Filter filter.Result `json:"filter"`
}

// Parse tokenizes a query string and runs the section parsers over it. Like
// the filter compiler it is total: tokenization failures and section errors
// all surface as parsing errors in the result.
func Parse(rawQuery string) Result {
	params, err := qs.Parse(rawQuery)
	if err != nil {
		return Result{
			Page: DefaultPage(),
			Filter: filter.Result{Errors: []filter.ParsingError{{
				Message:     err.Error(),
				Querystring: rawQuery,
			}}},
		}
	}
	errs := []filter.ParsingError{}
	page, errs := ParsePage(rawQuery, params, errs)
	return Result{
		Sort:   ParseSort(params),
		Page:   page,
		Fields: ParseFields(params),
		Filter: filter.Parse(rawQuery, params, errs),
	}
}
