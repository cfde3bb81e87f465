package query

import (
	"fmt"
	"strconv"

	"github.com/qsift/qsift/filter"
	"github.com/qsift/qsift/qs"
)

// Pagination defaults.
const (
	DefaultPageNumber = 1
	DefaultPageSize   = 25
)

// Page is a pagination specification.
type Page struct {
	Number int `json:"number"`
	Size   int `json:"size"`
}

// DefaultPage returns the pagination applied when the query string names
// none.
func DefaultPage() Page {
	return Page{Number: DefaultPageNumber, Size: DefaultPageSize}
}

// ParsePage reshapes the page[number] and page[size] parameters. Values must
// be positive whole numbers; anything else appends a parsing error. Page
// segments other than number and size are ignored.
func ParsePage(querystring string, params qs.Params, errs []filter.ParsingError) (Page, []filter.ParsingError) {
	page := DefaultPage()
	for _, p := range params.WithPrefix("page") {
		if len(p.Segments) == 0 {
			continue
		}
		var target *int
		switch p.Segments[0] {
		case "number":
			target = &page.Number
		case "size":
			target = &page.Size
		default:
			continue
		}
		n, err := strconv.Atoi(p.Value())
		if err != nil || n < 1 {
			errs = append(errs, filter.ParsingError{
				Message:     fmt.Sprintf("%s should be a positive whole number", p.Key()),
				Querystring: querystring,
				ParamKey:    p.Key(),
				ParamValue:  p.Value(),
			})
			continue
		}
		*target = n
	}
	return page, errs
}
