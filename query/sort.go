package query

import (
	"strings"

	"github.com/qsift/qsift/qs"
)

// SortTerm is one term of a sort specification.
type SortTerm struct {
	Field      string `json:"field"`
	Descending bool   `json:"descending"`
}

// ParseSort reshapes the sort parameter into ordered terms. A leading minus
// marks a descending term. This is pure reshaping; no type inference and no
// failure modes.
func ParseSort(params qs.Params) []SortTerm {
	p, ok := params.First("sort")
	if !ok {
		return nil
	}
	terms := []SortTerm{}
	for _, v := range p.Values {
		if v == "" {
			continue
		}
		if name, ok := strings.CutPrefix(v, "-"); ok {
			terms = append(terms, SortTerm{Field: name, Descending: true})
			continue
		}
		terms = append(terms, SortTerm{Field: v})
	}
	return terms
}
