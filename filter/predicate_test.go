package filter_test

import (
	"testing"

	json "github.com/goccy/go-json"
	"github.com/qsift/qsift/filter"
	"github.com/stretchr/testify/require"
)

func TestNodeMarshaling(t *testing.T) {
	cases := []struct {
		assertion string
		node      filter.Node
		output    string
	}{
		{
			"comparison",
			filter.NewCondition(filter.TargetGreaterThan, "age", []any{float64(10)}),
			`{"greater-than": ["#age", 10]}`,
		},
		{
			"equality",
			filter.NewCondition(filter.TargetEquals, "age", []any{float64(10)}),
			`{"equals": ["#age", 10]}`,
		},
		{
			"substring match wraps its value in wildcards",
			filter.NewCondition(filter.TargetSubstringMatch, "name", []any{"bob"}),
			`{"substring-match": ["#name", "%bob%"]}`,
		},
		{
			"set membership nests values as an array",
			filter.NewCondition(filter.TargetInSet, "age", []any{float64(10), float64(20)}),
			`{"in-set": ["#age", [10, 20]]}`,
		},
		{
			"set exclusion nests values as an array",
			filter.NewCondition(filter.TargetNotInSet, "name", []any{"bob", "alice"}),
			`{"not-in-set": ["#name", ["bob", "alice"]]}`,
		},
		{
			"null check takes a bare field reference",
			&filter.NullCheck{Op: filter.TargetIsNull, Field: "name"},
			`{"is-null": "#name"}`,
		},
		{
			"negated null check",
			&filter.NullCheck{Op: filter.TargetIsNotNull, Field: "name"},
			`{"is-not-null": "#name"}`,
		},
		{
			"conjunction",
			&filter.And{
				Left:  filter.NewCondition(filter.TargetGreaterThan, "age", []any{float64(10)}),
				Right: &filter.NullCheck{Op: filter.TargetIsNull, Field: "name"},
			},
			`{"AND": [{"greater-than": ["#age", 10]}, {"is-null": "#name"}]}`,
		},
	}
	for _, c := range cases {
		t.Run(c.assertion, func(t *testing.T) {
			data, err := json.Marshal(c.node)
			require.NoError(t, err)
			require.JSONEq(t, c.output, string(data))
		})
	}
}

func TestFold(t *testing.T) {
	a := &filter.NullCheck{Op: filter.TargetIsNull, Field: "a"}
	b := &filter.NullCheck{Op: filter.TargetIsNull, Field: "b"}
	c := &filter.NullCheck{Op: filter.TargetIsNull, Field: "c"}

	require.Nil(t, filter.Fold(nil))
	require.Equal(t, filter.Node(a), filter.Fold([]filter.Node{a}))
	require.Equal(t, "[and [and [is-null #a] [is-null #b]] [is-null #c]]",
		filter.Fold([]filter.Node{a, b, c}).String())
}
