package match_test

import (
	"testing"

	"github.com/qsift/qsift/filter"
	"github.com/qsift/qsift/match"
	"github.com/qsift/qsift/qs"
	"github.com/stretchr/testify/require"
)

func compile(t *testing.T, query string) match.Filter {
	t.Helper()
	params, err := qs.Parse(query)
	require.NoError(t, err)
	result := filter.Parse(query, params, nil)
	require.Empty(t, result.Errors)
	fn, err := match.Compile(result.Results)
	require.NoError(t, err)
	return fn
}

func TestCompile(t *testing.T) {
	cases := []struct {
		assertion string
		query     string
		record    match.Record
		output    bool
	}{
		{
			"comparison accepts",
			"filter[age][greater-than]=10",
			match.Record{"age": 11},
			true,
		},
		{
			"comparison rejects the boundary",
			"filter[age][greater-than]=10",
			match.Record{"age": 10},
			false,
		},
		{
			"inclusive comparison accepts the boundary",
			"filter[age][greater-or-equal]=10",
			match.Record{"age": 10},
			true,
		},
		{
			"equality across numeric representations",
			"filter[age][equals]=10",
			match.Record{"age": int64(10)},
			true,
		},
		{
			"inequality",
			"filter[age][not-equals]=10",
			match.Record{"age": 11},
			true,
		},
		{
			"date ordering is lexical",
			"filter[created][less-than]=2020-06-01",
			match.Record{"created": "2020-01-15"},
			true,
		},
		{
			"substring match",
			"filter[name]=ob",
			match.Record{"name": "bob"},
			true,
		},
		{
			"substring match rejects",
			"filter[name]=xyz",
			match.Record{"name": "bob"},
			false,
		},
		{
			"set membership accepts",
			"filter[age]=10,20",
			match.Record{"age": 20},
			true,
		},
		{
			"set membership rejects",
			"filter[age]=10,20",
			match.Record{"age": 30},
			false,
		},
		{
			"set exclusion",
			"filter[age][not-in-set]=10,20",
			match.Record{"age": 30},
			true,
		},
		{
			"null check accepts a nil value",
			"filter[name]=null",
			match.Record{"name": nil},
			true,
		},
		{
			"null check accepts a missing field",
			"filter[name]=null",
			match.Record{},
			true,
		},
		{
			"null check rejects a present value",
			"filter[name]=null",
			match.Record{"name": "bob"},
			false,
		},
		{
			"negated null check",
			"filter[name][not-equals]=null",
			match.Record{"name": "bob"},
			true,
		},
		{
			"missing field fails comparisons",
			"filter[age][greater-than]=10",
			match.Record{},
			false,
		},
		{
			"conjunction requires both sides",
			"filter[age][greater-than]=10&filter[name]=bob",
			match.Record{"age": 11, "name": "not bob"},
			true,
		},
		{
			"conjunction rejects on either side",
			"filter[age][greater-than]=10&filter[name]=bob",
			match.Record{"age": 9, "name": "bob"},
			false,
		},
	}
	for _, c := range cases {
		t.Run(c.assertion, func(t *testing.T) {
			ok, err := compile(t, c.query)(c.record)
			require.NoError(t, err)
			require.Equal(t, c.output, ok)
		})
	}
}

func TestCompileNilTree(t *testing.T) {
	fn, err := match.Compile(nil)
	require.NoError(t, err)
	ok, err := fn(match.Record{"anything": 1})
	require.NoError(t, err)
	require.True(t, ok)
}

func TestTypeMismatch(t *testing.T) {
	fn := compile(t, "filter[age][greater-than]=10")
	_, err := fn(match.Record{"age": "eleven"})
	require.ErrorContains(t, err, "incompatible value")
}
