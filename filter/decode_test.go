package filter_test

import (
	"testing"

	json "github.com/goccy/go-json"
	"github.com/qsift/qsift/filter"
	"github.com/qsift/qsift/qs"
	"github.com/stretchr/testify/require"
)

func TestDecodeNode(t *testing.T) {
	cases := []struct {
		assertion string
		query     string
	}{
		{"comparison", "filter[age][greater-than]=10"},
		{"substring match", "filter[name]=bob"},
		{"set membership", "filter[age]=10,20"},
		{"null check", "filter[name]=null"},
		{"conjunction", "filter[age][greater-than]=10&filter[name]=bob&filter[city]=null"},
	}
	for _, c := range cases {
		t.Run(c.assertion, func(t *testing.T) {
			params, err := qs.Parse(c.query)
			require.NoError(t, err)
			result := filter.Parse(c.query, params, nil)
			require.Empty(t, result.Errors)

			data, err := json.Marshal(result.Results)
			require.NoError(t, err)
			decoded, err := filter.DecodeNode(data)
			require.NoError(t, err)
			require.Equal(t, result.Results.String(), decoded.String())
		})
	}
}

func TestDecodeNodeErrors(t *testing.T) {
	cases := []struct {
		assertion string
		input     string
	}{
		{"unknown operator", `{"almost-equals": ["#age", 10]}`},
		{"multiple operator keys", `{"equals": ["#age", 10], "is-null": "#name"}`},
		{"missing field reference", `{"equals": ["age", 10]}`},
		{"wrong operand count", `{"equals": ["#age"]}`},
		{"malformed conjunction", `{"AND": [{"equals": ["#age", 10]}]}`},
	}
	for _, c := range cases {
		t.Run(c.assertion, func(t *testing.T) {
			_, err := filter.DecodeNode([]byte(c.input))
			require.Error(t, err)
		})
	}
}

func TestResultRoundTrip(t *testing.T) {
	query := "filter[age][greater-than]=10&filter[name]=bob"
	params, err := qs.Parse(query)
	require.NoError(t, err)
	result := filter.Parse(query, params, nil)

	data, err := json.Marshal(result)
	require.NoError(t, err)
	var decoded filter.Result
	require.NoError(t, json.Unmarshal(data, &decoded))
	require.Equal(t, result.Results.String(), decoded.Results.String())
	require.Empty(t, decoded.Errors)
}
