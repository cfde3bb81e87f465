package render_test

import (
	"database/sql"
	"testing"

	_ "github.com/mattn/go-sqlite3"
	"github.com/qsift/qsift/filter"
	"github.com/qsift/qsift/qs"
	"github.com/qsift/qsift/render"
	"github.com/stretchr/testify/require"
)

func TestSQL(t *testing.T) {
	cases := []struct {
		assertion string
		query     string
		clause    string
		args      []any
	}{
		{
			"comparison",
			"filter[age][greater-than]=10",
			`"age" > ?`,
			[]any{float64(10)},
		},
		{
			"equality",
			"filter[age]=10",
			`"age" = ?`,
			[]any{float64(10)},
		},
		{
			"substring match",
			"filter[name]=bob",
			`"name" LIKE ?`,
			[]any{"%bob%"},
		},
		{
			"null check",
			"filter[name]=null",
			`"name" IS NULL`,
			[]any{},
		},
		{
			"negated null check",
			"filter[name][not-equals]=null",
			`"name" IS NOT NULL`,
			[]any{},
		},
		{
			"set membership",
			"filter[age]=10,20",
			`"age" IN (?, ?)`,
			[]any{float64(10), float64(20)},
		},
		{
			"set exclusion",
			"filter[name][not-in-set]=bob,alice",
			`"name" NOT IN (?, ?)`,
			[]any{"bob", "alice"},
		},
		{
			"conjunction",
			"filter[age][greater-than]=10&filter[name]=bob",
			`("age" > ? AND "name" LIKE ?)`,
			[]any{float64(10), "%bob%"},
		},
		{
			"conjunctions lean left",
			"filter[age][greater-than]=10&filter[name]=bob&filter[city]=null",
			`(("age" > ? AND "name" LIKE ?) AND "city" IS NULL)`,
			[]any{float64(10), "%bob%"},
		},
	}

	db, err := sql.Open("sqlite3", ":memory:")
	require.NoError(t, err)
	defer db.Close()
	_, err = db.Exec(`create table users (age integer, name text, city text)`)
	require.NoError(t, err)

	for _, c := range cases {
		t.Run(c.assertion, func(t *testing.T) {
			params, err := qs.Parse(c.query)
			require.NoError(t, err)
			result := filter.Parse(c.query, params, nil)
			require.Empty(t, result.Errors)

			clause, args, err := render.SQL(result.Results)
			require.NoError(t, err)
			require.Equal(t, c.clause, clause)
			require.Equal(t, c.args, args)

			stmt, err := db.Prepare("select * from users where " + clause)
			require.NoError(t, err)
			require.NoError(t, stmt.Close())
		})
	}
}

func TestSQLNilTree(t *testing.T) {
	clause, args, err := render.SQL(nil)
	require.NoError(t, err)
	require.Equal(t, "1 = 1", clause)
	require.Empty(t, args)
}

func TestSQLQuotesIdentifiers(t *testing.T) {
	node := filter.NewCondition(filter.TargetEquals, `weird"name`, []any{float64(1)})
	clause, _, err := render.SQL(node)
	require.NoError(t, err)
	require.Equal(t, `"weird""name" = ?`, clause)
}
