package domain

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTableUpsert(t *testing.T) {
	t.Parallel()

	t.Run("inserts new records with only the given columns", func(t *testing.T) {
		table := Table{}
		table.Upsert(map[string]string{"login": "john", "token": "passjohn111"})

		rec := table["john"]
		require.NotNil(t, rec)
		require.Equal(t, "john", rec.Login)
		require.Equal(t, "passjohn111", rec.Token)
		require.Empty(t, rec.Password)
	})

	t.Run("token-only rows keep credentials and salary", func(t *testing.T) {
		table := Table{}
		table.Upsert(map[string]string{
			"login":       "john",
			"password":    "pass",
			"salary":      "100",
			"salary_date": "2023-06-04",
		})
		table.Upsert(map[string]string{
			"login":      "john",
			"token":      "passjohn111",
			"token_date": "2023-06-05 02:05:33.218894",
		})

		rec := table["john"]
		require.Equal(t, "pass", rec.Password)
		require.Equal(t, "100", rec.Salary)
		require.Equal(t, "2023-06-04", rec.SalaryDate)
		require.Equal(t, "passjohn111", rec.Token)
		require.Equal(t, "2023-06-05 02:05:33.218894", rec.TokenDate)
	})

	t.Run("unknown columns land in Extra", func(t *testing.T) {
		table := Table{}
		table.Upsert(map[string]string{"login": "john", "department": "ops"})

		v, ok := table["john"].Get("department")
		require.True(t, ok)
		require.Equal(t, "ops", v)
	})
}

func TestTableUpsertUser(t *testing.T) {
	t.Parallel()

	table := Table{}
	table.UpsertUser(map[string]string{"login": "guest", "password": "", "salary": "50"})
	table.Upsert(map[string]string{"login": "orphan", "token": "tok"})

	require.True(t, table["guest"].FromUserSource(), "empty password still comes from the user source")
	require.False(t, table["orphan"].FromUserSource())

	table.Upsert(map[string]string{"login": "guest", "token": "guest111"})
	require.True(t, table["guest"].FromUserSource(), "token merges keep the origin")
	require.Equal(t, "50", table["guest"].Salary)
}

func TestUserRecordGet(t *testing.T) {
	t.Parallel()

	rec := &UserRecord{Login: "john"}

	v, ok := rec.Get(FieldLogin)
	require.True(t, ok)
	require.Equal(t, "john", v)

	_, ok = rec.Get(FieldToken)
	require.False(t, ok)

	_, ok = rec.Get("nope")
	require.False(t, ok)
}
