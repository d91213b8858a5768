package csvfile

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/aussiebroadwan/salary/internal/salary/domain"
	"github.com/stretchr/testify/require"
)

const usersCSV = `login,password,salary,salary_date
john,pass,100,2023-06-04
mary,secret,250,2023-07-01
`

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestUserSourceLoad(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("loads every row", func(t *testing.T) {
		src := NewUserSource(writeFile(t, "users.csv", usersCSV))
		table := domain.Table{}
		require.NoError(t, src.Load(ctx, table))

		require.Len(t, table, 2)
		require.Equal(t, "pass", table["john"].Password)
		require.Equal(t, "100", table["john"].Salary)
		require.Equal(t, "2023-06-04", table["john"].SalaryDate)
		require.Equal(t, "secret", table["mary"].Password)
	})

	t.Run("keeps extra columns", func(t *testing.T) {
		src := NewUserSource(writeFile(t, "users.csv", "login,password,team\njohn,pass,ops\n"))
		table := domain.Table{}
		require.NoError(t, src.Load(ctx, table))

		v, ok := table["john"].Get("team")
		require.True(t, ok)
		require.Equal(t, "ops", v)
	})

	t.Run("missing file is a storage error", func(t *testing.T) {
		src := NewUserSource(filepath.Join(t.TempDir(), "absent.csv"))
		err := src.Load(ctx, domain.Table{})
		require.ErrorIs(t, err, domain.ErrStorage)
		require.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("header without login column is rejected", func(t *testing.T) {
		src := NewUserSource(writeFile(t, "users.csv", "name,password\njohn,pass\n"))
		err := src.Load(ctx, domain.Table{})
		require.ErrorIs(t, err, domain.ErrStorage)
		require.ErrorIs(t, err, ErrNoLoginColumn)
	})

	t.Run("broken quoting is rejected", func(t *testing.T) {
		src := NewUserSource(writeFile(t, "users.csv", "login,password\n\"john,pass\n"))
		require.ErrorIs(t, src.Load(ctx, domain.Table{}), domain.ErrStorage)
	})

	t.Run("short rows yield only present columns", func(t *testing.T) {
		src := NewUserSource(writeFile(t, "users.csv", "login,password,salary\njohn,pass\n"))
		table := domain.Table{}
		require.NoError(t, src.Load(ctx, table))
		require.Equal(t, "pass", table["john"].Password)
		require.Empty(t, table["john"].Salary)
	})
}

func TestTokenStoreLoad(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("missing file yields no rows", func(t *testing.T) {
		ts := NewTokenStore(filepath.Join(t.TempDir(), "tokens.csv"))
		table := domain.Table{}
		require.NoError(t, ts.Load(ctx, table))
		require.Empty(t, table)
	})

	t.Run("merges without clobbering user fields", func(t *testing.T) {
		table := domain.Table{}
		require.NoError(t, NewUserSource(writeFile(t, "users.csv", usersCSV)).Load(ctx, table))

		ts := NewTokenStore(writeFile(t, "tokens.csv",
			"login,token,token_date\njohn,passjohn111,2023-06-05 02:05:33.218894\n"))
		require.NoError(t, ts.Load(ctx, table))

		john := table["john"]
		require.Equal(t, "pass", john.Password)
		require.Equal(t, "100", john.Salary)
		require.Equal(t, "passjohn111", john.Token)
		require.Equal(t, "2023-06-05 02:05:33.218894", john.TokenDate)
		require.Empty(t, table["mary"].Token)
	})

	t.Run("only token columns are read", func(t *testing.T) {
		table := domain.Table{"john": {Login: "john", Password: "pass"}}
		ts := NewTokenStore(writeFile(t, "tokens.csv",
			"login,token,token_date,password\njohn,tok,2023-06-05 02:05:33.218894,hijack\n"))
		require.NoError(t, ts.Load(ctx, table))
		require.Equal(t, "pass", table["john"].Password)
		require.Equal(t, "tok", table["john"].Token)
	})

	t.Run("placeholder values are absent", func(t *testing.T) {
		table := domain.Table{"mary": {Login: "mary", Password: "secret"}}
		ts := NewTokenStore(writeFile(t, "tokens.csv", "login,token,token_date\nmary,Unknown,Unknown\n"))
		require.NoError(t, ts.Load(ctx, table))
		require.Empty(t, table["mary"].Token)
		require.Empty(t, table["mary"].TokenDate)
	})

	t.Run("token without date column is dropped", func(t *testing.T) {
		table := domain.Table{"john": {Login: "john", Password: "pass"}}
		ts := NewTokenStore(writeFile(t, "tokens.csv", "login,token\njohn,passjohn111\n"))
		require.NoError(t, ts.Load(ctx, table))
		require.Empty(t, table["john"].Token)
		require.Empty(t, table["john"].TokenDate)
		require.Equal(t, "pass", table["john"].Password)
	})
}

func TestTokenStoreSave(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("writes fixed columns with placeholder fill", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "tokens.csv")
		table := domain.Table{
			"john": {
				Login: "john", Password: "pass", Salary: "100", SalaryDate: "2023-06-04",
				Token: "passjohn111", TokenDate: "2023-06-05 02:05:33.218894",
				Extra: map[string]string{"team": "ops"},
			},
			"mary": {Login: "mary", Password: "secret"},
		}
		require.NoError(t, NewTokenStore(path).Save(ctx, table))

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		require.Equal(t,
			"login,token,token_date\n"+
				"john,passjohn111,2023-06-05 02:05:33.218894\n"+
				"mary,Unknown,Unknown\n",
			string(data))
	})

	t.Run("rewrites rather than appends", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "tokens.csv")
		ts := NewTokenStore(path)
		table := domain.Table{"john": {Login: "john", Token: "a", TokenDate: "2023-06-05 02:05:33.218894"}}
		require.NoError(t, ts.Save(ctx, table))
		table["john"].Token = "b"
		require.NoError(t, ts.Save(ctx, table))

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		require.Equal(t, "login,token,token_date\njohn,b,2023-06-05 02:05:33.218894\n", string(data))
	})

	t.Run("unwritable destination is a storage error", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "missing-dir", "tokens.csv")
		err := NewTokenStore(path).Save(ctx, domain.Table{"john": {Login: "john"}})
		require.ErrorIs(t, err, domain.ErrStorage)
	})

	t.Run("round trip keeps token triples and drops the rest", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "tokens.csv")
		ts := NewTokenStore(path)
		original := domain.Table{
			"john": {Login: "john", Password: "pass", Salary: "100", Token: "passjohn111", TokenDate: "2023-06-05 02:05:33.218894"},
			"mary": {Login: "mary", Password: "secret", Salary: "250"},
		}
		require.NoError(t, ts.Save(ctx, original))

		reloaded := domain.Table{}
		require.NoError(t, ts.Load(ctx, reloaded))
		require.Len(t, reloaded, len(original))

		for login, want := range original {
			got := reloaded[login]
			require.NotNil(t, got, login)
			require.Equal(t, want.Login, got.Login)
			require.Equal(t, want.Token, got.Token)
			require.Equal(t, want.TokenDate, got.TokenDate)

			// Credentials and salary are not part of the token source.
			require.Empty(t, got.Password)
			require.Empty(t, got.Salary)
		}
	})
}

func TestTokenStorePing(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	require.NoError(t, NewTokenStore(filepath.Join(t.TempDir(), "tokens.csv")).Ping(ctx))

	missing := NewTokenStore(filepath.Join(t.TempDir(), "nope", "tokens.csv"))
	require.ErrorIs(t, missing.Ping(ctx), domain.ErrStorage)
}
