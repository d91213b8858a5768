package salarysdk_test

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	httpapi "github.com/aussiebroadwan/salary/internal/salary/http"
	"github.com/aussiebroadwan/salary/internal/salary/service"
	"github.com/aussiebroadwan/salary/internal/salary/store/drivers/csvfile"
	"github.com/aussiebroadwan/salary/pkg/salarysdk"
	"github.com/stretchr/testify/require"
)

func newServer(t *testing.T) *httptest.Server {
	t.Helper()

	dir := t.TempDir()
	users := filepath.Join(dir, "users.csv")
	require.NoError(t, os.WriteFile(users, []byte("login,password,salary,salary_date\njohn,pass,100,2023-06-04\n"), 0o644))

	c, err := service.NewSessionCoordinator(
		context.Background(),
		csvfile.NewUserSource(users),
		csvfile.NewTokenStore(filepath.Join(dir, "tokens.csv")),
		service.NewTokenEngine(service.DefaultTokenSecret, service.DefaultTokenTTL),
	)
	require.NoError(t, err)

	r := httpapi.NewRouter(c, nil, nil, "test", slog.New(slog.NewTextHandler(io.Discard, nil)))
	r.ApplyRoutes()

	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return srv
}

func TestClientLoginAndSalary(t *testing.T) {
	ctx := context.Background()
	client := salarysdk.NewClient(newServer(t).URL + "/")

	token, err := client.Login(ctx, "john", "pass")
	require.NoError(t, err)
	require.Equal(t, "passjohn111", token)

	info, err := client.Salary(ctx, "john", token)
	require.NoError(t, err)
	require.Equal(t, &salarysdk.SalaryResponse{Login: "john", Salary: "100", SalaryDate: "2023-06-04"}, info)

	_, err = client.Salary(ctx, "john", "wrongtoken")
	require.ErrorIs(t, err, salarysdk.ErrNoResult)

	_, err = client.Login(ctx, "john", "wrong")
	require.ErrorIs(t, err, salarysdk.ErrNoResult)

	_, err = client.Login(ctx, "mary", "pass")
	require.ErrorIs(t, err, salarysdk.ErrNoResult)
}

func TestClientHealth(t *testing.T) {
	ctx := context.Background()
	client := salarysdk.NewClient(newServer(t).URL)

	live, err := client.GetLiveness(ctx)
	require.NoError(t, err)
	require.Equal(t, "ok", live.Status)
	require.Nil(t, live.Checks)

	ready, err := client.GetReadiness(ctx)
	require.NoError(t, err)
	require.Equal(t, "ok", ready.Checks.Store)
}

func TestClientStatusError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		_, _ = w.Write([]byte("null\n"))
	}))
	t.Cleanup(srv.Close)

	_, err := salarysdk.NewClient(srv.URL).Login(context.Background(), "john", "pass")

	var se *salarysdk.StatusError
	require.ErrorAs(t, err, &se)
	require.Equal(t, http.StatusTooManyRequests, se.StatusCode)
	require.True(t, salarysdk.IsRateLimited(err))
	require.NotErrorIs(t, err, salarysdk.ErrNoResult)
}
