package service

import (
	"testing"
	"time"

	"github.com/aussiebroadwan/salary/internal/salary/domain"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2023, 6, 5, 12, 0, 0, 0, time.UTC)

func stamp(t time.Time) string { return t.Format(TimestampLayout) }

func TestDerive(t *testing.T) {
	t.Parallel()

	engine := NewTokenEngine(DefaultTokenSecret, DefaultTokenTTL)
	john := &domain.UserRecord{Login: "john", Password: "pass"}

	require.Equal(t, "passjohn111", engine.Derive(john))
	require.Equal(t, engine.Derive(john), engine.Derive(john))

	// Only login and password feed the token.
	other := &domain.UserRecord{Login: "john", Password: "pass", Salary: "999", Token: "x"}
	require.Equal(t, engine.Derive(john), engine.Derive(other))
}

func TestIsFresh(t *testing.T) {
	t.Parallel()

	engine := NewTokenEngine(DefaultTokenSecret, DefaultTokenTTL)

	tests := []struct {
		name      string
		token     string
		tokenDate string
		want      bool
	}{
		{"no token date", "passjohn111", "", false},
		{"issued five minutes ago", "passjohn111", stamp(testNow.Add(-5 * time.Minute)), true},
		{"issued 25 hours ago", "passjohn111", stamp(testNow.Add(-25 * time.Hour)), false},
		{"issued 47 hours ago", "passjohn111", stamp(testNow.Add(-47 * time.Hour)), false},
		{"just inside one day", "passjohn111", stamp(testNow.Add(-24*time.Hour + time.Second)), true},
		{"exactly one day", "passjohn111", stamp(testNow.Add(-24 * time.Hour)), true},
		{"just past one day", "passjohn111", stamp(testNow.Add(-24*time.Hour - time.Second)), false},
		{"issued in the future", "passjohn111", stamp(testNow.Add(time.Hour)), true},
		{"token does not match credentials", "oldpassjohn111", stamp(testNow.Add(-time.Minute)), false},
		{"unparseable date", "passjohn111", "Unknown", false},
		{"date without fractional seconds", "passjohn111", "2023-06-05 11:00:00", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := &domain.UserRecord{Login: "john", Password: "pass", Token: tt.token, TokenDate: tt.tokenDate}
			require.Equal(t, tt.want, engine.IsFresh(rec, testNow))
		})
	}
}

func TestIsFreshCustomTTL(t *testing.T) {
	t.Parallel()

	engine := NewTokenEngine(DefaultTokenSecret, time.Hour)
	rec := &domain.UserRecord{Login: "john", Password: "pass", Token: "passjohn111", TokenDate: stamp(testNow.Add(-2 * time.Hour))}
	require.False(t, engine.IsFresh(rec, testNow))

	require.Equal(t, DefaultTokenTTL, NewTokenEngine(DefaultTokenSecret, 0).TTL)
}

func TestRefreshIfStale(t *testing.T) {
	t.Parallel()

	engine := NewTokenEngine(DefaultTokenSecret, DefaultTokenTTL)

	t.Run("stale token is regenerated and stamped", func(t *testing.T) {
		rec := &domain.UserRecord{Login: "john", Password: "pass"}
		require.True(t, engine.RefreshIfStale(rec, testNow))
		require.Equal(t, "passjohn111", rec.Token)
		require.Equal(t, "2023-06-05 12:00:00.000000", rec.TokenDate)
	})

	t.Run("second call is a no-op", func(t *testing.T) {
		rec := &domain.UserRecord{Login: "john", Password: "pass"}
		require.True(t, engine.RefreshIfStale(rec, testNow))
		before := *rec

		require.False(t, engine.RefreshIfStale(rec, testNow))
		require.Equal(t, before, *rec)
	})

	t.Run("fresh token keeps its original date", func(t *testing.T) {
		issued := stamp(testNow.Add(-time.Hour))
		rec := &domain.UserRecord{Login: "john", Password: "pass", Token: "passjohn111", TokenDate: issued}
		require.False(t, engine.RefreshIfStale(rec, testNow))
		require.Equal(t, issued, rec.TokenDate)
	})

	t.Run("sub-second precision is kept", func(t *testing.T) {
		rec := &domain.UserRecord{Login: "john", Password: "pass"}
		engine.RefreshIfStale(rec, testNow.Add(218894*time.Microsecond))
		require.Equal(t, "2023-06-05 12:00:00.218894", rec.TokenDate)
	})
}
