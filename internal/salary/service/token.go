package service

import (
	"time"

	"github.com/aussiebroadwan/salary/internal/salary/domain"
)

const (
	// TimestampLayout is how token_date is written (microsecond precision).
	TimestampLayout = "2006-01-02 15:04:05.000000"

	// Fractional seconds are optional when parsing.
	timestampParseLayout = "2006-01-02 15:04:05"

	DefaultTokenSecret = "111"
	DefaultTokenTTL    = 24 * time.Hour
)

// TokenEngine derives tokens from credentials and judges their freshness.
//
// Derivation is deterministic and unsalted: the token is password + login +
// Secret. Freshness is checked by re-deriving and comparing, so no validity
// flag is stored.
type TokenEngine struct {
	Secret string
	TTL    time.Duration
}

func NewTokenEngine(secret string, ttl time.Duration) *TokenEngine {
	if ttl <= 0 {
		ttl = DefaultTokenTTL
	}
	return &TokenEngine{Secret: secret, TTL: ttl}
}

// Derive returns the token for the record's current credentials.
func (e *TokenEngine) Derive(u *domain.UserRecord) string {
	return u.Password + u.Login + e.Secret
}

// IsFresh reports whether u holds a token issued no more than TTL before now
// that still matches its credentials. A missing or unparseable token_date is
// stale.
func (e *TokenEngine) IsFresh(u *domain.UserRecord, now time.Time) bool {
	if u.TokenDate == "" {
		return false
	}
	issued, err := time.ParseInLocation(timestampParseLayout, u.TokenDate, now.Location())
	if err != nil {
		return false
	}
	// Rolling window on elapsed time, not a whole-day count. A day count
	// would keep a token fresh for up to 47h59m.
	if now.Sub(issued) > e.TTL {
		return false
	}
	return u.Token == e.Derive(u)
}

// RefreshIfStale regenerates the token and stamps it with now when u is not
// fresh. It reports whether the record changed.
func (e *TokenEngine) RefreshIfStale(u *domain.UserRecord, now time.Time) bool {
	if e.IsFresh(u, now) {
		return false
	}
	u.Token = e.Derive(u)
	u.TokenDate = now.Format(TimestampLayout)
	return true
}
