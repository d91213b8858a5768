package store

import (
	"context"

	"github.com/aussiebroadwan/salary/internal/salary/domain"
)

// Placeholder is written for token columns a record does not have and is
// read back as an absent column.
const Placeholder = "Unknown"

// UserSource loads the immutable user table (credentials and salary).
// It is read once at startup.
type UserSource interface {
	// Load merges every row of the source into t.
	Load(ctx context.Context, t domain.Table) error
}

// TokenStore persists the mutable token columns of every user. Concrete
// drivers (csvfile, sqlite) implement this.
type TokenStore interface {
	// Load merges the login, token and token_date of every stored row into t.
	// Rows missing either token column merge only the login. A store that
	// has never been written yields no rows.
	Load(ctx context.Context, t domain.Table) error

	// Save replaces the stored rows with one row per record in t, holding
	// exactly login, token and token_date.
	Save(ctx context.Context, t domain.Table) error

	// Ping reports whether the store is reachable.
	Ping(ctx context.Context) error

	// Close releases any underlying resources.
	Close() error
}

// TokenRow returns the fixed token columns of a record, substituting
// Placeholder for absent values.
func TokenRow(u *domain.UserRecord) []string {
	row := make([]string, len(domain.TokenFields))
	for i, field := range domain.TokenFields {
		v, ok := u.Get(field)
		if !ok {
			v = Placeholder
		}
		row[i] = v
	}
	return row
}

// MergeTokenRow merges one stored token row into t. Placeholder and empty
// values are treated as absent so they never overwrite in-memory state. A
// row carrying only one of token and token_date merges neither.
func MergeTokenRow(t domain.Table, row map[string]string) {
	clean := make(map[string]string, len(row))
	for k, v := range row {
		if k != domain.FieldLogin && (v == Placeholder || v == "") {
			continue
		}
		clean[k] = v
	}

	_, hasToken := clean[domain.FieldToken]
	_, hasDate := clean[domain.FieldTokenDate]
	if hasToken != hasDate {
		delete(clean, domain.FieldToken)
		delete(clean, domain.FieldTokenDate)
	}

	t.Upsert(clean)
}
