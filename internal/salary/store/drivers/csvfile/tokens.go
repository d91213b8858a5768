package csvfile

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	"github.com/aussiebroadwan/salary/internal/salary/domain"
	"github.com/aussiebroadwan/salary/internal/salary/store"
)

// TokenStore keeps token state in tokens.csv with the columns
// login,token,token_date.
type TokenStore struct {
	path string
}

var _ store.TokenStore = (*TokenStore)(nil)

func NewTokenStore(path string) *TokenStore {
	return &TokenStore{path: path}
}

// Path returns the backing file.
func (s *TokenStore) Path() string { return s.path }

// Load merges the token columns of every row into t. A file that does not
// exist yet holds no rows.
func (s *TokenStore) Load(_ context.Context, t domain.Table) error {
	err := readRows(s.path, domain.TokenFields, func(row map[string]string) {
		store.MergeTokenRow(t, row)
	})
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return domain.NewStorageError("load", s.path, err)
}

// Save rewrites the whole file, one row per record ordered by login.
func (s *TokenStore) Save(_ context.Context, t domain.Table) error {
	logins := make([]string, 0, len(t))
	for login := range t {
		logins = append(logins, login)
	}
	sort.Strings(logins)

	rows := make([][]string, 0, len(logins))
	for _, login := range logins {
		rows = append(rows, store.TokenRow(t[login]))
	}

	err := writeRows(s.path, domain.TokenFields, rows)
	return domain.NewStorageError("save", s.path, err)
}

// Ping checks that the directory holding the file is usable.
func (s *TokenStore) Ping(_ context.Context) error {
	info, err := os.Stat(filepath.Dir(s.path))
	if err != nil {
		return domain.NewStorageError("ping", s.path, err)
	}
	if !info.IsDir() {
		return domain.NewStorageError("ping", s.path, errors.New("parent is not a directory"))
	}
	return nil
}

func (s *TokenStore) Close() error { return nil }
