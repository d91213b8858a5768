package csvfile

import (
	"context"

	"github.com/aussiebroadwan/salary/internal/salary/domain"
	"github.com/aussiebroadwan/salary/internal/salary/store"
)

// UserSource reads users.csv (login,password,salary,salary_date plus any
// extra columns).
type UserSource struct {
	path string
}

var _ store.UserSource = (*UserSource)(nil)

func NewUserSource(path string) *UserSource {
	return &UserSource{path: path}
}

// Load merges every row into t. A missing or malformed file is an error.
func (s *UserSource) Load(_ context.Context, t domain.Table) error {
	err := readRows(s.path, nil, t.UpsertUser)
	return domain.NewStorageError("load", s.path, err)
}
