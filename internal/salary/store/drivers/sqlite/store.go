package sqlite

import (
	"context"
	"database/sql"

	"github.com/aussiebroadwan/salary/internal/salary/domain"
	"github.com/aussiebroadwan/salary/internal/salary/store"
	_ "modernc.org/sqlite"
)

// Store keeps token state in a SQLite tokens table. It honours the same
// contract as the CSV token file: Save replaces every row, Load merges.
type Store struct {
	db  *sql.DB
	dsn string
}

var _ store.TokenStore = (*Store)(nil)

func NewStore(dsn string) (*Store, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}

	// One connection: writes are serialized anyway and ":memory:" databases
	// are per connection.
	db.SetMaxOpenConns(1)

	if err := db.PingContext(context.Background()); err != nil {
		_ = db.Close()
		return nil, err
	}

	return &Store{db: db, dsn: dsn}, nil
}

func (s *Store) Close() error { return s.db.Close() }

// Ping verifies the database connection is still alive.
func (s *Store) Ping(ctx context.Context) error {
	return domain.NewStorageError("ping", s.dsn, s.db.PingContext(ctx))
}

func (s *Store) Load(ctx context.Context, t domain.Table) error {
	return domain.NewStorageError("load", s.dsn, s.load(ctx, t))
}

func (s *Store) load(ctx context.Context, t domain.Table) error {
	rows, err := s.db.QueryContext(ctx, `SELECT login, token, token_date FROM tokens ORDER BY login`)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var login, token, tokenDate string
		if err := rows.Scan(&login, &token, &tokenDate); err != nil {
			return err
		}
		store.MergeTokenRow(t, map[string]string{
			domain.FieldLogin:     login,
			domain.FieldToken:     token,
			domain.FieldTokenDate: tokenDate,
		})
	}
	return rows.Err()
}

func (s *Store) Save(ctx context.Context, t domain.Table) error {
	return domain.NewStorageError("save", s.dsn, s.WithTx(ctx, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, `DELETE FROM tokens`); err != nil {
			return err
		}

		stmt, err := tx.PrepareContext(ctx, `INSERT INTO tokens (login, token, token_date) VALUES (?, ?, ?)`)
		if err != nil {
			return err
		}
		defer stmt.Close()

		for _, rec := range t {
			row := store.TokenRow(rec)
			if _, err := stmt.ExecContext(ctx, row[0], row[1], row[2]); err != nil {
				return err
			}
		}
		return nil
	}))
}

// WithTx executes fn within a transaction, automatically handling commit/rollback.
func (s *Store) WithTx(ctx context.Context, fn func(tx *sql.Tx) error) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}

	defer func() {
		_ = tx.Rollback() // safe to call even after commit
	}()

	if err := fn(tx); err != nil {
		return err
	}

	return tx.Commit()
}
