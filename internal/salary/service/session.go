package service

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/aussiebroadwan/salary/internal/salary/domain"
	"github.com/aussiebroadwan/salary/internal/salary/metrics"
	"github.com/aussiebroadwan/salary/internal/salary/store"
	"github.com/aussiebroadwan/salary/pkg/slogx"
)

// SessionCoordinator owns the in-memory user table for the process lifetime.
// Every request reloads token state from the token store first; logins then
// refresh the caller's token and rewrite the whole store.
//
// One mutex serializes the reload, check and persist sequence of both flows.
// It does not coordinate separate processes that share a token store.
type SessionCoordinator struct {
	Metrics *metrics.Metrics
	Now     func() time.Time

	mu     sync.Mutex
	table  domain.Table
	tokens store.TokenStore
	engine *TokenEngine
}

// NewSessionCoordinator loads the user table from users. A failure here is
// meant to abort startup.
func NewSessionCoordinator(
	ctx context.Context,
	users store.UserSource,
	tokens store.TokenStore,
	engine *TokenEngine,
) (*SessionCoordinator, error) {
	table := domain.Table{}
	if err := users.Load(ctx, table); err != nil {
		return nil, fmt.Errorf("load users: %w", err)
	}

	return &SessionCoordinator{
		Now:    time.Now,
		table:  table,
		tokens: tokens,
		engine: engine,
	}, nil
}

// Users returns the number of records in the table.
func (s *SessionCoordinator) Users() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.table)
}

// Login checks the credentials and returns a fresh token, regenerating it
// when stale. The token store is rewritten on every successful login.
func (s *SessionCoordinator) Login(ctx context.Context, login, password string) (string, error) {
	l := slogx.FromContext(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()

	if !VerifyCredentials(s.table, login, password) {
		l.Info("login rejected", slog.String("login", login))
		s.Metrics.ObserveLogin(metrics.ResultRejected)
		return "", domain.ErrAuthentication
	}

	if err := s.tokens.Load(ctx, s.table); err != nil {
		l.Error("token reload failed", "err", err)
		s.Metrics.ObserveLogin(metrics.ResultError)
		return "", err
	}

	rec := s.table[login]
	if s.engine.RefreshIfStale(rec, s.Now()) {
		l.Debug("token refreshed", slog.String("login", login), slog.String("token_date", rec.TokenDate))
		s.Metrics.ObserveTokenRefresh()
	}

	if err := s.tokens.Save(ctx, s.table); err != nil {
		l.Error("token persist failed", "err", err)
		s.Metrics.ObserveLogin(metrics.ResultError)
		return "", err
	}

	s.Metrics.ObserveLogin(metrics.ResultOK)
	return rec.Token, nil
}

// Salary returns the salary of login when token matches its stored token.
// It never writes to the token store.
func (s *SessionCoordinator) Salary(ctx context.Context, login, token string) (domain.SalaryInfo, error) {
	l := slogx.FromContext(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.tokens.Load(ctx, s.table); err != nil {
		l.Error("token reload failed", "err", err)
		s.Metrics.ObserveSalaryLookup(metrics.ResultError)
		return domain.SalaryInfo{}, err
	}

	rec, ok := s.table[login]
	if !ok || !rec.FromUserSource() || rec.Token == "" || rec.Token != token {
		l.Info("salary lookup rejected", slog.String("login", login))
		s.Metrics.ObserveSalaryLookup(metrics.ResultRejected)
		return domain.SalaryInfo{}, domain.ErrLookup
	}

	s.Metrics.ObserveSalaryLookup(metrics.ResultOK)
	return domain.SalaryOf(rec), nil
}

// Ping reports whether the token store is reachable.
func (s *SessionCoordinator) Ping(ctx context.Context) error {
	return s.tokens.Ping(ctx)
}
