package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/insurehub/insurance-be/internal/storage"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Ensure Store satisfies the storage.Store interface at compile time.
var _ storage.Store = (*Store)(nil)

// Store provides Postgres-backed persistence for the whole application.
type Store struct {
	pool *pgxpool.Pool
}

// NewStore creates a new Store and runs migrations.
func NewStore(ctx context.Context, databaseURL string) (*Store, error) {
	cfg, err := pgxpool.ParseConfig(databaseURL)
	if err != nil {
		return nil, fmt.Errorf("parse database url: %w", err)
	}

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}

	s := &Store{pool: pool}
	if err := s.migrate(ctx); err != nil {
		pool.Close()
		return nil, err
	}

	return s, nil
}

// Close releases database resources.
func (s *Store) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

// Ping verifies database connectivity.
func (s *Store) Ping(ctx context.Context) error {
	return s.pool.Ping(ctx)
}

func (s *Store) migrate(ctx context.Context) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS users (
			user_id BIGSERIAL PRIMARY KEY,
			username TEXT UNIQUE NOT NULL,
			password_hash TEXT NOT NULL,
			role TEXT NOT NULL DEFAULT 'policy_holder',
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		);`,
		`CREATE TABLE IF NOT EXISTS policies (
			policy_id BIGSERIAL PRIMARY KEY,
			policy_name TEXT NOT NULL,
			policy_details TEXT NOT NULL DEFAULT '',
			premium NUMERIC(12,2) NOT NULL,
			coverage_amount NUMERIC(14,2) NOT NULL DEFAULT 0
		);`,
		`CREATE TABLE IF NOT EXISTS policy_holders (
			id BIGSERIAL PRIMARY KEY,
			user_id BIGINT REFERENCES users(user_id),
			name TEXT NOT NULL,
			age INT NOT NULL,
			contact TEXT NOT NULL DEFAULT '',
			address TEXT NOT NULL DEFAULT ''
		);`,
		`CREATE TABLE IF NOT EXISTS policy_purchases (
			id BIGSERIAL PRIMARY KEY,
			user_id BIGINT NOT NULL REFERENCES users(user_id),
			policy_id BIGINT NOT NULL REFERENCES policies(policy_id),
			reference TEXT UNIQUE NOT NULL,
			purchase_date TIMESTAMPTZ NOT NULL DEFAULT NOW()
		);`,
		`CREATE TABLE IF NOT EXISTS claims (
			claim_id BIGSERIAL PRIMARY KEY,
			policy_holder_id BIGINT NOT NULL REFERENCES policy_holders(id),
			claim_amount NUMERIC(12,2) NOT NULL,
			description TEXT NOT NULL DEFAULT '',
			status TEXT NOT NULL DEFAULT 'Pending'
		);`,
		`CREATE INDEX IF NOT EXISTS policy_purchases_user_idx ON policy_purchases (user_id);`,
		`CREATE INDEX IF NOT EXISTS claims_holder_idx ON claims (policy_holder_id);`,
		`CREATE UNIQUE INDEX IF NOT EXISTS policy_holders_user_unique_idx ON policy_holders (user_id) WHERE user_id IS NOT NULL;`,
	}
	for _, stmt := range stmts {
		if _, err := s.pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("apply migrations: %w", err)
		}
	}
	return nil
}

// mapPgError translates constraint violations into storage sentinels so
// handlers never see driver error codes.
func mapPgError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505":
			return storage.ErrAlreadyExists
		case "23503":
			return storage.ErrConflict
		}
	}
	return err
}
