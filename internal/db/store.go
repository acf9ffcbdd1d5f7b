package db

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/lacrypta/satsback-api/internal/logger"
)

// Volunteer is a volunteer record with its remaining prepaid voucher,
// expressed in millisatoshis.
type Volunteer struct {
	PublicKey    string
	VoucherMsats int64
}

const schema = `
CREATE TABLE IF NOT EXISTS volunteers (
    public_key    TEXT PRIMARY KEY,
    voucher_msats BIGINT NOT NULL DEFAULT 0 CHECK (voucher_msats >= 0),
    updated_at    TIMESTAMPTZ NOT NULL DEFAULT now()
);
`

// getVolunteerQuery looks up a volunteer by public key.
const getVolunteerQuery = `
SELECT public_key, voucher_msats FROM volunteers WHERE public_key = $1
`

// deductVoucherQuery deducts up to $2 millisatoshis from a volunteer's
// voucher in a single statement, so two concurrent satsback requests for the
// same volunteer cannot overdraw the balance. It returns the amount actually
// deducted and the remaining balance.
const deductVoucherQuery = `
WITH prev AS (
    SELECT public_key, voucher_msats FROM volunteers WHERE public_key = $1 FOR UPDATE
)
UPDATE volunteers v
SET voucher_msats = prev.voucher_msats - LEAST($2::BIGINT, prev.voucher_msats),
    updated_at = now()
FROM prev
WHERE v.public_key = prev.public_key
RETURNING LEAST($2::BIGINT, prev.voucher_msats), v.voucher_msats
`

// Store persists volunteer voucher balances in Postgres.
type Store struct {
	pool   *pgxpool.Pool
	logger *zap.Logger
}

// NewStore creates a voucher store backed by the given connection pool.
func NewStore(pool *pgxpool.Pool) *Store {
	return &Store{
		pool:   pool,
		logger: logger.Log,
	}
}

// Connect creates a pgx connection pool for the given database URL.
func Connect(ctx context.Context, databaseURL string) (*pgxpool.Pool, error) {
	poolConfig, err := pgxpool.ParseConfig(databaseURL)
	if err != nil {
		return nil, fmt.Errorf("parse database connection string: %w", err)
	}

	poolConfig.MaxConns = 10
	poolConfig.MinConns = 2
	poolConfig.MaxConnLifetime = time.Hour
	poolConfig.MaxConnIdleTime = 30 * time.Minute

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, fmt.Errorf("create connection pool: %w", err)
	}

	return pool, nil
}

// EnsureSchema creates the volunteers table if it does not exist yet.
func (s *Store) EnsureSchema(ctx context.Context) error {
	if _, err := s.pool.Exec(ctx, schema); err != nil {
		return fmt.Errorf("ensure volunteers schema: %w", err)
	}
	return nil
}

// GetVolunteer returns the volunteer record for the given public key, or nil
// when no record exists. Absence is a valid state, not an error.
func (s *Store) GetVolunteer(ctx context.Context, pubkey string) (*Volunteer, error) {
	var volunteer Volunteer
	err := s.pool.QueryRow(ctx, getVolunteerQuery, pubkey).
		Scan(&volunteer.PublicKey, &volunteer.VoucherMsats)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get volunteer %s: %w", pubkey, err)
	}
	return &volunteer, nil
}

// DeductVoucher atomically deducts up to maxMsats from the volunteer's
// voucher and returns the amount actually deducted plus the remaining
// balance. The deduction never takes the balance below zero.
func (s *Store) DeductVoucher(ctx context.Context, pubkey string, maxMsats int64) (int64, int64, error) {
	if maxMsats < 0 {
		return 0, 0, fmt.Errorf("deduct voucher: negative amount %d", maxMsats)
	}

	var deducted, remaining int64
	err := s.pool.QueryRow(ctx, deductVoucherQuery, pubkey, maxMsats).
		Scan(&deducted, &remaining)
	if errors.Is(err, pgx.ErrNoRows) {
		return 0, 0, fmt.Errorf("deduct voucher: volunteer %s not found", pubkey)
	}
	if err != nil {
		return 0, 0, fmt.Errorf("deduct voucher for %s: %w", pubkey, err)
	}

	s.logger.Debug("voucher deducted",
		zap.String("public_key", pubkey),
		zap.Int64("deducted_msats", deducted),
		zap.Int64("remaining_msats", remaining))

	return deducted, remaining, nil
}
