package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/burrowlabs/whack-engine/internal/domain"
)

// TreasuryRepository implements the treasury repository for PostgreSQL
type TreasuryRepository struct {
	db *pgxpool.Pool
}

// NewTreasuryRepository creates a new TreasuryRepository
func NewTreasuryRepository(db *pgxpool.Pool) *TreasuryRepository {
	return &TreasuryRepository{db: db}
}

// EnsurePool creates the pool row if absent; existing pools are untouched
func (r *TreasuryRepository) EnsurePool(ctx context.Context, poolID string, initialBalance int64, maxBetBps int) error {
	query := `
		INSERT INTO treasury_pools (pool_id, balance, max_bet_bps)
		VALUES ($1, $2, $3)
		ON CONFLICT (pool_id) DO NOTHING`

	_, err := r.db.Exec(ctx, query, poolID, initialBalance, maxBetBps)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToEnsurePool, err)
	}
	return nil
}

// GetPool retrieves a pool by ID
func (r *TreasuryRepository) GetPool(ctx context.Context, poolID string) (*domain.TreasuryPool, error) {
	query := `
		SELECT pool_id, balance, enabled, max_bet_bps, created_at, updated_at
		FROM treasury_pools WHERE pool_id = $1`

	var p domain.TreasuryPool
	err := r.db.QueryRow(ctx, query, poolID).Scan(
		&p.PoolID, &p.Balance, &p.Enabled, &p.MaxBetBps, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrPoolUnavailable
		}
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetPool, err)
	}
	return &p, nil
}

// Credit adds amount to the pool balance
func (r *TreasuryRepository) Credit(ctx context.Context, poolID string, amount int64) error {
	query := `
		UPDATE treasury_pools
		SET balance = balance + $1, updated_at = NOW()
		WHERE pool_id = $2`

	tag, err := r.db.Exec(ctx, query, amount, poolID)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToUpdatePool, err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrPoolUnavailable
	}
	return nil
}

// DebitIfAtLeast debits amount only when the pool balance covers it
func (r *TreasuryRepository) DebitIfAtLeast(ctx context.Context, poolID string, amount int64) (int64, error) {
	query := `
		UPDATE treasury_pools
		SET balance = balance - $1, updated_at = NOW()
		WHERE pool_id = $2 AND balance >= $1`

	tag, err := r.db.Exec(ctx, query, amount, poolID)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", ErrMsgFailedToUpdatePool, err)
	}
	return tag.RowsAffected(), nil
}

// SetEnabled toggles whether the pool accepts new wagers
func (r *TreasuryRepository) SetEnabled(ctx context.Context, poolID string, enabled bool) (int64, error) {
	query := `
		UPDATE treasury_pools
		SET enabled = $1, updated_at = NOW()
		WHERE pool_id = $2`

	tag, err := r.db.Exec(ctx, query, enabled, poolID)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", ErrMsgFailedToUpdatePool, err)
	}
	return tag.RowsAffected(), nil
}

// SetMaxBetBps updates the pool's max-bet fraction in basis points
func (r *TreasuryRepository) SetMaxBetBps(ctx context.Context, poolID string, bps int) (int64, error) {
	query := `
		UPDATE treasury_pools
		SET max_bet_bps = $1, updated_at = NOW()
		WHERE pool_id = $2`

	tag, err := r.db.Exec(ctx, query, bps, poolID)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", ErrMsgFailedToUpdatePool, err)
	}
	return tag.RowsAffected(), nil
}
