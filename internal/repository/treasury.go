package repository

import (
	"context"

	"github.com/burrowlabs/whack-engine/internal/domain"
)

// Treasury defines the data access interface for house pools.
type Treasury interface {
	// EnsurePool creates the pool row if absent. Existing pools are left
	// untouched so repeated startup provisioning is safe.
	EnsurePool(ctx context.Context, poolID string, initialBalance int64, maxBetBps int) error
	GetPool(ctx context.Context, poolID string) (*domain.TreasuryPool, error)

	// Credit adds amount to the pool balance unconditionally.
	Credit(ctx context.Context, poolID string, amount int64) error

	// DebitIfAtLeast debits amount only when the pool balance covers it.
	// Rows affected zero means the pool cannot fund the payout.
	DebitIfAtLeast(ctx context.Context, poolID string, amount int64) (int64, error)

	SetEnabled(ctx context.Context, poolID string, enabled bool) (int64, error)
	SetMaxBetBps(ctx context.Context, poolID string, bps int) (int64, error)
}
