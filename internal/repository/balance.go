package repository

import (
	"context"

	"github.com/burrowlabs/whack-engine/internal/domain"
)

// Balance defines the data access interface for player accounts.
type Balance interface {
	// EnsurePlayer creates the player row if absent and refreshes the
	// identity columns when they changed.
	EnsurePlayer(ctx context.Context, identity domain.PlayerIdentity) error
	GetPlayer(ctx context.Context, playerID string) (*domain.PlayerBalance, error)

	// DecrementIfAtLeast debits amount only when the current balance
	// covers it. Rows affected zero means insufficient funds.
	DecrementIfAtLeast(ctx context.Context, playerID string, amount int64) (int64, error)

	// Credit adds amount to the player's balance unconditionally.
	Credit(ctx context.Context, playerID string, amount int64) error

	SetBlacklisted(ctx context.Context, playerID string, blacklisted bool) (int64, error)
}
