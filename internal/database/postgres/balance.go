package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/burrowlabs/whack-engine/internal/domain"
)

// BalanceRepository implements the balance repository for PostgreSQL
type BalanceRepository struct {
	db *pgxpool.Pool
}

// NewBalanceRepository creates a new BalanceRepository
func NewBalanceRepository(db *pgxpool.Pool) *BalanceRepository {
	return &BalanceRepository{db: db}
}

// EnsurePlayer creates the player row if absent and refreshes identity columns
func (r *BalanceRepository) EnsurePlayer(ctx context.Context, identity domain.PlayerIdentity) error {
	query := `
		INSERT INTO players (player_id, handle, first_name, is_bot)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (player_id) DO UPDATE
		SET handle = EXCLUDED.handle,
		    first_name = EXCLUDED.first_name,
		    is_bot = EXCLUDED.is_bot,
		    updated_at = NOW()
		WHERE players.handle IS DISTINCT FROM EXCLUDED.handle
		   OR players.first_name IS DISTINCT FROM EXCLUDED.first_name
		   OR players.is_bot IS DISTINCT FROM EXCLUDED.is_bot`

	_, err := r.db.Exec(ctx, query, identity.PlayerID, identity.Handle, identity.FirstName, identity.IsBot)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToEnsurePlayer, err)
	}
	return nil
}

// GetPlayer retrieves a player account by ID
func (r *BalanceRepository) GetPlayer(ctx context.Context, playerID string) (*domain.PlayerBalance, error) {
	query := `
		SELECT player_id, handle, first_name, is_bot, balance, blacklisted, created_at, updated_at
		FROM players WHERE player_id = $1`

	var p domain.PlayerBalance
	err := r.db.QueryRow(ctx, query, playerID).Scan(
		&p.PlayerID, &p.Handle, &p.FirstName, &p.IsBot,
		&p.Balance, &p.Blacklisted, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrPlayerNotFound
		}
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetPlayer, err)
	}
	return &p, nil
}

// DecrementIfAtLeast debits amount only when the balance covers it
func (r *BalanceRepository) DecrementIfAtLeast(ctx context.Context, playerID string, amount int64) (int64, error) {
	query := `
		UPDATE players
		SET balance = balance - $1, updated_at = NOW()
		WHERE player_id = $2 AND balance >= $1`

	tag, err := r.db.Exec(ctx, query, amount, playerID)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", ErrMsgFailedToUpdateBalance, err)
	}
	return tag.RowsAffected(), nil
}

// Credit adds amount to the player's balance
func (r *BalanceRepository) Credit(ctx context.Context, playerID string, amount int64) error {
	query := `
		UPDATE players
		SET balance = balance + $1, updated_at = NOW()
		WHERE player_id = $2`

	tag, err := r.db.Exec(ctx, query, amount, playerID)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToUpdateBalance, err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrPlayerNotFound
	}
	return nil
}

// SetBlacklisted flags or unflags a player
func (r *BalanceRepository) SetBlacklisted(ctx context.Context, playerID string, blacklisted bool) (int64, error) {
	query := `
		UPDATE players
		SET blacklisted = $1, updated_at = NOW()
		WHERE player_id = $2`

	tag, err := r.db.Exec(ctx, query, blacklisted, playerID)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", ErrMsgFailedToUpdateBalance, err)
	}
	return tag.RowsAffected(), nil
}
