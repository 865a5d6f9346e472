package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/burrowlabs/whack-engine/internal/domain"
)

// GameConfigRepository implements the game config repository for PostgreSQL
type GameConfigRepository struct {
	db *pgxpool.Pool
}

// NewGameConfigRepository creates a new GameConfigRepository
func NewGameConfigRepository(db *pgxpool.Pool) *GameConfigRepository {
	return &GameConfigRepository{db: db}
}

// EnsureConfig creates the singleton config row with defaults if missing
func (r *GameConfigRepository) EnsureConfig(ctx context.Context, defaults domain.GameConfig) error {
	query := `
		INSERT INTO game_config (
			config_id, min_bet, rails_paused, caption, image_url,
			banner_win_normal_url, banner_win_golden_url, banner_win_both_url,
			banner_lose_url, banner_taunt_url,
			quick_bets, dm_only, auto_delete
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		ON CONFLICT (config_id) DO NOTHING`

	_, err := r.db.Exec(ctx, query,
		domain.ConfigID, defaults.MinBet, defaults.RailsPaused, defaults.Caption, defaults.ImageURL,
		defaults.BannerWinNormalURL, defaults.BannerWinGoldenURL, defaults.BannerWinBothURL,
		defaults.BannerLoseURL, defaults.BannerTauntURL,
		defaults.QuickBets, defaults.DMOnly, defaults.AutoDelete,
	)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToEnsureConfig, err)
	}
	return nil
}

// GetConfig retrieves the singleton config row
func (r *GameConfigRepository) GetConfig(ctx context.Context) (*domain.GameConfig, error) {
	query := `
		SELECT config_id, min_bet, rails_paused, caption, image_url,
		       banner_win_normal_url, banner_win_golden_url, banner_win_both_url,
		       banner_lose_url, banner_taunt_url,
		       quick_bets, dm_only, auto_delete, created_at, updated_at
		FROM game_config WHERE config_id = $1`

	var c domain.GameConfig
	err := r.db.QueryRow(ctx, query, domain.ConfigID).Scan(
		&c.ConfigID, &c.MinBet, &c.RailsPaused, &c.Caption, &c.ImageURL,
		&c.BannerWinNormalURL, &c.BannerWinGoldenURL, &c.BannerWinBothURL,
		&c.BannerLoseURL, &c.BannerTauntURL,
		&c.QuickBets, &c.DMOnly, &c.AutoDelete, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrConfigNotFound
		}
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetConfig, err)
	}
	return &c, nil
}

// UpdateConfig applies the non-nil fields of the partial update
func (r *GameConfigRepository) UpdateConfig(ctx context.Context, update domain.GameConfigUpdate) (int64, error) {
	query := `
		UPDATE game_config SET
			min_bet = COALESCE($1, min_bet),
			caption = COALESCE($2, caption),
			image_url = COALESCE($3, image_url),
			banner_win_normal_url = COALESCE($4, banner_win_normal_url),
			banner_win_golden_url = COALESCE($5, banner_win_golden_url),
			banner_win_both_url = COALESCE($6, banner_win_both_url),
			banner_lose_url = COALESCE($7, banner_lose_url),
			banner_taunt_url = COALESCE($8, banner_taunt_url),
			quick_bets = COALESCE($9, quick_bets),
			dm_only = COALESCE($10, dm_only),
			auto_delete = COALESCE($11, auto_delete),
			updated_at = NOW()
		WHERE config_id = $12`

	tag, err := r.db.Exec(ctx, query,
		update.MinBet, update.Caption, update.ImageURL,
		update.BannerWinNormalURL, update.BannerWinGoldenURL, update.BannerWinBothURL,
		update.BannerLoseURL, update.BannerTauntURL,
		update.QuickBets, update.DMOnly, update.AutoDelete,
		domain.ConfigID,
	)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", ErrMsgFailedToUpdateConfig, err)
	}
	return tag.RowsAffected(), nil
}

// SetRailsPaused flips the wagering kill switch
func (r *GameConfigRepository) SetRailsPaused(ctx context.Context, paused bool) (int64, error) {
	query := `
		UPDATE game_config
		SET rails_paused = $1, updated_at = NOW()
		WHERE config_id = $2`

	tag, err := r.db.Exec(ctx, query, paused, domain.ConfigID)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", ErrMsgFailedToUpdateConfig, err)
	}
	return tag.RowsAffected(), nil
}

// UpsertChatState creates or replaces the per-chat shill bookkeeping
func (r *GameConfigRepository) UpsertChatState(ctx context.Context, state domain.ChatState) error {
	query := `
		INSERT INTO whack_chats (chat_id, shill_message_id, shill_interval_sec, last_shill_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (chat_id) DO UPDATE
		SET shill_message_id = EXCLUDED.shill_message_id,
		    shill_interval_sec = EXCLUDED.shill_interval_sec,
		    last_shill_at = EXCLUDED.last_shill_at,
		    updated_at = NOW()`

	_, err := r.db.Exec(ctx, query, state.ChatID, state.ShillMessageID, state.ShillIntervalSec, state.LastShillAt)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToUpsertChatState, err)
	}
	return nil
}

// GetChatState retrieves the shill bookkeeping for one chat
func (r *GameConfigRepository) GetChatState(ctx context.Context, chatID string) (*domain.ChatState, error) {
	query := `
		SELECT chat_id, shill_message_id, shill_interval_sec, last_shill_at, created_at, updated_at
		FROM whack_chats WHERE chat_id = $1`

	var s domain.ChatState
	err := r.db.QueryRow(ctx, query, chatID).Scan(
		&s.ChatID, &s.ShillMessageID, &s.ShillIntervalSec, &s.LastShillAt, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrChatNotFound
		}
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetChatState, err)
	}
	return &s, nil
}

// ListChatStates returns all registered chats
func (r *GameConfigRepository) ListChatStates(ctx context.Context) ([]domain.ChatState, error) {
	query := `
		SELECT chat_id, shill_message_id, shill_interval_sec, last_shill_at, created_at, updated_at
		FROM whack_chats ORDER BY chat_id`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetChatState, err)
	}
	defer rows.Close()

	var states []domain.ChatState
	for rows.Next() {
		var s domain.ChatState
		if err := rows.Scan(&s.ChatID, &s.ShillMessageID, &s.ShillIntervalSec, &s.LastShillAt, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetChatState, err)
		}
		states = append(states, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetChatState, err)
	}
	return states, nil
}

// TouchChatShill records the latest shill message for a chat
func (r *GameConfigRepository) TouchChatShill(ctx context.Context, chatID string, messageID int64, at time.Time) (int64, error) {
	query := `
		UPDATE whack_chats
		SET shill_message_id = $1, last_shill_at = $2, updated_at = NOW()
		WHERE chat_id = $3`

	tag, err := r.db.Exec(ctx, query, messageID, at, chatID)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", ErrMsgFailedToUpsertChatState, err)
	}
	return tag.RowsAffected(), nil
}
