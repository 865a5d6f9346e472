package repository

import (
	"context"
	"time"

	"github.com/burrowlabs/whack-engine/internal/domain"
)

// GameConfig defines the data access interface for the admin-managed game
// configuration and per-chat shill state.
type GameConfig interface {
	// EnsureConfig creates the singleton config row with defaults if it
	// does not exist yet.
	EnsureConfig(ctx context.Context, defaults domain.GameConfig) error
	GetConfig(ctx context.Context) (*domain.GameConfig, error)

	// UpdateConfig applies the non-nil fields of the partial update.
	UpdateConfig(ctx context.Context, update domain.GameConfigUpdate) (int64, error)
	SetRailsPaused(ctx context.Context, paused bool) (int64, error)

	UpsertChatState(ctx context.Context, state domain.ChatState) error
	GetChatState(ctx context.Context, chatID string) (*domain.ChatState, error)
	ListChatStates(ctx context.Context) ([]domain.ChatState, error)
	TouchChatShill(ctx context.Context, chatID string, messageID int64, at time.Time) (int64, error)
}
