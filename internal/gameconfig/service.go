// Package gameconfig manages the admin-tunable game configuration, the
// rails kill switch, and per-chat repost bookkeeping.
package gameconfig

import (
	"context"
	"fmt"
	"time"

	"github.com/burrowlabs/whack-engine/internal/domain"
	"github.com/burrowlabs/whack-engine/internal/logger"
	"github.com/burrowlabs/whack-engine/internal/money"
	"github.com/burrowlabs/whack-engine/internal/repository"
)

// Service defines the interface for game configuration operations
type Service interface {
	// EnsureDefaults creates the singleton config row on first startup
	EnsureDefaults(ctx context.Context) error
	GetConfig(ctx context.Context) (*domain.GameConfig, error)
	UpdateConfig(ctx context.Context, update domain.GameConfigUpdate) (*domain.GameConfig, error)

	// SetRailsPaused flips the kill switch that halts all wagering entry
	// points while leaving open sessions readable.
	SetRailsPaused(ctx context.Context, paused bool) error

	RegisterChat(ctx context.Context, chatID string, shillIntervalSec int) (*domain.ChatState, error)
	GetChatState(ctx context.Context, chatID string) (*domain.ChatState, error)
	ListChatStates(ctx context.Context) ([]domain.ChatState, error)

	// TouchChatShill records the latest repost message for a chat
	TouchChatShill(ctx context.Context, chatID string, messageID int64) error
}

type service struct {
	repo repository.GameConfig
	now  func() time.Time
}

// NewService creates a new game configuration service
func NewService(repo repository.GameConfig) Service {
	return &service{repo: repo, now: time.Now}
}

func (s *service) EnsureDefaults(ctx context.Context) error {
	defaults := domain.GameConfig{
		ConfigID:   domain.ConfigID,
		MinBet:     money.Unit,
		Caption:    DefaultCaption,
		QuickBets:  DefaultQuickBets,
		AutoDelete: true,
	}
	if err := s.repo.EnsureConfig(ctx, defaults); err != nil {
		return fmt.Errorf("%s: %w", ErrContextFailedToEnsureConfig, err)
	}
	return nil
}

func (s *service) GetConfig(ctx context.Context) (*domain.GameConfig, error) {
	cfg, err := s.repo.GetConfig(ctx)
	if err != nil {
		return nil, err
	}
	return cfg, nil
}

func (s *service) UpdateConfig(ctx context.Context, update domain.GameConfigUpdate) (*domain.GameConfig, error) {
	log := logger.FromContext(ctx)
	log.Info(LogMsgUpdateCalled)

	if update.MinBet != nil && *update.MinBet <= 0 {
		return nil, domain.ErrInvalidBet
	}

	rows, err := s.repo.UpdateConfig(ctx, update)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToUpdateConfig, err)
	}
	if rows == 0 {
		return nil, domain.ErrConfigNotFound
	}
	return s.repo.GetConfig(ctx)
}

func (s *service) SetRailsPaused(ctx context.Context, paused bool) error {
	log := logger.FromContext(ctx)

	rows, err := s.repo.SetRailsPaused(ctx, paused)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrContextFailedToUpdateConfig, err)
	}
	if rows == 0 {
		return domain.ErrConfigNotFound
	}
	log.Info(LogMsgRailsPausedSet, "paused", paused)
	return nil
}

func (s *service) RegisterChat(ctx context.Context, chatID string, shillIntervalSec int) (*domain.ChatState, error) {
	log := logger.FromContext(ctx)

	if chatID == "" {
		return nil, domain.ErrChatNotFound
	}
	if shillIntervalSec <= 0 {
		shillIntervalSec = DefaultShillIntervalSec
	}

	state := domain.ChatState{
		ChatID:           chatID,
		ShillIntervalSec: shillIntervalSec,
	}
	if err := s.repo.UpsertChatState(ctx, state); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToUpdateChat, err)
	}
	log.Info(LogMsgChatRegistered, "chat_id", chatID, "shill_interval_sec", shillIntervalSec)

	return s.repo.GetChatState(ctx, chatID)
}

func (s *service) GetChatState(ctx context.Context, chatID string) (*domain.ChatState, error) {
	return s.repo.GetChatState(ctx, chatID)
}

func (s *service) ListChatStates(ctx context.Context) ([]domain.ChatState, error) {
	return s.repo.ListChatStates(ctx)
}

func (s *service) TouchChatShill(ctx context.Context, chatID string, messageID int64) error {
	log := logger.FromContext(ctx)

	rows, err := s.repo.TouchChatShill(ctx, chatID, messageID, s.now())
	if err != nil {
		return fmt.Errorf("%s: %w", ErrContextFailedToUpdateChat, err)
	}
	if rows == 0 {
		return domain.ErrChatNotFound
	}
	log.Info(LogMsgShillTouched, "chat_id", chatID, "message_id", messageID)
	return nil
}
