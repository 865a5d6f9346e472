// Package player manages player accounts: registration, balance reads,
// admin top-ups, and the blacklist.
package player

import (
	"context"
	"fmt"

	"github.com/burrowlabs/whack-engine/internal/domain"
	"github.com/burrowlabs/whack-engine/internal/logger"
	"github.com/burrowlabs/whack-engine/internal/repository"
)

// Service defines the interface for player account operations
type Service interface {
	// Register creates the player if absent and refreshes identity columns
	Register(ctx context.Context, identity domain.PlayerIdentity) (*domain.PlayerBalance, error)
	GetPlayer(ctx context.Context, playerID string) (*domain.PlayerBalance, error)

	// Credit tops up a player's balance. Admin surface only.
	Credit(ctx context.Context, playerID string, amount int64) (*domain.PlayerBalance, error)

	SetBlacklisted(ctx context.Context, playerID string, blacklisted bool) error
}

type service struct {
	repo  repository.Balance
	cache *playerCache
}

// NewService creates a new player service
func NewService(repo repository.Balance) Service {
	return &service{
		repo:  repo,
		cache: newPlayerCache(DefaultCacheSize, DefaultCacheTTL),
	}
}

func (s *service) Register(ctx context.Context, identity domain.PlayerIdentity) (*domain.PlayerBalance, error) {
	log := logger.FromContext(ctx)
	log.Info(LogMsgRegisterCalled, "player_id", identity.PlayerID)

	if identity.PlayerID == "" {
		return nil, domain.ErrPlayerNotFound
	}

	if err := s.repo.EnsurePlayer(ctx, identity); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToEnsurePlayer, err)
	}
	s.cache.Invalidate(identity.PlayerID)

	player, err := s.repo.GetPlayer(ctx, identity.PlayerID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToGetPlayer, err)
	}
	s.cache.Set(identity.PlayerID, player)
	return player, nil
}

// GetPlayer is a read-through cached lookup. Wagering paths hit the
// repository directly, so a cache hit here can lag a recent settlement by
// up to the TTL; profile reads tolerate that.
func (s *service) GetPlayer(ctx context.Context, playerID string) (*domain.PlayerBalance, error) {
	if player, ok := s.cache.Get(playerID); ok {
		return player, nil
	}
	player, err := s.repo.GetPlayer(ctx, playerID)
	if err != nil {
		return nil, err
	}
	s.cache.Set(playerID, player)
	return player, nil
}

func (s *service) Credit(ctx context.Context, playerID string, amount int64) (*domain.PlayerBalance, error) {
	log := logger.FromContext(ctx)
	log.Info(LogMsgCreditCalled, "player_id", playerID, "amount", amount)

	if amount <= 0 {
		return nil, domain.ErrInvalidBet
	}

	if err := s.repo.Credit(ctx, playerID, amount); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToCreditPlayer, err)
	}
	s.cache.Invalidate(playerID)

	return s.GetPlayer(ctx, playerID)
}

func (s *service) SetBlacklisted(ctx context.Context, playerID string, blacklisted bool) error {
	log := logger.FromContext(ctx)
	log.Info(LogMsgBlacklistCalled, "player_id", playerID, "blacklisted", blacklisted)

	rows, err := s.repo.SetBlacklisted(ctx, playerID, blacklisted)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrContextFailedToSetBlacklist, err)
	}
	if rows == 0 {
		return domain.ErrPlayerNotFound
	}
	s.cache.Invalidate(playerID)

	log.Info(LogMsgPlayerBlacklisted, "player_id", playerID, "blacklisted", blacklisted)
	return nil
}
