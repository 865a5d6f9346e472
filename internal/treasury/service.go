// Package treasury manages the house pools that fund payouts and absorb
// settled wagers.
package treasury

import (
	"context"
	"fmt"

	"github.com/burrowlabs/whack-engine/internal/domain"
	"github.com/burrowlabs/whack-engine/internal/logger"
	"github.com/burrowlabs/whack-engine/internal/repository"
)

// Service defines the interface for treasury pool administration
type Service interface {
	// Provision creates the standard pools when absent. Safe to run on
	// every startup.
	Provision(ctx context.Context, initialBalance int64) error
	GetPool(ctx context.Context, poolID string) (*domain.TreasuryPool, error)

	// TopUp adds house funds to a pool
	TopUp(ctx context.Context, poolID string, amount int64) (*domain.TreasuryPool, error)

	SetEnabled(ctx context.Context, poolID string, enabled bool) error
	SetMaxBetBps(ctx context.Context, poolID string, bps int) error
}

type service struct {
	repo repository.Treasury
}

// NewService creates a new treasury service
func NewService(repo repository.Treasury) Service {
	return &service{repo: repo}
}

func (s *service) Provision(ctx context.Context, initialBalance int64) error {
	log := logger.FromContext(ctx)
	log.Info(LogMsgProvisionCalled, "initial_balance", initialBalance)

	if err := s.repo.EnsurePool(ctx, domain.PoolWhack, initialBalance, domain.DefaultMaxBetBps); err != nil {
		return fmt.Errorf("%s: %w", ErrContextFailedToEnsurePool, err)
	}
	// The fee pool only ever accumulates; it starts empty and has no cap
	if err := s.repo.EnsurePool(ctx, domain.PoolFee, 0, domain.DefaultMaxBetBps); err != nil {
		return fmt.Errorf("%s: %w", ErrContextFailedToEnsurePool, err)
	}
	return nil
}

func (s *service) GetPool(ctx context.Context, poolID string) (*domain.TreasuryPool, error) {
	pool, err := s.repo.GetPool(ctx, poolID)
	if err != nil {
		return nil, err
	}
	return pool, nil
}

func (s *service) TopUp(ctx context.Context, poolID string, amount int64) (*domain.TreasuryPool, error) {
	log := logger.FromContext(ctx)
	log.Info(LogMsgTopUpCalled, "pool_id", poolID, "amount", amount)

	if amount <= 0 {
		return nil, domain.ErrInvalidBet
	}
	if _, err := s.repo.GetPool(ctx, poolID); err != nil {
		return nil, err
	}

	if err := s.repo.Credit(ctx, poolID, amount); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToCreditPool, err)
	}
	return s.repo.GetPool(ctx, poolID)
}

func (s *service) SetEnabled(ctx context.Context, poolID string, enabled bool) error {
	log := logger.FromContext(ctx)

	rows, err := s.repo.SetEnabled(ctx, poolID, enabled)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrContextFailedToUpdatePool, err)
	}
	if rows == 0 {
		return domain.ErrPoolUnavailable
	}
	log.Info(LogMsgSetEnabled, "pool_id", poolID, "enabled", enabled)
	return nil
}

func (s *service) SetMaxBetBps(ctx context.Context, poolID string, bps int) error {
	log := logger.FromContext(ctx)

	if bps <= 0 || bps > MaxBetBpsLimit {
		return domain.ErrInvalidBet
	}

	rows, err := s.repo.SetMaxBetBps(ctx, poolID, bps)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrContextFailedToUpdatePool, err)
	}
	if rows == 0 {
		return domain.ErrPoolUnavailable
	}
	log.Info(LogMsgSetMaxBetBps, "pool_id", poolID, "max_bet_bps", bps)
	return nil
}
