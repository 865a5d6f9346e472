// Package whack implements the two-stage pick-a-hole wagering engine.
//
// Every funds movement is a single conditional statement against one store:
// player debits are guarded on balance, pool debits on pool balance, and
// state transitions on the expected session status. Any guard that does not
// match reports zero rows and the operation is refused, so concurrent
// confirms, collects, and cancels can never double-spend.
package whack

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/burrowlabs/whack-engine/internal/domain"
	"github.com/burrowlabs/whack-engine/internal/logger"
	"github.com/burrowlabs/whack-engine/internal/metrics"
	"github.com/burrowlabs/whack-engine/internal/repository"
)

// Service defines the interface for whack game operations
type Service interface {
	Start(ctx context.Context, identity domain.PlayerIdentity, bet int64) (*domain.SessionView, error)
	Select(ctx context.Context, playerID string, sessionID uuid.UUID, slot int) (*domain.SessionView, error)
	Confirm(ctx context.Context, playerID string, sessionID uuid.UUID) (*domain.SessionView, error)
	Collect(ctx context.Context, playerID string, sessionID uuid.UUID) (*domain.SessionView, error)
	Continue(ctx context.Context, playerID string, sessionID uuid.UUID) (*domain.SessionView, error)
	Cancel(ctx context.Context, playerID string, sessionID uuid.UUID) (*domain.SessionView, error)
	GetSession(ctx context.Context, playerID string, sessionID uuid.UUID) (*domain.SessionView, error)
	GetActiveSession(ctx context.Context, playerID string) (*domain.SessionView, error)
	SweepExpired(ctx context.Context) (int, error)
}

// Recorder records balance-affecting operations to the audit ledger
type Recorder interface {
	RecordSession(ctx context.Context, sessionID string, stage int, kind domain.LedgerKind, delta int64, metadata map[string]any)
}

// ConfigProvider supplies the wagering settings the engine checks on entry
type ConfigProvider interface {
	GetConfig(ctx context.Context) (*domain.GameConfig, error)
}

type service struct {
	sessions repository.Session
	balances repository.Balance
	pools    repository.Treasury
	audit    Recorder
	config   ConfigProvider
	roller   SlotRoller
	now      func() time.Time
}

// NewService creates a new whack service
func NewService(sessions repository.Session, balances repository.Balance, pools repository.Treasury, audit Recorder, config ConfigProvider, roller SlotRoller) Service {
	return &service{
		sessions: sessions,
		balances: balances,
		pools:    pools,
		audit:    audit,
		config:   config,
		roller:   roller,
		now:      time.Now,
	}
}

// feeFor computes the house fee, floored
func feeFor(bet int64) int64 {
	return bet * FeeBps / BpsDenominator
}

// Start locks the bet and opens a stage-1 session
func (s *service) Start(ctx context.Context, identity domain.PlayerIdentity, bet int64) (*domain.SessionView, error) {
	log := logger.FromContext(ctx)
	log.Info(LogMsgStartCalled, "player_id", identity.PlayerID, "bet", bet)

	cfg, err := s.checkRails(ctx)
	if err != nil {
		return nil, err
	}

	if bet <= 0 {
		return nil, domain.ErrInvalidBet
	}
	if bet < cfg.MinBet {
		return nil, fmt.Errorf("%w: minimum is %d", domain.ErrBetBelowMinimum, cfg.MinBet)
	}

	if err := s.balances.EnsurePlayer(ctx, identity); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToEnsurePlayer, err)
	}
	player, err := s.getEligiblePlayer(ctx, identity.PlayerID)
	if err != nil {
		return nil, err
	}

	pool, err := s.getEnabledPool(ctx)
	if err != nil {
		return nil, err
	}
	if bet > pool.MaxBet() {
		return nil, fmt.Errorf("%w: maximum is %d", domain.ErrBetAboveMaximum, pool.MaxBet())
	}

	// Stage-1 worst case is the golden multiplier
	fee := feeFor(bet)
	net := bet - fee
	worst := bet * domain.MultiplierGoldenTenths / 10
	if pool.Balance+net < worst {
		return nil, domain.ErrPoolCannotCoverWorstCase
	}

	normalSlot, goldenSlot, err := s.roller.Roll()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToCreateSession, err)
	}

	rows, err := s.balances.DecrementIfAtLeast(ctx, player.PlayerID, bet)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToDebitPlayer, err)
	}
	if rows == 0 {
		return nil, domain.ErrInsufficientBalance
	}

	now := s.now()
	session := &domain.Session{
		ID:         uuid.New(),
		PlayerID:   player.PlayerID,
		PoolID:     domain.PoolWhack,
		Stage:      1,
		Status:     domain.StatusChoosing,
		BetStage1:  bet,
		FeeStage1:  fee,
		NetStage1:  net,
		NormalSlot: normalSlot,
		GoldenSlot: goldenSlot,
		ExpiresAt:  now.Add(PickWindow),
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if err := s.sessions.CreateSession(ctx, session); err != nil {
		// The bet is already locked; hand it back before reporting failure
		if crErr := s.balances.Credit(ctx, player.PlayerID, bet); crErr != nil {
			log.Error("Failed to refund bet after create failure", "session_id", session.ID, "error", crErr)
		}
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToCreateSession, err)
	}

	s.audit.RecordSession(ctx, session.ID.String(), 1, domain.LedgerBetLock, -bet,
		map[string]any{"player_id": player.PlayerID})

	metrics.SessionsStarted.Inc()
	metrics.AmountWagered.Add(float64(bet))

	return buildView(session), nil
}

// Select records the player's slot pick for the current stage
func (s *service) Select(ctx context.Context, playerID string, sessionID uuid.UUID, slot int) (*domain.SessionView, error) {
	log := logger.FromContext(ctx)
	log.Info(LogMsgSelectCalled, "player_id", playerID, "session_id", sessionID, "slot", slot)

	if slot < domain.SlotMin || slot > domain.SlotMax {
		return nil, domain.ErrInvalidSlot
	}

	session, err := s.getOwnedSession(ctx, playerID, sessionID)
	if err != nil {
		return nil, err
	}
	if session.Expired(s.now()) {
		return nil, domain.ErrSessionExpired
	}

	var stage int
	switch session.Status {
	case domain.StatusChoosing:
		stage = 1
	case domain.StatusChoosing2:
		stage = 2
	default:
		return nil, domain.ErrInvalidStateTransition
	}

	rows, err := s.sessions.SetPick(ctx, session.ID, session.Status, stage, slot)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToUpdateSession, err)
	}
	if rows == 0 {
		return nil, domain.ErrInvalidStateTransition
	}

	if stage == 1 {
		session.PickStage1 = slot
	} else {
		session.PickStage2 = slot
	}
	return buildView(session), nil
}

// GetSession returns the caller-facing view of a session
func (s *service) GetSession(ctx context.Context, playerID string, sessionID uuid.UUID) (*domain.SessionView, error) {
	session, err := s.getOwnedSession(ctx, playerID, sessionID)
	if err != nil {
		return nil, err
	}
	return buildView(session), nil
}

// GetActiveSession returns the player's live session, if any
func (s *service) GetActiveSession(ctx context.Context, playerID string) (*domain.SessionView, error) {
	session, err := s.sessions.GetActiveSession(ctx, playerID)
	if err != nil {
		return nil, err
	}
	return buildView(session), nil
}

// checkRails loads the config and refuses the operation while paused
func (s *service) checkRails(ctx context.Context) (*domain.GameConfig, error) {
	cfg, err := s.config.GetConfig(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToGetConfig, err)
	}
	if cfg.RailsPaused {
		return nil, domain.ErrRailsPaused
	}
	return cfg, nil
}

// getEligiblePlayer loads the player and refuses blacklisted accounts
func (s *service) getEligiblePlayer(ctx context.Context, playerID string) (*domain.PlayerBalance, error) {
	player, err := s.balances.GetPlayer(ctx, playerID)
	if err != nil {
		return nil, err
	}
	if player.Blacklisted {
		return nil, domain.ErrPlayerBlacklisted
	}
	return player, nil
}

// getEnabledPool loads the whack pool and refuses disabled pools
func (s *service) getEnabledPool(ctx context.Context) (*domain.TreasuryPool, error) {
	pool, err := s.pools.GetPool(ctx, domain.PoolWhack)
	if err != nil {
		return nil, err
	}
	if !pool.Enabled {
		return nil, domain.ErrPoolUnavailable
	}
	return pool, nil
}

// getOwnedSession loads a session and hides other players' sessions
func (s *service) getOwnedSession(ctx context.Context, playerID string, sessionID uuid.UUID) (*domain.Session, error) {
	session, err := s.sessions.GetSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session.PlayerID != playerID {
		return nil, domain.ErrSessionNotFound
	}
	return session, nil
}

// settleStageFunds credits the held stage wager into the pools, exactly once.
// The session-side zeroing is the gate: when another actor already settled,
// nothing moves.
func (s *service) settleStageFunds(ctx context.Context, session *domain.Session, stage int) error {
	held, rows, err := s.sessions.SettleStageFunds(ctx, session.ID, stage)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrContextFailedToUpdateSession, err)
	}
	if rows == 0 {
		return nil
	}

	fee := session.FeeStage1
	if stage == 2 {
		fee = session.FeeStage2
	}

	if err := s.pools.Credit(ctx, session.PoolID, held); err != nil {
		return fmt.Errorf("%s: %w", ErrContextFailedToCreditPool, err)
	}
	if fee > 0 {
		if err := s.pools.Credit(ctx, domain.PoolFee, fee); err != nil {
			return fmt.Errorf("%s: %w", ErrContextFailedToCreditPool, err)
		}
	}

	s.audit.RecordSession(ctx, session.ID.String(), stage, domain.LedgerBetSettleIn, held,
		map[string]any{"pool_id": session.PoolID})
	s.audit.RecordSession(ctx, session.ID.String(), stage, domain.LedgerFee, fee,
		map[string]any{"pool_id": domain.PoolFee})

	metrics.FeesCollected.Add(float64(fee))
	return nil
}

// payFromPool claims the session, debits the pool, and credits the player.
// On a failed pool debit the claim is released back to releaseTo and the
// session stays retriable.
func (s *service) payFromPool(ctx context.Context, session *domain.Session, claimFrom domain.SessionStatus, amount int64, kindStage int, outcome domain.Outcome) error {
	rows, err := s.sessions.ClaimStatus(ctx, session.ID, claimFrom, domain.StatusPaying)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrContextFailedToUpdateSession, err)
	}
	if rows == 0 {
		return domain.ErrInvalidStateTransition
	}

	rows, err = s.pools.DebitIfAtLeast(ctx, session.PoolID, amount)
	if err == nil && rows == 0 {
		err = domain.ErrPoolInsufficientForPayout
	}
	if err != nil {
		s.releaseClaim(ctx, session.ID, claimFrom)
		if errors.Is(err, domain.ErrPoolInsufficientForPayout) {
			return domain.ErrPoolInsufficientForPayout
		}
		return fmt.Errorf("%s: %w", ErrContextFailedToDebitPool, err)
	}

	if err := s.balances.Credit(ctx, session.PlayerID, amount); err != nil {
		return fmt.Errorf("%s: %w", ErrContextFailedToCreditPlayer, err)
	}

	s.audit.RecordSession(ctx, session.ID.String(), kindStage, domain.LedgerPayout, amount,
		map[string]any{"player_id": session.PlayerID, "outcome": string(outcome)})
	s.audit.RecordSession(ctx, session.ID.String(), kindStage, domain.LedgerTreasuryOut, -amount,
		map[string]any{"pool_id": session.PoolID, "outcome": string(outcome)})

	metrics.AmountPaidOut.Add(float64(amount))
	return nil
}

// releaseClaim hands a failed payout claim back so the session stays usable
func (s *service) releaseClaim(ctx context.Context, sessionID uuid.UUID, releaseTo domain.SessionStatus) {
	rows, err := s.sessions.ClaimStatus(ctx, sessionID, domain.StatusPaying, releaseTo)
	if err != nil || rows == 0 {
		logger.FromContext(ctx).Error(ErrContextFailedToReleaseClaim,
			"session_id", sessionID, "release_to", releaseTo, "error", err)
		return
	}
	logger.FromContext(ctx).Warn(LogMsgPayoutClaimReleased, "session_id", sessionID)
}
