package whack

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/burrowlabs/whack-engine/internal/domain"
	"github.com/burrowlabs/whack-engine/internal/logger"
	"github.com/burrowlabs/whack-engine/internal/metrics"
)

// Confirm resolves the current stage against the hidden slots
func (s *service) Confirm(ctx context.Context, playerID string, sessionID uuid.UUID) (*domain.SessionView, error) {
	log := logger.FromContext(ctx)
	log.Info(LogMsgConfirmCalled, "player_id", playerID, "session_id", sessionID)

	if _, err := s.checkRails(ctx); err != nil {
		return nil, err
	}

	session, err := s.getOwnedSession(ctx, playerID, sessionID)
	if err != nil {
		return nil, err
	}
	if session.Expired(s.now()) {
		return nil, domain.ErrSessionExpired
	}
	if _, err := s.getEnabledPool(ctx); err != nil {
		return nil, err
	}

	switch session.Status {
	case domain.StatusChoosing:
		return s.confirmStage1(ctx, session)
	case domain.StatusChoosing2:
		return s.confirmStage2(ctx, session)
	default:
		return nil, domain.ErrInvalidStateTransition
	}
}

// confirmStage1 resolves the first pick: a miss settles the wager into the
// pool and ends the session; a hit holds the payout pending the player's
// collect-or-continue decision.
func (s *service) confirmStage1(ctx context.Context, session *domain.Session) (*domain.SessionView, error) {
	pick := session.PickStage1
	if pick < domain.SlotMin || pick > domain.SlotMax {
		return nil, domain.ErrPickRequired
	}

	outcome := domain.OutcomeMiss
	multTenths := 0
	switch pick {
	case session.NormalSlot:
		outcome = domain.OutcomeNormal
		multTenths = domain.MultiplierNormalTenths
	case session.GoldenSlot:
		outcome = domain.OutcomeGolden
		multTenths = domain.MultiplierGoldenTenths
	}

	if outcome == domain.OutcomeMiss {
		rows, err := s.sessions.FinalizeSession(ctx, session.ID, domain.StatusChoosing, domain.Settlement{
			Stage:   1,
			Outcome: domain.OutcomeMiss,
		})
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ErrContextFailedToUpdateSession, err)
		}
		if rows == 0 {
			return nil, domain.ErrInvalidStateTransition
		}
		if err := s.settleStageFunds(ctx, session, 1); err != nil {
			return nil, err
		}

		metrics.SessionsResolved.WithLabelValues(string(domain.OutcomeMiss)).Inc()

		session.Status = domain.StatusResolved
		session.Outcome = domain.OutcomeMiss
		return buildView(session), nil
	}

	pending := session.BetStage1 * int64(multTenths) / 10
	win := domain.Stage1Win{
		FoundKind:               foundKindFor(outcome),
		FoundSlot:               pick,
		Outcome:                 outcome,
		PendingPayout:           pending,
		PendingMultiplierTenths: multTenths,
	}

	expiresAt := s.now().Add(PickWindow)
	rows, err := s.sessions.HoldStage1Win(ctx, session.ID, win, expiresAt)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToUpdateSession, err)
	}
	if rows == 0 {
		return nil, domain.ErrInvalidStateTransition
	}
	if err := s.settleStageFunds(ctx, session, 1); err != nil {
		return nil, err
	}

	session.Status = domain.StatusDecide
	session.FoundKind = win.FoundKind
	session.FoundSlot = pick
	session.PendingPayout = pending
	session.PendingMultiplierTenths = multTenths
	session.ExpiresAt = expiresAt
	return buildView(session), nil
}

// confirmStage2 resolves the second pick against the remaining slot. Both
// outcomes pay from the pool: five times the wager on a hit, the held
// stage-1 payout on a miss.
func (s *service) confirmStage2(ctx context.Context, session *domain.Session) (*domain.SessionView, error) {
	pick := session.PickStage2
	if pick < domain.SlotMin || pick > domain.SlotMax {
		return nil, domain.ErrPickRequired
	}

	// The target is whichever slot stage 1 did not uncover
	target := session.NormalSlot
	if session.FoundKind == domain.FoundNormal {
		target = session.GoldenSlot
	}

	outcome := domain.OutcomeSecondMiss
	amount := session.PendingPayout
	multTenths := session.PendingMultiplierTenths
	if pick == target {
		outcome = domain.OutcomeFiveX
		amount = session.BetStage2 * Stage2MultiplierWhole
		multTenths = domain.MultiplierFiveXTenths
	}

	// The payout claim runs before the stage wager settles into the pool.
	// A failed payout leaves the wager held on the session, so cancel can
	// still refund it and a retried confirm does not re-credit the fee.
	if err := s.payFromPool(ctx, session, domain.StatusChoosing2, amount, 2, outcome); err != nil {
		return nil, err
	}
	if err := s.settleStageFunds(ctx, session, 2); err != nil {
		return nil, err
	}

	rows, err := s.sessions.FinalizeSession(ctx, session.ID, domain.StatusPaying, domain.Settlement{
		Stage:            2,
		Outcome:          outcome,
		Payout:           amount,
		MultiplierTenths: multTenths,
		PickStage2:       pick,
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToUpdateSession, err)
	}
	if rows == 0 {
		return nil, domain.ErrInvalidStateTransition
	}

	metrics.SessionsResolved.WithLabelValues(string(outcome)).Inc()

	session.Status = domain.StatusResolved
	session.Stage = 2
	session.Outcome = outcome
	session.FinalPayout = amount
	session.FinalMultiplierTenths = multTenths
	session.PendingPayout = 0
	return buildView(session), nil
}

// Collect pays out the held stage-1 win and ends the session
func (s *service) Collect(ctx context.Context, playerID string, sessionID uuid.UUID) (*domain.SessionView, error) {
	log := logger.FromContext(ctx)
	log.Info(LogMsgCollectCalled, "player_id", playerID, "session_id", sessionID)

	if _, err := s.checkRails(ctx); err != nil {
		return nil, err
	}

	session, err := s.getOwnedSession(ctx, playerID, sessionID)
	if err != nil {
		return nil, err
	}
	if session.Status != domain.StatusDecide {
		return nil, domain.ErrInvalidStateTransition
	}

	outcome := outcomeFor(session.FoundKind)
	pending := session.PendingPayout

	if err := s.payFromPool(ctx, session, domain.StatusDecide, pending, 1, outcome); err != nil {
		return nil, err
	}

	rows, err := s.sessions.FinalizeSession(ctx, session.ID, domain.StatusPaying, domain.Settlement{
		Stage:            1,
		Outcome:          outcome,
		Payout:           pending,
		MultiplierTenths: session.PendingMultiplierTenths,
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToUpdateSession, err)
	}
	if rows == 0 {
		return nil, domain.ErrInvalidStateTransition
	}

	metrics.SessionsResolved.WithLabelValues(string(outcome)).Inc()

	session.Status = domain.StatusResolved
	session.Outcome = outcome
	session.FinalPayout = pending
	session.FinalMultiplierTenths = session.PendingMultiplierTenths
	session.PendingPayout = 0
	return buildView(session), nil
}

// Continue forfeits nothing yet: it locks a second wager equal to the first
// and opens the stage-2 pick window. The held stage-1 payout rides along and
// is only lost if stage 2 hits.
func (s *service) Continue(ctx context.Context, playerID string, sessionID uuid.UUID) (*domain.SessionView, error) {
	log := logger.FromContext(ctx)
	log.Info(LogMsgContinueCalled, "player_id", playerID, "session_id", sessionID)

	if _, err := s.checkRails(ctx); err != nil {
		return nil, err
	}

	session, err := s.getOwnedSession(ctx, playerID, sessionID)
	if err != nil {
		return nil, err
	}
	if session.Status != domain.StatusDecide {
		return nil, domain.ErrInvalidStateTransition
	}

	bet := session.BetStage1

	pool, err := s.getEnabledPool(ctx)
	if err != nil {
		return nil, err
	}
	if bet > pool.MaxBet() {
		return nil, fmt.Errorf("%w: maximum is %d", domain.ErrBetAboveMaximum, pool.MaxBet())
	}

	fee := feeFor(bet)
	net := bet - fee
	worst := bet * Stage2MultiplierWhole
	if pool.Balance+net < worst {
		return nil, domain.ErrPoolCannotCoverWorstCase
	}

	if _, err := s.getEligiblePlayer(ctx, playerID); err != nil {
		return nil, err
	}

	rows, err := s.balances.DecrementIfAtLeast(ctx, playerID, bet)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToDebitPlayer, err)
	}
	if rows == 0 {
		return nil, domain.ErrInsufficientBalance
	}

	expiresAt := s.now().Add(PickWindow)
	rows, err = s.sessions.EnterStage2(ctx, session.ID, bet, fee, net, expiresAt)
	if err == nil && rows == 0 {
		err = domain.ErrInvalidStateTransition
	}
	if err != nil {
		// The second wager is already locked; hand it back
		if crErr := s.balances.Credit(ctx, playerID, bet); crErr != nil {
			log.Error("Failed to refund stage-2 bet after transition failure",
				"session_id", session.ID, "error", crErr)
		}
		return nil, err
	}

	s.audit.RecordSession(ctx, session.ID.String(), 2, domain.LedgerBetLock, -bet,
		map[string]any{"player_id": playerID})

	metrics.Stage2Entered.Inc()
	metrics.AmountWagered.Add(float64(bet))

	session.Status = domain.StatusChoosing2
	session.Stage = 2
	session.BetStage2 = bet
	session.FeeStage2 = fee
	session.NetStage2 = net
	session.PickStage2 = 0
	session.ExpiresAt = expiresAt
	return buildView(session), nil
}

func foundKindFor(outcome domain.Outcome) domain.FoundKind {
	if outcome == domain.OutcomeGolden {
		return domain.FoundGolden
	}
	return domain.FoundNormal
}

func outcomeFor(kind domain.FoundKind) domain.Outcome {
	if kind == domain.FoundGolden {
		return domain.OutcomeGolden
	}
	return domain.OutcomeNormal
}
