package whack

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/burrowlabs/whack-engine/internal/domain"
	"github.com/burrowlabs/whack-engine/internal/logger"
	"github.com/burrowlabs/whack-engine/internal/metrics"
)

// Cancel backs the player out of an open pick window. During stage 1 the
// whole session is cancelled and the bet refunded. During stage 2 only the
// second wager is unwound and the session returns to the decide state with
// the held stage-1 win intact.
func (s *service) Cancel(ctx context.Context, playerID string, sessionID uuid.UUID) (*domain.SessionView, error) {
	log := logger.FromContext(ctx)
	log.Info(LogMsgCancelCalled, "player_id", playerID, "session_id", sessionID)

	session, err := s.getOwnedSession(ctx, playerID, sessionID)
	if err != nil {
		return nil, err
	}

	switch session.Status {
	case domain.StatusChoosing:
		return s.cancelStage1(ctx, session, CancelReasonPlayer)
	case domain.StatusChoosing2:
		return s.cancelStage2(ctx, session)
	default:
		return nil, domain.ErrCannotCancel
	}
}

func (s *service) cancelStage1(ctx context.Context, session *domain.Session, reason string) (*domain.SessionView, error) {
	rows, err := s.sessions.CancelSession(ctx, session.ID, domain.StatusChoosing)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToUpdateSession, err)
	}
	if rows == 0 {
		return nil, domain.ErrCannotCancel
	}

	if err := s.balances.Credit(ctx, session.PlayerID, session.BetStage1); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToCreditPlayer, err)
	}

	s.audit.RecordSession(ctx, session.ID.String(), 1, domain.LedgerRefund, session.BetStage1,
		map[string]any{"player_id": session.PlayerID, "reason": reason})

	metrics.SessionsCancelled.WithLabelValues(reason).Inc()
	metrics.RefundsIssued.Add(float64(session.BetStage1))

	session.Status = domain.StatusCancelled
	return buildView(session), nil
}

func (s *service) cancelStage2(ctx context.Context, session *domain.Session) (*domain.SessionView, error) {
	bet := session.BetStage2

	rows, err := s.sessions.RevertStage2(ctx, session.ID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToUpdateSession, err)
	}
	if rows == 0 {
		return nil, domain.ErrCannotCancel
	}

	if err := s.balances.Credit(ctx, session.PlayerID, bet); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToCreditPlayer, err)
	}

	s.audit.RecordSession(ctx, session.ID.String(), 2, domain.LedgerRefund, bet,
		map[string]any{"player_id": session.PlayerID, "reason": CancelReasonPlayer})

	metrics.RefundsIssued.Add(float64(bet))

	session.Status = domain.StatusDecide
	session.Stage = 1
	session.BetStage2 = 0
	session.FeeStage2 = 0
	session.NetStage2 = 0
	session.PickStage2 = 0
	return buildView(session), nil
}

// SweepExpired resolves sessions whose pick window has closed. Open stage-1
// sessions are cancelled and refunded, open stage-2 sessions are unwound
// back to the decide state, and held stage-1 wins are force-collected.
// It returns how many sessions it handled.
func (s *service) SweepExpired(ctx context.Context) (int, error) {
	log := logger.FromContext(ctx)

	expired, err := s.sessions.ListExpired(ctx, s.now(), SweepBatchSize)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", ErrContextFailedToListExpired, err)
	}
	if len(expired) == 0 {
		return 0, nil
	}
	log.Info(LogMsgSweepStarted, "count", len(expired))

	swept := 0
	for _, session := range expired {
		if err := s.sweepSession(ctx, session); err != nil {
			log.Error(LogMsgSweepFailed, "session_id", session.ID, "status", session.Status, "error", err)
			continue
		}
		log.Info(LogMsgSessionSwept, "session_id", session.ID, "status", session.Status)
		metrics.SessionsSwept.Inc()
		swept++
	}
	return swept, nil
}

func (s *service) sweepSession(ctx context.Context, session *domain.Session) error {
	switch session.Status {
	case domain.StatusChoosing:
		_, err := s.cancelStage1(ctx, session, CancelReasonExpired)
		return err
	case domain.StatusChoosing2:
		// Unwind the second wager; the session lands back in DECIDE with
		// its original expiry, so the next pass force-collects it.
		_, err := s.cancelStage2(ctx, session)
		return err
	case domain.StatusDecide:
		return s.forceCollect(ctx, session)
	default:
		return nil
	}
}

// forceCollect pays out a held stage-1 win whose decide window lapsed
func (s *service) forceCollect(ctx context.Context, session *domain.Session) error {
	outcome := outcomeFor(session.FoundKind)
	pending := session.PendingPayout

	if err := s.payFromPool(ctx, session, domain.StatusDecide, pending, 1, outcome); err != nil {
		return err
	}

	rows, err := s.sessions.FinalizeSession(ctx, session.ID, domain.StatusPaying, domain.Settlement{
		Stage:            1,
		Outcome:          outcome,
		Payout:           pending,
		MultiplierTenths: session.PendingMultiplierTenths,
	})
	if err != nil {
		return fmt.Errorf("%s: %w", ErrContextFailedToUpdateSession, err)
	}
	if rows == 0 {
		return domain.ErrInvalidStateTransition
	}

	metrics.SessionsResolved.WithLabelValues(string(outcome)).Inc()
	return nil
}
