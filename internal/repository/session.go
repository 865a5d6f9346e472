package repository

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/burrowlabs/whack-engine/internal/domain"
)

// Session defines the data access interface for wagering sessions.
//
// Every mutating method that guards against concurrent actors returns the
// number of rows affected; zero means the guard did not match and the caller
// must treat the attempt as lost to a concurrent update.
type Session interface {
	CreateSession(ctx context.Context, session *domain.Session) error
	GetSession(ctx context.Context, id uuid.UUID) (*domain.Session, error)
	// GetActiveSession returns the player's non-terminal session, or
	// domain.ErrSessionNotFound when none exists.
	GetActiveSession(ctx context.Context, playerID string) (*domain.Session, error)

	// SetPick records the slot pick for the session's current stage.
	// Guarded on the expected status (CHOOSING or CHOOSING2).
	SetPick(ctx context.Context, id uuid.UUID, expected domain.SessionStatus, stage int, slot int) (int64, error)

	// ClaimStatus conditionally moves the session between statuses. Used
	// both for the transient payout claim and for releasing it on failure.
	ClaimStatus(ctx context.Context, id uuid.UUID, expected, next domain.SessionStatus) (int64, error)

	// HoldStage1Win transitions CHOOSING -> DECIDE recording the stage-1
	// find and the payout now held pending the player's decision.
	HoldStage1Win(ctx context.Context, id uuid.UUID, win domain.Stage1Win, expiresAt time.Time) (int64, error)

	// EnterStage2 transitions DECIDE -> CHOOSING2 recording the stage-2
	// wager amounts. Guarded on status DECIDE.
	EnterStage2(ctx context.Context, id uuid.UUID, bet, fee, net int64, expiresAt time.Time) (int64, error)

	// RevertStage2 clears the stage-2 wager columns and returns the
	// session to DECIDE. Used when the stage-2 lock fails downstream.
	RevertStage2(ctx context.Context, id uuid.UUID) (int64, error)

	// SettleStageFunds zeroes the held net amount for the stage so the
	// pool credit backing it happens exactly once. Returns the net amount
	// that was held; rows affected is zero when already settled.
	SettleStageFunds(ctx context.Context, id uuid.UUID, stage int) (int64, int64, error)

	// FinalizeSession moves the session from the expected status to a
	// terminal one, recording the outcome.
	FinalizeSession(ctx context.Context, id uuid.UUID, expected domain.SessionStatus, settlement domain.Settlement) (int64, error)

	// CancelSession marks the session CANCELLED from the expected status.
	CancelSession(ctx context.Context, id uuid.UUID, expected domain.SessionStatus) (int64, error)

	// ListExpired returns sessions past their deadline that are still in
	// an expirable status (CHOOSING, DECIDE, CHOOSING2).
	ListExpired(ctx context.Context, now time.Time, limit int) ([]*domain.Session, error)
}
