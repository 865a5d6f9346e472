package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/burrowlabs/whack-engine/internal/domain"
)

// SessionRepository implements the session repository for PostgreSQL
type SessionRepository struct {
	db *pgxpool.Pool
}

// NewSessionRepository creates a new SessionRepository
func NewSessionRepository(db *pgxpool.Pool) *SessionRepository {
	return &SessionRepository{db: db}
}

const sessionColumns = `session_id, player_id, pool_id, stage, status,
	bet_stage1, fee_stage1, net_stage1,
	bet_stage2, fee_stage2, net_stage2,
	pick_stage1, pick_stage2, normal_slot, golden_slot,
	found_kind, found_slot, pending_payout, pending_multiplier_tenths,
	outcome, final_payout, final_multiplier_tenths,
	expires_at, created_at, updated_at`

func scanSession(row pgx.Row) (*domain.Session, error) {
	var s domain.Session
	err := row.Scan(
		&s.ID, &s.PlayerID, &s.PoolID, &s.Stage, &s.Status,
		&s.BetStage1, &s.FeeStage1, &s.NetStage1,
		&s.BetStage2, &s.FeeStage2, &s.NetStage2,
		&s.PickStage1, &s.PickStage2, &s.NormalSlot, &s.GoldenSlot,
		&s.FoundKind, &s.FoundSlot, &s.PendingPayout, &s.PendingMultiplierTenths,
		&s.Outcome, &s.FinalPayout, &s.FinalMultiplierTenths,
		&s.ExpiresAt, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// CreateSession inserts a new session. The partial unique index on active
// sessions turns a second live session for the same player into a unique
// violation, which surfaces as ErrInvalidStateTransition.
func (r *SessionRepository) CreateSession(ctx context.Context, session *domain.Session) error {
	query := `
		INSERT INTO whack_sessions (
			session_id, player_id, pool_id, stage, status,
			bet_stage1, fee_stage1, net_stage1,
			normal_slot, golden_slot,
			expires_at, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`

	_, err := r.db.Exec(ctx, query,
		session.ID, session.PlayerID, session.PoolID, session.Stage, session.Status,
		session.BetStage1, session.FeeStage1, session.NetStage1,
		session.NormalSlot, session.GoldenSlot,
		session.ExpiresAt, session.CreatedAt, session.UpdatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == PgErrorCodeUniqueViolation {
			return domain.ErrInvalidStateTransition
		}
		return fmt.Errorf("%s: %w", ErrMsgFailedToCreateSession, err)
	}
	return nil
}

// GetSession retrieves a session by ID
func (r *SessionRepository) GetSession(ctx context.Context, id uuid.UUID) (*domain.Session, error) {
	query := `SELECT ` + sessionColumns + ` FROM whack_sessions WHERE session_id = $1`

	s, err := scanSession(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrSessionNotFound
		}
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetSession, err)
	}
	return s, nil
}

// GetActiveSession retrieves the player's live session, if any
func (r *SessionRepository) GetActiveSession(ctx context.Context, playerID string) (*domain.Session, error) {
	query := `SELECT ` + sessionColumns + ` FROM whack_sessions
		WHERE player_id = $1 AND status NOT IN ($2, $3)`

	s, err := scanSession(r.db.QueryRow(ctx, query, playerID, domain.StatusResolved, domain.StatusCancelled))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrSessionNotFound
		}
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetSession, err)
	}
	return s, nil
}

// SetPick records the pick for the given stage, guarded on the expected status
func (r *SessionRepository) SetPick(ctx context.Context, id uuid.UUID, expected domain.SessionStatus, stage int, slot int) (int64, error) {
	column := "pick_stage1"
	if stage == 2 {
		column = "pick_stage2"
	}
	query := fmt.Sprintf(`
		UPDATE whack_sessions
		SET %s = $1, updated_at = NOW()
		WHERE session_id = $2 AND status = $3`, column)

	tag, err := r.db.Exec(ctx, query, slot, id, expected)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", ErrMsgFailedToUpdateSession, err)
	}
	return tag.RowsAffected(), nil
}

// ClaimStatus conditionally moves the session between statuses
func (r *SessionRepository) ClaimStatus(ctx context.Context, id uuid.UUID, expected, next domain.SessionStatus) (int64, error) {
	query := `
		UPDATE whack_sessions
		SET status = $1, updated_at = NOW()
		WHERE session_id = $2 AND status = $3`

	tag, err := r.db.Exec(ctx, query, next, id, expected)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", ErrMsgFailedToUpdateSession, err)
	}
	return tag.RowsAffected(), nil
}

// HoldStage1Win transitions CHOOSING -> DECIDE recording the stage-1 find
func (r *SessionRepository) HoldStage1Win(ctx context.Context, id uuid.UUID, win domain.Stage1Win, expiresAt time.Time) (int64, error) {
	query := `
		UPDATE whack_sessions
		SET status = $1, found_kind = $2, found_slot = $3,
		    pending_payout = $4, pending_multiplier_tenths = $5,
		    expires_at = $6, updated_at = NOW()
		WHERE session_id = $7 AND status = $8`

	tag, err := r.db.Exec(ctx, query,
		domain.StatusDecide, win.FoundKind, win.FoundSlot,
		win.PendingPayout, win.PendingMultiplierTenths,
		expiresAt, id, domain.StatusChoosing,
	)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", ErrMsgFailedToUpdateSession, err)
	}
	return tag.RowsAffected(), nil
}

// EnterStage2 transitions DECIDE -> CHOOSING2 recording the stage-2 wager
func (r *SessionRepository) EnterStage2(ctx context.Context, id uuid.UUID, bet, fee, net int64, expiresAt time.Time) (int64, error) {
	query := `
		UPDATE whack_sessions
		SET status = $1, stage = 2,
		    bet_stage2 = $2, fee_stage2 = $3, net_stage2 = $4,
		    expires_at = $5, updated_at = NOW()
		WHERE session_id = $6 AND status = $7`

	tag, err := r.db.Exec(ctx, query,
		domain.StatusChoosing2, bet, fee, net, expiresAt, id, domain.StatusDecide,
	)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", ErrMsgFailedToUpdateSession, err)
	}
	return tag.RowsAffected(), nil
}

// RevertStage2 clears the stage-2 wager and returns the session to DECIDE
func (r *SessionRepository) RevertStage2(ctx context.Context, id uuid.UUID) (int64, error) {
	query := `
		UPDATE whack_sessions
		SET status = $1, stage = 1,
		    bet_stage2 = 0, fee_stage2 = 0, net_stage2 = 0,
		    updated_at = NOW()
		WHERE session_id = $2 AND status = $3`

	tag, err := r.db.Exec(ctx, query, domain.StatusDecide, id, domain.StatusChoosing2)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", ErrMsgFailedToUpdateSession, err)
	}
	return tag.RowsAffected(), nil
}

// SettleStageFunds zeroes the held net amount for the stage so the pool
// credit backing it happens exactly once. Returns the amount that was held.
func (r *SessionRepository) SettleStageFunds(ctx context.Context, id uuid.UUID, stage int) (int64, int64, error) {
	netCol := "net_stage1"
	if stage == 2 {
		netCol = "net_stage2"
	}
	query := fmt.Sprintf(`
		UPDATE whack_sessions
		SET %[1]s = 0, updated_at = NOW()
		WHERE session_id = $1 AND %[1]s > 0
		RETURNING (SELECT %[1]s FROM whack_sessions WHERE session_id = $1)`, netCol)

	var held int64
	err := r.db.QueryRow(ctx, query, id).Scan(&held)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, 0, nil
		}
		return 0, 0, fmt.Errorf("%s: %w", ErrMsgFailedToUpdateSession, err)
	}
	return held, 1, nil
}

// FinalizeSession moves the session from the expected status to a terminal one
func (r *SessionRepository) FinalizeSession(ctx context.Context, id uuid.UUID, expected domain.SessionStatus, settlement domain.Settlement) (int64, error) {
	query := `
		UPDATE whack_sessions
		SET status = $1, outcome = $2, final_payout = $3,
		    final_multiplier_tenths = $4,
		    pick_stage2 = CASE WHEN $5 > 0 THEN $5 ELSE pick_stage2 END,
		    pending_payout = 0, pending_multiplier_tenths = 0,
		    updated_at = NOW()
		WHERE session_id = $6 AND status = $7`

	tag, err := r.db.Exec(ctx, query,
		domain.StatusResolved, settlement.Outcome, settlement.Payout,
		settlement.MultiplierTenths, settlement.PickStage2,
		id, expected,
	)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", ErrMsgFailedToUpdateSession, err)
	}
	return tag.RowsAffected(), nil
}

// CancelSession marks the session CANCELLED from the expected status
func (r *SessionRepository) CancelSession(ctx context.Context, id uuid.UUID, expected domain.SessionStatus) (int64, error) {
	return r.ClaimStatus(ctx, id, expected, domain.StatusCancelled)
}

// ListExpired returns sessions past their deadline still in an expirable status
func (r *SessionRepository) ListExpired(ctx context.Context, now time.Time, limit int) ([]*domain.Session, error) {
	query := `SELECT ` + sessionColumns + ` FROM whack_sessions
		WHERE expires_at < $1 AND status IN ($2, $3, $4)
		ORDER BY expires_at
		LIMIT $5`

	rows, err := r.db.Query(ctx, query, now,
		domain.StatusChoosing, domain.StatusDecide, domain.StatusChoosing2, limit)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToListSessions, err)
	}
	defer rows.Close()

	var sessions []*domain.Session
	for rows.Next() {
		s, err := scanSession(rows)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedToListSessions, err)
		}
		sessions = append(sessions, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToListSessions, err)
	}
	return sessions, nil
}
