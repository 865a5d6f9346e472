package domain

import (
	"time"

	"github.com/google/uuid"
)

// SessionStatus represents the current state of a wagering session
type SessionStatus string

const (
	StatusChoosing  SessionStatus = "CHOOSING"
	StatusDecide    SessionStatus = "DECIDE"
	StatusChoosing2 SessionStatus = "CHOOSING2"
	StatusResolved  SessionStatus = "RESOLVED"
	StatusCancelled SessionStatus = "CANCELLED"

	// StatusPaying is a transient claim held while a payout debit is in
	// flight. It is never surfaced to callers; a payout path moves
	// DECIDE/CHOOSING2 -> PAYING -> RESOLVED, or releases the claim back
	// on a failed pool debit.
	StatusPaying SessionStatus = "PAYING"
)

// FoundKind identifies which hidden slot a stage-1 hit uncovered
type FoundKind string

const (
	FoundNone   FoundKind = ""
	FoundNormal FoundKind = "NORMAL"
	FoundGolden FoundKind = "GOLDEN"
)

// Outcome is the terminal result of a session
type Outcome string

const (
	OutcomeNone       Outcome = ""
	OutcomeMiss       Outcome = "MISS"
	OutcomeNormal     Outcome = "NORMAL"
	OutcomeGolden     Outcome = "GOLDEN"
	OutcomeSecondMiss Outcome = "SECOND_MISS"
	OutcomeFiveX      Outcome = "FIVE_X"
)

// Slot bounds for the six hidden holes
const (
	SlotMin = 1
	SlotMax = 6
)

// Multipliers are expressed in tenths so that all payout arithmetic stays
// on integers: payout = bet * tenths / 10.
const (
	MultiplierNormalTenths = 17
	MultiplierGoldenTenths = 22
	MultiplierFiveXTenths  = 50
)

// Session represents one wagering attempt, spanning one or two stages.
// All amounts are fixed-point integers in the smallest token unit.
type Session struct {
	ID       uuid.UUID     `json:"id"`
	PlayerID string        `json:"player_id"`
	PoolID   string        `json:"pool_id"`
	Stage    int           `json:"stage"`
	Status   SessionStatus `json:"status"`

	BetStage1 int64 `json:"bet_stage1"`
	FeeStage1 int64 `json:"fee_stage1"`
	NetStage1 int64 `json:"net_stage1"`

	BetStage2 int64 `json:"bet_stage2,omitempty"`
	FeeStage2 int64 `json:"fee_stage2,omitempty"`
	NetStage2 int64 `json:"net_stage2,omitempty"`

	// Picks for the current stage; 0 means no pick yet
	PickStage1 int `json:"pick_stage1,omitempty"`
	PickStage2 int `json:"pick_stage2,omitempty"`

	// Hidden prize slots, fixed at creation and never re-rolled.
	// Not revealed to the player until the session resolves.
	NormalSlot int `json:"-"`
	GoldenSlot int `json:"-"`

	FoundKind FoundKind `json:"found_kind,omitempty"`
	FoundSlot int       `json:"found_slot,omitempty"`

	// Earned-but-uncollected stage-1 win, consumed exactly once
	PendingPayout           int64 `json:"pending_payout,omitempty"`
	PendingMultiplierTenths int   `json:"pending_multiplier_tenths,omitempty"`

	Outcome               Outcome `json:"outcome,omitempty"`
	FinalPayout           int64   `json:"final_payout,omitempty"`
	FinalMultiplierTenths int     `json:"final_multiplier_tenths,omitempty"`

	ExpiresAt time.Time `json:"expires_at"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Expired reports whether the session's pick window has closed
func (s *Session) Expired(now time.Time) bool {
	return now.After(s.ExpiresAt)
}

// Terminal reports whether the session can no longer be mutated
func (s *Session) Terminal() bool {
	return s.Status == StatusResolved || s.Status == StatusCancelled
}

// Settlement carries the terminal fields written when a session resolves
type Settlement struct {
	Stage            int
	Outcome          Outcome
	Payout           int64
	MultiplierTenths int
	PickStage2       int // recorded on stage-2 settlements
}

// Stage1Win carries the fields written when a stage-1 pick hits
type Stage1Win struct {
	FoundKind               FoundKind
	FoundSlot               int
	Outcome                 Outcome
	PendingPayout           int64
	PendingMultiplierTenths int
}

// SessionView is the caller-facing projection of a session. The hidden
// slots are only populated once the session has resolved.
type SessionView struct {
	ID       string        `json:"id"`
	PlayerID string        `json:"player_id"`
	Stage    int           `json:"stage"`
	Status   SessionStatus `json:"status"`

	Bet       string `json:"bet"`
	BetStage2 string `json:"bet_stage2,omitempty"`

	Pick  int `json:"pick,omitempty"`
	Pick2 int `json:"pick2,omitempty"`

	FoundKind FoundKind `json:"found_kind,omitempty"`
	FoundSlot int       `json:"found_slot,omitempty"`

	PendingPayout           string `json:"pending_payout,omitempty"`
	PendingMultiplierTenths int    `json:"pending_multiplier_tenths,omitempty"`

	Outcome               Outcome `json:"outcome,omitempty"`
	Payout                string  `json:"payout,omitempty"`
	FinalMultiplierTenths int     `json:"final_multiplier_tenths,omitempty"`

	// Revealed only when Status is RESOLVED
	NormalSlot int `json:"normal_slot,omitempty"`
	GoldenSlot int `json:"golden_slot,omitempty"`

	ExpiresAt time.Time `json:"expires_at"`
}
