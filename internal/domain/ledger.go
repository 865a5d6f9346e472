package domain

import (
	"fmt"
	"time"
)

// LedgerKind enumerates the balance-affecting operations the audit trail
// records
type LedgerKind string

const (
	LedgerBetLock     LedgerKind = "BET_LOCK"
	LedgerBetSettleIn LedgerKind = "BET_SETTLE_IN"
	LedgerFee         LedgerKind = "FEE"
	LedgerPayout      LedgerKind = "PAYOUT"
	LedgerTreasuryOut LedgerKind = "TREASURY_OUT"
	LedgerRefund      LedgerKind = "REFUND"
)

// LedgerEntry is one append-only audit record. Entries are write-once:
// a duplicate idempotency key is a no-op, which makes retried recording
// at-least-once safe.
type LedgerEntry struct {
	Kind           LedgerKind     `json:"kind"`
	IdempotencyKey string         `json:"idempotency_key"`
	SubjectID      string         `json:"subject_id"`
	Delta          int64          `json:"delta"`
	Metadata       map[string]any `json:"metadata,omitempty"`
	CreatedAt      time.Time      `json:"created_at"`
}

// LedgerKey derives the unique idempotency key for a session's
// balance-affecting operation at a given stage.
func LedgerKey(sessionID string, stage int, kind LedgerKind) string {
	return fmt.Sprintf("%s:%d:%s", sessionID, stage, kind)
}
