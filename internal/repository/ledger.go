package repository

import (
	"context"

	"github.com/burrowlabs/whack-engine/internal/domain"
)

// Ledger defines the data access interface for the append-only audit ledger.
type Ledger interface {
	// Append inserts the entry, keyed by its idempotency key. Returns
	// false without error when an entry with the same key already exists.
	Append(ctx context.Context, entry domain.LedgerEntry) (bool, error)

	// ListBySubject returns entries for a subject (session or pool),
	// newest first.
	ListBySubject(ctx context.Context, subjectID string, limit int) ([]domain.LedgerEntry, error)
}
