package postgres

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/burrowlabs/whack-engine/internal/domain"
)

// LedgerRepository implements the ledger repository for PostgreSQL
type LedgerRepository struct {
	db *pgxpool.Pool
}

// NewLedgerRepository creates a new LedgerRepository
func NewLedgerRepository(db *pgxpool.Pool) *LedgerRepository {
	return &LedgerRepository{db: db}
}

// Append inserts the entry; a duplicate idempotency key is a no-op.
// Returns whether a row was actually inserted.
func (r *LedgerRepository) Append(ctx context.Context, entry domain.LedgerEntry) (bool, error) {
	var metadata []byte
	if entry.Metadata != nil {
		var err error
		metadata, err = json.Marshal(entry.Metadata)
		if err != nil {
			return false, fmt.Errorf("%s: %w", ErrMsgFailedToAppendLedger, err)
		}
	}

	query := `
		INSERT INTO ledger_entries (idempotency_key, kind, subject_id, delta, metadata, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (idempotency_key) DO NOTHING`

	tag, err := r.db.Exec(ctx, query,
		entry.IdempotencyKey, entry.Kind, entry.SubjectID, entry.Delta, metadata, entry.CreatedAt,
	)
	if err != nil {
		return false, fmt.Errorf("%s: %w", ErrMsgFailedToAppendLedger, err)
	}
	return tag.RowsAffected() == 1, nil
}

// ListBySubject returns entries for a subject, newest first
func (r *LedgerRepository) ListBySubject(ctx context.Context, subjectID string, limit int) ([]domain.LedgerEntry, error) {
	query := `
		SELECT idempotency_key, kind, subject_id, delta, metadata, created_at
		FROM ledger_entries
		WHERE subject_id = $1
		ORDER BY created_at DESC
		LIMIT $2`

	rows, err := r.db.Query(ctx, query, subjectID, limit)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToListLedger, err)
	}
	defer rows.Close()

	var entries []domain.LedgerEntry
	for rows.Next() {
		var entry domain.LedgerEntry
		var metadata []byte
		if err := rows.Scan(&entry.IdempotencyKey, &entry.Kind, &entry.SubjectID, &entry.Delta, &metadata, &entry.CreatedAt); err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedToListLedger, err)
		}
		if len(metadata) > 0 {
			if err := json.Unmarshal(metadata, &entry.Metadata); err != nil {
				return nil, fmt.Errorf("%s: %w", ErrMsgFailedToListLedger, err)
			}
		}
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToListLedger, err)
	}
	return entries, nil
}
