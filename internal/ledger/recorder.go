// Package ledger records balance-affecting operations to the append-only
// audit ledger. Recording is best effort: the funds movement has already
// happened by the time an entry is written, so a failed append is logged
// and counted but never fails the caller's operation.
package ledger

import (
	"context"
	"time"

	"github.com/burrowlabs/whack-engine/internal/domain"
	"github.com/burrowlabs/whack-engine/internal/logger"
	"github.com/burrowlabs/whack-engine/internal/metrics"
	"github.com/burrowlabs/whack-engine/internal/repository"
)

// Recorder writes audit entries for funds movements.
type Recorder struct {
	repo repository.Ledger
	now  func() time.Time
}

// NewRecorder creates a Recorder backed by the given repository.
func NewRecorder(repo repository.Ledger) *Recorder {
	return &Recorder{repo: repo, now: time.Now}
}

// Record appends one entry. Duplicate idempotency keys are silently
// ignored, so retried operations do not double-record.
func (r *Recorder) Record(ctx context.Context, kind domain.LedgerKind, key, subjectID string, delta int64, metadata map[string]any) {
	entry := domain.LedgerEntry{
		Kind:           kind,
		IdempotencyKey: key,
		SubjectID:      subjectID,
		Delta:          delta,
		Metadata:       metadata,
		CreatedAt:      r.now(),
	}

	inserted, err := r.repo.Append(ctx, entry)
	if err != nil {
		metrics.LedgerAppendFailures.WithLabelValues(string(kind)).Inc()
		logger.FromContext(ctx).Error("Failed to append ledger entry",
			"kind", kind, "key", key, "subject_id", subjectID, "delta", delta, "error", err)
		return
	}
	if !inserted {
		logger.FromContext(ctx).Debug("Ledger entry already recorded", "key", key)
	}
}

// RecordSession appends an entry keyed to a session's stage operation.
func (r *Recorder) RecordSession(ctx context.Context, sessionID string, stage int, kind domain.LedgerKind, delta int64, metadata map[string]any) {
	key := domain.LedgerKey(sessionID, stage, kind)
	r.Record(ctx, kind, key, sessionID, delta, metadata)
}

// History returns the recorded entries for a subject, newest first.
func (r *Recorder) History(ctx context.Context, subjectID string, limit int) ([]domain.LedgerEntry, error) {
	return r.repo.ListBySubject(ctx, subjectID, limit)
}
