package worker

import (
	"context"
	"time"

	"github.com/burrowlabs/whack-engine/internal/logger"
	"github.com/burrowlabs/whack-engine/internal/whack"
)

// SweepJob cancels or force-settles sessions whose pick window has lapsed.
// It is scheduled at a fixed interval and is safe to run concurrently with
// live play: every transition it triggers goes through the same conditional
// writes the request path uses.
type SweepJob struct {
	service whack.Service
}

// NewSweepJob creates a sweep job backed by the wagering service
func NewSweepJob(service whack.Service) *SweepJob {
	return &SweepJob{service: service}
}

// Process runs one sweep pass
func (j *SweepJob) Process(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, SweepTimeoutSeconds*time.Second)
	defer cancel()

	log := logger.FromContext(ctx)
	log.Debug(LogMsgSweepStarting)

	swept, err := j.service.SweepExpired(ctx)
	if err != nil {
		log.Error(LogMsgSweepFailed, "error", err)
		return err
	}

	if swept > 0 {
		log.Info(LogMsgSweepCompleted, "swept", swept)
	}
	return nil
}
