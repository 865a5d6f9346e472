package worker

// ============================================================================
// Log Messages - Worker Pool
// ============================================================================

// LogMsgWorkerJobFailed is logged when a worker fails to process a job
const LogMsgWorkerJobFailed = "Worker job failed"

// ============================================================================
// Log Messages - Sweep Job
// ============================================================================

// Log messages for expired-session sweeping
const (
	LogMsgSweepStarting  = "Expiry sweep starting"
	LogMsgSweepCompleted = "Expiry sweep completed"
	LogMsgSweepFailed    = "Expiry sweep failed"
)

// SweepTimeout bounds one sweep pass; a stuck pass must not pin a pool
// worker forever
const SweepTimeoutSeconds = 30

// ============================================================================
// Test Configuration
// ============================================================================

// Test pool configuration values used in pool_test.go
const (
	TestWorkerCount           = 2
	TestQueueSize             = 10
	TestExpectedJobCount      = 2
	TestWorkerProcessWaitTime = 100 // milliseconds
)
