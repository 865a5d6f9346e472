package treasury

// ============================================================================
// Log Messages
// ============================================================================

const (
	LogMsgProvisionCalled = "Provision called"
	LogMsgTopUpCalled     = "TopUp called"
	LogMsgSetEnabled      = "Pool enabled flag updated"
	LogMsgSetMaxBetBps    = "Pool max bet updated"
)

// ============================================================================
// Error Messages
// ============================================================================

const (
	ErrContextFailedToEnsurePool = "failed to ensure pool"
	ErrContextFailedToGetPool    = "failed to get pool"
	ErrContextFailedToCreditPool = "failed to credit pool"
	ErrContextFailedToUpdatePool = "failed to update pool"
)

// MaxBetBpsLimit bounds the configurable bet cap to 100% of the pool
const MaxBetBpsLimit = 10000
