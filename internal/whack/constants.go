package whack

import "time"

// ============================================================================
// Wagering Economics
// ============================================================================

// FeeBps is the house fee taken from every bet, in basis points (3%).
// The fee is floored, so the net amount settled into the pool rounds up.
const FeeBps = 300

// BpsDenominator converts basis points to a fraction
const BpsDenominator = 10000

// Stage2MultiplierWhole is the flat stage-2 payout multiplier
const Stage2MultiplierWhole = 5

// PickWindow is how long a player has to pick and confirm in each stage.
// The window restarts when a stage-1 win is held and when stage 2 begins.
const PickWindow = 2 * time.Minute

// SweepBatchSize caps how many expired sessions one sweep pass handles
const SweepBatchSize = 100

// ============================================================================
// Cancel / Sweep Reasons
// ============================================================================

const (
	CancelReasonPlayer  = "player"
	CancelReasonExpired = "expired"
)

// ============================================================================
// Log Messages
// ============================================================================

// Log operation identifiers
const (
	LogMsgStartCalled    = "Start called"
	LogMsgSelectCalled   = "Select called"
	LogMsgConfirmCalled  = "Confirm called"
	LogMsgCollectCalled  = "Collect called"
	LogMsgContinueCalled = "Continue called"
	LogMsgCancelCalled   = "Cancel called"
	LogMsgSweepStarted   = "Expiry sweep started"
)

// Warning/Info messages
const (
	LogMsgPayoutClaimReleased = "Payout claim released after pool debit failure"
	LogMsgSessionSwept        = "Expired session swept"
	LogMsgSweepFailed         = "Failed to sweep expired session"
)

// ============================================================================
// Error Messages (local to whack service)
// ============================================================================

// Error context messages for wrapped errors
const (
	ErrContextFailedToGetConfig      = "failed to get game config"
	ErrContextFailedToGetPlayer      = "failed to get player"
	ErrContextFailedToEnsurePlayer   = "failed to ensure player"
	ErrContextFailedToGetPool        = "failed to get pool"
	ErrContextFailedToGetSession     = "failed to get session"
	ErrContextFailedToCreateSession  = "failed to create session"
	ErrContextFailedToUpdateSession  = "failed to update session"
	ErrContextFailedToDebitPlayer    = "failed to debit player"
	ErrContextFailedToCreditPlayer   = "failed to credit player"
	ErrContextFailedToCreditPool     = "failed to credit pool"
	ErrContextFailedToDebitPool      = "failed to debit pool"
	ErrContextFailedToListExpired    = "failed to list expired sessions"
	ErrContextFailedToReleaseClaim   = "failed to release payout claim"
)
