package player

import "time"

// ============================================================================
// Cache Settings
// ============================================================================

// DefaultCacheSize is how many player identities the LRU holds
const DefaultCacheSize = 1000

// DefaultCacheTTL bounds how stale a cached identity may get
const DefaultCacheTTL = 5 * time.Minute

// ============================================================================
// Log Messages
// ============================================================================

const (
	LogMsgRegisterCalled    = "Register called"
	LogMsgCreditCalled      = "Credit called"
	LogMsgBlacklistCalled   = "SetBlacklisted called"
	LogMsgPlayerBlacklisted = "Player blacklist flag updated"
)

// ============================================================================
// Error Messages
// ============================================================================

const (
	ErrContextFailedToEnsurePlayer = "failed to ensure player"
	ErrContextFailedToGetPlayer    = "failed to get player"
	ErrContextFailedToCreditPlayer = "failed to credit player"
	ErrContextFailedToSetBlacklist = "failed to set blacklist flag"
)
