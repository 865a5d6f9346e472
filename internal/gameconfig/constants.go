package gameconfig

// ============================================================================
// Defaults
// ============================================================================

const (
	DefaultCaption          = "Whack-a-Wombat"
	DefaultShillIntervalSec = 900
)

// DefaultQuickBets are the suggested wager buttons, in whole tokens
var DefaultQuickBets = []int64{1, 3, 5}

// ============================================================================
// Log Messages
// ============================================================================

const (
	LogMsgUpdateCalled     = "UpdateConfig called"
	LogMsgRailsPausedSet   = "Rails paused flag updated"
	LogMsgChatRegistered   = "Chat registered"
	LogMsgShillTouched     = "Chat shill message recorded"
)

// ============================================================================
// Error Messages
// ============================================================================

const (
	ErrContextFailedToEnsureConfig = "failed to ensure config"
	ErrContextFailedToGetConfig    = "failed to get config"
	ErrContextFailedToUpdateConfig = "failed to update config"
	ErrContextFailedToUpdateChat   = "failed to update chat state"
)
