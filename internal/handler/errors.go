package handler

// Generic HTTP error messages for client responses.
// These intentionally do not expose internal error details.
const (
	ErrMsgInvalidRequest        = "Invalid request body"
	ErrMsgInvalidRequestSummary = "Invalid request"

	// Query parameter error messages
	ErrMsgMissingQueryParam = "Missing %s query parameter"

	// Session error messages
	ErrMsgInvalidSessionID   = "Invalid session ID"
	ErrMsgSessionNotFoundHTTP = "Session not found"

	// Amount error messages
	ErrMsgInvalidAmount = "Invalid amount"

	// Admin error messages
	ErrMsgPoolRequired   = "pool is required"
	ErrMsgChatIDRequired = "chat_id is required"
)

// Success messages for API responses
const (
	MsgRailsPaused      = "Wagering paused"
	MsgRailsResumed     = "Wagering resumed"
	MsgBlacklistUpdated = "Blacklist flag updated"
	MsgPoolUpdated      = "Pool updated"
	MsgShillRecorded    = "Shill message recorded"
)
