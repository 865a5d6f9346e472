package postgres

// PostgreSQL Error Codes
const (
	// PgErrorCodeUniqueViolation is the PostgreSQL error code for unique constraint violations
	PgErrorCodeUniqueViolation = "23505"
)

// Error Messages - Session Operations
const (
	ErrMsgFailedToCreateSession = "failed to create session"
	ErrMsgFailedToGetSession    = "failed to get session"
	ErrMsgFailedToUpdateSession = "failed to update session"
	ErrMsgFailedToListSessions  = "failed to list sessions"
)

// Error Messages - Player Operations
const (
	ErrMsgFailedToEnsurePlayer  = "failed to ensure player"
	ErrMsgFailedToGetPlayer     = "failed to get player"
	ErrMsgFailedToUpdateBalance = "failed to update balance"
)

// Error Messages - Treasury Operations
const (
	ErrMsgFailedToEnsurePool = "failed to ensure pool"
	ErrMsgFailedToGetPool    = "failed to get pool"
	ErrMsgFailedToUpdatePool = "failed to update pool"
)

// Error Messages - Ledger Operations
const (
	ErrMsgFailedToAppendLedger = "failed to append ledger entry"
	ErrMsgFailedToListLedger   = "failed to list ledger entries"
)

// Error Messages - Config Operations
const (
	ErrMsgFailedToEnsureConfig    = "failed to ensure game config"
	ErrMsgFailedToGetConfig       = "failed to get game config"
	ErrMsgFailedToUpdateConfig    = "failed to update game config"
	ErrMsgFailedToUpsertChatState = "failed to upsert chat state"
	ErrMsgFailedToGetChatState    = "failed to get chat state"
)
