package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Rails / configuration errors
	ErrMsgRailsPaused = "rails are paused"

	// Validation errors
	ErrMsgInvalidSlot  = "slot must be between 1 and 6"
	ErrMsgInvalidBet   = "bet must be positive"
	ErrMsgPickRequired = "pick a slot first"

	// Player errors
	ErrMsgPlayerNotFound      = "player not found"
	ErrMsgPlayerBlacklisted   = "player is blacklisted"
	ErrMsgInsufficientBalance = "insufficient balance"

	// Pool errors
	ErrMsgPoolUnavailable           = "pool is unavailable"
	ErrMsgBetBelowMinimum           = "bet is below the minimum"
	ErrMsgBetAboveMaximum           = "bet exceeds the pool max bet"
	ErrMsgPoolCannotCoverWorstCase  = "pool cannot cover the worst-case payout"
	ErrMsgPoolInsufficientForPayout = "pool cannot cover the payout"

	// Session lifecycle errors
	ErrMsgSessionNotFound        = "session not found"
	ErrMsgSessionExpired         = "session expired"
	ErrMsgInvalidStateTransition = "operation not valid in current state"
	ErrMsgCannotCancel           = "cannot cancel in current state"

	// Admin surface errors
	ErrMsgConfigNotFound = "game config not found"
	ErrMsgChatNotFound   = "chat not found"
)

// Common domain errors
// These errors should be used consistently across all layers of the
// application. Wrap with fmt.Errorf("%w: %s", domain.ErrXxx, details) for
// additional context. Every error here is a refused operation: the engine
// checks them before any state mutation, so a failed call leaves all
// stores untouched.
var (
	// Rails / configuration errors
	ErrRailsPaused = errors.New(ErrMsgRailsPaused)

	// Validation errors
	ErrInvalidSlot  = errors.New(ErrMsgInvalidSlot)
	ErrInvalidBet   = errors.New(ErrMsgInvalidBet)
	ErrPickRequired = errors.New(ErrMsgPickRequired)

	// Player errors
	ErrPlayerNotFound      = errors.New(ErrMsgPlayerNotFound)
	ErrPlayerBlacklisted   = errors.New(ErrMsgPlayerBlacklisted)
	ErrInsufficientBalance = errors.New(ErrMsgInsufficientBalance)

	// Pool errors
	ErrPoolUnavailable           = errors.New(ErrMsgPoolUnavailable)
	ErrBetBelowMinimum           = errors.New(ErrMsgBetBelowMinimum)
	ErrBetAboveMaximum           = errors.New(ErrMsgBetAboveMaximum)
	ErrPoolCannotCoverWorstCase  = errors.New(ErrMsgPoolCannotCoverWorstCase)
	ErrPoolInsufficientForPayout = errors.New(ErrMsgPoolInsufficientForPayout)

	// Session lifecycle errors
	ErrSessionNotFound        = errors.New(ErrMsgSessionNotFound)
	ErrSessionExpired         = errors.New(ErrMsgSessionExpired)
	ErrInvalidStateTransition = errors.New(ErrMsgInvalidStateTransition)
	ErrCannotCancel           = errors.New(ErrMsgCannotCancel)

	// Admin surface errors
	ErrConfigNotFound = errors.New(ErrMsgConfigNotFound)
	ErrChatNotFound   = errors.New(ErrMsgChatNotFound)
)
