package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/burrowlabs/whack-engine/internal/domain"
)

// Standard response types for consistent API responses

// SuccessResponse represents a simple successful operation message
type SuccessResponse struct {
	Message string `json:"message"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error"`
}

// respondJSON sends a JSON response with the given status code and payload
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	buf := getBuffer()
	defer putBuffer(buf)

	if err := json.NewEncoder(buf).Encode(payload); err != nil {
		// Headers are already sent; all we can do is log
		slog.Error("Failed to encode JSON response", "error", err)
		return
	}
	if _, err := buf.WriteTo(w); err != nil {
		slog.Error("Failed to write response buffer", "error", err)
	}
}

// respondError sends a JSON error response
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, ErrorResponse{Error: message})
}

// User-facing error messages for service errors
const (
	ErrMsgGenericServerError = "Something went wrong"
	ErrMsgUnknownError       = "Unknown error"

	ErrMsgRailsPausedError       = "Wagering is paused right now. Try again later."
	ErrMsgInvalidSlotError       = "Pick a hole between 1 and 6"
	ErrMsgInvalidBetError        = "Invalid bet amount"
	ErrMsgPickRequiredError      = "Pick a hole first"
	ErrMsgPlayerNotFoundError    = "Player not found"
	ErrMsgBlacklistedError       = "You are not allowed to play"
	ErrMsgInsufficientFundsError = "Not enough tokens"
	ErrMsgPoolUnavailableError   = "The game is temporarily unavailable"
	ErrMsgBetBelowMinError       = "Bet is below the minimum"
	ErrMsgBetAboveMaxError       = "Bet is above the table maximum"
	ErrMsgPoolTooSmallError      = "The pool cannot cover that bet right now"
	ErrMsgPayoutUnavailableError = "Payout is temporarily unavailable. Your win is safe; try again."
	ErrMsgSessionNotFoundError   = "Session not found"
	ErrMsgSessionExpiredError    = "This round expired"
	ErrMsgWrongStateError        = "That move is not available right now"
	ErrMsgCannotCancelError      = "This round can no longer be cancelled"
	ErrMsgConfigMissingError     = "Game is not configured"
	ErrMsgChatNotFoundError      = "Chat not registered"
)

// mapServiceErrorToUserMessage maps domain errors to user-facing HTTP
// responses.
func mapServiceErrorToUserMessage(err error) (int, string) {
	if err == nil {
		return http.StatusInternalServerError, ErrMsgUnknownError
	}

	switch {
	case errors.Is(err, domain.ErrRailsPaused):
		return http.StatusServiceUnavailable, ErrMsgRailsPausedError
	case errors.Is(err, domain.ErrInvalidSlot):
		return http.StatusBadRequest, ErrMsgInvalidSlotError
	case errors.Is(err, domain.ErrInvalidBet):
		return http.StatusBadRequest, ErrMsgInvalidBetError
	case errors.Is(err, domain.ErrPickRequired):
		return http.StatusBadRequest, ErrMsgPickRequiredError
	case errors.Is(err, domain.ErrPlayerNotFound):
		return http.StatusNotFound, ErrMsgPlayerNotFoundError
	case errors.Is(err, domain.ErrPlayerBlacklisted):
		return http.StatusForbidden, ErrMsgBlacklistedError
	case errors.Is(err, domain.ErrInsufficientBalance):
		return http.StatusBadRequest, ErrMsgInsufficientFundsError
	case errors.Is(err, domain.ErrPoolUnavailable):
		return http.StatusServiceUnavailable, ErrMsgPoolUnavailableError
	case errors.Is(err, domain.ErrBetBelowMinimum):
		return http.StatusBadRequest, ErrMsgBetBelowMinError
	case errors.Is(err, domain.ErrBetAboveMaximum):
		return http.StatusBadRequest, ErrMsgBetAboveMaxError
	case errors.Is(err, domain.ErrPoolCannotCoverWorstCase):
		return http.StatusConflict, ErrMsgPoolTooSmallError
	case errors.Is(err, domain.ErrPoolInsufficientForPayout):
		return http.StatusConflict, ErrMsgPayoutUnavailableError
	case errors.Is(err, domain.ErrSessionNotFound):
		return http.StatusNotFound, ErrMsgSessionNotFoundError
	case errors.Is(err, domain.ErrSessionExpired):
		return http.StatusGone, ErrMsgSessionExpiredError
	case errors.Is(err, domain.ErrInvalidStateTransition):
		return http.StatusConflict, ErrMsgWrongStateError
	case errors.Is(err, domain.ErrCannotCancel):
		return http.StatusConflict, ErrMsgCannotCancelError
	case errors.Is(err, domain.ErrConfigNotFound):
		return http.StatusServiceUnavailable, ErrMsgConfigMissingError
	case errors.Is(err, domain.ErrChatNotFound):
		return http.StatusNotFound, ErrMsgChatNotFoundError
	}

	return http.StatusInternalServerError, ErrMsgGenericServerError
}
