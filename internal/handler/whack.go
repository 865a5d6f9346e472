package handler

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"github.com/burrowlabs/whack-engine/internal/domain"
	"github.com/burrowlabs/whack-engine/internal/logger"
	"github.com/burrowlabs/whack-engine/internal/money"
	"github.com/burrowlabs/whack-engine/internal/whack"
)

// WhackHandler exposes the wagering session lifecycle over HTTP
type WhackHandler struct {
	service whack.Service
}

func NewWhackHandler(service whack.Service) *WhackHandler {
	return &WhackHandler{service: service}
}

type StartSessionRequest struct {
	PlayerID  string `json:"player_id" validate:"required,max=64"`
	Handle    string `json:"handle" validate:"max=64"`
	FirstName string `json:"first_name" validate:"max=64"`
	IsBot     bool   `json:"is_bot"`
	Bet       string `json:"bet" validate:"required,amount"`
}

func (h *WhackHandler) HandleStart(w http.ResponseWriter, r *http.Request) {
	var req StartSessionRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Start session"); err != nil {
		return
	}

	bet, err := money.Parse(req.Bet)
	if err != nil {
		http.Error(w, ErrMsgInvalidAmount, http.StatusBadRequest)
		return
	}

	identity := domain.PlayerIdentity{
		PlayerID:  req.PlayerID,
		Handle:    req.Handle,
		FirstName: req.FirstName,
		IsBot:     req.IsBot,
	}

	view, err := h.service.Start(r.Context(), identity, bet)
	if err != nil {
		logger.FromContext(r.Context()).Error("Failed to start session", "error", err)
		statusCode, userMsg := mapServiceErrorToUserMessage(err)
		respondError(w, statusCode, userMsg)
		return
	}

	respondJSON(w, http.StatusCreated, view)
}

type SelectSlotRequest struct {
	PlayerID string `json:"player_id" validate:"required,max=64"`
	Slot     int    `json:"slot" validate:"required,min=1,max=6"`
}

func (h *WhackHandler) HandleSelect(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := sessionIDFromQuery(w, r)
	if !ok {
		return
	}

	var req SelectSlotRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Select slot"); err != nil {
		return
	}

	view, err := h.service.Select(r.Context(), req.PlayerID, sessionID, req.Slot)
	if err != nil {
		logger.FromContext(r.Context()).Error("Failed to select slot", "error", err)
		statusCode, userMsg := mapServiceErrorToUserMessage(err)
		respondError(w, statusCode, userMsg)
		return
	}

	respondJSON(w, http.StatusOK, view)
}

// SessionActionRequest covers the pick-window actions that only need the
// acting player.
type SessionActionRequest struct {
	PlayerID string `json:"player_id" validate:"required,max=64"`
}

func (h *WhackHandler) HandleConfirm(w http.ResponseWriter, r *http.Request) {
	h.handleAction(w, r, "Confirm pick", h.service.Confirm)
}

func (h *WhackHandler) HandleCollect(w http.ResponseWriter, r *http.Request) {
	h.handleAction(w, r, "Collect payout", h.service.Collect)
}

func (h *WhackHandler) HandleContinue(w http.ResponseWriter, r *http.Request) {
	h.handleAction(w, r, "Continue to stage two", h.service.Continue)
}

func (h *WhackHandler) HandleCancel(w http.ResponseWriter, r *http.Request) {
	h.handleAction(w, r, "Cancel session", h.service.Cancel)
}

// handleAction is shared by the body-identical session actions
func (h *WhackHandler) handleAction(w http.ResponseWriter, r *http.Request, actionName string, action func(ctx context.Context, playerID string, sessionID uuid.UUID) (*domain.SessionView, error)) {
	sessionID, ok := sessionIDFromQuery(w, r)
	if !ok {
		return
	}

	var req SessionActionRequest
	if err := DecodeAndValidateRequest(r, w, &req, actionName); err != nil {
		return
	}

	view, err := action(r.Context(), req.PlayerID, sessionID)
	if err != nil {
		logger.FromContext(r.Context()).Error("Failed to "+actionName, "error", err)
		statusCode, userMsg := mapServiceErrorToUserMessage(err)
		respondError(w, statusCode, userMsg)
		return
	}

	respondJSON(w, http.StatusOK, view)
}

func (h *WhackHandler) HandleGetSession(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := sessionIDFromQuery(w, r)
	if !ok {
		return
	}
	playerID, ok := GetQueryParam(r, w, "player_id")
	if !ok {
		return
	}

	view, err := h.service.GetSession(r.Context(), playerID, sessionID)
	if err != nil {
		statusCode, userMsg := mapServiceErrorToUserMessage(err)
		respondError(w, statusCode, userMsg)
		return
	}

	respondJSON(w, http.StatusOK, view)
}

func (h *WhackHandler) HandleGetActive(w http.ResponseWriter, r *http.Request) {
	playerID, ok := GetQueryParam(r, w, "player_id")
	if !ok {
		return
	}

	view, err := h.service.GetActiveSession(r.Context(), playerID)
	if err != nil {
		statusCode, userMsg := mapServiceErrorToUserMessage(err)
		respondError(w, statusCode, userMsg)
		return
	}

	respondJSON(w, http.StatusOK, view)
}

func sessionIDFromQuery(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	idStr, ok := GetQueryParam(r, w, "id")
	if !ok {
		return uuid.Nil, false
	}
	sessionID, err := uuid.Parse(idStr)
	if err != nil {
		http.Error(w, ErrMsgInvalidSessionID, http.StatusBadRequest)
		return uuid.Nil, false
	}
	return sessionID, true
}
