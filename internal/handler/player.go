package handler

import (
	"net/http"
	"strconv"

	"github.com/burrowlabs/whack-engine/internal/domain"
	"github.com/burrowlabs/whack-engine/internal/ledger"
	"github.com/burrowlabs/whack-engine/internal/logger"
	"github.com/burrowlabs/whack-engine/internal/money"
	"github.com/burrowlabs/whack-engine/internal/player"
)

// PlayerHandler exposes player registration and profile reads
type PlayerHandler struct {
	service player.Service
	audit   *ledger.Recorder
}

func NewPlayerHandler(service player.Service, audit *ledger.Recorder) *PlayerHandler {
	return &PlayerHandler{service: service, audit: audit}
}

type RegisterPlayerRequest struct {
	PlayerID  string `json:"player_id" validate:"required,max=64"`
	Handle    string `json:"handle" validate:"max=64"`
	FirstName string `json:"first_name" validate:"max=64"`
	IsBot     bool   `json:"is_bot"`
}

// PlayerResponse is the profile projection with the balance formatted
type PlayerResponse struct {
	PlayerID    string `json:"player_id"`
	Handle      string `json:"handle,omitempty"`
	FirstName   string `json:"first_name,omitempty"`
	Balance     string `json:"balance"`
	Blacklisted bool   `json:"blacklisted"`
}

func playerResponse(p *domain.PlayerBalance) PlayerResponse {
	return PlayerResponse{
		PlayerID:    p.PlayerID,
		Handle:      p.Handle,
		FirstName:   p.FirstName,
		Balance:     money.Format(p.Balance),
		Blacklisted: p.Blacklisted,
	}
}

func (h *PlayerHandler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	var req RegisterPlayerRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Register player"); err != nil {
		return
	}

	p, err := h.service.Register(r.Context(), domain.PlayerIdentity{
		PlayerID:  req.PlayerID,
		Handle:    req.Handle,
		FirstName: req.FirstName,
		IsBot:     req.IsBot,
	})
	if err != nil {
		logger.FromContext(r.Context()).Error("Failed to register player", "error", err)
		statusCode, userMsg := mapServiceErrorToUserMessage(err)
		respondError(w, statusCode, userMsg)
		return
	}

	respondJSON(w, http.StatusOK, playerResponse(p))
}

func (h *PlayerHandler) HandleGetPlayer(w http.ResponseWriter, r *http.Request) {
	playerID, ok := GetQueryParam(r, w, "player_id")
	if !ok {
		return
	}

	p, err := h.service.GetPlayer(r.Context(), playerID)
	if err != nil {
		statusCode, userMsg := mapServiceErrorToUserMessage(err)
		respondError(w, statusCode, userMsg)
		return
	}

	respondJSON(w, http.StatusOK, playerResponse(p))
}

// HandleGetHistory lists a session's audit trail
func (h *PlayerHandler) HandleGetHistory(w http.ResponseWriter, r *http.Request) {
	subjectID, ok := GetQueryParam(r, w, "session_id")
	if !ok {
		return
	}

	limitStr := GetOptionalQueryParam(r, "limit", "50")
	limit, err := strconv.Atoi(limitStr)
	if err != nil || limit <= 0 || limit > 500 {
		http.Error(w, ErrMsgInvalidRequestSummary, http.StatusBadRequest)
		return
	}

	entries, err := h.audit.History(r.Context(), subjectID, limit)
	if err != nil {
		logger.FromContext(r.Context()).Error("Failed to get ledger history", "error", err)
		statusCode, userMsg := mapServiceErrorToUserMessage(err)
		respondError(w, statusCode, userMsg)
		return
	}

	respondJSON(w, http.StatusOK, entries)
}
