package handler

import (
	"net/http"

	"github.com/burrowlabs/whack-engine/internal/domain"
	"github.com/burrowlabs/whack-engine/internal/gameconfig"
	"github.com/burrowlabs/whack-engine/internal/logger"
	"github.com/burrowlabs/whack-engine/internal/money"
	"github.com/burrowlabs/whack-engine/internal/player"
	"github.com/burrowlabs/whack-engine/internal/treasury"
)

// AdminHandler exposes the operator surface: rails pause, config updates,
// pool management, player credits and the blacklist.
type AdminHandler struct {
	configSvc   gameconfig.Service
	treasurySvc treasury.Service
	playerSvc   player.Service
}

func NewAdminHandler(configSvc gameconfig.Service, treasurySvc treasury.Service, playerSvc player.Service) *AdminHandler {
	return &AdminHandler{
		configSvc:   configSvc,
		treasurySvc: treasurySvc,
		playerSvc:   playerSvc,
	}
}

// ---- Rails ----

type SetRailsRequest struct {
	Paused bool `json:"paused"`
}

func (h *AdminHandler) HandleSetRails(w http.ResponseWriter, r *http.Request) {
	var req SetRailsRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Set rails"); err != nil {
		return
	}

	if err := h.configSvc.SetRailsPaused(r.Context(), req.Paused); err != nil {
		logger.FromContext(r.Context()).Error("Failed to set rails", "error", err)
		statusCode, userMsg := mapServiceErrorToUserMessage(err)
		respondError(w, statusCode, userMsg)
		return
	}

	msg := MsgRailsResumed
	if req.Paused {
		msg = MsgRailsPaused
	}
	respondJSON(w, http.StatusOK, SuccessResponse{Message: msg})
}

// ---- Game config ----

// UpdateConfigRequest mirrors domain.GameConfigUpdate with the bet
// threshold expressed as a decimal string.
type UpdateConfigRequest struct {
	MinBet             *string `json:"min_bet,omitempty" validate:"omitempty,amount"`
	Caption            *string `json:"caption,omitempty" validate:"omitempty,max=128"`
	ImageURL           *string `json:"image_url,omitempty" validate:"omitempty,max=512"`
	BannerWinNormalURL *string `json:"banner_win_normal_url,omitempty" validate:"omitempty,max=512"`
	BannerWinGoldenURL *string `json:"banner_win_golden_url,omitempty" validate:"omitempty,max=512"`
	BannerWinBothURL   *string `json:"banner_win_both_url,omitempty" validate:"omitempty,max=512"`
	BannerLoseURL      *string `json:"banner_lose_url,omitempty" validate:"omitempty,max=512"`
	BannerTauntURL     *string `json:"banner_taunt_url,omitempty" validate:"omitempty,max=512"`
	QuickBets          []int64 `json:"quick_bets,omitempty"`
	DMOnly             *bool   `json:"dm_only,omitempty"`
	AutoDelete         *bool   `json:"auto_delete,omitempty"`
}

func (h *AdminHandler) HandleGetConfig(w http.ResponseWriter, r *http.Request) {
	cfg, err := h.configSvc.GetConfig(r.Context())
	if err != nil {
		statusCode, userMsg := mapServiceErrorToUserMessage(err)
		respondError(w, statusCode, userMsg)
		return
	}
	respondJSON(w, http.StatusOK, cfg)
}

func (h *AdminHandler) HandleUpdateConfig(w http.ResponseWriter, r *http.Request) {
	var req UpdateConfigRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Update config"); err != nil {
		return
	}

	update := domain.GameConfigUpdate{
		Caption:            req.Caption,
		ImageURL:           req.ImageURL,
		BannerWinNormalURL: req.BannerWinNormalURL,
		BannerWinGoldenURL: req.BannerWinGoldenURL,
		BannerWinBothURL:   req.BannerWinBothURL,
		BannerLoseURL:      req.BannerLoseURL,
		BannerTauntURL:     req.BannerTauntURL,
		QuickBets:          req.QuickBets,
		DMOnly:             req.DMOnly,
		AutoDelete:         req.AutoDelete,
	}
	if req.MinBet != nil {
		minBet, err := money.Parse(*req.MinBet)
		if err != nil {
			http.Error(w, ErrMsgInvalidAmount, http.StatusBadRequest)
			return
		}
		update.MinBet = &minBet
	}

	cfg, err := h.configSvc.UpdateConfig(r.Context(), update)
	if err != nil {
		logger.FromContext(r.Context()).Error("Failed to update config", "error", err)
		statusCode, userMsg := mapServiceErrorToUserMessage(err)
		respondError(w, statusCode, userMsg)
		return
	}

	respondJSON(w, http.StatusOK, cfg)
}

// ---- Treasury ----

// PoolResponse formats pool balances for operators
type PoolResponse struct {
	PoolID    string `json:"pool_id"`
	Enabled   bool   `json:"enabled"`
	Balance   string `json:"balance"`
	MaxBet    string `json:"max_bet"`
	MaxBetBps int    `json:"max_bet_bps"`
}

func poolResponse(p *domain.TreasuryPool) PoolResponse {
	return PoolResponse{
		PoolID:    p.PoolID,
		Enabled:   p.Enabled,
		Balance:   money.Format(p.Balance),
		MaxBet:    money.Format(p.MaxBet()),
		MaxBetBps: p.MaxBetBps,
	}
}

func (h *AdminHandler) HandleGetPool(w http.ResponseWriter, r *http.Request) {
	poolID, ok := GetQueryParam(r, w, "pool")
	if !ok {
		return
	}

	pool, err := h.treasurySvc.GetPool(r.Context(), poolID)
	if err != nil {
		statusCode, userMsg := mapServiceErrorToUserMessage(err)
		respondError(w, statusCode, userMsg)
		return
	}
	respondJSON(w, http.StatusOK, poolResponse(pool))
}

type TopUpPoolRequest struct {
	Pool   string `json:"pool" validate:"required,max=32"`
	Amount string `json:"amount" validate:"required,amount"`
}

func (h *AdminHandler) HandleTopUpPool(w http.ResponseWriter, r *http.Request) {
	var req TopUpPoolRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Top up pool"); err != nil {
		return
	}

	amount, err := money.Parse(req.Amount)
	if err != nil {
		http.Error(w, ErrMsgInvalidAmount, http.StatusBadRequest)
		return
	}

	pool, err := h.treasurySvc.TopUp(r.Context(), req.Pool, amount)
	if err != nil {
		logger.FromContext(r.Context()).Error("Failed to top up pool", "error", err)
		statusCode, userMsg := mapServiceErrorToUserMessage(err)
		respondError(w, statusCode, userMsg)
		return
	}

	respondJSON(w, http.StatusOK, poolResponse(pool))
}

type SetPoolEnabledRequest struct {
	Pool    string `json:"pool" validate:"required,max=32"`
	Enabled bool   `json:"enabled"`
}

func (h *AdminHandler) HandleSetPoolEnabled(w http.ResponseWriter, r *http.Request) {
	var req SetPoolEnabledRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Set pool enabled"); err != nil {
		return
	}

	if err := h.treasurySvc.SetEnabled(r.Context(), req.Pool, req.Enabled); err != nil {
		logger.FromContext(r.Context()).Error("Failed to set pool enabled", "error", err)
		statusCode, userMsg := mapServiceErrorToUserMessage(err)
		respondError(w, statusCode, userMsg)
		return
	}

	respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgPoolUpdated})
}

type SetMaxBetRequest struct {
	Pool      string `json:"pool" validate:"required,max=32"`
	MaxBetBps int    `json:"max_bet_bps" validate:"required,min=1,max=10000"`
}

func (h *AdminHandler) HandleSetMaxBet(w http.ResponseWriter, r *http.Request) {
	var req SetMaxBetRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Set max bet"); err != nil {
		return
	}

	if err := h.treasurySvc.SetMaxBetBps(r.Context(), req.Pool, req.MaxBetBps); err != nil {
		logger.FromContext(r.Context()).Error("Failed to set max bet", "error", err)
		statusCode, userMsg := mapServiceErrorToUserMessage(err)
		respondError(w, statusCode, userMsg)
		return
	}

	respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgPoolUpdated})
}

// ---- Players ----

type CreditPlayerRequest struct {
	PlayerID string `json:"player_id" validate:"required,max=64"`
	Amount   string `json:"amount" validate:"required,amount"`
}

func (h *AdminHandler) HandleCreditPlayer(w http.ResponseWriter, r *http.Request) {
	var req CreditPlayerRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Credit player"); err != nil {
		return
	}

	amount, err := money.Parse(req.Amount)
	if err != nil {
		http.Error(w, ErrMsgInvalidAmount, http.StatusBadRequest)
		return
	}

	p, err := h.playerSvc.Credit(r.Context(), req.PlayerID, amount)
	if err != nil {
		logger.FromContext(r.Context()).Error("Failed to credit player", "error", err)
		statusCode, userMsg := mapServiceErrorToUserMessage(err)
		respondError(w, statusCode, userMsg)
		return
	}

	respondJSON(w, http.StatusOK, playerResponse(p))
}

type SetBlacklistRequest struct {
	PlayerID    string `json:"player_id" validate:"required,max=64"`
	Blacklisted bool   `json:"blacklisted"`
}

func (h *AdminHandler) HandleSetBlacklist(w http.ResponseWriter, r *http.Request) {
	var req SetBlacklistRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Set blacklist"); err != nil {
		return
	}

	if err := h.playerSvc.SetBlacklisted(r.Context(), req.PlayerID, req.Blacklisted); err != nil {
		logger.FromContext(r.Context()).Error("Failed to set blacklist", "error", err)
		statusCode, userMsg := mapServiceErrorToUserMessage(err)
		respondError(w, statusCode, userMsg)
		return
	}

	respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgBlacklistUpdated})
}

// ---- Chats ----

type RegisterChatRequest struct {
	ChatID           string `json:"chat_id" validate:"required,max=64"`
	ShillIntervalSec int    `json:"shill_interval_sec" validate:"omitempty,min=30,max=86400"`
}

func (h *AdminHandler) HandleRegisterChat(w http.ResponseWriter, r *http.Request) {
	var req RegisterChatRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Register chat"); err != nil {
		return
	}

	state, err := h.configSvc.RegisterChat(r.Context(), req.ChatID, req.ShillIntervalSec)
	if err != nil {
		logger.FromContext(r.Context()).Error("Failed to register chat", "error", err)
		statusCode, userMsg := mapServiceErrorToUserMessage(err)
		respondError(w, statusCode, userMsg)
		return
	}

	respondJSON(w, http.StatusOK, state)
}

func (h *AdminHandler) HandleListChats(w http.ResponseWriter, r *http.Request) {
	states, err := h.configSvc.ListChatStates(r.Context())
	if err != nil {
		statusCode, userMsg := mapServiceErrorToUserMessage(err)
		respondError(w, statusCode, userMsg)
		return
	}
	respondJSON(w, http.StatusOK, states)
}

type TouchShillRequest struct {
	ChatID    string `json:"chat_id" validate:"required,max=64"`
	MessageID int64  `json:"message_id" validate:"required"`
}

func (h *AdminHandler) HandleTouchShill(w http.ResponseWriter, r *http.Request) {
	var req TouchShillRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Touch shill"); err != nil {
		return
	}

	if err := h.configSvc.TouchChatShill(r.Context(), req.ChatID, req.MessageID); err != nil {
		logger.FromContext(r.Context()).Error("Failed to touch shill", "error", err)
		statusCode, userMsg := mapServiceErrorToUserMessage(err)
		respondError(w, statusCode, userMsg)
		return
	}

	respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgShillRecorded})
}
