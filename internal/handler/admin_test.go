package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/burrowlabs/whack-engine/internal/domain"
	"github.com/burrowlabs/whack-engine/internal/money"
)

func newAdminHandler(cfg *MockConfigService, tre *MockTreasuryService, ply *MockPlayerService) *AdminHandler {
	return NewAdminHandler(cfg, tre, ply)
}

func TestHandleSetRails(t *testing.T) {
	tests := []struct {
		name         string
		paused       bool
		expectedBody string
	}{
		{name: "Pause", paused: true, expectedBody: MsgRailsPaused},
		{name: "Resume", paused: false, expectedBody: MsgRailsResumed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := new(MockConfigService)
			cfg.On("SetRailsPaused", mock.Anything, tt.paused).Return(nil)
			h := newAdminHandler(cfg, new(MockTreasuryService), new(MockPlayerService))

			body, _ := json.Marshal(SetRailsRequest{Paused: tt.paused})
			req := httptest.NewRequest(http.MethodPost, "/api/v1/admin/rails", bytes.NewReader(body))
			rec := httptest.NewRecorder()

			h.HandleSetRails(rec, req)

			assert.Equal(t, http.StatusOK, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.expectedBody)
			cfg.AssertExpectations(t)
		})
	}
}

func TestHandleUpdateConfig(t *testing.T) {
	tests := []struct {
		name           string
		reqBody        interface{}
		setupMocks     func(*MockConfigService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:           "Invalid MinBet",
			reqBody:        map[string]string{"min_bet": "abc"},
			setupMocks:     func(mc *MockConfigService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   ErrMsgInvalidAmount,
		},
		{
			name:           "Caption Too Long",
			reqBody:        map[string]string{"caption": string(make([]byte, 200))},
			setupMocks:     func(mc *MockConfigService) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:    "Update Caption And MinBet",
			reqBody: map[string]interface{}{"caption": "Whack Night", "min_bet": "2"},
			setupMocks: func(mc *MockConfigService) {
				mc.On("UpdateConfig", mock.Anything, mock.MatchedBy(func(u domain.GameConfigUpdate) bool {
					return u.Caption != nil && *u.Caption == "Whack Night" &&
						u.MinBet != nil && *u.MinBet == 2*money.Unit
				})).Return(&domain.GameConfig{ConfigID: domain.ConfigID, Caption: "Whack Night", MinBet: 2 * money.Unit}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   "Whack Night",
		},
		{
			name:    "Config Missing",
			reqBody: map[string]interface{}{"dm_only": true},
			setupMocks: func(mc *MockConfigService) {
				mc.On("UpdateConfig", mock.Anything, mock.Anything).Return(nil, domain.ErrConfigNotFound)
			},
			expectedStatus: http.StatusServiceUnavailable,
			expectedBody:   ErrMsgConfigMissingError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := new(MockConfigService)
			tt.setupMocks(cfg)
			h := newAdminHandler(cfg, new(MockTreasuryService), new(MockPlayerService))

			body, _ := json.Marshal(tt.reqBody)
			req := httptest.NewRequest(http.MethodPatch, "/api/v1/admin/config", bytes.NewReader(body))
			rec := httptest.NewRecorder()

			h.HandleUpdateConfig(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)
			if tt.expectedBody != "" {
				assert.Contains(t, rec.Body.String(), tt.expectedBody)
			}
			cfg.AssertExpectations(t)
		})
	}
}

func TestHandleGetPool(t *testing.T) {
	tre := new(MockTreasuryService)
	tre.On("GetPool", mock.Anything, "whack").
		Return(&domain.TreasuryPool{PoolID: "whack", Enabled: true, Balance: 1000 * money.Unit, MaxBetBps: 1000}, nil)
	h := newAdminHandler(new(MockConfigService), tre, new(MockPlayerService))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/admin/pool?pool=whack", nil)
	rec := httptest.NewRecorder()

	h.HandleGetPool(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"balance":"1000"`)
	assert.Contains(t, rec.Body.String(), `"max_bet":"100"`)
	tre.AssertExpectations(t)
}

func TestHandleGetPool_MissingParam(t *testing.T) {
	h := newAdminHandler(new(MockConfigService), new(MockTreasuryService), new(MockPlayerService))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/admin/pool", nil)
	rec := httptest.NewRecorder()

	h.HandleGetPool(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleTopUpPool(t *testing.T) {
	tests := []struct {
		name           string
		reqBody        interface{}
		setupMocks     func(*MockTreasuryService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:           "Missing Amount",
			reqBody:        TopUpPoolRequest{Pool: "whack"},
			setupMocks:     func(mt *MockTreasuryService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   "This field is required",
		},
		{
			name:           "Zero Amount",
			reqBody:        TopUpPoolRequest{Pool: "whack", Amount: "0"},
			setupMocks:     func(mt *MockTreasuryService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   "Invalid amount",
		},
		{
			name:    "Unknown Pool",
			reqBody: TopUpPoolRequest{Pool: "nope", Amount: "100"},
			setupMocks: func(mt *MockTreasuryService) {
				mt.On("TopUp", mock.Anything, "nope", 100*money.Unit).
					Return(nil, domain.ErrPoolUnavailable)
			},
			expectedStatus: http.StatusServiceUnavailable,
			expectedBody:   ErrMsgPoolUnavailableError,
		},
		{
			name:    "Success",
			reqBody: TopUpPoolRequest{Pool: "whack", Amount: "500"},
			setupMocks: func(mt *MockTreasuryService) {
				mt.On("TopUp", mock.Anything, "whack", 500*money.Unit).
					Return(&domain.TreasuryPool{PoolID: "whack", Enabled: true, Balance: 1500 * money.Unit, MaxBetBps: 1000}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"balance":"1500"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tre := new(MockTreasuryService)
			tt.setupMocks(tre)
			h := newAdminHandler(new(MockConfigService), tre, new(MockPlayerService))

			body, _ := json.Marshal(tt.reqBody)
			req := httptest.NewRequest(http.MethodPost, "/api/v1/admin/pool/topup", bytes.NewReader(body))
			rec := httptest.NewRecorder()

			h.HandleTopUpPool(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.expectedBody)
			tre.AssertExpectations(t)
		})
	}
}

func TestHandleSetMaxBet(t *testing.T) {
	tests := []struct {
		name           string
		reqBody        SetMaxBetRequest
		setupMocks     func(*MockTreasuryService)
		expectedStatus int
	}{
		{
			name:           "Bps Out Of Range",
			reqBody:        SetMaxBetRequest{Pool: "whack", MaxBetBps: 20000},
			setupMocks:     func(mt *MockTreasuryService) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:    "Success",
			reqBody: SetMaxBetRequest{Pool: "whack", MaxBetBps: 500},
			setupMocks: func(mt *MockTreasuryService) {
				mt.On("SetMaxBetBps", mock.Anything, "whack", 500).Return(nil)
			},
			expectedStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tre := new(MockTreasuryService)
			tt.setupMocks(tre)
			h := newAdminHandler(new(MockConfigService), tre, new(MockPlayerService))

			body, _ := json.Marshal(tt.reqBody)
			req := httptest.NewRequest(http.MethodPost, "/api/v1/admin/pool/maxbet", bytes.NewReader(body))
			rec := httptest.NewRecorder()

			h.HandleSetMaxBet(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)
			tre.AssertExpectations(t)
		})
	}
}

func TestHandleCreditPlayer(t *testing.T) {
	ply := new(MockPlayerService)
	ply.On("Credit", mock.Anything, "player1", 25*money.Unit).
		Return(&domain.PlayerBalance{PlayerID: "player1", Balance: 125 * money.Unit}, nil)
	h := newAdminHandler(new(MockConfigService), new(MockTreasuryService), ply)

	body, _ := json.Marshal(CreditPlayerRequest{PlayerID: "player1", Amount: "25"})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/admin/player/credit", bytes.NewReader(body))
	rec := httptest.NewRecorder()

	h.HandleCreditPlayer(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"balance":"125"`)
	ply.AssertExpectations(t)
}

func TestHandleSetBlacklist(t *testing.T) {
	tests := []struct {
		name           string
		setupMocks     func(*MockPlayerService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "Unknown Player",
			setupMocks: func(mp *MockPlayerService) {
				mp.On("SetBlacklisted", mock.Anything, "ghost", true).Return(domain.ErrPlayerNotFound)
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   ErrMsgPlayerNotFoundError,
		},
		{
			name: "Success",
			setupMocks: func(mp *MockPlayerService) {
				mp.On("SetBlacklisted", mock.Anything, "ghost", true).Return(nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   MsgBlacklistUpdated,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ply := new(MockPlayerService)
			tt.setupMocks(ply)
			h := newAdminHandler(new(MockConfigService), new(MockTreasuryService), ply)

			body, _ := json.Marshal(SetBlacklistRequest{PlayerID: "ghost", Blacklisted: true})
			req := httptest.NewRequest(http.MethodPost, "/api/v1/admin/player/blacklist", bytes.NewReader(body))
			rec := httptest.NewRecorder()

			h.HandleSetBlacklist(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.expectedBody)
			ply.AssertExpectations(t)
		})
	}
}

func TestHandleRegisterChat(t *testing.T) {
	cfg := new(MockConfigService)
	cfg.On("RegisterChat", mock.Anything, "chat-42", 600).
		Return(&domain.ChatState{ChatID: "chat-42", ShillIntervalSec: 600}, nil)
	h := newAdminHandler(cfg, new(MockTreasuryService), new(MockPlayerService))

	body, _ := json.Marshal(RegisterChatRequest{ChatID: "chat-42", ShillIntervalSec: 600})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/admin/chat/register", bytes.NewReader(body))
	rec := httptest.NewRecorder()

	h.HandleRegisterChat(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "chat-42")
	cfg.AssertExpectations(t)
}

func TestHandleRegisterChat_IntervalTooShort(t *testing.T) {
	h := newAdminHandler(new(MockConfigService), new(MockTreasuryService), new(MockPlayerService))

	body, _ := json.Marshal(RegisterChatRequest{ChatID: "chat-42", ShillIntervalSec: 5})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/admin/chat/register", bytes.NewReader(body))
	rec := httptest.NewRecorder()

	h.HandleRegisterChat(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleTouchShill(t *testing.T) {
	cfg := new(MockConfigService)
	cfg.On("TouchChatShill", mock.Anything, "chat-42", int64(99)).Return(nil)
	h := newAdminHandler(cfg, new(MockTreasuryService), new(MockPlayerService))

	body, _ := json.Marshal(TouchShillRequest{ChatID: "chat-42", MessageID: 99})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/admin/chat/shill", bytes.NewReader(body))
	rec := httptest.NewRecorder()

	h.HandleTouchShill(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), MsgShillRecorded)
	cfg.AssertExpectations(t)
}
