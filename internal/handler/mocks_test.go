package handler

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/burrowlabs/whack-engine/internal/domain"
)

// MockWhackService
type MockWhackService struct {
	mock.Mock
}

func (m *MockWhackService) Start(ctx context.Context, identity domain.PlayerIdentity, bet int64) (*domain.SessionView, error) {
	args := m.Called(ctx, identity, bet)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SessionView), args.Error(1)
}

func (m *MockWhackService) Select(ctx context.Context, playerID string, sessionID uuid.UUID, slot int) (*domain.SessionView, error) {
	args := m.Called(ctx, playerID, sessionID, slot)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SessionView), args.Error(1)
}

func (m *MockWhackService) Confirm(ctx context.Context, playerID string, sessionID uuid.UUID) (*domain.SessionView, error) {
	args := m.Called(ctx, playerID, sessionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SessionView), args.Error(1)
}

func (m *MockWhackService) Collect(ctx context.Context, playerID string, sessionID uuid.UUID) (*domain.SessionView, error) {
	args := m.Called(ctx, playerID, sessionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SessionView), args.Error(1)
}

func (m *MockWhackService) Continue(ctx context.Context, playerID string, sessionID uuid.UUID) (*domain.SessionView, error) {
	args := m.Called(ctx, playerID, sessionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SessionView), args.Error(1)
}

func (m *MockWhackService) Cancel(ctx context.Context, playerID string, sessionID uuid.UUID) (*domain.SessionView, error) {
	args := m.Called(ctx, playerID, sessionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SessionView), args.Error(1)
}

func (m *MockWhackService) GetSession(ctx context.Context, playerID string, sessionID uuid.UUID) (*domain.SessionView, error) {
	args := m.Called(ctx, playerID, sessionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SessionView), args.Error(1)
}

func (m *MockWhackService) GetActiveSession(ctx context.Context, playerID string) (*domain.SessionView, error) {
	args := m.Called(ctx, playerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SessionView), args.Error(1)
}

func (m *MockWhackService) SweepExpired(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

// MockPlayerService
type MockPlayerService struct {
	mock.Mock
}

func (m *MockPlayerService) Register(ctx context.Context, identity domain.PlayerIdentity) (*domain.PlayerBalance, error) {
	args := m.Called(ctx, identity)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PlayerBalance), args.Error(1)
}

func (m *MockPlayerService) GetPlayer(ctx context.Context, playerID string) (*domain.PlayerBalance, error) {
	args := m.Called(ctx, playerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PlayerBalance), args.Error(1)
}

func (m *MockPlayerService) Credit(ctx context.Context, playerID string, amount int64) (*domain.PlayerBalance, error) {
	args := m.Called(ctx, playerID, amount)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PlayerBalance), args.Error(1)
}

func (m *MockPlayerService) SetBlacklisted(ctx context.Context, playerID string, blacklisted bool) error {
	args := m.Called(ctx, playerID, blacklisted)
	return args.Error(0)
}

// MockConfigService
type MockConfigService struct {
	mock.Mock
}

func (m *MockConfigService) EnsureDefaults(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockConfigService) GetConfig(ctx context.Context) (*domain.GameConfig, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.GameConfig), args.Error(1)
}

func (m *MockConfigService) UpdateConfig(ctx context.Context, update domain.GameConfigUpdate) (*domain.GameConfig, error) {
	args := m.Called(ctx, update)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.GameConfig), args.Error(1)
}

func (m *MockConfigService) SetRailsPaused(ctx context.Context, paused bool) error {
	args := m.Called(ctx, paused)
	return args.Error(0)
}

func (m *MockConfigService) RegisterChat(ctx context.Context, chatID string, shillIntervalSec int) (*domain.ChatState, error) {
	args := m.Called(ctx, chatID, shillIntervalSec)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ChatState), args.Error(1)
}

func (m *MockConfigService) GetChatState(ctx context.Context, chatID string) (*domain.ChatState, error) {
	args := m.Called(ctx, chatID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ChatState), args.Error(1)
}

func (m *MockConfigService) ListChatStates(ctx context.Context) ([]domain.ChatState, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ChatState), args.Error(1)
}

func (m *MockConfigService) TouchChatShill(ctx context.Context, chatID string, messageID int64) error {
	args := m.Called(ctx, chatID, messageID)
	return args.Error(0)
}

// MockTreasuryService
type MockTreasuryService struct {
	mock.Mock
}

func (m *MockTreasuryService) Provision(ctx context.Context, initialBalance int64) error {
	args := m.Called(ctx, initialBalance)
	return args.Error(0)
}

func (m *MockTreasuryService) GetPool(ctx context.Context, poolID string) (*domain.TreasuryPool, error) {
	args := m.Called(ctx, poolID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TreasuryPool), args.Error(1)
}

func (m *MockTreasuryService) TopUp(ctx context.Context, poolID string, amount int64) (*domain.TreasuryPool, error) {
	args := m.Called(ctx, poolID, amount)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TreasuryPool), args.Error(1)
}

func (m *MockTreasuryService) SetEnabled(ctx context.Context, poolID string, enabled bool) error {
	args := m.Called(ctx, poolID, enabled)
	return args.Error(0)
}

func (m *MockTreasuryService) SetMaxBetBps(ctx context.Context, poolID string, bps int) error {
	args := m.Called(ctx, poolID, bps)
	return args.Error(0)
}

// MockLedgerRepo
type MockLedgerRepo struct {
	mock.Mock
}

func (m *MockLedgerRepo) Append(ctx context.Context, entry domain.LedgerEntry) (bool, error) {
	args := m.Called(ctx, entry)
	return args.Bool(0), args.Error(1)
}

func (m *MockLedgerRepo) ListBySubject(ctx context.Context, subjectID string, limit int) ([]domain.LedgerEntry, error) {
	args := m.Called(ctx, subjectID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.LedgerEntry), args.Error(1)
}
