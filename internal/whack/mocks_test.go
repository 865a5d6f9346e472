package whack

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/burrowlabs/whack-engine/internal/domain"
)

// MockSessionRepo
type MockSessionRepo struct {
	mock.Mock
}

func (m *MockSessionRepo) CreateSession(ctx context.Context, session *domain.Session) error {
	args := m.Called(ctx, session)
	return args.Error(0)
}

func (m *MockSessionRepo) GetSession(ctx context.Context, id uuid.UUID) (*domain.Session, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Session), args.Error(1)
}

func (m *MockSessionRepo) GetActiveSession(ctx context.Context, playerID string) (*domain.Session, error) {
	args := m.Called(ctx, playerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Session), args.Error(1)
}

func (m *MockSessionRepo) SetPick(ctx context.Context, id uuid.UUID, expected domain.SessionStatus, stage int, slot int) (int64, error) {
	args := m.Called(ctx, id, expected, stage, slot)
	return int64(args.Int(0)), args.Error(1)
}

func (m *MockSessionRepo) ClaimStatus(ctx context.Context, id uuid.UUID, expected, next domain.SessionStatus) (int64, error) {
	args := m.Called(ctx, id, expected, next)
	return int64(args.Int(0)), args.Error(1)
}

func (m *MockSessionRepo) HoldStage1Win(ctx context.Context, id uuid.UUID, win domain.Stage1Win, expiresAt time.Time) (int64, error) {
	args := m.Called(ctx, id, win, expiresAt)
	return int64(args.Int(0)), args.Error(1)
}

func (m *MockSessionRepo) EnterStage2(ctx context.Context, id uuid.UUID, bet, fee, net int64, expiresAt time.Time) (int64, error) {
	args := m.Called(ctx, id, bet, fee, net, expiresAt)
	return int64(args.Int(0)), args.Error(1)
}

func (m *MockSessionRepo) RevertStage2(ctx context.Context, id uuid.UUID) (int64, error) {
	args := m.Called(ctx, id)
	return int64(args.Int(0)), args.Error(1)
}

func (m *MockSessionRepo) SettleStageFunds(ctx context.Context, id uuid.UUID, stage int) (int64, int64, error) {
	args := m.Called(ctx, id, stage)
	return args.Get(0).(int64), args.Get(1).(int64), args.Error(2)
}

func (m *MockSessionRepo) FinalizeSession(ctx context.Context, id uuid.UUID, expected domain.SessionStatus, settlement domain.Settlement) (int64, error) {
	args := m.Called(ctx, id, expected, settlement)
	return int64(args.Int(0)), args.Error(1)
}

func (m *MockSessionRepo) CancelSession(ctx context.Context, id uuid.UUID, expected domain.SessionStatus) (int64, error) {
	args := m.Called(ctx, id, expected)
	return int64(args.Int(0)), args.Error(1)
}

func (m *MockSessionRepo) ListExpired(ctx context.Context, now time.Time, limit int) ([]*domain.Session, error) {
	args := m.Called(ctx, now, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Session), args.Error(1)
}

// MockBalanceRepo
type MockBalanceRepo struct {
	mock.Mock
}

func (m *MockBalanceRepo) EnsurePlayer(ctx context.Context, identity domain.PlayerIdentity) error {
	args := m.Called(ctx, identity)
	return args.Error(0)
}

func (m *MockBalanceRepo) GetPlayer(ctx context.Context, playerID string) (*domain.PlayerBalance, error) {
	args := m.Called(ctx, playerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PlayerBalance), args.Error(1)
}

func (m *MockBalanceRepo) DecrementIfAtLeast(ctx context.Context, playerID string, amount int64) (int64, error) {
	args := m.Called(ctx, playerID, amount)
	return int64(args.Int(0)), args.Error(1)
}

func (m *MockBalanceRepo) Credit(ctx context.Context, playerID string, amount int64) error {
	args := m.Called(ctx, playerID, amount)
	return args.Error(0)
}

func (m *MockBalanceRepo) SetBlacklisted(ctx context.Context, playerID string, blacklisted bool) (int64, error) {
	args := m.Called(ctx, playerID, blacklisted)
	return int64(args.Int(0)), args.Error(1)
}

// MockTreasuryRepo
type MockTreasuryRepo struct {
	mock.Mock
}

func (m *MockTreasuryRepo) EnsurePool(ctx context.Context, poolID string, initialBalance int64, maxBetBps int) error {
	args := m.Called(ctx, poolID, initialBalance, maxBetBps)
	return args.Error(0)
}

func (m *MockTreasuryRepo) GetPool(ctx context.Context, poolID string) (*domain.TreasuryPool, error) {
	args := m.Called(ctx, poolID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TreasuryPool), args.Error(1)
}

func (m *MockTreasuryRepo) Credit(ctx context.Context, poolID string, amount int64) error {
	args := m.Called(ctx, poolID, amount)
	return args.Error(0)
}

func (m *MockTreasuryRepo) DebitIfAtLeast(ctx context.Context, poolID string, amount int64) (int64, error) {
	args := m.Called(ctx, poolID, amount)
	return int64(args.Int(0)), args.Error(1)
}

func (m *MockTreasuryRepo) SetEnabled(ctx context.Context, poolID string, enabled bool) (int64, error) {
	args := m.Called(ctx, poolID, enabled)
	return int64(args.Int(0)), args.Error(1)
}

func (m *MockTreasuryRepo) SetMaxBetBps(ctx context.Context, poolID string, bps int) (int64, error) {
	args := m.Called(ctx, poolID, bps)
	return int64(args.Int(0)), args.Error(1)
}

// MockRecorder captures audit calls without touching storage
type MockRecorder struct {
	mock.Mock
}

func (m *MockRecorder) RecordSession(ctx context.Context, sessionID string, stage int, kind domain.LedgerKind, delta int64, metadata map[string]any) {
	m.Called(ctx, sessionID, stage, kind, delta, metadata)
}

// MockConfigProvider
type MockConfigProvider struct {
	mock.Mock
}

func (m *MockConfigProvider) GetConfig(ctx context.Context) (*domain.GameConfig, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.GameConfig), args.Error(1)
}

// fixedRoller returns predetermined slots so tests control the outcome
type fixedRoller struct {
	normal int
	golden int
}

func (r fixedRoller) Roll() (int, int, error) {
	return r.normal, r.golden, nil
}
