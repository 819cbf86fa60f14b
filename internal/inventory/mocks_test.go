package inventory

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/ritualnet/backend/internal/domain"
	"github.com/ritualnet/backend/internal/repository"
)

// MockRepository implements repository.Ledger for testing
type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) GetUserItem(ctx context.Context, userID, itemID int64) (*domain.UserItem, error) {
	args := m.Called(ctx, userID, itemID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.UserItem), args.Error(1)
}

func (m *MockRepository) ListUserItems(ctx context.Context, userID int64) ([]domain.UserItem, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.UserItem), args.Error(1)
}

func (m *MockRepository) Grant(ctx context.Context, userID, itemID int64) (*domain.UserItem, error) {
	args := m.Called(ctx, userID, itemID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.UserItem), args.Error(1)
}

func (m *MockRepository) SetFavorite(ctx context.Context, userID, itemID int64, favorite bool) (bool, error) {
	args := m.Called(ctx, userID, itemID, favorite)
	return args.Bool(0), args.Error(1)
}

func (m *MockRepository) SetChroma(ctx context.Context, userID, itemID int64, chromaID *int64) (bool, error) {
	args := m.Called(ctx, userID, itemID, chromaID)
	return args.Bool(0), args.Error(1)
}

func (m *MockRepository) SetShader(ctx context.Context, userID, itemID int64, shaderID *int64) (bool, error) {
	args := m.Called(ctx, userID, itemID, shaderID)
	return args.Bool(0), args.Error(1)
}

func (m *MockRepository) Unequip(ctx context.Context, userID, itemID int64) (bool, error) {
	args := m.Called(ctx, userID, itemID)
	return args.Bool(0), args.Error(1)
}

func (m *MockRepository) BeginTx(ctx context.Context) (repository.LedgerTx, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(repository.LedgerTx), args.Error(1)
}

// MockTx implements repository.LedgerTx for testing
type MockTx struct {
	mock.Mock
}

func (m *MockTx) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockTx) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockTx) GetUserItem(ctx context.Context, userID, itemID int64) (*domain.UserItem, error) {
	args := m.Called(ctx, userID, itemID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.UserItem), args.Error(1)
}

func (m *MockTx) UnequipSameType(ctx context.Context, userID, itemID int64) error {
	args := m.Called(ctx, userID, itemID)
	return args.Error(0)
}

func (m *MockTx) SetEquipped(ctx context.Context, userID, itemID int64, equipped bool) (bool, error) {
	args := m.Called(ctx, userID, itemID, equipped)
	return args.Bool(0), args.Error(1)
}

// MockCatalog implements catalog.Service for testing
type MockCatalog struct {
	mock.Mock
}

func (m *MockCatalog) GetItem(ctx context.Context, itemID int64) (*domain.Item, error) {
	args := m.Called(ctx, itemID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Item), args.Error(1)
}

func (m *MockCatalog) GetChroma(ctx context.Context, chromaID int64) (*domain.Chroma, error) {
	args := m.Called(ctx, chromaID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Chroma), args.Error(1)
}

func (m *MockCatalog) GetShader(ctx context.Context, shaderID int64) (*domain.Shader, error) {
	args := m.Called(ctx, shaderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Shader), args.Error(1)
}

func (m *MockCatalog) ListGeneralStoreItems(ctx context.Context, userID int64) ([]domain.Item, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Item), args.Error(1)
}
