package store

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/ritualnet/backend/internal/domain"
	"github.com/ritualnet/backend/internal/repository"
)

// MockRepository implements repository.Store for testing
type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) GetUser(ctx context.Context, userID int64) (*domain.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockRepository) BeginTx(ctx context.Context) (repository.StoreTx, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(repository.StoreTx), args.Error(1)
}

// MockTx implements repository.StoreTx for testing
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

func (m *MockTx) GetUserForUpdate(ctx context.Context, userID int64) (*domain.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockTx) DebitBalance(ctx context.Context, userID int64, currency domain.Currency, amount int) error {
	args := m.Called(ctx, userID, currency, amount)
	return args.Error(0)
}

func (m *MockTx) GetUserItem(ctx context.Context, userID, itemID int64) (*domain.UserItem, error) {
	args := m.Called(ctx, userID, itemID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.UserItem), args.Error(1)
}

func (m *MockTx) InsertUserItem(ctx context.Context, userID, itemID int64) (*domain.UserItem, error) {
	args := m.Called(ctx, userID, itemID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.UserItem), args.Error(1)
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

// MockSchedule implements schedule.Service for testing
type MockSchedule struct {
	mock.Mock
}

func (m *MockSchedule) IsItemLive(ctx context.Context, itemID int64) (bool, error) {
	args := m.Called(ctx, itemID)
	return args.Bool(0), args.Error(1)
}

func (m *MockSchedule) LiveItemIDs(ctx context.Context) ([]int64, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]int64), args.Error(1)
}

func (m *MockSchedule) LiveListings(ctx context.Context) ([]domain.PremiumListing, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.PremiumListing), args.Error(1)
}

func (m *MockSchedule) ListSets(ctx context.Context) ([]domain.PremiumStoreSet, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.PremiumStoreSet), args.Error(1)
}

func (m *MockSchedule) GetSet(ctx context.Context, setID int64) (*domain.PremiumStoreSet, error) {
	args := m.Called(ctx, setID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PremiumStoreSet), args.Error(1)
}

func (m *MockSchedule) CreateSet(ctx context.Context, name string, itemIDs []int64) (int64, error) {
	args := m.Called(ctx, name, itemIDs)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockSchedule) UpdateSet(ctx context.Context, setID int64, name string, itemIDs []int64) error {
	args := m.Called(ctx, setID, name, itemIDs)
	return args.Error(0)
}

func (m *MockSchedule) DeleteSet(ctx context.Context, setID int64) error {
	args := m.Called(ctx, setID)
	return args.Error(0)
}

func (m *MockSchedule) ListSchedules(ctx context.Context) ([]domain.PremiumStoreSchedule, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.PremiumStoreSchedule), args.Error(1)
}

func (m *MockSchedule) GetSchedule(ctx context.Context, scheduleID int64) (*domain.PremiumStoreSchedule, error) {
	args := m.Called(ctx, scheduleID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PremiumStoreSchedule), args.Error(1)
}

func (m *MockSchedule) CreateSchedule(ctx context.Context, setID int64, start, end time.Time) (int64, error) {
	args := m.Called(ctx, setID, start, end)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockSchedule) UpdateSchedule(ctx context.Context, scheduleID, setID int64, start, end time.Time) error {
	args := m.Called(ctx, scheduleID, setID, start, end)
	return args.Error(0)
}

func (m *MockSchedule) DeleteSchedule(ctx context.Context, scheduleID int64) error {
	args := m.Called(ctx, scheduleID)
	return args.Error(0)
}
