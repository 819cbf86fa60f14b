package schedule

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/ritualnet/backend/internal/domain"
)

// MockRepository implements repository.Premium for testing
type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) IsItemLive(ctx context.Context, itemID int64, now time.Time) (bool, error) {
	args := m.Called(ctx, itemID, now)
	return args.Bool(0), args.Error(1)
}

func (m *MockRepository) GetLiveItemIDs(ctx context.Context, now time.Time) ([]int64, error) {
	args := m.Called(ctx, now)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]int64), args.Error(1)
}

func (m *MockRepository) GetLiveListings(ctx context.Context, now time.Time) ([]domain.PremiumListing, error) {
	args := m.Called(ctx, now)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.PremiumListing), args.Error(1)
}

func (m *MockRepository) ListSets(ctx context.Context) ([]domain.PremiumStoreSet, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.PremiumStoreSet), args.Error(1)
}

func (m *MockRepository) GetSet(ctx context.Context, setID int64) (*domain.PremiumStoreSet, error) {
	args := m.Called(ctx, setID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PremiumStoreSet), args.Error(1)
}

func (m *MockRepository) CreateSet(ctx context.Context, name string, itemIDs []int64) (int64, error) {
	args := m.Called(ctx, name, itemIDs)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockRepository) UpdateSet(ctx context.Context, setID int64, name string, itemIDs []int64) error {
	args := m.Called(ctx, setID, name, itemIDs)
	return args.Error(0)
}

func (m *MockRepository) DeleteSet(ctx context.Context, setID int64) error {
	args := m.Called(ctx, setID)
	return args.Error(0)
}

func (m *MockRepository) ListSchedules(ctx context.Context) ([]domain.PremiumStoreSchedule, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.PremiumStoreSchedule), args.Error(1)
}

func (m *MockRepository) GetSchedule(ctx context.Context, scheduleID int64) (*domain.PremiumStoreSchedule, error) {
	args := m.Called(ctx, scheduleID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PremiumStoreSchedule), args.Error(1)
}

func (m *MockRepository) CreateSchedule(ctx context.Context, setID int64, start, end time.Time) (int64, error) {
	args := m.Called(ctx, setID, start, end)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockRepository) UpdateSchedule(ctx context.Context, scheduleID, setID int64, start, end time.Time) error {
	args := m.Called(ctx, scheduleID, setID, start, end)
	return args.Error(0)
}

func (m *MockRepository) DeleteSchedule(ctx context.Context, scheduleID int64) error {
	args := m.Called(ctx, scheduleID)
	return args.Error(0)
}
