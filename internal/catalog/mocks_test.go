package catalog

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/ritualnet/backend/internal/domain"
)

// MockRepository implements repository.Catalog for testing
type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) GetItem(ctx context.Context, itemID int64) (*domain.Item, error) {
	args := m.Called(ctx, itemID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Item), args.Error(1)
}

func (m *MockRepository) GetChroma(ctx context.Context, chromaID int64) (*domain.Chroma, error) {
	args := m.Called(ctx, chromaID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Chroma), args.Error(1)
}

func (m *MockRepository) GetShader(ctx context.Context, shaderID int64) (*domain.Shader, error) {
	args := m.Called(ctx, shaderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Shader), args.Error(1)
}

func (m *MockRepository) GetGeneralStoreItems(ctx context.Context, userID int64) ([]domain.Item, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Item), args.Error(1)
}
