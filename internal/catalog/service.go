package catalog

import (
	"context"
	"fmt"
	"time"

	"github.com/ritualnet/backend/internal/domain"
	"github.com/ritualnet/backend/internal/logger"
	"github.com/ritualnet/backend/internal/repository"
)

// DefaultCacheSize is the maximum number of items held in the lookup cache
const DefaultCacheSize = 512

// DefaultCacheTTL is how long a cached item stays valid
const DefaultCacheTTL = 5 * time.Minute

// Service defines the interface for catalog operations
type Service interface {
	GetItem(ctx context.Context, itemID int64) (*domain.Item, error)
	GetChroma(ctx context.Context, chromaID int64) (*domain.Chroma, error)
	GetShader(ctx context.Context, shaderID int64) (*domain.Shader, error)
	ListGeneralStoreItems(ctx context.Context, userID int64) ([]domain.Item, error)
}

type service struct {
	repo  repository.Catalog
	cache *itemCache
}

// NewService creates a new catalog service
func NewService(repo repository.Catalog) Service {
	return &service{
		repo:  repo,
		cache: newItemCache(DefaultCacheSize, DefaultCacheTTL),
	}
}

// GetItem looks up a single item by ID. Hits the cache first; a miss falls
// through to the database and populates the cache on success.
func (s *service) GetItem(ctx context.Context, itemID int64) (*domain.Item, error) {
	if item, ok := s.cache.Get(itemID); ok {
		return item, nil
	}

	item, err := s.repo.GetItem(ctx, itemID)
	if err != nil {
		return nil, fmt.Errorf("failed to get item: %w", err)
	}
	if item == nil {
		return nil, domain.ErrItemNotFound
	}

	s.cache.Set(item)
	return item, nil
}

func (s *service) GetChroma(ctx context.Context, chromaID int64) (*domain.Chroma, error) {
	chroma, err := s.repo.GetChroma(ctx, chromaID)
	if err != nil {
		return nil, fmt.Errorf("failed to get chroma: %w", err)
	}
	if chroma == nil {
		return nil, domain.ErrChromaNotFound
	}
	return chroma, nil
}

func (s *service) GetShader(ctx context.Context, shaderID int64) (*domain.Shader, error) {
	shader, err := s.repo.GetShader(ctx, shaderID)
	if err != nil {
		return nil, fmt.Errorf("failed to get shader: %w", err)
	}
	if shader == nil {
		return nil, domain.ErrShaderNotFound
	}
	return shader, nil
}

// ListGeneralStoreItems returns the general-store items the user does not own
// yet. Never cached; the result depends on the caller's inventory.
func (s *service) ListGeneralStoreItems(ctx context.Context, userID int64) ([]domain.Item, error) {
	log := logger.FromContext(ctx)

	items, err := s.repo.GetGeneralStoreItems(ctx, userID)
	if err != nil {
		log.Error("Failed to list general store items", "error", err, "user_id", userID)
		return nil, fmt.Errorf("failed to list general store items: %w", err)
	}
	return items, nil
}
