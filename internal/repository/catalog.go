package repository

import (
	"context"

	"github.com/ritualnet/backend/internal/domain"
)

// Catalog defines read-only access to item definitions and their cosmetic
// variants. Implementations return (nil, nil) when the row does not exist.
type Catalog interface {
	GetItem(ctx context.Context, itemID int64) (*domain.Item, error)
	GetChroma(ctx context.Context, chromaID int64) (*domain.Chroma, error)
	GetShader(ctx context.Context, shaderID int64) (*domain.Shader, error)
	// GetGeneralStoreItems returns items flagged for the general store that
	// the given user does not already own.
	GetGeneralStoreItems(ctx context.Context, userID int64) ([]domain.Item, error)
}
