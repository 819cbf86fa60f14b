package inventory

import (
	"context"
	"fmt"

	"github.com/ritualnet/backend/internal/catalog"
	"github.com/ritualnet/backend/internal/domain"
	"github.com/ritualnet/backend/internal/logger"
	"github.com/ritualnet/backend/internal/repository"
)

// Service defines the interface for ownership ledger operations
type Service interface {
	Owns(ctx context.Context, userID, itemID int64) (bool, error)
	Grant(ctx context.Context, userID, itemID int64) (*domain.UserItem, error)
	ListOwned(ctx context.Context, userID int64) ([]domain.UserItem, error)
	Equip(ctx context.Context, userID, itemID int64) error
	Unequip(ctx context.Context, userID, itemID int64) error
	SetFavorite(ctx context.Context, userID, itemID int64, favorite bool) error
	SetChroma(ctx context.Context, userID, itemID int64, chromaID *int64) error
	SetShader(ctx context.Context, userID, itemID int64, shaderID *int64) error
}

type service struct {
	repo    repository.Ledger
	catalog catalog.Service
}

// NewService creates a new inventory service
func NewService(repo repository.Ledger, catalogSvc catalog.Service) Service {
	return &service{
		repo:    repo,
		catalog: catalogSvc,
	}
}

// Owns reports whether the user holds an ownership record for the item.
func (s *service) Owns(ctx context.Context, userID, itemID int64) (bool, error) {
	record, err := s.repo.GetUserItem(ctx, userID, itemID)
	if err != nil {
		return false, fmt.Errorf("failed to get user item: %w", err)
	}
	return record != nil, nil
}

// Grant creates an ownership record with default progression state.
func (s *service) Grant(ctx context.Context, userID, itemID int64) (*domain.UserItem, error) {
	log := logger.FromContext(ctx)

	record, err := s.repo.Grant(ctx, userID, itemID)
	if err != nil {
		return nil, fmt.Errorf("failed to grant item: %w", err)
	}

	log.Info("Item granted", "user_id", userID, "item_id", itemID)
	return record, nil
}

func (s *service) ListOwned(ctx context.Context, userID int64) ([]domain.UserItem, error) {
	records, err := s.repo.ListUserItems(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list user items: %w", err)
	}
	return records, nil
}

// Equip marks the item as equipped, first clearing any other equipped item of
// the same type. Both writes happen in one transaction so at most one item
// per type stays equipped.
func (s *service) Equip(ctx context.Context, userID, itemID int64) error {
	log := logger.FromContext(ctx)

	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		log.Error("Failed to begin transaction", "error", err)
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer repository.SafeRollback(ctx, tx)

	record, err := tx.GetUserItem(ctx, userID, itemID)
	if err != nil {
		return fmt.Errorf("failed to get user item: %w", err)
	}
	if record == nil {
		return domain.ErrItemNotFound
	}

	if err := tx.UnequipSameType(ctx, userID, itemID); err != nil {
		return fmt.Errorf("failed to unequip same type: %w", err)
	}

	updated, err := tx.SetEquipped(ctx, userID, itemID, true)
	if err != nil {
		return fmt.Errorf("failed to equip item: %w", err)
	}
	if !updated {
		return domain.ErrItemNotFound
	}

	if err := tx.Commit(ctx); err != nil {
		log.Error("Failed to commit transaction", "error", err)
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	log.Info("Item equipped", "user_id", userID, "item_id", itemID)
	return nil
}

func (s *service) Unequip(ctx context.Context, userID, itemID int64) error {
	updated, err := s.repo.Unequip(ctx, userID, itemID)
	if err != nil {
		return fmt.Errorf("failed to unequip item: %w", err)
	}
	if !updated {
		return domain.ErrItemNotFound
	}
	return nil
}

func (s *service) SetFavorite(ctx context.Context, userID, itemID int64, favorite bool) error {
	updated, err := s.repo.SetFavorite(ctx, userID, itemID, favorite)
	if err != nil {
		return fmt.Errorf("failed to set favorite: %w", err)
	}
	if !updated {
		return domain.ErrItemNotFound
	}
	return nil
}

// SetChroma selects a chroma for an owned item, or clears the selection when
// chromaID is nil. The chroma must belong to the item it is applied to.
func (s *service) SetChroma(ctx context.Context, userID, itemID int64, chromaID *int64) error {
	if chromaID != nil {
		chroma, err := s.catalog.GetChroma(ctx, *chromaID)
		if err != nil {
			return err
		}
		if chroma.ItemID != itemID {
			return fmt.Errorf("%w: chroma belongs to a different item", domain.ErrChromaNotFound)
		}
	}

	updated, err := s.repo.SetChroma(ctx, userID, itemID, chromaID)
	if err != nil {
		return fmt.Errorf("failed to set chroma: %w", err)
	}
	if !updated {
		return domain.ErrItemNotFound
	}
	return nil
}

// SetShader selects a shader for an owned item, or clears the selection when
// shaderID is nil.
func (s *service) SetShader(ctx context.Context, userID, itemID int64, shaderID *int64) error {
	if shaderID != nil {
		shader, err := s.catalog.GetShader(ctx, *shaderID)
		if err != nil {
			return err
		}
		if shader.ItemID != itemID {
			return fmt.Errorf("%w: shader belongs to a different item", domain.ErrShaderNotFound)
		}
	}

	updated, err := s.repo.SetShader(ctx, userID, itemID, shaderID)
	if err != nil {
		return fmt.Errorf("failed to set shader: %w", err)
	}
	if !updated {
		return domain.ErrItemNotFound
	}
	return nil
}
