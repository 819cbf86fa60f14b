package repository

import (
	"context"

	"github.com/ritualnet/backend/internal/domain"
)

// Ledger defines persistence for per-user ownership records and their
// equip/favorite/cosmetic state. Lookups return (nil, nil) when no record
// exists for the pair.
type Ledger interface {
	GetUserItem(ctx context.Context, userID, itemID int64) (*domain.UserItem, error)
	ListUserItems(ctx context.Context, userID int64) ([]domain.UserItem, error)
	// Grant creates a new ownership record with defaults. A unique-constraint
	// conflict surfaces as domain.ErrAlreadyOwned.
	Grant(ctx context.Context, userID, itemID int64) (*domain.UserItem, error)
	SetFavorite(ctx context.Context, userID, itemID int64, favorite bool) (bool, error)
	SetChroma(ctx context.Context, userID, itemID int64, chromaID *int64) (bool, error)
	SetShader(ctx context.Context, userID, itemID int64, shaderID *int64) (bool, error)
	Unequip(ctx context.Context, userID, itemID int64) (bool, error)
	BeginTx(ctx context.Context) (LedgerTx, error)
}

// LedgerTx is the transactional handle an equip operation runs in: clearing
// the previously equipped item of the same type and setting the new one must
// commit together.
type LedgerTx interface {
	Tx
	GetUserItem(ctx context.Context, userID, itemID int64) (*domain.UserItem, error)
	// UnequipSameType clears is_equipped on every owned item sharing the
	// given item's type, via an indexed join rather than loading the
	// collection into memory.
	UnequipSameType(ctx context.Context, userID, itemID int64) error
	SetEquipped(ctx context.Context, userID, itemID int64, equipped bool) (bool, error)
}
