package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/ritualnet/backend/internal/catalog"
	"github.com/ritualnet/backend/internal/domain"
	"github.com/ritualnet/backend/internal/logger"
	"github.com/ritualnet/backend/internal/metrics"
	"github.com/ritualnet/backend/internal/repository"
	"github.com/ritualnet/backend/internal/schedule"
)

// PurchaseResult contains the result of a purchase operation
type PurchaseResult struct {
	ItemID           int64           `json:"item_id"`
	ItemName         string          `json:"item_name"`
	Currency         domain.Currency `json:"currency"`
	AmountSpent      int             `json:"amount_spent"`
	RemainingBalance int             `json:"remaining_balance"`
}

// Service defines the interface for store operations
type Service interface {
	BuyGeneralItem(ctx context.Context, userID, itemID int64) (*PurchaseResult, error)
	BuyPremiumItem(ctx context.Context, userID, itemID int64) (*PurchaseResult, error)
	ListGeneralStoreItems(ctx context.Context, userID int64) ([]domain.Item, error)
	ListLivePremiumItems(ctx context.Context) ([]domain.PremiumListing, error)
}

type service struct {
	repo     repository.Store
	catalog  catalog.Service
	schedule schedule.Service
}

// NewService creates a new store service
func NewService(repo repository.Store, catalogSvc catalog.Service, scheduleSvc schedule.Service) Service {
	return &service{
		repo:     repo,
		catalog:  catalogSvc,
		schedule: scheduleSvc,
	}
}

// purchaseSpec parameterizes a purchase with the store-specific parts: which
// balance it debits and how item availability is decided. Everything else,
// the lock, the funds check, the debit and the ownership insert, is shared.
type purchaseSpec struct {
	storeKind string
	currency  domain.Currency
	available func(ctx context.Context, item *domain.Item) error
}

// BuyGeneralItem purchases a general-store item with silver.
func (s *service) BuyGeneralItem(ctx context.Context, userID, itemID int64) (*PurchaseResult, error) {
	log := logger.FromContext(ctx)
	log.Info(LogMsgBuyGeneralItemCalled, "user_id", userID, "item_id", itemID)

	return s.executePurchase(ctx, userID, itemID, purchaseSpec{
		storeKind: metrics.StoreGeneral,
		currency:  domain.CurrencySilver,
		available: func(_ context.Context, item *domain.Item) error {
			if !item.IsGeneralStoreItem {
				return fmt.Errorf(ErrMsgItemNotInStoreFmt, item.Name, domain.ErrItemNotFound)
			}
			return nil
		},
	})
}

// BuyPremiumItem purchases a premium item with gold. The item must belong to
// a set with a schedule covering the moment of purchase.
func (s *service) BuyPremiumItem(ctx context.Context, userID, itemID int64) (*PurchaseResult, error) {
	log := logger.FromContext(ctx)
	log.Info(LogMsgBuyPremiumItemCalled, "user_id", userID, "item_id", itemID)

	return s.executePurchase(ctx, userID, itemID, purchaseSpec{
		storeKind: metrics.StorePremium,
		currency:  domain.CurrencyGold,
		available: func(ctx context.Context, item *domain.Item) error {
			live, err := s.schedule.IsItemLive(ctx, item.ID)
			if err != nil {
				return err
			}
			if !live {
				return fmt.Errorf(ErrMsgItemNotLiveFmt, item.Name, domain.ErrNotAvailable)
			}
			return nil
		},
	})
}

func (s *service) executePurchase(ctx context.Context, userID, itemID int64, spec purchaseSpec) (*PurchaseResult, error) {
	log := logger.FromContext(ctx)

	// 1. Resolve the item and check store availability
	item, err := s.catalog.GetItem(ctx, itemID)
	if err != nil {
		return nil, err
	}
	if err := spec.available(ctx, item); err != nil {
		return nil, err
	}

	// 2. Resolve the price. A live but unpriced item cannot be bought.
	price := spec.currency.Price(item)
	if price == nil {
		return nil, fmt.Errorf(ErrMsgItemNotPricedFmt, item.Name, spec.currency, domain.ErrNotAvailable)
	}

	// 3. Begin transaction
	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgBeginTransactionFailed, err)
	}
	defer repository.SafeRollback(ctx, tx)

	// 4. Lock the user row. Concurrent purchases by the same user serialize
	// here, so the funds check below reads a settled balance.
	user, err := tx.GetUserForUpdate(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgGetUserFailed, err)
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}

	// 5. Reject repeat purchases
	owned, err := tx.GetUserItem(ctx, userID, itemID)
	if err != nil {
		return nil, fmt.Errorf("failed to check ownership: %w", err)
	}
	if owned != nil {
		return nil, domain.ErrAlreadyOwned
	}

	// 6. Check funds
	balance := spec.currency.Balance(user)
	if balance < *price {
		return nil, fmt.Errorf(ErrMsgInsufficientFundsFmt, item.Name, *price, balance, domain.ErrInsufficientFunds)
	}

	// 7. Debit and grant
	if err := tx.DebitBalance(ctx, userID, spec.currency, *price); err != nil {
		return nil, fmt.Errorf(ErrMsgDebitBalanceFailed, err)
	}

	if _, err := tx.InsertUserItem(ctx, userID, itemID); err != nil {
		// The check in step 5 passed, so a conflict here means another
		// purchase committed in between. Retryable from the client's view.
		if errors.Is(err, domain.ErrAlreadyOwned) {
			log.Warn(LogMsgPurchaseConflict, "user_id", userID, "item_id", itemID)
			return nil, domain.ErrPurchaseConflict
		}
		return nil, fmt.Errorf(ErrMsgInsertUserItemFailed, err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf(ErrMsgCommitTransactionFailed, err)
	}

	metrics.RecordPurchase(spec.storeKind, item.Name, string(spec.currency), *price)
	log.Info(LogMsgItemPurchased,
		"user_id", userID, "item", item.Name, "store", spec.storeKind,
		"currency", spec.currency, "amount", *price)

	return &PurchaseResult{
		ItemID:           item.ID,
		ItemName:         item.Name,
		Currency:         spec.currency,
		AmountSpent:      *price,
		RemainingBalance: balance - *price,
	}, nil
}

// ListGeneralStoreItems returns the general-store items the user can still
// buy, owned items excluded.
func (s *service) ListGeneralStoreItems(ctx context.Context, userID int64) ([]domain.Item, error) {
	user, err := s.repo.GetUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgGetUserFailed, err)
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	return s.catalog.ListGeneralStoreItems(ctx, userID)
}

// ListLivePremiumItems returns the premium listings available right now.
func (s *service) ListLivePremiumItems(ctx context.Context) ([]domain.PremiumListing, error) {
	return s.schedule.LiveListings(ctx)
}
