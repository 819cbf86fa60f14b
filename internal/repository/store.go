package repository

import (
	"context"

	"github.com/ritualnet/backend/internal/domain"
)

// Store defines the persistence surface of the purchase engine.
type Store interface {
	// GetUser returns (nil, nil) when the user does not exist.
	GetUser(ctx context.Context, userID int64) (*domain.User, error)
	BeginTx(ctx context.Context) (StoreTx, error)
}

// StoreTx is the transactional handle a single purchase executes in. The
// funds check, balance debit and ownership insert commit together or not at
// all; external observers only ever see NotOwned or Owned.
type StoreTx interface {
	Tx
	// GetUserForUpdate reads the user row under a row-level lock so that
	// concurrent purchases by the same user serialize on the balance.
	GetUserForUpdate(ctx context.Context, userID int64) (*domain.User, error)
	// DebitBalance subtracts amount from the user's balance in the given
	// currency. The caller has already verified funds under the lock.
	DebitBalance(ctx context.Context, userID int64, currency domain.Currency, amount int) error
	GetUserItem(ctx context.Context, userID, itemID int64) (*domain.UserItem, error)
	// InsertUserItem creates the ownership record. A unique-constraint
	// conflict (a concurrent purchase won the race) surfaces as
	// domain.ErrAlreadyOwned.
	InsertUserItem(ctx context.Context, userID, itemID int64) (*domain.UserItem, error)
}
