package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ritualnet/backend/internal/domain"
	"github.com/ritualnet/backend/internal/repository"
)

// StoreRepository implements the purchase-engine repository for PostgreSQL
type StoreRepository struct {
	db *pgxpool.Pool
}

// NewStoreRepository creates a new StoreRepository
func NewStoreRepository(db *pgxpool.Pool) *StoreRepository {
	return &StoreRepository{db: db}
}

// StoreTx implements repository.StoreTx
type StoreTx struct {
	tx pgx.Tx
}

// BeginTx starts a new transaction
func (r *StoreRepository) BeginTx(ctx context.Context) (repository.StoreTx, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	return &StoreTx{tx: tx}, nil
}

// Commit commits the transaction
func (t *StoreTx) Commit(ctx context.Context) error {
	return t.tx.Commit(ctx)
}

// Rollback rolls back the transaction
func (t *StoreTx) Rollback(ctx context.Context) error {
	return t.tx.Rollback(ctx)
}

const userColumns = `user_id, username, email, password_hash, gold_amount, silver_amount, created_at`

func scanUser(row pgx.Row) (*domain.User, error) {
	var u domain.User
	err := row.Scan(
		&u.ID,
		&u.Username,
		&u.Email,
		&u.PasswordHash,
		&u.GoldAmount,
		&u.SilverAmount,
		&u.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// GetUser retrieves a user by ID
func (r *StoreRepository) GetUser(ctx context.Context, userID int64) (*domain.User, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+userColumns+` FROM users WHERE user_id = $1`, userID)
	user, err := scanUser(row)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return user, nil
}

// GetUserForUpdate reads the user row under FOR UPDATE so concurrent
// purchases by the same user serialize on the balance columns.
func (t *StoreTx) GetUserForUpdate(ctx context.Context, userID int64) (*domain.User, error) {
	row := t.tx.QueryRow(ctx,
		`SELECT `+userColumns+` FROM users WHERE user_id = $1 FOR UPDATE`, userID)
	user, err := scanUser(row)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to lock user row: %w", err)
	}
	return user, nil
}

// DebitBalance subtracts amount from the selected currency balance. The
// CHECK constraint on the column is the backstop against going negative;
// callers verify funds under the row lock first.
func (t *StoreTx) DebitBalance(ctx context.Context, userID int64, currency domain.Currency, amount int) error {
	column := "silver_amount"
	if currency == domain.CurrencyGold {
		column = "gold_amount"
	}

	tag, err := t.tx.Exec(ctx,
		`UPDATE users SET `+column+` = `+column+` - $2 WHERE user_id = $1`,
		userID, amount)
	if err != nil {
		return fmt.Errorf("failed to debit %s balance: %w", currency, err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

// GetUserItem for Tx
func (t *StoreTx) GetUserItem(ctx context.Context, userID, itemID int64) (*domain.UserItem, error) {
	return getUserItem(ctx, t.tx, userID, itemID)
}

// InsertUserItem creates the ownership record inside the purchase
// transaction. A unique-constraint conflict means a concurrent purchase won
// the race; it surfaces as domain.ErrAlreadyOwned and the caller aborts.
func (t *StoreTx) InsertUserItem(ctx context.Context, userID, itemID int64) (*domain.UserItem, error) {
	row := t.tx.QueryRow(ctx,
		`INSERT INTO user_items (user_id, item_id, item_level, item_xp, prestige_level, is_equipped, favorite)
		 VALUES ($1, $2, $3, $4, $5, FALSE, FALSE)
		 RETURNING `+userItemColumns,
		userID, itemID, domain.DefaultItemLevel, domain.DefaultItemXP, domain.DefaultPrestigeLevel)
	ui, err := scanUserItem(row)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, domain.ErrAlreadyOwned
		}
		return nil, fmt.Errorf("failed to insert user item: %w", err)
	}
	return ui, nil
}
