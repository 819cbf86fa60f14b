package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ritualnet/backend/internal/domain"
	"github.com/ritualnet/backend/internal/repository"
)

// LedgerRepository implements the ownership ledger repository for PostgreSQL
type LedgerRepository struct {
	db *pgxpool.Pool
}

// NewLedgerRepository creates a new LedgerRepository
func NewLedgerRepository(db *pgxpool.Pool) *LedgerRepository {
	return &LedgerRepository{db: db}
}

// LedgerTx implements repository.LedgerTx
type LedgerTx struct {
	tx pgx.Tx
}

// BeginTx starts a new transaction
func (r *LedgerRepository) BeginTx(ctx context.Context) (repository.LedgerTx, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	return &LedgerTx{tx: tx}, nil
}

// Commit commits the transaction
func (t *LedgerTx) Commit(ctx context.Context) error {
	return t.tx.Commit(ctx)
}

// Rollback rolls back the transaction
func (t *LedgerTx) Rollback(ctx context.Context) error {
	return t.tx.Rollback(ctx)
}

const userItemColumns = `user_item_id, user_id, item_id, item_level, item_xp, prestige_level, is_equipped, favorite, selected_chroma_id, selected_shader_id`

func scanUserItem(row pgx.Row) (*domain.UserItem, error) {
	var ui domain.UserItem
	err := row.Scan(
		&ui.ID,
		&ui.UserID,
		&ui.ItemID,
		&ui.ItemLevel,
		&ui.ItemXP,
		&ui.PrestigeLevel,
		&ui.IsEquipped,
		&ui.Favorite,
		&ui.SelectedChromaID,
		&ui.SelectedShaderID,
	)
	if err != nil {
		return nil, err
	}
	return &ui, nil
}

func getUserItem(ctx context.Context, q querier, userID, itemID int64) (*domain.UserItem, error) {
	row := q.QueryRow(ctx,
		`SELECT `+userItemColumns+` FROM user_items WHERE user_id = $1 AND item_id = $2`,
		userID, itemID)
	ui, err := scanUserItem(row)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get user item: %w", err)
	}
	return ui, nil
}

// querier is the subset of pgx query methods shared by pools and transactions
type querier interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// GetUserItem retrieves the ownership record for a (user, item) pair
func (r *LedgerRepository) GetUserItem(ctx context.Context, userID, itemID int64) (*domain.UserItem, error) {
	return getUserItem(ctx, r.db, userID, itemID)
}

// GetUserItem for Tx
func (t *LedgerTx) GetUserItem(ctx context.Context, userID, itemID int64) (*domain.UserItem, error) {
	return getUserItem(ctx, t.tx, userID, itemID)
}

// ListUserItems returns all ownership records for a user
func (r *LedgerRepository) ListUserItems(ctx context.Context, userID int64) ([]domain.UserItem, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+userItemColumns+` FROM user_items WHERE user_id = $1 ORDER BY item_id`, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query user items: %w", err)
	}
	defer rows.Close()

	var items []domain.UserItem
	for rows.Next() {
		ui, err := scanUserItem(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan user item: %w", err)
		}
		items = append(items, *ui)
	}
	return items, rows.Err()
}

// Grant creates a new ownership record with defaults
func (r *LedgerRepository) Grant(ctx context.Context, userID, itemID int64) (*domain.UserItem, error) {
	row := r.db.QueryRow(ctx,
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

// SetFavorite updates the favorite flag; returns false if no record exists
func (r *LedgerRepository) SetFavorite(ctx context.Context, userID, itemID int64, favorite bool) (bool, error) {
	tag, err := r.db.Exec(ctx,
		`UPDATE user_items SET favorite = $3 WHERE user_id = $1 AND item_id = $2`,
		userID, itemID, favorite)
	if err != nil {
		return false, fmt.Errorf("failed to update favorite: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

// SetChroma updates the selected chroma; nil clears the slot
func (r *LedgerRepository) SetChroma(ctx context.Context, userID, itemID int64, chromaID *int64) (bool, error) {
	tag, err := r.db.Exec(ctx,
		`UPDATE user_items SET selected_chroma_id = $3 WHERE user_id = $1 AND item_id = $2`,
		userID, itemID, chromaID)
	if err != nil {
		return false, fmt.Errorf("failed to update selected chroma: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

// SetShader updates the selected shader; nil clears the slot
func (r *LedgerRepository) SetShader(ctx context.Context, userID, itemID int64, shaderID *int64) (bool, error) {
	tag, err := r.db.Exec(ctx,
		`UPDATE user_items SET selected_shader_id = $3 WHERE user_id = $1 AND item_id = $2`,
		userID, itemID, shaderID)
	if err != nil {
		return false, fmt.Errorf("failed to update selected shader: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

// Unequip clears the equip flag on a single item with no side effects
func (r *LedgerRepository) Unequip(ctx context.Context, userID, itemID int64) (bool, error) {
	tag, err := r.db.Exec(ctx,
		`UPDATE user_items SET is_equipped = FALSE WHERE user_id = $1 AND item_id = $2`,
		userID, itemID)
	if err != nil {
		return false, fmt.Errorf("failed to unequip item: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

// UnequipSameType clears is_equipped on all owned items sharing the given
// item's type. Runs as an indexed join, not an in-memory scan.
func (t *LedgerTx) UnequipSameType(ctx context.Context, userID, itemID int64) error {
	_, err := t.tx.Exec(ctx,
		`UPDATE user_items ui
		 SET is_equipped = FALSE
		 FROM items i
		 WHERE ui.item_id = i.item_id
		   AND ui.user_id = $1
		   AND ui.is_equipped = TRUE
		   AND i.item_type_id = (SELECT item_type_id FROM items WHERE item_id = $2)`,
		userID, itemID)
	if err != nil {
		return fmt.Errorf("failed to unequip same-type items: %w", err)
	}
	return nil
}

// SetEquipped sets the equip flag on the target item
func (t *LedgerTx) SetEquipped(ctx context.Context, userID, itemID int64, equipped bool) (bool, error) {
	tag, err := t.tx.Exec(ctx,
		`UPDATE user_items SET is_equipped = $3 WHERE user_id = $1 AND item_id = $2`,
		userID, itemID, equipped)
	if err != nil {
		return false, fmt.Errorf("failed to set equipped: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}
