package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ritualnet/backend/internal/domain"
)

// CatalogRepository implements the catalog repository for PostgreSQL
type CatalogRepository struct {
	db *pgxpool.Pool
}

// NewCatalogRepository creates a new CatalogRepository
func NewCatalogRepository(db *pgxpool.Pool) *CatalogRepository {
	return &CatalogRepository{db: db}
}

const itemColumns = `item_id, item_name, item_type_id, rarity_id, silver_cost, gold_cost, unity_name, is_general_store_item`

func scanItem(row pgx.Row) (*domain.Item, error) {
	var item domain.Item
	err := row.Scan(
		&item.ID,
		&item.Name,
		&item.ItemTypeID,
		&item.RarityID,
		&item.SilverCost,
		&item.GoldCost,
		&item.UnityName,
		&item.IsGeneralStoreItem,
	)
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// GetItem retrieves an item by ID
func (r *CatalogRepository) GetItem(ctx context.Context, itemID int64) (*domain.Item, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+itemColumns+` FROM items WHERE item_id = $1`, itemID)
	item, err := scanItem(row)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil // Return nil if item not found
		}
		return nil, fmt.Errorf("failed to get item: %w", err)
	}
	return item, nil
}

// GetChroma retrieves a chroma by ID
func (r *CatalogRepository) GetChroma(ctx context.Context, chromaID int64) (*domain.Chroma, error) {
	var c domain.Chroma
	err := r.db.QueryRow(ctx,
		`SELECT chroma_id, item_id, chroma_name, required_prestige_level, required_item_level, silver_price, gold_price
		 FROM chromas WHERE chroma_id = $1`, chromaID).
		Scan(&c.ID, &c.ItemID, &c.Name, &c.RequiredPrestigeLevel, &c.RequiredItemLevel, &c.SilverPrice, &c.GoldPrice)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get chroma: %w", err)
	}
	return &c, nil
}

// GetShader retrieves a shader by ID
func (r *CatalogRepository) GetShader(ctx context.Context, shaderID int64) (*domain.Shader, error) {
	var s domain.Shader
	err := r.db.QueryRow(ctx,
		`SELECT shader_id, item_id, shader_name, shader_type, required_prestige_level, required_item_level, silver_price, gold_price
		 FROM shaders WHERE shader_id = $1`, shaderID).
		Scan(&s.ID, &s.ItemID, &s.Name, &s.ShaderType, &s.RequiredPrestigeLevel, &s.RequiredItemLevel, &s.SilverPrice, &s.GoldPrice)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get shader: %w", err)
	}
	return &s, nil
}

// GetGeneralStoreItems returns general-store items the user does not own yet
func (r *CatalogRepository) GetGeneralStoreItems(ctx context.Context, userID int64) ([]domain.Item, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+itemColumns+`
		 FROM items
		 WHERE is_general_store_item = TRUE
		   AND item_id NOT IN (SELECT item_id FROM user_items WHERE user_id = $1)
		 ORDER BY item_id`, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query general store items: %w", err)
	}
	defer rows.Close()

	var items []domain.Item
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan item: %w", err)
		}
		items = append(items, *item)
	}
	return items, rows.Err()
}
