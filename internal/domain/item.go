package domain

// Item is a catalog entry. Items are immutable outside catalog management;
// prices are nullable because not every item is sold in every store.
type Item struct {
	ID                 int64  `json:"item_id" db:"item_id"`
	Name               string `json:"item_name" db:"item_name"`
	ItemTypeID         int64  `json:"item_type_id" db:"item_type_id"`
	RarityID           int64  `json:"rarity_id" db:"rarity_id"`
	SilverCost         *int   `json:"silver_cost" db:"silver_cost"`
	GoldCost           *int   `json:"gold_cost" db:"gold_cost"`
	UnityName          string `json:"unity_name" db:"unity_name"`
	IsGeneralStoreItem bool   `json:"is_general_store_item" db:"is_general_store_item"`
}

// Chroma is a per-item color variant a player can select on an owned item.
type Chroma struct {
	ID                    int64  `json:"chroma_id" db:"chroma_id"`
	ItemID                int64  `json:"item_id" db:"item_id"`
	Name                  string `json:"chroma_name" db:"chroma_name"`
	RequiredPrestigeLevel int    `json:"required_prestige_level" db:"required_prestige_level"`
	RequiredItemLevel     int    `json:"required_item_level" db:"required_item_level"`
	SilverPrice           int    `json:"silver_price" db:"silver_price"`
	GoldPrice             int    `json:"gold_price" db:"gold_price"`
}

// Shader is a per-item material variant a player can select on an owned item.
type Shader struct {
	ID                    int64  `json:"shader_id" db:"shader_id"`
	ItemID                int64  `json:"item_id" db:"item_id"`
	Name                  string `json:"shader_name" db:"shader_name"`
	ShaderType            string `json:"shader_type" db:"shader_type"`
	RequiredPrestigeLevel int    `json:"required_prestige_level" db:"required_prestige_level"`
	RequiredItemLevel     int    `json:"required_item_level" db:"required_item_level"`
	SilverPrice           int    `json:"silver_price" db:"silver_price"`
	GoldPrice             int    `json:"gold_price" db:"gold_price"`
}
