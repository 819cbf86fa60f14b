package domain

import "time"

// User is a registered account with two independent currency balances.
// Balances are non-negative; they are mutated only inside purchase
// transactions or other granting flows.
type User struct {
	ID           int64     `json:"user_id" db:"user_id"`
	Username     string    `json:"username" db:"username"`
	Email        string    `json:"email" db:"email"`
	PasswordHash string    `json:"-" db:"password_hash"`
	GoldAmount   int       `json:"gold_amount" db:"gold_amount"`
	SilverAmount int       `json:"silver_amount" db:"silver_amount"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
}

// UserItem is the per-user, per-item ownership record. One row exists per
// (user_id, item_id) pair; it is created exactly once at first grant.
type UserItem struct {
	ID               int64  `json:"user_item_id" db:"user_item_id"`
	UserID           int64  `json:"user_id" db:"user_id"`
	ItemID           int64  `json:"item_id" db:"item_id"`
	ItemLevel        int    `json:"item_level" db:"item_level"`
	ItemXP           int    `json:"item_xp" db:"item_xp"`
	PrestigeLevel    int    `json:"prestige_level" db:"prestige_level"`
	IsEquipped       bool   `json:"is_equipped" db:"is_equipped"`
	Favorite         bool   `json:"favorite" db:"favorite"`
	SelectedChromaID *int64 `json:"selected_chroma_id" db:"selected_chroma_id"`
	SelectedShaderID *int64 `json:"selected_shader_id" db:"selected_shader_id"`
}

// Grant defaults for a freshly created ownership record.
const (
	DefaultItemLevel     = 1
	DefaultItemXP        = 0
	DefaultPrestigeLevel = 0
)
