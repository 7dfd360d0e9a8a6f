package models

import "time"

// Stock categories.
const (
	StockCategoryElectronic      = "Electronic"
	StockCategoryStationeryItems = "StationeryItems"
	StockCategoryFoodInventory   = "FoodInventory"
)

// StockItem is an inventory entry tracked by a caller-supplied unique key.
// Count is mutated only through the reconciler; it equals the sum of all
// adjustment deltas for the item and never goes negative.
type StockItem struct {
	ID        int64     `json:"id" db:"id"`
	StockID   string    `json:"stock_id" db:"stock_id" binding:"required"`
	Name      string    `json:"name" db:"name" binding:"required"`
	Category  string    `json:"category" db:"category" binding:"required"`
	Count     int64     `json:"count" db:"count"`
	ImageID   *string   `json:"image_id,omitempty" db:"image_id"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// StockAdjustment is one immutable ledger entry recording a signed change
// to an item's count and who made it. ActorName is a snapshot taken at
// adjustment time; later renames do not rewrite history.
type StockAdjustment struct {
	ID        int64     `json:"id" db:"id"`
	StockID   string    `json:"stock_id" db:"stock_id"`
	Delta     int64     `json:"delta" db:"delta"`
	ActorID   string    `json:"actor_id" db:"actor_id"`
	ActorName string    `json:"actor_name" db:"actor_name"`
	UnitPrice *float64  `json:"unit_price,omitempty" db:"unit_price"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// IsValidStockCategory reports whether the category is in the closed set.
func IsValidStockCategory(category string) bool {
	switch category {
	case StockCategoryElectronic, StockCategoryStationeryItems, StockCategoryFoodInventory:
		return true
	default:
		return false
	}
}
