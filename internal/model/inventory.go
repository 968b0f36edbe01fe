package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type InventoryRecord struct {
	VariantID int64     `db:"variant_id" json:"variant_id"`
	Quantity  int       `db:"quantity" json:"quantity"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

// InventoryItem is one row of the staff inventory listing: variant joined
// with its product, stock zero when no inventory row exists yet.
type InventoryItem struct {
	ProductID   int64           `db:"product_id" json:"product_id"`
	ProductName string          `db:"product_name" json:"product_name"`
	Brand       string          `db:"brand" json:"brand"`
	VariantID   int64           `db:"variant_id" json:"variant_id"`
	SKU         string          `db:"sku" json:"sku"`
	Color       string          `db:"color" json:"color"`
	Size        string          `db:"size" json:"size"`
	Price       decimal.Decimal `db:"price" json:"price"`
	Stock       int             `db:"stock" json:"stock"`
}

// InventoryAdjustment is the append-only audit record of one stock change.
// Rows are never updated or deleted.
type InventoryAdjustment struct {
	UpdateID      int64     `db:"update_id" json:"update_id"`
	VariantID     int64     `db:"variant_id" json:"variant_id"`
	StaffID       int64     `db:"staff_id" json:"staff_id"`
	OldQuantity   int       `db:"old_quantity" json:"old_quantity"`
	AddedQuantity int       `db:"added_quantity" json:"added_quantity"`
	Note          *string   `db:"note" json:"note"`
	CreatedAt     time.Time `db:"created_at" json:"created_at"`
}
