package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type Product struct {
	ProductID   int64            `db:"product_id" json:"product_id"`
	CategoryID  *int64           `db:"category_id" json:"category_id"`
	Name        string           `db:"name" json:"name"`
	Brand       string           `db:"brand" json:"brand"`
	Description *string          `db:"description" json:"description"`
	IsActive    bool             `db:"is_active" json:"is_active"`
	CreatedAt   time.Time        `db:"created_at" json:"created_at"`
	Variants    []ProductVariant `db:"-" json:"variants,omitempty"`
}

// ProductVariant is one purchasable configuration (color+size) with its own
// SKU, price and stock.
type ProductVariant struct {
	VariantID int64           `db:"variant_id" json:"variant_id"`
	ProductID int64           `db:"product_id" json:"product_id"`
	SKU       string          `db:"sku" json:"sku"`
	Color     string          `db:"color" json:"color"`
	Size      string          `db:"size" json:"size"`
	Price     decimal.Decimal `db:"price" json:"price"`
	CreatedAt time.Time       `db:"created_at" json:"created_at"`
}
