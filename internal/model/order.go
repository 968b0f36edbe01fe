package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type Order struct {
	OrderID    int64           `db:"order_id" json:"order_id"`
	CustomerID int64           `db:"customer_id" json:"customer_id"`
	OrderDate  time.Time       `db:"order_date" json:"order_date"`
	TotalPrice decimal.Decimal `db:"total_price" json:"total_price"`
	Status     string          `db:"status" json:"status"`
}

// OrderSummary is an order row with its line-item count, as shown on the
// customer details view.
type OrderSummary struct {
	Order
	ItemCount int `db:"item_count" json:"item_count"`
}

type OrderItem struct {
	OrderItemID int64           `db:"order_item_id" json:"order_item_id"`
	OrderID     int64           `db:"order_id" json:"order_id"`
	VariantID   int64           `db:"variant_id" json:"variant_id"`
	Quantity    int             `db:"quantity" json:"quantity"`
	UnitPrice   decimal.Decimal `db:"unit_price" json:"unit_price"`
}
