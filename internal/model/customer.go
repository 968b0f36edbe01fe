package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type Customer struct {
	CustomerID int64     `db:"customer_id" json:"customer_id"`
	FirstName  string    `db:"first_name" json:"first_name"`
	LastName   string    `db:"last_name" json:"last_name"`
	Email      string    `db:"email" json:"email"`
	Phone      *string   `db:"phone" json:"phone"`
	CreatedAt  time.Time `db:"created_at" json:"created_at"`
}

// CustomerSummary is the listing row: profile plus order count and lifetime
// spend (sum of line-item quantity x unit price, zero when no orders).
type CustomerSummary struct {
	Customer
	TotalOrders int             `db:"total_orders" json:"total_orders"`
	TotalSpent  decimal.Decimal `db:"total_spent" json:"total_spent"`
}

type Address struct {
	AddressID  int64   `db:"address_id" json:"address_id"`
	CustomerID int64   `db:"customer_id" json:"customer_id"`
	Line1      string  `db:"line1" json:"line1"`
	Line2      *string `db:"line2" json:"line2"`
	City       string  `db:"city" json:"city"`
	District   *string `db:"district" json:"district"`
	PostalCode string  `db:"postal_code" json:"postal_code"`
	IsDefault  bool    `db:"is_default" json:"is_default"`
}
