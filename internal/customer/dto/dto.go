package dto

import (
	"github.com/shopspring/decimal"

	"github.com/brightbuy/brightbuy-backend/internal/model"
)

type CustomerDetails struct {
	model.Customer
	TotalOrders   int                  `json:"total_orders"`
	TotalSpent    decimal.Decimal      `json:"total_spent"`
	AvgOrderValue decimal.Decimal      `json:"avg_order_value"`
	Orders        []model.OrderSummary `json:"orders"`
	Addresses     []model.Address      `json:"addresses"`
}
