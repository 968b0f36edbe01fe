package customer

import (
	"context"

	"github.com/brightbuy/brightbuy-backend/internal/model"
)

type Repository interface {
	FindAllWithTotals(ctx context.Context) ([]model.CustomerSummary, error)

	// FindByID returns nil when the customer does not exist.
	FindByID(ctx context.Context, customerID int64) (*model.Customer, error)

	OrdersWithItemCounts(ctx context.Context, customerID int64) ([]model.OrderSummary, error)

	AddressesByCustomer(ctx context.Context, customerID int64) ([]model.Address, error)
}
