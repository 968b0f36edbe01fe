package customer

import (
	"context"

	"github.com/brightbuy/brightbuy-backend/internal/customer/dto"
	"github.com/brightbuy/brightbuy-backend/internal/model"
)

type UseCase interface {
	// ListCustomers returns every customer with order count and lifetime
	// spend, highest spend first.
	ListCustomers(ctx context.Context) ([]model.CustomerSummary, error)

	// GetCustomerDetails returns the profile plus orders, addresses and
	// derived statistics.
	GetCustomerDetails(ctx context.Context, customerID int64) (*dto.CustomerDetails, error)
}
