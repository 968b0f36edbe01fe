package usecase

import (
	"context"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/brightbuy/brightbuy-backend/internal/apperror"
	"github.com/brightbuy/brightbuy-backend/internal/customer"
	"github.com/brightbuy/brightbuy-backend/internal/customer/dto"
	"github.com/brightbuy/brightbuy-backend/internal/model"
)

type customerUseCase struct {
	repo   customer.Repository
	logger *zap.Logger
}

func NewCustomerUseCase(repo customer.Repository, log *zap.Logger) customer.UseCase {
	return &customerUseCase{
		repo:   repo,
		logger: log,
	}
}

func (uc *customerUseCase) ListCustomers(ctx context.Context) ([]model.CustomerSummary, error) {
	customers, err := uc.repo.FindAllWithTotals(ctx)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return customers, nil
}

func (uc *customerUseCase) GetCustomerDetails(ctx context.Context, customerID int64) (*dto.CustomerDetails, error) {
	c, err := uc.repo.FindByID(ctx, customerID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	if c == nil {
		return nil, apperror.NotFound("Customer not found")
	}

	orders, err := uc.repo.OrdersWithItemCounts(ctx, customerID)
	if err != nil {
		return nil, apperror.Internal(err)
	}

	addresses, err := uc.repo.AddressesByCustomer(ctx, customerID)
	if err != nil {
		return nil, apperror.Internal(err)
	}

	totalOrders := len(orders)
	totalSpent := decimal.Zero
	for _, o := range orders {
		totalSpent = totalSpent.Add(o.TotalPrice)
	}

	// Guard the division: zero orders means zero average, never an error.
	avgOrderValue := decimal.Zero
	if totalOrders > 0 {
		avgOrderValue = totalSpent.Div(decimal.NewFromInt(int64(totalOrders))).Round(2)
	}

	return &dto.CustomerDetails{
		Customer:      *c,
		TotalOrders:   totalOrders,
		TotalSpent:    totalSpent,
		AvgOrderValue: avgOrderValue,
		Orders:        orders,
		Addresses:     addresses,
	}, nil
}
