package usecase

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/brightbuy/brightbuy-backend/internal/apperror"
	"github.com/brightbuy/brightbuy-backend/internal/model"
)

type fakeRepo struct {
	customers map[int64]*model.Customer
	summaries []model.CustomerSummary
	orders    map[int64][]model.OrderSummary
	addresses map[int64][]model.Address
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		customers: map[int64]*model.Customer{},
		orders:    map[int64][]model.OrderSummary{},
		addresses: map[int64][]model.Address{},
	}
}

func (r *fakeRepo) FindAllWithTotals(ctx context.Context) ([]model.CustomerSummary, error) {
	return r.summaries, nil
}

func (r *fakeRepo) FindByID(ctx context.Context, customerID int64) (*model.Customer, error) {
	return r.customers[customerID], nil
}

func (r *fakeRepo) OrdersWithItemCounts(ctx context.Context, customerID int64) ([]model.OrderSummary, error) {
	return r.orders[customerID], nil
}

func (r *fakeRepo) AddressesByCustomer(ctx context.Context, customerID int64) ([]model.Address, error) {
	return r.addresses[customerID], nil
}

func TestGetCustomerDetails_NotFound(t *testing.T) {
	uc := NewCustomerUseCase(newFakeRepo(), zap.NewNop())

	_, err := uc.GetCustomerDetails(context.Background(), 42)
	require.Error(t, err)
	assert.Equal(t, apperror.KindNotFound, apperror.KindOf(err))
}

func TestGetCustomerDetails_ZeroOrders(t *testing.T) {
	repo := newFakeRepo()
	repo.customers[1] = &model.Customer{CustomerID: 1, FirstName: "Ana", Email: "ana@x.com"}
	uc := NewCustomerUseCase(repo, zap.NewNop())

	details, err := uc.GetCustomerDetails(context.Background(), 1)
	require.NoError(t, err)

	assert.Equal(t, 0, details.TotalOrders)
	assert.True(t, details.TotalSpent.IsZero())
	// Division by zero must be guarded, not surfaced.
	assert.True(t, details.AvgOrderValue.IsZero())
	assert.Empty(t, details.Orders)
}

func TestGetCustomerDetails_Stats(t *testing.T) {
	repo := newFakeRepo()
	repo.customers[1] = &model.Customer{CustomerID: 1, FirstName: "Ana"}
	repo.orders[1] = []model.OrderSummary{
		{Order: model.Order{OrderID: 10, TotalPrice: decimal.NewFromInt(40)}, ItemCount: 2},
		{Order: model.Order{OrderID: 11, TotalPrice: decimal.NewFromInt(20)}, ItemCount: 1},
	}
	repo.addresses[1] = []model.Address{{AddressID: 5, CustomerID: 1, City: "Colombo"}}
	uc := NewCustomerUseCase(repo, zap.NewNop())

	details, err := uc.GetCustomerDetails(context.Background(), 1)
	require.NoError(t, err)

	assert.Equal(t, 2, details.TotalOrders)
	assert.True(t, details.TotalSpent.Equal(decimal.NewFromInt(60)), "got %s", details.TotalSpent)
	assert.True(t, details.AvgOrderValue.Equal(decimal.NewFromInt(30)), "got %s", details.AvgOrderValue)
	assert.Len(t, details.Addresses, 1)
	assert.Equal(t, 2, details.Orders[0].ItemCount)
}

func TestListCustomers(t *testing.T) {
	repo := newFakeRepo()
	repo.summaries = []model.CustomerSummary{
		{Customer: model.Customer{CustomerID: 1}, TotalOrders: 3, TotalSpent: decimal.NewFromInt(300)},
		{Customer: model.Customer{CustomerID: 2}, TotalOrders: 0, TotalSpent: decimal.Zero},
	}
	uc := NewCustomerUseCase(repo, zap.NewNop())

	customers, err := uc.ListCustomers(context.Background())
	require.NoError(t, err)
	require.Len(t, customers, 2)
	assert.True(t, customers[1].TotalSpent.IsZero())
}
