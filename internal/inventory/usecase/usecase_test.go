package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/brightbuy/brightbuy-backend/internal/apperror"
	"github.com/brightbuy/brightbuy-backend/internal/inventory"
	"github.com/brightbuy/brightbuy-backend/internal/inventory/dto"
	"github.com/brightbuy/brightbuy-backend/internal/model"
	"github.com/brightbuy/brightbuy-backend/pkg/broker"
)

type fakeRepo struct {
	items       []model.InventoryItem
	quantities  map[int64]int
	adjustments []model.InventoryAdjustment
	staff       map[int64]bool
	listErr     error
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		quantities: map[int64]int{},
		staff:      map[int64]bool{},
	}
}

func (r *fakeRepo) ListItems(ctx context.Context) ([]model.InventoryItem, error) {
	return r.items, nil
}

func (r *fakeRepo) AdjustStockWithLog(ctx context.Context, input *dto.AdjustStockInput) (int, error) {
	current, ok := r.quantities[input.VariantID]
	if !ok {
		return 0, inventory.ErrNoInventoryRow
	}
	newQty := current + input.QuantityChange
	if newQty < 0 {
		return 0, inventory.ErrStockBelowZero
	}
	r.quantities[input.VariantID] = newQty
	r.adjustments = append(r.adjustments, model.InventoryAdjustment{
		VariantID:     input.VariantID,
		StaffID:       input.StaffID,
		OldQuantity:   current,
		AddedQuantity: input.QuantityChange,
		Note:          input.Note,
	})
	return newQty, nil
}

func (r *fakeRepo) ListAdjustments(ctx context.Context, f *dto.AdjustmentFilters) ([]model.InventoryAdjustment, int, error) {
	if r.listErr != nil {
		return nil, 0, r.listErr
	}
	return r.adjustments, len(r.adjustments), nil
}

type fakePublisher struct {
	keys   []string
	events []any
}

func (p *fakePublisher) Publish(ctx context.Context, key string, event any) error {
	p.keys = append(p.keys, key)
	p.events = append(p.events, event)
	return nil
}

func (r *fakeRepo) StaffExists(ctx context.Context, staffID int64) (bool, error) {
	return r.staff[staffID], nil
}

func TestAdjustStock_AppliesDeltaAndLogs(t *testing.T) {
	repo := newFakeRepo()
	repo.quantities[1] = 5
	repo.staff[7] = true
	uc := NewInventoryUseCase(repo, nil, zap.NewNop())

	note := "sale"
	newQty, err := uc.AdjustStock(context.Background(), &dto.AdjustStockInput{
		VariantID:      1,
		QuantityChange: -3,
		StaffID:        7,
		Note:           &note,
	})
	require.NoError(t, err)
	assert.Equal(t, 2, newQty)
	assert.Equal(t, 2, repo.quantities[1])

	require.Len(t, repo.adjustments, 1)
	entry := repo.adjustments[0]
	assert.Equal(t, 5, entry.OldQuantity)
	assert.Equal(t, -3, entry.AddedQuantity)
	assert.Equal(t, int64(7), entry.StaffID)
	require.NotNil(t, entry.Note)
	assert.Equal(t, "sale", *entry.Note)
}

func TestAdjustStock_InsufficientStock(t *testing.T) {
	repo := newFakeRepo()
	repo.quantities[1] = 2
	repo.staff[7] = true
	uc := NewInventoryUseCase(repo, nil, zap.NewNop())

	_, err := uc.AdjustStock(context.Background(), &dto.AdjustStockInput{
		VariantID:      1,
		QuantityChange: -10,
		StaffID:        7,
	})
	require.Error(t, err)
	assert.Equal(t, apperror.KindInvalidOperation, apperror.KindOf(err))

	// Quantity and audit log untouched on failure.
	assert.Equal(t, 2, repo.quantities[1])
	assert.Empty(t, repo.adjustments)
}

func TestAdjustStock_UnknownVariant(t *testing.T) {
	repo := newFakeRepo()
	repo.staff[7] = true
	uc := NewInventoryUseCase(repo, nil, zap.NewNop())

	_, err := uc.AdjustStock(context.Background(), &dto.AdjustStockInput{
		VariantID:      99,
		QuantityChange: 1,
		StaffID:        7,
	})
	require.Error(t, err)
	assert.Equal(t, apperror.KindNotFound, apperror.KindOf(err))
	assert.Empty(t, repo.adjustments)
}

func TestAdjustStock_UnresolvedStaff(t *testing.T) {
	repo := newFakeRepo()
	repo.quantities[1] = 5
	uc := NewInventoryUseCase(repo, nil, zap.NewNop())

	_, err := uc.AdjustStock(context.Background(), &dto.AdjustStockInput{
		VariantID:      1,
		QuantityChange: 1,
		StaffID:        42,
	})
	require.Error(t, err)
	assert.Equal(t, apperror.KindInvalidOperation, apperror.KindOf(err))
}

func TestAdjustStock_MissingStaffID(t *testing.T) {
	repo := newFakeRepo()
	repo.quantities[1] = 5
	uc := NewInventoryUseCase(repo, nil, zap.NewNop())

	_, err := uc.AdjustStock(context.Background(), &dto.AdjustStockInput{
		VariantID:      1,
		QuantityChange: 1,
	})
	require.Error(t, err)
	assert.Equal(t, apperror.KindUnauthorized, apperror.KindOf(err))
}

func TestAdjustStock_SequenceKeepsInvariant(t *testing.T) {
	repo := newFakeRepo()
	repo.quantities[1] = 5
	repo.staff[7] = true
	uc := NewInventoryUseCase(repo, nil, zap.NewNop())

	newQty, err := uc.AdjustStock(context.Background(), &dto.AdjustStockInput{
		VariantID: 1, QuantityChange: -3, StaffID: 7,
	})
	require.NoError(t, err)
	assert.Equal(t, 2, newQty)

	_, err = uc.AdjustStock(context.Background(), &dto.AdjustStockInput{
		VariantID: 1, QuantityChange: -10, StaffID: 7,
	})
	require.Error(t, err)
	assert.Equal(t, apperror.KindInvalidOperation, apperror.KindOf(err))
	assert.Equal(t, 2, repo.quantities[1])
	assert.Len(t, repo.adjustments, 1)
}

func TestAdjustStock_PublishesEventAfterSuccess(t *testing.T) {
	repo := newFakeRepo()
	repo.quantities[1] = 5
	repo.staff[7] = true
	pub := &fakePublisher{}
	uc := NewInventoryUseCase(repo, pub, zap.NewNop())

	newQty, err := uc.AdjustStock(context.Background(), &dto.AdjustStockInput{
		VariantID: 1, QuantityChange: -3, StaffID: 7,
	})
	require.NoError(t, err)
	assert.Equal(t, 2, newQty)

	require.Len(t, pub.events, 1)
	assert.Equal(t, "variant-1", pub.keys[0])

	event, ok := pub.events[0].(broker.StockAdjustedEvent)
	require.True(t, ok)
	assert.Equal(t, broker.EventTypeStockAdjusted, event.EventType)
	assert.NotEmpty(t, event.EventID)
	assert.Equal(t, int64(1), event.Payload.VariantID)
	assert.Equal(t, int64(7), event.Payload.StaffID)
	assert.Equal(t, 5, event.Payload.OldQuantity)
	assert.Equal(t, -3, event.Payload.QuantityChange)
	assert.Equal(t, 2, event.Payload.NewQuantity)
}

func TestAdjustStock_NoEventWhenAdjustmentFails(t *testing.T) {
	repo := newFakeRepo()
	repo.quantities[1] = 2
	repo.staff[7] = true
	pub := &fakePublisher{}
	uc := NewInventoryUseCase(repo, pub, zap.NewNop())

	_, err := uc.AdjustStock(context.Background(), &dto.AdjustStockInput{
		VariantID: 1, QuantityChange: -10, StaffID: 7,
	})
	require.Error(t, err)
	assert.Empty(t, pub.events)

	_, err = uc.AdjustStock(context.Background(), &dto.AdjustStockInput{
		VariantID: 99, QuantityChange: 1, StaffID: 7,
	})
	require.Error(t, err)
	assert.Empty(t, pub.events)
}

func TestListAdjustments_RepoError(t *testing.T) {
	repo := newFakeRepo()
	repo.listErr = errors.New("scan failed")
	uc := NewInventoryUseCase(repo, nil, zap.NewNop())

	_, _, err := uc.ListAdjustments(context.Background(), &dto.AdjustmentFilters{})
	require.Error(t, err)
	assert.Equal(t, apperror.KindInternal, apperror.KindOf(err))
}

func TestListInventory(t *testing.T) {
	repo := newFakeRepo()
	repo.items = []model.InventoryItem{
		{VariantID: 1, ProductName: "Phone", Stock: 3},
		{VariantID: 2, ProductName: "Phone", Stock: 0},
	}
	uc := NewInventoryUseCase(repo, nil, zap.NewNop())

	items, err := uc.ListInventory(context.Background())
	require.NoError(t, err)
	assert.Len(t, items, 2)
	assert.Equal(t, 0, items[1].Stock)
}
