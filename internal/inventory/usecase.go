package inventory

import (
	"context"

	"github.com/brightbuy/brightbuy-backend/internal/inventory/dto"
	"github.com/brightbuy/brightbuy-backend/internal/model"
)

// EventPublisher is the broker seam for stock events. A nil publisher
// disables emission.
type EventPublisher interface {
	Publish(ctx context.Context, key string, event any) error
}

type UseCase interface {
	// ListInventory returns every variant with its product info and current
	// stock, zero when no inventory row exists.
	ListInventory(ctx context.Context) ([]model.InventoryItem, error)

	// AdjustStock applies a signed quantity change and appends exactly one
	// audit entry, atomically. Returns the new quantity.
	AdjustStock(ctx context.Context, input *dto.AdjustStockInput) (int, error)

	ListAdjustments(ctx context.Context, filters *dto.AdjustmentFilters) ([]model.InventoryAdjustment, int, error)
}
