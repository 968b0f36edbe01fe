package inventory

import (
	"context"
	"errors"

	"github.com/brightbuy/brightbuy-backend/internal/inventory/dto"
	"github.com/brightbuy/brightbuy-backend/internal/model"
)

// Sentinel errors surfaced by AdjustStockWithLog so the usecase can map them
// to the API error taxonomy.
var (
	ErrNoInventoryRow = errors.New("inventory row not found for variant")
	ErrStockBelowZero = errors.New("stock cannot go below zero")
)

type Repository interface {
	ListItems(ctx context.Context) ([]model.InventoryItem, error)

	// AdjustStockWithLog runs the read-check-write-log sequence in one
	// transaction with a row lock on the inventory record, so concurrent
	// adjustments to the same variant serialize instead of losing updates.
	AdjustStockWithLog(ctx context.Context, input *dto.AdjustStockInput) (int, error)

	ListAdjustments(ctx context.Context, filters *dto.AdjustmentFilters) ([]model.InventoryAdjustment, int, error)

	StaffExists(ctx context.Context, staffID int64) (bool, error)
}
