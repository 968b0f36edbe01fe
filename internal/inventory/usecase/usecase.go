package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/brightbuy/brightbuy-backend/internal/apperror"
	"github.com/brightbuy/brightbuy-backend/internal/inventory"
	"github.com/brightbuy/brightbuy-backend/internal/inventory/dto"
	"github.com/brightbuy/brightbuy-backend/internal/model"
	"github.com/brightbuy/brightbuy-backend/pkg/broker"
)

type inventoryUseCase struct {
	repo     inventory.Repository
	producer inventory.EventPublisher
	logger   *zap.Logger
}

func NewInventoryUseCase(repo inventory.Repository, producer inventory.EventPublisher, log *zap.Logger) inventory.UseCase {
	return &inventoryUseCase{
		repo:     repo,
		producer: producer,
		logger:   log,
	}
}

func (uc *inventoryUseCase) ListInventory(ctx context.Context) ([]model.InventoryItem, error) {
	items, err := uc.repo.ListItems(ctx)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return items, nil
}

func (uc *inventoryUseCase) AdjustStock(ctx context.Context, input *dto.AdjustStockInput) (int, error) {
	if input.VariantID == 0 {
		return 0, apperror.InvalidInput("Variant ID and quantity change are required")
	}
	if input.StaffID == 0 {
		return 0, apperror.Unauthorized("Staff ID not found in token. Please login again.")
	}

	exists, err := uc.repo.StaffExists(ctx, input.StaffID)
	if err != nil {
		return 0, apperror.Internal(fmt.Errorf("failed to resolve staff: %w", err))
	}
	if !exists {
		return 0, apperror.InvalidOperation("Staff member could not be resolved")
	}

	newQuantity, err := uc.repo.AdjustStockWithLog(ctx, input)
	if err != nil {
		switch {
		case errors.Is(err, inventory.ErrNoInventoryRow):
			return 0, apperror.NotFound("Inventory not found for this variant")
		case errors.Is(err, inventory.ErrStockBelowZero):
			return 0, apperror.InvalidOperation("Insufficient stock. Cannot reduce below 0.")
		default:
			return 0, apperror.Internal(err)
		}
	}

	uc.logger.Info("stock adjusted",
		zap.Int64("variant_id", input.VariantID),
		zap.Int64("staff_id", input.StaffID),
		zap.Int("quantity_change", input.QuantityChange),
		zap.Int("new_quantity", newQuantity),
	)

	uc.publishStockAdjusted(ctx, input, newQuantity)

	return newQuantity, nil
}

func (uc *inventoryUseCase) ListAdjustments(ctx context.Context, filters *dto.AdjustmentFilters) ([]model.InventoryAdjustment, int, error) {
	items, count, err := uc.repo.ListAdjustments(ctx, filters)
	if err != nil {
		return nil, 0, apperror.Internal(err)
	}
	return items, count, nil
}

// publishStockAdjusted emits the event after commit, best effort. A broker
// failure never fails the adjustment that already committed.
func (uc *inventoryUseCase) publishStockAdjusted(ctx context.Context, input *dto.AdjustStockInput, newQuantity int) {
	if uc.producer == nil {
		return
	}

	event := broker.StockAdjustedEvent{
		EventID:   uuid.New().String(),
		EventType: broker.EventTypeStockAdjusted,
		Payload: broker.StockAdjustedPayload{
			VariantID:      input.VariantID,
			StaffID:        input.StaffID,
			OldQuantity:    newQuantity - input.QuantityChange,
			QuantityChange: input.QuantityChange,
			NewQuantity:    newQuantity,
		},
		Timestamp: time.Now(),
	}

	if err := uc.producer.Publish(ctx, fmt.Sprintf("variant-%d", input.VariantID), event); err != nil {
		uc.logger.Warn("failed to publish stock adjusted event",
			zap.Int64("variant_id", input.VariantID),
			zap.Error(err),
		)
	}
}
