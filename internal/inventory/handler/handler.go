package handler

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/brightbuy/brightbuy-backend/internal/api"
	"github.com/brightbuy/brightbuy-backend/internal/apperror"
	"github.com/brightbuy/brightbuy-backend/internal/auth"
	"github.com/brightbuy/brightbuy-backend/internal/inventory"
	"github.com/brightbuy/brightbuy-backend/internal/inventory/dto"
)

type InventoryHandler struct {
	uc     inventory.UseCase
	logger *zap.Logger
}

func NewInventoryHandler(uc inventory.UseCase, log *zap.Logger) *InventoryHandler {
	return &InventoryHandler{
		uc:     uc,
		logger: log,
	}
}

// MapRoutes mounts inventory routes on the staff group. The group already
// carries RequireStaff.
func (h *InventoryHandler) MapRoutes(staff fiber.Router) {
	staff.Get("/inventory", h.ListInventory)
	staff.Put("/inventory", h.AdjustStock)
	staff.Post("/inventory", h.AdjustStock)
	staff.Get("/inventory/updates", h.ListAdjustments)
}

func (h *InventoryHandler) ListInventory(ctx *fiber.Ctx) error {
	items, err := h.uc.ListInventory(ctx.UserContext())
	if err != nil {
		return api.Fail(ctx, h.logger, err)
	}
	return api.Success(ctx, fiber.StatusOK, fiber.Map{
		"inventory": items,
	})
}

type adjustStockRequest struct {
	VariantID      int64   `json:"variantId"`
	QuantityChange *int    `json:"quantityChange"`
	Notes          *string `json:"notes"`
}

func (h *InventoryHandler) AdjustStock(ctx *fiber.Ctx) error {
	var req adjustStockRequest
	if err := ctx.BodyParser(&req); err != nil {
		return api.Fail(ctx, h.logger, apperror.InvalidInput("Invalid request body"))
	}

	if req.VariantID == 0 || req.QuantityChange == nil {
		return api.Fail(ctx, h.logger, apperror.InvalidInput("Variant ID and quantity change are required"))
	}

	claims, ok := auth.CurrentStaff(ctx)
	if !ok {
		return api.Fail(ctx, h.logger, apperror.Unauthorized("Staff ID not found in token. Please login again."))
	}

	newQuantity, err := h.uc.AdjustStock(ctx.UserContext(), &dto.AdjustStockInput{
		VariantID:      req.VariantID,
		QuantityChange: *req.QuantityChange,
		StaffID:        claims.StaffID,
		Note:           req.Notes,
	})
	if err != nil {
		return api.Fail(ctx, h.logger, err)
	}

	return api.Success(ctx, fiber.StatusOK, fiber.Map{
		"message":     "Inventory updated successfully",
		"newQuantity": newQuantity,
	})
}

func (h *InventoryHandler) ListAdjustments(ctx *fiber.Ctx) error {
	filters := &dto.AdjustmentFilters{
		VariantID: int64(ctx.QueryInt("variantId")),
		StaffID:   int64(ctx.QueryInt("staffId")),
		Page:      ctx.QueryInt("page", 1),
		PageSize:  ctx.QueryInt("pageSize", 50),
	}

	items, total, err := h.uc.ListAdjustments(ctx.UserContext(), filters)
	if err != nil {
		return api.Fail(ctx, h.logger, err)
	}

	return api.Success(ctx, fiber.StatusOK, fiber.Map{
		"updates": items,
		"total":   total,
	})
}
