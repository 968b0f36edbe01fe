package handler

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/brightbuy/brightbuy-backend/internal/api"
	"github.com/brightbuy/brightbuy-backend/internal/apperror"
	"github.com/brightbuy/brightbuy-backend/internal/product"
	"github.com/brightbuy/brightbuy-backend/internal/product/dto"
)

type ProductHandler struct {
	uc     product.UseCase
	logger *zap.Logger
}

func NewProductHandler(uc product.UseCase, log *zap.Logger) *ProductHandler {
	return &ProductHandler{
		uc:     uc,
		logger: log,
	}
}

// MapRoutes mounts the public catalog routes.
func (h *ProductHandler) MapRoutes(apiGroup fiber.Router) {
	apiGroup.Get("/products", h.ListProducts)
	apiGroup.Get("/products/:productId", h.GetProduct)
	apiGroup.Get("/categories", h.ListCategories)
}

func (h *ProductHandler) ListProducts(ctx *fiber.Ctx) error {
	filters := &dto.ProductFilters{
		CategoryID:  int64(ctx.QueryInt("categoryId")),
		SearchQuery: ctx.Query("search"),
		SortBy:      ctx.Query("sortBy"),
		SortOrder:   ctx.Query("sortOrder"),
		Page:        ctx.QueryInt("page", 1),
		PageSize:    ctx.QueryInt("pageSize", 20),
	}
	if v := ctx.Query("isActive"); v != "" {
		active := v == "true" || v == "1"
		filters.IsActive = &active
	}

	products, total, err := h.uc.ListProducts(ctx.UserContext(), filters)
	if err != nil {
		return api.Fail(ctx, h.logger, err)
	}

	return api.Success(ctx, fiber.StatusOK, fiber.Map{
		"products": products,
		"total":    total,
	})
}

func (h *ProductHandler) GetProduct(ctx *fiber.Ctx) error {
	productID, err := strconv.ParseInt(ctx.Params("productId"), 10, 64)
	if err != nil || productID <= 0 {
		return api.Fail(ctx, h.logger, apperror.InvalidInput("Invalid product id"))
	}

	p, err := h.uc.GetProduct(ctx.UserContext(), productID)
	if err != nil {
		return api.Fail(ctx, h.logger, err)
	}

	return api.Success(ctx, fiber.StatusOK, fiber.Map{
		"product": p,
	})
}

func (h *ProductHandler) ListCategories(ctx *fiber.Ctx) error {
	categories, err := h.uc.ListCategories(ctx.UserContext())
	if err != nil {
		return api.Fail(ctx, h.logger, err)
	}

	return api.Success(ctx, fiber.StatusOK, fiber.Map{
		"categories": categories,
	})
}
