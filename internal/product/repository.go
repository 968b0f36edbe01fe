package product

import (
	"context"

	"github.com/brightbuy/brightbuy-backend/internal/model"
	"github.com/brightbuy/brightbuy-backend/internal/product/dto"
)

type Repository interface {
	FindAll(ctx context.Context, filters *dto.ProductFilters) ([]model.Product, int, error)

	// FindByID returns nil when the product does not exist.
	FindByID(ctx context.Context, productID int64) (*model.Product, error)

	VariantsByProduct(ctx context.Context, productID int64) ([]model.ProductVariant, error)

	FindAllCategories(ctx context.Context) ([]model.Category, error)
}
