package product

import (
	"context"

	"github.com/brightbuy/brightbuy-backend/internal/model"
	"github.com/brightbuy/brightbuy-backend/internal/product/dto"
)

type UseCase interface {
	ListProducts(ctx context.Context, filters *dto.ProductFilters) ([]model.Product, int, error)

	// GetProduct returns the product with its variants.
	GetProduct(ctx context.Context, productID int64) (*model.Product, error)

	ListCategories(ctx context.Context) ([]model.Category, error)
}
