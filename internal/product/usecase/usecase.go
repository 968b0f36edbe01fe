package usecase

import (
	"context"

	"go.uber.org/zap"

	"github.com/brightbuy/brightbuy-backend/internal/apperror"
	"github.com/brightbuy/brightbuy-backend/internal/model"
	"github.com/brightbuy/brightbuy-backend/internal/product"
	"github.com/brightbuy/brightbuy-backend/internal/product/dto"
)

type productUseCase struct {
	repo   product.Repository
	logger *zap.Logger
}

func NewProductUseCase(repo product.Repository, log *zap.Logger) product.UseCase {
	return &productUseCase{
		repo:   repo,
		logger: log,
	}
}

func (uc *productUseCase) ListProducts(ctx context.Context, filters *dto.ProductFilters) ([]model.Product, int, error) {
	products, count, err := uc.repo.FindAll(ctx, filters)
	if err != nil {
		return nil, 0, apperror.Internal(err)
	}
	return products, count, nil
}

func (uc *productUseCase) GetProduct(ctx context.Context, productID int64) (*model.Product, error) {
	p, err := uc.repo.FindByID(ctx, productID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	if p == nil {
		return nil, apperror.NotFound("Product not found")
	}

	variants, err := uc.repo.VariantsByProduct(ctx, productID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	p.Variants = variants

	return p, nil
}

func (uc *productUseCase) ListCategories(ctx context.Context) ([]model.Category, error) {
	categories, err := uc.repo.FindAllCategories(ctx)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return categories, nil
}
