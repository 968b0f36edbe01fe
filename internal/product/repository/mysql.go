package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"

	"github.com/brightbuy/brightbuy-backend/internal/model"
	"github.com/brightbuy/brightbuy-backend/internal/product/dto"
)

type MySQLRepository struct {
	DB *sqlx.DB
}

func NewMySQLRepository(db *sqlx.DB) *MySQLRepository {
	return &MySQLRepository{DB: db}
}

func (r *MySQLRepository) FindAll(ctx context.Context, f *dto.ProductFilters) ([]model.Product, int, error) {
	var products []model.Product
	var count int

	conditions := []string{}
	args := map[string]interface{}{}

	if f.CategoryID != 0 {
		conditions = append(conditions, "category_id = :category_id")
		args["category_id"] = f.CategoryID
	}
	if f.IsActive != nil {
		conditions = append(conditions, "is_active = :is_active")
		args["is_active"] = *f.IsActive
	}
	if f.SearchQuery != "" {
		conditions = append(conditions, "(name LIKE :search OR brand LIKE :search)")
		args["search"] = "%" + f.SearchQuery + "%"
	}

	whereClause := ""
	if len(conditions) > 0 {
		whereClause = " WHERE " + strings.Join(conditions, " AND ")
	}

	countQuery := "SELECT count(*) FROM products" + whereClause
	rows, err := r.DB.NamedQueryContext(ctx, countQuery, args)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()
	if rows.Next() {
		if err := rows.Scan(&count); err != nil {
			return nil, 0, err
		}
	}

	// Whitelisted sort columns only.
	orderBy := "created_at DESC"
	switch f.SortBy {
	case "name":
		orderBy = "name"
	case "brand":
		orderBy = "brand"
	case "created_at":
		orderBy = "created_at"
	}
	if f.SortBy != "" {
		if strings.ToLower(f.SortOrder) == "desc" {
			orderBy += " DESC"
		} else {
			orderBy += " ASC"
		}
	}

	query := fmt.Sprintf(
		"SELECT product_id, category_id, name, brand, description, is_active, created_at FROM products%s ORDER BY %s",
		whereClause, orderBy,
	)
	if f.PageSize > 0 {
		offset := (f.Page - 1) * f.PageSize
		query += fmt.Sprintf(" LIMIT %d OFFSET %d", f.PageSize, offset)
	}

	nstmt, err := r.DB.PrepareNamedContext(ctx, query)
	if err != nil {
		return nil, 0, err
	}
	defer nstmt.Close()

	err = nstmt.SelectContext(ctx, &products, args)
	return products, count, err
}

func (r *MySQLRepository) FindByID(ctx context.Context, productID int64) (*model.Product, error) {
	var p model.Product
	query := `
        SELECT product_id, category_id, name, brand, description, is_active, created_at
        FROM products
        WHERE product_id = ?
        LIMIT 1
    `
	err := r.DB.GetContext(ctx, &p, query, productID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &p, nil
}

func (r *MySQLRepository) VariantsByProduct(ctx context.Context, productID int64) ([]model.ProductVariant, error) {
	variants := []model.ProductVariant{}
	query := `
        SELECT variant_id, product_id, sku, color, size, price, created_at
        FROM product_variants
        WHERE product_id = ?
        ORDER BY color, size
    `
	if err := r.DB.SelectContext(ctx, &variants, query, productID); err != nil {
		return nil, fmt.Errorf("failed to list product variants: %w", err)
	}
	return variants, nil
}

func (r *MySQLRepository) FindAllCategories(ctx context.Context) ([]model.Category, error) {
	categories := []model.Category{}
	query := `SELECT category_id, parent_id, name FROM categories ORDER BY name`
	if err := r.DB.SelectContext(ctx, &categories, query); err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	return categories, nil
}
