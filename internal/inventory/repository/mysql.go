package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"

	"github.com/brightbuy/brightbuy-backend/internal/inventory"
	"github.com/brightbuy/brightbuy-backend/internal/inventory/dto"
	"github.com/brightbuy/brightbuy-backend/internal/model"
	mysqldb "github.com/brightbuy/brightbuy-backend/pkg/database/mysql"
)

type MySQLRepository struct {
	DB *sqlx.DB
}

func NewMySQLRepository(db *sqlx.DB) *MySQLRepository {
	return &MySQLRepository{DB: db}
}

func (r *MySQLRepository) ListItems(ctx context.Context) ([]model.InventoryItem, error) {
	items := []model.InventoryItem{}
	query := `
        SELECT
            p.product_id,
            p.name AS product_name,
            p.brand,
            pv.variant_id,
            pv.sku,
            pv.color,
            pv.size,
            pv.price,
            COALESCE(i.quantity, 0) AS stock
        FROM products p
        INNER JOIN product_variants pv ON p.product_id = pv.product_id
        LEFT JOIN inventory i ON pv.variant_id = i.variant_id
        ORDER BY p.name, pv.color, pv.size
    `
	if err := r.DB.SelectContext(ctx, &items, query); err != nil {
		return nil, fmt.Errorf("failed to list inventory: %w", err)
	}
	return items, nil
}

func (r *MySQLRepository) AdjustStockWithLog(ctx context.Context, input *dto.AdjustStockInput) (int, error) {
	var newQuantity int

	err := mysqldb.WithinTx(ctx, r.DB, func(tx *sqlx.Tx) error {
		// Row lock serializes concurrent adjustments on the same variant.
		var current int
		err := tx.GetContext(ctx, &current,
			`SELECT quantity FROM inventory WHERE variant_id = ? FOR UPDATE`,
			input.VariantID,
		)
		if errors.Is(err, sql.ErrNoRows) {
			return inventory.ErrNoInventoryRow
		}
		if err != nil {
			return fmt.Errorf("failed to read current quantity: %w", err)
		}

		newQuantity = current + input.QuantityChange
		if newQuantity < 0 {
			return inventory.ErrStockBelowZero
		}

		if _, err := tx.ExecContext(ctx,
			`UPDATE inventory SET quantity = ? WHERE variant_id = ?`,
			newQuantity, input.VariantID,
		); err != nil {
			return fmt.Errorf("failed to update inventory: %w", err)
		}

		if _, err := tx.ExecContext(ctx,
			`INSERT INTO inventory_adjustments (variant_id, staff_id, old_quantity, added_quantity, note)
             VALUES (?, ?, ?, ?, ?)`,
			input.VariantID, input.StaffID, current, input.QuantityChange, input.Note,
		); err != nil {
			return fmt.Errorf("failed to log adjustment: %w", err)
		}

		return nil
	})
	if err != nil {
		return 0, err
	}
	return newQuantity, nil
}

func (r *MySQLRepository) ListAdjustments(ctx context.Context, f *dto.AdjustmentFilters) ([]model.InventoryAdjustment, int, error) {
	var items []model.InventoryAdjustment
	var count int

	conditions := []string{}
	args := map[string]interface{}{}

	if f.VariantID != 0 {
		conditions = append(conditions, "variant_id = :variant_id")
		args["variant_id"] = f.VariantID
	}
	if f.StaffID != 0 {
		conditions = append(conditions, "staff_id = :staff_id")
		args["staff_id"] = f.StaffID
	}

	whereClause := ""
	if len(conditions) > 0 {
		whereClause = " WHERE " + strings.Join(conditions, " AND ")
	}

	countQuery := "SELECT count(*) FROM inventory_adjustments" + whereClause
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

	query := "SELECT * FROM inventory_adjustments" + whereClause + " ORDER BY created_at DESC, update_id DESC"
	if f.PageSize > 0 {
		offset := (f.Page - 1) * f.PageSize
		query += fmt.Sprintf(" LIMIT %d OFFSET %d", f.PageSize, offset)
	}

	nstmt, err := r.DB.PrepareNamedContext(ctx, query)
	if err != nil {
		return nil, 0, err
	}
	defer nstmt.Close()

	err = nstmt.SelectContext(ctx, &items, args)
	return items, count, err
}

func (r *MySQLRepository) StaffExists(ctx context.Context, staffID int64) (bool, error) {
	var id int64
	err := r.DB.GetContext(ctx, &id, `SELECT staff_id FROM staff WHERE staff_id = ?`, staffID)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}
