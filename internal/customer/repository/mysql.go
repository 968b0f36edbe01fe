package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/brightbuy/brightbuy-backend/internal/model"
)

type MySQLRepository struct {
	DB *sqlx.DB
}

func NewMySQLRepository(db *sqlx.DB) *MySQLRepository {
	return &MySQLRepository{DB: db}
}

func (r *MySQLRepository) FindAllWithTotals(ctx context.Context) ([]model.CustomerSummary, error) {
	customers := []model.CustomerSummary{}
	query := `
        SELECT
            c.customer_id,
            c.first_name,
            c.last_name,
            c.email,
            c.phone,
            c.created_at,
            COUNT(DISTINCT o.order_id) AS total_orders,
            COALESCE(SUM(oi.quantity * oi.unit_price), 0) AS total_spent
        FROM customers c
        LEFT JOIN orders o ON c.customer_id = o.customer_id
        LEFT JOIN order_items oi ON o.order_id = oi.order_id
        GROUP BY c.customer_id, c.first_name, c.last_name, c.email, c.phone, c.created_at
        ORDER BY total_spent DESC, c.created_at DESC
    `
	if err := r.DB.SelectContext(ctx, &customers, query); err != nil {
		return nil, fmt.Errorf("failed to list customers: %w", err)
	}
	return customers, nil
}

func (r *MySQLRepository) FindByID(ctx context.Context, customerID int64) (*model.Customer, error) {
	var c model.Customer
	query := `
        SELECT customer_id, first_name, last_name, email, phone, created_at
        FROM customers
        WHERE customer_id = ?
        LIMIT 1
    `
	err := r.DB.GetContext(ctx, &c, query, customerID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &c, nil
}

func (r *MySQLRepository) OrdersWithItemCounts(ctx context.Context, customerID int64) ([]model.OrderSummary, error) {
	orders := []model.OrderSummary{}
	query := `
        SELECT
            o.order_id,
            o.customer_id,
            o.order_date,
            COALESCE(o.total_price, 0) AS total_price,
            o.status,
            COUNT(oi.order_item_id) AS item_count
        FROM orders o
        LEFT JOIN order_items oi ON o.order_id = oi.order_id
        WHERE o.customer_id = ?
        GROUP BY o.order_id, o.customer_id, o.order_date, o.total_price, o.status
        ORDER BY o.order_date DESC
    `
	if err := r.DB.SelectContext(ctx, &orders, query, customerID); err != nil {
		return nil, fmt.Errorf("failed to list customer orders: %w", err)
	}
	return orders, nil
}

func (r *MySQLRepository) AddressesByCustomer(ctx context.Context, customerID int64) ([]model.Address, error) {
	addresses := []model.Address{}
	query := `
        SELECT address_id, customer_id, line1, line2, city, district, postal_code, is_default
        FROM addresses
        WHERE customer_id = ?
        ORDER BY is_default DESC, address_id
    `
	if err := r.DB.SelectContext(ctx, &addresses, query, customerID); err != nil {
		return nil, fmt.Errorf("failed to list customer addresses: %w", err)
	}
	return addresses, nil
}
