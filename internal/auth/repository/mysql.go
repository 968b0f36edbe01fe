package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"github.com/brightbuy/brightbuy-backend/internal/model"
)

type MySQLRepository struct {
	DB *sqlx.DB
}

func NewMySQLRepository(db *sqlx.DB) *MySQLRepository {
	return &MySQLRepository{DB: db}
}

func (r *MySQLRepository) FindStaffIdentityByEmail(ctx context.Context, email string) (*model.AuthIdentity, error) {
	var identity model.AuthIdentity
	query := `
        SELECT user_id, email, password_hash, role, is_active, staff_id, customer_id, created_at
        FROM users
        WHERE email = ? AND role = 'staff' AND is_active = 1
        LIMIT 1
    `
	err := r.DB.GetContext(ctx, &identity, query, email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &identity, nil
}

func (r *MySQLRepository) FindStaffByID(ctx context.Context, staffID int64) (*model.Staff, error) {
	var staff model.Staff
	query := `
        SELECT staff_id, user_name, email, password_hash, phone, role, created_at
        FROM staff
        WHERE staff_id = ?
        LIMIT 1
    `
	err := r.DB.GetContext(ctx, &staff, query, staffID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &staff, nil
}
