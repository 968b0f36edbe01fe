package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"

	"github.com/brightbuy/brightbuy-backend/internal/model"
	"github.com/brightbuy/brightbuy-backend/internal/staff/dto"
	mysqldb "github.com/brightbuy/brightbuy-backend/pkg/database/mysql"
)

type MySQLRepository struct {
	DB *sqlx.DB
}

func NewMySQLRepository(db *sqlx.DB) *MySQLRepository {
	return &MySQLRepository{DB: db}
}

func (r *MySQLRepository) FindAll(ctx context.Context) ([]model.Staff, error) {
	staff := []model.Staff{}
	query := `
        SELECT staff_id, user_name, email, password_hash, phone, role, created_at
        FROM staff
        ORDER BY role, created_at DESC
    `
	if err := r.DB.SelectContext(ctx, &staff, query); err != nil {
		return nil, fmt.Errorf("failed to list staff: %w", err)
	}
	return staff, nil
}

func (r *MySQLRepository) FindByID(ctx context.Context, staffID int64) (*model.Staff, error) {
	var s model.Staff
	query := `
        SELECT staff_id, user_name, email, password_hash, phone, role, created_at
        FROM staff
        WHERE staff_id = ?
        LIMIT 1
    `
	err := r.DB.GetContext(ctx, &s, query, staffID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &s, nil
}

func (r *MySQLRepository) EmailTaken(ctx context.Context, email string) (bool, error) {
	var count int
	if err := r.DB.GetContext(ctx, &count,
		`SELECT count(*) FROM staff WHERE email = ?`, email); err != nil {
		return false, err
	}
	if count > 0 {
		return true, nil
	}

	if err := r.DB.GetContext(ctx, &count,
		`SELECT count(*) FROM users WHERE email = ?`, email); err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *MySQLRepository) CreateWithIdentity(ctx context.Context, s *model.Staff) (int64, error) {
	var staffID int64

	err := mysqldb.WithinTx(ctx, r.DB, func(tx *sqlx.Tx) error {
		res, err := tx.ExecContext(ctx,
			`INSERT INTO staff (user_name, email, password_hash, phone, role)
             VALUES (?, ?, ?, ?, ?)`,
			s.UserName, s.Email, s.PasswordHash, s.Phone, s.Role,
		)
		if err != nil {
			return fmt.Errorf("failed to insert staff: %w", err)
		}

		staffID, err = res.LastInsertId()
		if err != nil {
			return fmt.Errorf("failed to read new staff id: %w", err)
		}

		if _, err := tx.ExecContext(ctx,
			`INSERT INTO users (email, password_hash, role, is_active, staff_id)
             VALUES (?, ?, 'staff', 1, ?)`,
			s.Email, s.PasswordHash, staffID,
		); err != nil {
			return fmt.Errorf("failed to insert auth identity: %w", err)
		}

		return nil
	})
	if err != nil {
		return 0, err
	}
	return staffID, nil
}

func (r *MySQLRepository) Delete(ctx context.Context, staffID int64) error {
	if _, err := r.DB.ExecContext(ctx,
		`DELETE FROM staff WHERE staff_id = ?`, staffID); err != nil {
		return fmt.Errorf("failed to delete staff: %w", err)
	}
	return nil
}

func (r *MySQLRepository) DeleteWithIdentity(ctx context.Context, staffID int64) error {
	return mysqldb.WithinTx(ctx, r.DB, func(tx *sqlx.Tx) error {
		if _, err := tx.ExecContext(ctx,
			`DELETE FROM users WHERE staff_id = ?`, staffID); err != nil {
			return fmt.Errorf("failed to delete auth identity: %w", err)
		}
		if _, err := tx.ExecContext(ctx,
			`DELETE FROM staff WHERE staff_id = ?`, staffID); err != nil {
			return fmt.Errorf("failed to delete staff: %w", err)
		}
		return nil
	})
}

func (r *MySQLRepository) UpdateProfile(ctx context.Context, staffID int64, input *dto.UpdateProfileInput) error {
	return mysqldb.WithinTx(ctx, r.DB, func(tx *sqlx.Tx) error {
		sets := []string{}
		args := []interface{}{}

		if input.Name != nil {
			sets = append(sets, "user_name = ?")
			args = append(args, *input.Name)
		}
		if input.Email != nil {
			sets = append(sets, "email = ?")
			args = append(args, *input.Email)
		}
		if input.Phone != nil {
			sets = append(sets, "phone = ?")
			args = append(args, *input.Phone)
		}
		args = append(args, staffID)

		query := "UPDATE staff SET " + strings.Join(sets, ", ") + " WHERE staff_id = ?"
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("failed to update staff profile: %w", err)
		}

		// Keep the login identity's email in sync, inside the same tx.
		if input.Email != nil {
			if _, err := tx.ExecContext(ctx,
				`UPDATE users SET email = ? WHERE staff_id = ?`,
				*input.Email, staffID,
			); err != nil {
				return fmt.Errorf("failed to update auth identity email: %w", err)
			}
		}

		return nil
	})
}
