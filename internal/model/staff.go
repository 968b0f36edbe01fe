package model

import "time"

type StaffRole string

const (
	StaffRoleLevel01 StaffRole = "Level01" // manager: may create/delete staff
	StaffRoleLevel02 StaffRole = "Level02"
)

func (r StaffRole) Valid() bool {
	return r == StaffRoleLevel01 || r == StaffRoleLevel02
}

type Staff struct {
	StaffID      int64     `db:"staff_id" json:"staff_id"`
	UserName     string    `db:"user_name" json:"user_name"`
	Email        string    `db:"email" json:"email"`
	PasswordHash string    `db:"password_hash" json:"-"`
	Phone        *string   `db:"phone" json:"phone"`
	Role         StaffRole `db:"role" json:"role"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
}

// AuthIdentity is the unified login record in the users table. Staff and
// customer emails share this identity space and must stay unique across it.
type AuthIdentity struct {
	UserID       int64     `db:"user_id" json:"user_id"`
	Email        string    `db:"email" json:"email"`
	PasswordHash string    `db:"password_hash" json:"-"`
	Role         string    `db:"role" json:"role"`
	IsActive     bool      `db:"is_active" json:"is_active"`
	StaffID      *int64    `db:"staff_id" json:"staff_id"`
	CustomerID   *int64    `db:"customer_id" json:"customer_id"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
}
