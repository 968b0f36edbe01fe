package auth

import (
	"context"

	"github.com/brightbuy/brightbuy-backend/internal/model"
)

type Repository interface {
	// FindStaffIdentityByEmail returns the active staff login record for
	// email, nil when none exists.
	FindStaffIdentityByEmail(ctx context.Context, email string) (*model.AuthIdentity, error)
	FindStaffByID(ctx context.Context, staffID int64) (*model.Staff, error)
}
