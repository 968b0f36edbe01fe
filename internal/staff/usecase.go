package staff

import (
	"context"

	"github.com/brightbuy/brightbuy-backend/internal/model"
	"github.com/brightbuy/brightbuy-backend/internal/staff/dto"
)

type UseCase interface {
	ListStaff(ctx context.Context) ([]model.Staff, error)

	// CreateStaff inserts the staff row and its linked login identity in one
	// transaction and returns the new staff id.
	CreateStaff(ctx context.Context, input *dto.CreateStaffInput) (int64, error)

	// DeleteStaff removes another staff member; self-deletion through this
	// path is forbidden.
	DeleteStaff(ctx context.Context, staffID, requestingStaffID int64) error

	// DeleteOwnAccount requires the caller's current password.
	DeleteOwnAccount(ctx context.Context, staffID int64, password string) error

	UpdateProfile(ctx context.Context, staffID int64, input *dto.UpdateProfileInput) error
}
