package staff

import (
	"context"

	"github.com/brightbuy/brightbuy-backend/internal/model"
	"github.com/brightbuy/brightbuy-backend/internal/staff/dto"
)

type Repository interface {
	FindAll(ctx context.Context) ([]model.Staff, error)

	// FindByID returns nil when no staff member exists with that id.
	FindByID(ctx context.Context, staffID int64) (*model.Staff, error)

	// EmailTaken checks both the staff table and the unified users identity
	// space.
	EmailTaken(ctx context.Context, email string) (bool, error)

	// CreateWithIdentity inserts staff then the linked users row in one
	// transaction. PasswordHash must already be set on s.
	CreateWithIdentity(ctx context.Context, s *model.Staff) (int64, error)

	// Delete removes the staff row; the users row goes with it via
	// ON DELETE CASCADE.
	Delete(ctx context.Context, staffID int64) error

	// DeleteWithIdentity removes the users row then the staff row in one
	// transaction (the own-account path).
	DeleteWithIdentity(ctx context.Context, staffID int64) error

	// UpdateProfile applies the supplied fields; when email is among them the
	// users row is updated in the same transaction.
	UpdateProfile(ctx context.Context, staffID int64, input *dto.UpdateProfileInput) error
}
