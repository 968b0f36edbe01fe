package usecase

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/brightbuy/brightbuy-backend/internal/apperror"
	"github.com/brightbuy/brightbuy-backend/internal/auth"
	"github.com/brightbuy/brightbuy-backend/internal/model"
	"github.com/brightbuy/brightbuy-backend/internal/staff"
	"github.com/brightbuy/brightbuy-backend/internal/staff/dto"
	mysqldb "github.com/brightbuy/brightbuy-backend/pkg/database/mysql"
)

type staffUseCase struct {
	repo   staff.Repository
	logger *zap.Logger
}

func NewStaffUseCase(repo staff.Repository, log *zap.Logger) staff.UseCase {
	return &staffUseCase{
		repo:   repo,
		logger: log,
	}
}

func (uc *staffUseCase) ListStaff(ctx context.Context) ([]model.Staff, error) {
	members, err := uc.repo.FindAll(ctx)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return members, nil
}

func (uc *staffUseCase) CreateStaff(ctx context.Context, input *dto.CreateStaffInput) (int64, error) {
	fields := map[string]string{}
	if input.UserName == "" {
		fields["userName"] = "Username is required"
	}
	if input.Email == "" {
		fields["email"] = "Email is required"
	}
	if input.Password == "" {
		fields["password"] = "Password is required"
	}
	if input.Role == "" {
		fields["role"] = "Role is required"
	}
	if len(fields) > 0 {
		return 0, apperror.InvalidInputFields("Username, email, password, and role are required", fields)
	}

	role := model.StaffRole(input.Role)
	if !role.Valid() {
		return 0, apperror.InvalidInputFields("Invalid role. Must be Level01 or Level02",
			map[string]string{"role": "Invalid role. Must be Level01 or Level02"})
	}

	taken, err := uc.repo.EmailTaken(ctx, input.Email)
	if err != nil {
		return 0, apperror.Internal(fmt.Errorf("failed to check email uniqueness: %w", err))
	}
	if taken {
		return 0, apperror.Conflict("Email already registered")
	}

	hash, err := auth.HashPassword(input.Password)
	if err != nil {
		return 0, apperror.Internal(fmt.Errorf("failed to hash password: %w", err))
	}

	staffID, err := uc.repo.CreateWithIdentity(ctx, &model.Staff{
		UserName:     input.UserName,
		Email:        input.Email,
		PasswordHash: hash,
		Phone:        input.Phone,
		Role:         role,
	})
	if err != nil {
		// A concurrent insert can still win the uniqueness race; the unique
		// index turns that into a duplicate-entry error.
		if mysqldb.IsDuplicateEntry(err) {
			return 0, apperror.Conflict("Email already registered")
		}
		return 0, apperror.Internal(err)
	}

	uc.logger.Info("staff created",
		zap.Int64("staff_id", staffID),
		zap.String("role", input.Role),
	)
	return staffID, nil
}

func (uc *staffUseCase) DeleteStaff(ctx context.Context, staffID, requestingStaffID int64) error {
	if staffID == requestingStaffID {
		return apperror.InvalidOperation("Cannot delete your own account")
	}

	member, err := uc.repo.FindByID(ctx, staffID)
	if err != nil {
		return apperror.Internal(err)
	}
	if member == nil {
		return apperror.NotFound("Staff member not found")
	}

	if err := uc.repo.Delete(ctx, staffID); err != nil {
		return apperror.Internal(err)
	}

	uc.logger.Info("staff deleted",
		zap.Int64("staff_id", staffID),
		zap.Int64("deleted_by", requestingStaffID),
	)
	return nil
}

func (uc *staffUseCase) DeleteOwnAccount(ctx context.Context, staffID int64, password string) error {
	if password == "" {
		return apperror.InvalidInput("Password is required")
	}

	member, err := uc.repo.FindByID(ctx, staffID)
	if err != nil {
		return apperror.Internal(err)
	}
	if member == nil {
		return apperror.NotFound("Staff member not found")
	}

	if err := auth.VerifyPassword(password, member.PasswordHash); err != nil {
		return apperror.Unauthorized("Incorrect password")
	}

	if err := uc.repo.DeleteWithIdentity(ctx, staffID); err != nil {
		return apperror.Internal(err)
	}

	uc.logger.Info("staff deleted own account", zap.Int64("staff_id", staffID))
	return nil
}

func (uc *staffUseCase) UpdateProfile(ctx context.Context, staffID int64, input *dto.UpdateProfileInput) error {
	if input.Name == nil && input.Email == nil && input.Phone == nil {
		return apperror.InvalidInput("No fields to update")
	}

	member, err := uc.repo.FindByID(ctx, staffID)
	if err != nil {
		return apperror.Internal(err)
	}
	if member == nil {
		return apperror.NotFound("Staff member not found")
	}

	if err := uc.repo.UpdateProfile(ctx, staffID, input); err != nil {
		if mysqldb.IsDuplicateEntry(err) {
			return apperror.Conflict("Email already registered")
		}
		return apperror.Internal(err)
	}

	return nil
}
