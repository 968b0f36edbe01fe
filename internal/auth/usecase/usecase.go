package usecase

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/brightbuy/brightbuy-backend/internal/apperror"
	"github.com/brightbuy/brightbuy-backend/internal/auth"
	"github.com/brightbuy/brightbuy-backend/internal/auth/dto"
)

type authUseCase struct {
	repo   auth.Repository
	auth   auth.Auth
	logger *zap.Logger
}

func NewAuthUseCase(repo auth.Repository, a auth.Auth, log *zap.Logger) auth.UseCase {
	return &authUseCase{
		repo:   repo,
		auth:   a,
		logger: log,
	}
}

func (uc *authUseCase) Login(ctx context.Context, input *dto.LoginInput) (*dto.LoginResult, error) {
	if input.Email == "" || input.Password == "" {
		return nil, apperror.InvalidInput("Email and password are required")
	}

	identity, err := uc.repo.FindStaffIdentityByEmail(ctx, input.Email)
	if err != nil {
		return nil, apperror.Internal(fmt.Errorf("failed to look up identity: %w", err))
	}
	if identity == nil || identity.StaffID == nil {
		return nil, apperror.Unauthorized("Invalid email or password")
	}

	if err := auth.VerifyPassword(input.Password, identity.PasswordHash); err != nil {
		return nil, apperror.Unauthorized("Invalid email or password")
	}

	staff, err := uc.repo.FindStaffByID(ctx, *identity.StaffID)
	if err != nil {
		return nil, apperror.Internal(fmt.Errorf("failed to load staff profile: %w", err))
	}
	if staff == nil {
		return nil, apperror.Unauthorized("Invalid email or password")
	}

	token, err := uc.auth.GenerateToken(staff.StaffID, staff.Email, string(staff.Role))
	if err != nil {
		return nil, apperror.Internal(fmt.Errorf("failed to generate token: %w", err))
	}

	uc.logger.Info("staff login", zap.Int64("staff_id", staff.StaffID))

	return &dto.LoginResult{
		Token: token,
		Staff: staff,
	}, nil
}
