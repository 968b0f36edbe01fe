package auth

import (
	"context"

	"github.com/brightbuy/brightbuy-backend/internal/auth/dto"
)

type UseCase interface {
	Login(ctx context.Context, input *dto.LoginInput) (*dto.LoginResult, error)
}
