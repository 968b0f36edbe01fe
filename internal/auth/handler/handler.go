package handler

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/brightbuy/brightbuy-backend/internal/api"
	"github.com/brightbuy/brightbuy-backend/internal/apperror"
	"github.com/brightbuy/brightbuy-backend/internal/auth"
	"github.com/brightbuy/brightbuy-backend/internal/auth/dto"
)

type AuthHandler struct {
	uc     auth.UseCase
	logger *zap.Logger
}

func NewAuthHandler(uc auth.UseCase, log *zap.Logger) *AuthHandler {
	return &AuthHandler{
		uc:     uc,
		logger: log,
	}
}

func (h *AuthHandler) MapRoutes(router fiber.Router) {
	router.Post("/staff/login", h.Login)
}

func (h *AuthHandler) Login(ctx *fiber.Ctx) error {
	var input dto.LoginInput
	if err := ctx.BodyParser(&input); err != nil {
		return api.Fail(ctx, h.logger, apperror.InvalidInput("Invalid request body"))
	}

	result, err := h.uc.Login(ctx.UserContext(), &input)
	if err != nil {
		return api.Fail(ctx, h.logger, err)
	}

	return api.Success(ctx, fiber.StatusOK, fiber.Map{
		"token": result.Token,
		"staff": result.Staff,
	})
}
