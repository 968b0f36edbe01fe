package handler

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/brightbuy/brightbuy-backend/internal/api"
	"github.com/brightbuy/brightbuy-backend/internal/apperror"
	"github.com/brightbuy/brightbuy-backend/internal/auth"
	"github.com/brightbuy/brightbuy-backend/internal/staff"
	"github.com/brightbuy/brightbuy-backend/internal/staff/dto"
)

type StaffHandler struct {
	uc     staff.UseCase
	logger *zap.Logger
}

func NewStaffHandler(uc staff.UseCase, log *zap.Logger) *StaffHandler {
	return &StaffHandler{
		uc:     uc,
		logger: log,
	}
}

// MapRoutes mounts staff directory routes. Account routes come before the
// parameterized delete so "/account/..." never matches ":staffId".
func (h *StaffHandler) MapRoutes(staffGroup fiber.Router) {
	staffGroup.Get("/", h.ListStaff)
	staffGroup.Put("/account/:staffId", h.UpdateProfile)
	staffGroup.Delete("/account/:staffId", h.DeleteOwnAccount)
	staffGroup.Post("/", auth.RequireAdmin(), h.CreateStaff)
	staffGroup.Delete("/:staffId", auth.RequireAdmin(), h.DeleteStaff)
}

func (h *StaffHandler) ListStaff(ctx *fiber.Ctx) error {
	members, err := h.uc.ListStaff(ctx.UserContext())
	if err != nil {
		return api.Fail(ctx, h.logger, err)
	}
	return api.Success(ctx, fiber.StatusOK, fiber.Map{
		"staff": members,
	})
}

func (h *StaffHandler) CreateStaff(ctx *fiber.Ctx) error {
	var input dto.CreateStaffInput
	if err := ctx.BodyParser(&input); err != nil {
		return api.Fail(ctx, h.logger, apperror.InvalidInput("Invalid request body"))
	}

	staffID, err := h.uc.CreateStaff(ctx.UserContext(), &input)
	if err != nil {
		return api.Fail(ctx, h.logger, err)
	}

	return api.Success(ctx, fiber.StatusCreated, fiber.Map{
		"message": "Staff member created successfully",
		"staffId": staffID,
	})
}

func (h *StaffHandler) DeleteStaff(ctx *fiber.Ctx) error {
	staffID, err := parseStaffID(ctx)
	if err != nil {
		return api.Fail(ctx, h.logger, err)
	}

	claims, ok := auth.CurrentStaff(ctx)
	if !ok {
		return api.Fail(ctx, h.logger, apperror.Unauthorized("Staff ID not found in token. Please login again."))
	}

	if err := h.uc.DeleteStaff(ctx.UserContext(), staffID, claims.StaffID); err != nil {
		return api.Fail(ctx, h.logger, err)
	}

	return api.Success(ctx, fiber.StatusOK, fiber.Map{
		"message": "Staff member deleted successfully",
	})
}

func (h *StaffHandler) DeleteOwnAccount(ctx *fiber.Ctx) error {
	staffID, err := parseStaffID(ctx)
	if err != nil {
		return api.Fail(ctx, h.logger, err)
	}

	var input dto.DeleteOwnAccountInput
	if err := ctx.BodyParser(&input); err != nil {
		return api.Fail(ctx, h.logger, apperror.InvalidInput("Invalid request body"))
	}

	if err := h.uc.DeleteOwnAccount(ctx.UserContext(), staffID, input.Password); err != nil {
		return api.Fail(ctx, h.logger, err)
	}

	return api.Success(ctx, fiber.StatusOK, fiber.Map{
		"message": "Account deleted successfully",
	})
}

func (h *StaffHandler) UpdateProfile(ctx *fiber.Ctx) error {
	staffID, err := parseStaffID(ctx)
	if err != nil {
		return api.Fail(ctx, h.logger, err)
	}

	var input dto.UpdateProfileInput
	if err := ctx.BodyParser(&input); err != nil {
		return api.Fail(ctx, h.logger, apperror.InvalidInput("Invalid request body"))
	}

	if err := h.uc.UpdateProfile(ctx.UserContext(), staffID, &input); err != nil {
		return api.Fail(ctx, h.logger, err)
	}

	return api.Success(ctx, fiber.StatusOK, fiber.Map{
		"message": "Profile updated successfully",
	})
}

func parseStaffID(ctx *fiber.Ctx) (int64, error) {
	staffID, err := strconv.ParseInt(ctx.Params("staffId"), 10, 64)
	if err != nil || staffID <= 0 {
		return 0, apperror.InvalidInput("Invalid staff id")
	}
	return staffID, nil
}
