package handler

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/brightbuy/brightbuy-backend/internal/api"
	"github.com/brightbuy/brightbuy-backend/internal/apperror"
	"github.com/brightbuy/brightbuy-backend/internal/customer"
)

type CustomerHandler struct {
	uc     customer.UseCase
	logger *zap.Logger
}

func NewCustomerHandler(uc customer.UseCase, log *zap.Logger) *CustomerHandler {
	return &CustomerHandler{
		uc:     uc,
		logger: log,
	}
}

func (h *CustomerHandler) MapRoutes(customers fiber.Router) {
	customers.Get("/", h.ListCustomers)
	customers.Get("/:customerId", h.GetCustomerDetails)
}

func (h *CustomerHandler) ListCustomers(ctx *fiber.Ctx) error {
	customers, err := h.uc.ListCustomers(ctx.UserContext())
	if err != nil {
		return api.Fail(ctx, h.logger, err)
	}
	return api.Success(ctx, fiber.StatusOK, fiber.Map{
		"customers": customers,
	})
}

func (h *CustomerHandler) GetCustomerDetails(ctx *fiber.Ctx) error {
	customerID, err := strconv.ParseInt(ctx.Params("customerId"), 10, 64)
	if err != nil || customerID <= 0 {
		return api.Fail(ctx, h.logger, apperror.InvalidInput("Invalid customer id"))
	}

	details, err := h.uc.GetCustomerDetails(ctx.UserContext(), customerID)
	if err != nil {
		return api.Fail(ctx, h.logger, err)
	}

	return api.Success(ctx, fiber.StatusOK, fiber.Map{
		"customer": details,
	})
}
