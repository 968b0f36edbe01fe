package api

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/brightbuy/brightbuy-backend/internal/apperror"
)

// Success writes the standard envelope: {"success": true, ...body}.
func Success(ctx *fiber.Ctx, status int, body fiber.Map) error {
	payload := fiber.Map{"success": true}
	for k, v := range body {
		payload[k] = v
	}
	return ctx.Status(status).JSON(payload)
}

// Fail maps err to its HTTP status. Internal errors are logged with full
// detail and rendered with a generic message; clients never see raw DB text.
func Fail(ctx *fiber.Ctx, log *zap.Logger, err error) error {
	status := apperror.HTTPStatus(err)

	message := err.Error()
	if apperror.KindOf(err) == apperror.KindInternal {
		message = "Server error. Please try again later."
		log.Error("request failed",
			zap.String("method", ctx.Method()),
			zap.String("path", ctx.Path()),
			zap.Error(err),
		)
	}

	body := fiber.Map{
		"success": false,
		"message": message,
	}
	if fields := apperror.FieldsOf(err); len(fields) > 0 {
		body["errors"] = fields
	}
	return ctx.Status(status).JSON(body)
}
