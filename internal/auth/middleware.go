package auth

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/brightbuy/brightbuy-backend/internal/model"
)

const localsClaimsKey = "staff_claims"

// RequireStaff verifies the staff token from the access_token cookie or the
// Authorization header and stores the claims for downstream handlers.
func RequireStaff(a Auth) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		tokenStr := strings.TrimSpace(ctx.Cookies("access_token"))
		if tokenStr == "" {
			tokenStr = strings.TrimSpace(ctx.Get("Authorization"))
		}

		claims, err := a.VerifyToken(tokenStr)
		if err != nil {
			return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"success": false,
				"message": "Staff ID not found in token. Please login again.",
			})
		}

		ctx.Locals(localsClaimsKey, claims)
		return ctx.Next()
	}
}

// RequireAdmin allows only Level01 staff through. Must run after RequireStaff.
func RequireAdmin() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		claims, ok := CurrentStaff(ctx)
		if !ok {
			return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"success": false,
				"message": "Staff ID not found in token. Please login again.",
			})
		}
		if claims.Role != string(model.StaffRoleLevel01) {
			return ctx.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"success": false,
				"message": "Insufficient permissions",
			})
		}
		return ctx.Next()
	}
}

// CurrentStaff returns the verified claims placed by RequireStaff.
func CurrentStaff(ctx *fiber.Ctx) (Claims, bool) {
	claims, ok := ctx.Locals(localsClaimsKey).(Claims)
	return claims, ok
}
