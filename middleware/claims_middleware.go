package middleware

import (
	authutils "wfm-backend/lib/utils/auth-utils"
	"wfm-backend/models"
	apimodels "wfm-backend/models/api"

	"github.com/gofiber/fiber/v2"
)

func GetUserID(ctx *fiber.Ctx) string {
	claims := authutils.GetClaims(ctx)
	if sub, exist := claims["sub"]; exist {
		return sub.(string)
	}
	return ""
}

func GetUserRole(ctx *fiber.Ctx) models.UserRole {
	claims := authutils.GetClaims(ctx)
	if role, exist := claims["role"]; exist {
		if stringRole, ok := role.(string); ok && stringRole != "" {
			return models.UserRole(stringRole)
		}
	}
	return ""
}

func AdminRoleRequired() fiber.Handler {
	return func(ctx *fiber.Ctx) (err error) {
		if !GetUserRole(ctx).IsAdmin() {
			return ctx.Status(fiber.StatusForbidden).JSON(apimodels.NewError("операция недоступна"))
		}
		return ctx.Next()
	}
}
