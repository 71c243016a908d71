package middleware

import (
	"wfm-backend/lib/rbac"

	"github.com/gofiber/fiber/v2"
)

func RbacMiddleware() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		// Получаем данные пользователя из контекста
		userID := GetUserID(ctx)
		if userID == "" {
			return ctx.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"error": "RBAC_FORBIDDEN",
			})
		}

		userRole := GetUserRole(ctx)
		if userRole == "" {
			return ctx.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"error": "RBAC_FORBIDDEN",
			})
		}

		// Ищем обработчик
		handler, found := rbac.Instance.GetRuleFunc(ctx.Method(), ctx.Path())
		if !found {
			return ctx.Next()
		}

		// Выполняем проверку
		if !handler(userID, userRole, ctx.Path()) {
			return ctx.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"error": "RBAC_FORBIDDEN",
			})
		}

		return ctx.Next()
	}
}
