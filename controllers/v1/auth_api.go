package apiv1

import (
	"wfm-backend/controllers"
	authhandler "wfm-backend/lib/auth"
	"wfm-backend/middleware"
	apimodels "wfm-backend/models/api"
	authapimodels "wfm-backend/models/api/auth"

	"github.com/gofiber/fiber/v2"
)

type authApiController struct {
	controllers.BaseAPIController
}

func InitAuthApiRouters(app *fiber.App) {
	controller := authApiController{}
	app.Route("auth", func(router fiber.Router) {
		router.Post("login", controller.login)
		router.Post("refresh", controller.refresh)
		router.Use(middleware.AuthorizationRequired()).Get("me", controller.me)
	})
}

// @Summary Аутентификация сотрудника
// @Tags Аутентификация
// @Description Аутентификация сотрудника
// @Param	body				body		authapimodels.LoginRequest	true	"request body"
// @Success 200 {object} apimodels.Response{data=authapimodels.JWTResponse}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/auth/login [post]
func (c *authApiController) login(ctx *fiber.Ctx) error {
	var payload authapimodels.LoginRequest
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	resp, err := authhandler.Instance.Login(payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка аутентификации")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Обновить JWT
// @Tags Аутентификация
// @Description Обновить JWT
// @Param	body				body		authapimodels.JWTRefreshRequest	true	"request body"
// @Success 200 {object} apimodels.Response{data=authapimodels.JWTResponse}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/auth/refresh [post]
func (c *authApiController) refresh(ctx *fiber.Ctx) error {
	var payload authapimodels.JWTRefreshRequest
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	resp, err := authhandler.Instance.Refresh(payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка обновления токена")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Информация о текущем сотруднике
// @Tags Аутентификация
// @Description Информация о текущем сотруднике
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {object} apimodels.Response{data=employeeapimodels.EmployeeView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/auth/me [get]
func (c *authApiController) me(ctx *fiber.Ctx) error {
	resp, err := authhandler.Instance.Me(middleware.GetUserID(ctx))
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения данных сотрудника")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}
