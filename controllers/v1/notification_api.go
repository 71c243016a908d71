package apiv1

import (
	"wfm-backend/controllers"
	notificationhandler "wfm-backend/lib/notification"
	"wfm-backend/middleware"
	apimodels "wfm-backend/models/api"

	"github.com/gofiber/fiber/v2"
)

type notificationApiController struct {
	controllers.BaseAPIController
}

func InitNotificationApiRouters(app *fiber.App) {
	controller := notificationApiController{}
	app.Route("notification", func(router fiber.Router) {
		router.Post("list", controller.list)
		router.Get("count", controller.count)
		router.Put("read_all", controller.readAll)
		router.Put(":id/read", controller.read)
		router.Delete(":id", controller.delete)
	})
}

type notificationListRequest struct {
	Limit int `json:"limit"`
}

// @Summary Список уведомлений
// @Tags Уведомления
// @Description Список уведомлений текущего сотрудника с количеством непрочитанных
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body				body		notificationListRequest	true	"request body"
// @Success 200 {object} apimodels.Response{data=notificationapimodels.NotificationList}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/notification/list [post]
func (c *notificationApiController) list(ctx *fiber.Ctx) error {
	var payload notificationListRequest
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	resp, err := notificationhandler.Instance.List(middleware.GetUserID(ctx), payload.Limit)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения списка уведомлений")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Количество непрочитанных уведомлений
// @Tags Уведомления
// @Description Количество непрочитанных уведомлений текущего сотрудника
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {object} apimodels.Response{data=int64}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/notification/count [get]
func (c *notificationApiController) count(ctx *fiber.Ctx) error {
	count, err := notificationhandler.Instance.UnreadCount(middleware.GetUserID(ctx))
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка подсчёта уведомлений")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(count))
}

// @Summary Отметка уведомления прочитанным
// @Tags Уведомления
// @Description Отметка уведомления прочитанным
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  true         "rec ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/notification/{id}/read [put]
func (c *notificationApiController) read(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := notificationhandler.Instance.MarkRead(middleware.GetUserID(ctx), id); err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка отметки уведомления")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Отметка всех уведомлений прочитанными
// @Tags Уведомления
// @Description Отметка всех уведомлений текущего сотрудника прочитанными
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/notification/read_all [put]
func (c *notificationApiController) readAll(ctx *fiber.Ctx) error {
	if err := notificationhandler.Instance.MarkAllRead(middleware.GetUserID(ctx)); err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка отметки уведомлений")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Удаление уведомления
// @Tags Уведомления
// @Description Удаление уведомления
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  true         "rec ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/notification/{id} [delete]
func (c *notificationApiController) delete(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := notificationhandler.Instance.Delete(middleware.GetUserID(ctx), id); err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка удаления уведомления")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}
