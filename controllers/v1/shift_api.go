package apiv1

import (
	"wfm-backend/controllers"
	shifthandler "wfm-backend/lib/shift"
	"wfm-backend/middleware"
	apimodels "wfm-backend/models/api"
	shiftapimodels "wfm-backend/models/api/shift"

	"github.com/gofiber/fiber/v2"
)

type shiftApiController struct {
	controllers.BaseAPIController
}

func InitShiftApiRouters(app *fiber.App) {
	controller := shiftApiController{}
	app.Route("shift", func(router fiber.Router) {
		router.Post("", controller.create)
		router.Post("list", controller.list)
		router.Get(":id", controller.get)
		router.Put(":id", controller.update)
		router.Put(":id/cancel", controller.cancel)
		router.Put(":id/complete", controller.complete)
		router.Delete(":id", controller.delete)
	})
}

// @Summary Создание смены в расписании
// @Tags Расписание
// @Description Создание смены в расписании
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body				body		shiftapimodels.ShiftData	true	"request body"
// @Success 200 {object} apimodels.Response{data=shiftapimodels.ShiftView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/shift [post]
func (c *shiftApiController) create(ctx *fiber.Ctx) error {
	var payload shiftapimodels.ShiftData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	resp, err := shifthandler.Instance.Create(payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка создания смены")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Обновление смены
// @Tags Расписание
// @Description Обновление смены, завершённая смена не меняется
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  true         "rec ID"
// @Param	body				body		shiftapimodels.ShiftData	true	"request body"
// @Success 200 {object} apimodels.Response{data=shiftapimodels.ShiftView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 409 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/shift/{id} [put]
func (c *shiftApiController) update(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var payload shiftapimodels.ShiftData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	resp, err := shifthandler.Instance.Update(id, payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка обновления смены")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Отмена смены
// @Tags Расписание
// @Description Отмена смены с уведомлением сотрудника
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  true         "rec ID"
// @Success 200 {object} apimodels.Response{data=shiftapimodels.ShiftView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 409 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/shift/{id}/cancel [put]
func (c *shiftApiController) cancel(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	resp, err := shifthandler.Instance.Cancel(id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка отмены смены")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Завершение смены
// @Tags Расписание
// @Description Досрочное завершение смены с фиксацией переработки
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  true         "rec ID"
// @Param	body				body		shiftapimodels.CompleteData	true	"request body"
// @Success 200 {object} apimodels.Response{data=shiftapimodels.ShiftView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 409 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/shift/{id}/complete [put]
func (c *shiftApiController) complete(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var payload shiftapimodels.CompleteData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	resp, err := shifthandler.Instance.Complete(id, payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка завершения смены")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Удаление смены
// @Tags Расписание
// @Description Удаление смены, допускается только для запланированных
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  true         "rec ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 409 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/shift/{id} [delete]
func (c *shiftApiController) delete(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := shifthandler.Instance.Delete(id); err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка удаления смены")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Получение смены расписания по ИД
// @Tags Расписание
// @Description Получение смены расписания по ИД
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  true         "rec ID"
// @Success 200 {object} apimodels.Response{data=shiftapimodels.ShiftView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/shift/{id} [get]
func (c *shiftApiController) get(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	resp, err := shifthandler.Instance.GetByID(id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения смены")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Список смен расписания
// @Tags Расписание
// @Description Список смен расписания, сотрудник видит только свои
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body				body		shiftapimodels.ShiftFilter	true	"request body"
// @Success 200 {object} apimodels.Response{data=[]shiftapimodels.ShiftView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/shift/list [post]
func (c *shiftApiController) list(ctx *fiber.Ctx) error {
	var payload shiftapimodels.ShiftFilter
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	list, err := shifthandler.Instance.List(middleware.GetUserID(ctx), middleware.GetUserRole(ctx), payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения расписания")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}
