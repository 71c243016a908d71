package apiv1

import (
	"wfm-backend/controllers"
	worksessionhandler "wfm-backend/lib/work-session"
	"wfm-backend/middleware"
	apimodels "wfm-backend/models/api"
	sessionapimodels "wfm-backend/models/api/worksession"

	"github.com/gofiber/fiber/v2"
)

type workSessionApiController struct {
	controllers.BaseAPIController
}

func InitWorkSessionApiRouters(app *fiber.App) {
	controller := workSessionApiController{}
	app.Route("work_session", func(router fiber.Router) {
		router.Post("check_in", controller.checkIn)
		router.Post("check_out", controller.checkOut)
		router.Post("list", controller.list)
		router.Get("active", controller.active)
		router.Get(":id", controller.get)
		router.Post(":id/summary", controller.attachSummary)
	})
}

// @Summary Отметка о приходе на объект
// @Tags Рабочие смены
// @Description Отметка о приходе на объект
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body				body		sessionapimodels.CheckInData	true	"request body"
// @Success 200 {object} apimodels.Response{data=sessionapimodels.WorkSessionView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 409 {object} apimodels.Response
// @Failure 422 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/work_session/check_in [post]
func (c *workSessionApiController) checkIn(ctx *fiber.Ctx) error {
	var payload sessionapimodels.CheckInData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	resp, err := worksessionhandler.Instance.CheckIn(middleware.GetUserID(ctx), payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка отметки прихода")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Отметка об уходе с объекта
// @Tags Рабочие смены
// @Description Отметка об уходе с объекта, отчёт о работе можно передать вместе с закрытием смены
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body				body		sessionapimodels.CheckOutData	true	"request body"
// @Success 200 {object} apimodels.Response{data=sessionapimodels.WorkSessionView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 409 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/work_session/check_out [post]
func (c *workSessionApiController) checkOut(ctx *fiber.Ctx) error {
	var payload sessionapimodels.CheckOutData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	resp, err := worksessionhandler.Instance.CheckOut(middleware.GetUserID(ctx), payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка отметки ухода")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Отчёт о выполненной работе
// @Tags Рабочие смены
// @Description Отчёт о выполненной работе по закрытой смене, принимается один раз
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  true         "rec ID"
// @Param	body				body		sessionapimodels.WorkSummaryData	true	"request body"
// @Success 200 {object} apimodels.Response{data=sessionapimodels.WorkSessionView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 409 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/work_session/{id}/summary [post]
func (c *workSessionApiController) attachSummary(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var payload sessionapimodels.WorkSummaryData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	resp, err := worksessionhandler.Instance.AttachSummary(middleware.GetUserID(ctx), id, payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка сохранения отчёта о работе")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Текущая открытая смена
// @Tags Рабочие смены
// @Description Текущая открытая смена сотрудника, пусто если смена не открыта
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {object} apimodels.Response{data=sessionapimodels.WorkSessionView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/work_session/active [get]
func (c *workSessionApiController) active(ctx *fiber.Ctx) error {
	resp, err := worksessionhandler.Instance.ActiveSession(middleware.GetUserID(ctx))
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения открытой смены")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Получение смены по ИД
// @Tags Рабочие смены
// @Description Получение смены по ИД
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  true         "rec ID"
// @Success 200 {object} apimodels.Response{data=sessionapimodels.WorkSessionView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/work_session/{id} [get]
func (c *workSessionApiController) get(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	resp, err := worksessionhandler.Instance.GetByID(middleware.GetUserID(ctx), middleware.GetUserRole(ctx), id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения смены")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Список смен
// @Tags Рабочие смены
// @Description Список смен, сотрудник видит только свои
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body				body		sessionapimodels.SessionFilter	true	"request body"
// @Success 200 {object} apimodels.Response{data=[]sessionapimodels.WorkSessionView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/work_session/list [post]
func (c *workSessionApiController) list(ctx *fiber.Ctx) error {
	var payload sessionapimodels.SessionFilter
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	list, err := worksessionhandler.Instance.List(middleware.GetUserID(ctx), middleware.GetUserRole(ctx), payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения списка смен")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}
