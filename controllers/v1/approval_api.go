package apiv1

import (
	"wfm-backend/controllers"
	approvalhandler "wfm-backend/lib/approval"
	"wfm-backend/middleware"
	apimodels "wfm-backend/models/api"
	approvalapimodels "wfm-backend/models/api/approval"

	"github.com/gofiber/fiber/v2"
)

type approvalApiController struct {
	controllers.BaseAPIController
}

func InitApprovalApiRouters(app *fiber.App) {
	controller := approvalApiController{}
	app.Route("approval", func(router fiber.Router) {
		router.Post("time_off", controller.submitTimeOff)
		router.Post("shift_swap", controller.submitShiftSwap)
		router.Post("my", controller.listMy)
		router.Post("pending", controller.listPending)
		router.Get(":id", controller.get)
		router.Put(":id/approve", controller.approve)
		router.Put(":id/reject", controller.reject)
	})
}

// @Summary Заявка на отпуск
// @Tags Заявки
// @Description Создание заявки на отпуск
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body				body		approvalapimodels.TimeOffData	true	"request body"
// @Success 200 {object} apimodels.Response{data=approvalapimodels.ApprovalView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 422 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/approval/time_off [post]
func (c *approvalApiController) submitTimeOff(ctx *fiber.Ctx) error {
	var payload approvalapimodels.TimeOffData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	resp, err := approvalhandler.Instance.SubmitTimeOff(middleware.GetUserID(ctx), payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка создания заявки на отпуск")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Заявка на обмен сменами
// @Tags Заявки
// @Description Создание заявки на обмен сменами либо на подмену
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body				body		approvalapimodels.ShiftSwapData	true	"request body"
// @Success 200 {object} apimodels.Response{data=approvalapimodels.ApprovalView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 409 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/approval/shift_swap [post]
func (c *approvalApiController) submitShiftSwap(ctx *fiber.Ctx) error {
	var payload approvalapimodels.ShiftSwapData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	resp, err := approvalhandler.Instance.SubmitShiftSwap(middleware.GetUserID(ctx), payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка создания заявки на обмен сменами")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Мои заявки
// @Tags Заявки
// @Description Список заявок текущего сотрудника
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body				body		approvalapimodels.ApprovalFilter	true	"request body"
// @Success 200 {object} apimodels.Response{data=[]approvalapimodels.ApprovalView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/approval/my [post]
func (c *approvalApiController) listMy(ctx *fiber.Ctx) error {
	var payload approvalapimodels.ApprovalFilter
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	list, err := approvalhandler.Instance.ListMy(middleware.GetUserID(ctx), payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения списка заявок")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}

// @Summary Заявки на рассмотрении
// @Tags Заявки
// @Description Список нерассмотренных заявок
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body				body		approvalapimodels.ApprovalFilter	true	"request body"
// @Success 200 {object} apimodels.Response{data=[]approvalapimodels.ApprovalView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/approval/pending [post]
func (c *approvalApiController) listPending(ctx *fiber.Ctx) error {
	var payload approvalapimodels.ApprovalFilter
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	list, err := approvalhandler.Instance.ListPending(payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения списка заявок")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}

// @Summary Получение заявки по ИД
// @Tags Заявки
// @Description Получение заявки по ИД
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  true         "rec ID"
// @Success 200 {object} apimodels.Response{data=approvalapimodels.ApprovalView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/approval/{id} [get]
func (c *approvalApiController) get(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	resp, err := approvalhandler.Instance.GetByID(middleware.GetUserID(ctx), middleware.GetUserRole(ctx), id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения заявки")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Согласование заявки
// @Tags Заявки
// @Description Согласование заявки, повторное рассмотрение недопустимо
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  true         "rec ID"
// @Success 200 {object} apimodels.Response{data=approvalapimodels.ApprovalView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 409 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/approval/{id}/approve [put]
func (c *approvalApiController) approve(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	resp, err := approvalhandler.Instance.Approve(middleware.GetUserID(ctx), id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка согласования заявки")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Отклонение заявки
// @Tags Заявки
// @Description Отклонение заявки, причина обязательна
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  true         "rec ID"
// @Param	body				body		approvalapimodels.RejectData	true	"request body"
// @Success 200 {object} apimodels.Response{data=approvalapimodels.ApprovalView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 409 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/approval/{id}/reject [put]
func (c *approvalApiController) reject(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var payload approvalapimodels.RejectData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	resp, err := approvalhandler.Instance.Reject(middleware.GetUserID(ctx), id, payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка отклонения заявки")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}
