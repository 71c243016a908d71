package dict

import (
	"wfm-backend/controllers"
	restrictedperiodprovider "wfm-backend/lib/restricted-period"
	apimodels "wfm-backend/models/api"
	dictapimodels "wfm-backend/models/api/dict"

	"github.com/gofiber/fiber/v2"
)

type restrictedPeriodDictApiController struct {
	controllers.BaseAPIController
}

func InitRestrictedPeriodDictApiRouters(app *fiber.App) {
	controller := restrictedPeriodDictApiController{}
	app.Route("restricted_period", func(router fiber.Router) {
		router.Post("", controller.create)
		router.Post("list", controller.list)
		router.Put(":id", controller.update)
		router.Delete(":id", controller.delete)
	})
}

// @Summary Создание запретного периода
// @Tags Справочник. Запретные периоды
// @Description Создание периода, в котором отпуска не согласуются
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body				body		dictapimodels.RestrictedPeriodData	true	"request body"
// @Success 200 {object} apimodels.Response{data=dictapimodels.RestrictedPeriodView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/dict/restricted_period [post]
func (c *restrictedPeriodDictApiController) create(ctx *fiber.Ctx) error {
	var payload dictapimodels.RestrictedPeriodData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	resp, err := restrictedperiodprovider.Instance.Create(payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка создания запретного периода")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Обновление запретного периода
// @Tags Справочник. Запретные периоды
// @Description Обновление запретного периода
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  true         "rec ID"
// @Param	body				body		dictapimodels.RestrictedPeriodData	true	"request body"
// @Success 200 {object} apimodels.Response{data=dictapimodels.RestrictedPeriodView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/dict/restricted_period/{id} [put]
func (c *restrictedPeriodDictApiController) update(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var payload dictapimodels.RestrictedPeriodData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	resp, err := restrictedperiodprovider.Instance.Update(id, payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка обновления запретного периода")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Удаление запретного периода
// @Tags Справочник. Запретные периоды
// @Description Удаление запретного периода
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  true         "rec ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/dict/restricted_period/{id} [delete]
func (c *restrictedPeriodDictApiController) delete(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := restrictedperiodprovider.Instance.Delete(id); err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка удаления запретного периода")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Список запретных периодов
// @Tags Справочник. Запретные периоды
// @Description Список запретных периодов
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {object} apimodels.Response{data=[]dictapimodels.RestrictedPeriodView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/dict/restricted_period/list [post]
func (c *restrictedPeriodDictApiController) list(ctx *fiber.Ctx) error {
	list, err := restrictedperiodprovider.Instance.List()
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения списка запретных периодов")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}
