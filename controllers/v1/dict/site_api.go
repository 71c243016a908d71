package dict

import (
	"wfm-backend/controllers"
	siteprovider "wfm-backend/lib/dicts/site"
	apimodels "wfm-backend/models/api"
	dictapimodels "wfm-backend/models/api/dict"

	"github.com/gofiber/fiber/v2"
)

type siteDictApiController struct {
	controllers.BaseAPIController
}

func InitSiteDictApiRouters(app *fiber.App) {
	controller := siteDictApiController{}
	app.Route("site", func(router fiber.Router) {
		router.Post("", controller.create)
		router.Post("list", controller.list)
		router.Get(":id", controller.get)
		router.Put(":id", controller.update)
	})
}

// @Summary Создание объекта
// @Tags Справочник. Объекты
// @Description Создание объекта обслуживания
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body				body		dictapimodels.SiteData	true	"request body"
// @Success 200 {object} apimodels.Response{data=dictapimodels.SiteView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/dict/site [post]
func (c *siteDictApiController) create(ctx *fiber.Ctx) error {
	var payload dictapimodels.SiteData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	resp, err := siteprovider.Instance.Create(payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка создания объекта")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Обновление объекта
// @Tags Справочник. Объекты
// @Description Обновление объекта обслуживания
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  true         "rec ID"
// @Param	body				body		dictapimodels.SiteData	true	"request body"
// @Success 200 {object} apimodels.Response{data=dictapimodels.SiteView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/dict/site/{id} [put]
func (c *siteDictApiController) update(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var payload dictapimodels.SiteData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	resp, err := siteprovider.Instance.Update(id, payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка обновления объекта")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Получение объекта по ИД
// @Tags Справочник. Объекты
// @Description Получение объекта по ИД
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  true         "rec ID"
// @Success 200 {object} apimodels.Response{data=dictapimodels.SiteView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/dict/site/{id} [get]
func (c *siteDictApiController) get(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	resp, err := siteprovider.Instance.GetByID(id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения объекта")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

type siteListRequest struct {
	ActiveOnly bool `json:"active_only"`
}

// @Summary Список объектов
// @Tags Справочник. Объекты
// @Description Список объектов обслуживания
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body				body		siteListRequest	true	"request body"
// @Success 200 {object} apimodels.Response{data=[]dictapimodels.SiteView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/dict/site/list [post]
func (c *siteDictApiController) list(ctx *fiber.Ctx) error {
	var payload siteListRequest
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	list, err := siteprovider.Instance.List(payload.ActiveOnly)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения списка объектов")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}
