package dict

import (
	"wfm-backend/controllers"
	productprovider "wfm-backend/lib/dicts/product"
	apimodels "wfm-backend/models/api"
	dictapimodels "wfm-backend/models/api/dict"

	"github.com/gofiber/fiber/v2"
)

type productDictApiController struct {
	controllers.BaseAPIController
}

func InitProductDictApiRouters(app *fiber.App) {
	controller := productDictApiController{}
	app.Route("product", func(router fiber.Router) {
		router.Post("", controller.create)
		router.Post("list", controller.list)
		router.Get(":id", controller.get)
		router.Put(":id", controller.update)
	})
}

// @Summary Создание услуги
// @Tags Справочник. Услуги
// @Description Создание услуги
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body				body		dictapimodels.ProductData	true	"request body"
// @Success 200 {object} apimodels.Response{data=dictapimodels.ProductView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/dict/product [post]
func (c *productDictApiController) create(ctx *fiber.Ctx) error {
	var payload dictapimodels.ProductData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	resp, err := productprovider.Instance.Create(payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка создания услуги")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Обновление услуги
// @Tags Справочник. Услуги
// @Description Обновление услуги
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  true         "rec ID"
// @Param	body				body		dictapimodels.ProductData	true	"request body"
// @Success 200 {object} apimodels.Response{data=dictapimodels.ProductView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/dict/product/{id} [put]
func (c *productDictApiController) update(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var payload dictapimodels.ProductData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	resp, err := productprovider.Instance.Update(id, payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка обновления услуги")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Получение услуги по ИД
// @Tags Справочник. Услуги
// @Description Получение услуги по ИД
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  true         "rec ID"
// @Success 200 {object} apimodels.Response{data=dictapimodels.ProductView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/dict/product/{id} [get]
func (c *productDictApiController) get(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	resp, err := productprovider.Instance.GetByID(id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения услуги")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

type productListRequest struct {
	ActiveOnly bool `json:"active_only"`
}

// @Summary Список услуг
// @Tags Справочник. Услуги
// @Description Список услуг
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body				body		productListRequest	true	"request body"
// @Success 200 {object} apimodels.Response{data=[]dictapimodels.ProductView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/dict/product/list [post]
func (c *productDictApiController) list(ctx *fiber.Ctx) error {
	var payload productListRequest
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	list, err := productprovider.Instance.List(payload.ActiveOnly)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения списка услуг")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}
