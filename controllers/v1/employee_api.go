package apiv1

import (
	"wfm-backend/controllers"
	employeehandler "wfm-backend/lib/employee"
	"wfm-backend/middleware"
	apimodels "wfm-backend/models/api"
	employeeapimodels "wfm-backend/models/api/employee"

	"github.com/gofiber/fiber/v2"
)

type employeeApiController struct {
	controllers.BaseAPIController
}

func InitEmployeeApiRouters(app *fiber.App) {
	controller := employeeApiController{}
	app.Route("employees", func(router fiber.Router) {
		router.Post("", controller.create)
		router.Post("list", controller.list)
		router.Get(":id", controller.get)
		router.Put(":id", controller.update)
		router.Put(":id/role", controller.changeRole)
		router.Put(":id/deactivate", controller.deactivate)
		router.Put(":id/activate", controller.activate)
	})
}

// @Summary Создание сотрудника
// @Tags Сотрудники
// @Description Создание сотрудника
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body				body		employeeapimodels.EmployeeCreateData	true	"request body"
// @Success 200 {object} apimodels.Response{data=employeeapimodels.EmployeeView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/employees [post]
func (c *employeeApiController) create(ctx *fiber.Ctx) error {
	var payload employeeapimodels.EmployeeCreateData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	resp, err := employeehandler.Instance.Create(payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка создания сотрудника")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

type employeeListRequest struct {
	ActiveOnly bool `json:"active_only"`
}

// @Summary Список сотрудников
// @Tags Сотрудники
// @Description Список сотрудников
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body				body		employeeListRequest	true	"request body"
// @Success 200 {object} apimodels.Response{data=[]employeeapimodels.EmployeeView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/employees/list [post]
func (c *employeeApiController) list(ctx *fiber.Ctx) error {
	var payload employeeListRequest
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	list, err := employeehandler.Instance.List(payload.ActiveOnly)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения списка сотрудников")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}

// @Summary Получение сотрудника по ИД
// @Tags Сотрудники
// @Description Получение сотрудника по ИД
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  true         "rec ID"
// @Success 200 {object} apimodels.Response{data=employeeapimodels.EmployeeView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/employees/{id} [get]
func (c *employeeApiController) get(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	resp, err := employeehandler.Instance.GetByID(id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения данных сотрудника")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Обновление сотрудника
// @Tags Сотрудники
// @Description Обновление сотрудника
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  true         "rec ID"
// @Param	body				body		employeeapimodels.EmployeeData	true	"request body"
// @Success 200 {object} apimodels.Response{data=employeeapimodels.EmployeeView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/employees/{id} [put]
func (c *employeeApiController) update(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var payload employeeapimodels.EmployeeData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	resp, err := employeehandler.Instance.Update(id, payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка обновления сотрудника")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Изменение роли сотрудника
// @Tags Сотрудники
// @Description Изменение роли сотрудника
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  true         "rec ID"
// @Param	body				body		employeeapimodels.RoleChangeData	true	"request body"
// @Success 200 {object} apimodels.Response{data=employeeapimodels.EmployeeView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/employees/{id}/role [put]
func (c *employeeApiController) changeRole(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var payload employeeapimodels.RoleChangeData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	resp, err := employeehandler.Instance.ChangeRole(id, payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка изменения роли сотрудника")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Деактивация сотрудника
// @Tags Сотрудники
// @Description Деактивация сотрудника, учётная запись сохраняется без права входа
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  true         "rec ID"
// @Success 200 {object} apimodels.Response{data=employeeapimodels.EmployeeView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/employees/{id}/deactivate [put]
func (c *employeeApiController) deactivate(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	resp, err := employeehandler.Instance.Deactivate(middleware.GetUserID(ctx), id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка деактивации сотрудника")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Активация сотрудника
// @Tags Сотрудники
// @Description Возврат деактивированному сотруднику права входа
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  true         "rec ID"
// @Success 200 {object} apimodels.Response{data=employeeapimodels.EmployeeView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/employees/{id}/activate [put]
func (c *employeeApiController) activate(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	resp, err := employeehandler.Instance.Activate(id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка активации сотрудника")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}
