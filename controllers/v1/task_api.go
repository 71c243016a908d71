package apiv1

import (
	"wfm-backend/controllers"
	taskhandler "wfm-backend/lib/task"
	"wfm-backend/middleware"
	apimodels "wfm-backend/models/api"
	taskapimodels "wfm-backend/models/api/task"

	"github.com/gofiber/fiber/v2"
)

type taskApiController struct {
	controllers.BaseAPIController
}

func InitTaskApiRouters(app *fiber.App) {
	controller := taskApiController{}
	app.Route("task", func(router fiber.Router) {
		router.Post("", controller.create)
		router.Post("my", controller.listMy)
		router.Post("list", controller.list)
		router.Get(":id", controller.get)
		router.Post(":id/update", controller.addUpdate)
	})
}

// @Summary Создание задачи
// @Tags Задачи
// @Description Создание задачи с назначением исполнителя
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body				body		taskapimodels.TaskData	true	"request body"
// @Success 200 {object} apimodels.Response{data=taskapimodels.TaskView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/task [post]
func (c *taskApiController) create(ctx *fiber.Ctx) error {
	var payload taskapimodels.TaskData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	resp, err := taskhandler.Instance.Create(middleware.GetUserID(ctx), payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка создания задачи")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Отметка о ходе выполнения задачи
// @Tags Задачи
// @Description Отметка о ходе выполнения задачи, для завершения может требоваться фото и геопозиция
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  true         "rec ID"
// @Param	body				body		taskapimodels.TaskUpdateData	true	"request body"
// @Success 200 {object} apimodels.Response{data=taskapimodels.TaskView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 409 {object} apimodels.Response
// @Failure 422 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/task/{id}/update [post]
func (c *taskApiController) addUpdate(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var payload taskapimodels.TaskUpdateData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	resp, err := taskhandler.Instance.AddUpdate(middleware.GetUserID(ctx), middleware.GetUserRole(ctx), id, payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка обновления задачи")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Мои задачи
// @Tags Задачи
// @Description Список задач текущего сотрудника
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {object} apimodels.Response{data=[]taskapimodels.TaskView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/task/my [post]
func (c *taskApiController) listMy(ctx *fiber.Ctx) error {
	list, err := taskhandler.Instance.ListMy(middleware.GetUserID(ctx))
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения списка задач")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}

// @Summary Список задач
// @Tags Задачи
// @Description Список всех задач
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {object} apimodels.Response{data=[]taskapimodels.TaskView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/task/list [post]
func (c *taskApiController) list(ctx *fiber.Ctx) error {
	list, err := taskhandler.Instance.List()
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения списка задач")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}

// @Summary Получение задачи по ИД
// @Tags Задачи
// @Description Получение задачи по ИД вместе с журналом отметок
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  true         "rec ID"
// @Success 200 {object} apimodels.Response{data=taskapimodels.TaskView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/task/{id} [get]
func (c *taskApiController) get(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	resp, err := taskhandler.Instance.GetByID(middleware.GetUserID(ctx), middleware.GetUserRole(ctx), id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения задачи")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}
