package apiv1

import (
	"io"

	"wfm-backend/controllers"
	filestorage "wfm-backend/lib/file-storage"
	"wfm-backend/lib/utils/helpers"
	"wfm-backend/middleware"
	apimodels "wfm-backend/models/api"
	dbmodels "wfm-backend/models/db"

	"github.com/gofiber/fiber/v2"
)

type fileApiController struct {
	controllers.BaseAPIController
}

func InitFileApiRouters(app *fiber.App) {
	controller := fileApiController{}
	app.Route("file", func(router fiber.Router) {
		router.Post("upload", controller.upload)
		router.Get(":id", controller.download)
	})
}

// @Summary Загрузка файла
// @Tags Файлы
// @Description Загрузка файла (фото отметки, фото по задаче, голосовая заметка)
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   file				formData	file 	true 	"Файл"
// @Param   file_type			formData	string 	true 	"Тип файла (CHECKIN_PHOTO/TASK_PHOTO/VOICE_NOTE)"
// @Success 200 {object} apimodels.Response{data=fileapimodels.FileView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/file/upload [post]
func (c *fileApiController) upload(ctx *fiber.Ctx) error {
	file, err := ctx.FormFile("file")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	fileType := dbmodels.FileType(ctx.FormValue("file_type"))
	if !fileType.IsKnown() {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError("указан неизвестный тип файла"))
	}
	buffer, err := file.Open()
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка при получении файла")
	}
	defer buffer.Close()
	fileBody, err := io.ReadAll(buffer)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка при загрузке файла")
	}

	contentType := helpers.GetFileContentType(file)
	resp, err := filestorage.Instance.Upload(ctx.UserContext(), middleware.GetUserID(ctx), fileType, file.Filename, contentType, fileBody)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка сохранения файла")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Скачивание файла
// @Tags Файлы
// @Description Скачивание файла по ИД
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  true         "rec ID"
// @Success 200
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/file/{id} [get]
func (c *fileApiController) download(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	view, body, err := filestorage.Instance.Download(ctx.UserContext(), id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения файла")
	}
	if view.ContentType != "" {
		ctx.Set(fiber.HeaderContentType, view.ContentType)
		ctx.Set(fiber.HeaderContentDisposition, `inline; filename="`+view.FileName+`"`)
	}
	return ctx.Send(body)
}
