package apiv1

import (
	"fmt"
	"time"

	"wfm-backend/controllers"
	reportshandler "wfm-backend/lib/reports"
	apimodels "wfm-backend/models/api"
	reportapimodels "wfm-backend/models/api/report"

	"github.com/gofiber/fiber/v2"
)

type reportApiController struct {
	controllers.BaseAPIController
}

func InitReportApiRouters(app *fiber.App) {
	controller := reportApiController{}
	app.Route("report", func(router fiber.Router) {
		router.Post("attendance", controller.attendance)
		router.Post("attendance/export/xls", controller.attendanceXLS)
		router.Post("attendance/export/pdf", controller.attendancePDF)
		router.Post("client_visits", controller.clientVisits)
		router.Post("billing", controller.billing)
		router.Post("billing/export/xls", controller.billingXLS)
	})
}

// @Summary Табель посещаемости
// @Tags Отчёты
// @Description Табель посещаемости сотрудника за год с разбивкой часов по месяцам
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body				body		reportapimodels.AttendanceFilter	true	"request body"
// @Success 200 {object} apimodels.Response{data=reportapimodels.AttendanceReport}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/report/attendance [post]
func (c *reportApiController) attendance(ctx *fiber.Ctx) error {
	var payload reportapimodels.AttendanceFilter
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	resp, err := reportshandler.Instance.Attendance(payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка формирования табеля посещаемости")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Табель посещаемости. Выгрузить в Excel
// @Tags Отчёты
// @Description Табель посещаемости. Выгрузить в Excel
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body				body		reportapimodels.AttendanceFilter	true	"request body"
// @Success 200
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/report/attendance/export/xls [post]
func (c *reportApiController) attendanceXLS(ctx *fiber.Ctx) error {
	var payload reportapimodels.AttendanceFilter
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	data, err := reportshandler.Instance.AttendanceXLS(payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка выгрузки табеля посещаемости в Excel")
	}
	fileName := fmt.Sprintf("attendance-%v.xlsx", time.Now().Format("20060102-150405"))
	ctx.Set("Content-Type", "application/vnd.ms-excel")
	ctx.Set(fiber.HeaderContentDisposition, `attachment; filename="`+fileName+`"`)
	return ctx.SendStream(data)
}

// @Summary Табель посещаемости. Выгрузить в PDF
// @Tags Отчёты
// @Description Табель посещаемости. Выгрузить в PDF
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body				body		reportapimodels.AttendanceFilter	true	"request body"
// @Success 200
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/report/attendance/export/pdf [post]
func (c *reportApiController) attendancePDF(ctx *fiber.Ctx) error {
	var payload reportapimodels.AttendanceFilter
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	data, err := reportshandler.Instance.AttendancePDF(payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка выгрузки табеля посещаемости в PDF")
	}
	fileName := fmt.Sprintf("attendance-%v.pdf", time.Now().Format("20060102-150405"))
	ctx.Set("Content-Type", "application/pdf")
	ctx.Set(fiber.HeaderContentDisposition, `attachment; filename="`+fileName+`"`)
	return ctx.Send(data)
}

// @Summary Отчёт по посещениям объектов
// @Tags Отчёты
// @Description Количество визитов и отработанные часы по объектам за период
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body				body		reportapimodels.ClientVisitFilter	true	"request body"
// @Success 200 {object} apimodels.Response{data=[]reportapimodels.ClientVisitRow}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/report/client_visits [post]
func (c *reportApiController) clientVisits(ctx *fiber.Ctx) error {
	var payload reportapimodels.ClientVisitFilter
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	resp, err := reportshandler.Instance.ClientVisits(payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка формирования отчёта по посещениям")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Отчёт для биллинга
// @Tags Отчёты
// @Description Отработанные часы по сотрудникам и объектам за период
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body				body		reportapimodels.BillingFilter	true	"request body"
// @Success 200 {object} apimodels.Response{data=[]reportapimodels.BillingRow}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/report/billing [post]
func (c *reportApiController) billing(ctx *fiber.Ctx) error {
	var payload reportapimodels.BillingFilter
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	resp, err := reportshandler.Instance.Billing(payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка формирования отчёта для биллинга")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Отчёт для биллинга. Выгрузить в Excel
// @Tags Отчёты
// @Description Отчёт для биллинга. Выгрузить в Excel
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body				body		reportapimodels.BillingFilter	true	"request body"
// @Success 200
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/report/billing/export/xls [post]
func (c *reportApiController) billingXLS(ctx *fiber.Ctx) error {
	var payload reportapimodels.BillingFilter
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	data, err := reportshandler.Instance.BillingXLS(payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка выгрузки отчёта для биллинга в Excel")
	}
	fileName := fmt.Sprintf("billing-%v.xlsx", time.Now().Format("20060102-150405"))
	ctx.Set("Content-Type", "application/vnd.ms-excel")
	ctx.Set(fiber.HeaderContentDisposition, `attachment; filename="`+fileName+`"`)
	return ctx.SendStream(data)
}
