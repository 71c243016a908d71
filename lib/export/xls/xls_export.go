package xlsexport

import (
	"bytes"
	"fmt"
	reportapimodels "wfm-backend/models/api/report"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/xuri/excelize/v2"
)

type Provider interface {
	ExportAttendance(report reportapimodels.AttendanceReport) (*bytes.Buffer, error)
	ExportBilling(list []reportapimodels.BillingRow) (*bytes.Buffer, error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{}
}

type impl struct{}

var monthNames = []string{"Январь", "Февраль", "Март", "Апрель", "Май", "Июнь",
	"Июль", "Август", "Сентябрь", "Октябрь", "Ноябрь", "Декабрь"}

var attendanceHeaders = []string{"Месяц", "Отработано часов"}

func (i impl) ExportAttendance(report reportapimodels.AttendanceReport) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			log.WithError(err).Error("ошибка закрытия файла")
		}
	}()
	sheet := "Sheet1"
	row := 0
	row, err := writeHeader(f, sheet, row, attendanceHeaders)
	if err != nil {
		return nil, errors.Wrap(err, "ошибка формирования заголовка в xlsx")
	}
	if err = applyDataCellStyle(f, sheet, 1, row+1, len(attendanceHeaders), row+14); err != nil {
		return nil, errors.Wrap(err, "ошибка формирования таблицы с данными в xlsx")
	}
	for idx, hours := range report.HoursByMonth {
		row++
		if err = writeRow(f, sheet, row, []interface{}{monthNames[idx], hours}); err != nil {
			return nil, errors.Wrap(err, "ошибка формирования таблицы с данными в xlsx")
		}
	}
	row++
	if err = writeRow(f, sheet, row, []interface{}{"Итого", report.TotalHours}); err != nil {
		return nil, errors.Wrap(err, "ошибка формирования таблицы с данными в xlsx")
	}
	row++
	if err = writeRow(f, sheet, row, []interface{}{"Посещено объектов", report.SitesVisited}); err != nil {
		return nil, errors.Wrap(err, "ошибка формирования таблицы с данными в xlsx")
	}
	f.SetSheetName(sheet, fmt.Sprintf("Табель %v", report.Year))
	return f.WriteToBuffer()
}

var billingHeaders = []string{"Сотрудник", "Объект", "Часы к оплате"}

func (i impl) ExportBilling(list []reportapimodels.BillingRow) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			log.WithError(err).Error("ошибка закрытия файла")
		}
	}()
	sheet := "Sheet1"
	row := 0
	row, err := writeHeader(f, sheet, row, billingHeaders)
	if err != nil {
		return nil, errors.Wrap(err, "ошибка формирования заголовка в xlsx")
	}
	if len(list) != 0 {
		if err = applyDataCellStyle(f, sheet, 1, row+1, len(billingHeaders), row+len(list)); err != nil {
			return nil, errors.Wrap(err, "ошибка формирования таблицы с данными в xlsx")
		}
		for _, item := range list {
			row++
			values := []interface{}{item.EmployeeName, item.SiteName, item.BillableHours}
			if err = writeRow(f, sheet, row, values); err != nil {
				return nil, errors.Wrap(err, "ошибка формирования таблицы с данными в xlsx")
			}
		}
	}
	f.SetSheetName(sheet, "Биллинг")
	return f.WriteToBuffer()
}
