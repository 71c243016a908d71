package pdfexport

import (
	"bytes"
	"fmt"
	reportapimodels "wfm-backend/models/api/report"

	"github.com/go-pdf/fpdf"
	"github.com/pkg/errors"
)

var monthNames = []string{"Январь", "Февраль", "Март", "Апрель", "Май", "Июнь",
	"Июль", "Август", "Сентябрь", "Октябрь", "Ноябрь", "Декабрь"}

// GenerateAttendance - табель учёта рабочего времени сотрудника за год
func GenerateAttendance(report reportapimodels.AttendanceReport) (pdfFile []byte, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = errors.Errorf("GenerateAttendance panic recover: %v", r)
		}
	}()
	pdf := fpdf.New("P", "mm", "A4", "static/font/")
	pdf.AddPage()
	pdf.AddUTF8Font("Arial", "", "Arial.ttf")
	pdf.AddUTF8Font("Arial", "B", "Arial Bold.ttf")
	pdf.SetFont("Arial", "B", 14)
	if pdf.Error() != nil {
		return nil, pdf.Error()
	}

	pdf.CellFormat(0, 10, fmt.Sprintf("Табель учёта рабочего времени за %v год", report.Year), "", 1, "C", false, 0, "")
	pdf.SetFont("Arial", "", 12)
	pdf.CellFormat(0, 8, fmt.Sprintf("Сотрудник: %v", report.EmployeeName), "", 1, "L", false, 0, "")
	pdf.Ln(4)

	pdf.SetFont("Arial", "B", 11)
	pdf.CellFormat(60, 8, "Месяц", "1", 0, "C", false, 0, "")
	pdf.CellFormat(60, 8, "Отработано часов", "1", 1, "C", false, 0, "")
	pdf.SetFont("Arial", "", 11)
	for idx, hours := range report.HoursByMonth {
		pdf.CellFormat(60, 8, monthNames[idx], "1", 0, "L", false, 0, "")
		pdf.CellFormat(60, 8, fmt.Sprintf("%.2f", hours), "1", 1, "R", false, 0, "")
	}
	pdf.SetFont("Arial", "B", 11)
	pdf.CellFormat(60, 8, "Итого", "1", 0, "L", false, 0, "")
	pdf.CellFormat(60, 8, fmt.Sprintf("%.2f", report.TotalHours), "1", 1, "R", false, 0, "")
	pdf.Ln(4)
	pdf.SetFont("Arial", "", 11)
	pdf.CellFormat(0, 8, fmt.Sprintf("Посещено объектов: %v", report.SitesVisited), "", 1, "L", false, 0, "")
	if report.ActiveCount > 0 {
		pdf.CellFormat(0, 8, fmt.Sprintf("Незакрытых смен: %v (в часы не входят)", report.ActiveCount), "", 1, "L", false, 0, "")
	}

	buf := new(bytes.Buffer)
	err = pdf.Output(buf)
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
