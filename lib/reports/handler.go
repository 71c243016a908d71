package reports

import (
	"bytes"
	"time"
	"wfm-backend/db"
	"wfm-backend/lib/apperrors"
	employeestore "wfm-backend/lib/employee/store"
	pdfexport "wfm-backend/lib/export/pdf"
	xlsexport "wfm-backend/lib/export/xls"
	initchecker "wfm-backend/lib/utils/init-checker"
	sessionstore "wfm-backend/lib/work-session/store"
	"wfm-backend/models"
	reportapimodels "wfm-backend/models/api/report"
	sessionapimodels "wfm-backend/models/api/worksession"
	dbmodels "wfm-backend/models/db"

	"github.com/pkg/errors"
)

type Provider interface {
	Attendance(filter reportapimodels.AttendanceFilter) (report reportapimodels.AttendanceReport, err error)
	AttendanceXLS(filter reportapimodels.AttendanceFilter) (file *bytes.Buffer, err error)
	AttendancePDF(filter reportapimodels.AttendanceFilter) (file []byte, err error)
	ClientVisits(filter reportapimodels.ClientVisitFilter) (rows []reportapimodels.ClientVisitRow, err error)
	Billing(filter reportapimodels.BillingFilter) (rows []reportapimodels.BillingRow, err error)
	BillingXLS(filter reportapimodels.BillingFilter) (file *bytes.Buffer, err error)
}

var Instance Provider

func NewHandler() {
	instance := impl{
		sessionStore:  sessionstore.NewInstance(db.DB),
		employeeStore: employeestore.NewInstance(db.DB),
		xls:           xlsexport.Instance,
	}
	initchecker.CheckInit(
		"xls", instance.xls,
	)
	Instance = instance
}

type impl struct {
	sessionStore  sessionstore.Provider
	employeeStore employeestore.Provider
	xls           xlsexport.Provider
}

func (i impl) Attendance(filter reportapimodels.AttendanceFilter) (reportapimodels.AttendanceReport, error) {
	report := reportapimodels.AttendanceReport{}
	if err := filter.Validate(); err != nil {
		return report, apperrors.Wrap(err, apperrors.KindValidation, err.Error())
	}
	employee, err := i.employeeStore.GetByID(filter.EmployeeID)
	if err != nil {
		return report, errors.Wrap(err, "ошибка получения сотрудника")
	}
	if employee == nil {
		return report, apperrors.NewNotFound("сотрудник не найден")
	}
	yearFrom := time.Date(filter.Year, time.January, 1, 0, 0, 0, 0, time.UTC)
	yearTo := yearFrom.AddDate(1, 0, 0).Add(-time.Nanosecond)
	list, err := i.sessionStore.List(sessionapimodels.SessionFilter{
		EmployeeID: filter.EmployeeID,
		DateFrom:   &yearFrom,
		DateTo:     &yearTo,
	})
	if err != nil {
		return report, errors.Wrap(err, "ошибка получения списка смен")
	}
	report = BuildAttendance(filter.EmployeeID, filter.Year, list)
	report.EmployeeName = employee.GetFullName()
	return report, nil
}

// BuildAttendance - часы по месяцам, учитываются только закрытые смены
func BuildAttendance(employeeID string, year int, list []dbmodels.WorkSession) reportapimodels.AttendanceReport {
	report := reportapimodels.AttendanceReport{
		EmployeeID: employeeID,
		Year:       year,
	}
	sites := map[string]bool{}
	for _, rec := range list {
		if rec.Status != models.SessionCheckedOut {
			report.ActiveCount++
			continue
		}
		hours := rec.Duration().Hours()
		month := int(rec.CheckInTime.Month()) - 1
		report.HoursByMonth[month] += hours
		report.TotalHours += hours
		sites[rec.SiteID] = true
	}
	report.SitesVisited = len(sites)
	return report
}

func (i impl) AttendanceXLS(filter reportapimodels.AttendanceFilter) (*bytes.Buffer, error) {
	report, err := i.Attendance(filter)
	if err != nil {
		return nil, err
	}
	return i.xls.ExportAttendance(report)
}

func (i impl) AttendancePDF(filter reportapimodels.AttendanceFilter) ([]byte, error) {
	report, err := i.Attendance(filter)
	if err != nil {
		return nil, err
	}
	return pdfexport.GenerateAttendance(report)
}

func (i impl) ClientVisits(filter reportapimodels.ClientVisitFilter) ([]reportapimodels.ClientVisitRow, error) {
	list, err := i.sessionStore.List(sessionapimodels.SessionFilter{
		DateFrom: filter.DateFrom,
		DateTo:   filter.DateTo,
	})
	if err != nil {
		return nil, errors.Wrap(err, "ошибка получения списка смен")
	}
	return BuildClientVisits(filter.SiteID, list), nil
}

// BuildClientVisits - посещения по объектам, учитываются только закрытые смены
func BuildClientVisits(siteID string, list []dbmodels.WorkSession) []reportapimodels.ClientVisitRow {
	bySite := map[string]*reportapimodels.ClientVisitRow{}
	order := []string{}
	for _, rec := range list {
		if rec.Status != models.SessionCheckedOut {
			continue
		}
		if siteID != "" && rec.SiteID != siteID {
			continue
		}
		row, ok := bySite[rec.SiteID]
		if !ok {
			row = &reportapimodels.ClientVisitRow{SiteID: rec.SiteID}
			if rec.Site != nil {
				row.SiteName = rec.Site.Name
			}
			bySite[rec.SiteID] = row
			order = append(order, rec.SiteID)
		}
		row.VisitCount++
		row.TotalHours += rec.Duration().Hours()
	}
	result := make([]reportapimodels.ClientVisitRow, 0, len(order))
	for _, id := range order {
		result = append(result, *bySite[id])
	}
	return result
}

func (i impl) Billing(filter reportapimodels.BillingFilter) ([]reportapimodels.BillingRow, error) {
	if err := filter.Validate(); err != nil {
		return nil, apperrors.Wrap(err, apperrors.KindValidation, err.Error())
	}
	list, err := i.sessionStore.List(sessionapimodels.SessionFilter{
		DateFrom: &filter.DateFrom,
		DateTo:   &filter.DateTo,
	})
	if err != nil {
		return nil, errors.Wrap(err, "ошибка получения списка смен")
	}
	return BuildBilling(list), nil
}

// BuildBilling - часы к оплате по парам сотрудник-объект
func BuildBilling(list []dbmodels.WorkSession) []reportapimodels.BillingRow {
	type key struct {
		employeeID string
		siteID     string
	}
	byPair := map[key]*reportapimodels.BillingRow{}
	order := []key{}
	for _, rec := range list {
		if rec.Status != models.SessionCheckedOut {
			continue
		}
		k := key{employeeID: rec.EmployeeID, siteID: rec.SiteID}
		row, ok := byPair[k]
		if !ok {
			row = &reportapimodels.BillingRow{
				EmployeeID: rec.EmployeeID,
				SiteID:     rec.SiteID,
			}
			if rec.Employee != nil {
				row.EmployeeName = rec.Employee.GetFullName()
			}
			if rec.Site != nil {
				row.SiteName = rec.Site.Name
			}
			byPair[k] = row
			order = append(order, k)
		}
		row.BillableHours += rec.Duration().Hours()
	}
	result := make([]reportapimodels.BillingRow, 0, len(order))
	for _, k := range order {
		result = append(result, *byPair[k])
	}
	return result
}

func (i impl) BillingXLS(filter reportapimodels.BillingFilter) (*bytes.Buffer, error) {
	rows, err := i.Billing(filter)
	if err != nil {
		return nil, err
	}
	return i.xls.ExportBilling(rows)
}
