package reportapimodels

import (
	"time"

	"github.com/pkg/errors"
)

type AttendanceFilter struct {
	EmployeeID string `json:"employee_id"`
	Year       int    `json:"year"`
}

func (r AttendanceFilter) Validate() error {
	if r.EmployeeID == "" {
		return errors.New("не указан сотрудник")
	}
	if r.Year < 2000 || r.Year > 2100 {
		return errors.New("указан некорректный год")
	}
	return nil
}

type AttendanceReport struct {
	EmployeeID   string      `json:"employee_id"`
	EmployeeName string      `json:"employee_name,omitempty"`
	Year         int         `json:"year"`
	HoursByMonth [12]float64 `json:"hours_by_month"`
	TotalHours   float64     `json:"total_hours"`
	SitesVisited int         `json:"sites_visited"`
	ActiveCount  int         `json:"active_count"` // незакрытые смены, в часы не входят
}

type ClientVisitFilter struct {
	SiteID   string     `json:"site_id"` // пусто - по всем объектам
	DateFrom *time.Time `json:"date_from"`
	DateTo   *time.Time `json:"date_to"`
}

type ClientVisitRow struct {
	SiteID     string  `json:"site_id"`
	SiteName   string  `json:"site_name,omitempty"`
	VisitCount int     `json:"visit_count"`
	TotalHours float64 `json:"total_hours"`
}

type BillingFilter struct {
	DateFrom time.Time `json:"date_from"`
	DateTo   time.Time `json:"date_to"`
}

func (r BillingFilter) Validate() error {
	if r.DateFrom.IsZero() || r.DateTo.IsZero() {
		return errors.New("не указан период отчёта")
	}
	if r.DateFrom.After(r.DateTo) {
		return errors.New("начало периода позже его окончания")
	}
	return nil
}

type BillingRow struct {
	EmployeeID    string  `json:"employee_id"`
	EmployeeName  string  `json:"employee_name,omitempty"`
	SiteID        string  `json:"site_id"`
	SiteName      string  `json:"site_name,omitempty"`
	BillableHours float64 `json:"billable_hours"`
}
