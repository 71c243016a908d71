package shiftapimodels

import (
	"time"
	dbmodels "wfm-backend/models/db"

	"github.com/pkg/errors"
)

type ShiftData struct {
	EmployeeID    string    `json:"employee_id"`
	SiteID        string    `json:"site_id"`
	Title         string    `json:"title"`
	StartAt       time.Time `json:"start_at"`
	EndAt         time.Time `json:"end_at"`
	Recurrence    string    `json:"recurrence"`
	OvertimeHours float64   `json:"overtime_hours"`
}

func (r ShiftData) Validate() error {
	if r.EmployeeID == "" {
		return errors.New("не указан сотрудник")
	}
	if r.Title == "" {
		return errors.New("не указано название смены")
	}
	if r.StartAt.IsZero() || r.EndAt.IsZero() {
		return errors.New("не указаны границы смены")
	}
	if !r.StartAt.Before(r.EndAt) {
		return errors.New("начало смены позже её окончания")
	}
	if r.OvertimeHours < 0 {
		return errors.New("переработка не может быть отрицательной")
	}
	return nil
}

type CompleteData struct {
	OvertimeHours float64 `json:"overtime_hours"`
}

type ShiftFilter struct {
	EmployeeID string     `json:"employee_id"`
	DateFrom   *time.Time `json:"date_from"`
	DateTo     *time.Time `json:"date_to"`
}

type ShiftView struct {
	ID            string    `json:"id"`
	EmployeeID    string    `json:"employee_id"`
	EmployeeName  string    `json:"employee_name,omitempty"`
	SiteID        string    `json:"site_id,omitempty"`
	Title         string    `json:"title"`
	StartAt       time.Time `json:"start_at"`
	EndAt         time.Time `json:"end_at"`
	Recurrence    string    `json:"recurrence,omitempty"`
	Status        string    `json:"status"`
	StatusName    string    `json:"status_name"`
	OvertimeHours float64   `json:"overtime_hours,omitempty"`
}

// ShiftConvert - статус в ответе вычисляется на момент now, а не хранится
func ShiftConvert(rec dbmodels.Shift, now time.Time) ShiftView {
	status := rec.StatusAt(now)
	view := ShiftView{
		ID:            rec.ID,
		EmployeeID:    rec.EmployeeID,
		Title:         rec.Title,
		StartAt:       rec.StartAt,
		EndAt:         rec.EndAt,
		Recurrence:    rec.Recurrence,
		Status:        string(status),
		StatusName:    status.ToHuman(),
		OvertimeHours: rec.OvertimeHours,
	}
	if rec.Employee != nil {
		view.EmployeeName = rec.Employee.GetFullName()
	}
	if rec.SiteID != nil {
		view.SiteID = *rec.SiteID
	}
	return view
}
