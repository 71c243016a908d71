package sessionapimodels

import (
	"time"
	dbmodels "wfm-backend/models/db"

	"github.com/pkg/errors"
)

type GeoPoint struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

func (r GeoPoint) Validate() error {
	if r.Lat < -90 || r.Lat > 90 || r.Lon < -180 || r.Lon > 180 {
		return errors.New("получены некорректные координаты")
	}
	return nil
}

type CheckInData struct {
	SiteID  string    `json:"site_id"`
	Coords  *GeoPoint `json:"coords"`
	PhotoID string    `json:"photo_id"` // ссылка на загруженное фото, опционально
	ShiftID string    `json:"shift_id"` // смена по расписанию, опционально
	Notes   string    `json:"notes"`
}

func (r CheckInData) Validate() error {
	if r.SiteID == "" {
		return errors.New("не указан объект")
	}
	if r.Coords == nil {
		return errors.New("не указаны координаты отметки")
	}
	return r.Coords.Validate()
}

type CheckOutData struct {
	Coords  *GeoPoint        `json:"coords"`
	Notes   string           `json:"notes"`
	Summary *WorkSummaryData `json:"summary"` // отчёт о работе, опционально вместе с закрытием смены
}

func (r CheckOutData) Validate() error {
	if r.Coords == nil {
		return errors.New("не указаны координаты отметки")
	}
	if err := r.Coords.Validate(); err != nil {
		return err
	}
	if r.Summary != nil {
		return r.Summary.Validate()
	}
	return nil
}

type ProductUsageData struct {
	ProductID string  `json:"product_id"`
	Quantity  float64 `json:"quantity"`
	Notes     string  `json:"notes"`
}

type WorkSummaryData struct {
	Notes         string             `json:"notes"`
	ProductUsages []ProductUsageData `json:"product_usages"`
	VoiceNote     string             `json:"voice_note"`
	VoiceLang     string             `json:"voice_lang"`
}

func (r WorkSummaryData) Validate() error {
	for _, usage := range r.ProductUsages {
		if usage.ProductID == "" {
			return errors.New("не указан материал в строке отчёта")
		}
		if usage.Quantity <= 0 {
			return errors.New("количество материала должно быть положительным")
		}
	}
	return nil
}

type SessionFilter struct {
	EmployeeID string     `json:"employee_id"`
	DateFrom   *time.Time `json:"date_from"`
	DateTo     *time.Time `json:"date_to"`
}

func (r SessionFilter) Validate() error {
	if r.DateFrom != nil && r.DateTo != nil && r.DateFrom.After(*r.DateTo) {
		return errors.New("начало периода позже его окончания")
	}
	return nil
}

type WorkSessionView struct {
	ID           string           `json:"id"`
	EmployeeID   string           `json:"employee_id"`
	EmployeeName string           `json:"employee_name,omitempty"`
	SiteID       string           `json:"site_id"`
	SiteName     string           `json:"site_name,omitempty"`
	ShiftID      string           `json:"shift_id,omitempty"`
	Status       string           `json:"status"`
	StatusName   string           `json:"status_name"`
	CheckInTime  time.Time        `json:"check_in_time"`
	CheckOutTime *time.Time       `json:"check_out_time,omitempty"`
	CheckIn      GeoPoint         `json:"check_in_coords"`
	CheckOut     *GeoPoint        `json:"check_out_coords,omitempty"`
	PhotoID      string           `json:"photo_id,omitempty"`
	Notes        string           `json:"notes,omitempty"`
	AutoClosed   bool             `json:"auto_closed,omitempty"`
	DurationH    float64          `json:"duration_hours"`
	Summary      *WorkSummaryView `json:"summary,omitempty"`
}

type WorkSummaryView struct {
	ID            string             `json:"id"`
	Notes         string             `json:"notes,omitempty"`
	ProductUsages []ProductUsageView `json:"product_usages,omitempty"`
	VoiceNote     string             `json:"voice_note,omitempty"`
	Translation   string             `json:"translation,omitempty"`
}

type ProductUsageView struct {
	ProductID   string  `json:"product_id"`
	ProductName string  `json:"product_name,omitempty"`
	Quantity    float64 `json:"quantity"`
	Notes       string  `json:"notes,omitempty"`
}

func WorkSessionConvert(rec dbmodels.WorkSession) WorkSessionView {
	view := WorkSessionView{
		ID:          rec.ID,
		EmployeeID:  rec.EmployeeID,
		SiteID:      rec.SiteID,
		Status:      string(rec.Status),
		StatusName:  rec.Status.ToHuman(),
		CheckInTime: rec.CheckInTime,
		CheckIn:     GeoPoint{Lat: rec.CheckInLat, Lon: rec.CheckInLon},
		Notes:       rec.Notes,
		AutoClosed:  rec.AutoClosed,
		DurationH:   rec.Duration().Hours(),
	}
	if rec.Employee != nil {
		view.EmployeeName = rec.Employee.GetFullName()
	}
	if rec.Site != nil {
		view.SiteName = rec.Site.Name
	}
	if rec.ShiftID != nil {
		view.ShiftID = *rec.ShiftID
	}
	if rec.CheckOutTime != nil {
		view.CheckOutTime = rec.CheckOutTime
	}
	if rec.CheckOutLat != nil && rec.CheckOutLon != nil {
		view.CheckOut = &GeoPoint{Lat: *rec.CheckOutLat, Lon: *rec.CheckOutLon}
	}
	if rec.PhotoID != nil {
		view.PhotoID = *rec.PhotoID
	}
	if rec.Summary != nil {
		view.Summary = WorkSummaryConvertPtr(rec.Summary)
	}
	return view
}

func WorkSummaryConvertPtr(rec *dbmodels.WorkSummary) *WorkSummaryView {
	if rec == nil {
		return nil
	}
	view := WorkSummaryView{
		ID:          rec.ID,
		Notes:       rec.Notes,
		VoiceNote:   rec.VoiceNote,
		Translation: rec.Translation,
	}
	for _, usage := range rec.ProductUsages {
		usageView := ProductUsageView{
			ProductID: usage.ProductID,
			Quantity:  usage.Quantity,
			Notes:     usage.Notes,
		}
		if usage.Product != nil {
			usageView.ProductName = usage.Product.Name
		}
		view.ProductUsages = append(view.ProductUsages, usageView)
	}
	return &view
}
