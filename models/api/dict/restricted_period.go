package dictapimodels

import (
	"time"
	dbmodels "wfm-backend/models/db"

	"github.com/pkg/errors"
)

const dateLayout = "2006-01-02"

type RestrictedPeriodData struct {
	Title    string `json:"title"`
	DateFrom string `json:"date_from"` // формат 2006-01-02
	DateTo   string `json:"date_to"`
	IsActive *bool  `json:"is_active"` // учитывается только при обновлении
}

func (r RestrictedPeriodData) Validate() error {
	from, to, err := r.Period()
	if err != nil {
		return err
	}
	if from.After(to) {
		return errors.New("начало закрытого периода позже его окончания")
	}
	if r.Title == "" {
		return errors.New("не указано название периода")
	}
	return nil
}

func (r RestrictedPeriodData) Period() (from, to time.Time, err error) {
	from, err = time.Parse(dateLayout, r.DateFrom)
	if err != nil {
		return from, to, errors.New("дата начала имеет неправильный формат")
	}
	to, err = time.Parse(dateLayout, r.DateTo)
	if err != nil {
		return from, to, errors.New("дата окончания имеет неправильный формат")
	}
	return from, to, nil
}

type RestrictedPeriodView struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	DateFrom string `json:"date_from"`
	DateTo   string `json:"date_to"`
	IsActive bool   `json:"is_active"`
}

func RestrictedPeriodConvert(rec dbmodels.RestrictedPeriod) RestrictedPeriodView {
	return RestrictedPeriodView{
		ID:       rec.ID,
		Title:    rec.Title,
		DateFrom: rec.DateFrom.Format(dateLayout),
		DateTo:   rec.DateTo.Format(dateLayout),
		IsActive: rec.IsActive,
	}
}
