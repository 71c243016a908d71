package restrictedperiod

import (
	"wfm-backend/db"
	"wfm-backend/lib/apperrors"
	restrictedperiodstore "wfm-backend/lib/restricted-period/store"
	dictapimodels "wfm-backend/models/api/dict"
	dbmodels "wfm-backend/models/db"

	"github.com/pkg/errors"
)

type Provider interface {
	Create(data dictapimodels.RestrictedPeriodData) (view dictapimodels.RestrictedPeriodView, err error)
	Update(id string, data dictapimodels.RestrictedPeriodData) (view dictapimodels.RestrictedPeriodView, err error)
	Delete(id string) error
	List() (list []dictapimodels.RestrictedPeriodView, err error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		store: restrictedperiodstore.NewInstance(db.DB),
	}
}

type impl struct {
	store restrictedperiodstore.Provider
}

func (i impl) Create(data dictapimodels.RestrictedPeriodData) (dictapimodels.RestrictedPeriodView, error) {
	view := dictapimodels.RestrictedPeriodView{}
	if err := data.Validate(); err != nil {
		return view, apperrors.Wrap(err, apperrors.KindValidation, err.Error())
	}
	from, to, err := data.Period()
	if err != nil {
		return view, apperrors.Wrap(err, apperrors.KindValidation, err.Error())
	}
	rec := dbmodels.RestrictedPeriod{
		Title:    data.Title,
		DateFrom: from,
		DateTo:   to,
		IsActive: true,
	}
	id, err := i.store.Create(rec)
	if err != nil {
		return view, errors.Wrap(err, "ошибка создания закрытого периода")
	}
	return i.getView(id)
}

func (i impl) Update(id string, data dictapimodels.RestrictedPeriodData) (dictapimodels.RestrictedPeriodView, error) {
	view := dictapimodels.RestrictedPeriodView{}
	if err := data.Validate(); err != nil {
		return view, apperrors.Wrap(err, apperrors.KindValidation, err.Error())
	}
	from, to, err := data.Period()
	if err != nil {
		return view, apperrors.Wrap(err, apperrors.KindValidation, err.Error())
	}
	existed, err := i.store.GetByID(id)
	if err != nil {
		return view, errors.Wrap(err, "ошибка получения закрытого периода")
	}
	if existed == nil {
		return view, apperrors.NewNotFound("закрытый период не найден")
	}
	updMap := map[string]interface{}{
		"title":     data.Title,
		"date_from": from,
		"date_to":   to,
	}
	if data.IsActive != nil {
		updMap["is_active"] = *data.IsActive
	}
	err = i.store.Update(id, updMap)
	if err != nil {
		return view, errors.Wrap(err, "ошибка обновления закрытого периода")
	}
	return i.getView(id)
}

func (i impl) Delete(id string) error {
	existed, err := i.store.GetByID(id)
	if err != nil {
		return errors.Wrap(err, "ошибка получения закрытого периода")
	}
	if existed == nil {
		return apperrors.NewNotFound("закрытый период не найден")
	}
	return i.store.Delete(id)
}

func (i impl) List() ([]dictapimodels.RestrictedPeriodView, error) {
	list, err := i.store.List()
	if err != nil {
		return nil, errors.Wrap(err, "ошибка получения списка закрытых периодов")
	}
	result := make([]dictapimodels.RestrictedPeriodView, 0, len(list))
	for _, rec := range list {
		result = append(result, dictapimodels.RestrictedPeriodConvert(rec))
	}
	return result, nil
}

func (i impl) getView(id string) (dictapimodels.RestrictedPeriodView, error) {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return dictapimodels.RestrictedPeriodView{}, errors.Wrap(err, "ошибка получения закрытого периода")
	}
	if rec == nil {
		return dictapimodels.RestrictedPeriodView{}, apperrors.NewNotFound("закрытый период не найден")
	}
	return dictapimodels.RestrictedPeriodConvert(*rec), nil
}
