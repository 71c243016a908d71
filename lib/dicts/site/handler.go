package site

import (
	"wfm-backend/db"
	"wfm-backend/lib/apperrors"
	sitestore "wfm-backend/lib/dicts/site/store"
	dictapimodels "wfm-backend/models/api/dict"
	dbmodels "wfm-backend/models/db"

	"github.com/pkg/errors"
)

type Provider interface {
	Create(data dictapimodels.SiteData) (view dictapimodels.SiteView, err error)
	Update(id string, data dictapimodels.SiteData) (view dictapimodels.SiteView, err error)
	GetByID(id string) (view dictapimodels.SiteView, err error)
	List(activeOnly bool) (list []dictapimodels.SiteView, err error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		store: sitestore.NewInstance(db.DB),
	}
}

type impl struct {
	store sitestore.Provider
}

func (i impl) Create(data dictapimodels.SiteData) (dictapimodels.SiteView, error) {
	view := dictapimodels.SiteView{}
	if err := data.Validate(); err != nil {
		return view, apperrors.Wrap(err, apperrors.KindValidation, err.Error())
	}
	rec := dbmodels.Site{
		Name:          data.Name,
		Address:       data.Address,
		GeoLat:        data.GeoLat,
		GeoLon:        data.GeoLon,
		GeoRadiusM:    data.GeoRadiusM,
		PhotoRequired: data.PhotoRequired,
		IsActive:      true,
	}
	id, err := i.store.Create(rec)
	if err != nil {
		return view, errors.Wrap(err, "ошибка создания объекта")
	}
	return i.GetByID(id)
}

func (i impl) Update(id string, data dictapimodels.SiteData) (dictapimodels.SiteView, error) {
	view := dictapimodels.SiteView{}
	if err := data.Validate(); err != nil {
		return view, apperrors.Wrap(err, apperrors.KindValidation, err.Error())
	}
	existed, err := i.store.GetByID(id)
	if err != nil {
		return view, errors.Wrap(err, "ошибка получения объекта")
	}
	if existed == nil {
		return view, apperrors.NewNotFound("объект не найден")
	}
	updMap := map[string]interface{}{
		"name":           data.Name,
		"address":        data.Address,
		"geo_lat":        data.GeoLat,
		"geo_lon":        data.GeoLon,
		"geo_radius_m":   data.GeoRadiusM,
		"photo_required": data.PhotoRequired,
	}
	if data.IsActive != nil {
		updMap["is_active"] = *data.IsActive
	}
	err = i.store.Update(id, updMap)
	if err != nil {
		return view, errors.Wrap(err, "ошибка обновления объекта")
	}
	return i.GetByID(id)
}

func (i impl) GetByID(id string) (dictapimodels.SiteView, error) {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return dictapimodels.SiteView{}, errors.Wrap(err, "ошибка получения объекта")
	}
	if rec == nil {
		return dictapimodels.SiteView{}, apperrors.NewNotFound("объект не найден")
	}
	return dictapimodels.SiteConvert(*rec), nil
}

func (i impl) List(activeOnly bool) ([]dictapimodels.SiteView, error) {
	list, err := i.store.List(activeOnly)
	if err != nil {
		return nil, errors.Wrap(err, "ошибка получения списка объектов")
	}
	result := make([]dictapimodels.SiteView, 0, len(list))
	for _, rec := range list {
		result = append(result, dictapimodels.SiteConvert(rec))
	}
	return result, nil
}
