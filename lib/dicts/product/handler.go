package product

import (
	"wfm-backend/db"
	"wfm-backend/lib/apperrors"
	productstore "wfm-backend/lib/dicts/product/store"
	dictapimodels "wfm-backend/models/api/dict"
	dbmodels "wfm-backend/models/db"

	"github.com/pkg/errors"
)

type Provider interface {
	Create(data dictapimodels.ProductData) (view dictapimodels.ProductView, err error)
	Update(id string, data dictapimodels.ProductData) (view dictapimodels.ProductView, err error)
	GetByID(id string) (view dictapimodels.ProductView, err error)
	List(activeOnly bool) (list []dictapimodels.ProductView, err error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		store: productstore.NewInstance(db.DB),
	}
}

type impl struct {
	store productstore.Provider
}

func (i impl) Create(data dictapimodels.ProductData) (dictapimodels.ProductView, error) {
	view := dictapimodels.ProductView{}
	if err := data.Validate(); err != nil {
		return view, apperrors.Wrap(err, apperrors.KindValidation, err.Error())
	}
	rec := dbmodels.Product{
		Name:     data.Name,
		Unit:     data.Unit,
		IsActive: true,
	}
	id, err := i.store.Create(rec)
	if err != nil {
		return view, errors.Wrap(err, "ошибка создания материала")
	}
	return i.GetByID(id)
}

func (i impl) Update(id string, data dictapimodels.ProductData) (dictapimodels.ProductView, error) {
	view := dictapimodels.ProductView{}
	if err := data.Validate(); err != nil {
		return view, apperrors.Wrap(err, apperrors.KindValidation, err.Error())
	}
	existed, err := i.store.GetByID(id)
	if err != nil {
		return view, errors.Wrap(err, "ошибка получения материала")
	}
	if existed == nil {
		return view, apperrors.NewNotFound("материал не найден")
	}
	updMap := map[string]interface{}{
		"name": data.Name,
		"unit": data.Unit,
	}
	if data.IsActive != nil {
		updMap["is_active"] = *data.IsActive
	}
	err = i.store.Update(id, updMap)
	if err != nil {
		return view, errors.Wrap(err, "ошибка обновления материала")
	}
	return i.GetByID(id)
}

func (i impl) GetByID(id string) (dictapimodels.ProductView, error) {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return dictapimodels.ProductView{}, errors.Wrap(err, "ошибка получения материала")
	}
	if rec == nil {
		return dictapimodels.ProductView{}, apperrors.NewNotFound("материал не найден")
	}
	return dictapimodels.ProductConvert(*rec), nil
}

func (i impl) List(activeOnly bool) ([]dictapimodels.ProductView, error) {
	list, err := i.store.List(activeOnly)
	if err != nil {
		return nil, errors.Wrap(err, "ошибка получения списка материалов")
	}
	result := make([]dictapimodels.ProductView, 0, len(list))
	for _, rec := range list {
		result = append(result, dictapimodels.ProductConvert(rec))
	}
	return result, nil
}
