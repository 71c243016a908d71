package restrictedperiodstore

import (
	dbmodels "wfm-backend/models/db"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type Provider interface {
	Create(rec dbmodels.RestrictedPeriod) (id string, err error)
	GetByID(id string) (rec *dbmodels.RestrictedPeriod, err error)
	Update(id string, updMap map[string]interface{}) error
	Delete(id string) error
	ListActive() (list []dbmodels.RestrictedPeriod, err error)
	List() (list []dbmodels.RestrictedPeriod, err error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.RestrictedPeriod) (id string, err error) {
	err = i.db.Save(&rec).Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) GetByID(id string) (*dbmodels.RestrictedPeriod, error) {
	rec := dbmodels.RestrictedPeriod{}
	err := i.db.
		Where("id = ?", id).
		First(&rec).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &rec, nil
}

func (i impl) Update(id string, updMap map[string]interface{}) error {
	if len(updMap) == 0 {
		return nil
	}
	tx := i.db.
		Model(&dbmodels.RestrictedPeriod{}).
		Where("id = ?", id).
		Updates(updMap)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return errors.New("запись не найдена")
	}
	return nil
}

func (i impl) Delete(id string) error {
	rec := dbmodels.RestrictedPeriod{
		BaseModel: dbmodels.BaseModel{ID: id},
	}
	return i.db.Delete(&rec).Error
}

func (i impl) ListActive() (list []dbmodels.RestrictedPeriod, err error) {
	list = []dbmodels.RestrictedPeriod{}
	err = i.db.
		Where("is_active = true").
		Order("date_from").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) List() (list []dbmodels.RestrictedPeriod, err error) {
	list = []dbmodels.RestrictedPeriod{}
	err = i.db.
		Order("date_from").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}
