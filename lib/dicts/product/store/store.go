package productstore

import (
	dbmodels "wfm-backend/models/db"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type Provider interface {
	Create(rec dbmodels.Product) (id string, err error)
	GetByID(id string) (rec *dbmodels.Product, err error)
	Update(id string, updMap map[string]interface{}) error
	List(activeOnly bool) (list []dbmodels.Product, err error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.Product) (id string, err error) {
	err = i.db.Save(&rec).Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) GetByID(id string) (*dbmodels.Product, error) {
	rec := dbmodels.Product{}
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
		Model(&dbmodels.Product{}).
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

func (i impl) List(activeOnly bool) (list []dbmodels.Product, err error) {
	list = []dbmodels.Product{}
	tx := i.db.Model(&dbmodels.Product{})
	if activeOnly {
		tx = tx.Where("is_active = true")
	}
	err = tx.Order("name").Find(&list).Error
	if err != nil {
		return nil, err
	}
	return list, nil
}
