package employeestore

import (
	"time"
	dbmodels "wfm-backend/models/db"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Provider interface {
	Create(rec dbmodels.Employee) (id string, err error)
	GetByID(id string) (rec *dbmodels.Employee, err error)
	GetByEmail(email string) (rec *dbmodels.Employee, err error)
	Update(id string, updMap map[string]interface{}) error
	List(activeOnly bool) (list []dbmodels.Employee, err error)
	SetLastLogin(id string, loginTime time.Time) error
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.Employee) (id string, err error) {
	err = i.db.Omit(clause.Associations).
		Save(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) GetByID(id string) (*dbmodels.Employee, error) {
	rec := dbmodels.Employee{}
	err := i.db.
		Where("id = ?", id).
		Preload("Site").
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

func (i impl) GetByEmail(email string) (*dbmodels.Employee, error) {
	rec := dbmodels.Employee{}
	err := i.db.
		Where("email = ?", email).
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
		Model(&dbmodels.Employee{}).
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

func (i impl) List(activeOnly bool) (list []dbmodels.Employee, err error) {
	list = []dbmodels.Employee{}
	tx := i.db.Model(&dbmodels.Employee{})
	if activeOnly {
		tx = tx.Where("is_active = true")
	}
	err = tx.Order("last_name, first_name").Find(&list).Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) SetLastLogin(id string, loginTime time.Time) error {
	return i.db.
		Model(&dbmodels.Employee{}).
		Where("id = ?", id).
		Update("last_login", loginTime).
		Error
}
