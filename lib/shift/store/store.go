package shiftstore

import (
	shiftapimodels "wfm-backend/models/api/shift"
	dbmodels "wfm-backend/models/db"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Provider interface {
	Create(rec dbmodels.Shift) (id string, err error)
	GetByID(id string) (rec *dbmodels.Shift, err error)
	// GetByIDForUpdate - смена под блокировкой строки, для обмена исполнителями
	GetByIDForUpdate(id string) (rec *dbmodels.Shift, err error)
	Update(id string, updMap map[string]interface{}) error
	Delete(id string) error
	List(filter shiftapimodels.ShiftFilter) (list []dbmodels.Shift, err error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.Shift) (id string, err error) {
	err = i.db.Omit(clause.Associations).
		Save(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) GetByID(id string) (*dbmodels.Shift, error) {
	rec := dbmodels.Shift{}
	err := i.db.
		Where("id = ?", id).
		Preload("Employee").
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

func (i impl) GetByIDForUpdate(id string) (*dbmodels.Shift, error) {
	rec := dbmodels.Shift{}
	err := i.db.
		Clauses(clause.Locking{Strength: "UPDATE"}).
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
		Model(&dbmodels.Shift{}).
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
	rec := dbmodels.Shift{
		BaseModel: dbmodels.BaseModel{ID: id},
	}
	return i.db.Delete(&rec).Error
}

func (i impl) List(filter shiftapimodels.ShiftFilter) (list []dbmodels.Shift, err error) {
	list = []dbmodels.Shift{}
	tx := i.db.Preload("Employee")
	if filter.EmployeeID != "" {
		tx = tx.Where("employee_id = ?", filter.EmployeeID)
	}
	if filter.DateFrom != nil {
		tx = tx.Where("end_at >= ?", *filter.DateFrom)
	}
	if filter.DateTo != nil {
		tx = tx.Where("start_at <= ?", *filter.DateTo)
	}
	err = tx.Order("start_at").Find(&list).Error
	if err != nil {
		return nil, err
	}
	return list, nil
}
