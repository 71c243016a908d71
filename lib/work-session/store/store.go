package sessionstore

import (
	"time"
	"wfm-backend/models"
	sessionapimodels "wfm-backend/models/api/worksession"
	dbmodels "wfm-backend/models/db"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Provider interface {
	Create(rec dbmodels.WorkSession) (id string, err error)
	GetByID(id string) (rec *dbmodels.WorkSession, err error)
	// GetActiveForUpdate - открытая смена сотрудника под блокировкой строки,
	// вызывается только внутри транзакции
	GetActiveForUpdate(employeeID string) (rec *dbmodels.WorkSession, err error)
	GetActive(employeeID string) (rec *dbmodels.WorkSession, err error)
	// Close - условное закрытие: обновляет только открытую смену,
	// повторное закрытие не находит строку
	Close(id string, updMap map[string]interface{}) (closed bool, err error)
	List(filter sessionapimodels.SessionFilter) (list []dbmodels.WorkSession, err error)
	ListStale(olderThan time.Time) (list []dbmodels.WorkSession, err error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.WorkSession) (id string, err error) {
	err = i.db.Omit(clause.Associations).
		Create(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) GetByID(id string) (*dbmodels.WorkSession, error) {
	rec := dbmodels.WorkSession{}
	err := i.db.
		Where("id = ?", id).
		Preload("Employee").
		Preload("Site").
		Preload("Summary").
		Preload("Summary.ProductUsages").
		Preload("Summary.ProductUsages.Product").
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

func (i impl) GetActiveForUpdate(employeeID string) (*dbmodels.WorkSession, error) {
	rec := dbmodels.WorkSession{}
	err := i.db.
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("employee_id = ?", employeeID).
		Where("status = ?", models.SessionCheckedIn).
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

func (i impl) GetActive(employeeID string) (*dbmodels.WorkSession, error) {
	rec := dbmodels.WorkSession{}
	err := i.db.
		Where("employee_id = ?", employeeID).
		Where("status = ?", models.SessionCheckedIn).
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

func (i impl) Close(id string, updMap map[string]interface{}) (closed bool, err error) {
	updMap["status"] = models.SessionCheckedOut
	tx := i.db.
		Model(&dbmodels.WorkSession{}).
		Where("id = ?", id).
		Where("status = ?", models.SessionCheckedIn).
		Updates(updMap)
	if tx.Error != nil {
		return false, tx.Error
	}
	return tx.RowsAffected > 0, nil
}

func (i impl) List(filter sessionapimodels.SessionFilter) (list []dbmodels.WorkSession, err error) {
	list = []dbmodels.WorkSession{}
	tx := i.db.
		Preload("Employee").
		Preload("Site").
		Preload("Summary").
		Preload("Summary.ProductUsages")
	if filter.EmployeeID != "" {
		tx = tx.Where("employee_id = ?", filter.EmployeeID)
	}
	if filter.DateFrom != nil {
		tx = tx.Where("check_in_time >= ?", *filter.DateFrom)
	}
	if filter.DateTo != nil {
		tx = tx.Where("check_in_time <= ?", *filter.DateTo)
	}
	err = tx.Order("check_in_time desc").Find(&list).Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) ListStale(olderThan time.Time) (list []dbmodels.WorkSession, err error) {
	list = []dbmodels.WorkSession{}
	err = i.db.
		Where("status = ?", models.SessionCheckedIn).
		Where("check_in_time < ?", olderThan).
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}
