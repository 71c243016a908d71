package taskstore

import (
	dbmodels "wfm-backend/models/db"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Provider interface {
	Create(rec dbmodels.Task) (id string, err error)
	GetByID(id string) (rec *dbmodels.Task, err error)
	Update(id string, updMap map[string]interface{}) error
	ListByAssignee(employeeID string) (list []dbmodels.Task, err error)
	List() (list []dbmodels.Task, err error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.Task) (id string, err error) {
	err = i.db.Omit(clause.Associations).
		Create(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) GetByID(id string) (*dbmodels.Task, error) {
	rec := dbmodels.Task{}
	err := i.db.
		Where("id = ?", id).
		Preload("Assignee").
		Preload("Author").
		Preload("Updates", func(db *gorm.DB) *gorm.DB {
			return db.Order("task_updates.created_at")
		}).
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
		Model(&dbmodels.Task{}).
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

func (i impl) ListByAssignee(employeeID string) (list []dbmodels.Task, err error) {
	list = []dbmodels.Task{}
	err = i.db.
		Where("assigned_to = ?", employeeID).
		Preload("Updates").
		Order("created_at desc").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) List() (list []dbmodels.Task, err error) {
	list = []dbmodels.Task{}
	err = i.db.
		Preload("Assignee").
		Preload("Updates").
		Order("created_at desc").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}
