package filesdbstorage

import (
	dbmodels "wfm-backend/models/db"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type Provider interface {
	SaveFile(rec dbmodels.FileStorage) (id string, err error)
	GetByID(id string) (rec *dbmodels.FileStorage, err error)
	GetListByType(employeeID string, fileType dbmodels.FileType) (list []dbmodels.FileStorage, err error)
}

type impl struct {
	db *gorm.DB
}

func NewInstance(db *gorm.DB) Provider {
	return &impl{db: db}
}

func (i impl) SaveFile(rec dbmodels.FileStorage) (id string, err error) {
	err = i.db.Save(&rec).Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) GetByID(id string) (*dbmodels.FileStorage, error) {
	rec := dbmodels.FileStorage{}
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

func (i impl) GetListByType(employeeID string, fileType dbmodels.FileType) (list []dbmodels.FileStorage, err error) {
	err = i.db.
		Model(&dbmodels.FileStorage{}).
		Where("employee_id = ? AND file_type = ?", employeeID, fileType).
		Find(&list).
		Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	return list, nil
}
