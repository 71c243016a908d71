package summarystore

import (
	dbmodels "wfm-backend/models/db"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type Provider interface {
	Create(rec dbmodels.WorkSummary) (id string, err error)
	GetBySessionID(sessionID string) (rec *dbmodels.WorkSummary, err error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.WorkSummary) (id string, err error) {
	err = i.db.Create(&rec).Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) GetBySessionID(sessionID string) (*dbmodels.WorkSummary, error) {
	rec := dbmodels.WorkSummary{}
	err := i.db.
		Where("session_id = ?", sessionID).
		Preload("ProductUsages").
		Preload("ProductUsages.Product").
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
