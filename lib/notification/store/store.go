package notificationstore

import (
	dbmodels "wfm-backend/models/db"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type Provider interface {
	Create(rec dbmodels.Notification) (id string, err error)
	GetByID(id string) (rec *dbmodels.Notification, err error)
	ListByUser(userID string, limit int) (list []dbmodels.Notification, err error)
	UnreadCount(userID string) (count int64, err error)
	MarkRead(id string) error
	MarkAllRead(userID string) error
	Delete(id string) error
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.Notification) (id string, err error) {
	err = i.db.Create(&rec).Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) GetByID(id string) (*dbmodels.Notification, error) {
	rec := dbmodels.Notification{}
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

func (i impl) ListByUser(userID string, limit int) (list []dbmodels.Notification, err error) {
	list = []dbmodels.Notification{}
	tx := i.db.Where("user_id = ?", userID).Order("created_at desc")
	if limit > 0 {
		tx = tx.Limit(limit)
	}
	err = tx.Find(&list).Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) UnreadCount(userID string) (count int64, err error) {
	err = i.db.
		Model(&dbmodels.Notification{}).
		Where("user_id = ?", userID).
		Where("is_read = false").
		Count(&count).
		Error
	return count, err
}

func (i impl) MarkRead(id string) error {
	return i.db.
		Model(&dbmodels.Notification{}).
		Where("id = ?", id).
		Update("is_read", true).
		Error
}

func (i impl) MarkAllRead(userID string) error {
	return i.db.
		Model(&dbmodels.Notification{}).
		Where("user_id = ?", userID).
		Where("is_read = false").
		Update("is_read", true).
		Error
}

func (i impl) Delete(id string) error {
	rec := dbmodels.Notification{
		BaseModel: dbmodels.BaseModel{ID: id},
	}
	return i.db.Delete(&rec).Error
}
