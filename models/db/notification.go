package dbmodels

import (
	"wfm-backend/models"
)

type Notification struct {
	BaseModel
	UserID    string `gorm:"type:varchar(36);index"`
	Title     string `gorm:"type:varchar(255)"`
	Body      string
	Type      models.NotificationType     `gorm:"type:varchar(50)"`
	Priority  models.NotificationPriority `gorm:"type:varchar(50)"`
	RelatedID *string                     `gorm:"type:varchar(36)"`
	IsRead    bool                        `gorm:"index"`
}
