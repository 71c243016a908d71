package dbmodels

import (
	"fmt"
	"time"
	"wfm-backend/models"
)

type Employee struct {
	BaseModel
	Password    string `gorm:"type:varchar(128)"`
	FirstName   string `gorm:"type:varchar(150)"`
	LastName    string `gorm:"type:varchar(150)"`
	Email       string `gorm:"type:varchar(255);uniqueIndex"`
	PhoneNumber string `gorm:"type:varchar(15)"`
	IsActive    bool
	Role        models.UserRole `gorm:"type:varchar(50)"`
	SiteID      *string         `gorm:"type:varchar(36)"` // основной объект сотрудника
	Site        *Site
	LastLogin   time.Time
}

func (r Employee) GetFullName() string {
	return fmt.Sprintf("%s %s", r.FirstName, r.LastName)
}
