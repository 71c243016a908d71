package dbmodels

import (
	"time"
)

// RestrictedPeriod - закрытый для отпусков период, объявляется администратором
type RestrictedPeriod struct {
	BaseModel
	Title    string    `gorm:"type:varchar(255)"`
	DateFrom time.Time `gorm:"type:date"`
	DateTo   time.Time `gorm:"type:date"`
	IsActive bool
}
