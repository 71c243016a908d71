package dbmodels

import (
	"time"
	"wfm-backend/models"
)

type WorkSession struct {
	BaseModel
	// частичный уникальный индекс закрывает гонку двойной отметки прихода
	EmployeeID   string `gorm:"type:varchar(36);index;uniqueIndex:idx_active_work_session,where:status = 'CHECKED_IN'"`
	Employee     *Employee
	SiteID       string `gorm:"type:varchar(36);index"`
	Site         *Site
	ShiftID      *string                  `gorm:"type:varchar(36)"`
	Status       models.WorkSessionStatus `gorm:"type:varchar(50)"`
	CheckInTime  time.Time
	CheckOutTime *time.Time
	CheckInLat   float64
	CheckInLon   float64
	CheckOutLat  *float64
	CheckOutLon  *float64
	PhotoID      *string `gorm:"type:varchar(36)"` // ссылка на фото в файловом хранилище
	Notes        string
	AutoClosed   bool         // смена закрыта фоновой задачей, а не сотрудником
	Summary      *WorkSummary `gorm:"foreignKey:SessionID"`
}

// Duration - длительность закрытой смены, для открытой возвращает 0
func (s WorkSession) Duration() time.Duration {
	if s.CheckOutTime == nil {
		return 0
	}
	return s.CheckOutTime.Sub(s.CheckInTime)
}
