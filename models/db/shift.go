package dbmodels

import (
	"time"
	"wfm-backend/models"
)

type Shift struct {
	BaseModel
	EmployeeID string `gorm:"type:varchar(36);index"`
	Employee   *Employee
	SiteID     *string `gorm:"type:varchar(36)"`
	Site       *Site
	Title      string    `gorm:"type:varchar(255)"`
	StartAt    time.Time `gorm:"index"`
	EndAt      time.Time
	Recurrence string `gorm:"type:varchar(100)"` // правило повторения, пустое для разовой смены
	// хранится только явное завершение/отмена, остальное выводится из времени
	Status        models.ShiftStatus `gorm:"type:varchar(50)"`
	OvertimeHours float64
}

// StatusAt - эффективный статус смены на момент now.
// Явные CANCELLED/COMPLETED имеют приоритет, остальное выводится из границ смены.
func (s Shift) StatusAt(now time.Time) models.ShiftStatus {
	if s.Status == models.ShiftCancelled || s.Status == models.ShiftCompleted {
		return s.Status
	}
	if now.Before(s.StartAt) {
		return models.ShiftScheduled
	}
	if now.Before(s.EndAt) {
		return models.ShiftActive
	}
	return models.ShiftCompleted
}

// IsFinishedAt - смена завершена либо отменена на момент now
func (s Shift) IsFinishedAt(now time.Time) bool {
	status := s.StatusAt(now)
	return status == models.ShiftCompleted || status == models.ShiftCancelled
}
