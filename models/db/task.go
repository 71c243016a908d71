package dbmodels

import (
	"github.com/lib/pq"
	"wfm-backend/models"
)

type Task struct {
	BaseModel
	AssignedTo       string    `gorm:"type:varchar(36);index"`
	Assignee         *Employee `gorm:"foreignKey:AssignedTo"`
	AssignedBy       string    `gorm:"type:varchar(36)"`
	Author           *Employee `gorm:"foreignKey:AssignedBy"`
	SiteID           *string   `gorm:"type:varchar(36)"`
	Title            string    `gorm:"type:varchar(255)"`
	Description      string
	Priority         models.TaskPriority `gorm:"type:varchar(50)"`
	RequiresPhoto    bool
	RequiresLocation bool
	EstimatedHours   float64
	ActualHours      float64
	PhotoURLs        pq.StringArray `gorm:"type:text[]"`
	Updates          []TaskUpdate   `gorm:"foreignKey:TaskID"`
}

// TaskUpdate - append-only журнал смены статусов задачи,
// текущий статус задачи равен статусу последней записи
type TaskUpdate struct {
	BaseModel
	TaskID   string            `gorm:"type:varchar(36);index"`
	AuthorID string            `gorm:"type:varchar(36)"`
	Status   models.TaskStatus `gorm:"type:varchar(50)"`
	Comment  string
	PhotoID  *string `gorm:"type:varchar(36)"`
	Lat      *float64
	Lon      *float64
}
