package dbmodels

import (
	"time"
	"wfm-backend/models"
)

type ApprovalRequest struct {
	BaseModel
	Kind            models.ApprovalKind `gorm:"type:varchar(50);index"`
	RequesterID     string              `gorm:"type:varchar(36);index"`
	Requester       *Employee
	Status          models.ApprovalStatus `gorm:"type:varchar(50);index"`
	ApproverID      *string               `gorm:"type:varchar(36)"`
	Approver        *Employee             `gorm:"foreignKey:ApproverID"`
	ResolvedAt      *time.Time
	RejectionReason string

	// payload заявки на отпуск
	DateFrom *time.Time `gorm:"type:date"`
	DateTo   *time.Time `gorm:"type:date"`
	Reason   string

	// payload заявки на обмен сменами
	ShiftID            *string `gorm:"type:varchar(36)"`
	CounterpartShiftID *string `gorm:"type:varchar(36)"`
	CoverageOnly       bool
	CoverEmployeeID    *string `gorm:"type:varchar(36)"`
}
