package models

type WorkSessionStatus string

const (
	SessionCheckedIn  WorkSessionStatus = "CHECKED_IN"
	SessionCheckedOut WorkSessionStatus = "CHECKED_OUT"
)

var sessionStatusHumanName = map[WorkSessionStatus]string{
	SessionCheckedIn:  "На смене",
	SessionCheckedOut: "Смена закрыта",
}

func (s WorkSessionStatus) ToHuman() string {
	if human, exist := sessionStatusHumanName[s]; exist {
		return human
	}
	return string(s)
}

type ApprovalKind string

const (
	ApprovalKindTimeOff   ApprovalKind = "TIME_OFF"
	ApprovalKindShiftSwap ApprovalKind = "SHIFT_SWAP"
)

var approvalKindHumanName = map[ApprovalKind]string{
	ApprovalKindTimeOff:   "Заявка на отпуск",
	ApprovalKindShiftSwap: "Заявка на обмен сменами",
}

func (k ApprovalKind) ToHuman() string {
	if human, exist := approvalKindHumanName[k]; exist {
		return human
	}
	return string(k)
}

type ApprovalStatus string

const (
	ApprovalStatusPending  ApprovalStatus = "PENDING"
	ApprovalStatusApproved ApprovalStatus = "APPROVED"
	ApprovalStatusRejected ApprovalStatus = "REJECTED"
)

var approvalStatusHumanName = map[ApprovalStatus]string{
	ApprovalStatusPending:  "На рассмотрении",
	ApprovalStatusApproved: "Согласована",
	ApprovalStatusRejected: "Отклонена",
}

func (s ApprovalStatus) ToHuman() string {
	if human, exist := approvalStatusHumanName[s]; exist {
		return human
	}
	return string(s)
}

// IsTerminal - заявка рассмотрена, повторное рассмотрение недопустимо
func (s ApprovalStatus) IsTerminal() bool {
	return s == ApprovalStatusApproved || s == ApprovalStatusRejected
}

type ShiftStatus string

const (
	ShiftScheduled ShiftStatus = "SCHEDULED"
	ShiftActive    ShiftStatus = "ACTIVE"
	ShiftCompleted ShiftStatus = "COMPLETED"
	ShiftCancelled ShiftStatus = "CANCELLED"
)

var shiftStatusHumanName = map[ShiftStatus]string{
	ShiftScheduled: "Запланирована",
	ShiftActive:    "Идёт",
	ShiftCompleted: "Завершена",
	ShiftCancelled: "Отменена",
}

func (s ShiftStatus) ToHuman() string {
	if human, exist := shiftStatusHumanName[s]; exist {
		return human
	}
	return string(s)
}

type TaskPriority string

const (
	TaskPriorityLow    TaskPriority = "LOW"
	TaskPriorityMedium TaskPriority = "MEDIUM"
	TaskPriorityHigh   TaskPriority = "HIGH"
	TaskPriorityUrgent TaskPriority = "URGENT"
)

var taskPriorityHumanName = map[TaskPriority]string{
	TaskPriorityLow:    "Низкий",
	TaskPriorityMedium: "Средний",
	TaskPriorityHigh:   "Высокий",
	TaskPriorityUrgent: "Срочный",
}

func (p TaskPriority) ToHuman() string {
	if human, exist := taskPriorityHumanName[p]; exist {
		return human
	}
	return string(p)
}

func (p TaskPriority) IsKnown() bool {
	_, exist := taskPriorityHumanName[p]
	return exist
}

type TaskStatus string

const (
	TaskStatusPending    TaskStatus = "PENDING"
	TaskStatusInProgress TaskStatus = "IN_PROGRESS"
	TaskStatusCompleted  TaskStatus = "COMPLETED"
	TaskStatusCancelled  TaskStatus = "CANCELLED"
)

var taskStatusHumanName = map[TaskStatus]string{
	TaskStatusPending:    "Назначена",
	TaskStatusInProgress: "В работе",
	TaskStatusCompleted:  "Выполнена",
	TaskStatusCancelled:  "Отменена",
}

func (s TaskStatus) ToHuman() string {
	if human, exist := taskStatusHumanName[s]; exist {
		return human
	}
	return string(s)
}

func (s TaskStatus) IsKnown() bool {
	_, exist := taskStatusHumanName[s]
	return exist
}

func (s TaskStatus) IsTerminal() bool {
	return s == TaskStatusCompleted || s == TaskStatusCancelled
}
