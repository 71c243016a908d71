package models

type NotificationType string

const (
	NotifyTimeOffResolved   NotificationType = "TIME_OFF_RESOLVED"
	NotifyShiftSwapResolved NotificationType = "SHIFT_SWAP_RESOLVED"
	NotifyShiftChanged      NotificationType = "SHIFT_CHANGED"
	NotifyTaskAssigned      NotificationType = "TASK_ASSIGNED"
	NotifySessionAutoClosed NotificationType = "SESSION_AUTO_CLOSED"
)

type NotificationPriority string

const (
	NotifyPriorityNormal NotificationPriority = "NORMAL"
	NotifyPriorityHigh   NotificationPriority = "HIGH"
)
