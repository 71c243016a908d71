package models

type RbacFunc func(userID string, role UserRole, path string) bool

type Module string

const (
	EmployeesModule    Module = "EMPLOYEES"
	WorkSessionModule  Module = "WORK_SESSION"
	ApprovalModule     Module = "APPROVAL"
	ShiftModule        Module = "SHIFT"
	TaskModule         Module = "TASK"
	NotificationModule Module = "NOTIFICATION"
	ReportModule       Module = "REPORT"
	DictModule         Module = "DICT"
)

type Permission string

const (
	CreatePermission  Permission = "CREATE"
	EditPermission    Permission = "EDIT"
	ViewPermission    Permission = "VIEW"
	ManagePermission  Permission = "MANAGE"
	ResolvePermission Permission = "RESOLVE"
)
