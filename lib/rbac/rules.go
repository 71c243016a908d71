package rbac

import (
	"wfm-backend/models"
)

var (
	AdminRoleSet      = []models.UserRole{models.UserRoleAdmin}
	ManagementRoleSet = []models.UserRole{models.UserRoleAdmin, models.UserRoleManager}
	AllRoles          = []models.UserRole{models.UserRoleAdmin, models.UserRoleManager, models.UserRoleEmployee}
)

func (i *impl) initRules() {
	i.employees()
	i.dicts()
	i.workSession()
	i.approval()
	i.shift()
	i.task()
	i.notification()
	i.report()
	i.files()
}

func (i *impl) employees() {
	//VIEW
	i.RegisterRule(models.EmployeesModule, models.ViewPermission, ManagementRoleSet, "/api/v1/employees/list [post]", nil)
	i.RegisterRule(models.EmployeesModule, models.ViewPermission, ManagementRoleSet, "/api/v1/employees/{id} [get]", nil)
	//MANAGE
	i.RegisterRule(models.EmployeesModule, models.ManagePermission, AdminRoleSet, "/api/v1/employees [post]", nil)
	i.RegisterRule(models.EmployeesModule, models.ManagePermission, ManagementRoleSet, "/api/v1/employees/{id} [put]", nil)
	i.RegisterRule(models.EmployeesModule, models.ManagePermission, AdminRoleSet, "/api/v1/employees/{id}/role [put]", nil)
	i.RegisterRule(models.EmployeesModule, models.ManagePermission, AdminRoleSet, "/api/v1/employees/{id}/deactivate [put]", nil)
	i.RegisterRule(models.EmployeesModule, models.ManagePermission, AdminRoleSet, "/api/v1/employees/{id}/activate [put]", nil)
}

func (i *impl) dicts() {
	//VIEW
	i.RegisterRule(models.DictModule, models.ViewPermission, AllRoles, "/api/v1/dict/site/list [post]", nil)
	i.RegisterRule(models.DictModule, models.ViewPermission, AllRoles, "/api/v1/dict/site/{id} [get]", nil)
	i.RegisterRule(models.DictModule, models.ViewPermission, AllRoles, "/api/v1/dict/product/list [post]", nil)
	i.RegisterRule(models.DictModule, models.ViewPermission, AllRoles, "/api/v1/dict/product/{id} [get]", nil)
	i.RegisterRule(models.DictModule, models.ViewPermission, AllRoles, "/api/v1/dict/restricted_period/list [post]", nil)
	//EDIT
	i.RegisterRule(models.DictModule, models.EditPermission, AdminRoleSet, "/api/v1/dict/site [post]", nil)
	i.RegisterRule(models.DictModule, models.EditPermission, AdminRoleSet, "/api/v1/dict/site/{id} [put]", nil)
	i.RegisterRule(models.DictModule, models.EditPermission, AdminRoleSet, "/api/v1/dict/product [post]", nil)
	i.RegisterRule(models.DictModule, models.EditPermission, AdminRoleSet, "/api/v1/dict/product/{id} [put]", nil)
	i.RegisterRule(models.DictModule, models.EditPermission, ManagementRoleSet, "/api/v1/dict/restricted_period [post]", nil)
	i.RegisterRule(models.DictModule, models.EditPermission, ManagementRoleSet, "/api/v1/dict/restricted_period/{id} [put]", nil)
	i.RegisterRule(models.DictModule, models.EditPermission, ManagementRoleSet, "/api/v1/dict/restricted_period/{id} [delete]", nil)
}

func (i *impl) workSession() {
	//CREATE
	i.RegisterRule(models.WorkSessionModule, models.CreatePermission, AllRoles, "/api/v1/work_session/check_in [post]", nil)
	i.RegisterRule(models.WorkSessionModule, models.EditPermission, AllRoles, "/api/v1/work_session/check_out [post]", nil)
	i.RegisterRule(models.WorkSessionModule, models.EditPermission, AllRoles, "/api/v1/work_session/{id}/summary [post]", nil)
	//VIEW
	i.RegisterRule(models.WorkSessionModule, models.ViewPermission, AllRoles, "/api/v1/work_session/active [get]", nil)
	i.RegisterRule(models.WorkSessionModule, models.ViewPermission, AllRoles, "/api/v1/work_session/list [post]", nil)
	i.RegisterRule(models.WorkSessionModule, models.ViewPermission, AllRoles, "/api/v1/work_session/{id} [get]", nil)
}

func (i *impl) approval() {
	//CREATE
	i.RegisterRule(models.ApprovalModule, models.CreatePermission, AllRoles, "/api/v1/approval/time_off [post]", nil)
	i.RegisterRule(models.ApprovalModule, models.CreatePermission, AllRoles, "/api/v1/approval/shift_swap [post]", nil)
	//VIEW
	i.RegisterRule(models.ApprovalModule, models.ViewPermission, AllRoles, "/api/v1/approval/my [post]", nil)
	i.RegisterRule(models.ApprovalModule, models.ViewPermission, ManagementRoleSet, "/api/v1/approval/pending [post]", nil)
	i.RegisterRule(models.ApprovalModule, models.ViewPermission, AllRoles, "/api/v1/approval/{id} [get]", nil)
	//RESOLVE
	i.RegisterRule(models.ApprovalModule, models.ResolvePermission, ManagementRoleSet, "/api/v1/approval/{id}/approve [put]", nil)
	i.RegisterRule(models.ApprovalModule, models.ResolvePermission, ManagementRoleSet, "/api/v1/approval/{id}/reject [put]", nil)
}

func (i *impl) shift() {
	//VIEW
	i.RegisterRule(models.ShiftModule, models.ViewPermission, AllRoles, "/api/v1/shift/list [post]", nil)
	i.RegisterRule(models.ShiftModule, models.ViewPermission, AllRoles, "/api/v1/shift/{id} [get]", nil)
	//MANAGE
	i.RegisterRule(models.ShiftModule, models.ManagePermission, ManagementRoleSet, "/api/v1/shift [post]", nil)
	i.RegisterRule(models.ShiftModule, models.ManagePermission, ManagementRoleSet, "/api/v1/shift/{id} [put]", nil)
	i.RegisterRule(models.ShiftModule, models.ManagePermission, ManagementRoleSet, "/api/v1/shift/{id} [delete]", nil)
	i.RegisterRule(models.ShiftModule, models.ManagePermission, ManagementRoleSet, "/api/v1/shift/{id}/cancel [put]", nil)
	i.RegisterRule(models.ShiftModule, models.ManagePermission, ManagementRoleSet, "/api/v1/shift/{id}/complete [put]", nil)
}

func (i *impl) task() {
	//CREATE
	i.RegisterRule(models.TaskModule, models.CreatePermission, ManagementRoleSet, "/api/v1/task [post]", nil)
	//EDIT
	i.RegisterRule(models.TaskModule, models.EditPermission, AllRoles, "/api/v1/task/{id}/update [post]", nil)
	//VIEW
	i.RegisterRule(models.TaskModule, models.ViewPermission, AllRoles, "/api/v1/task/my [post]", nil)
	i.RegisterRule(models.TaskModule, models.ViewPermission, ManagementRoleSet, "/api/v1/task/list [post]", nil)
	i.RegisterRule(models.TaskModule, models.ViewPermission, AllRoles, "/api/v1/task/{id} [get]", nil)
}

func (i *impl) notification() {
	i.RegisterRule(models.NotificationModule, models.ViewPermission, AllRoles, "/api/v1/notification/list [post]", nil)
	i.RegisterRule(models.NotificationModule, models.ViewPermission, AllRoles, "/api/v1/notification/count [get]", nil)
	i.RegisterRule(models.NotificationModule, models.EditPermission, AllRoles, "/api/v1/notification/{id}/read [put]", nil)
	i.RegisterRule(models.NotificationModule, models.EditPermission, AllRoles, "/api/v1/notification/read_all [put]", nil)
	i.RegisterRule(models.NotificationModule, models.EditPermission, AllRoles, "/api/v1/notification/{id} [delete]", nil)
}

func (i *impl) report() {
	i.RegisterRule(models.ReportModule, models.ViewPermission, ManagementRoleSet, "/api/v1/report/attendance [post]", nil)
	i.RegisterRule(models.ReportModule, models.ViewPermission, ManagementRoleSet, "/api/v1/report/attendance/export/xls [post]", nil)
	i.RegisterRule(models.ReportModule, models.ViewPermission, ManagementRoleSet, "/api/v1/report/attendance/export/pdf [post]", nil)
	i.RegisterRule(models.ReportModule, models.ViewPermission, ManagementRoleSet, "/api/v1/report/client_visits [post]", nil)
	i.RegisterRule(models.ReportModule, models.ViewPermission, ManagementRoleSet, "/api/v1/report/billing [post]", nil)
	i.RegisterRule(models.ReportModule, models.ViewPermission, ManagementRoleSet, "/api/v1/report/billing/export/xls [post]", nil)
}

func (i *impl) files() {
	i.RegisterRule(models.WorkSessionModule, models.CreatePermission, AllRoles, "/api/v1/file/upload [post]", nil)
	i.RegisterRule(models.WorkSessionModule, models.ViewPermission, AllRoles, "/api/v1/file/{id} [get]", nil)
}
