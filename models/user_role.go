package models

type UserRole string

const (
	UserRoleEmployee UserRole = "EMPLOYEE"
	UserRoleManager  UserRole = "MANAGER"
	UserRoleAdmin    UserRole = "ADMIN"
)

var roleHumanName = map[UserRole]string{
	UserRoleEmployee: "Сотрудник",
	UserRoleManager:  "Менеджер",
	UserRoleAdmin:    "Администратор",
}

func (r UserRole) ToHuman() string {
	if human, exist := roleHumanName[r]; exist {
		return human
	}
	return string(r)
}

func (r UserRole) IsKnown() bool {
	_, exist := roleHumanName[r]
	return exist
}

// IsManagement - роль с правом согласования заявок
func (r UserRole) IsManagement() bool {
	return r == UserRoleManager || r == UserRoleAdmin
}

func (r UserRole) IsAdmin() bool {
	return r == UserRoleAdmin
}

const SystemUser = "Система"
