package employeeapimodels

import (
	"net/mail"
	"time"
	"wfm-backend/models"
	dbmodels "wfm-backend/models/db"

	"github.com/pkg/errors"
)

type EmployeeData struct {
	Email       string          `json:"email"`
	FirstName   string          `json:"first_name"`
	LastName    string          `json:"last_name"`
	PhoneNumber string          `json:"phone_number"`
	Role        models.UserRole `json:"role"`
	SiteID      string          `json:"site_id"` // основной объект, опционально
}

func (r EmployeeData) Validate() error {
	_, err := mail.ParseAddress(r.Email)
	if err != nil {
		return errors.New("почта имеет неправильный формат")
	}
	if r.FirstName == "" || r.LastName == "" {
		return errors.New("не указаны имя и фамилия сотрудника")
	}
	if !r.Role.IsKnown() {
		return errors.New("указана неизвестная роль")
	}
	return nil
}

type EmployeeCreateData struct {
	EmployeeData
	Password string `json:"password"`
}

func (r EmployeeCreateData) Validate() error {
	if err := r.EmployeeData.Validate(); err != nil {
		return err
	}
	if len(r.Password) < 6 {
		return errors.New("пароль должен содержать не менее 6 символов")
	}
	return nil
}

type RoleChangeData struct {
	Role models.UserRole `json:"role"`
}

func (r RoleChangeData) Validate() error {
	if !r.Role.IsKnown() {
		return errors.New("указана неизвестная роль")
	}
	return nil
}

type EmployeeView struct {
	ID          string    `json:"id"`
	Email       string    `json:"email"`
	FirstName   string    `json:"first_name"`
	LastName    string    `json:"last_name"`
	PhoneNumber string    `json:"phone_number"`
	IsActive    bool      `json:"is_active"`
	Role        string    `json:"role"`
	RoleName    string    `json:"role_name"`
	SiteID      string    `json:"site_id,omitempty"`
	LastLogin   time.Time `json:"last_login"`
}

func EmployeeConvert(rec dbmodels.Employee) EmployeeView {
	view := EmployeeView{
		ID:          rec.ID,
		Email:       rec.Email,
		FirstName:   rec.FirstName,
		LastName:    rec.LastName,
		PhoneNumber: rec.PhoneNumber,
		IsActive:    rec.IsActive,
		Role:        string(rec.Role),
		RoleName:    rec.Role.ToHuman(),
		LastLogin:   rec.LastLogin,
	}
	if rec.SiteID != nil {
		view.SiteID = *rec.SiteID
	}
	return view
}
