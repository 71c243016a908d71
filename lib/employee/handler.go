package employee

import (
	"strings"
	"wfm-backend/db"
	"wfm-backend/lib/apperrors"
	employeestore "wfm-backend/lib/employee/store"
	employeeapimodels "wfm-backend/models/api/employee"
	dbmodels "wfm-backend/models/db"

	"github.com/pkg/errors"
	"golang.org/x/crypto/bcrypt"
)

type Provider interface {
	Create(data employeeapimodels.EmployeeCreateData) (view employeeapimodels.EmployeeView, err error)
	Update(id string, data employeeapimodels.EmployeeData) (view employeeapimodels.EmployeeView, err error)
	ChangeRole(id string, data employeeapimodels.RoleChangeData) (view employeeapimodels.EmployeeView, err error)
	Deactivate(actorID, id string) (view employeeapimodels.EmployeeView, err error)
	Activate(id string) (view employeeapimodels.EmployeeView, err error)
	GetByID(id string) (view employeeapimodels.EmployeeView, err error)
	List(activeOnly bool) (list []employeeapimodels.EmployeeView, err error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		store: employeestore.NewInstance(db.DB),
	}
}

type impl struct {
	store employeestore.Provider
}

func (i impl) Create(data employeeapimodels.EmployeeCreateData) (employeeapimodels.EmployeeView, error) {
	view := employeeapimodels.EmployeeView{}
	if err := data.Validate(); err != nil {
		return view, apperrors.Wrap(err, apperrors.KindValidation, err.Error())
	}
	email := strings.ToLower(strings.TrimSpace(data.Email))
	existed, err := i.store.GetByEmail(email)
	if err != nil {
		return view, errors.Wrap(err, "ошибка проверки почты")
	}
	if existed != nil {
		return view, apperrors.NewConflict("сотрудник с такой почтой уже существует")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(data.Password), bcrypt.DefaultCost)
	if err != nil {
		return view, errors.Wrap(err, "ошибка хеширования пароля")
	}
	rec := dbmodels.Employee{
		Password:    string(hash),
		FirstName:   data.FirstName,
		LastName:    data.LastName,
		Email:       email,
		PhoneNumber: data.PhoneNumber,
		IsActive:    true,
		Role:        data.Role,
	}
	if data.SiteID != "" {
		rec.SiteID = &data.SiteID
	}
	id, err := i.store.Create(rec)
	if err != nil {
		return view, errors.Wrap(err, "ошибка создания сотрудника")
	}
	return i.GetByID(id)
}

func (i impl) Update(id string, data employeeapimodels.EmployeeData) (employeeapimodels.EmployeeView, error) {
	view := employeeapimodels.EmployeeView{}
	if err := data.Validate(); err != nil {
		return view, apperrors.Wrap(err, apperrors.KindValidation, err.Error())
	}
	existed, err := i.store.GetByID(id)
	if err != nil {
		return view, errors.Wrap(err, "ошибка получения сотрудника")
	}
	if existed == nil {
		return view, apperrors.NewNotFound("сотрудник не найден")
	}
	updMap := map[string]interface{}{
		"first_name":   data.FirstName,
		"last_name":    data.LastName,
		"phone_number": data.PhoneNumber,
	}
	if data.SiteID != "" {
		updMap["site_id"] = data.SiteID
	}
	err = i.store.Update(id, updMap)
	if err != nil {
		return view, errors.Wrap(err, "ошибка обновления сотрудника")
	}
	return i.GetByID(id)
}

func (i impl) ChangeRole(id string, data employeeapimodels.RoleChangeData) (employeeapimodels.EmployeeView, error) {
	view := employeeapimodels.EmployeeView{}
	if err := data.Validate(); err != nil {
		return view, apperrors.Wrap(err, apperrors.KindValidation, err.Error())
	}
	existed, err := i.store.GetByID(id)
	if err != nil {
		return view, errors.Wrap(err, "ошибка получения сотрудника")
	}
	if existed == nil {
		return view, apperrors.NewNotFound("сотрудник не найден")
	}
	err = i.store.Update(id, map[string]interface{}{"role": data.Role})
	if err != nil {
		return view, errors.Wrap(err, "ошибка изменения роли")
	}
	return i.GetByID(id)
}

// Deactivate - учётные записи не удаляются, сотрудник деактивируется
// и теряет возможность входа
func (i impl) Deactivate(actorID, id string) (employeeapimodels.EmployeeView, error) {
	view := employeeapimodels.EmployeeView{}
	if actorID == id {
		return view, apperrors.NewValidation("нельзя деактивировать собственную учётную запись")
	}
	existed, err := i.store.GetByID(id)
	if err != nil {
		return view, errors.Wrap(err, "ошибка получения сотрудника")
	}
	if existed == nil {
		return view, apperrors.NewNotFound("сотрудник не найден")
	}
	err = i.store.Update(id, map[string]interface{}{"is_active": false})
	if err != nil {
		return view, errors.Wrap(err, "ошибка деактивации сотрудника")
	}
	return i.GetByID(id)
}

func (i impl) Activate(id string) (employeeapimodels.EmployeeView, error) {
	view := employeeapimodels.EmployeeView{}
	existed, err := i.store.GetByID(id)
	if err != nil {
		return view, errors.Wrap(err, "ошибка получения сотрудника")
	}
	if existed == nil {
		return view, apperrors.NewNotFound("сотрудник не найден")
	}
	err = i.store.Update(id, map[string]interface{}{"is_active": true})
	if err != nil {
		return view, errors.Wrap(err, "ошибка активации сотрудника")
	}
	return i.GetByID(id)
}

func (i impl) GetByID(id string) (employeeapimodels.EmployeeView, error) {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return employeeapimodels.EmployeeView{}, errors.Wrap(err, "ошибка получения сотрудника")
	}
	if rec == nil {
		return employeeapimodels.EmployeeView{}, apperrors.NewNotFound("сотрудник не найден")
	}
	return employeeapimodels.EmployeeConvert(*rec), nil
}

func (i impl) List(activeOnly bool) ([]employeeapimodels.EmployeeView, error) {
	list, err := i.store.List(activeOnly)
	if err != nil {
		return nil, errors.Wrap(err, "ошибка получения списка сотрудников")
	}
	result := make([]employeeapimodels.EmployeeView, 0, len(list))
	for _, rec := range list {
		result = append(result, employeeapimodels.EmployeeConvert(rec))
	}
	return result, nil
}
