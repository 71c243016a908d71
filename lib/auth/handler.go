package auth

import (
	"time"
	"wfm-backend/db"
	"wfm-backend/lib/apperrors"
	employeestore "wfm-backend/lib/employee/store"
	authutils "wfm-backend/lib/utils/auth-utils"
	authapimodels "wfm-backend/models/api/auth"
	employeeapimodels "wfm-backend/models/api/employee"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
)

type Provider interface {
	Login(data authapimodels.LoginRequest) (resp authapimodels.JWTResponse, err error)
	Refresh(data authapimodels.JWTRefreshRequest) (resp authapimodels.JWTResponse, err error)
	Me(userID string) (view employeeapimodels.EmployeeView, err error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		employeeStore: employeestore.NewInstance(db.DB),
	}
}

type impl struct {
	employeeStore employeestore.Provider
}

const hMsgWrongCredentials = "неверная почта либо пароль"

func (i impl) Login(data authapimodels.LoginRequest) (authapimodels.JWTResponse, error) {
	resp := authapimodels.JWTResponse{}
	if err := data.Validate(); err != nil {
		return resp, apperrors.Wrap(err, apperrors.KindValidation, err.Error())
	}
	employee, err := i.employeeStore.GetByEmail(data.Email)
	if err != nil {
		return resp, errors.Wrap(err, "ошибка получения сотрудника")
	}
	if employee == nil || !employee.IsActive {
		return resp, apperrors.NewForbidden(hMsgWrongCredentials)
	}
	err = bcrypt.CompareHashAndPassword([]byte(employee.Password), []byte(data.Password))
	if err != nil {
		return resp, apperrors.NewForbidden(hMsgWrongCredentials)
	}
	resp.AccessToken, err = authutils.GetToken(employee.ID, employee.GetFullName(), employee.Role)
	if err != nil {
		return resp, errors.Wrap(err, "ошибка выпуска токена")
	}
	resp.RefreshToken, err = authutils.GetRefreshToken(employee.ID, employee.GetFullName())
	if err != nil {
		return resp, errors.Wrap(err, "ошибка выпуска refresh токена")
	}
	err = i.employeeStore.SetLastLogin(employee.ID, time.Now())
	if err != nil {
		log.WithField("employee_id", employee.ID).WithError(err).Error("ошибка сохранения времени входа")
	}
	return resp, nil
}

func (i impl) Refresh(data authapimodels.JWTRefreshRequest) (authapimodels.JWTResponse, error) {
	resp := authapimodels.JWTResponse{}
	if err := data.Validate(); err != nil {
		return resp, apperrors.Wrap(err, apperrors.KindValidation, err.Error())
	}
	userID, err := authutils.ParseRefreshToken(data.RefreshToken)
	if err != nil {
		return resp, apperrors.NewForbidden("токен просрочен либо некорректен")
	}
	employee, err := i.employeeStore.GetByID(userID)
	if err != nil {
		return resp, errors.Wrap(err, "ошибка получения сотрудника")
	}
	if employee == nil || !employee.IsActive {
		return resp, apperrors.NewForbidden("учётная запись недоступна")
	}
	resp.AccessToken, err = authutils.GetToken(employee.ID, employee.GetFullName(), employee.Role)
	if err != nil {
		return resp, errors.Wrap(err, "ошибка выпуска токена")
	}
	resp.RefreshToken, err = authutils.GetRefreshToken(employee.ID, employee.GetFullName())
	if err != nil {
		return resp, errors.Wrap(err, "ошибка выпуска refresh токена")
	}
	return resp, nil
}

func (i impl) Me(userID string) (employeeapimodels.EmployeeView, error) {
	employee, err := i.employeeStore.GetByID(userID)
	if err != nil {
		return employeeapimodels.EmployeeView{}, errors.Wrap(err, "ошибка получения сотрудника")
	}
	if employee == nil {
		return employeeapimodels.EmployeeView{}, apperrors.NewNotFound("сотрудник не найден")
	}
	return employeeapimodels.EmployeeConvert(*employee), nil
}
