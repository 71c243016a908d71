package db

import (
	"wfm-backend/config"
	employeestore "wfm-backend/lib/employee/store"
	"wfm-backend/models"
	dbmodels "wfm-backend/models/db"

	log "github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
)

func InitPreload() {
	addAdmin()
}

// учётка администратора для первого входа
func addAdmin() {
	if config.Conf.Admin.Password == "" {
		log.Warn("администратор не добавлен, отсутствует настройка ADMIN_PASSWORD")
		return
	}
	store := employeestore.NewInstance(DB)
	existedRec, err := store.GetByEmail(config.Conf.Admin.Email)
	if err != nil {
		log.WithError(err).Error("ошибка добавления администратора")
		return
	}
	if existedRec != nil {
		return
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(config.Conf.Admin.Password), bcrypt.DefaultCost)
	if err != nil {
		log.WithError(err).Error("ошибка хеширования пароля администратора")
		return
	}
	rec := dbmodels.Employee{
		IsActive:  true,
		Role:      models.UserRoleAdmin,
		Password:  string(hash),
		FirstName: "Администратор",
		LastName:  "Системы",
		Email:     config.Conf.Admin.Email,
	}
	_, err = store.Create(rec)
	if err != nil {
		log.WithError(err).Error("ошибка добавления администратора")
		return
	}
	log.Info("Добавлена учётная запись администратора")
}
