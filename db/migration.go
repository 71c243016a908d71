package db

import (
	dbmodels "wfm-backend/models/db"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

func AutoMigrateDB() error {
	DB.Exec("CREATE EXTENSION IF NOT EXISTS \"uuid-ossp\";")
	log.Info("Запуск миграций")
	if err := DB.AutoMigrate(&dbmodels.Employee{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры Employee")
	}
	if err := DB.AutoMigrate(&dbmodels.Site{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры Site")
	}
	if err := DB.AutoMigrate(&dbmodels.Product{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры Product")
	}
	if err := DB.AutoMigrate(&dbmodels.WorkSession{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры WorkSession")
	}
	if err := DB.AutoMigrate(&dbmodels.WorkSummary{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры WorkSummary")
	}
	if err := DB.AutoMigrate(&dbmodels.WorkSummaryProduct{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры WorkSummaryProduct")
	}
	if err := DB.AutoMigrate(&dbmodels.ApprovalRequest{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры ApprovalRequest")
	}
	if err := DB.AutoMigrate(&dbmodels.Shift{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры Shift")
	}
	if err := DB.AutoMigrate(&dbmodels.Task{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры Task")
	}
	if err := DB.AutoMigrate(&dbmodels.TaskUpdate{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры TaskUpdate")
	}
	if err := DB.AutoMigrate(&dbmodels.Notification{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры Notification")
	}
	if err := DB.AutoMigrate(&dbmodels.RestrictedPeriod{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры RestrictedPeriod")
	}
	if err := DB.AutoMigrate(&dbmodels.FileStorage{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры FileStorage")
	}
	log.Info("Миграция прошла успешно")
	return nil
}
