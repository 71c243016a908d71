package notification

import (
	"wfm-backend/db"
	"wfm-backend/lib/apperrors"
	employeestore "wfm-backend/lib/employee/store"
	notificationstore "wfm-backend/lib/notification/store"
	"wfm-backend/lib/smtp"
	"wfm-backend/models"
	notificationapimodels "wfm-backend/models/api/notification"
	dbmodels "wfm-backend/models/db"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

type Provider interface {
	Notify(userID string, nType models.NotificationType, priority models.NotificationPriority, title, body, relatedID string) error
	List(userID string, limit int) (notificationapimodels.NotificationList, error)
	UnreadCount(userID string) (int64, error)
	MarkRead(userID, id string) error
	MarkAllRead(userID string) error
	Delete(userID, id string) error
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		store:         notificationstore.NewInstance(db.DB),
		employeeStore: employeestore.NewInstance(db.DB),
	}
}

type impl struct {
	store         notificationstore.Provider
	employeeStore employeestore.Provider
}

func (i impl) Notify(userID string, nType models.NotificationType, priority models.NotificationPriority, title, body, relatedID string) error {
	rec := dbmodels.Notification{
		UserID:   userID,
		Title:    title,
		Body:     body,
		Type:     nType,
		Priority: priority,
	}
	if relatedID != "" {
		rec.RelatedID = &relatedID
	}
	_, err := i.store.Create(rec)
	if err != nil {
		return errors.Wrap(err, "ошибка сохранения уведомления")
	}
	if priority == models.NotifyPriorityHigh {
		i.sendEmail(userID, title, body)
	}
	return nil
}

// важные уведомления дублируем письмом
func (i impl) sendEmail(userID, title, body string) {
	logger := log.WithField("user_id", userID)
	if smtp.Instance == nil {
		return
	}
	employee, err := i.employeeStore.GetByID(userID)
	if err != nil || employee == nil || employee.Email == "" {
		logger.Warn("письмо с уведомлением не отправлено, почта получателя неизвестна")
		return
	}
	err = smtp.Instance.SendEMail(models.SystemUser, employee.Email, body, title)
	if err != nil {
		logger.WithError(err).Error("ошибка отправки письма с уведомлением")
	}
}

func (i impl) List(userID string, limit int) (notificationapimodels.NotificationList, error) {
	result := notificationapimodels.NotificationList{Items: []notificationapimodels.NotificationView{}}
	list, err := i.store.ListByUser(userID, limit)
	if err != nil {
		return result, errors.Wrap(err, "ошибка получения списка уведомлений")
	}
	for _, rec := range list {
		result.Items = append(result.Items, notificationapimodels.NotificationConvert(rec))
	}
	result.UnreadCount, err = i.store.UnreadCount(userID)
	if err != nil {
		return result, errors.Wrap(err, "ошибка подсчёта непрочитанных уведомлений")
	}
	return result, nil
}

func (i impl) UnreadCount(userID string) (int64, error) {
	count, err := i.store.UnreadCount(userID)
	if err != nil {
		return 0, errors.Wrap(err, "ошибка подсчёта непрочитанных уведомлений")
	}
	return count, nil
}

func (i impl) MarkRead(userID, id string) error {
	rec, err := i.getOwned(userID, id)
	if err != nil {
		return err
	}
	if rec.IsRead {
		return nil
	}
	return i.store.MarkRead(id)
}

func (i impl) MarkAllRead(userID string) error {
	return i.store.MarkAllRead(userID)
}

func (i impl) Delete(userID, id string) error {
	_, err := i.getOwned(userID, id)
	if err != nil {
		return err
	}
	return i.store.Delete(id)
}

// доступ только к своим уведомлениям
func (i impl) getOwned(userID, id string) (*dbmodels.Notification, error) {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return nil, errors.Wrap(err, "ошибка получения уведомления")
	}
	if rec == nil {
		return nil, apperrors.NewNotFound("уведомление не найдено")
	}
	if rec.UserID != userID {
		return nil, apperrors.NewForbidden("нет доступа к чужому уведомлению")
	}
	return rec, nil
}
