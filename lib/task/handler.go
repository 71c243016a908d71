package task

import (
	"fmt"
	"wfm-backend/db"
	"wfm-backend/lib/apperrors"
	employeestore "wfm-backend/lib/employee/store"
	"wfm-backend/lib/notification"
	taskstore "wfm-backend/lib/task/store"
	taskupdatestore "wfm-backend/lib/task/update-store"
	initchecker "wfm-backend/lib/utils/init-checker"
	"wfm-backend/models"
	taskapimodels "wfm-backend/models/api/task"
	dbmodels "wfm-backend/models/db"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

type Provider interface {
	Create(authorID string, data taskapimodels.TaskData) (view taskapimodels.TaskView, err error)
	AddUpdate(authorID string, role models.UserRole, taskID string, data taskapimodels.TaskUpdateData) (view taskapimodels.TaskView, err error)
	GetByID(userID string, role models.UserRole, id string) (view taskapimodels.TaskView, err error)
	ListMy(employeeID string) (list []taskapimodels.TaskView, err error)
	List() (list []taskapimodels.TaskView, err error)
}

var Instance Provider

func NewHandler() {
	instance := &impl{
		store:         taskstore.NewInstance(db.DB),
		updateStore:   taskupdatestore.NewInstance(db.DB),
		employeeStore: employeestore.NewInstance(db.DB),
		notify:        notification.Instance,
	}
	initchecker.CheckInit(
		"notify", instance.notify,
	)
	Instance = instance
}

type impl struct {
	store         taskstore.Provider
	updateStore   taskupdatestore.Provider
	employeeStore employeestore.Provider
	notify        notification.Provider
}

func (i impl) Create(authorID string, data taskapimodels.TaskData) (taskapimodels.TaskView, error) {
	view := taskapimodels.TaskView{}
	if err := data.Validate(); err != nil {
		return view, apperrors.Wrap(err, apperrors.KindValidation, err.Error())
	}
	assignee, err := i.employeeStore.GetByID(data.AssignedTo)
	if err != nil {
		return view, errors.Wrap(err, "ошибка получения исполнителя")
	}
	if assignee == nil || !assignee.IsActive {
		return view, apperrors.NewValidation("исполнитель не найден либо неактивен")
	}
	rec := dbmodels.Task{
		AssignedTo:       data.AssignedTo,
		AssignedBy:       authorID,
		Title:            data.Title,
		Description:      data.Description,
		Priority:         data.Priority,
		RequiresPhoto:    data.RequiresPhoto,
		RequiresLocation: data.RequiresLocation,
		EstimatedHours:   data.EstimatedHours,
	}
	if data.SiteID != "" {
		rec.SiteID = &data.SiteID
	}
	id, err := i.store.Create(rec)
	if err != nil {
		return view, errors.Wrap(err, "ошибка создания задачи")
	}
	priority := models.NotifyPriorityNormal
	if data.Priority == models.TaskPriorityHigh || data.Priority == models.TaskPriorityUrgent {
		priority = models.NotifyPriorityHigh
	}
	err = i.notify.Notify(data.AssignedTo, models.NotifyTaskAssigned, priority,
		"Новая задача", fmt.Sprintf("Вам назначена задача «%s»", data.Title), id)
	if err != nil {
		log.WithField("task_id", id).WithError(err).Error("ошибка отправки уведомления о задаче")
	}
	return i.getView(id)
}

func (i impl) AddUpdate(authorID string, role models.UserRole, taskID string, data taskapimodels.TaskUpdateData) (taskapimodels.TaskView, error) {
	view := taskapimodels.TaskView{}
	if err := data.Validate(); err != nil {
		return view, apperrors.Wrap(err, apperrors.KindValidation, err.Error())
	}
	rec, err := i.store.GetByID(taskID)
	if err != nil {
		return view, errors.Wrap(err, "ошибка получения задачи")
	}
	if rec == nil {
		return view, apperrors.NewNotFound("задача не найдена")
	}
	if !role.IsManagement() && rec.AssignedTo != authorID {
		return view, apperrors.NewForbidden("нет доступа к чужой задаче")
	}
	current := taskapimodels.CurrentStatus(rec.Updates)
	if current.IsTerminal() {
		return view, apperrors.NewInvalidState("задача уже завершена либо отменена")
	}
	// подтверждение выполнения по требованиям задачи
	if data.Status == models.TaskStatusCompleted {
		if rec.RequiresPhoto && data.PhotoID == "" {
			return view, apperrors.NewPolicy("для завершения задачи требуется фото")
		}
		if rec.RequiresLocation && (data.Lat == nil || data.Lon == nil) {
			return view, apperrors.NewPolicy("для завершения задачи требуется геопозиция")
		}
	}
	upd := dbmodels.TaskUpdate{
		TaskID:   taskID,
		AuthorID: authorID,
		Status:   data.Status,
		Comment:  data.Comment,
		Lat:      data.Lat,
		Lon:      data.Lon,
	}
	if data.PhotoID != "" {
		upd.PhotoID = &data.PhotoID
	}
	_, err = i.updateStore.Create(upd)
	if err != nil {
		return view, errors.Wrap(err, "ошибка записи в журнал задачи")
	}
	updMap := map[string]interface{}{}
	if data.ActualHours > 0 {
		updMap["actual_hours"] = data.ActualHours
	}
	if data.PhotoID != "" {
		updMap["photo_urls"] = append(rec.PhotoURLs, data.PhotoID)
	}
	if len(updMap) > 0 {
		err = i.store.Update(taskID, updMap)
		if err != nil {
			return view, errors.Wrap(err, "ошибка обновления задачи")
		}
	}
	return i.getView(taskID)
}

func (i impl) GetByID(userID string, role models.UserRole, id string) (taskapimodels.TaskView, error) {
	view := taskapimodels.TaskView{}
	rec, err := i.store.GetByID(id)
	if err != nil {
		return view, errors.Wrap(err, "ошибка получения задачи")
	}
	if rec == nil {
		return view, apperrors.NewNotFound("задача не найдена")
	}
	if !role.IsManagement() && rec.AssignedTo != userID {
		return view, apperrors.NewForbidden("нет доступа к чужой задаче")
	}
	return taskapimodels.TaskConvert(*rec), nil
}

func (i impl) ListMy(employeeID string) ([]taskapimodels.TaskView, error) {
	list, err := i.store.ListByAssignee(employeeID)
	if err != nil {
		return nil, errors.Wrap(err, "ошибка получения списка задач")
	}
	return convertList(list), nil
}

func (i impl) List() ([]taskapimodels.TaskView, error) {
	list, err := i.store.List()
	if err != nil {
		return nil, errors.Wrap(err, "ошибка получения списка задач")
	}
	return convertList(list), nil
}

func convertList(list []dbmodels.Task) []taskapimodels.TaskView {
	result := make([]taskapimodels.TaskView, 0, len(list))
	for _, rec := range list {
		result = append(result, taskapimodels.TaskConvert(rec))
	}
	return result
}

func (i impl) getView(id string) (taskapimodels.TaskView, error) {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return taskapimodels.TaskView{}, errors.Wrap(err, "ошибка получения задачи")
	}
	if rec == nil {
		return taskapimodels.TaskView{}, apperrors.NewNotFound("задача не найдена")
	}
	return taskapimodels.TaskConvert(*rec), nil
}
