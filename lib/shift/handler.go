package shift

import (
	"fmt"
	"time"
	"wfm-backend/db"
	"wfm-backend/lib/apperrors"
	employeestore "wfm-backend/lib/employee/store"
	"wfm-backend/lib/notification"
	shiftstore "wfm-backend/lib/shift/store"
	initchecker "wfm-backend/lib/utils/init-checker"
	"wfm-backend/models"
	shiftapimodels "wfm-backend/models/api/shift"
	dbmodels "wfm-backend/models/db"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

type Provider interface {
	Create(data shiftapimodels.ShiftData) (view shiftapimodels.ShiftView, err error)
	Update(id string, data shiftapimodels.ShiftData) (view shiftapimodels.ShiftView, err error)
	Cancel(id string) (view shiftapimodels.ShiftView, err error)
	Complete(id string, data shiftapimodels.CompleteData) (view shiftapimodels.ShiftView, err error)
	Delete(id string) error
	GetByID(id string) (view shiftapimodels.ShiftView, err error)
	List(employeeID string, role models.UserRole, filter shiftapimodels.ShiftFilter) (list []shiftapimodels.ShiftView, err error)
}

var Instance Provider

func NewHandler() {
	instance := &impl{
		now:           time.Now,
		store:         shiftstore.NewInstance(db.DB),
		employeeStore: employeestore.NewInstance(db.DB),
		notify:        notification.Instance,
	}
	initchecker.CheckInit(
		"notify", instance.notify,
	)
	Instance = instance
}

type impl struct {
	now           func() time.Time
	store         shiftstore.Provider
	employeeStore employeestore.Provider
	notify        notification.Provider
}

func (i impl) Create(data shiftapimodels.ShiftData) (shiftapimodels.ShiftView, error) {
	view := shiftapimodels.ShiftView{}
	if err := data.Validate(); err != nil {
		return view, apperrors.Wrap(err, apperrors.KindValidation, err.Error())
	}
	employee, err := i.employeeStore.GetByID(data.EmployeeID)
	if err != nil {
		return view, errors.Wrap(err, "ошибка получения сотрудника")
	}
	if employee == nil || !employee.IsActive {
		return view, apperrors.NewValidation("сотрудник не найден либо неактивен")
	}
	rec := dbmodels.Shift{
		EmployeeID:    data.EmployeeID,
		Title:         data.Title,
		StartAt:       data.StartAt,
		EndAt:         data.EndAt,
		Recurrence:    data.Recurrence,
		Status:        models.ShiftScheduled,
		OvertimeHours: data.OvertimeHours,
	}
	if data.SiteID != "" {
		rec.SiteID = &data.SiteID
	}
	id, err := i.store.Create(rec)
	if err != nil {
		return view, errors.Wrap(err, "ошибка создания смены")
	}
	i.notifyChange(data.EmployeeID, id, fmt.Sprintf("Вам назначена смена «%s» на %s",
		data.Title, data.StartAt.Format("02.01.2006 15:04")), models.NotifyPriorityNormal)
	return i.getView(id)
}

func (i impl) Update(id string, data shiftapimodels.ShiftData) (shiftapimodels.ShiftView, error) {
	view := shiftapimodels.ShiftView{}
	if err := data.Validate(); err != nil {
		return view, apperrors.Wrap(err, apperrors.KindValidation, err.Error())
	}
	rec, err := i.store.GetByID(id)
	if err != nil {
		return view, errors.Wrap(err, "ошибка получения смены")
	}
	if rec == nil {
		return view, apperrors.NewNotFound("смена не найдена")
	}
	if rec.IsFinishedAt(i.now()) {
		return view, apperrors.NewInvalidState("завершённую либо отменённую смену изменить нельзя")
	}
	updMap := map[string]interface{}{
		"employee_id":    data.EmployeeID,
		"title":          data.Title,
		"start_at":       data.StartAt,
		"end_at":         data.EndAt,
		"recurrence":     data.Recurrence,
		"overtime_hours": data.OvertimeHours,
	}
	if data.SiteID != "" {
		updMap["site_id"] = data.SiteID
	}
	err = i.store.Update(id, updMap)
	if err != nil {
		return view, errors.Wrap(err, "ошибка обновления смены")
	}
	i.notifyChange(data.EmployeeID, id, fmt.Sprintf("Смена «%s» изменена", data.Title), models.NotifyPriorityNormal)
	// при переназначении прежний исполнитель тоже получает уведомление
	if rec.EmployeeID != data.EmployeeID {
		i.notifyChange(rec.EmployeeID, id, fmt.Sprintf("Смена «%s» передана другому сотруднику", rec.Title), models.NotifyPriorityHigh)
	}
	return i.getView(id)
}

func (i impl) Cancel(id string) (shiftapimodels.ShiftView, error) {
	view := shiftapimodels.ShiftView{}
	rec, err := i.store.GetByID(id)
	if err != nil {
		return view, errors.Wrap(err, "ошибка получения смены")
	}
	if rec == nil {
		return view, apperrors.NewNotFound("смена не найдена")
	}
	if rec.IsFinishedAt(i.now()) {
		return view, apperrors.NewInvalidState("смена уже завершена либо отменена")
	}
	err = i.store.Update(id, map[string]interface{}{"status": models.ShiftCancelled})
	if err != nil {
		return view, errors.Wrap(err, "ошибка отмены смены")
	}
	i.notifyChange(rec.EmployeeID, id, fmt.Sprintf("Смена «%s» на %s отменена",
		rec.Title, rec.StartAt.Format("02.01.2006 15:04")), models.NotifyPriorityHigh)
	return i.getView(id)
}

// Complete - досрочное закрытие смены с фиксацией переработки
func (i impl) Complete(id string, data shiftapimodels.CompleteData) (shiftapimodels.ShiftView, error) {
	view := shiftapimodels.ShiftView{}
	if data.OvertimeHours < 0 {
		return view, apperrors.NewValidation("переработка не может быть отрицательной")
	}
	rec, err := i.store.GetByID(id)
	if err != nil {
		return view, errors.Wrap(err, "ошибка получения смены")
	}
	if rec == nil {
		return view, apperrors.NewNotFound("смена не найдена")
	}
	if rec.IsFinishedAt(i.now()) {
		return view, apperrors.NewInvalidState("смена уже завершена либо отменена")
	}
	err = i.store.Update(id, map[string]interface{}{
		"status":         models.ShiftCompleted,
		"overtime_hours": data.OvertimeHours,
	})
	if err != nil {
		return view, errors.Wrap(err, "ошибка завершения смены")
	}
	return i.getView(id)
}

func (i impl) Delete(id string) error {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return errors.Wrap(err, "ошибка получения смены")
	}
	if rec == nil {
		return apperrors.NewNotFound("смена не найдена")
	}
	// удалять можно только смену, которая ещё не началась
	if rec.StatusAt(i.now()) != models.ShiftScheduled {
		return apperrors.NewInvalidState("удалить можно только запланированную смену")
	}
	return i.store.Delete(id)
}

func (i impl) GetByID(id string) (shiftapimodels.ShiftView, error) {
	return i.getView(id)
}

func (i impl) List(employeeID string, role models.UserRole, filter shiftapimodels.ShiftFilter) ([]shiftapimodels.ShiftView, error) {
	// сотрудник видит только своё расписание
	if !role.IsManagement() {
		filter.EmployeeID = employeeID
	}
	list, err := i.store.List(filter)
	if err != nil {
		return nil, errors.Wrap(err, "ошибка получения списка смен")
	}
	now := i.now()
	result := make([]shiftapimodels.ShiftView, 0, len(list))
	for _, rec := range list {
		result = append(result, shiftapimodels.ShiftConvert(rec, now))
	}
	return result, nil
}

func (i impl) notifyChange(employeeID, shiftID, body string, priority models.NotificationPriority) {
	err := i.notify.Notify(employeeID, models.NotifyShiftChanged, priority, "Изменение расписания", body, shiftID)
	if err != nil {
		log.WithField("shift_id", shiftID).WithError(err).Error("ошибка отправки уведомления о смене")
	}
}

func (i impl) getView(id string) (shiftapimodels.ShiftView, error) {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return shiftapimodels.ShiftView{}, errors.Wrap(err, "ошибка получения смены")
	}
	if rec == nil {
		return shiftapimodels.ShiftView{}, apperrors.NewNotFound("смена не найдена")
	}
	return shiftapimodels.ShiftConvert(*rec, i.now()), nil
}
