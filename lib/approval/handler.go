package approval

import (
	"fmt"
	"time"
	"wfm-backend/db"
	"wfm-backend/lib/apperrors"
	approvalstore "wfm-backend/lib/approval/store"
	employeestore "wfm-backend/lib/employee/store"
	"wfm-backend/lib/notification"
	restrictedperiodstore "wfm-backend/lib/restricted-period/store"
	shiftstore "wfm-backend/lib/shift/store"
	"wfm-backend/lib/utils/helpers"
	initchecker "wfm-backend/lib/utils/init-checker"
	"wfm-backend/models"
	approvalapimodels "wfm-backend/models/api/approval"
	dbmodels "wfm-backend/models/db"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type Provider interface {
	SubmitTimeOff(requesterID string, data approvalapimodels.TimeOffData) (view approvalapimodels.ApprovalView, err error)
	SubmitShiftSwap(requesterID string, data approvalapimodels.ShiftSwapData) (view approvalapimodels.ApprovalView, err error)
	Approve(approverID, id string) (view approvalapimodels.ApprovalView, err error)
	Reject(approverID, id string, data approvalapimodels.RejectData) (view approvalapimodels.ApprovalView, err error)
	GetByID(userID string, role models.UserRole, id string) (view approvalapimodels.ApprovalView, err error)
	ListMy(requesterID string, filter approvalapimodels.ApprovalFilter) (list []approvalapimodels.ApprovalView, err error)
	ListPending(filter approvalapimodels.ApprovalFilter) (list []approvalapimodels.ApprovalView, err error)
}

var Instance Provider

// TxStores - хранилища, привязанные к одной транзакции рассмотрения заявки
type TxStores struct {
	Approvals approvalstore.Provider
	Shifts    shiftstore.Provider
}

type TxRunner func(fc func(s TxStores) error) error

func NewHandler() {
	instance := &impl{
		now:             time.Now,
		approvalStore:   approvalstore.NewInstance(db.DB),
		shiftStore:      shiftstore.NewInstance(db.DB),
		restrictedStore: restrictedperiodstore.NewInstance(db.DB),
		employeeStore:   employeestore.NewInstance(db.DB),
		notify:          notification.Instance,
		inTx: func(fc func(s TxStores) error) error {
			return db.DB.Transaction(func(tx *gorm.DB) error {
				return fc(TxStores{
					Approvals: approvalstore.NewInstance(tx),
					Shifts:    shiftstore.NewInstance(tx),
				})
			})
		},
	}
	initchecker.CheckInit(
		"notify", instance.notify,
	)
	Instance = instance
}

type impl struct {
	now             func() time.Time
	approvalStore   approvalstore.Provider
	shiftStore      shiftstore.Provider
	restrictedStore restrictedperiodstore.Provider
	employeeStore   employeestore.Provider
	notify          notification.Provider
	inTx            TxRunner
}

func (i impl) SubmitTimeOff(requesterID string, data approvalapimodels.TimeOffData) (approvalapimodels.ApprovalView, error) {
	view := approvalapimodels.ApprovalView{}
	if err := data.Validate(); err != nil {
		return view, apperrors.Wrap(err, apperrors.KindValidation, err.Error())
	}
	from, to, err := data.Period()
	if err != nil {
		return view, apperrors.Wrap(err, apperrors.KindValidation, err.Error())
	}
	restricted, err := i.restrictedStore.ListActive()
	if err != nil {
		return view, errors.Wrap(err, "ошибка получения периодов запрета отпусков")
	}
	for _, period := range restricted {
		if helpers.PeriodsIntersect(from, to, period.DateFrom, period.DateTo) {
			return view, apperrors.NewPolicy(fmt.Sprintf("запрошенные даты попадают в период запрета отпусков (%s)", period.Title))
		}
	}
	rec := dbmodels.ApprovalRequest{
		Kind:        models.ApprovalKindTimeOff,
		RequesterID: requesterID,
		Status:      models.ApprovalStatusPending,
		DateFrom:    &from,
		DateTo:      &to,
		Reason:      data.Reason,
	}
	id, err := i.approvalStore.Create(rec)
	if err != nil {
		return view, errors.Wrap(err, "ошибка создания заявки на отпуск")
	}
	return i.getView(id)
}

func (i impl) SubmitShiftSwap(requesterID string, data approvalapimodels.ShiftSwapData) (approvalapimodels.ApprovalView, error) {
	view := approvalapimodels.ApprovalView{}
	if err := data.Validate(); err != nil {
		return view, apperrors.Wrap(err, apperrors.KindValidation, err.Error())
	}
	now := i.now()
	shift, err := i.shiftStore.GetByID(data.ShiftID)
	if err != nil {
		return view, errors.Wrap(err, "ошибка получения смены")
	}
	if shift == nil {
		return view, apperrors.NewNotFound("смена не найдена")
	}
	if shift.EmployeeID != requesterID {
		return view, apperrors.NewForbidden("обменять можно только свою смену")
	}
	if shift.IsFinishedAt(now) {
		return view, apperrors.NewInvalidState("смена уже завершена либо отменена")
	}
	rec := dbmodels.ApprovalRequest{
		Kind:         models.ApprovalKindShiftSwap,
		RequesterID:  requesterID,
		Status:       models.ApprovalStatusPending,
		ShiftID:      &data.ShiftID,
		CoverageOnly: data.CoverageOnly,
	}
	if data.CoverageOnly {
		cover, err := i.employeeStore.GetByID(data.CoverEmployeeID)
		if err != nil {
			return view, errors.Wrap(err, "ошибка получения подменяющего сотрудника")
		}
		if cover == nil || !cover.IsActive {
			return view, apperrors.NewValidation("подменяющий сотрудник не найден либо неактивен")
		}
		if cover.ID == requesterID {
			return view, apperrors.NewValidation("нельзя указать себя подменяющим сотрудником")
		}
		rec.CoverEmployeeID = &data.CoverEmployeeID
	} else {
		counterpart, err := i.shiftStore.GetByID(data.CounterpartShiftID)
		if err != nil {
			return view, errors.Wrap(err, "ошибка получения встречной смены")
		}
		if counterpart == nil {
			return view, apperrors.NewNotFound("встречная смена не найдена")
		}
		if counterpart.EmployeeID == requesterID {
			return view, apperrors.NewValidation("встречная смена принадлежит самому заявителю")
		}
		if counterpart.IsFinishedAt(now) {
			return view, apperrors.NewInvalidState("встречная смена уже завершена либо отменена")
		}
		rec.CounterpartShiftID = &data.CounterpartShiftID
	}
	id, err := i.approvalStore.Create(rec)
	if err != nil {
		return view, errors.Wrap(err, "ошибка создания заявки на обмен сменами")
	}
	return i.getView(id)
}

func (i impl) Approve(approverID, id string) (approvalapimodels.ApprovalView, error) {
	return i.resolve(approverID, id, models.ApprovalStatusApproved, "")
}

func (i impl) Reject(approverID, id string, data approvalapimodels.RejectData) (approvalapimodels.ApprovalView, error) {
	if err := data.Validate(); err != nil {
		return approvalapimodels.ApprovalView{}, apperrors.Wrap(err, apperrors.KindValidation, err.Error())
	}
	return i.resolve(approverID, id, models.ApprovalStatusRejected, data.RejectionReason)
}

func (i impl) resolve(approverID, id string, status models.ApprovalStatus, rejectionReason string) (approvalapimodels.ApprovalView, error) {
	view := approvalapimodels.ApprovalView{}
	var rec *dbmodels.ApprovalRequest
	err := i.inTx(func(s TxStores) error {
		var err error
		rec, err = s.Approvals.GetByID(id)
		if err != nil {
			return errors.Wrap(err, "ошибка получения заявки")
		}
		if rec == nil {
			return apperrors.NewNotFound("заявка не найдена")
		}
		if rec.RequesterID == approverID {
			return apperrors.NewForbidden("нельзя рассматривать собственную заявку")
		}
		updMap := map[string]interface{}{
			"status":           status,
			"approver_id":      approverID,
			"resolved_at":      i.now(),
			"rejection_reason": rejectionReason,
		}
		resolved, err := s.Approvals.Resolve(id, updMap)
		if err != nil {
			return errors.Wrap(err, "ошибка рассмотрения заявки")
		}
		if !resolved {
			return apperrors.NewInvalidState("заявка уже рассмотрена")
		}
		// обмен сменами применяется в той же транзакции, при ошибке
		// заявка остаётся нерассмотренной
		if status == models.ApprovalStatusApproved && rec.Kind == models.ApprovalKindShiftSwap {
			return i.applySwap(s, *rec)
		}
		return nil
	})
	if err != nil {
		return view, err
	}
	i.notifyResolved(*rec, status, rejectionReason)
	return i.getView(id)
}

func (i impl) applySwap(s TxStores, rec dbmodels.ApprovalRequest) error {
	now := i.now()
	if rec.ShiftID == nil {
		return apperrors.NewInvalidState("в заявке не указана смена")
	}
	// блокировки берём в порядке возрастания id, чтобы исключить взаимную блокировку
	lockIDs := []string{*rec.ShiftID}
	if !rec.CoverageOnly && rec.CounterpartShiftID != nil {
		if *rec.CounterpartShiftID < *rec.ShiftID {
			lockIDs = []string{*rec.CounterpartShiftID, *rec.ShiftID}
		} else {
			lockIDs = append(lockIDs, *rec.CounterpartShiftID)
		}
	}
	locked := map[string]*dbmodels.Shift{}
	for _, shiftID := range lockIDs {
		shift, err := s.Shifts.GetByIDForUpdate(shiftID)
		if err != nil {
			return errors.Wrap(err, "ошибка блокировки смены")
		}
		if shift == nil {
			return apperrors.NewNotFound("смена из заявки не найдена")
		}
		if shift.IsFinishedAt(now) {
			return apperrors.NewInvalidState("смена из заявки уже завершена либо отменена")
		}
		locked[shiftID] = shift
	}
	shift := locked[*rec.ShiftID]
	if rec.CoverageOnly {
		if rec.CoverEmployeeID == nil {
			return apperrors.NewInvalidState("в заявке не указан подменяющий сотрудник")
		}
		return s.Shifts.Update(shift.ID, map[string]interface{}{"employee_id": *rec.CoverEmployeeID})
	}
	counterpart := locked[*rec.CounterpartShiftID]
	err := s.Shifts.Update(shift.ID, map[string]interface{}{"employee_id": counterpart.EmployeeID})
	if err != nil {
		return errors.Wrap(err, "ошибка переназначения смены")
	}
	err = s.Shifts.Update(counterpart.ID, map[string]interface{}{"employee_id": shift.EmployeeID})
	if err != nil {
		return errors.Wrap(err, "ошибка переназначения встречной смены")
	}
	return nil
}

func (i impl) notifyResolved(rec dbmodels.ApprovalRequest, status models.ApprovalStatus, rejectionReason string) {
	logger := log.WithField("approval_id", rec.ID)
	nType := models.NotifyTimeOffResolved
	title := fmt.Sprintf("Заявка на отпуск: %s", status.ToHuman())
	if rec.Kind == models.ApprovalKindShiftSwap {
		nType = models.NotifyShiftSwapResolved
		title = fmt.Sprintf("Заявка на обмен сменами: %s", status.ToHuman())
	}
	body := title
	if rejectionReason != "" {
		body = fmt.Sprintf("%s. Причина: %s", title, rejectionReason)
	}
	err := i.notify.Notify(rec.RequesterID, nType, models.NotifyPriorityHigh, title, body, rec.ID)
	if err != nil {
		logger.WithError(err).Error("ошибка отправки уведомления заявителю")
	}
	// при обмене второй участник тоже узнаёт об изменении расписания
	if status == models.ApprovalStatusApproved && rec.Kind == models.ApprovalKindShiftSwap {
		i.notifySwapCounterpart(rec)
	}
}

func (i impl) notifySwapCounterpart(rec dbmodels.ApprovalRequest) {
	logger := log.WithField("approval_id", rec.ID)
	var otherID string
	if rec.CoverageOnly && rec.CoverEmployeeID != nil {
		otherID = *rec.CoverEmployeeID
	} else if rec.CounterpartShiftID != nil {
		counterpart, err := i.shiftStore.GetByID(*rec.CounterpartShiftID)
		if err != nil || counterpart == nil {
			logger.WithError(err).Error("ошибка получения встречной смены для уведомления")
			return
		}
		// после обмена встречная смена принадлежит заявителю, уведомляем нового исполнителя исходной смены
		if rec.ShiftID != nil {
			shift, err := i.shiftStore.GetByID(*rec.ShiftID)
			if err != nil || shift == nil {
				logger.WithError(err).Error("ошибка получения смены для уведомления")
				return
			}
			otherID = shift.EmployeeID
		}
	}
	if otherID == "" || otherID == rec.RequesterID {
		return
	}
	err := i.notify.Notify(otherID, models.NotifyShiftChanged, models.NotifyPriorityHigh,
		"Изменение расписания", "Вам назначена смена по одобренному обмену", rec.ID)
	if err != nil {
		logger.WithError(err).Error("ошибка отправки уведомления участнику обмена")
	}
}

func (i impl) GetByID(userID string, role models.UserRole, id string) (approvalapimodels.ApprovalView, error) {
	view := approvalapimodels.ApprovalView{}
	rec, err := i.approvalStore.GetByID(id)
	if err != nil {
		return view, errors.Wrap(err, "ошибка получения заявки")
	}
	if rec == nil {
		return view, apperrors.NewNotFound("заявка не найдена")
	}
	if !role.IsManagement() && rec.RequesterID != userID {
		return view, apperrors.NewForbidden("нет доступа к чужой заявке")
	}
	return approvalapimodels.ApprovalConvert(*rec), nil
}

func (i impl) ListMy(requesterID string, filter approvalapimodels.ApprovalFilter) ([]approvalapimodels.ApprovalView, error) {
	list, err := i.approvalStore.ListByRequester(requesterID, filter)
	if err != nil {
		return nil, errors.Wrap(err, "ошибка получения списка заявок")
	}
	return convertList(list), nil
}

func (i impl) ListPending(filter approvalapimodels.ApprovalFilter) ([]approvalapimodels.ApprovalView, error) {
	list, err := i.approvalStore.ListPending(filter)
	if err != nil {
		return nil, errors.Wrap(err, "ошибка получения списка заявок")
	}
	return convertList(list), nil
}

func convertList(list []dbmodels.ApprovalRequest) []approvalapimodels.ApprovalView {
	result := make([]approvalapimodels.ApprovalView, 0, len(list))
	for _, rec := range list {
		result = append(result, approvalapimodels.ApprovalConvert(rec))
	}
	return result
}

func (i impl) getView(id string) (approvalapimodels.ApprovalView, error) {
	rec, err := i.approvalStore.GetByID(id)
	if err != nil {
		return approvalapimodels.ApprovalView{}, errors.Wrap(err, "ошибка получения заявки")
	}
	if rec == nil {
		return approvalapimodels.ApprovalView{}, apperrors.NewNotFound("заявка не найдена")
	}
	return approvalapimodels.ApprovalConvert(*rec), nil
}
