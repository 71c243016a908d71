package approval

import (
	"fmt"
	"testing"
	"time"
	"wfm-backend/lib/apperrors"
	"wfm-backend/models"
	approvalapimodels "wfm-backend/models/api/approval"
	notificationapimodels "wfm-backend/models/api/notification"
	shiftapimodels "wfm-backend/models/api/shift"
	dbmodels "wfm-backend/models/db"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

type approvalFixture struct {
	seq       int
	approvals map[string]*dbmodels.ApprovalRequest
	shifts    map[string]*dbmodels.Shift
}

func newApprovalFixture() *approvalFixture {
	return &approvalFixture{
		approvals: map[string]*dbmodels.ApprovalRequest{},
		shifts:    map[string]*dbmodels.Shift{},
	}
}

type fakeApprovalStore struct {
	f *approvalFixture
}

func (s fakeApprovalStore) Create(rec dbmodels.ApprovalRequest) (string, error) {
	s.f.seq++
	rec.ID = fmt.Sprintf("approval-%v", s.f.seq)
	stored := rec
	s.f.approvals[rec.ID] = &stored
	return rec.ID, nil
}

func (s fakeApprovalStore) GetByID(id string) (*dbmodels.ApprovalRequest, error) {
	rec, ok := s.f.approvals[id]
	if !ok {
		return nil, nil
	}
	view := *rec
	return &view, nil
}

func (s fakeApprovalStore) Resolve(id string, updMap map[string]interface{}) (bool, error) {
	rec, ok := s.f.approvals[id]
	if !ok || rec.Status != models.ApprovalStatusPending {
		return false, nil
	}
	rec.Status = updMap["status"].(models.ApprovalStatus)
	if approverID, ok := updMap["approver_id"].(string); ok {
		rec.ApproverID = &approverID
	}
	if resolvedAt, ok := updMap["resolved_at"].(time.Time); ok {
		rec.ResolvedAt = &resolvedAt
	}
	if reason, ok := updMap["rejection_reason"].(string); ok {
		rec.RejectionReason = reason
	}
	return true, nil
}

func (s fakeApprovalStore) ListByRequester(requesterID string, filter approvalapimodels.ApprovalFilter) ([]dbmodels.ApprovalRequest, error) {
	list := []dbmodels.ApprovalRequest{}
	for _, rec := range s.f.approvals {
		if rec.RequesterID == requesterID {
			list = append(list, *rec)
		}
	}
	return list, nil
}

func (s fakeApprovalStore) ListPending(filter approvalapimodels.ApprovalFilter) ([]dbmodels.ApprovalRequest, error) {
	list := []dbmodels.ApprovalRequest{}
	for _, rec := range s.f.approvals {
		if rec.Status == models.ApprovalStatusPending {
			list = append(list, *rec)
		}
	}
	return list, nil
}

type fakeShiftStore struct {
	f *approvalFixture
	// имитация сбоя БД при переназначении смены
	failUpdate bool
}

func (s fakeShiftStore) Create(rec dbmodels.Shift) (string, error) {
	stored := rec
	s.f.shifts[rec.ID] = &stored
	return rec.ID, nil
}

func (s fakeShiftStore) GetByID(id string) (*dbmodels.Shift, error) {
	rec, ok := s.f.shifts[id]
	if !ok {
		return nil, nil
	}
	view := *rec
	return &view, nil
}

func (s fakeShiftStore) GetByIDForUpdate(id string) (*dbmodels.Shift, error) {
	return s.GetByID(id)
}

func (s fakeShiftStore) Update(id string, updMap map[string]interface{}) error {
	if s.failUpdate {
		return errors.New("connection reset by peer")
	}
	rec, ok := s.f.shifts[id]
	if !ok {
		return errors.New("запись не найдена")
	}
	if employeeID, exist := updMap["employee_id"].(string); exist {
		rec.EmployeeID = employeeID
	}
	return nil
}

func (s fakeShiftStore) Delete(id string) error {
	delete(s.f.shifts, id)
	return nil
}

func (s fakeShiftStore) List(filter shiftapimodels.ShiftFilter) ([]dbmodels.Shift, error) {
	return nil, nil
}

type fakeRestrictedStore struct {
	periods []dbmodels.RestrictedPeriod
}

func (s fakeRestrictedStore) Create(rec dbmodels.RestrictedPeriod) (string, error) { return rec.ID, nil }
func (s fakeRestrictedStore) GetByID(id string) (*dbmodels.RestrictedPeriod, error) {
	return nil, nil
}
func (s fakeRestrictedStore) Update(id string, updMap map[string]interface{}) error { return nil }
func (s fakeRestrictedStore) Delete(id string) error                                { return nil }
func (s fakeRestrictedStore) ListActive() ([]dbmodels.RestrictedPeriod, error) {
	return s.periods, nil
}
func (s fakeRestrictedStore) List() ([]dbmodels.RestrictedPeriod, error) {
	return s.periods, nil
}

type fakeEmployeeStore struct {
	employees map[string]*dbmodels.Employee
}

func (s fakeEmployeeStore) Create(rec dbmodels.Employee) (string, error) { return rec.ID, nil }
func (s fakeEmployeeStore) GetByID(id string) (*dbmodels.Employee, error) {
	rec, ok := s.employees[id]
	if !ok {
		return nil, nil
	}
	return rec, nil
}
func (s fakeEmployeeStore) GetByEmail(email string) (*dbmodels.Employee, error) { return nil, nil }
func (s fakeEmployeeStore) Update(id string, updMap map[string]interface{}) error {
	return nil
}
func (s fakeEmployeeStore) List(activeOnly bool) ([]dbmodels.Employee, error) { return nil, nil }
func (s fakeEmployeeStore) SetLastLogin(id string, loginTime time.Time) error { return nil }

type notifyCall struct {
	userID string
	nType  models.NotificationType
}

type fakeNotify struct {
	calls *[]notifyCall
}

func (n fakeNotify) Notify(userID string, nType models.NotificationType, priority models.NotificationPriority, title, body, relatedID string) error {
	*n.calls = append(*n.calls, notifyCall{userID: userID, nType: nType})
	return nil
}

func (n fakeNotify) List(userID string, limit int) (notificationapimodels.NotificationList, error) {
	return notificationapimodels.NotificationList{}, nil
}
func (n fakeNotify) UnreadCount(userID string) (int64, error) { return 0, nil }
func (n fakeNotify) MarkRead(userID, id string) error         { return nil }
func (n fakeNotify) MarkAllRead(userID string) error          { return nil }
func (n fakeNotify) Delete(userID, id string) error           { return nil }

func newTestImpl(f *approvalFixture, now time.Time) (*impl, *[]notifyCall) {
	calls := &[]notifyCall{}
	approvals := fakeApprovalStore{f: f}
	shifts := fakeShiftStore{f: f}
	handler := &impl{
		now:             func() time.Time { return now },
		approvalStore:   approvals,
		shiftStore:      shifts,
		restrictedStore: fakeRestrictedStore{},
		employeeStore:   fakeEmployeeStore{employees: map[string]*dbmodels.Employee{}},
		notify:          fakeNotify{calls: calls},
		inTx: func(fc func(s TxStores) error) error {
			return fc(TxStores{Approvals: approvals, Shifts: shifts})
		},
	}
	return handler, calls
}

func addShift(f *approvalFixture, id, employeeID string, startAt, endAt time.Time) {
	f.shifts[id] = &dbmodels.Shift{
		BaseModel:  dbmodels.BaseModel{ID: id},
		EmployeeID: employeeID,
		Title:      "Смена",
		StartAt:    startAt,
		EndAt:      endAt,
		Status:     models.ShiftScheduled,
	}
}

func TestSubmitTimeOff(t *testing.T) {
	now := time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC)
	handler, _ := newTestImpl(newApprovalFixture(), now)

	view, err := handler.SubmitTimeOff("emp-1", approvalapimodels.TimeOffData{
		DateFrom: "2025-07-01",
		DateTo:   "2025-07-14",
		Reason:   "отпуск",
	})
	require.NoError(t, err)
	require.Equal(t, string(models.ApprovalStatusPending), view.Status)
	require.Equal(t, "2025-07-01", view.DateFrom)

	t.Run("даты перепутаны", func(t *testing.T) {
		_, err := handler.SubmitTimeOff("emp-1", approvalapimodels.TimeOffData{
			DateFrom: "2025-07-14",
			DateTo:   "2025-07-01",
			Reason:   "отпуск",
		})
		require.True(t, apperrors.IsKind(err, apperrors.KindValidation))
	})
}

func TestSubmitTimeOffRestrictedPeriod(t *testing.T) {
	now := time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC)
	handler, _ := newTestImpl(newApprovalFixture(), now)
	handler.restrictedStore = fakeRestrictedStore{periods: []dbmodels.RestrictedPeriod{
		{
			Title:    "Высокий сезон",
			DateFrom: time.Date(2025, 7, 10, 0, 0, 0, 0, time.UTC),
			DateTo:   time.Date(2025, 8, 20, 0, 0, 0, 0, time.UTC),
			IsActive: true,
		},
	}}

	_, err := handler.SubmitTimeOff("emp-1", approvalapimodels.TimeOffData{
		DateFrom: "2025-07-01",
		DateTo:   "2025-07-14",
		Reason:   "отпуск",
	})
	require.True(t, apperrors.IsKind(err, apperrors.KindPolicy))

	// период без пересечения проходит
	_, err = handler.SubmitTimeOff("emp-1", approvalapimodels.TimeOffData{
		DateFrom: "2025-09-01",
		DateTo:   "2025-09-14",
		Reason:   "отпуск",
	})
	require.NoError(t, err)
}

func TestSubmitShiftSwap(t *testing.T) {
	now := time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC)
	f := newApprovalFixture()
	handler, _ := newTestImpl(f, now)
	addShift(f, "shift-1", "emp-1", now.Add(24*time.Hour), now.Add(32*time.Hour))
	addShift(f, "shift-2", "emp-2", now.Add(48*time.Hour), now.Add(56*time.Hour))
	addShift(f, "shift-old", "emp-1", now.Add(-48*time.Hour), now.Add(-40*time.Hour))

	t.Run("чужая смена", func(t *testing.T) {
		_, err := handler.SubmitShiftSwap("emp-1", approvalapimodels.ShiftSwapData{
			ShiftID:            "shift-2",
			CounterpartShiftID: "shift-1",
		})
		require.True(t, apperrors.IsKind(err, apperrors.KindForbidden))
	})

	t.Run("завершённая смена", func(t *testing.T) {
		_, err := handler.SubmitShiftSwap("emp-1", approvalapimodels.ShiftSwapData{
			ShiftID:            "shift-old",
			CounterpartShiftID: "shift-2",
		})
		require.True(t, apperrors.IsKind(err, apperrors.KindInvalidState))
	})

	t.Run("встречная смена заявителя", func(t *testing.T) {
		addShift(f, "shift-own", "emp-1", now.Add(72*time.Hour), now.Add(80*time.Hour))
		_, err := handler.SubmitShiftSwap("emp-1", approvalapimodels.ShiftSwapData{
			ShiftID:            "shift-1",
			CounterpartShiftID: "shift-own",
		})
		require.True(t, apperrors.IsKind(err, apperrors.KindValidation))
	})

	view, err := handler.SubmitShiftSwap("emp-1", approvalapimodels.ShiftSwapData{
		ShiftID:            "shift-1",
		CounterpartShiftID: "shift-2",
	})
	require.NoError(t, err)
	require.Equal(t, string(models.ApprovalKindShiftSwap), view.Kind)
	require.Equal(t, "shift-1", view.ShiftID)
}

func TestSubmitShiftSwapCoverage(t *testing.T) {
	now := time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC)
	f := newApprovalFixture()
	handler, _ := newTestImpl(f, now)
	handler.employeeStore = fakeEmployeeStore{employees: map[string]*dbmodels.Employee{
		"emp-2": {BaseModel: dbmodels.BaseModel{ID: "emp-2"}, IsActive: true},
		"emp-3": {BaseModel: dbmodels.BaseModel{ID: "emp-3"}, IsActive: false},
	}}
	addShift(f, "shift-1", "emp-1", now.Add(24*time.Hour), now.Add(32*time.Hour))

	t.Run("неактивный подменяющий", func(t *testing.T) {
		_, err := handler.SubmitShiftSwap("emp-1", approvalapimodels.ShiftSwapData{
			ShiftID:         "shift-1",
			CoverageOnly:    true,
			CoverEmployeeID: "emp-3",
		})
		require.True(t, apperrors.IsKind(err, apperrors.KindValidation))
	})

	view, err := handler.SubmitShiftSwap("emp-1", approvalapimodels.ShiftSwapData{
		ShiftID:         "shift-1",
		CoverageOnly:    true,
		CoverEmployeeID: "emp-2",
	})
	require.NoError(t, err)
	require.True(t, view.CoverageOnly)
}

func TestResolve(t *testing.T) {
	now := time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC)
	f := newApprovalFixture()
	handler, calls := newTestImpl(f, now)

	view, err := handler.SubmitTimeOff("emp-1", approvalapimodels.TimeOffData{
		DateFrom: "2025-07-01",
		DateTo:   "2025-07-14",
		Reason:   "отпуск",
	})
	require.NoError(t, err)

	t.Run("собственную заявку рассматривать нельзя", func(t *testing.T) {
		_, err := handler.Approve("emp-1", view.ID)
		require.True(t, apperrors.IsKind(err, apperrors.KindForbidden))
	})

	t.Run("причина отклонения обязательна", func(t *testing.T) {
		_, err := handler.Reject("mgr-1", view.ID, approvalapimodels.RejectData{})
		require.True(t, apperrors.IsKind(err, apperrors.KindValidation))
	})

	resolved, err := handler.Approve("mgr-1", view.ID)
	require.NoError(t, err)
	require.Equal(t, string(models.ApprovalStatusApproved), resolved.Status)
	require.Equal(t, "mgr-1", resolved.ApproverID)
	require.Len(t, *calls, 1)
	require.Equal(t, "emp-1", (*calls)[0].userID)

	t.Run("повторное рассмотрение отклоняется без дубля уведомления", func(t *testing.T) {
		_, err := handler.Approve("mgr-2", view.ID)
		require.True(t, apperrors.IsKind(err, apperrors.KindInvalidState))
		_, err = handler.Reject("mgr-2", view.ID, approvalapimodels.RejectData{RejectionReason: "поздно"})
		require.True(t, apperrors.IsKind(err, apperrors.KindInvalidState))
		require.Len(t, *calls, 1)
	})

	t.Run("несуществующая заявка", func(t *testing.T) {
		_, err := handler.Approve("mgr-1", "approval-unknown")
		require.True(t, apperrors.IsKind(err, apperrors.KindNotFound))
	})
}

func TestRejectKeepsReason(t *testing.T) {
	now := time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC)
	handler, _ := newTestImpl(newApprovalFixture(), now)

	view, err := handler.SubmitTimeOff("emp-1", approvalapimodels.TimeOffData{
		DateFrom: "2025-07-01",
		DateTo:   "2025-07-14",
		Reason:   "отпуск",
	})
	require.NoError(t, err)

	rejected, err := handler.Reject("mgr-1", view.ID, approvalapimodels.RejectData{RejectionReason: "не сезон"})
	require.NoError(t, err)
	require.Equal(t, string(models.ApprovalStatusRejected), rejected.Status)
	require.Equal(t, "не сезон", rejected.RejectionReason)
}

func TestApproveSwapReassignsShifts(t *testing.T) {
	now := time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC)
	f := newApprovalFixture()
	handler, calls := newTestImpl(f, now)
	addShift(f, "shift-1", "emp-1", now.Add(24*time.Hour), now.Add(32*time.Hour))
	addShift(f, "shift-2", "emp-2", now.Add(48*time.Hour), now.Add(56*time.Hour))

	view, err := handler.SubmitShiftSwap("emp-1", approvalapimodels.ShiftSwapData{
		ShiftID:            "shift-1",
		CounterpartShiftID: "shift-2",
	})
	require.NoError(t, err)

	_, err = handler.Approve("mgr-1", view.ID)
	require.NoError(t, err)
	require.Equal(t, "emp-2", f.shifts["shift-1"].EmployeeID)
	require.Equal(t, "emp-1", f.shifts["shift-2"].EmployeeID)

	// заявитель и новый исполнитель исходной смены получают уведомления
	require.Len(t, *calls, 2)
}

func TestApproveCoverageAssignsCover(t *testing.T) {
	now := time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC)
	f := newApprovalFixture()
	handler, _ := newTestImpl(f, now)
	handler.employeeStore = fakeEmployeeStore{employees: map[string]*dbmodels.Employee{
		"emp-2": {BaseModel: dbmodels.BaseModel{ID: "emp-2"}, IsActive: true},
	}}
	addShift(f, "shift-1", "emp-1", now.Add(24*time.Hour), now.Add(32*time.Hour))

	view, err := handler.SubmitShiftSwap("emp-1", approvalapimodels.ShiftSwapData{
		ShiftID:         "shift-1",
		CoverageOnly:    true,
		CoverEmployeeID: "emp-2",
	})
	require.NoError(t, err)

	_, err = handler.Approve("mgr-1", view.ID)
	require.NoError(t, err)
	require.Equal(t, "emp-2", f.shifts["shift-1"].EmployeeID)
}

func TestApproveSwapRollsBackOnFailure(t *testing.T) {
	now := time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC)
	f := newApprovalFixture()
	handler, calls := newTestImpl(f, now)
	addShift(f, "shift-1", "emp-1", now.Add(24*time.Hour), now.Add(32*time.Hour))
	addShift(f, "shift-2", "emp-2", now.Add(48*time.Hour), now.Add(56*time.Hour))

	view, err := handler.SubmitShiftSwap("emp-1", approvalapimodels.ShiftSwapData{
		ShiftID:            "shift-1",
		CounterpartShiftID: "shift-2",
	})
	require.NoError(t, err)

	// переназначение падает, транзакция откатывается и заявка
	// остаётся на рассмотрении, уведомления не отправляются
	approvals := fakeApprovalStore{f: f}
	handler.inTx = func(fc func(s TxStores) error) error {
		snapshot := map[string]dbmodels.ApprovalRequest{}
		for id, rec := range f.approvals {
			snapshot[id] = *rec
		}
		err := fc(TxStores{Approvals: approvals, Shifts: fakeShiftStore{f: f, failUpdate: true}})
		if err != nil {
			for id, rec := range snapshot {
				restored := rec
				f.approvals[id] = &restored
			}
		}
		return err
	}

	_, err = handler.Approve("mgr-1", view.ID)
	require.Error(t, err)
	require.Equal(t, models.ApprovalStatusPending, f.approvals[view.ID].Status)
	require.Equal(t, "emp-1", f.shifts["shift-1"].EmployeeID)
	require.Len(t, *calls, 0)
}

func TestApproveSwapFinishedShift(t *testing.T) {
	now := time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC)
	f := newApprovalFixture()
	handler, _ := newTestImpl(f, now)
	addShift(f, "shift-1", "emp-1", now.Add(24*time.Hour), now.Add(32*time.Hour))
	addShift(f, "shift-2", "emp-2", now.Add(48*time.Hour), now.Add(56*time.Hour))

	view, err := handler.SubmitShiftSwap("emp-1", approvalapimodels.ShiftSwapData{
		ShiftID:            "shift-1",
		CounterpartShiftID: "shift-2",
	})
	require.NoError(t, err)

	// к моменту согласования встречная смена отменена
	f.shifts["shift-2"].Status = models.ShiftCancelled

	_, err = handler.Approve("mgr-1", view.ID)
	require.True(t, apperrors.IsKind(err, apperrors.KindInvalidState))
}

func TestGetByIDAccess(t *testing.T) {
	now := time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC)
	handler, _ := newTestImpl(newApprovalFixture(), now)

	view, err := handler.SubmitTimeOff("emp-1", approvalapimodels.TimeOffData{
		DateFrom: "2025-07-01",
		DateTo:   "2025-07-14",
		Reason:   "отпуск",
	})
	require.NoError(t, err)

	_, err = handler.GetByID("emp-2", models.UserRoleEmployee, view.ID)
	require.True(t, apperrors.IsKind(err, apperrors.KindForbidden))

	_, err = handler.GetByID("emp-2", models.UserRoleManager, view.ID)
	require.NoError(t, err)

	_, err = handler.GetByID("emp-1", models.UserRoleEmployee, view.ID)
	require.NoError(t, err)
}
