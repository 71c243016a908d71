package shift

import (
	"fmt"
	"testing"
	"time"
	"wfm-backend/lib/apperrors"
	"wfm-backend/models"
	notificationapimodels "wfm-backend/models/api/notification"
	shiftapimodels "wfm-backend/models/api/shift"
	dbmodels "wfm-backend/models/db"

	"github.com/stretchr/testify/require"
)

type fakeStore struct {
	seq    *int
	shifts map[string]*dbmodels.Shift
}

func (s fakeStore) Create(rec dbmodels.Shift) (string, error) {
	*s.seq++
	rec.ID = fmt.Sprintf("shift-%v", *s.seq)
	stored := rec
	s.shifts[rec.ID] = &stored
	return rec.ID, nil
}

func (s fakeStore) GetByID(id string) (*dbmodels.Shift, error) {
	rec, ok := s.shifts[id]
	if !ok {
		return nil, nil
	}
	view := *rec
	return &view, nil
}

func (s fakeStore) GetByIDForUpdate(id string) (*dbmodels.Shift, error) {
	return s.GetByID(id)
}

func (s fakeStore) Update(id string, updMap map[string]interface{}) error {
	rec := s.shifts[id]
	if v, ok := updMap["employee_id"].(string); ok {
		rec.EmployeeID = v
	}
	if v, ok := updMap["title"].(string); ok {
		rec.Title = v
	}
	if v, ok := updMap["status"].(models.ShiftStatus); ok {
		rec.Status = v
	}
	if v, ok := updMap["overtime_hours"].(float64); ok {
		rec.OvertimeHours = v
	}
	return nil
}

func (s fakeStore) Delete(id string) error {
	delete(s.shifts, id)
	return nil
}

func (s fakeStore) List(filter shiftapimodels.ShiftFilter) ([]dbmodels.Shift, error) {
	list := []dbmodels.Shift{}
	for _, rec := range s.shifts {
		if filter.EmployeeID != "" && rec.EmployeeID != filter.EmployeeID {
			continue
		}
		list = append(list, *rec)
	}
	return list, nil
}

type fakeEmployees struct{}

func (s fakeEmployees) Create(rec dbmodels.Employee) (string, error) { return rec.ID, nil }
func (s fakeEmployees) GetByID(id string) (*dbmodels.Employee, error) {
	return &dbmodels.Employee{BaseModel: dbmodels.BaseModel{ID: id}, IsActive: true}, nil
}
func (s fakeEmployees) GetByEmail(email string) (*dbmodels.Employee, error)   { return nil, nil }
func (s fakeEmployees) Update(id string, updMap map[string]interface{}) error { return nil }
func (s fakeEmployees) List(activeOnly bool) ([]dbmodels.Employee, error)     { return nil, nil }
func (s fakeEmployees) SetLastLogin(id string, loginTime time.Time) error     { return nil }

type silentNotify struct {
	count *int
}

func (n silentNotify) Notify(userID string, nType models.NotificationType, priority models.NotificationPriority, title, body, relatedID string) error {
	*n.count++
	return nil
}
func (n silentNotify) List(userID string, limit int) (notificationapimodels.NotificationList, error) {
	return notificationapimodels.NotificationList{}, nil
}
func (n silentNotify) UnreadCount(userID string) (int64, error) { return 0, nil }
func (n silentNotify) MarkRead(userID, id string) error         { return nil }
func (n silentNotify) MarkAllRead(userID string) error          { return nil }
func (n silentNotify) Delete(userID, id string) error           { return nil }

func newTestHandler(now time.Time) (*impl, fakeStore, *int) {
	seq := 0
	count := 0
	store := fakeStore{seq: &seq, shifts: map[string]*dbmodels.Shift{}}
	handler := &impl{
		now:           func() time.Time { return now },
		store:         store,
		employeeStore: fakeEmployees{},
		notify:        silentNotify{count: &count},
	}
	return handler, store, &count
}

func TestShiftLifecycle(t *testing.T) {
	now := time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC)
	handler, store, notified := newTestHandler(now)

	view, err := handler.Create(shiftapimodels.ShiftData{
		EmployeeID: "emp-1",
		Title:      "Дневная смена",
		StartAt:    now.Add(24 * time.Hour),
		EndAt:      now.Add(32 * time.Hour),
	})
	require.NoError(t, err)
	require.Equal(t, string(models.ShiftScheduled), view.Status)
	require.Equal(t, 1, *notified)

	t.Run("завершение с переработкой", func(t *testing.T) {
		completed, err := handler.Complete(view.ID, shiftapimodels.CompleteData{OvertimeHours: 1.5})
		require.NoError(t, err)
		require.Equal(t, string(models.ShiftCompleted), completed.Status)
		require.InDelta(t, 1.5, store.shifts[view.ID].OvertimeHours, 0.001)
	})

	t.Run("завершённую смену нельзя отменить или изменить", func(t *testing.T) {
		_, err := handler.Cancel(view.ID)
		require.True(t, apperrors.IsKind(err, apperrors.KindInvalidState))
		_, err = handler.Update(view.ID, shiftapimodels.ShiftData{
			EmployeeID: "emp-2",
			Title:      "Другая",
			StartAt:    now.Add(24 * time.Hour),
			EndAt:      now.Add(32 * time.Hour),
		})
		require.True(t, apperrors.IsKind(err, apperrors.KindInvalidState))
	})
}

func TestShiftCancel(t *testing.T) {
	now := time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC)
	handler, _, notified := newTestHandler(now)

	view, err := handler.Create(shiftapimodels.ShiftData{
		EmployeeID: "emp-1",
		Title:      "Дневная смена",
		StartAt:    now.Add(24 * time.Hour),
		EndAt:      now.Add(32 * time.Hour),
	})
	require.NoError(t, err)

	cancelled, err := handler.Cancel(view.ID)
	require.NoError(t, err)
	require.Equal(t, string(models.ShiftCancelled), cancelled.Status)
	// назначение и отмена - два уведомления сотруднику
	require.Equal(t, 2, *notified)

	t.Run("отрицательная переработка", func(t *testing.T) {
		_, err := handler.Complete(view.ID, shiftapimodels.CompleteData{OvertimeHours: -1})
		require.True(t, apperrors.IsKind(err, apperrors.KindValidation))
	})
}

func TestShiftDeleteOnlyScheduled(t *testing.T) {
	now := time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC)
	handler, _, _ := newTestHandler(now)

	view, err := handler.Create(shiftapimodels.ShiftData{
		EmployeeID: "emp-1",
		Title:      "Дневная смена",
		StartAt:    now.Add(-time.Hour),
		EndAt:      now.Add(7 * time.Hour),
	})
	require.NoError(t, err)

	// смена уже идёт
	err = handler.Delete(view.ID)
	require.True(t, apperrors.IsKind(err, apperrors.KindInvalidState))
}

func TestShiftListScoping(t *testing.T) {
	now := time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC)
	handler, _, _ := newTestHandler(now)

	for _, employeeID := range []string{"emp-1", "emp-1", "emp-2"} {
		_, err := handler.Create(shiftapimodels.ShiftData{
			EmployeeID: employeeID,
			Title:      "Смена",
			StartAt:    now.Add(24 * time.Hour),
			EndAt:      now.Add(32 * time.Hour),
		})
		require.NoError(t, err)
	}

	own, err := handler.List("emp-1", models.UserRoleEmployee, shiftapimodels.ShiftFilter{})
	require.NoError(t, err)
	require.Len(t, own, 2)

	all, err := handler.List("mgr-1", models.UserRoleManager, shiftapimodels.ShiftFilter{})
	require.NoError(t, err)
	require.Len(t, all, 3)
}
