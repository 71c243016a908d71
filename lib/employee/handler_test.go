package employee

import (
	"fmt"
	"testing"
	"time"
	"wfm-backend/lib/apperrors"
	"wfm-backend/models"
	employeeapimodels "wfm-backend/models/api/employee"
	dbmodels "wfm-backend/models/db"

	"github.com/stretchr/testify/require"
)

type fakeEmployeeStore struct {
	seq       *int
	employees map[string]*dbmodels.Employee
}

func newFakeEmployeeStore() fakeEmployeeStore {
	seq := 0
	return fakeEmployeeStore{seq: &seq, employees: map[string]*dbmodels.Employee{}}
}

func (s fakeEmployeeStore) Create(rec dbmodels.Employee) (string, error) {
	*s.seq++
	rec.ID = fmt.Sprintf("emp-%v", *s.seq)
	stored := rec
	s.employees[rec.ID] = &stored
	return rec.ID, nil
}

func (s fakeEmployeeStore) GetByID(id string) (*dbmodels.Employee, error) {
	rec, ok := s.employees[id]
	if !ok {
		return nil, nil
	}
	view := *rec
	return &view, nil
}

func (s fakeEmployeeStore) GetByEmail(email string) (*dbmodels.Employee, error) {
	for _, rec := range s.employees {
		if rec.Email == email {
			view := *rec
			return &view, nil
		}
	}
	return nil, nil
}

func (s fakeEmployeeStore) Update(id string, updMap map[string]interface{}) error {
	rec := s.employees[id]
	if v, ok := updMap["first_name"].(string); ok {
		rec.FirstName = v
	}
	if v, ok := updMap["last_name"].(string); ok {
		rec.LastName = v
	}
	if v, ok := updMap["role"].(models.UserRole); ok {
		rec.Role = v
	}
	if v, ok := updMap["is_active"].(bool); ok {
		rec.IsActive = v
	}
	return nil
}

func (s fakeEmployeeStore) List(activeOnly bool) ([]dbmodels.Employee, error) {
	list := []dbmodels.Employee{}
	for _, rec := range s.employees {
		if activeOnly && !rec.IsActive {
			continue
		}
		list = append(list, *rec)
	}
	return list, nil
}

func (s fakeEmployeeStore) SetLastLogin(id string, loginTime time.Time) error {
	rec, ok := s.employees[id]
	if ok {
		rec.LastLogin = loginTime
	}
	return nil
}

func createData(email string) employeeapimodels.EmployeeCreateData {
	return employeeapimodels.EmployeeCreateData{
		EmployeeData: employeeapimodels.EmployeeData{
			Email:     email,
			FirstName: "Иван",
			LastName:  "Иванов",
			Role:      models.UserRoleEmployee,
		},
		Password: "secret-1",
	}
}

func TestCreateUniqueEmail(t *testing.T) {
	store := newFakeEmployeeStore()
	handler := impl{store: store}

	view, err := handler.Create(createData("ivanov@example.com"))
	require.NoError(t, err)
	require.True(t, view.IsActive)

	_, err = handler.Create(createData("ivanov@example.com"))
	require.True(t, apperrors.IsKind(err, apperrors.KindConflict))
}

func TestDeactivate(t *testing.T) {
	store := newFakeEmployeeStore()
	handler := impl{store: store}

	view, err := handler.Create(createData("ivanov@example.com"))
	require.NoError(t, err)

	t.Run("собственную учётную запись деактивировать нельзя", func(t *testing.T) {
		_, err := handler.Deactivate(view.ID, view.ID)
		require.True(t, apperrors.IsKind(err, apperrors.KindValidation))
		require.True(t, store.employees[view.ID].IsActive)
	})

	t.Run("несуществующий сотрудник", func(t *testing.T) {
		_, err := handler.Deactivate("admin-1", "emp-unknown")
		require.True(t, apperrors.IsKind(err, apperrors.KindNotFound))
	})

	deactivated, err := handler.Deactivate("admin-1", view.ID)
	require.NoError(t, err)
	require.False(t, deactivated.IsActive)

	// запись сохраняется, удаления нет
	require.NotNil(t, store.employees[view.ID])

	t.Run("деактивированный скрыт из списка активных", func(t *testing.T) {
		active, err := handler.List(true)
		require.NoError(t, err)
		require.Len(t, active, 0)
		all, err := handler.List(false)
		require.NoError(t, err)
		require.Len(t, all, 1)
	})

	t.Run("активация возвращает право входа", func(t *testing.T) {
		restored, err := handler.Activate(view.ID)
		require.NoError(t, err)
		require.True(t, restored.IsActive)
	})
}

func TestChangeRole(t *testing.T) {
	store := newFakeEmployeeStore()
	handler := impl{store: store}

	view, err := handler.Create(createData("ivanov@example.com"))
	require.NoError(t, err)

	changed, err := handler.ChangeRole(view.ID, employeeapimodels.RoleChangeData{Role: models.UserRoleManager})
	require.NoError(t, err)
	require.Equal(t, string(models.UserRoleManager), changed.Role)

	t.Run("неизвестная роль", func(t *testing.T) {
		_, err := handler.ChangeRole(view.ID, employeeapimodels.RoleChangeData{Role: "SUPERVISOR"})
		require.True(t, apperrors.IsKind(err, apperrors.KindValidation))
	})
}
