package auth

import (
	"testing"
	"time"
	"wfm-backend/config"
	"wfm-backend/lib/apperrors"
	"wfm-backend/models"
	authapimodels "wfm-backend/models/api/auth"
	dbmodels "wfm-backend/models/db"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type fakeEmployeeStore struct {
	employees map[string]*dbmodels.Employee
	lastLogin map[string]time.Time
}

func (s fakeEmployeeStore) Create(rec dbmodels.Employee) (string, error) { return rec.ID, nil }

func (s fakeEmployeeStore) GetByID(id string) (*dbmodels.Employee, error) {
	rec, ok := s.employees[id]
	if !ok {
		return nil, nil
	}
	return rec, nil
}

func (s fakeEmployeeStore) GetByEmail(email string) (*dbmodels.Employee, error) {
	for _, rec := range s.employees {
		if rec.Email == email {
			return rec, nil
		}
	}
	return nil, nil
}

func (s fakeEmployeeStore) Update(id string, updMap map[string]interface{}) error { return nil }
func (s fakeEmployeeStore) List(activeOnly bool) ([]dbmodels.Employee, error)     { return nil, nil }

func (s fakeEmployeeStore) SetLastLogin(id string, loginTime time.Time) error {
	s.lastLogin[id] = loginTime
	return nil
}

func initTestConfig() {
	config.Conf = &config.Configuration{}
	config.Conf.Auth.JWTSecret = "test-secret"
	config.Conf.Auth.JWTExpireInSec = 3600
	config.Conf.Auth.JWTRefreshExpireInSec = 86400
}

func newTestHandler(t *testing.T) (impl, fakeEmployeeStore) {
	t.Helper()
	initTestConfig()
	hash, err := bcrypt.GenerateFromPassword([]byte("secret-1"), bcrypt.MinCost)
	require.NoError(t, err)
	store := fakeEmployeeStore{
		employees: map[string]*dbmodels.Employee{
			"emp-1": {
				BaseModel: dbmodels.BaseModel{ID: "emp-1"},
				Password:  string(hash),
				FirstName: "Иван",
				LastName:  "Иванов",
				Email:     "ivanov@example.com",
				IsActive:  true,
				Role:      models.UserRoleEmployee,
			},
		},
		lastLogin: map[string]time.Time{},
	}
	return impl{employeeStore: store}, store
}

func TestLogin(t *testing.T) {
	handler, store := newTestHandler(t)

	resp, err := handler.Login(authapimodels.LoginRequest{Email: "ivanov@example.com", Password: "secret-1"})
	require.NoError(t, err)
	require.NotEmpty(t, resp.AccessToken)
	require.NotEmpty(t, resp.RefreshToken)
	require.False(t, store.lastLogin["emp-1"].IsZero())

	t.Run("неверный пароль", func(t *testing.T) {
		_, err := handler.Login(authapimodels.LoginRequest{Email: "ivanov@example.com", Password: "wrong"})
		require.True(t, apperrors.IsKind(err, apperrors.KindForbidden))
	})

	t.Run("неизвестная почта", func(t *testing.T) {
		_, err := handler.Login(authapimodels.LoginRequest{Email: "petrov@example.com", Password: "secret-1"})
		require.True(t, apperrors.IsKind(err, apperrors.KindForbidden))
	})
}

func TestLoginDeactivatedEmployee(t *testing.T) {
	handler, store := newTestHandler(t)
	store.employees["emp-1"].IsActive = false

	_, err := handler.Login(authapimodels.LoginRequest{Email: "ivanov@example.com", Password: "secret-1"})
	require.True(t, apperrors.IsKind(err, apperrors.KindForbidden))

	t.Run("после повторной активации вход работает", func(t *testing.T) {
		store.employees["emp-1"].IsActive = true
		resp, err := handler.Login(authapimodels.LoginRequest{Email: "ivanov@example.com", Password: "secret-1"})
		require.NoError(t, err)
		require.NotEmpty(t, resp.AccessToken)
	})
}

func TestRefreshDeactivatedEmployee(t *testing.T) {
	handler, store := newTestHandler(t)

	resp, err := handler.Login(authapimodels.LoginRequest{Email: "ivanov@example.com", Password: "secret-1"})
	require.NoError(t, err)

	// деактивация отрезает и обновление токена
	store.employees["emp-1"].IsActive = false
	_, err = handler.Refresh(authapimodels.JWTRefreshRequest{RefreshToken: resp.RefreshToken})
	require.True(t, apperrors.IsKind(err, apperrors.KindForbidden))
}
