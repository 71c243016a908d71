package worksession

import (
	"fmt"
	"testing"
	"time"
	"wfm-backend/lib/apperrors"
	"wfm-backend/models"
	sessionapimodels "wfm-backend/models/api/worksession"
	dbmodels "wfm-backend/models/db"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

// общее состояние фейковых хранилищ, имитирует поведение БД
// вместе с частичным уникальным индексом по открытой смене
type sessionFixture struct {
	seq       int
	sessions  map[string]*dbmodels.WorkSession
	summaries map[string]*dbmodels.WorkSummary
}

func newSessionFixture() *sessionFixture {
	return &sessionFixture{
		sessions:  map[string]*dbmodels.WorkSession{},
		summaries: map[string]*dbmodels.WorkSummary{},
	}
}

type fakeSessionStore struct {
	f *sessionFixture
}

func (s fakeSessionStore) Create(rec dbmodels.WorkSession) (string, error) {
	if rec.Status == models.SessionCheckedIn {
		for _, existed := range s.f.sessions {
			if existed.EmployeeID == rec.EmployeeID && existed.Status == models.SessionCheckedIn {
				return "", errors.New(`duplicate key value violates unique constraint "idx_active_work_session"`)
			}
		}
	}
	s.f.seq++
	rec.ID = fmt.Sprintf("session-%v", s.f.seq)
	stored := rec
	s.f.sessions[rec.ID] = &stored
	return rec.ID, nil
}

func (s fakeSessionStore) GetByID(id string) (*dbmodels.WorkSession, error) {
	rec, ok := s.f.sessions[id]
	if !ok {
		return nil, nil
	}
	view := *rec
	view.Summary = s.f.summaries[id]
	return &view, nil
}

func (s fakeSessionStore) GetActiveForUpdate(employeeID string) (*dbmodels.WorkSession, error) {
	return s.GetActive(employeeID)
}

func (s fakeSessionStore) GetActive(employeeID string) (*dbmodels.WorkSession, error) {
	for _, rec := range s.f.sessions {
		if rec.EmployeeID == employeeID && rec.Status == models.SessionCheckedIn {
			view := *rec
			return &view, nil
		}
	}
	return nil, nil
}

func (s fakeSessionStore) Close(id string, updMap map[string]interface{}) (bool, error) {
	rec, ok := s.f.sessions[id]
	if !ok || rec.Status != models.SessionCheckedIn {
		return false, nil
	}
	rec.Status = models.SessionCheckedOut
	if checkOutTime, ok := updMap["check_out_time"].(time.Time); ok {
		rec.CheckOutTime = &checkOutTime
	}
	if lat, ok := updMap["check_out_lat"].(float64); ok {
		rec.CheckOutLat = &lat
	}
	if lon, ok := updMap["check_out_lon"].(float64); ok {
		rec.CheckOutLon = &lon
	}
	if notes, ok := updMap["notes"].(string); ok {
		rec.Notes = notes
	}
	if autoClosed, ok := updMap["auto_closed"].(bool); ok {
		rec.AutoClosed = autoClosed
	}
	return true, nil
}

func (s fakeSessionStore) List(filter sessionapimodels.SessionFilter) ([]dbmodels.WorkSession, error) {
	list := []dbmodels.WorkSession{}
	for _, rec := range s.f.sessions {
		if filter.EmployeeID != "" && rec.EmployeeID != filter.EmployeeID {
			continue
		}
		list = append(list, *rec)
	}
	return list, nil
}

func (s fakeSessionStore) ListStale(olderThan time.Time) ([]dbmodels.WorkSession, error) {
	list := []dbmodels.WorkSession{}
	for _, rec := range s.f.sessions {
		if rec.Status == models.SessionCheckedIn && rec.CheckInTime.Before(olderThan) {
			list = append(list, *rec)
		}
	}
	return list, nil
}

type fakeSummaryStore struct {
	f *sessionFixture
}

func (s fakeSummaryStore) Create(rec dbmodels.WorkSummary) (string, error) {
	if _, exist := s.f.summaries[rec.SessionID]; exist {
		return "", errors.New("duplicate key value violates unique constraint")
	}
	s.f.seq++
	rec.ID = fmt.Sprintf("summary-%v", s.f.seq)
	stored := rec
	s.f.summaries[rec.SessionID] = &stored
	return rec.ID, nil
}

func (s fakeSummaryStore) GetBySessionID(sessionID string) (*dbmodels.WorkSummary, error) {
	rec, ok := s.f.summaries[sessionID]
	if !ok {
		return nil, nil
	}
	view := *rec
	return &view, nil
}

type fakeSiteStore struct {
	sites map[string]*dbmodels.Site
}

func (s fakeSiteStore) Create(rec dbmodels.Site) (string, error) {
	s.sites[rec.ID] = &rec
	return rec.ID, nil
}

func (s fakeSiteStore) GetByID(id string) (*dbmodels.Site, error) {
	rec, ok := s.sites[id]
	if !ok {
		return nil, nil
	}
	return rec, nil
}

func (s fakeSiteStore) Update(id string, updMap map[string]interface{}) error {
	return nil
}

func (s fakeSiteStore) List(activeOnly bool) ([]dbmodels.Site, error) {
	return nil, nil
}

func newTestImpl(f *sessionFixture, sites map[string]*dbmodels.Site, now *time.Time) impl {
	sessions := fakeSessionStore{f: f}
	summaries := fakeSummaryStore{f: f}
	return impl{
		now:          func() time.Time { return *now },
		sessionStore: sessions,
		summaryStore: summaries,
		siteStore:    fakeSiteStore{sites: sites},
		inTx: func(fc func(s TxStores) error) error {
			return fc(TxStores{Sessions: sessions, Summaries: summaries})
		},
	}
}

func activeSite(id string) *dbmodels.Site {
	return &dbmodels.Site{
		BaseModel: dbmodels.BaseModel{ID: id},
		Name:      "Офис на Тверской",
		IsActive:  true,
	}
}

func checkInData(siteID string) sessionapimodels.CheckInData {
	return sessionapimodels.CheckInData{
		SiteID: siteID,
		Coords: &sessionapimodels.GeoPoint{Lat: 55.76, Lon: 37.61},
	}
}

func checkOutData() sessionapimodels.CheckOutData {
	return sessionapimodels.CheckOutData{
		Coords: &sessionapimodels.GeoPoint{Lat: 55.76, Lon: 37.61},
	}
}

func TestCheckIn(t *testing.T) {
	now := time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC)
	sites := map[string]*dbmodels.Site{"site-1": activeSite("site-1")}
	handler := newTestImpl(newSessionFixture(), sites, &now)

	view, err := handler.CheckIn("emp-1", checkInData("site-1"))
	require.NoError(t, err)
	require.Equal(t, string(models.SessionCheckedIn), view.Status)
	require.Equal(t, "emp-1", view.EmployeeID)
	require.Equal(t, now, view.CheckInTime)

	t.Run("повторная отметка прихода отклоняется", func(t *testing.T) {
		_, err := handler.CheckIn("emp-1", checkInData("site-1"))
		require.True(t, apperrors.IsKind(err, apperrors.KindConflict))
	})

	t.Run("другой сотрудник открывает смену независимо", func(t *testing.T) {
		view, err := handler.CheckIn("emp-2", checkInData("site-1"))
		require.NoError(t, err)
		require.Equal(t, "emp-2", view.EmployeeID)
	})
}

func TestCheckInRace(t *testing.T) {
	// проверка открытой смены ничего не нашла, но к моменту вставки
	// запись уже появилась - конфликт закрывает уникальный индекс
	now := time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC)
	f := newSessionFixture()
	sites := map[string]*dbmodels.Site{"site-1": activeSite("site-1")}
	handler := newTestImpl(f, sites, &now)
	sessions := fakeSessionStore{f: f}
	handler.inTx = func(fc func(s TxStores) error) error {
		return fc(TxStores{Sessions: racySessionStore{fakeSessionStore: sessions}, Summaries: fakeSummaryStore{f: f}})
	}

	_, err := handler.CheckIn("emp-1", checkInData("site-1"))
	require.NoError(t, err)
	_, err = handler.CheckIn("emp-1", checkInData("site-1"))
	require.True(t, apperrors.IsKind(err, apperrors.KindConflict))
}

type racySessionStore struct {
	fakeSessionStore
}

func (s racySessionStore) GetActiveForUpdate(employeeID string) (*dbmodels.WorkSession, error) {
	return nil, nil
}

func TestCheckInSitePolicies(t *testing.T) {
	now := time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC)
	geoLat, geoLon, radius := 55.76, 37.61, 100

	inactive := activeSite("site-inactive")
	inactive.IsActive = false

	fenced := activeSite("site-fenced")
	fenced.GeoLat, fenced.GeoLon, fenced.GeoRadiusM = &geoLat, &geoLon, &radius

	photoSite := activeSite("site-photo")
	photoSite.PhotoRequired = true

	sites := map[string]*dbmodels.Site{
		"site-inactive": inactive,
		"site-fenced":   fenced,
		"site-photo":    photoSite,
	}
	handler := newTestImpl(newSessionFixture(), sites, &now)

	t.Run("неизвестный объект", func(t *testing.T) {
		_, err := handler.CheckIn("emp-1", checkInData("site-unknown"))
		require.True(t, apperrors.IsKind(err, apperrors.KindNotFound))
	})

	t.Run("неактивный объект", func(t *testing.T) {
		_, err := handler.CheckIn("emp-1", checkInData("site-inactive"))
		require.True(t, apperrors.IsKind(err, apperrors.KindPolicy))
	})

	t.Run("отметка вне геозоны", func(t *testing.T) {
		data := checkInData("site-fenced")
		data.Coords = &sessionapimodels.GeoPoint{Lat: 55.80, Lon: 37.61}
		_, err := handler.CheckIn("emp-1", data)
		require.True(t, apperrors.IsKind(err, apperrors.KindPolicy))
	})

	t.Run("отметка внутри геозоны", func(t *testing.T) {
		_, err := handler.CheckIn("emp-1", checkInData("site-fenced"))
		require.NoError(t, err)
	})

	t.Run("объект требует фото", func(t *testing.T) {
		_, err := handler.CheckIn("emp-2", checkInData("site-photo"))
		require.True(t, apperrors.IsKind(err, apperrors.KindPolicy))
	})

	t.Run("некорректные координаты", func(t *testing.T) {
		data := checkInData("site-fenced")
		data.Coords = &sessionapimodels.GeoPoint{Lat: 120, Lon: 37.61}
		_, err := handler.CheckIn("emp-3", data)
		require.True(t, apperrors.IsKind(err, apperrors.KindValidation))
	})
}

func TestCheckOut(t *testing.T) {
	now := time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC)
	sites := map[string]*dbmodels.Site{"site-1": activeSite("site-1")}
	handler := newTestImpl(newSessionFixture(), sites, &now)

	t.Run("нет открытой смены", func(t *testing.T) {
		_, err := handler.CheckOut("emp-1", checkOutData())
		require.True(t, apperrors.IsKind(err, apperrors.KindInvalidState))
	})

	_, err := handler.CheckIn("emp-1", checkInData("site-1"))
	require.NoError(t, err)

	now = now.Add(8 * time.Hour)
	view, err := handler.CheckOut("emp-1", checkOutData())
	require.NoError(t, err)
	require.Equal(t, string(models.SessionCheckedOut), view.Status)
	require.NotNil(t, view.CheckOutTime)
	require.Equal(t, 8.0, view.DurationH)

	t.Run("после закрытия можно открыть новую смену", func(t *testing.T) {
		next, err := handler.CheckIn("emp-1", checkInData("site-1"))
		require.NoError(t, err)
		require.NotEqual(t, view.ID, next.ID)
	})
}

func TestCheckOutNotesAppend(t *testing.T) {
	now := time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC)
	sites := map[string]*dbmodels.Site{"site-1": activeSite("site-1")}
	handler := newTestImpl(newSessionFixture(), sites, &now)

	data := checkInData("site-1")
	data.Notes = "ключи у охраны"
	_, err := handler.CheckIn("emp-1", data)
	require.NoError(t, err)

	out := checkOutData()
	out.Notes = "окно на складе не закрывается"
	view, err := handler.CheckOut("emp-1", out)
	require.NoError(t, err)
	// заметка прихода не теряется при закрытии смены
	require.Equal(t, "ключи у охраны\nокно на складе не закрывается", view.Notes)

	t.Run("без заметки прихода", func(t *testing.T) {
		_, err := handler.CheckIn("emp-2", checkInData("site-1"))
		require.NoError(t, err)
		out := checkOutData()
		out.Notes = "всё в порядке"
		view, err := handler.CheckOut("emp-2", out)
		require.NoError(t, err)
		require.Equal(t, "всё в порядке", view.Notes)
	})
}

func TestCheckOutTimeClamp(t *testing.T) {
	// рассинхрон часов не должен дать отрицательную длительность
	now := time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC)
	sites := map[string]*dbmodels.Site{"site-1": activeSite("site-1")}
	handler := newTestImpl(newSessionFixture(), sites, &now)

	_, err := handler.CheckIn("emp-1", checkInData("site-1"))
	require.NoError(t, err)

	now = now.Add(-time.Hour)
	view, err := handler.CheckOut("emp-1", checkOutData())
	require.NoError(t, err)
	require.Equal(t, 0.0, view.DurationH)
}

func TestCheckOutWithSummary(t *testing.T) {
	now := time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC)
	sites := map[string]*dbmodels.Site{"site-1": activeSite("site-1")}
	handler := newTestImpl(newSessionFixture(), sites, &now)

	_, err := handler.CheckIn("emp-1", checkInData("site-1"))
	require.NoError(t, err)

	data := checkOutData()
	data.Summary = &sessionapimodels.WorkSummaryData{
		Notes: "вымыты окна",
		ProductUsages: []sessionapimodels.ProductUsageData{
			{ProductID: "prod-1", Quantity: 2},
		},
	}
	view, err := handler.CheckOut("emp-1", data)
	require.NoError(t, err)
	require.NotNil(t, view.Summary)
	require.Equal(t, "вымыты окна", view.Summary.Notes)
	require.Len(t, view.Summary.ProductUsages, 1)
}

func TestAttachSummary(t *testing.T) {
	now := time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC)
	sites := map[string]*dbmodels.Site{"site-1": activeSite("site-1")}
	handler := newTestImpl(newSessionFixture(), sites, &now)

	open, err := handler.CheckIn("emp-1", checkInData("site-1"))
	require.NoError(t, err)

	summary := sessionapimodels.WorkSummaryData{Notes: "уборка завершена"}

	t.Run("смена ещё открыта", func(t *testing.T) {
		_, err := handler.AttachSummary("emp-1", open.ID, summary)
		require.True(t, apperrors.IsKind(err, apperrors.KindInvalidState))
	})

	now = now.Add(4 * time.Hour)
	closed, err := handler.CheckOut("emp-1", checkOutData())
	require.NoError(t, err)

	t.Run("чужая смена", func(t *testing.T) {
		_, err := handler.AttachSummary("emp-2", closed.ID, summary)
		require.True(t, apperrors.IsKind(err, apperrors.KindForbidden))
	})

	t.Run("несуществующая смена", func(t *testing.T) {
		_, err := handler.AttachSummary("emp-1", "session-unknown", summary)
		require.True(t, apperrors.IsKind(err, apperrors.KindNotFound))
	})

	view, err := handler.AttachSummary("emp-1", closed.ID, summary)
	require.NoError(t, err)
	require.NotNil(t, view.Summary)

	t.Run("отчёт принимается один раз", func(t *testing.T) {
		_, err := handler.AttachSummary("emp-1", closed.ID, summary)
		require.True(t, apperrors.IsKind(err, apperrors.KindConflict))
	})

	t.Run("количество материала проверяется", func(t *testing.T) {
		bad := sessionapimodels.WorkSummaryData{
			ProductUsages: []sessionapimodels.ProductUsageData{{ProductID: "prod-1", Quantity: -1}},
		}
		_, err := handler.AttachSummary("emp-1", closed.ID, bad)
		require.True(t, apperrors.IsKind(err, apperrors.KindValidation))
	})
}

func TestListScoping(t *testing.T) {
	now := time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC)
	sites := map[string]*dbmodels.Site{"site-1": activeSite("site-1")}
	handler := newTestImpl(newSessionFixture(), sites, &now)

	_, err := handler.CheckIn("emp-1", checkInData("site-1"))
	require.NoError(t, err)
	_, err = handler.CheckIn("emp-2", checkInData("site-1"))
	require.NoError(t, err)

	list, err := handler.List("emp-1", models.UserRoleEmployee, sessionapimodels.SessionFilter{})
	require.NoError(t, err)
	require.Len(t, list, 1)
	require.Equal(t, "emp-1", list[0].EmployeeID)

	list, err = handler.List("mgr-1", models.UserRoleManager, sessionapimodels.SessionFilter{})
	require.NoError(t, err)
	require.Len(t, list, 2)

	t.Run("чужая смена по ид недоступна сотруднику", func(t *testing.T) {
		_, err := handler.GetByID("emp-1", models.UserRoleEmployee, list[0].ID)
		if list[0].EmployeeID != "emp-1" {
			require.True(t, apperrors.IsKind(err, apperrors.KindForbidden))
		} else {
			require.NoError(t, err)
		}
	})
}

func TestActiveSession(t *testing.T) {
	now := time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC)
	sites := map[string]*dbmodels.Site{"site-1": activeSite("site-1")}
	handler := newTestImpl(newSessionFixture(), sites, &now)

	view, err := handler.ActiveSession("emp-1")
	require.NoError(t, err)
	require.Nil(t, view)

	_, err = handler.CheckIn("emp-1", checkInData("site-1"))
	require.NoError(t, err)

	view, err = handler.ActiveSession("emp-1")
	require.NoError(t, err)
	require.NotNil(t, view)
	require.Equal(t, string(models.SessionCheckedIn), view.Status)
}
