package worksession

import (
	"strings"
	"time"
	"wfm-backend/db"
	"wfm-backend/lib/apperrors"
	filestorage "wfm-backend/lib/file-storage"
	sitestore "wfm-backend/lib/dicts/site/store"
	sessionstore "wfm-backend/lib/work-session/store"
	summarystore "wfm-backend/lib/work-session/summary-store"
	"wfm-backend/lib/utils/helpers"
	"wfm-backend/lib/voice"
	"wfm-backend/models"
	sessionapimodels "wfm-backend/models/api/worksession"
	dbmodels "wfm-backend/models/db"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type Provider interface {
	CheckIn(employeeID string, data sessionapimodels.CheckInData) (view sessionapimodels.WorkSessionView, err error)
	CheckOut(employeeID string, data sessionapimodels.CheckOutData) (view sessionapimodels.WorkSessionView, err error)
	AttachSummary(employeeID, sessionID string, data sessionapimodels.WorkSummaryData) (view sessionapimodels.WorkSessionView, err error)
	ActiveSession(employeeID string) (view *sessionapimodels.WorkSessionView, err error)
	GetByID(employeeID string, role models.UserRole, id string) (view sessionapimodels.WorkSessionView, err error)
	List(employeeID string, role models.UserRole, filter sessionapimodels.SessionFilter) (list []sessionapimodels.WorkSessionView, err error)
}

var Instance Provider

// TxStores - хранилища, привязанные к одной транзакции
type TxStores struct {
	Sessions  sessionstore.Provider
	Summaries summarystore.Provider
}

type TxRunner func(fc func(s TxStores) error) error

func NewHandler() {
	Instance = &impl{
		now:          time.Now,
		sessionStore: sessionstore.NewInstance(db.DB),
		summaryStore: summarystore.NewInstance(db.DB),
		siteStore:    sitestore.NewInstance(db.DB),
		fileStore:    filestorage.Instance,
		voice:        voice.Instance,
		inTx: func(fc func(s TxStores) error) error {
			return db.DB.Transaction(func(tx *gorm.DB) error {
				return fc(TxStores{
					Sessions:  sessionstore.NewInstance(tx),
					Summaries: summarystore.NewInstance(tx),
				})
			})
		},
	}
}

type impl struct {
	now          func() time.Time
	sessionStore sessionstore.Provider
	summaryStore summarystore.Provider
	siteStore    sitestore.Provider
	fileStore    filestorage.Provider
	voice        voice.Provider
	inTx         TxRunner
}

func (i impl) CheckIn(employeeID string, data sessionapimodels.CheckInData) (sessionapimodels.WorkSessionView, error) {
	view := sessionapimodels.WorkSessionView{}
	if err := data.Validate(); err != nil {
		return view, apperrors.Wrap(err, apperrors.KindValidation, err.Error())
	}
	site, err := i.siteStore.GetByID(data.SiteID)
	if err != nil {
		return view, errors.Wrap(err, "ошибка получения объекта")
	}
	if site == nil {
		return view, apperrors.NewNotFound("объект не найден")
	}
	if !site.IsActive {
		return view, apperrors.NewPolicy("объект недоступен для отметки")
	}
	if site.HasGeofence() {
		distance := helpers.HaversineDistanceM(data.Coords.Lat, data.Coords.Lon, *site.GeoLat, *site.GeoLon)
		if distance > float64(*site.GeoRadiusM) {
			return view, apperrors.NewPolicy("отметка выполнена вне геозоны объекта")
		}
	}
	if site.PhotoRequired && data.PhotoID == "" {
		return view, apperrors.NewPolicy("на объекте требуется фото при отметке прихода")
	}
	if data.PhotoID != "" && i.fileStore != nil {
		exists, err := i.fileStore.Exists(data.PhotoID)
		if err != nil {
			return view, errors.Wrap(err, "ошибка проверки фото")
		}
		if !exists {
			return view, apperrors.NewValidation("указанное фото не найдено")
		}
	}

	rec := dbmodels.WorkSession{
		EmployeeID:  employeeID,
		SiteID:      data.SiteID,
		Status:      models.SessionCheckedIn,
		CheckInTime: i.now(),
		CheckInLat:  data.Coords.Lat,
		CheckInLon:  data.Coords.Lon,
		Notes:       data.Notes,
	}
	if data.PhotoID != "" {
		rec.PhotoID = &data.PhotoID
	}
	if data.ShiftID != "" {
		rec.ShiftID = &data.ShiftID
	}

	var sessionID string
	err = i.inTx(func(s TxStores) error {
		active, err := s.Sessions.GetActiveForUpdate(employeeID)
		if err != nil {
			return errors.Wrap(err, "ошибка проверки открытой смены")
		}
		if active != nil {
			return apperrors.NewConflict("у сотрудника уже есть открытая смена")
		}
		sessionID, err = s.Sessions.Create(rec)
		if err != nil {
			// гонку двух одновременных отметок закрывает уникальный индекс
			if strings.Contains(err.Error(), "idx_active_work_session") {
				return apperrors.NewConflict("у сотрудника уже есть открытая смена")
			}
			return errors.Wrap(err, "ошибка создания смены")
		}
		return nil
	})
	if err != nil {
		return view, err
	}
	return i.getView(sessionID)
}

func (i impl) CheckOut(employeeID string, data sessionapimodels.CheckOutData) (sessionapimodels.WorkSessionView, error) {
	view := sessionapimodels.WorkSessionView{}
	if err := data.Validate(); err != nil {
		return view, apperrors.Wrap(err, apperrors.KindValidation, err.Error())
	}
	var sessionID string
	err := i.inTx(func(s TxStores) error {
		active, err := s.Sessions.GetActiveForUpdate(employeeID)
		if err != nil {
			return errors.Wrap(err, "ошибка получения открытой смены")
		}
		if active == nil {
			return apperrors.NewInvalidState("у сотрудника нет открытой смены")
		}
		sessionID = active.ID
		checkOutTime := i.now()
		// время ухода не может быть раньше времени прихода
		if checkOutTime.Before(active.CheckInTime) {
			checkOutTime = active.CheckInTime
		}
		updMap := map[string]interface{}{
			"check_out_time": checkOutTime,
			"check_out_lat":  data.Coords.Lat,
			"check_out_lon":  data.Coords.Lon,
		}
		// заметка при уходе дописывается к заметке прихода
		if data.Notes != "" {
			notes := data.Notes
			if active.Notes != "" {
				notes = active.Notes + "\n" + data.Notes
			}
			updMap["notes"] = notes
		}
		closed, err := s.Sessions.Close(active.ID, updMap)
		if err != nil {
			return errors.Wrap(err, "ошибка закрытия смены")
		}
		if !closed {
			return apperrors.NewInvalidState("смена уже закрыта")
		}
		if data.Summary != nil {
			_, err = s.Summaries.Create(i.buildSummary(active.ID, *data.Summary))
			if err != nil {
				return errors.Wrap(err, "ошибка сохранения отчёта о работе")
			}
		}
		return nil
	})
	if err != nil {
		return view, err
	}
	return i.getView(sessionID)
}

func (i impl) AttachSummary(employeeID, sessionID string, data sessionapimodels.WorkSummaryData) (sessionapimodels.WorkSessionView, error) {
	view := sessionapimodels.WorkSessionView{}
	if err := data.Validate(); err != nil {
		return view, apperrors.Wrap(err, apperrors.KindValidation, err.Error())
	}
	session, err := i.sessionStore.GetByID(sessionID)
	if err != nil {
		return view, errors.Wrap(err, "ошибка получения смены")
	}
	if session == nil {
		return view, apperrors.NewNotFound("смена не найдена")
	}
	if session.EmployeeID != employeeID {
		return view, apperrors.NewForbidden("нет доступа к чужой смене")
	}
	if session.Status != models.SessionCheckedOut {
		return view, apperrors.NewInvalidState("отчёт можно приложить только к закрытой смене")
	}
	if session.Summary != nil {
		return view, apperrors.NewConflict("отчёт по смене уже приложен")
	}
	_, err = i.summaryStore.Create(i.buildSummary(sessionID, data))
	if err != nil {
		// повторную отправку отчёта закрывает уникальный индекс по смене
		if strings.Contains(err.Error(), "duplicate") || strings.Contains(err.Error(), "unique") {
			return view, apperrors.NewConflict("отчёт по смене уже приложен")
		}
		return view, errors.Wrap(err, "ошибка сохранения отчёта о работе")
	}
	return i.getView(sessionID)
}

func (i impl) buildSummary(sessionID string, data sessionapimodels.WorkSummaryData) dbmodels.WorkSummary {
	rec := dbmodels.WorkSummary{
		SessionID: sessionID,
		Notes:     data.Notes,
		VoiceNote: data.VoiceNote,
		VoiceLang: data.VoiceLang,
	}
	if data.VoiceNote != "" && data.VoiceLang != "" && data.VoiceLang != "ru" && i.voice != nil {
		translation, err := i.voice.Translate(data.VoiceNote, data.VoiceLang, "ru")
		if err == nil {
			rec.Translation = translation
		}
	}
	for _, usage := range data.ProductUsages {
		rec.ProductUsages = append(rec.ProductUsages, dbmodels.WorkSummaryProduct{
			ProductID: usage.ProductID,
			Quantity:  usage.Quantity,
			Notes:     usage.Notes,
		})
	}
	return rec
}

func (i impl) ActiveSession(employeeID string) (*sessionapimodels.WorkSessionView, error) {
	rec, err := i.sessionStore.GetActive(employeeID)
	if err != nil {
		return nil, errors.Wrap(err, "ошибка получения открытой смены")
	}
	if rec == nil {
		return nil, nil
	}
	view := sessionapimodels.WorkSessionConvert(*rec)
	return &view, nil
}

func (i impl) GetByID(employeeID string, role models.UserRole, id string) (sessionapimodels.WorkSessionView, error) {
	view := sessionapimodels.WorkSessionView{}
	rec, err := i.sessionStore.GetByID(id)
	if err != nil {
		return view, errors.Wrap(err, "ошибка получения смены")
	}
	if rec == nil {
		return view, apperrors.NewNotFound("смена не найдена")
	}
	if !role.IsManagement() && rec.EmployeeID != employeeID {
		return view, apperrors.NewForbidden("нет доступа к чужой смене")
	}
	return sessionapimodels.WorkSessionConvert(*rec), nil
}

func (i impl) List(employeeID string, role models.UserRole, filter sessionapimodels.SessionFilter) ([]sessionapimodels.WorkSessionView, error) {
	if err := filter.Validate(); err != nil {
		return nil, apperrors.Wrap(err, apperrors.KindValidation, err.Error())
	}
	// сотрудник видит только свои смены
	if !role.IsManagement() {
		filter.EmployeeID = employeeID
	}
	list, err := i.sessionStore.List(filter)
	if err != nil {
		return nil, errors.Wrap(err, "ошибка получения списка смен")
	}
	result := make([]sessionapimodels.WorkSessionView, 0, len(list))
	for _, rec := range list {
		result = append(result, sessionapimodels.WorkSessionConvert(rec))
	}
	return result, nil
}

func (i impl) getView(id string) (sessionapimodels.WorkSessionView, error) {
	rec, err := i.sessionStore.GetByID(id)
	if err != nil {
		return sessionapimodels.WorkSessionView{}, errors.Wrap(err, "ошибка получения смены")
	}
	if rec == nil {
		return sessionapimodels.WorkSessionView{}, apperrors.NewNotFound("смена не найдена")
	}
	return sessionapimodels.WorkSessionConvert(*rec), nil
}
