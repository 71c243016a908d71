package staleworker

import (
	"context"
	"fmt"
	"time"
	"wfm-backend/config"
	"wfm-backend/db"
	"wfm-backend/lib/notification"
	"wfm-backend/lib/utils/helpers"
	baseworker "wfm-backend/lib/utils/base-worker"
	sessionstore "wfm-backend/lib/work-session/store"
	"wfm-backend/models"
)

// закрывает забытые смены, сотрудник получает уведомление

func StartWorker(ctx context.Context) {
	w := worker{
		BaseImpl: *baseworker.NewInstance("StaleSessionWorker",
			time.Minute,
			time.Duration(config.Conf.Session.WorkerPeriodInMin)*time.Minute),
		staleAfter: time.Duration(config.Conf.Session.StaleAfterHours) * time.Hour,
		store:      sessionstore.NewInstance(db.DB),
	}
	go w.Run(ctx, w.handle)
}

type worker struct {
	baseworker.BaseImpl
	staleAfter time.Duration
	store      sessionstore.Provider
}

func (w worker) handle(ctx context.Context) {
	logger := w.GetLogger()
	now := time.Now()
	list, err := w.store.ListStale(now.Add(-w.staleAfter))
	if err != nil {
		logger.WithError(err).Error("ошибка получения забытых смен")
		return
	}
	for _, rec := range list {
		if helpers.IsContextDone(ctx) {
			return
		}
		sessionLogger := logger.WithField("session_id", rec.ID)
		updMap := map[string]interface{}{
			"check_out_time": now,
			"auto_closed":    true,
		}
		closed, err := w.store.Close(rec.ID, updMap)
		if err != nil {
			sessionLogger.WithError(err).Error("ошибка автоматического закрытия смены")
			continue
		}
		if !closed {
			// сотрудник успел закрыть смену сам
			continue
		}
		sessionLogger.Info("смена закрыта автоматически")
		err = notification.Instance.Notify(rec.EmployeeID,
			models.NotifySessionAutoClosed, models.NotifyPriorityHigh,
			"Смена закрыта автоматически",
			fmt.Sprintf("Смена от %s закрыта системой, тк не была закрыта вовремя. Проверьте отметки.",
				rec.CheckInTime.Format("02.01.2006 15:04")),
			rec.ID)
		if err != nil {
			sessionLogger.WithError(err).Error("ошибка отправки уведомления о закрытии смены")
		}
	}
}
