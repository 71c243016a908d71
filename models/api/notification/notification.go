package notificationapimodels

import (
	"time"
	dbmodels "wfm-backend/models/db"
)

type NotificationView struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Body      string    `json:"body,omitempty"`
	Type      string    `json:"type"`
	Priority  string    `json:"priority"`
	RelatedID string    `json:"related_id,omitempty"`
	IsRead    bool      `json:"is_read"`
	CreatedAt time.Time `json:"created_at"`
}

type NotificationList struct {
	Items       []NotificationView `json:"items"`
	UnreadCount int64              `json:"unread_count"`
}

func NotificationConvert(rec dbmodels.Notification) NotificationView {
	view := NotificationView{
		ID:        rec.ID,
		Title:     rec.Title,
		Body:      rec.Body,
		Type:      string(rec.Type),
		Priority:  string(rec.Priority),
		IsRead:    rec.IsRead,
		CreatedAt: rec.CreatedAt,
	}
	if rec.RelatedID != nil {
		view.RelatedID = *rec.RelatedID
	}
	return view
}
