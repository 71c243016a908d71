package taskapimodels

import (
	"time"
	"wfm-backend/models"
	dbmodels "wfm-backend/models/db"

	"github.com/pkg/errors"
)

type TaskData struct {
	AssignedTo       string              `json:"assigned_to"`
	SiteID           string              `json:"site_id"`
	Title            string              `json:"title"`
	Description      string              `json:"description"`
	Priority         models.TaskPriority `json:"priority"`
	RequiresPhoto    bool                `json:"requires_photo"`
	RequiresLocation bool                `json:"requires_location"`
	EstimatedHours   float64             `json:"estimated_hours"`
}

func (r TaskData) Validate() error {
	if r.AssignedTo == "" {
		return errors.New("не указан исполнитель задачи")
	}
	if r.Title == "" {
		return errors.New("не указано название задачи")
	}
	if !r.Priority.IsKnown() {
		return errors.New("указан неизвестный приоритет")
	}
	if r.EstimatedHours < 0 {
		return errors.New("оценка трудозатрат не может быть отрицательной")
	}
	return nil
}

type TaskUpdateData struct {
	Status      models.TaskStatus `json:"status"`
	Comment     string            `json:"comment"`
	PhotoID     string            `json:"photo_id"`
	Lat         *float64          `json:"lat"`
	Lon         *float64          `json:"lon"`
	ActualHours float64           `json:"actual_hours"`
}

func (r TaskUpdateData) Validate() error {
	if !r.Status.IsKnown() {
		return errors.New("указан неизвестный статус задачи")
	}
	if r.ActualHours < 0 {
		return errors.New("фактические трудозатраты не могут быть отрицательными")
	}
	if (r.Lat == nil) != (r.Lon == nil) {
		return errors.New("координаты указываются парой широта/долгота")
	}
	return nil
}

type TaskView struct {
	ID               string           `json:"id"`
	AssignedTo       string           `json:"assigned_to"`
	AssigneeName     string           `json:"assignee_name,omitempty"`
	AssignedBy       string           `json:"assigned_by"`
	AuthorName       string           `json:"author_name,omitempty"`
	SiteID           string           `json:"site_id,omitempty"`
	Title            string           `json:"title"`
	Description      string           `json:"description,omitempty"`
	Priority         string           `json:"priority"`
	PriorityName     string           `json:"priority_name"`
	Status           string           `json:"status"`
	StatusName       string           `json:"status_name"`
	RequiresPhoto    bool             `json:"requires_photo"`
	RequiresLocation bool             `json:"requires_location"`
	EstimatedHours   float64          `json:"estimated_hours,omitempty"`
	ActualHours      float64          `json:"actual_hours,omitempty"`
	PhotoURLs        []string         `json:"photo_urls,omitempty"`
	CreatedAt        time.Time        `json:"created_at"`
	Updates          []TaskUpdateView `json:"updates,omitempty"`
}

type TaskUpdateView struct {
	ID         string    `json:"id"`
	AuthorID   string    `json:"author_id"`
	Status     string    `json:"status"`
	StatusName string    `json:"status_name"`
	Comment    string    `json:"comment,omitempty"`
	PhotoID    string    `json:"photo_id,omitempty"`
	Lat        *float64  `json:"lat,omitempty"`
	Lon        *float64  `json:"lon,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

// CurrentStatus - статус задачи по последней записи журнала,
// для задачи без записей считается PENDING
func CurrentStatus(updates []dbmodels.TaskUpdate) models.TaskStatus {
	if len(updates) == 0 {
		return models.TaskStatusPending
	}
	last := updates[0]
	for _, upd := range updates[1:] {
		if upd.CreatedAt.After(last.CreatedAt) {
			last = upd
		}
	}
	return last.Status
}

func TaskConvert(rec dbmodels.Task) TaskView {
	status := CurrentStatus(rec.Updates)
	view := TaskView{
		ID:               rec.ID,
		AssignedTo:       rec.AssignedTo,
		AssignedBy:       rec.AssignedBy,
		Title:            rec.Title,
		Description:      rec.Description,
		Priority:         string(rec.Priority),
		PriorityName:     rec.Priority.ToHuman(),
		Status:           string(status),
		StatusName:       status.ToHuman(),
		RequiresPhoto:    rec.RequiresPhoto,
		RequiresLocation: rec.RequiresLocation,
		EstimatedHours:   rec.EstimatedHours,
		ActualHours:      rec.ActualHours,
		PhotoURLs:        rec.PhotoURLs,
		CreatedAt:        rec.CreatedAt,
	}
	if rec.Assignee != nil {
		view.AssigneeName = rec.Assignee.GetFullName()
	}
	if rec.Author != nil {
		view.AuthorName = rec.Author.GetFullName()
	}
	if rec.SiteID != nil {
		view.SiteID = *rec.SiteID
	}
	for _, upd := range rec.Updates {
		updView := TaskUpdateView{
			ID:         upd.ID,
			AuthorID:   upd.AuthorID,
			Status:     string(upd.Status),
			StatusName: upd.Status.ToHuman(),
			Comment:    upd.Comment,
			Lat:        upd.Lat,
			Lon:        upd.Lon,
			CreatedAt:  upd.CreatedAt,
		}
		if upd.PhotoID != nil {
			updView.PhotoID = *upd.PhotoID
		}
		view.Updates = append(view.Updates, updView)
	}
	return view
}
