package approvalapimodels

import (
	"time"
	dbmodels "wfm-backend/models/db"

	"github.com/pkg/errors"
)

const dateLayout = "2006-01-02"

type TimeOffData struct {
	DateFrom string `json:"date_from"` // формат 2006-01-02
	DateTo   string `json:"date_to"`
	Reason   string `json:"reason"`
}

func (r TimeOffData) Validate() error {
	from, to, err := r.Period()
	if err != nil {
		return err
	}
	if from.After(to) {
		return errors.New("дата начала отпуска позже даты окончания")
	}
	if r.Reason == "" {
		return errors.New("не указана причина отпуска")
	}
	return nil
}

func (r TimeOffData) Period() (from, to time.Time, err error) {
	from, err = time.Parse(dateLayout, r.DateFrom)
	if err != nil {
		return from, to, errors.New("дата начала имеет неправильный формат")
	}
	to, err = time.Parse(dateLayout, r.DateTo)
	if err != nil {
		return from, to, errors.New("дата окончания имеет неправильный формат")
	}
	return from, to, nil
}

type ShiftSwapData struct {
	ShiftID            string `json:"shift_id"`
	CounterpartShiftID string `json:"counterpart_shift_id"` // обязательно для взаимного обмена
	CoverageOnly       bool   `json:"coverage_only"`
	CoverEmployeeID    string `json:"cover_employee_id"`
}

func (r ShiftSwapData) Validate() error {
	if r.ShiftID == "" {
		return errors.New("не указана смена для обмена")
	}
	if r.CoverageOnly {
		if r.CoverEmployeeID == "" {
			return errors.New("не указан подменяющий сотрудник")
		}
		return nil
	}
	if r.CounterpartShiftID == "" {
		return errors.New("не указана встречная смена для обмена")
	}
	return nil
}

type RejectData struct {
	RejectionReason string `json:"rejection_reason"`
}

func (r RejectData) Validate() error {
	if r.RejectionReason == "" {
		return errors.New("не указана причина отклонения")
	}
	return nil
}

type ApprovalFilter struct {
	Status string `json:"status"`
	Kind   string `json:"kind"`
}

type ApprovalView struct {
	ID              string     `json:"id"`
	Kind            string     `json:"kind"`
	KindName        string     `json:"kind_name"`
	RequesterID     string     `json:"requester_id"`
	RequesterName   string     `json:"requester_name,omitempty"`
	Status          string     `json:"status"`
	StatusName      string     `json:"status_name"`
	ApproverID      string     `json:"approver_id,omitempty"`
	ApproverName    string     `json:"approver_name,omitempty"`
	ResolvedAt      *time.Time `json:"resolved_at,omitempty"`
	RejectionReason string     `json:"rejection_reason,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`

	DateFrom string `json:"date_from,omitempty"`
	DateTo   string `json:"date_to,omitempty"`
	Reason   string `json:"reason,omitempty"`

	ShiftID            string `json:"shift_id,omitempty"`
	CounterpartShiftID string `json:"counterpart_shift_id,omitempty"`
	CoverageOnly       bool   `json:"coverage_only,omitempty"`
	CoverEmployeeID    string `json:"cover_employee_id,omitempty"`
}

func ApprovalConvert(rec dbmodels.ApprovalRequest) ApprovalView {
	view := ApprovalView{
		ID:              rec.ID,
		Kind:            string(rec.Kind),
		KindName:        rec.Kind.ToHuman(),
		RequesterID:     rec.RequesterID,
		Status:          string(rec.Status),
		StatusName:      rec.Status.ToHuman(),
		ResolvedAt:      rec.ResolvedAt,
		RejectionReason: rec.RejectionReason,
		CreatedAt:       rec.CreatedAt,
		Reason:          rec.Reason,
		CoverageOnly:    rec.CoverageOnly,
	}
	if rec.Requester != nil {
		view.RequesterName = rec.Requester.GetFullName()
	}
	if rec.ApproverID != nil {
		view.ApproverID = *rec.ApproverID
	}
	if rec.Approver != nil {
		view.ApproverName = rec.Approver.GetFullName()
	}
	if rec.DateFrom != nil {
		view.DateFrom = rec.DateFrom.Format(dateLayout)
	}
	if rec.DateTo != nil {
		view.DateTo = rec.DateTo.Format(dateLayout)
	}
	if rec.ShiftID != nil {
		view.ShiftID = *rec.ShiftID
	}
	if rec.CounterpartShiftID != nil {
		view.CounterpartShiftID = *rec.CounterpartShiftID
	}
	if rec.CoverEmployeeID != nil {
		view.CoverEmployeeID = *rec.CoverEmployeeID
	}
	return view
}
