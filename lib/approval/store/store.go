package approvalstore

import (
	"wfm-backend/models"
	approvalapimodels "wfm-backend/models/api/approval"
	dbmodels "wfm-backend/models/db"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Provider interface {
	Create(rec dbmodels.ApprovalRequest) (id string, err error)
	GetByID(id string) (rec *dbmodels.ApprovalRequest, err error)
	// Resolve - условный перевод заявки из PENDING в терминальный статус,
	// для уже рассмотренной заявки возвращает resolved=false
	Resolve(id string, updMap map[string]interface{}) (resolved bool, err error)
	ListByRequester(requesterID string, filter approvalapimodels.ApprovalFilter) (list []dbmodels.ApprovalRequest, err error)
	ListPending(filter approvalapimodels.ApprovalFilter) (list []dbmodels.ApprovalRequest, err error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.ApprovalRequest) (id string, err error) {
	err = i.db.Omit(clause.Associations).
		Create(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) GetByID(id string) (*dbmodels.ApprovalRequest, error) {
	rec := dbmodels.ApprovalRequest{}
	err := i.db.
		Where("id = ?", id).
		Preload("Requester").
		Preload("Approver").
		First(&rec).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &rec, nil
}

func (i impl) Resolve(id string, updMap map[string]interface{}) (resolved bool, err error) {
	tx := i.db.
		Model(&dbmodels.ApprovalRequest{}).
		Where("id = ?", id).
		Where("status = ?", models.ApprovalStatusPending).
		Updates(updMap)
	if tx.Error != nil {
		return false, tx.Error
	}
	return tx.RowsAffected > 0, nil
}

func (i impl) ListByRequester(requesterID string, filter approvalapimodels.ApprovalFilter) (list []dbmodels.ApprovalRequest, err error) {
	list = []dbmodels.ApprovalRequest{}
	tx := i.db.Where("requester_id = ?", requesterID)
	tx = applyFilter(tx, filter)
	err = tx.
		Preload("Approver").
		Order("created_at desc").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) ListPending(filter approvalapimodels.ApprovalFilter) (list []dbmodels.ApprovalRequest, err error) {
	list = []dbmodels.ApprovalRequest{}
	tx := i.db.Where("status = ?", models.ApprovalStatusPending)
	tx = applyFilter(tx, filter)
	err = tx.
		Preload("Requester").
		Order("created_at").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func applyFilter(tx *gorm.DB, filter approvalapimodels.ApprovalFilter) *gorm.DB {
	if filter.Kind != "" {
		tx = tx.Where("kind = ?", filter.Kind)
	}
	if filter.Status != "" {
		tx = tx.Where("status = ?", filter.Status)
	}
	return tx
}
