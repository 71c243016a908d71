package taskapimodels

import (
	"testing"
	"time"
	"wfm-backend/models"
	dbmodels "wfm-backend/models/db"

	"github.com/stretchr/testify/require"
)

func update(status models.TaskStatus, createdAt time.Time) dbmodels.TaskUpdate {
	return dbmodels.TaskUpdate{
		BaseModel: dbmodels.BaseModel{CreatedAt: createdAt},
		Status:    status,
	}
}

func TestCurrentStatus(t *testing.T) {
	require.Equal(t, models.TaskStatusPending, CurrentStatus(nil))

	base := time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC)
	updates := []dbmodels.TaskUpdate{
		update(models.TaskStatusInProgress, base),
		update(models.TaskStatusCompleted, base.Add(2*time.Hour)),
		update(models.TaskStatusPending, base.Add(-time.Hour)),
	}
	// статус берётся из самой поздней записи вне зависимости от порядка в срезе
	require.Equal(t, models.TaskStatusCompleted, CurrentStatus(updates))
}
