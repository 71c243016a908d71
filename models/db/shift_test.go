package dbmodels

import (
	"testing"
	"time"
	"wfm-backend/models"

	"github.com/stretchr/testify/require"
)

func TestShiftStatusAt(t *testing.T) {
	start := time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC)
	shift := Shift{
		StartAt: start,
		EndAt:   start.Add(8 * time.Hour),
		Status:  models.ShiftScheduled,
	}

	require.Equal(t, models.ShiftScheduled, shift.StatusAt(start.Add(-time.Hour)))
	require.Equal(t, models.ShiftActive, shift.StatusAt(start.Add(time.Hour)))
	require.Equal(t, models.ShiftCompleted, shift.StatusAt(start.Add(9*time.Hour)))

	t.Run("явный статус имеет приоритет", func(t *testing.T) {
		cancelled := shift
		cancelled.Status = models.ShiftCancelled
		require.Equal(t, models.ShiftCancelled, cancelled.StatusAt(start.Add(time.Hour)))

		completed := shift
		completed.Status = models.ShiftCompleted
		require.Equal(t, models.ShiftCompleted, completed.StatusAt(start.Add(-time.Hour)))
	})
}

func TestShiftIsFinishedAt(t *testing.T) {
	start := time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC)
	shift := Shift{
		StartAt: start,
		EndAt:   start.Add(8 * time.Hour),
		Status:  models.ShiftScheduled,
	}

	require.False(t, shift.IsFinishedAt(start.Add(time.Hour)))
	require.True(t, shift.IsFinishedAt(start.Add(9*time.Hour)))

	cancelled := shift
	cancelled.Status = models.ShiftCancelled
	require.True(t, cancelled.IsFinishedAt(start.Add(-time.Hour)))
}

func TestWorkSessionDuration(t *testing.T) {
	checkIn := time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC)
	checkOut := checkIn.Add(7*time.Hour + 30*time.Minute)

	open := WorkSession{CheckInTime: checkIn}
	require.Equal(t, time.Duration(0), open.Duration())

	closed := WorkSession{CheckInTime: checkIn, CheckOutTime: &checkOut}
	require.Equal(t, 7*time.Hour+30*time.Minute, closed.Duration())
}
