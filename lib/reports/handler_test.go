package reports

import (
	"testing"
	"time"
	"wfm-backend/models"
	dbmodels "wfm-backend/models/db"

	"github.com/stretchr/testify/require"
)

func closedSession(employeeID, siteID string, checkIn time.Time, hours float64) dbmodels.WorkSession {
	checkOut := checkIn.Add(time.Duration(hours * float64(time.Hour)))
	return dbmodels.WorkSession{
		EmployeeID:   employeeID,
		SiteID:       siteID,
		Status:       models.SessionCheckedOut,
		CheckInTime:  checkIn,
		CheckOutTime: &checkOut,
	}
}

func TestBuildAttendance(t *testing.T) {
	january := time.Date(2025, 1, 10, 9, 0, 0, 0, time.UTC)
	march := time.Date(2025, 3, 5, 9, 0, 0, 0, time.UTC)
	list := []dbmodels.WorkSession{
		closedSession("emp-1", "site-1", january, 8),
		closedSession("emp-1", "site-1", january.AddDate(0, 0, 1), 4),
		closedSession("emp-1", "site-2", march, 6),
		{
			EmployeeID:  "emp-1",
			SiteID:      "site-1",
			Status:      models.SessionCheckedIn,
			CheckInTime: march.AddDate(0, 0, 1),
		},
	}

	report := BuildAttendance("emp-1", 2025, list)
	require.Equal(t, "emp-1", report.EmployeeID)
	require.Equal(t, 2025, report.Year)
	require.InDelta(t, 12, report.HoursByMonth[0], 0.001)
	require.InDelta(t, 0, report.HoursByMonth[1], 0.001)
	require.InDelta(t, 6, report.HoursByMonth[2], 0.001)
	require.InDelta(t, 18, report.TotalHours, 0.001)
	require.Equal(t, 2, report.SitesVisited)
	// незакрытая смена считается отдельно и в часы не входит
	require.Equal(t, 1, report.ActiveCount)
}

func TestBuildAttendanceEmpty(t *testing.T) {
	report := BuildAttendance("emp-1", 2025, nil)
	require.InDelta(t, 0, report.TotalHours, 0.001)
	require.Equal(t, 0, report.SitesVisited)
	require.Equal(t, 0, report.ActiveCount)
}

func TestBuildClientVisits(t *testing.T) {
	day := time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC)
	list := []dbmodels.WorkSession{
		closedSession("emp-1", "site-1", day, 8),
		closedSession("emp-2", "site-1", day, 4),
		closedSession("emp-1", "site-2", day.AddDate(0, 0, 1), 2),
		{EmployeeID: "emp-3", SiteID: "site-1", Status: models.SessionCheckedIn, CheckInTime: day},
	}

	rows := BuildClientVisits("", list)
	require.Len(t, rows, 2)
	require.Equal(t, "site-1", rows[0].SiteID)
	require.Equal(t, 2, rows[0].VisitCount)
	require.InDelta(t, 12, rows[0].TotalHours, 0.001)
	require.Equal(t, "site-2", rows[1].SiteID)
	require.Equal(t, 1, rows[1].VisitCount)

	t.Run("фильтр по объекту", func(t *testing.T) {
		rows := BuildClientVisits("site-2", list)
		require.Len(t, rows, 1)
		require.Equal(t, "site-2", rows[0].SiteID)
	})
}

func TestBuildBilling(t *testing.T) {
	day := time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC)
	list := []dbmodels.WorkSession{
		closedSession("emp-1", "site-1", day, 8),
		closedSession("emp-1", "site-1", day.AddDate(0, 0, 1), 4),
		closedSession("emp-1", "site-2", day.AddDate(0, 0, 2), 2),
		closedSession("emp-2", "site-1", day, 6),
		{EmployeeID: "emp-1", SiteID: "site-1", Status: models.SessionCheckedIn, CheckInTime: day},
	}

	rows := BuildBilling(list)
	require.Len(t, rows, 3)
	// строки идут в порядке появления пар сотрудник-объект
	require.Equal(t, "emp-1", rows[0].EmployeeID)
	require.Equal(t, "site-1", rows[0].SiteID)
	require.InDelta(t, 12, rows[0].BillableHours, 0.001)
	require.Equal(t, "site-2", rows[1].SiteID)
	require.InDelta(t, 2, rows[1].BillableHours, 0.001)
	require.Equal(t, "emp-2", rows[2].EmployeeID)
	require.InDelta(t, 6, rows[2].BillableHours, 0.001)
}
