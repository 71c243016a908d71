package sessionapimodels

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCheckInDataValidate(t *testing.T) {
	valid := CheckInData{
		SiteID: "site-1",
		Coords: &GeoPoint{Lat: 55.75, Lon: 37.62},
	}
	require.NoError(t, valid.Validate())

	noSite := valid
	noSite.SiteID = ""
	require.Error(t, noSite.Validate())

	noCoords := valid
	noCoords.Coords = nil
	require.Error(t, noCoords.Validate())

	badCoords := valid
	badCoords.Coords = &GeoPoint{Lat: 91, Lon: 37.62}
	require.Error(t, badCoords.Validate())
}

func TestCheckOutDataValidate(t *testing.T) {
	valid := CheckOutData{Coords: &GeoPoint{Lat: 55.75, Lon: 37.62}}
	require.NoError(t, valid.Validate())

	withSummary := valid
	withSummary.Summary = &WorkSummaryData{
		ProductUsages: []ProductUsageData{{ProductID: "prod-1", Quantity: 2}},
	}
	require.NoError(t, withSummary.Validate())

	badSummary := valid
	badSummary.Summary = &WorkSummaryData{
		ProductUsages: []ProductUsageData{{ProductID: "prod-1", Quantity: -1}},
	}
	require.Error(t, badSummary.Validate())
}

func TestWorkSummaryDataValidate(t *testing.T) {
	// отчёт без строк допустим, строка без материала или с нулём - нет
	require.NoError(t, WorkSummaryData{}.Validate())
	require.Error(t, WorkSummaryData{
		ProductUsages: []ProductUsageData{{ProductID: "", Quantity: 1}},
	}.Validate())
	require.Error(t, WorkSummaryData{
		ProductUsages: []ProductUsageData{{ProductID: "prod-1", Quantity: 0}},
	}.Validate())
}

func TestGeoPointValidate(t *testing.T) {
	require.NoError(t, GeoPoint{Lat: -90, Lon: 180}.Validate())
	require.Error(t, GeoPoint{Lat: -90.5, Lon: 0}.Validate())
	require.Error(t, GeoPoint{Lat: 0, Lon: 180.5}.Validate())
}
