package helpers

import (
	"context"
	"math"
	"mime/multipart"
	"time"
)

const (
	HeaderLogIgnore = "X-Content-Log"
)

func IsContextDone(ctx context.Context) bool {
	if ctx == nil {
		return true
	}
	select {
	case <-ctx.Done():
		return true
	default:
	}
	return false
}

// PeriodsIntersect - пересечение календарных периодов [aFrom,aTo] и [bFrom,bTo],
// границы включительно, сравнение с точностью до дня
func PeriodsIntersect(aFrom, aTo, bFrom, bTo time.Time) bool {
	aFromDay, aToDay := truncateToDay(aFrom), truncateToDay(aTo)
	bFromDay, bToDay := truncateToDay(bFrom), truncateToDay(bTo)
	return !aFromDay.After(bToDay) && !bFromDay.After(aToDay)
}

func truncateToDay(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func GetFileContentType(fileHeader *multipart.FileHeader) string {
	contentType := fileHeader.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	return contentType
}

const earthRadiusM = 6371000.0

// HaversineDistanceM - расстояние между точками в метрах по сфере,
// для проверки геозоны объекта этой точности достаточно
func HaversineDistanceM(lat1, lon1, lat2, lon2 float64) float64 {
	rad := math.Pi / 180
	dLat := (lat2 - lat1) * rad
	dLon := (lon2 - lon1) * rad
	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1*rad)*math.Cos(lat2*rad)*math.Sin(dLon/2)*math.Sin(dLon/2)
	return 2 * earthRadiusM * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
}
