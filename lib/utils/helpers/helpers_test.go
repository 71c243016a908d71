package helpers

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func date(value string) time.Time {
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		panic(err)
	}
	return t
}

func TestPeriodsIntersect(t *testing.T) {
	t.Run("границы включительно", func(t *testing.T) {
		// запрос 24-26 декабря против закрытого дня 25 декабря
		require.True(t, PeriodsIntersect(
			date("2024-12-24"), date("2024-12-26"),
			date("2024-12-25"), date("2024-12-25")))
		// запрос 20-23 декабря тот же закрытый день не задевает
		require.False(t, PeriodsIntersect(
			date("2024-12-20"), date("2024-12-23"),
			date("2024-12-25"), date("2024-12-25")))
		// совпадение по границе
		require.True(t, PeriodsIntersect(
			date("2024-12-20"), date("2024-12-25"),
			date("2024-12-25"), date("2024-12-31")))
	})

	t.Run("симметричность", func(t *testing.T) {
		require.Equal(t,
			PeriodsIntersect(date("2024-01-01"), date("2024-01-10"), date("2024-01-05"), date("2024-02-01")),
			PeriodsIntersect(date("2024-01-05"), date("2024-02-01"), date("2024-01-01"), date("2024-01-10")))
	})

	t.Run("время внутри дня не влияет", func(t *testing.T) {
		withTime := date("2024-12-25").Add(23 * time.Hour)
		require.True(t, PeriodsIntersect(
			withTime, withTime,
			date("2024-12-25"), date("2024-12-25")))
	})
}

func TestHaversineDistanceM(t *testing.T) {
	// точка сама с собой
	require.Equal(t, 0.0, HaversineDistanceM(12.97, 77.59, 12.97, 77.59))

	// один градус широты - около 111 км
	d := HaversineDistanceM(55.0, 37.0, 56.0, 37.0)
	require.InDelta(t, 111195, d, 500)

	// сто метров к северу
	d = HaversineDistanceM(55.7558, 37.6173, 55.7567, 37.6173)
	require.InDelta(t, 100, d, 5)
}
