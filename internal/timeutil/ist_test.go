package timeutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStartOfWeekSundayBased(t *testing.T) {
	// 2026-08-26 is a Wednesday
	wed, err := ParseInIST(DateLayout, "2026-08-26")
	require.NoError(t, err)

	start := StartOfWeek(wed)
	assert.Equal(t, time.Sunday, start.Weekday())
	assert.Equal(t, "2026-08-23", FormatIST(start, DateLayout))
	assert.Equal(t, 0, start.Hour())

	// A Sunday is its own week start
	assert.Equal(t, start, StartOfWeek(start))
}

func TestEndOfWeekSaturdayBased(t *testing.T) {
	wed, err := ParseInIST(DateLayout, "2026-08-26")
	require.NoError(t, err)

	end := EndOfWeek(wed)
	assert.Equal(t, time.Saturday, end.Weekday())
	assert.Equal(t, "2026-08-29", FormatIST(end, DateLayout))
	assert.Equal(t, 23, end.Hour())

	// The next Sunday belongs to the following week
	nextSunday := StartOfWeek(wed).AddDate(0, 0, 7)
	assert.True(t, end.Before(nextSunday))
}

func TestDayBoundaries(t *testing.T) {
	noon, err := ParseInIST(DateTimeLayout, "2026-08-26 12:30:45")
	require.NoError(t, err)

	start := StartOfDay(noon)
	end := EndOfDay(noon)
	assert.Equal(t, "2026-08-26 00:00:00", FormatIST(start, DateTimeLayout))
	assert.Equal(t, "2026-08-26", FormatIST(end, DateLayout))
	assert.True(t, end.After(noon))
	assert.True(t, start.Before(noon))
}
