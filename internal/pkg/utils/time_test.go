package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestBuildInstant(t *testing.T) {
	t.Run("Date And Time", func(t *testing.T) {
		assert.Equal(t, "2025-03-01T14:30:00", BuildInstant("2025-03-01", "14:30"))
	})

	t.Run("Date Only", func(t *testing.T) {
		assert.Equal(t, "2025-03-01", BuildInstant("2025-03-01", ""))
	})

	t.Run("Empty Date", func(t *testing.T) {
		assert.Equal(t, "", BuildInstant("", "14:30"))
	})
}

func TestSplitInstant(t *testing.T) {
	t.Run("Local Instant", func(t *testing.T) {
		date, timeslot := SplitInstant("2025-03-01T14:30:00")

		assert.Equal(t, "2025-03-01", date)
		assert.Equal(t, "2:30 PM", timeslot)
	})

	t.Run("Morning Has No Leading Zero", func(t *testing.T) {
		date, timeslot := SplitInstant("2025-03-01T09:05:00")

		assert.Equal(t, "2025-03-01", date)
		assert.Equal(t, "9:05 AM", timeslot)
	})

	t.Run("RFC3339 Fallback", func(t *testing.T) {
		date, timeslot := SplitInstant("2025-03-01T14:30:00Z")

		assert.Equal(t, "2025-03-01", date)
		assert.Equal(t, "2:30 PM", timeslot)
	})

	t.Run("Unparseable Input Degrades To Empty", func(t *testing.T) {
		date, timeslot := SplitInstant("not-a-date")

		assert.Equal(t, "", date)
		assert.Equal(t, "", timeslot)
	})
}

func TestGetLastDayOfMonth(t *testing.T) {
	t.Run("Regular February", func(t *testing.T) {
		assert.Equal(t, 28, GetLastDayOfMonth(2025, time.February))
	})

	t.Run("Leap February", func(t *testing.T) {
		assert.Equal(t, 29, GetLastDayOfMonth(2024, time.February))
	})

	t.Run("Century Leap Rule", func(t *testing.T) {
		assert.Equal(t, 29, GetLastDayOfMonth(2000, time.February))
		assert.Equal(t, 28, GetLastDayOfMonth(1900, time.February))
	})

	t.Run("Thirty Day Month", func(t *testing.T) {
		assert.Equal(t, 30, GetLastDayOfMonth(2025, time.April))
	})

	t.Run("December Does Not Wrap", func(t *testing.T) {
		assert.Equal(t, 31, GetLastDayOfMonth(2025, time.December))
	})
}

func TestMonthPeriod(t *testing.T) {
	t.Run("Leap February", func(t *testing.T) {
		start, end := MonthPeriod(2024, time.February)

		assert.Equal(t, "2024-02-01", start)
		assert.Equal(t, "2024-02-29", end)
	})

	t.Run("Single Digit Month Is Zero Padded", func(t *testing.T) {
		start, end := MonthPeriod(2025, time.March)

		assert.Equal(t, "2025-03-01", start)
		assert.Equal(t, "2025-03-31", end)
	})
}
