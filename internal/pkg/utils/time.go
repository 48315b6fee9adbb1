package utils

import (
	"fmt"
	"time"
)

// BuildInstant concatenates an ISO date and a 24-hour clock time into the
// instant format used by Appointment.start.
func BuildInstant(date, time24 string) string {
	if date == "" {
		return ""
	}
	if time24 == "" {
		return date
	}
	return fmt.Sprintf("%sT%s:00", date, time24)
}

// SplitInstant recovers the date part and a 12-hour clock label from an
// Appointment.start instant. Unparseable input degrades to empty strings.
func SplitInstant(instant string) (date, timeslot string) {
	t, err := time.Parse("2006-01-02T15:04:05", instant)
	if err != nil {
		if t, err = time.Parse(time.RFC3339, instant); err != nil {
			return "", ""
		}
	}
	return t.Format("2006-01-02"), Format12Hour(t)
}

// Format12Hour renders a clock time as "3:04 PM".
func Format12Hour(t time.Time) string {
	return t.Format("3:04 PM")
}

// GetLastDayOfMonth returns the last calendar day of the given month,
// leap-year aware.
func GetLastDayOfMonth(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// MonthPeriod renders the first and last day of a month as ISO dates.
func MonthPeriod(year int, month time.Month) (start, end string) {
	start = fmt.Sprintf("%04d-%02d-01", year, int(month))
	end = fmt.Sprintf("%04d-%02d-%02d", year, int(month), GetLastDayOfMonth(year, month))
	return start, end
}
