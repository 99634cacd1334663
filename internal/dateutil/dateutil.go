package dateutil

import (
	"errors"
	"fmt"
	"time"
)

// ErrCheckOutBeforeCheckIn is returned when a range ends before it starts.
// Negative ranges are rejected outright instead of being clamped.
var ErrCheckOutBeforeCheckIn = errors.New("check-out date is before check-in date")

const day = 24 * time.Hour

// FormatDate renders a long locale-style date such as "March 20, 2025".
// A nil value renders as "N/A".
func FormatDate(t *time.Time) string {
	if t == nil {
		return "N/A"
	}
	return t.Format("January 2, 2006")
}

// FormatTime renders a time of day such as "3:04 PM". Nil renders as "N/A".
func FormatTime(t *time.Time) string {
	if t == nil {
		return "N/A"
	}
	return t.Format("3:04 PM")
}

// NightsBetween returns the number of nights between check-in and
// check-out, rounding partial days up. Identical instants count as zero
// nights. Check-out strictly before check-in is a validation error.
func NightsBetween(checkIn, checkOut time.Time) (int, error) {
	diff := checkOut.Sub(checkIn)
	if diff < 0 {
		return 0, ErrCheckOutBeforeCheckIn
	}
	nights := int(diff / day)
	if diff%day != 0 {
		nights++
	}
	return nights, nil
}

// DaysFromNow phrases the distance between now and t in calendar days:
// "today" for the same calendar day, otherwise "in N days" or "N days ago".
// The distance counts calendar dates, not wall-clock hours, so DST
// transitions never shift the boundary.
func DaysFromNow(t, now time.Time) string {
	a := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	b := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	days := int(b.Sub(a) / day)

	switch {
	case days == 0:
		return "today"
	case days == 1:
		return "in 1 day"
	case days == -1:
		return "1 day ago"
	case days > 0:
		return fmt.Sprintf("in %d days", days)
	default:
		return fmt.Sprintf("%d days ago", -days)
	}
}

// SameDay reports whether two instants fall on the same calendar day
func SameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}

// DayKey formats t as the YYYY-MM-DD key used by the calendar endpoints
func DayKey(t time.Time) string {
	return t.Format("2006-01-02")
}
