package dateutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestFormatDate(t *testing.T) {
	d := date(2025, time.March, 20)
	assert.Equal(t, "March 20, 2025", FormatDate(&d))
	assert.Equal(t, "N/A", FormatDate(nil))
}

func TestFormatTime(t *testing.T) {
	at := time.Date(2025, time.March, 20, 15, 4, 0, 0, time.UTC)
	assert.Equal(t, "3:04 PM", FormatTime(&at))

	morning := time.Date(2025, time.March, 20, 9, 30, 0, 0, time.UTC)
	assert.Equal(t, "9:30 AM", FormatTime(&morning))

	assert.Equal(t, "N/A", FormatTime(nil))
}

func TestNightsBetween(t *testing.T) {
	nights, err := NightsBetween(date(2025, time.March, 20), date(2025, time.March, 25))
	assert.NoError(t, err)
	assert.Equal(t, 5, nights)
}

func TestNightsBetweenSameInstant(t *testing.T) {
	d := date(2025, time.March, 20)
	nights, err := NightsBetween(d, d)
	assert.NoError(t, err)
	assert.Equal(t, 0, nights)
}

func TestNightsBetweenPartialDayRoundsUp(t *testing.T) {
	checkIn := time.Date(2025, time.March, 20, 14, 0, 0, 0, time.UTC)
	checkOut := time.Date(2025, time.March, 21, 11, 0, 0, 0, time.UTC)

	nights, err := NightsBetween(checkIn, checkOut)
	assert.NoError(t, err)
	assert.Equal(t, 1, nights)
}

func TestNightsBetweenRejectsReversedRange(t *testing.T) {
	_, err := NightsBetween(date(2025, time.March, 25), date(2025, time.March, 20))
	assert.ErrorIs(t, err, ErrCheckOutBeforeCheckIn)
}

func TestDaysFromNow(t *testing.T) {
	now := time.Date(2025, time.March, 20, 18, 30, 0, 0, time.UTC)

	tests := []struct {
		name string
		t    time.Time
		want string
	}{
		{"same day", time.Date(2025, time.March, 20, 2, 0, 0, 0, time.UTC), "today"},
		{"tomorrow", date(2025, time.March, 21), "in 1 day"},
		{"yesterday", date(2025, time.March, 19), "1 day ago"},
		{"next week", date(2025, time.March, 27), "in 7 days"},
		{"last month", date(2025, time.February, 18), "30 days ago"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DaysFromNow(tt.t, now))
		})
	}
}

func TestDaysFromNowAcrossShortDay(t *testing.T) {
	// US DST starts March 9, 2025: that day has 23 wall-clock hours, and
	// the distance must still count one calendar day in each direction.
	loc, err := time.LoadLocation("America/New_York")
	if err != nil {
		t.Skip("tzdata unavailable")
	}

	now := time.Date(2025, time.March, 9, 8, 0, 0, 0, loc)

	assert.Equal(t, "in 1 day", DaysFromNow(time.Date(2025, time.March, 10, 8, 0, 0, 0, loc), now))
	assert.Equal(t, "1 day ago", DaysFromNow(time.Date(2025, time.March, 8, 8, 0, 0, 0, loc), now))
	assert.Equal(t, "today", DaysFromNow(time.Date(2025, time.March, 9, 23, 0, 0, 0, loc), now))
}

func TestSameDay(t *testing.T) {
	assert.True(t, SameDay(
		time.Date(2025, time.March, 20, 0, 1, 0, 0, time.UTC),
		time.Date(2025, time.March, 20, 23, 59, 0, 0, time.UTC),
	))
	assert.False(t, SameDay(date(2025, time.March, 20), date(2025, time.March, 21)))
}

func TestDayKey(t *testing.T) {
	assert.Equal(t, "2025-03-05", DayKey(date(2025, time.March, 5)))
}
