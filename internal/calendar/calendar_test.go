package calendar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type testEntry struct {
	date   time.Time
	text   string
	status string
}

func (e testEntry) CalendarDate() time.Time { return e.date }
func (e testEntry) SearchText() string      { return e.text }
func (e testEntry) StatusValue() string     { return e.status }

func entry(y int, m time.Month, d int, text, status string) Entry {
	return testEntry{
		date:   time.Date(y, m, d, 0, 0, 0, 0, time.UTC),
		text:   text,
		status: status,
	}
}

func TestAggregateAlwaysReturnsFullGrid(t *testing.T) {
	for month := time.January; month <= time.December; month++ {
		buckets := Aggregate(nil, 2025, month, Filters{})
		assert.Len(t, buckets, GridSize, "month %s", month)

		for i := 1; i < len(buckets); i++ {
			gap := buckets[i].Date.Sub(buckets[i-1].Date)
			assert.Equal(t, 24*time.Hour, gap,
				"month %s: buckets %d and %d are not consecutive days", month, i-1, i)
		}

		assert.Equal(t, time.Sunday, buckets[0].Date.Weekday())
	}
}

func TestAggregateFlagsAdjacentMonthDays(t *testing.T) {
	// March 2025 starts on a Saturday, so the first week carries
	// trailing February days.
	buckets := Aggregate(nil, 2025, time.March, Filters{})

	current := 0
	for _, b := range buckets {
		if b.IsCurrentMonth {
			current++
			assert.Equal(t, time.March, b.Date.Month())
		} else {
			assert.NotEqual(t, time.March, b.Date.Month())
		}
	}
	assert.Equal(t, 31, current)
}

func TestAggregateBucketMembership(t *testing.T) {
	entries := []Entry{
		entry(2025, time.March, 14, "John Smith BK-000001 101", "confirmed"),
		entry(2025, time.March, 14, "Maria Garcia BK-000002 102", "pending"),
		entry(2025, time.March, 18, "Maria Garcia BK-000003 205", "confirmed"),
	}

	buckets := Aggregate(entries, 2025, time.March, Filters{})

	placed := 0
	for _, b := range buckets {
		assert.Equal(t, b.Total, len(b.Items))
		placed += b.Total
		for _, e := range b.Items {
			assert.True(t, e.CalendarDate().Equal(b.Date), "entry placed in wrong bucket")
		}
	}
	assert.Equal(t, len(entries), placed, "every entry lands in exactly one bucket")
}

func TestAggregateSearchFilter(t *testing.T) {
	entries := []Entry{
		entry(2025, time.March, 14, "John Smith BK-000001 101", "confirmed"),
		entry(2025, time.March, 18, "Maria Garcia BK-000002 205", "confirmed"),
	}

	buckets := Aggregate(entries, 2025, time.March, Filters{Search: "smith"})

	total := 0
	for _, b := range buckets {
		total += b.Total
		for _, e := range b.Items {
			assert.Contains(t, e.SearchText(), "Smith")
		}
	}
	assert.Equal(t, 1, total)
}

func TestAggregateStatusFilter(t *testing.T) {
	entries := []Entry{
		entry(2025, time.March, 14, "John Smith", "confirmed"),
		entry(2025, time.March, 14, "Maria Garcia", "pending"),
	}

	all := Aggregate(entries, 2025, time.March, Filters{Status: "all"})
	confirmed := Aggregate(entries, 2025, time.March, Filters{Status: "confirmed"})

	countItems := func(bs []Bucket) int {
		n := 0
		for _, b := range bs {
			n += b.Total
		}
		return n
	}

	assert.Equal(t, 2, countItems(all), "status \"all\" filters nothing")
	assert.Equal(t, 1, countItems(confirmed))
}

func TestFiltersStatusMatchIsExact(t *testing.T) {
	pending := entry(2025, time.March, 14, "x", "pending")
	checkedIn := entry(2025, time.March, 14, "x", "checked_in")

	f := Filters{Status: "checked_in"}
	assert.False(t, f.Matches(pending))
	assert.True(t, f.Matches(checkedIn))
}

func TestGroupByDay(t *testing.T) {
	entries := []Entry{
		entry(2025, time.March, 14, "John Smith", "confirmed"),
		entry(2025, time.March, 14, "Maria Garcia", "pending"),
		entry(2025, time.March, 18, "Wei Chen", "confirmed"),
	}

	grouped := GroupByDay(entries, Filters{})

	assert.Len(t, grouped, 2)
	assert.Len(t, grouped["2025-03-14"], 2)
	assert.Len(t, grouped["2025-03-18"], 1)
	assert.NotContains(t, grouped, "2025-03-15")
}

func TestGroupByDayAppliesFilters(t *testing.T) {
	entries := []Entry{
		entry(2025, time.March, 14, "John Smith", "confirmed"),
		entry(2025, time.March, 18, "Wei Chen", "pending"),
	}

	grouped := GroupByDay(entries, Filters{Status: "pending"})

	assert.Len(t, grouped, 1)
	assert.Len(t, grouped["2025-03-18"], 1)
}
