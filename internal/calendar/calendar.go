package calendar

import (
	"strings"
	"time"

	"innkeep/internal/dateutil"
)

// Entry is anything that can be placed on the month grid: a booking keyed
// by its check-in date or an event keyed by its date.
type Entry interface {
	CalendarDate() time.Time
	SearchText() string
	StatusValue() string
}

// Filters narrows the entries shown on the grid. An empty Search and a
// Status of "all" (or "") are no-ops.
type Filters struct {
	Search string
	Status string
}

// Bucket is the per-day aggregation unit of the month grid
type Bucket struct {
	Date           time.Time `json:"date"`
	IsCurrentMonth bool      `json:"is_current_month"`
	Items          []Entry   `json:"items"`
	Total          int       `json:"total"`
}

// GridSize is the fixed number of cells in the month grid: 6 weeks of 7
// days, padded with leading and trailing days from adjacent months so the
// grid is rectangular regardless of which weekday the month starts on.
const GridSize = 42

// Matches reports whether the entry passes the filters. Search is a
// case-insensitive substring match over the entry's search text.
func (f Filters) Matches(e Entry) bool {
	if f.Status != "" && f.Status != "all" && e.StatusValue() != f.Status {
		return false
	}
	if f.Search != "" {
		if !strings.Contains(strings.ToLower(e.SearchText()), strings.ToLower(f.Search)) {
			return false
		}
	}
	return true
}

// Aggregate buckets entries into the 42-cell grid for (year, month).
// Buckets are in strict chronological order with no gaps, starting on the
// Sunday on or before the first of the month. Each entry lands in exactly
// the bucket matching its calendar date.
func Aggregate(entries []Entry, year int, month time.Month, f Filters) []Bucket {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	start := first.AddDate(0, 0, -int(first.Weekday()))

	buckets := make([]Bucket, GridSize)
	for i := range buckets {
		date := start.AddDate(0, 0, i)
		b := Bucket{
			Date:           date,
			IsCurrentMonth: date.Month() == month && date.Year() == year,
			Items:          []Entry{},
		}
		for _, e := range entries {
			if !dateutil.SameDay(e.CalendarDate(), date) {
				continue
			}
			if !f.Matches(e) {
				continue
			}
			b.Items = append(b.Items, e)
		}
		b.Total = len(b.Items)
		buckets[i] = b
	}
	return buckets
}

// GroupByDay produces the {date -> entries} map shape returned by the
// calendar endpoints, keyed by YYYY-MM-DD. Days without entries are absent.
func GroupByDay(entries []Entry, f Filters) map[string][]Entry {
	grouped := make(map[string][]Entry)
	for _, e := range entries {
		if !f.Matches(e) {
			continue
		}
		key := dateutil.DayKey(e.CalendarDate())
		grouped[key] = append(grouped[key], e)
	}
	return grouped
}
