// Package calendar lays out a month of day cells annotated with each day's
// prayer completion status.
package calendar

import (
	"fmt"
	"time"

	"github.com/sadopc/salah/internal/prayer"
)

// Day is one cell of a month grid. Padding cells have an empty Date and a
// zero DayOfMonth.
type Day struct {
	Date           string
	DayOfMonth     int
	IsCurrentMonth bool
	IsToday        bool
	Status         prayer.DayStatus
}

// IsPadding reports whether the cell only fills the first week row.
func (d Day) IsPadding() bool { return d.DayOfMonth == 0 }

// RecordLookup returns the stored record for a date, if there is one.
type RecordLookup func(date string) (prayer.DayRecord, bool)

// MapLookup indexes records by date.
func MapLookup(records []prayer.DayRecord) RecordLookup {
	byDate := make(map[string]prayer.DayRecord, len(records))
	for _, r := range records {
		byDate[r.Date] = r
	}
	return func(date string) (prayer.DayRecord, bool) {
		r, ok := byDate[date]
		return r, ok
	}
}

type options struct {
	missed bool
}

// Option adjusts how BuildMonth derives statuses.
type Option func(*options)

// WithMissed reports days before today without complete Fard as missed.
func WithMissed() Option {
	return func(o *options) { o.missed = true }
}

// BuildMonth returns the month's cells in chronological order: one padding
// cell per weekday before the 1st (weeks start on Sunday), then every day
// of the month. The last week row is not padded.
func BuildMonth(yearMonth, today string, lookup RecordLookup, opts ...Option) ([]Day, error) {
	first, err := prayer.ParseYearMonth(yearMonth)
	if err != nil {
		return nil, err
	}
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	lead := int(first.Weekday())
	n := DaysIn(first)
	days := make([]Day, 0, lead+n)
	for i := 0; i < lead; i++ {
		days = append(days, Day{Status: prayer.StatusEmpty})
	}

	for d := 1; d <= n; d++ {
		date := fmt.Sprintf("%s-%02d", yearMonth, d)
		var rec *prayer.DayRecord
		if lookup != nil {
			if r, ok := lookup(date); ok {
				rec = &r
			}
		}
		status := prayer.StatusOf(rec)
		if o.missed {
			status = prayer.StatusOn(rec, date, today)
		}
		days = append(days, Day{
			Date:           date,
			DayOfMonth:     d,
			IsCurrentMonth: true,
			IsToday:        date == today,
			Status:         status,
		})
	}
	return days, nil
}

// DaysIn returns the length of the month containing t.
func DaysIn(t time.Time) int {
	return time.Date(t.Year(), t.Month()+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// CurrentMonth formats now as YYYY-MM.
func CurrentMonth(now time.Time) string {
	return now.Format(prayer.MonthLayout)
}

// Today formats now as YYYY-MM-DD.
func Today(now time.Time) string {
	return now.Format(prayer.DateLayout)
}

// PrevMonth returns the month before yearMonth.
func PrevMonth(yearMonth string) (string, error) {
	return shiftMonth(yearMonth, -1)
}

// NextMonth returns the month after yearMonth.
func NextMonth(yearMonth string) (string, error) {
	return shiftMonth(yearMonth, 1)
}

func shiftMonth(yearMonth string, delta int) (string, error) {
	t, err := prayer.ParseYearMonth(yearMonth)
	if err != nil {
		return "", err
	}
	return t.AddDate(0, delta, 0).Format(prayer.MonthLayout), nil
}
