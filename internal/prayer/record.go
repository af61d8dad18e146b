package prayer

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidArgument marks malformed date or month strings.
var ErrInvalidArgument = errors.New("invalid argument")

const (
	DateLayout  = "2006-01-02"
	MonthLayout = "2006-01"
)

// ParseDate parses a YYYY-MM-DD calendar date.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: date %q: want YYYY-MM-DD", ErrInvalidArgument, s)
	}
	return t, nil
}

// ParseYearMonth parses a YYYY-MM month string.
func ParseYearMonth(s string) (time.Time, error) {
	t, err := time.Parse(MonthLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: month %q: want YYYY-MM", ErrInvalidArgument, s)
	}
	return t, nil
}

// DayRecord holds the completion flag of every catalog unit for one date.
// It is a value type: copies are independent and == compares all flags.
type DayRecord struct {
	Date string
	done [UnitCount]bool
}

// NewDayRecord returns a record for date with every unit unfinished.
func NewDayRecord(date string) (DayRecord, error) {
	if _, err := ParseDate(date); err != nil {
		return DayRecord{}, err
	}
	return DayRecord{Date: date}, nil
}

// RecordFromFlags rebuilds a record from flags laid out in catalog order,
// as returned by Flags.
func RecordFromFlags(date string, flags [UnitCount]bool) DayRecord {
	return DayRecord{Date: date, done: flags}
}

// Flags returns the completion flags in catalog order (see Units).
func (r DayRecord) Flags() [UnitCount]bool { return r.done }

// Done reports whether the unit is marked complete. Unknown ids are never done.
func (r DayRecord) Done(id string) bool {
	i, ok := unitIndex[id]
	return ok && r.done[i]
}

// With returns a copy of r with the unit set to done. Unknown ids leave r unchanged.
func (r DayRecord) With(id string, done bool) DayRecord {
	if i, ok := unitIndex[id]; ok {
		r.done[i] = done
	}
	return r
}

// CompletedCount counts the units marked complete.
func (r DayRecord) CompletedCount() int {
	n := 0
	for _, d := range r.done {
		if d {
			n++
		}
	}
	return n
}

// IsBlank reports whether no unit has been marked.
func (r DayRecord) IsBlank() bool { return r.CompletedCount() == 0 }
