package calendar

import (
	"testing"
	"time"

	"github.com/sadopc/salah/internal/prayer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func countDays(days []Day) (padding, real int) {
	for _, d := range days {
		if d.IsPadding() {
			padding++
		} else {
			real++
		}
	}
	return
}

func fullFard(t *testing.T, date string) prayer.DayRecord {
	t.Helper()
	r, err := prayer.NewDayRecord(date)
	require.NoError(t, err)
	for _, id := range prayer.FardIDs() {
		r = r.With(id, true)
	}
	return r
}

// ---------------------------------------------------------------------------
// BuildMonth
// ---------------------------------------------------------------------------

func TestBuildMonthLengths(t *testing.T) {
	tests := []struct {
		month       string
		wantPadding int
		wantDays    int
	}{
		{"2024-02", 4, 29}, // leap year, starts Thursday
		{"2023-02", 3, 28},
		{"2025-06", 0, 30}, // starts Sunday
		{"2025-03", 6, 31}, // starts Saturday
		{"2000-02", 2, 29},
		{"1900-02", 4, 28},
	}
	for _, tt := range tests {
		t.Run(tt.month, func(t *testing.T) {
			days, err := BuildMonth(tt.month, "", nil)
			require.NoError(t, err)
			padding, real := countDays(days)
			assert.Equal(t, tt.wantPadding, padding)
			assert.Equal(t, tt.wantDays, real)
		})
	}
}

func TestBuildMonthJune2025(t *testing.T) {
	empty := MapLookup(nil)
	days, err := BuildMonth("2025-06", "2025-06-01", empty)
	require.NoError(t, err)

	first := time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC)
	padding, _ := countDays(days)
	assert.Equal(t, int(first.Weekday()), padding)

	for _, d := range days {
		assert.Equal(t, prayer.StatusEmpty, d.Status)
	}
	day1 := days[padding]
	assert.Equal(t, 1, day1.DayOfMonth)
	assert.Equal(t, "2025-06-01", day1.Date)
	assert.True(t, day1.IsToday)
	assert.True(t, day1.IsCurrentMonth)
	for _, d := range days[padding+1:] {
		assert.False(t, d.IsToday, d.Date)
	}
}

func TestBuildMonthPaddingCells(t *testing.T) {
	days, err := BuildMonth("2024-02", "2024-02-10", nil)
	require.NoError(t, err)
	for _, d := range days[:4] {
		assert.Equal(t, "", d.Date)
		assert.Equal(t, 0, d.DayOfMonth)
		assert.False(t, d.IsCurrentMonth)
		assert.False(t, d.IsToday)
		assert.Equal(t, prayer.StatusEmpty, d.Status)
	}
}

func TestBuildMonthChronological(t *testing.T) {
	days, err := BuildMonth("2024-12", "", nil)
	require.NoError(t, err)
	prev := ""
	for _, d := range days {
		if d.IsPadding() {
			continue
		}
		assert.Greater(t, d.Date, prev)
		prev = d.Date
	}
	assert.Equal(t, "2024-12-31", prev)
}

func TestBuildMonthStatuses(t *testing.T) {
	partial, _ := prayer.NewDayRecord("2025-06-03")
	partial = partial.With("fajr_fard_1", true).With("fajr_fard_2", true)
	sunnatOnly, _ := prayer.NewDayRecord("2025-06-04")
	sunnatOnly = sunnatOnly.With("asr_sunnat_1", true)

	lookup := MapLookup([]prayer.DayRecord{fullFard(t, "2025-06-02"), partial, sunnatOnly})
	days, err := BuildMonth("2025-06", "2025-06-10", lookup)
	require.NoError(t, err)

	byDate := map[string]prayer.DayStatus{}
	for _, d := range days {
		byDate[d.Date] = d.Status
	}
	assert.Equal(t, prayer.StatusComplete, byDate["2025-06-02"])
	assert.Equal(t, prayer.StatusPartial, byDate["2025-06-03"])
	assert.Equal(t, prayer.StatusEmpty, byDate["2025-06-04"])
	assert.Equal(t, prayer.StatusEmpty, byDate["2025-06-05"])
}

func TestBuildMonthWithMissed(t *testing.T) {
	partial, _ := prayer.NewDayRecord("2025-06-03")
	partial = partial.With("isha_fard_1", true).With("isha_fard_2", true).
		With("isha_fard_3", true).With("isha_fard_4", true)
	lookup := MapLookup([]prayer.DayRecord{fullFard(t, "2025-06-02"), partial})

	days, err := BuildMonth("2025-06", "2025-06-04", lookup, WithMissed())
	require.NoError(t, err)

	byDate := map[string]prayer.DayStatus{}
	for _, d := range days {
		byDate[d.Date] = d.Status
	}
	assert.Equal(t, prayer.StatusMissed, byDate["2025-06-01"])
	assert.Equal(t, prayer.StatusComplete, byDate["2025-06-02"])
	assert.Equal(t, prayer.StatusMissed, byDate["2025-06-03"])
	assert.Equal(t, prayer.StatusEmpty, byDate["2025-06-04"], "today is never missed")
	assert.Equal(t, prayer.StatusEmpty, byDate["2025-06-30"])
	assert.Equal(t, prayer.StatusEmpty, byDate[""], "padding stays empty")
}

func TestBuildMonthInvalid(t *testing.T) {
	for _, bad := range []string{"", "2025", "2025-13", "2025-6", "June 2025", "2025-06-01"} {
		_, err := BuildMonth(bad, "", nil)
		assert.ErrorIs(t, err, prayer.ErrInvalidArgument, bad)
	}
}

// ---------------------------------------------------------------------------
// Navigation and helpers
// ---------------------------------------------------------------------------

func TestMonthNavigation(t *testing.T) {
	got, err := PrevMonth("2025-01")
	require.NoError(t, err)
	assert.Equal(t, "2024-12", got)

	got, err = NextMonth("2024-12")
	require.NoError(t, err)
	assert.Equal(t, "2025-01", got)

	_, err = NextMonth("bad")
	assert.ErrorIs(t, err, prayer.ErrInvalidArgument)
}

func TestCurrentMonthAndToday(t *testing.T) {
	now := time.Date(2026, time.October, 15, 22, 30, 0, 0, time.UTC)
	assert.Equal(t, "2026-10", CurrentMonth(now))
	assert.Equal(t, "2026-10-15", Today(now))
}

func TestDaysIn(t *testing.T) {
	assert.Equal(t, 29, DaysIn(time.Date(2024, time.February, 1, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, 31, DaysIn(time.Date(2024, time.December, 1, 0, 0, 0, 0, time.UTC)))
}

func TestSummarize(t *testing.T) {
	lookup := MapLookup([]prayer.DayRecord{fullFard(t, "2025-06-02"), fullFard(t, "2025-06-05")})
	days, err := BuildMonth("2025-06", "2025-06-06", lookup, WithMissed())
	require.NoError(t, err)

	s := Summarize(days)
	assert.Equal(t, 30, s.Days)
	assert.Equal(t, 2, s.Complete)
	assert.Equal(t, 3, s.Missed)
	assert.Equal(t, 0, s.Partial)
	assert.Equal(t, 25, s.Empty)
}

func TestPrayerFardCounts(t *testing.T) {
	partial, _ := prayer.NewDayRecord("2025-06-03")
	partial = partial.With("maghrib_fard_1", true).With("maghrib_fard_2", true).With("maghrib_fard_3", true)

	counts := PrayerFardCounts([]prayer.DayRecord{fullFard(t, "2025-06-02"), partial})
	assert.Equal(t, 1, counts[prayer.Fajr])
	assert.Equal(t, 2, counts[prayer.Maghrib])
	assert.Len(t, counts, 5)
}

func TestWeeks(t *testing.T) {
	days, err := BuildMonth("2024-02", "", nil)
	require.NoError(t, err)
	rows := Weeks(days)
	require.Len(t, rows, 5)
	assert.Len(t, rows[0], 7)
	assert.Len(t, rows[4], 5) // 4 padding + 29 days = 33 cells
}
