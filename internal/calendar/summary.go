package calendar

import "github.com/sadopc/salah/internal/prayer"

// Summary counts a month's days by status. Padding cells are skipped.
type Summary struct {
	Days     int
	Complete int
	Partial  int
	Missed   int
	Empty    int
}

func Summarize(days []Day) Summary {
	var s Summary
	for _, d := range days {
		if d.IsPadding() {
			continue
		}
		s.Days++
		switch d.Status {
		case prayer.StatusComplete:
			s.Complete++
		case prayer.StatusPartial:
			s.Partial++
		case prayer.StatusMissed:
			s.Missed++
		default:
			s.Empty++
		}
	}
	return s
}

// PrayerFardCounts counts, per prayer, the records whose Fard is complete.
func PrayerFardCounts(records []prayer.DayRecord) map[prayer.Type]int {
	counts := make(map[prayer.Type]int, len(prayer.Types))
	for _, t := range prayer.Types {
		counts[t] = 0
	}
	for _, r := range records {
		for _, t := range prayer.Types {
			if prayer.FardComplete(r, t) {
				counts[t]++
			}
		}
	}
	return counts
}

// Weeks splits cells into rows of seven. The last row may be shorter.
func Weeks(days []Day) [][]Day {
	var rows [][]Day
	for i := 0; i < len(days); i += 7 {
		end := i + 7
		if end > len(days) {
			end = len(days)
		}
		rows = append(rows, days[i:end])
	}
	return rows
}
