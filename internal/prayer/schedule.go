package prayer

import (
	"fmt"
	"strconv"
	"strings"
)

// AllCompletedMessage is shown once the last prayer of the day has started.
const AllCompletedMessage = "All prayers completed"

// ParseClock parses an "HH:MM" time of day.
func ParseClock(s string) (hour, minute int, err error) {
	parts := strings.Split(strings.TrimSpace(s), ":")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("%w: time %q: want HH:MM", ErrInvalidArgument, s)
	}
	hour, err = strconv.Atoi(parts[0])
	if err != nil || hour < 0 || hour > 23 {
		return 0, 0, fmt.Errorf("%w: hour in %q", ErrInvalidArgument, s)
	}
	minute, err = strconv.Atoi(parts[1])
	if err != nil || minute < 0 || minute > 59 {
		return 0, 0, fmt.Errorf("%w: minute in %q", ErrInvalidArgument, s)
	}
	return hour, minute, nil
}

// NextPrayer returns the prayer scheduled soonest strictly after hour:minute.
// The day does not roll over: after Isha has started there is none.
func NextPrayer(hour, minute int) (Type, bool) {
	now := hour*60 + minute
	for _, p := range catalog {
		if p.minute > now {
			return p.Type, true
		}
	}
	return 0, false
}

// PrayerAt returns the prayer scheduled at exactly hour:minute, if any.
func PrayerAt(hour, minute int) (Type, bool) {
	now := hour*60 + minute
	for _, p := range catalog {
		if p.minute == now {
			return p.Type, true
		}
	}
	return 0, false
}

// TimeUntilNext describes how long until the next prayer: "2h 5m", "15m",
// "Now" when a prayer is scheduled at exactly hour:minute, or
// AllCompletedMessage when none is left today.
func TimeUntilNext(hour, minute int) string {
	if _, ok := PrayerAt(hour, minute); ok {
		return "Now"
	}
	now := hour*60 + minute
	next, ok := NextPrayer(hour, minute)
	if !ok {
		return AllCompletedMessage
	}
	diff := catalog[next].minute - now
	h, m := diff/60, diff%60
	switch {
	case h > 0:
		return fmt.Sprintf("%dh %dm", h, m)
	case m > 0:
		return fmt.Sprintf("%dm", m)
	default:
		return "Now"
	}
}

// FormatClock renders an "HH:MM" time in 24h form or as "3:04 PM".
func FormatClock(hhmm string, twelveHour bool) string {
	h, m, err := ParseClock(hhmm)
	if err != nil {
		return hhmm
	}
	if !twelveHour {
		return fmt.Sprintf("%02d:%02d", h, m)
	}
	suffix := "AM"
	if h >= 12 {
		suffix = "PM"
	}
	h12 := h % 12
	if h12 == 0 {
		h12 = 12
	}
	return fmt.Sprintf("%d:%02d %s", h12, m, suffix)
}
