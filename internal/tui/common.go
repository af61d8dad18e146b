package tui

import (
	"time"

	"github.com/sadopc/salah/internal/prayer"
	"github.com/sadopc/salah/internal/store"
)

// viewState represents the currently active view.
type viewState int

const (
	viewTracker viewState = iota
	viewCalendar
	viewReports
	viewSettings
)

var viewNames = []string{"Tracker", "Calendar", "Reports", "Settings"}

// --- Messages ---

type statusMsg struct {
	text    string
	isError bool
}

type tickMsg time.Time

// recordSavedMsg carries a day record after a toggle was persisted.
type recordSavedMsg struct {
	record prayer.DayRecord
}

// dateSelectedMsg asks the tracker to show another day.
type dateSelectedMsg struct {
	date string
}

type prefsMsg struct {
	prefs store.Preferences
}

type settingsSavedMsg struct{}

type exportDoneMsg struct {
	path  string
	count int
}

// --- Helpers ---

// shiftDate moves a YYYY-MM-DD date by days. Invalid dates are returned as is.
func shiftDate(date string, days int) string {
	t, err := prayer.ParseDate(date)
	if err != nil {
		return date
	}
	return t.AddDate(0, 0, days).Format(prayer.DateLayout)
}

// longDate renders "Sunday, 1 June 2025".
func longDate(date string) string {
	t, err := prayer.ParseDate(date)
	if err != nil {
		return date
	}
	return t.Format("Monday, 2 January 2006")
}
