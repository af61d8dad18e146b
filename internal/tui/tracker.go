package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog/log"
	"github.com/sadopc/salah/internal/calendar"
	"github.com/sadopc/salah/internal/prayer"
	"github.com/sadopc/salah/internal/store"
)

// trackerModel shows one day's units grouped by prayer and toggles them.
type trackerModel struct {
	store  *store.Store
	now    func() time.Time
	width  int
	height int

	date   string
	record prayer.DayRecord
	stored bool

	units  []prayer.Unit
	cursor int

	prefs     store.Preferences
	countdown countdownModel
}

func newTrackerModel(s *store.Store, now func() time.Time) trackerModel {
	today := calendar.Today(now())
	r, _ := prayer.NewDayRecord(today)
	return trackerModel{
		store:     s,
		now:       now,
		date:      today,
		record:    r,
		units:     prayer.Units(),
		prefs:     store.Preferences{MarkMissed: true, StartView: "tracker"},
		countdown: newCountdownModel(now),
	}
}

func (t trackerModel) Init() tea.Cmd {
	return t.loadData()
}

func (t *trackerModel) setSize(w, h int) {
	t.width = w
	t.height = h
}

type trackerDataMsg struct {
	date   string
	record *prayer.DayRecord
	err    error
}

func (t trackerModel) loadData() tea.Cmd {
	date := t.date
	return func() tea.Msg {
		r, err := t.store.GetRecord(date)
		return trackerDataMsg{date: date, record: r, err: err}
	}
}

func (t trackerModel) update(msg tea.Msg) (trackerModel, tea.Cmd) {
	switch msg := msg.(type) {
	case trackerDataMsg:
		if msg.date != t.date {
			return t, nil
		}
		if msg.err != nil {
			return t, func() tea.Msg {
				return statusMsg{text: fmt.Sprintf("Error: %v", msg.err), isError: true}
			}
		}
		t.stored = msg.record != nil
		if t.stored {
			t.record = *msg.record
		} else {
			t.record, _ = prayer.NewDayRecord(t.date)
		}
		return t, nil

	case recordSavedMsg:
		if msg.record.Date == t.date {
			t.record = msg.record
			t.stored = true
		}
		return t, nil

	case dateSelectedMsg:
		return t.showDate(msg.date)

	case tickMsg:
		t.countdown.tick()
		return t, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Up):
			if t.cursor > 0 {
				t.cursor--
			}
		case key.Matches(msg, keys.Down):
			if t.cursor < len(t.units)-1 {
				t.cursor++
			}
		case key.Matches(msg, keys.Toggle):
			return t, t.toggleUnit(t.units[t.cursor].ID)
		case key.Matches(msg, keys.Group), key.Matches(msg, keys.Enter):
			g, ok := t.cursorGroup()
			if !ok {
				return t, nil
			}
			return t, t.toggleGroup(g)
		case key.Matches(msg, keys.Left):
			return t.showDate(shiftDate(t.date, -1))
		case key.Matches(msg, keys.Right):
			return t.showDate(shiftDate(t.date, 1))
		case key.Matches(msg, keys.Today):
			return t.showDate(calendar.Today(t.now()))
		}
	}
	return t, nil
}

func (t trackerModel) showDate(date string) (trackerModel, tea.Cmd) {
	t.date = date
	t.record, _ = prayer.NewDayRecord(date)
	t.stored = false
	return t, t.loadData()
}

// cursorGroup returns the group holding the unit under the cursor.
func (t trackerModel) cursorGroup() (prayer.Group, bool) {
	u := t.units[t.cursor]
	p, _ := prayer.Get(u.Prayer)
	for _, g := range p.Groups() {
		for _, id := range g.UnitIDs {
			if id == u.ID {
				return g, true
			}
		}
	}
	return prayer.Group{}, false
}

func (t trackerModel) toggleUnit(id string) tea.Cmd {
	date := t.date
	return func() tea.Msg {
		r, err := t.store.ToggleUnits(date, id)
		if err != nil {
			log.Error().Err(err).Str("date", date).Str("unit", id).Msg("[tui] toggle failed")
			return statusMsg{text: fmt.Sprintf("Error: %v", err), isError: true}
		}
		return recordSavedMsg{record: r}
	}
}

func (t trackerModel) toggleGroup(g prayer.Group) tea.Cmd {
	date := t.date
	return func() tea.Msg {
		r, err := t.store.ToggleGroup(date, g.UnitIDs)
		if err != nil {
			log.Error().Err(err).Str("date", date).Str("group", g.Label).Msg("[tui] group toggle failed")
			return statusMsg{text: fmt.Sprintf("Error: %v", err), isError: true}
		}
		return recordSavedMsg{record: r}
	}
}

func (t trackerModel) status() prayer.DayStatus {
	var rec *prayer.DayRecord
	if t.stored {
		rec = &t.record
	}
	if t.prefs.MarkMissed {
		return prayer.StatusOn(rec, t.date, calendar.Today(t.now()))
	}
	return prayer.StatusOf(rec)
}

func (t trackerModel) view() string {
	if t.width < 20 {
		return "Terminal too small"
	}
	w := t.width - 4

	st := t.status()
	header := lipgloss.JoinHorizontal(lipgloss.Bottom,
		titleStyle.Render(longDate(t.date)), "  ",
		statusStyle(st).Render(st.String()), "  ",
		mutedStyle.Render(fmt.Sprintf("%d/%d rakat", t.record.CompletedCount(), prayer.UnitCount)),
	)

	var rows []string
	rows = append(rows, header)
	if t.date == calendar.Today(t.now()) {
		rows = append(rows, t.countdown.view(t.prefs.TwelveHour))
	}

	cursorID := t.units[t.cursor].ID
	for _, p := range prayer.Prayers() {
		fard := mutedStyle.Render("○ fard")
		if prayer.FardComplete(t.record, p.Type) {
			fard = successStyle.Render("● fard")
		}
		rows = append(rows, "", fmt.Sprintf("%s %s  %s  %s",
			titleStyle.Render(fmt.Sprintf("%-8s", p.Type)),
			mutedStyle.Render(p.Type.ArabicName()),
			highlightStyle.Render(prayer.FormatClock(p.Time, t.prefs.TwelveHour)),
			fard,
		))

		for _, g := range p.Groups() {
			label := normalItemStyle.Render(fmt.Sprintf("  %-16s", g.Label))
			if prayer.IsGroupComplete(t.record, g.UnitIDs) {
				label = successStyle.Render(fmt.Sprintf("  %-16s", g.Label))
			}
			var marks []string
			for _, id := range g.UnitIDs {
				mark := "[ ]"
				if t.record.Done(id) {
					mark = "[x]"
				}
				switch {
				case id == cursorID:
					mark = selectedItemStyle.Render(">" + mark[1:2] + "<")
				case t.record.Done(id):
					mark = successStyle.Render(mark)
				}
				marks = append(marks, mark)
			}
			rows = append(rows, label+" "+strings.Join(marks, " "))
		}
	}

	u := t.units[t.cursor]
	rows = append(rows, "",
		mutedStyle.Render(fmt.Sprintf("  %s · %s %s", u.ID, u.Prayer, u.Label)),
		mutedStyle.Render("  space: toggle  g/enter: group  ←/→: day  t: today"),
	)

	return panelStyle.Width(w).Render(strings.Join(rows, "\n"))
}
