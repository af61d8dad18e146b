package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/sadopc/salah/internal/calendar"
	"github.com/sadopc/salah/internal/prayer"
	"github.com/sadopc/salah/internal/store"
)

// calendarModel shows a month grid of day statuses with a movable selection.
type calendarModel struct {
	store  *store.Store
	now    func() time.Time
	width  int
	height int

	month    string
	selected string // YYYY-MM-DD inside month
	days     []calendar.Day
	fardDays int

	markMissed bool
}

func newCalendarModel(s *store.Store, now func() time.Time) calendarModel {
	return calendarModel{
		store:      s,
		now:        now,
		month:      calendar.CurrentMonth(now()),
		selected:   calendar.Today(now()),
		markMissed: true,
	}
}

func (c *calendarModel) setSize(w, h int) {
	c.width = w
	c.height = h
}

type calendarDataMsg struct {
	month    string
	records  []prayer.DayRecord
	fardDays int
	err      error
}

func (c calendarModel) refresh() tea.Cmd {
	month := c.month
	return func() tea.Msg {
		records, err := c.store.GetRecordsForMonth(month)
		if err != nil {
			return calendarDataMsg{month: month, err: err}
		}
		n, err := c.store.CompleteFardDays(month)
		return calendarDataMsg{month: month, records: records, fardDays: n, err: err}
	}
}

func (c calendarModel) update(msg tea.Msg) (calendarModel, tea.Cmd) {
	switch msg := msg.(type) {
	case calendarDataMsg:
		if msg.month != c.month {
			return c, nil
		}
		if msg.err != nil {
			return c, func() tea.Msg {
				return statusMsg{text: fmt.Sprintf("Error: %v", msg.err), isError: true}
			}
		}
		var opts []calendar.Option
		if c.markMissed {
			opts = append(opts, calendar.WithMissed())
		}
		days, err := calendar.BuildMonth(c.month, calendar.Today(c.now()), calendar.MapLookup(msg.records), opts...)
		if err != nil {
			return c, func() tea.Msg {
				return statusMsg{text: fmt.Sprintf("Error: %v", err), isError: true}
			}
		}
		c.days = days
		c.fardDays = msg.fardDays
		return c, nil

	case recordSavedMsg:
		if strings.HasPrefix(msg.record.Date, c.month) {
			return c, c.refresh()
		}
		return c, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Left):
			return c.moveSelection(-1)
		case key.Matches(msg, keys.Right):
			return c.moveSelection(1)
		case key.Matches(msg, keys.Up):
			return c.moveSelection(-7)
		case key.Matches(msg, keys.Down):
			return c.moveSelection(7)
		case key.Matches(msg, keys.PrevMonth):
			return c.shiftMonth(-1)
		case key.Matches(msg, keys.NextMonth):
			return c.shiftMonth(1)
		case key.Matches(msg, keys.Today):
			return c.selectDate(calendar.Today(c.now()))
		case key.Matches(msg, keys.Enter):
			date := c.selected
			return c, func() tea.Msg { return dateSelectedMsg{date: date} }
		}
	}
	return c, nil
}

func (c calendarModel) moveSelection(days int) (calendarModel, tea.Cmd) {
	return c.selectDate(shiftDate(c.selected, days))
}

func (c calendarModel) shiftMonth(delta int) (calendarModel, tea.Cmd) {
	var (
		month string
		err   error
	)
	if delta < 0 {
		month, err = calendar.PrevMonth(c.month)
	} else {
		month, err = calendar.NextMonth(c.month)
	}
	if err != nil {
		return c, nil
	}
	return c.selectDate(month + "-01")
}

// selectDate moves the selection, loading another month when date leaves the
// one on screen.
func (c calendarModel) selectDate(date string) (calendarModel, tea.Cmd) {
	c.selected = date
	month := date[:len(prayer.MonthLayout)]
	if month == c.month {
		return c, nil
	}
	c.month = month
	c.days = nil
	return c, c.refresh()
}

func (c calendarModel) summary() calendar.Summary {
	return calendar.Summarize(c.days)
}

func (c calendarModel) view() string {
	w := c.width - 4

	title := "?"
	if t, err := prayer.ParseYearMonth(c.month); err == nil {
		title = t.Format("January 2006")
	}
	header := lipgloss.JoinHorizontal(lipgloss.Bottom,
		titleStyle.Render(title), "  ", mutedStyle.Render("p/n: month  enter: open day"),
	)

	var weekdays []string
	for _, d := range []string{"Su", "Mo", "Tu", "We", "Th", "Fr", "Sa"} {
		weekdays = append(weekdays, cellStyle.Foreground(colorMuted).Render(d))
	}

	var rows []string
	rows = append(rows, header, "", lipgloss.JoinHorizontal(lipgloss.Top, weekdays...))
	for _, week := range calendar.Weeks(c.days) {
		var cells []string
		for _, d := range week {
			cells = append(cells, c.renderCell(d))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}

	s := c.summary()
	rows = append(rows, "",
		c.renderLegend(),
		"",
		fmt.Sprintf("%s %d  %s %d  %s %d  %s %d",
			statusStyle(prayer.StatusComplete).Render("complete"), s.Complete,
			statusStyle(prayer.StatusPartial).Render("partial"), s.Partial,
			statusStyle(prayer.StatusMissed).Render("missed"), s.Missed,
			statusStyle(prayer.StatusEmpty).Render("empty"), s.Empty,
		),
		mutedStyle.Render(fmt.Sprintf("All Fard kept on %d of %d days", c.fardDays, s.Days)),
	)

	return panelStyle.Width(w).Render(strings.Join(rows, "\n"))
}

func (c calendarModel) renderCell(d calendar.Day) string {
	if d.IsPadding() {
		return cellStyle.Render("")
	}
	label := fmt.Sprintf("%d", d.DayOfMonth)
	if d.IsToday {
		label += "*"
	}
	style := cellStyle.Foreground(statusColor(d.Status))
	if d.Date == c.selected {
		style = selectedCellStyle.Foreground(statusColor(d.Status))
	}
	return style.Render(label)
}

func (c calendarModel) renderLegend() string {
	var items []string
	for _, s := range []prayer.DayStatus{prayer.StatusComplete, prayer.StatusPartial, prayer.StatusMissed, prayer.StatusEmpty} {
		if s == prayer.StatusMissed && !c.markMissed {
			continue
		}
		items = append(items, statusStyle(s).Render("■")+" "+s.String())
	}
	return strings.Join(items, "  ")
}
