package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/NimbleMarkets/ntcharts/barchart"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog/log"
	"github.com/sadopc/salah/internal/calendar"
	"github.com/sadopc/salah/internal/prayer"
	"github.com/sadopc/salah/internal/store"
)

// reportsModel charts, per prayer, on how many days of a month its Fard was
// completed.
type reportsModel struct {
	store  *store.Store
	now    func() time.Time
	width  int
	height int

	month   string
	records []prayer.DayRecord
	counts  map[prayer.Type]int

	chart barchart.Model
}

func newReportsModel(s *store.Store, now func() time.Time) reportsModel {
	return reportsModel{
		store: s,
		now:   now,
		month: calendar.CurrentMonth(now()),
		chart: barchart.New(60, 12),
	}
}

func (r *reportsModel) setSize(w, h int) {
	r.width = w
	r.height = h
}

type reportsDataMsg struct {
	month   string
	records []prayer.DayRecord
	err     error
}

func (r reportsModel) refresh() tea.Cmd {
	month := r.month
	return func() tea.Msg {
		records, err := r.store.GetRecordsForMonth(month)
		return reportsDataMsg{month: month, records: records, err: err}
	}
}

func (r reportsModel) update(msg tea.Msg) (reportsModel, tea.Cmd) {
	switch msg := msg.(type) {
	case reportsDataMsg:
		if msg.month != r.month {
			return r, nil
		}
		if msg.err != nil {
			log.Error().Err(msg.err).Str("month", msg.month).Msg("[tui] load report failed")
			return r, func() tea.Msg {
				return statusMsg{text: fmt.Sprintf("Error: %v", msg.err), isError: true}
			}
		}
		r.records = msg.records
		r.counts = calendar.PrayerFardCounts(msg.records)
		r.buildChart()
		return r, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Left), key.Matches(msg, keys.PrevMonth):
			if m, err := calendar.PrevMonth(r.month); err == nil {
				r.month = m
			}
			return r, r.refresh()
		case key.Matches(msg, keys.Right), key.Matches(msg, keys.NextMonth):
			if m, err := calendar.NextMonth(r.month); err == nil {
				r.month = m
			}
			return r, r.refresh()
		case key.Matches(msg, keys.Today):
			r.month = calendar.CurrentMonth(r.now())
			return r, r.refresh()
		}
	}
	return r, nil
}

// daysTracked is the number of days of the month up to and including today.
func (r reportsModel) daysTracked() int {
	first, err := prayer.ParseYearMonth(r.month)
	if err != nil {
		return 0
	}
	n := calendar.DaysIn(first)
	current := calendar.CurrentMonth(r.now())
	switch {
	case r.month > current:
		return 0
	case r.month == current:
		return r.now().Day()
	}
	return n
}

func (r *reportsModel) buildChart() {
	chartWidth := r.width - 8
	if chartWidth < 20 {
		chartWidth = 20
	}
	chartHeight := 12
	if r.height > 30 {
		chartHeight = 16
	}

	r.chart = barchart.New(chartWidth, chartHeight)

	var bars []barchart.BarData
	for _, t := range prayer.Types {
		bars = append(bars, barchart.BarData{
			Label: t.String(),
			Values: []barchart.BarValue{{
				Name:  t.String(),
				Value: float64(r.counts[t]),
				Style: lipgloss.NewStyle().Foreground(colorPrimary),
			}},
		})
	}

	r.chart.PushAll(bars)
	r.chart.Draw()
}

func (r reportsModel) view() string {
	w := r.width - 4

	title := r.month
	if t, err := prayer.ParseYearMonth(r.month); err == nil {
		title = t.Format("January 2006")
	}
	header := lipgloss.JoinHorizontal(lipgloss.Bottom,
		titleStyle.Render("Reports"), "  ", mutedStyle.Render(title),
	)

	chartView := r.chart.View()
	tableView := r.renderTable(w)
	nav := mutedStyle.Render("  ←/→: month  t: this month")

	return panelStyle.Width(w).Render(
		lipgloss.JoinVertical(lipgloss.Left,
			header, "", chartView, "", tableView, "", nav,
		),
	)
}

func (r reportsModel) renderTable(w int) string {
	if len(r.records) == 0 {
		return mutedStyle.Render("  No records for this month")
	}

	days := r.daysTracked()
	var rows []string
	rows = append(rows, mutedStyle.Render(fmt.Sprintf("  %-10s %10s %8s", "Prayer", "Fard days", "Rate")))
	rows = append(rows, mutedStyle.Render("  "+strings.Repeat("─", max(0, min(w-6, 30)))))
	for _, t := range prayer.Types {
		rate := "-"
		if days > 0 {
			rate = fmt.Sprintf("%d%%", r.counts[t]*100/days)
		}
		rows = append(rows, fmt.Sprintf("  %-10s %10d %8s", t, r.counts[t], rate))
	}
	return strings.Join(rows, "\n")
}
