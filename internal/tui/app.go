package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog/log"
	"github.com/sadopc/salah/internal/calendar"
	"github.com/sadopc/salah/internal/export"
	"github.com/sadopc/salah/internal/store"
)

// App is the root Bubble Tea model.
type App struct {
	store  *store.Store
	now    func() time.Time
	width  int
	height int

	activeView    viewState
	showHelp      bool
	exportPicking bool
	exportCursor  int
	exportDir     string
	prefsLoaded   bool

	tracker  trackerModel
	calendar calendarModel
	reports  reportsModel
	settings settingsModel

	help     help.Model
	status   string
	statusOK bool
}

func NewApp(s *store.Store, now func() time.Time) App {
	if now == nil {
		now = time.Now
	}
	h := help.New()
	h.ShowAll = false

	dir, err := os.UserHomeDir()
	if err != nil {
		dir = "."
	}

	return App{
		store:      s,
		now:        now,
		activeView: viewTracker,
		exportDir:  dir,
		tracker:    newTrackerModel(s, now),
		calendar:   newCalendarModel(s, now),
		reports:    newReportsModel(s, now),
		settings:   newSettingsModel(s),
		help:       h,
	}
}

func (a App) Init() tea.Cmd {
	return tea.Batch(
		a.tracker.Init(),
		a.loadPrefs(),
		tickCmd(),
	)
}

func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (a App) loadPrefs() tea.Cmd {
	return func() tea.Msg {
		p, err := a.store.GetPreferences()
		if err != nil {
			log.Error().Err(err).Msg("[tui] load preferences failed")
		}
		return prefsMsg{prefs: p}
	}
}

func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.help.Width = msg.Width
		contentHeight := a.height - 4 // header + footer
		a.tracker.setSize(a.width, contentHeight)
		a.calendar.setSize(a.width, contentHeight)
		a.reports.setSize(a.width, contentHeight)
		a.settings.setSize(a.width, contentHeight)
		return a, nil

	case tea.KeyMsg:
		// Export picker
		if a.exportPicking {
			return a.updateExportPicker(msg)
		}

		// The settings form captures every key while open.
		if a.isFormActive() {
			return a.updateActiveView(msg)
		}

		switch {
		case key.Matches(msg, keys.Export):
			a.exportPicking = true
			a.exportCursor = 0
			return a, nil
		case key.Matches(msg, keys.Quit):
			return a, tea.Quit
		case key.Matches(msg, keys.Help):
			a.showHelp = !a.showHelp
			a.help.ShowAll = a.showHelp
			return a, nil
		case key.Matches(msg, keys.Tab1):
			return a.switchView(viewTracker)
		case key.Matches(msg, keys.Tab2):
			return a.switchView(viewCalendar)
		case key.Matches(msg, keys.Tab3):
			return a.switchView(viewReports)
		case key.Matches(msg, keys.Tab4):
			return a.switchView(viewSettings)
		case key.Matches(msg, keys.Tab):
			return a.switchView((a.activeView + 1) % viewState(len(viewNames)))
		}

	case tickMsg:
		cmds = append(cmds, tickCmd())
		// Ticks always reach the tracker's countdown.
		var cmd tea.Cmd
		a.tracker, cmd = a.tracker.update(msg)
		if cmd != nil {
			cmds = append(cmds, cmd)
		}
		return a, tea.Batch(cmds...)

	case prefsMsg:
		a.tracker.prefs = msg.prefs
		a.calendar.markMissed = msg.prefs.MarkMissed
		if !a.prefsLoaded {
			a.prefsLoaded = true
			if msg.prefs.StartView == "calendar" {
				a.activeView = viewCalendar
			}
		}
		return a, a.calendar.refresh()

	case recordSavedMsg:
		var cmd tea.Cmd
		a.tracker, cmd = a.tracker.update(msg)
		cmds = append(cmds, cmd)
		a.calendar, cmd = a.calendar.update(msg)
		cmds = append(cmds, cmd)
		return a, tea.Batch(cmds...)

	case dateSelectedMsg:
		a.activeView = viewTracker
		var cmd tea.Cmd
		a.tracker, cmd = a.tracker.update(msg)
		return a, cmd

	case trackerDataMsg:
		var cmd tea.Cmd
		a.tracker, cmd = a.tracker.update(msg)
		return a, cmd

	case calendarDataMsg:
		var cmd tea.Cmd
		a.calendar, cmd = a.calendar.update(msg)
		return a, cmd

	case reportsDataMsg:
		var cmd tea.Cmd
		a.reports, cmd = a.reports.update(msg)
		return a, cmd

	case settingsDataMsg:
		var cmd tea.Cmd
		a.settings, cmd = a.settings.update(msg)
		return a, cmd

	case settingsSavedMsg:
		a.setStatus("Settings saved", false)
		return a, a.loadPrefs()

	case statusMsg:
		a.setStatus(msg.text, msg.isError)
		return a, nil

	case exportDoneMsg:
		a.setStatus(fmt.Sprintf("Exported %d records to %s", msg.count, msg.path), false)
		a.exportPicking = false
		return a, nil
	}

	return a.updateActiveView(msg)
}

func (a *App) setStatus(text string, isError bool) {
	a.status = text
	a.statusOK = !isError
}

func (a App) switchView(v viewState) (tea.Model, tea.Cmd) {
	a.activeView = v
	return a, a.refreshCurrentView()
}

func (a App) updateActiveView(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch a.activeView {
	case viewTracker:
		a.tracker, cmd = a.tracker.update(msg)
	case viewCalendar:
		a.calendar, cmd = a.calendar.update(msg)
	case viewReports:
		a.reports, cmd = a.reports.update(msg)
	case viewSettings:
		a.settings, cmd = a.settings.update(msg)
	}
	return a, cmd
}

func (a App) isFormActive() bool {
	return a.activeView == viewSettings && a.settings.formActive
}

func (a App) refreshCurrentView() tea.Cmd {
	switch a.activeView {
	case viewTracker:
		return a.tracker.loadData()
	case viewCalendar:
		return a.calendar.refresh()
	case viewReports:
		return a.reports.refresh()
	case viewSettings:
		return a.settings.refresh()
	}
	return nil
}

func (a App) View() string {
	if a.width == 0 {
		return "Loading..."
	}

	header := a.renderHeader()
	footer := a.renderFooter()

	var content string
	switch a.activeView {
	case viewTracker:
		content = a.tracker.view()
	case viewCalendar:
		content = a.calendar.view()
	case viewReports:
		content = a.reports.view()
	case viewSettings:
		content = a.settings.view()
	}

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := a.height - headerHeight - footerHeight
	if contentHeight < 1 {
		contentHeight = 1
	}

	if a.exportPicking {
		content = a.renderExportPicker()
	}

	content = lipgloss.NewStyle().
		Width(a.width).
		Height(contentHeight).
		Render(content)

	return lipgloss.JoinVertical(lipgloss.Left, header, content, footer)
}

func (a App) renderHeader() string {
	var tabs []string
	for i, name := range viewNames {
		label := fmt.Sprintf("%d %s", i+1, name)
		if viewState(i) == a.activeView {
			tabs = append(tabs, activeTabStyle.Render(label))
		} else {
			tabs = append(tabs, inactiveTabStyle.Render(label))
		}
	}

	tabRow := lipgloss.JoinHorizontal(lipgloss.Bottom, tabs...)

	title := lipgloss.NewStyle().Bold(true).Foreground(colorPrimary).Render("salah")
	gap := a.width - lipgloss.Width(title) - lipgloss.Width(tabRow) - 4
	if gap < 1 {
		gap = 1
	}
	spacer := lipgloss.NewStyle().Width(gap).Render("")

	return headerStyle.Render(
		lipgloss.JoinHorizontal(lipgloss.Bottom, title, spacer, tabRow),
	)
}

func (a App) renderFooter() string {
	helpView := a.help.View(keys)

	status := ""
	if a.status != "" {
		style := mutedStyle
		if !a.statusOK {
			style = errorStyle
		}
		status = style.Render(" " + a.status)
	}

	countdown := ""
	if a.activeView != viewTracker && !a.tracker.countdown.done() {
		countdown = " " + a.tracker.countdown.view(a.tracker.prefs.TwelveHour)
	}

	left := footerStyle.Render(helpView)
	right := countdown + status

	gap := a.width - lipgloss.Width(left) - lipgloss.Width(right) - 2
	if gap < 1 {
		gap = 1
	}
	spacer := lipgloss.NewStyle().Width(gap).Render("")

	return lipgloss.JoinHorizontal(lipgloss.Bottom, left, spacer, right)
}

var exportFormats = []string{"CSV", "JSON"}

func (a App) renderExportPicker() string {
	title := titleStyle.Render("Export Format")
	var rows []string
	rows = append(rows, title)
	rows = append(rows, "")
	for i, f := range exportFormats {
		cursor := "  "
		style := normalItemStyle
		if i == a.exportCursor {
			cursor = "> "
			style = selectedItemStyle
		}
		rows = append(rows, style.Render(cursor+f))
	}
	rows = append(rows, "")
	rows = append(rows, mutedStyle.Render("  enter: export  esc: cancel"))

	w := a.width - 4
	return activePanelStyle.Width(w).Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}

func (a App) updateExportPicker(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Up):
		if a.exportCursor > 0 {
			a.exportCursor--
		}
	case key.Matches(msg, keys.Down):
		if a.exportCursor < len(exportFormats)-1 {
			a.exportCursor++
		}
	case key.Matches(msg, keys.Enter):
		a.exportPicking = false
		return a, a.doExport(a.exportCursor)
	case key.Matches(msg, keys.Back):
		a.exportPicking = false
	}
	return a, nil
}

func (a App) doExport(format int) tea.Cmd {
	dir := a.exportDir
	today := calendar.Today(a.now())
	return func() tea.Msg {
		records, err := a.store.ListRecords()
		if err != nil {
			return statusMsg{text: fmt.Sprintf("Export error: %v", err), isError: true}
		}

		var path string
		if format == 0 {
			path = filepath.Join(dir, fmt.Sprintf("salah-export-%s.csv", today))
			err = export.ToCSV(records, path)
		} else {
			path = filepath.Join(dir, fmt.Sprintf("salah-export-%s.json", today))
			err = export.ToJSON(records, path)
		}
		if err != nil {
			log.Error().Err(err).Str("path", path).Msg("[tui] export failed")
			return statusMsg{text: fmt.Sprintf("Export error: %v", err), isError: true}
		}

		log.Info().Str("path", path).Int("records", len(records)).Msg("[tui] exported records")
		return exportDoneMsg{path: path, count: len(records)}
	}
}
