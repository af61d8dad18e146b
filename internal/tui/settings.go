package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog/log"
	"github.com/sadopc/salah/internal/store"
)

type settingsModel struct {
	store  *store.Store
	width  int
	height int

	settings   []store.Setting
	formActive bool
	form       *huh.Form

	// Form values as pointers (survive value copies)
	timeFormat *string
	markMissed *string
	startView  *string
}

func newSettingsModel(s *store.Store) settingsModel {
	tf, mm, sv := "", "", ""
	return settingsModel{
		store:      s,
		timeFormat: &tf,
		markMissed: &mm,
		startView:  &sv,
	}
}

func (s *settingsModel) setSize(w, h int) {
	s.width = w
	s.height = h
}

type settingsDataMsg struct {
	settings []store.Setting
}

func (s settingsModel) refresh() tea.Cmd {
	return func() tea.Msg {
		settings, _ := s.store.GetAllSettings()
		return settingsDataMsg{settings: settings}
	}
}

func (s settingsModel) update(msg tea.Msg) (settingsModel, tea.Cmd) {
	if s.formActive && s.form != nil {
		return s.updateForm(msg)
	}

	switch msg := msg.(type) {
	case settingsDataMsg:
		s.settings = msg.settings
		return s, nil

	case tea.KeyMsg:
		if key.Matches(msg, keys.Enter) {
			return s.showForm()
		}
	}
	return s, nil
}

func (s settingsModel) showForm() (settingsModel, tea.Cmd) {
	// Load current values
	*s.timeFormat = s.getVal(store.SettingTimeFormat, "24h")
	*s.markMissed = s.getVal(store.SettingMarkMissed, "true")
	*s.startView = s.getVal(store.SettingStartView, "tracker")

	s.form = huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().Title("Time format").
				Options(
					huh.NewOption("24-hour (15:45)", "24h"),
					huh.NewOption("12-hour (3:45 PM)", "12h"),
				).Value(s.timeFormat),
			huh.NewSelect[string]().Title("Mark past days without full Fard as missed").
				Options(
					huh.NewOption("Yes", "true"),
					huh.NewOption("No", "false"),
				).Value(s.markMissed),
			huh.NewSelect[string]().Title("Open on").
				Options(
					huh.NewOption("Tracker", "tracker"),
					huh.NewOption("Calendar", "calendar"),
				).Value(s.startView),
		).Title("Preferences"),
	).WithShowHelp(true).WithShowErrors(true)

	s.formActive = true
	return s, s.form.Init()
}

func (s settingsModel) updateForm(msg tea.Msg) (settingsModel, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		if msg.String() == "esc" {
			s.formActive = false
			s.form = nil
			return s, nil
		}
	}

	form, cmd := s.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		s.form = f
	}

	if s.form.State == huh.StateCompleted {
		s.formActive = false
		if err := s.saveSettings(); err != nil {
			return s, func() tea.Msg {
				return statusMsg{text: fmt.Sprintf("Error: %v", err), isError: true}
			}
		}
		return s, tea.Batch(s.refresh(), func() tea.Msg { return settingsSavedMsg{} })
	}

	return s, cmd
}

func (s settingsModel) saveSettings() error {
	values := map[string]string{
		store.SettingTimeFormat: *s.timeFormat,
		store.SettingMarkMissed: *s.markMissed,
		store.SettingStartView:  *s.startView,
	}
	for k, v := range values {
		if err := s.store.SetSetting(k, v); err != nil {
			log.Error().Err(err).Str("key", k).Str("value", v).Msg("[tui] save setting failed")
			return err
		}
	}
	return nil
}

func (s settingsModel) getVal(k, fallback string) string {
	v, err := s.store.GetSetting(k)
	if err != nil {
		return fallback
	}
	return v
}

func (s settingsModel) view() string {
	w := s.width - 4

	if s.formActive && s.form != nil {
		title := titleStyle.Render("Settings")
		formView := s.form.View()
		return panelStyle.Width(w).Render(
			lipgloss.JoinVertical(lipgloss.Left, title, "", formView),
		)
	}

	title := titleStyle.Render("Settings")
	hint := mutedStyle.Render("Press enter to edit settings")

	var rows []string
	rows = append(rows, title)
	rows = append(rows, "")

	for _, setting := range s.settings {
		label := lipgloss.NewStyle().Width(24).Render(setting.Key)
		value := highlightStyle.Render(formatSettingValue(setting.Key, setting.Value))
		rows = append(rows, fmt.Sprintf("  %s %s", label, value))
	}

	rows = append(rows, "")
	rows = append(rows, hint)

	return panelStyle.Width(w).Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}

func formatSettingValue(k, v string) string {
	switch k {
	case store.SettingTimeFormat:
		if v == "12h" {
			return "12-hour"
		}
		return "24-hour"
	case store.SettingMarkMissed:
		if v == "false" {
			return "off"
		}
		return "on"
	}
	return v
}
