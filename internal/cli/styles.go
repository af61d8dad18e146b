package cli

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/sadopc/salah/internal/prayer"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true)
	mutedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#666666"))
	doneStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#2ECC71"))
	todayStyle = lipgloss.NewStyle().Underline(true)

	statusStyles = map[prayer.DayStatus]lipgloss.Style{
		prayer.StatusComplete: lipgloss.NewStyle().Foreground(lipgloss.Color("#2ECC71")),
		prayer.StatusPartial:  lipgloss.NewStyle().Foreground(lipgloss.Color("#F39C12")),
		prayer.StatusMissed:   lipgloss.NewStyle().Foreground(lipgloss.Color("#E74C3C")),
		prayer.StatusEmpty:    mutedStyle,
	}
)

func renderStatus(s prayer.DayStatus) string {
	return statusStyles[s].Render(s.String())
}

// statusSymbol is the one-character calendar mark for a status.
func statusSymbol(s prayer.DayStatus) string {
	switch s {
	case prayer.StatusComplete:
		return statusStyles[s].Render("✓")
	case prayer.StatusPartial:
		return statusStyles[s].Render("~")
	case prayer.StatusMissed:
		return statusStyles[s].Render("✗")
	}
	return mutedStyle.Render("·")
}

func checkbox(done bool) string {
	if done {
		return doneStyle.Render("[x]")
	}
	return "[ ]"
}
