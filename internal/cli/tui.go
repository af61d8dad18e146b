package cli

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sadopc/salah/internal/tui"
	"github.com/spf13/cobra"
)

func (a *app) newTUICmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Open the interactive tracker",
		Args:  cobra.NoArgs,
		RunE:  a.runTUI,
	}
}

func (a *app) runTUI(cmd *cobra.Command, args []string) error {
	p := tea.NewProgram(tui.NewApp(a.store, a.now), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
