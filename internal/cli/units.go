package cli

import (
	"fmt"

	"github.com/sadopc/salah/internal/prayer"
	"github.com/spf13/cobra"
)

func (a *app) newUnitsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "units [prayer]",
		Short: "List every trackable unit id",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			units := prayer.Units()
			if len(args) == 1 {
				t, err := prayer.ParseType(args[0])
				if err != nil {
					return err
				}
				p, _ := prayer.Get(t)
				units = p.Units
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "  %-22s %-8s %-7s %s\n", "ID", "Prayer", "Kind", "Label")
			fmt.Fprintf(out, "  %-22s %-8s %-7s %s\n", "──", "──────", "────", "─────")
			for _, u := range units {
				fmt.Fprintf(out, "  %-22s %-8s %-7s %s\n", u.ID, u.Prayer, u.Category, u.Label)
			}
			return nil
		},
	}
}
