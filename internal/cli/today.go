package cli

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/sadopc/salah/internal/prayer"
	"github.com/sadopc/salah/internal/store"
	"github.com/spf13/cobra"
)

func (a *app) newTodayCmd() *cobra.Command {
	var date string
	cmd := &cobra.Command{
		Use:   "today",
		Short: "Show a day's prayers and which rakat are done",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := a.resolveDate(date)
			if err != nil {
				return err
			}
			rec, err := a.store.GetRecord(d)
			if err != nil {
				return err
			}
			a.printDay(cmd.OutOrStdout(), d, rec, a.preferences())
			return nil
		},
	}
	cmd.Flags().StringVar(&date, "date", "", "Day to show, YYYY-MM-DD (default: today)")
	return cmd
}

func (a *app) newToggleCmd() *cobra.Command {
	var date string
	cmd := &cobra.Command{
		Use:   "toggle <unit-id>...",
		Short: "Flip one or more rakat between done and not done",
		Long:  "Flip the given units for a day. Run 'salah units' for the list of unit ids.",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := a.resolveDate(date)
			if err != nil {
				return err
			}
			for _, id := range args {
				if _, ok := prayer.LookupUnit(id); !ok {
					fmt.Fprintf(cmd.ErrOrStderr(), "warning: unknown unit %q ignored\n", id)
				}
			}

			r, err := a.store.ToggleUnits(d, args...)
			if err != nil {
				return err
			}
			log.Debug().Str("date", d).Strs("units", args).Msg("[cli] toggled units")

			out := cmd.OutOrStdout()
			for _, id := range args {
				if _, ok := prayer.LookupUnit(id); ok {
					fmt.Fprintf(out, "%s %s\n", checkbox(r.Done(id)), id)
				}
			}
			a.printSummary(out, d, &r, a.preferences())
			return nil
		},
	}
	cmd.Flags().StringVar(&date, "date", "", "Day to update, YYYY-MM-DD (default: today)")
	return cmd
}

func (a *app) newGroupCmd() *cobra.Command {
	var date string
	cmd := &cobra.Command{
		Use:   "group <prayer> <index>",
		Short: "Complete or clear a whole group of rakat",
		Long: "Toggle every unit of one group, numbered as in 'salah today'.\n" +
			"A complete group is cleared; otherwise its remaining units are marked done.\n\n" +
			"Example:\n  salah group dhuhr 2",
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := a.resolveDate(date)
			if err != nil {
				return err
			}
			g, err := lookupGroup(args[0], args[1])
			if err != nil {
				return err
			}

			r, err := a.store.ToggleGroup(d, g.UnitIDs)
			if err != nil {
				return err
			}
			log.Debug().Str("date", d).Str("prayer", g.Prayer.String()).Str("group", g.Label).Msg("[cli] toggled group")

			out := cmd.OutOrStdout()
			state := "cleared"
			if prayer.IsGroupComplete(r, g.UnitIDs) {
				state = "done"
			}
			fmt.Fprintf(out, "%s %s: %s\n", g.Prayer, g.Label, state)
			a.printSummary(out, d, &r, a.preferences())
			return nil
		},
	}
	cmd.Flags().StringVar(&date, "date", "", "Day to update, YYYY-MM-DD (default: today)")
	return cmd
}

// lookupGroup resolves a prayer name and a 1-based group number.
func lookupGroup(name, index string) (prayer.Group, error) {
	t, err := prayer.ParseType(name)
	if err != nil {
		return prayer.Group{}, err
	}
	p, _ := prayer.Get(t)
	groups := p.Groups()

	i, err := strconv.Atoi(index)
	if err != nil || i < 1 || i > len(groups) {
		return prayer.Group{}, fmt.Errorf("%w: %s has groups 1-%d, got %q", prayer.ErrInvalidArgument, t, len(groups), index)
	}
	return groups[i-1], nil
}

func (a *app) newClearCmd() *cobra.Command {
	var date string
	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Delete the record of a day",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := a.resolveDate(date)
			if err != nil {
				return err
			}
			if err := a.store.DeleteRecord(d); err != nil {
				return err
			}
			log.Info().Str("date", d).Msg("[cli] cleared record")
			fmt.Fprintf(cmd.OutOrStdout(), "Cleared %s\n", d)
			return nil
		},
	}
	cmd.Flags().StringVar(&date, "date", "", "Day to clear, YYYY-MM-DD (default: today)")
	return cmd
}

func (a *app) printSummary(w io.Writer, date string, r *prayer.DayRecord, prefs store.Preferences) {
	done := 0
	if r != nil {
		done = r.CompletedCount()
	}
	fmt.Fprintf(w, "%s  %s  %d/%d rakat\n",
		titleStyle.Render(date), renderStatus(a.statusFor(r, date, prefs)), done, prayer.UnitCount)
}

func (a *app) printDay(w io.Writer, date string, rec *prayer.DayRecord, prefs store.Preferences) {
	a.printSummary(w, date, rec, prefs)

	r, _ := prayer.NewDayRecord(date)
	if rec != nil {
		r = *rec
	}
	for _, p := range prayer.Prayers() {
		fard := mutedStyle.Render("fard pending")
		if prayer.FardComplete(r, p.Type) {
			fard = doneStyle.Render("fard done")
		}
		fmt.Fprintf(w, "\n%s %s  %s  %s\n",
			titleStyle.Render(p.Type.String()), mutedStyle.Render(p.Type.ArabicName()),
			prayer.FormatClock(p.Time, prefs.TwelveHour), fard)

		for i, g := range p.Groups() {
			marks := make([]string, len(g.UnitIDs))
			for j, id := range g.UnitIDs {
				marks[j] = checkbox(r.Done(id)) + " " + id
			}
			fmt.Fprintf(w, "  %d. %-16s %s\n", i+1, g.Label, strings.Join(marks, "  "))
		}
	}
}
