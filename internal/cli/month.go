package cli

import (
	"fmt"
	"strings"

	"github.com/sadopc/salah/internal/calendar"
	"github.com/sadopc/salah/internal/prayer"
	"github.com/spf13/cobra"
)

var weekdayHeader = []string{"Su", "Mo", "Tu", "We", "Th", "Fr", "Sa"}

func (a *app) newMonthCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "month [YYYY-MM]",
		Short: "Show a month calendar of day statuses",
		Long: "Print a Sunday-first calendar of a month (default: the current one).\n" +
			"✓ complete  ~ partial  ✗ missed  · nothing recorded",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ym := calendar.CurrentMonth(a.now())
			if len(args) == 1 {
				ym = args[0]
			}
			first, err := prayer.ParseYearMonth(ym)
			if err != nil {
				return err
			}

			records, err := a.store.GetRecordsForMonth(ym)
			if err != nil {
				return err
			}
			var opts []calendar.Option
			if a.preferences().MarkMissed {
				opts = append(opts, calendar.WithMissed())
			}
			days, err := calendar.BuildMonth(ym, calendar.Today(a.now()), calendar.MapLookup(records), opts...)
			if err != nil {
				return err
			}
			fardDays, err := a.store.CompleteFardDays(ym)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, titleStyle.Render(first.Format("January 2006")))
			fmt.Fprintln(out, " "+strings.Join(weekdayHeader, "  "))
			for _, week := range calendar.Weeks(days) {
				var b strings.Builder
				for _, d := range week {
					if d.IsPadding() {
						b.WriteString("    ")
						continue
					}
					num := fmt.Sprintf("%3d", d.DayOfMonth)
					if d.IsToday {
						num = todayStyle.Render(num)
					}
					b.WriteString(num + statusSymbol(d.Status))
				}
				fmt.Fprintln(out, strings.TrimRight(b.String(), " "))
			}

			s := calendar.Summarize(days)
			fmt.Fprintf(out, "\ncomplete %d  partial %d  missed %d  empty %d\n", s.Complete, s.Partial, s.Missed, s.Empty)
			fmt.Fprintf(out, "All Fard kept on %d of %d days\n", fardDays, s.Days)
			return nil
		},
	}
}
