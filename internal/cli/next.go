package cli

import (
	"fmt"

	"github.com/sadopc/salah/internal/prayer"
	"github.com/spf13/cobra"
)

func (a *app) newNextCmd() *cobra.Command {
	var at string
	cmd := &cobra.Command{
		Use:   "next",
		Short: "Show the next prayer with countdown",
		Long:  "Show the next prayer of the day and the time left until it starts.\nThe schedule does not roll over to tomorrow.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			now := a.now()
			h, m := now.Hour(), now.Minute()
			if at != "" {
				var err error
				if h, m, err = prayer.ParseClock(at); err != nil {
					return err
				}
			}
			twelve := a.preferences().TwelveHour
			out := cmd.OutOrStdout()

			if t, ok := prayer.PrayerAt(h, m); ok {
				p, _ := prayer.Get(t)
				fmt.Fprintf(out, "%s is now (%s)\n", t, prayer.FormatClock(p.Time, twelve))
				return nil
			}
			t, ok := prayer.NextPrayer(h, m)
			if !ok {
				fmt.Fprintln(out, prayer.AllCompletedMessage)
				return nil
			}
			p, _ := prayer.Get(t)
			fmt.Fprintf(out, "Next: %s at %s (in %s)\n", t, prayer.FormatClock(p.Time, twelve), prayer.TimeUntilNext(h, m))
			return nil
		},
	}
	cmd.Flags().StringVar(&at, "at", "", "Time of day to count from, HH:MM (default: now)")
	return cmd
}
