package cli

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/sadopc/salah/internal/calendar"
	"github.com/sadopc/salah/internal/export"
	"github.com/sadopc/salah/internal/prayer"
	"github.com/spf13/cobra"
)

func (a *app) newExportCmd() *cobra.Command {
	var format, outPath, month string
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export stored records as CSV or JSON",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if format != "csv" && format != "json" {
				return fmt.Errorf("%w: format %q: want csv or json", prayer.ErrInvalidArgument, format)
			}
			if outPath == "" {
				outPath = fmt.Sprintf("salah-export-%s.%s", calendar.Today(a.now()), format)
			}

			var (
				records []prayer.DayRecord
				err     error
			)
			if month != "" {
				records, err = a.store.GetRecordsForMonth(month)
			} else {
				records, err = a.store.ListRecords()
			}
			if err != nil {
				return err
			}

			if format == "csv" {
				err = export.ToCSV(records, outPath)
			} else {
				err = export.ToJSON(records, outPath)
			}
			if err != nil {
				log.Error().Err(err).Str("path", outPath).Msg("[cli] export failed")
				return err
			}
			log.Info().Str("path", outPath).Int("records", len(records)).Msg("[cli] exported")
			fmt.Fprintf(cmd.OutOrStdout(), "Exported %d records to %s\n", len(records), outPath)
			return nil
		},
	}
	cmd.Flags().StringVar(&format, "format", "csv", "Output format: csv or json")
	cmd.Flags().StringVarP(&outPath, "out", "o", "", "Output file (default: salah-export-<date>.<format>)")
	cmd.Flags().StringVar(&month, "month", "", "Only export one month, YYYY-MM")
	return cmd
}
