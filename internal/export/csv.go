package export

import (
	"encoding/csv"
	"fmt"
	"os"

	"github.com/sadopc/salah/internal/prayer"
)

// ToCSV writes one row per record: the date, a 0/1 column per unit, the
// progress and the day status.
func ToCSV(records []prayer.DayRecord, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create csv file: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)

	units := prayer.Units()

	// Header
	header := make([]string, 0, len(units)+3)
	header = append(header, "Date")
	header = append(header, prayer.UnitIDs(units)...)
	header = append(header, "Progress", "Status")
	if err := w.Write(header); err != nil {
		return err
	}

	for _, r := range records {
		row := make([]string, 0, len(header))
		row = append(row, r.Date)
		for _, u := range units {
			if r.Done(u.ID) {
				row = append(row, "1")
			} else {
				row = append(row, "0")
			}
		}
		row = append(row, formatProgress(r), prayer.StatusOf(&r).String())
		if err := w.Write(row); err != nil {
			return err
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("write csv file: %w", err)
	}
	return nil
}

func formatProgress(r prayer.DayRecord) string {
	return fmt.Sprintf("%d/%d", r.CompletedCount(), prayer.UnitCount)
}
