package export

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/sadopc/salah/internal/prayer"
)

type jsonExport struct {
	ExportedAt string       `json:"exported_at"`
	Count      int          `json:"count"`
	Records    []jsonRecord `json:"records"`
}

type jsonRecord struct {
	Date           string          `json:"date"`
	Status         string          `json:"status"`
	Progress       string          `json:"progress"`
	CompletedUnits int             `json:"completed_units"`
	FardComplete   []string        `json:"fard_complete,omitempty"`
	Units          map[string]bool `json:"units"`
}

func ToJSON(records []prayer.DayRecord, path string) error {
	export := jsonExport{
		ExportedAt: time.Now().UTC().Format(time.RFC3339),
		Count:      len(records),
	}

	units := prayer.Units()
	for _, r := range records {
		flags := make(map[string]bool, len(units))
		for _, u := range units {
			flags[u.ID] = r.Done(u.ID)
		}
		var fard []string
		for _, t := range prayer.Types {
			if prayer.FardComplete(r, t) {
				fard = append(fard, t.String())
			}
		}

		export.Records = append(export.Records, jsonRecord{
			Date:           r.Date,
			Status:         prayer.StatusOf(&r).String(),
			Progress:       formatProgress(r),
			CompletedUnits: r.CompletedCount(),
			FardComplete:   fard,
			Units:          flags,
		})
	}

	data, err := json.MarshalIndent(export, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal json: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write json file: %w", err)
	}
	return nil
}
