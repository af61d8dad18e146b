package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/sadopc/salah/internal/prayer"
)

func sampleData(t *testing.T) []prayer.DayRecord {
	t.Helper()

	full, err := prayer.NewDayRecord("2025-06-02")
	if err != nil {
		t.Fatal(err)
	}
	for _, id := range prayer.FardIDs() {
		full = full.With(id, true)
	}
	full = full.With("isha_witr_1", true)

	partial, _ := prayer.NewDayRecord("2025-06-01")
	partial = partial.With("fajr_sunnat_1", true).With("fajr_fard_1", true).With("fajr_fard_2", true)

	blank, _ := prayer.NewDayRecord("2025-05-31")

	return []prayer.DayRecord{full, partial, blank}
}

func progress(done int) string {
	return fmt.Sprintf("%d/%d", done, prayer.UnitCount)
}

func readCSV(t *testing.T, path string) [][]string {
	t.Helper()
	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		t.Fatal(err)
	}
	return records
}

// ============================================================
// CSV
// ============================================================

func TestToCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.csv")

	if err := ToCSV(sampleData(t), path); err != nil {
		t.Fatalf("ToCSV: %v", err)
	}

	records := readCSV(t, path)

	// header + 3 data rows
	if len(records) != 4 {
		t.Fatalf("expected 4 rows (1 header + 3 data), got %d", len(records))
	}

	header := records[0]
	if len(header) != prayer.UnitCount+3 {
		t.Fatalf("header has %d columns, want %d", len(header), prayer.UnitCount+3)
	}
	if header[0] != "Date" || header[1] != "fajr_sunnat_1" || header[len(header)-1] != "Status" {
		t.Fatalf("unexpected header: %v", header)
	}

	row := records[1]
	if row[0] != "2025-06-02" {
		t.Fatalf("Date = %q, want 2025-06-02", row[0])
	}
	if row[1] != "0" || row[3] != "1" {
		t.Fatalf("fajr columns = %q %q, want 0 1", row[1], row[3])
	}
	if want := progress(18); row[len(row)-2] != want {
		t.Fatalf("Progress = %q, want %s", row[len(row)-2], want)
	}
	if row[len(row)-1] != "complete" {
		t.Fatalf("Status = %q, want complete", row[len(row)-1])
	}

	if got := records[2][len(row)-1]; got != "partial" {
		t.Fatalf("partial day status = %q", got)
	}
	if got := records[3][len(row)-1]; got != "empty" {
		t.Fatalf("blank day status = %q", got)
	}
}

func TestToCSVEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.csv")

	if err := ToCSV(nil, path); err != nil {
		t.Fatal(err)
	}

	if records := readCSV(t, path); len(records) != 1 {
		t.Fatalf("expected 1 row (header only), got %d", len(records))
	}
}

func TestToCSVBadPath(t *testing.T) {
	err := ToCSV(nil, "/nonexistent/dir/file.csv")
	if err == nil {
		t.Fatal("expected error for bad path")
	}
}

func TestToCSVFlushError(t *testing.T) {
	if _, err := os.Stat("/dev/full"); err != nil {
		t.Skip("/dev/full not available")
	}
	// Rows fit in the writer's buffer, so the write fails on the final flush.
	if err := ToCSV(sampleData(t), "/dev/full"); err == nil {
		t.Fatal("expected error when the final flush fails")
	}
}

// ============================================================
// JSON
// ============================================================

func readJSON(t *testing.T, path string) jsonExport {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	var result jsonExport
	if err := json.Unmarshal(data, &result); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	return result
}

func TestToJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.json")

	if err := ToJSON(sampleData(t), path); err != nil {
		t.Fatalf("ToJSON: %v", err)
	}

	result := readJSON(t, path)
	if result.Count != 3 {
		t.Fatalf("count = %d, want 3", result.Count)
	}
	if len(result.Records) != 3 {
		t.Fatalf("records = %d, want 3", len(result.Records))
	}

	r := result.Records[0]
	if r.Date != "2025-06-02" || r.Status != "complete" {
		t.Fatalf("first record = %s %s", r.Date, r.Status)
	}
	if r.CompletedUnits != 18 || r.Progress != progress(18) {
		t.Fatalf("completed = %d (%s), want 18", r.CompletedUnits, r.Progress)
	}
	if len(r.Units) != prayer.UnitCount {
		t.Fatalf("units map has %d keys, want %d", len(r.Units), prayer.UnitCount)
	}
	if !r.Units["isha_witr_1"] || r.Units["isha_witr_2"] {
		t.Fatal("witr flags not exported")
	}
	if len(r.FardComplete) != 5 {
		t.Fatalf("fard_complete = %v", r.FardComplete)
	}

	p := result.Records[1]
	if p.Status != "partial" || len(p.FardComplete) != 1 || p.FardComplete[0] != "Fajr" {
		t.Fatalf("partial record = %+v", p)
	}
	if result.Records[2].FardComplete != nil {
		t.Fatal("blank record should omit fard_complete")
	}
}

func TestToJSONEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.json")

	if err := ToJSON(nil, path); err != nil {
		t.Fatal(err)
	}

	result := readJSON(t, path)
	if result.Count != 0 {
		t.Fatalf("count = %d, want 0", result.Count)
	}
	if result.Records != nil {
		t.Fatal("records should be nil/null for empty export")
	}
}

func TestToJSONBadPath(t *testing.T) {
	err := ToJSON(nil, "/nonexistent/dir/file.json")
	if err == nil {
		t.Fatal("expected error for bad path")
	}
}

func TestToJSONPrettyPrinted(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pretty.json")
	ToJSON(nil, path)

	data, _ := os.ReadFile(path)
	if !strings.Contains(string(data), "\n") {
		t.Fatal("JSON should be pretty-printed with newlines")
	}
	if !strings.Contains(string(data), "  ") {
		t.Fatal("JSON should be indented with spaces")
	}
}

func TestToJSONValidTimestamp(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ts.json")
	ToJSON(sampleData(t), path)

	result := readJSON(t, path)
	if _, err := time.Parse(time.RFC3339, result.ExportedAt); err != nil {
		t.Fatalf("exported_at is not valid RFC3339: %q", result.ExportedAt)
	}
}

// ============================================================
// formatProgress (internal helper)
// ============================================================

func TestFormatProgress(t *testing.T) {
	r, _ := prayer.NewDayRecord("2025-06-01")
	if got := formatProgress(r); got != progress(0) {
		t.Errorf("formatProgress(blank) = %q", got)
	}
	r = r.With("asr_fard_1", true).With("asr_fard_2", true)
	if got := formatProgress(r); got != progress(2) {
		t.Errorf("formatProgress = %q, want %s", got, progress(2))
	}
}
