package store

import (
	"errors"
	"sync"
	"testing"

	"github.com/sadopc/salah/internal/prayer"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := NewMemory()
	if err != nil {
		t.Fatalf("new memory store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

// saveRecord is a test helper that stores a record with the given units done.
func saveRecord(t *testing.T, s *Store, date string, unitIDs ...string) prayer.DayRecord {
	t.Helper()
	r, err := prayer.NewDayRecord(date)
	if err != nil {
		t.Fatal(err)
	}
	for _, id := range unitIDs {
		r = r.With(id, true)
	}
	if err := s.SaveRecord(r); err != nil {
		t.Fatalf("save record: %v", err)
	}
	return r
}

// ============================================================
// Store initialization
// ============================================================

func TestNewMemory(t *testing.T) {
	s, err := NewMemory()
	if err != nil {
		t.Fatal(err)
	}
	defer s.Close()

	var version int
	s.db.QueryRow("PRAGMA user_version").Scan(&version)
	if version != 1 {
		t.Fatalf("expected user_version 1, got %d", version)
	}
}

func TestNewWithPath(t *testing.T) {
	dir := t.TempDir()
	path := dir + "/sub/salah.db"
	s, err := New(path)
	if err != nil {
		t.Fatal(err)
	}
	saveRecord(t, s, "2025-06-01", "fajr_fard_1")
	s.Close()

	// Reopen: no re-migration, data survives.
	s2, err := New(path)
	if err != nil {
		t.Fatal(err)
	}
	defer s2.Close()
	r, err := s2.GetRecord("2025-06-01")
	if err != nil || r == nil {
		t.Fatalf("record lost after reopen: %v", err)
	}
	if !r.Done("fajr_fard_1") {
		t.Fatal("flag lost after reopen")
	}
}

func TestDefaultDBPath(t *testing.T) {
	path, err := DefaultDBPath()
	if err != nil {
		t.Fatal(err)
	}
	if path == "" {
		t.Fatal("empty path")
	}
}

func TestMigrationIdempotent(t *testing.T) {
	s := newTestStore(t)
	if err := s.migrate(); err != nil {
		t.Fatalf("second migration failed: %v", err)
	}
}

func TestSchemaHasOneColumnPerUnit(t *testing.T) {
	s := newTestStore(t)
	rows, err := s.db.Query(`SELECT name FROM pragma_table_info('prayer_records')`)
	if err != nil {
		t.Fatal(err)
	}
	defer rows.Close()

	var cols []string
	for rows.Next() {
		var name string
		rows.Scan(&name)
		cols = append(cols, name)
	}
	if len(cols) != prayer.UnitCount+1 {
		t.Fatalf("expected %d columns, got %d", prayer.UnitCount+1, len(cols))
	}
	if cols[0] != "date" {
		t.Fatalf("first column = %q, want date", cols[0])
	}
	want := map[string]bool{"fajrSunnat1": true, "dhuhrSunnatPre4": true, "ishaSunnatPost2": true, "ishaWitr3": true}
	for _, c := range cols {
		delete(want, c)
	}
	if len(want) != 0 {
		t.Fatalf("missing columns: %v", want)
	}
}

func TestColumnName(t *testing.T) {
	tests := []struct{ in, want string }{
		{"fajr_fard_1", "fajrFard1"},
		{"dhuhr_sunnat_pre_3", "dhuhrSunnatPre3"},
		{"isha_sunnat_post_1", "ishaSunnatPost1"},
		{"maghrib_sunnat_2", "maghribSunnat2"},
	}
	for _, tt := range tests {
		if got := columnName(tt.in); got != tt.want {
			t.Errorf("columnName(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

// ============================================================
// Records
// ============================================================

func TestGetRecordAbsent(t *testing.T) {
	s := newTestStore(t)
	r, err := s.GetRecord("2025-06-01")
	if err != nil {
		t.Fatal(err)
	}
	if r != nil {
		t.Fatal("expected nil for a date with no record")
	}
}

func TestGetRecordInvalidDate(t *testing.T) {
	s := newTestStore(t)
	_, err := s.GetRecord("06/01/2025")
	if !errors.Is(err, prayer.ErrInvalidArgument) {
		t.Fatalf("expected ErrInvalidArgument, got %v", err)
	}
}

func TestSaveAndGetRecord(t *testing.T) {
	s := newTestStore(t)
	want := saveRecord(t, s, "2025-06-01", "fajr_fard_1", "dhuhr_sunnat_post_2", "isha_witr_3")

	got, err := s.GetRecord("2025-06-01")
	if err != nil {
		t.Fatal(err)
	}
	if got == nil || *got != want {
		t.Fatalf("round trip mismatch: got %+v", got)
	}
}

func TestSaveRecordReplaces(t *testing.T) {
	s := newTestStore(t)
	saveRecord(t, s, "2025-06-01", "fajr_fard_1", "fajr_fard_2")
	saveRecord(t, s, "2025-06-01", "asr_fard_1")

	got, _ := s.GetRecord("2025-06-01")
	if got.Done("fajr_fard_1") || !got.Done("asr_fard_1") {
		t.Fatalf("save should fully replace the stored record: %+v", got)
	}

	all, _ := s.ListRecords()
	if len(all) != 1 {
		t.Fatalf("expected one row per date, got %d", len(all))
	}
}

func TestSaveRecordInvalidDate(t *testing.T) {
	s := newTestStore(t)
	if err := s.SaveRecord(prayer.DayRecord{Date: "yesterday"}); !errors.Is(err, prayer.ErrInvalidArgument) {
		t.Fatalf("expected ErrInvalidArgument, got %v", err)
	}
}

func TestDeleteRecord(t *testing.T) {
	s := newTestStore(t)
	saveRecord(t, s, "2025-06-01", "fajr_fard_1")

	if err := s.DeleteRecord("2025-06-01"); err != nil {
		t.Fatal(err)
	}
	r, _ := s.GetRecord("2025-06-01")
	if r != nil {
		t.Fatal("record should be gone")
	}
	if err := s.DeleteRecord("2025-06-01"); err != nil {
		t.Fatalf("deleting a missing record should not fail: %v", err)
	}
}

func TestGetRecordsForMonth(t *testing.T) {
	s := newTestStore(t)
	saveRecord(t, s, "2025-06-10", "fajr_fard_1")
	saveRecord(t, s, "2025-06-02")
	saveRecord(t, s, "2025-07-01")
	saveRecord(t, s, "2025-05-31")

	records, err := s.GetRecordsForMonth("2025-06")
	if err != nil {
		t.Fatal(err)
	}
	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}
	if records[0].Date != "2025-06-02" || records[1].Date != "2025-06-10" {
		t.Fatalf("expected sorted by date: %s, %s", records[0].Date, records[1].Date)
	}

	if _, err := s.GetRecordsForMonth("2025-6"); !errors.Is(err, prayer.ErrInvalidArgument) {
		t.Fatalf("expected ErrInvalidArgument, got %v", err)
	}
}

func TestGetRecordsForMonthEmpty(t *testing.T) {
	s := newTestStore(t)
	records, err := s.GetRecordsForMonth("2025-06")
	if err != nil {
		t.Fatal(err)
	}
	if records != nil {
		t.Fatalf("expected nil slice, got %d items", len(records))
	}
}

func TestListRecordsNewestFirst(t *testing.T) {
	s := newTestStore(t)
	saveRecord(t, s, "2025-01-01")
	saveRecord(t, s, "2025-03-01")
	saveRecord(t, s, "2025-02-01")

	records, _ := s.ListRecords()
	if len(records) != 3 || records[0].Date != "2025-03-01" || records[2].Date != "2025-01-01" {
		t.Fatalf("unexpected order: %+v", records)
	}
}

// ============================================================
// Toggles
// ============================================================

func TestToggleUnitsCreatesRecord(t *testing.T) {
	s := newTestStore(t)
	r, err := s.ToggleUnits("2025-06-01", "maghrib_fard_1", "maghrib_fard_2")
	if err != nil {
		t.Fatal(err)
	}
	if !r.Done("maghrib_fard_1") || !r.Done("maghrib_fard_2") {
		t.Fatal("toggle should mark units done")
	}

	stored, _ := s.GetRecord("2025-06-01")
	if stored == nil || *stored != r {
		t.Fatal("toggle should persist the record")
	}
}

func TestToggleUnitsTwiceRestores(t *testing.T) {
	s := newTestStore(t)
	before := saveRecord(t, s, "2025-06-01", "asr_sunnat_1")
	s.ToggleUnits("2025-06-01", "asr_fard_3")
	after, _ := s.ToggleUnits("2025-06-01", "asr_fard_3")
	if after != before {
		t.Fatal("toggling twice should restore the record")
	}
}

func TestToggleUnknownUnitIsNoop(t *testing.T) {
	s := newTestStore(t)
	before := saveRecord(t, s, "2025-06-01", "fajr_fard_1")
	after, err := s.ToggleUnits("2025-06-01", "fajr_fard_9")
	if err != nil {
		t.Fatal(err)
	}
	if after != before {
		t.Fatal("unknown unit should leave the record unchanged")
	}
}

func TestToggleUnknownUnitDoesNotCreateRecord(t *testing.T) {
	s := newTestStore(t)
	r, err := s.ToggleUnits("2025-06-05", "not_a_unit")
	if err != nil {
		t.Fatal(err)
	}
	if !r.IsBlank() || r.Date != "2025-06-05" {
		t.Fatalf("unexpected record %+v", r)
	}

	got, err := s.GetRecord("2025-06-05")
	if err != nil {
		t.Fatal(err)
	}
	if got != nil {
		t.Fatal("no record should be stored when nothing was toggled")
	}
	month, err := s.GetRecordsForMonth("2025-06")
	if err != nil {
		t.Fatal(err)
	}
	if len(month) != 0 {
		t.Fatalf("month has %d records, want 0", len(month))
	}
}

func TestToggleInvalidDate(t *testing.T) {
	s := newTestStore(t)
	if _, err := s.ToggleUnits("2025-02-30", "fajr_fard_1"); !errors.Is(err, prayer.ErrInvalidArgument) {
		t.Fatalf("expected ErrInvalidArgument, got %v", err)
	}
}

func TestToggleGroup(t *testing.T) {
	s := newTestStore(t)
	ids := []string{"isha_witr_1", "isha_witr_2", "isha_witr_3"}
	saveRecord(t, s, "2025-06-01", "isha_witr_2")

	r, _ := s.ToggleGroup("2025-06-01", ids)
	if !prayer.IsGroupComplete(r, ids) {
		t.Fatal("group toggle on a partial group should complete it")
	}
	r, _ = s.ToggleGroup("2025-06-01", ids)
	for _, id := range ids {
		if r.Done(id) {
			t.Fatalf("group toggle on a complete group should clear %s", id)
		}
	}
}

func TestConcurrentTogglesSameDate(t *testing.T) {
	s := newTestStore(t)
	units := prayer.Units()

	var wg sync.WaitGroup
	for _, u := range units {
		wg.Add(1)
		go func(id string) {
			defer wg.Done()
			if _, err := s.ToggleUnits("2025-06-01", id); err != nil {
				t.Errorf("toggle %s: %v", id, err)
			}
		}(u.ID)
	}
	wg.Wait()

	r, _ := s.GetRecord("2025-06-01")
	if r == nil || r.CompletedCount() != len(units) {
		t.Fatalf("lost updates: %+v", r)
	}
}

func TestCompleteFardDays(t *testing.T) {
	s := newTestStore(t)
	fard := prayer.FardIDs()
	saveRecord(t, s, "2025-06-01", fard...)
	saveRecord(t, s, "2025-06-02", fard[:16]...)
	saveRecord(t, s, "2025-06-03", fard...)
	saveRecord(t, s, "2025-07-01", fard...)

	n, err := s.CompleteFardDays("2025-06")
	if err != nil {
		t.Fatal(err)
	}
	if n != 2 {
		t.Fatalf("expected 2 complete days, got %d", n)
	}
}

// ============================================================
// Settings
// ============================================================

func TestDefaultSettings(t *testing.T) {
	s := newTestStore(t)
	settings, err := s.GetAllSettings()
	if err != nil {
		t.Fatal(err)
	}
	if len(settings) != 3 {
		t.Fatalf("expected 3 default settings, got %d", len(settings))
	}

	p, err := s.GetPreferences()
	if err != nil {
		t.Fatal(err)
	}
	if p.TwelveHour || !p.MarkMissed || p.StartView != "tracker" {
		t.Fatalf("unexpected defaults: %+v", p)
	}
}

func TestSetSetting(t *testing.T) {
	s := newTestStore(t)
	if err := s.SetSetting(SettingTimeFormat, "12h"); err != nil {
		t.Fatal(err)
	}
	v, _ := s.GetSetting(SettingTimeFormat)
	if v != "12h" {
		t.Fatalf("expected 12h, got %s", v)
	}
	p, _ := s.GetPreferences()
	if !p.TwelveHour {
		t.Fatal("preferences should reflect 12h")
	}
}

func TestSetSettingRejectsInvalid(t *testing.T) {
	s := newTestStore(t)
	if err := s.SetSetting(SettingMarkMissed, "maybe"); err == nil {
		t.Fatal("expected error for invalid value")
	}
	if err := s.SetSetting("pomodoro_work", "1500"); err == nil {
		t.Fatal("expected error for unknown key")
	}
}

func TestGetSettingMissing(t *testing.T) {
	s := newTestStore(t)
	if _, err := s.GetSetting("nope"); err == nil {
		t.Fatal("expected error for missing key")
	}
}
