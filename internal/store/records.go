package store

import (
	"database/sql"
	"fmt"
	"strings"
	"unicode"

	"github.com/rs/zerolog/log"
	"github.com/sadopc/salah/internal/prayer"
)

// recordColumns names one column per catalog unit, in catalog order.
// "dhuhr_sunnat_pre_1" is stored as dhuhrSunnatPre1.
var recordColumns = func() []string {
	units := prayer.Units()
	cols := make([]string, len(units))
	for i, u := range units {
		cols[i] = columnName(u.ID)
	}
	return cols
}()

func columnName(unitID string) string {
	parts := strings.Split(unitID, "_")
	var b strings.Builder
	b.WriteString(parts[0])
	for _, p := range parts[1:] {
		r := []rune(p)
		r[0] = unicode.ToUpper(r[0])
		b.WriteString(string(r))
	}
	return b.String()
}

func quotedColumns() string {
	q := make([]string, len(recordColumns))
	for i, c := range recordColumns {
		q[i] = fmt.Sprintf("%q", c)
	}
	return strings.Join(q, ", ")
}

var (
	selectRecord = `SELECT date, ` + quotedColumns() + ` FROM prayer_records`
	upsertRecord = func() string {
		ph := strings.TrimSuffix(strings.Repeat("?, ", len(recordColumns)+1), ", ")
		sets := make([]string, len(recordColumns))
		for i, c := range recordColumns {
			sets[i] = fmt.Sprintf("%q = excluded.%q", c, c)
		}
		return `INSERT INTO prayer_records (date, ` + quotedColumns() + `) VALUES (` + ph + `)
		 ON CONFLICT(date) DO UPDATE SET ` + strings.Join(sets, ", ")
	}()
)

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRecord(row rowScanner) (prayer.DayRecord, error) {
	var date string
	var vals [prayer.UnitCount]int
	dest := make([]any, 0, len(vals)+1)
	dest = append(dest, &date)
	for i := range vals {
		dest = append(dest, &vals[i])
	}
	if err := row.Scan(dest...); err != nil {
		return prayer.DayRecord{}, err
	}
	var flags [prayer.UnitCount]bool
	for i, v := range vals {
		flags[i] = v == 1
	}
	return prayer.RecordFromFlags(date, flags), nil
}

func recordArgs(r prayer.DayRecord) []any {
	flags := r.Flags()
	args := make([]any, 0, len(flags)+1)
	args = append(args, r.Date)
	for _, f := range flags {
		v := 0
		if f {
			v = 1
		}
		args = append(args, v)
	}
	return args
}

// GetRecord returns the stored record for date, or nil if none is stored.
func (s *Store) GetRecord(date string) (*prayer.DayRecord, error) {
	if _, err := prayer.ParseDate(date); err != nil {
		return nil, err
	}
	r, err := scanRecord(s.db.QueryRow(selectRecord+` WHERE date = ?`, date))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get record %s: %w", date, err)
	}
	return &r, nil
}

// GetRecordsForMonth returns the stored records of a YYYY-MM month, by date.
func (s *Store) GetRecordsForMonth(yearMonth string) ([]prayer.DayRecord, error) {
	if _, err := prayer.ParseYearMonth(yearMonth); err != nil {
		return nil, err
	}
	return s.queryRecords(selectRecord+` WHERE date LIKE ? ORDER BY date`, yearMonth+"-%")
}

// ListRecords returns every stored record, newest first.
func (s *Store) ListRecords() ([]prayer.DayRecord, error) {
	return s.queryRecords(selectRecord + ` ORDER BY date DESC`)
}

func (s *Store) queryRecords(query string, args ...any) ([]prayer.DayRecord, error) {
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("list records: %w", err)
	}
	defer rows.Close()

	var records []prayer.DayRecord
	for rows.Next() {
		r, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, r)
	}
	return records, rows.Err()
}

// SaveRecord inserts the record or fully replaces the one stored for its date.
func (s *Store) SaveRecord(r prayer.DayRecord) error {
	if _, err := prayer.ParseDate(r.Date); err != nil {
		return err
	}
	if _, err := s.db.Exec(upsertRecord, recordArgs(r)...); err != nil {
		log.Error().Err(err).Str("date", r.Date).Msg("[store] save record failed")
		return fmt.Errorf("save record %s: %w", r.Date, err)
	}
	return nil
}

// DeleteRecord removes the record for date. Deleting a missing record is not an error.
func (s *Store) DeleteRecord(date string) error {
	if _, err := prayer.ParseDate(date); err != nil {
		return err
	}
	if _, err := s.db.Exec(`DELETE FROM prayer_records WHERE date = ?`, date); err != nil {
		return fmt.Errorf("delete record %s: %w", date, err)
	}
	return nil
}

// UpdateRecord loads the record for date (blank if none is stored), applies
// fn and saves the result, all inside one transaction. Nothing is written
// when no record was stored and fn changes nothing.
func (s *Store) UpdateRecord(date string, fn func(prayer.DayRecord) prayer.DayRecord) (prayer.DayRecord, error) {
	cur, err := prayer.NewDayRecord(date)
	if err != nil {
		return prayer.DayRecord{}, err
	}

	tx, err := s.db.Begin()
	if err != nil {
		return prayer.DayRecord{}, fmt.Errorf("begin update %s: %w", date, err)
	}
	defer tx.Rollback()

	stored, err := scanRecord(tx.QueryRow(selectRecord+` WHERE date = ?`, date))
	found := err == nil
	switch {
	case found:
		cur = stored
	case err != sql.ErrNoRows:
		return prayer.DayRecord{}, fmt.Errorf("get record %s: %w", date, err)
	}

	next := fn(cur)
	next.Date = date
	// An unchanged blank day stays unstored.
	if !found && next.Flags() == cur.Flags() {
		return next, nil
	}
	if _, err := tx.Exec(upsertRecord, recordArgs(next)...); err != nil {
		log.Error().Err(err).Str("date", date).Msg("[store] update record failed")
		return prayer.DayRecord{}, fmt.Errorf("save record %s: %w", date, err)
	}
	if err := tx.Commit(); err != nil {
		return prayer.DayRecord{}, fmt.Errorf("commit update %s: %w", date, err)
	}
	return next, nil
}

// ToggleUnits flips the given units of date's record and persists it.
func (s *Store) ToggleUnits(date string, unitIDs ...string) (prayer.DayRecord, error) {
	return s.UpdateRecord(date, func(r prayer.DayRecord) prayer.DayRecord {
		return prayer.ToggleUnits(r, unitIDs)
	})
}

// ToggleGroup clears a complete group or completes an unfinished one.
func (s *Store) ToggleGroup(date string, unitIDs []string) (prayer.DayRecord, error) {
	return s.UpdateRecord(date, func(r prayer.DayRecord) prayer.DayRecord {
		return prayer.ToggleUnits(r, prayer.GroupToggleIDs(r, unitIDs))
	})
}

// CompleteFardDays counts the days of a month with every Fard unit done.
func (s *Store) CompleteFardDays(yearMonth string) (int, error) {
	if _, err := prayer.ParseYearMonth(yearMonth); err != nil {
		return 0, err
	}
	var conds []string
	for _, id := range prayer.FardIDs() {
		conds = append(conds, fmt.Sprintf("%q = 1", columnName(id)))
	}
	var n int
	err := s.db.QueryRow(
		`SELECT COUNT(*) FROM prayer_records WHERE date LIKE ? AND `+strings.Join(conds, " AND "),
		yearMonth+"-%",
	).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count complete days %s: %w", yearMonth, err)
	}
	return n, nil
}
