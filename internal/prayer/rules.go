package prayer

// DayStatus summarises a day's Fard completion.
type DayStatus int

const (
	StatusEmpty DayStatus = iota
	StatusPartial
	StatusMissed
	StatusComplete
)

var statusNames = [...]string{"empty", "partial", "missed", "complete"}

func (s DayStatus) String() string {
	if s < StatusEmpty || s > StatusComplete {
		return "unknown"
	}
	return statusNames[s]
}

// IsGroupComplete reports whether every id is marked done in r.
// An empty group is vacuously complete.
func IsGroupComplete(r DayRecord, ids []string) bool {
	for _, id := range ids {
		if !r.Done(id) {
			return false
		}
	}
	return true
}

// FardComplete reports whether all Fard units of prayer t are done.
func FardComplete(r DayRecord, t Type) bool {
	p, ok := Get(t)
	if !ok {
		return false
	}
	return IsGroupComplete(r, UnitIDs(p.FardUnits()))
}

// AllFardComplete reports whether the Fard of all five prayers is done.
func AllFardComplete(r DayRecord) bool {
	return IsGroupComplete(r, FardIDs())
}

// StatusOf derives the day status from a record; nil means no record is
// stored. Only Fard units count. It never returns StatusMissed: that needs
// the date compared against today, see StatusOn.
func StatusOf(r *DayRecord) DayStatus {
	if r == nil {
		return StatusEmpty
	}
	all, some := true, false
	for _, t := range Types {
		done := FardComplete(*r, t)
		all = all && done
		some = some || done
	}
	switch {
	case all:
		return StatusComplete
	case some:
		return StatusPartial
	default:
		return StatusEmpty
	}
}

// StatusOn is StatusOf with past days that lack complete Fard reported as
// missed. Dates are YYYY-MM-DD so string order is chronological.
func StatusOn(r *DayRecord, date, today string) DayStatus {
	s := StatusOf(r)
	if s != StatusComplete && date != "" && date < today {
		return StatusMissed
	}
	return s
}

// ToggleUnit returns a copy of r with one unit flipped. Unknown ids return r
// unchanged.
func ToggleUnit(r DayRecord, id string) DayRecord {
	if _, ok := unitIndex[id]; !ok {
		return r
	}
	return r.With(id, !r.Done(id))
}

// ToggleUnits folds ToggleUnit over ids in order. A repeated id flips twice.
func ToggleUnits(r DayRecord, ids []string) DayRecord {
	for _, id := range ids {
		r = ToggleUnit(r, id)
	}
	return r
}
