// Package prayer holds the fixed catalog of the five daily prayers, the
// per-day completion record and the rules that derive a day's status from it.
package prayer

import (
	"fmt"
	"strings"
)

// Type is one of the five daily prayers, in chronological order.
type Type int

const (
	Fajr Type = iota
	Dhuhr
	Asr
	Maghrib
	Isha
)

// Types lists every prayer in display order.
var Types = []Type{Fajr, Dhuhr, Asr, Maghrib, Isha}

var typeNames = [...]string{"Fajr", "Dhuhr", "Asr", "Maghrib", "Isha"}

var arabicNames = [...]string{"فجر", "ظهر", "عصر", "مغرب", "عشاء"}

func (t Type) String() string {
	if t < Fajr || t > Isha {
		return fmt.Sprintf("Type(%d)", int(t))
	}
	return typeNames[t]
}

// ArabicName returns the prayer's name in Arabic script.
func (t Type) ArabicName() string {
	if t < Fajr || t > Isha {
		return ""
	}
	return arabicNames[t]
}

// ParseType resolves a prayer name case-insensitively ("fajr", "Isha").
func ParseType(s string) (Type, error) {
	for i, name := range typeNames {
		if strings.EqualFold(strings.TrimSpace(s), name) {
			return Type(i), nil
		}
	}
	return 0, fmt.Errorf("%w: unknown prayer %q", ErrInvalidArgument, s)
}

// Category classifies a unit as obligatory, recommended, closing or voluntary.
type Category int

const (
	Fard Category = iota
	Sunnat
	Witr
	Nafl
)

var categoryNames = [...]string{"Fard", "Sunnat", "Witr", "Nafl"}

func (c Category) String() string {
	if c < Fard || c > Nafl {
		return fmt.Sprintf("Category(%d)", int(c))
	}
	return categoryNames[c]
}

// Unit is a single trackable rakat of a prayer.
type Unit struct {
	ID       string
	Prayer   Type
	Category Category
	Ordinal  int
	Label    string

	// position separates the Sunnat before Fard from the Sunnat after it.
	position string
}

// Prayer bundles a prayer with its scheduled time and its ordered units.
type Prayer struct {
	Type  Type
	Time  string // HH:MM
	Units []Unit

	minute int
}

// Minute returns the scheduled time as minutes after midnight.
func (p Prayer) Minute() int { return p.minute }

// UnitsIn filters the prayer's units by category, keeping catalog order.
func (p Prayer) UnitsIn(c Category) []Unit {
	var out []Unit
	for _, u := range p.Units {
		if u.Category == c {
			out = append(out, u)
		}
	}
	return out
}

func (p Prayer) FardUnits() []Unit   { return p.UnitsIn(Fard) }
func (p Prayer) SunnatUnits() []Unit { return p.UnitsIn(Sunnat) }
func (p Prayer) WitrUnits() []Unit   { return p.UnitsIn(Witr) }
func (p Prayer) NaflUnits() []Unit   { return p.UnitsIn(Nafl) }

// UnitIDs extracts the ids of units, preserving order.
func UnitIDs(units []Unit) []string {
	ids := make([]string, len(units))
	for i, u := range units {
		ids[i] = u.ID
	}
	return ids
}

// UnitCount is the number of units in the catalog. Persisted records carry
// exactly one flag per unit.
const UnitCount = 40

type block struct {
	category Category
	position string
	count    int
}

// layout is the declarative source of the catalog.
var layout = []struct {
	typ    Type
	time   string
	blocks []block
}{
	{Fajr, "05:15", []block{{Sunnat, "", 2}, {Fard, "", 2}}},
	{Dhuhr, "12:30", []block{{Sunnat, "pre", 4}, {Fard, "", 4}, {Sunnat, "post", 2}}},
	{Asr, "15:45", []block{{Sunnat, "", 4}, {Fard, "", 4}}},
	{Maghrib, "18:15", []block{{Fard, "", 3}, {Sunnat, "", 2}}},
	{Isha, "20:00", []block{{Sunnat, "pre", 4}, {Fard, "", 4}, {Sunnat, "post", 2}, {Witr, "", 3}}},
}

var (
	catalog   []Prayer
	allUnits  []Unit
	unitIndex map[string]int
)

func init() {
	unitIndex = make(map[string]int, UnitCount)
	for _, l := range layout {
		h, m, err := ParseClock(l.time)
		if err != nil {
			panic(fmt.Sprintf("prayer: bad scheduled time for %s: %v", l.typ, err))
		}
		p := Prayer{Type: l.typ, Time: l.time, minute: h*60 + m}
		for _, b := range l.blocks {
			for n := 1; n <= b.count; n++ {
				u := newUnit(l.typ, b, n)
				if _, dup := unitIndex[u.ID]; dup {
					panic("prayer: duplicate unit id " + u.ID)
				}
				unitIndex[u.ID] = len(allUnits)
				allUnits = append(allUnits, u)
				p.Units = append(p.Units, u)
			}
		}
		catalog = append(catalog, p)
	}
	if len(allUnits) != UnitCount {
		panic(fmt.Sprintf("prayer: catalog has %d units, want %d", len(allUnits), UnitCount))
	}
}

func newUnit(t Type, b block, n int) Unit {
	parts := []string{strings.ToLower(t.String()), strings.ToLower(b.category.String())}
	label := b.category.String()
	if b.position != "" {
		parts = append(parts, b.position)
		if b.position == "post" {
			label += " Post"
		}
	}
	parts = append(parts, fmt.Sprint(n))
	return Unit{
		ID:       strings.Join(parts, "_"),
		Prayer:   t,
		Category: b.category,
		Ordinal:  n,
		Label:    fmt.Sprintf("%s %d", label, n),
		position: b.position,
	}
}

// Prayers returns the catalog in chronological order. The result is a copy;
// callers may modify it freely.
func Prayers() []Prayer {
	out := make([]Prayer, len(catalog))
	for i, p := range catalog {
		out[i] = p
		out[i].Units = append([]Unit(nil), p.Units...)
	}
	return out
}

// Get returns the catalog entry for a single prayer.
func Get(t Type) (Prayer, bool) {
	if t < Fajr || t > Isha {
		return Prayer{}, false
	}
	p := catalog[t]
	p.Units = append([]Unit(nil), p.Units...)
	return p, true
}

// Units returns every unit of every prayer in catalog order.
func Units() []Unit {
	return append([]Unit(nil), allUnits...)
}

// LookupUnit finds a unit by id.
func LookupUnit(id string) (Unit, bool) {
	i, ok := unitIndex[id]
	if !ok {
		return Unit{}, false
	}
	return allUnits[i], true
}

// FardIDs returns the ids of every Fard unit across all prayers.
func FardIDs() []string {
	var ids []string
	for _, u := range allUnits {
		if u.Category == Fard {
			ids = append(ids, u.ID)
		}
	}
	return ids
}
