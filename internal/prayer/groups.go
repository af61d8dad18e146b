package prayer

import "fmt"

// Group is a run of consecutive units of one prayer sharing a category,
// e.g. the four Sunnat rakat said before Dhuhr's Fard.
type Group struct {
	Prayer   Type
	Category Category
	Label    string // "4 Rakat Sunnat"
	UnitIDs  []string
}

// Groups splits the prayer's units into toggleable groups in catalog order.
func (p Prayer) Groups() []Group {
	var groups []Group
	var cur *Group
	var curPos string
	for _, u := range p.Units {
		if cur == nil || u.Category != cur.Category || u.position != curPos {
			groups = append(groups, Group{Prayer: p.Type, Category: u.Category})
			cur = &groups[len(groups)-1]
			curPos = u.position
		}
		cur.UnitIDs = append(cur.UnitIDs, u.ID)
	}
	for i := range groups {
		groups[i].Label = fmt.Sprintf("%d Rakat %s", len(groups[i].UnitIDs), groups[i].Category)
	}
	return groups
}

// GroupToggleIDs picks which ids of a group to flip so that a single toggle
// either clears a complete group or completes an unfinished one.
func GroupToggleIDs(r DayRecord, ids []string) []string {
	if IsGroupComplete(r, ids) {
		return append([]string(nil), ids...)
	}
	var pending []string
	for _, id := range ids {
		if _, ok := LookupUnit(id); ok && !r.Done(id) {
			pending = append(pending, id)
		}
	}
	return pending
}
