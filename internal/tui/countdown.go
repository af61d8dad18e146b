package tui

import (
	"fmt"
	"time"

	"github.com/sadopc/salah/internal/prayer"
)

// countdownModel tracks the next prayer of the day, refreshed on every tick.
type countdownModel struct {
	now func() time.Time

	hour, minute int

	current   prayer.Type // valid when startsNow
	startsNow bool
	next      prayer.Type // valid when hasNext
	hasNext   bool
	remaining string
}

func newCountdownModel(now func() time.Time) countdownModel {
	c := countdownModel{now: now}
	c.tick()
	return c
}

func (c *countdownModel) tick() {
	t := c.now()
	c.hour, c.minute = t.Hour(), t.Minute()
	c.current, c.startsNow = prayer.PrayerAt(c.hour, c.minute)
	c.next, c.hasNext = prayer.NextPrayer(c.hour, c.minute)
	c.remaining = prayer.TimeUntilNext(c.hour, c.minute)
}

// done reports whether every prayer of the day has started.
func (c countdownModel) done() bool {
	return !c.startsNow && !c.hasNext
}

func (c countdownModel) view(twelveHour bool) string {
	switch {
	case c.startsNow:
		p, _ := prayer.Get(c.current)
		return countdownStyle.Render(fmt.Sprintf("%s is now", c.current)) +
			mutedStyle.Render("  "+prayer.FormatClock(p.Time, twelveHour))
	case c.hasNext:
		p, _ := prayer.Get(c.next)
		return countdownStyle.Render(fmt.Sprintf("Next: %s in %s", c.next, c.remaining)) +
			mutedStyle.Render("  "+prayer.FormatClock(p.Time, twelveHour))
	}
	return mutedStyle.Render(c.remaining)
}
