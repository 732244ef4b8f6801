package game

import "github.com/vovakirdan/birdfeed/internal/config"

// Countdown is the game timer, in seconds of vblank ticks.
type Countdown struct {
	Remaining int

	mark      uint32 // vblank count of the last decrement
	perSecond uint32
}

// Start sets the timer from a countdown setting at vblank count now.
func (c *Countdown) Start(setting int, now uint32, rules config.CountdownConfig) {
	c.Remaining = setting * rules.SecondsPerUnit
	c.mark = now
	c.perSecond = uint32(max(rules.TicksPerSecond, 1))
}

// Advance decrements the timer for every full second of vblank ticks since
// the last decrement. It returns true if Remaining changed.
func (c *Countdown) Advance(now uint32) bool {
	changed := false
	for c.Remaining > 0 && now-c.mark >= c.perSecond {
		c.Remaining--
		c.mark += c.perSecond
		changed = true
	}
	return changed
}

// Expired reports whether the timer reached zero.
func (c *Countdown) Expired() bool {
	return c.Remaining <= 0
}
