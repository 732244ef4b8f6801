package tui

import "github.com/vovakirdan/birdfeed/internal/core"

// Hold windows in ticks. Terminals report key presses and auto-repeats but
// never releases, so a button stays held for a while after its last event.
// Dive buttons must survive the keyboard's initial repeat delay; everything
// else is a one-tick pulse so each event is a fresh press.
const (
	diveSustain  = 32
	pulseSustain = 1
)

// Pad turns key events into a per-tick held-button mask.
type Pad struct {
	hold [8]int // ticks left per button bit
}

// NewPad creates a pad with nothing held.
func NewPad() *Pad {
	return &Pad{}
}

// Press marks buttons as held from the next poll.
func (p *Pad) Press(b core.Buttons) {
	for i := range p.hold {
		bit := core.Buttons(1) << i
		if !b.Has(bit) {
			continue
		}
		window := pulseSustain
		if bit.Has(core.ButtonDown | core.ButtonB) {
			window = diveSustain
		}
		p.hold[i] = max(p.hold[i], window)
	}
}

// Release drops every held button.
func (p *Pad) Release() {
	p.hold = [8]int{}
}

// Poll returns the buttons held this tick and ages the hold windows.
func (p *Pad) Poll() core.Buttons {
	var held core.Buttons
	for i := range p.hold {
		if p.hold[i] > 0 {
			held |= core.Buttons(1) << i
			p.hold[i]--
		}
	}
	return held
}
