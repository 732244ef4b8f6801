package core

import "strings"

// Buttons is a bitmask of joypad buttons held during one tick.
// Bit order follows the console joypad register layout.
type Buttons uint8

const (
	ButtonRight Buttons = 1 << iota
	ButtonLeft
	ButtonUp
	ButtonDown
	ButtonA
	ButtonB
	ButtonSelect
	ButtonStart
)

// ButtonNone is the empty mask.
const ButtonNone Buttons = 0

var buttonNames = [...]string{"Right", "Left", "Up", "Down", "A", "B", "Select", "Start"}

// String returns a human-readable list of the buttons in the mask.
func (b Buttons) String() string {
	if b == ButtonNone {
		return "None"
	}
	var parts []string
	for i, name := range buttonNames {
		if b&(1<<i) != 0 {
			parts = append(parts, name)
		}
	}
	return strings.Join(parts, "+")
}

// Has returns true if any of the buttons in mask are set.
func (b Buttons) Has(mask Buttons) bool {
	return b&mask != 0
}

// Snapshot holds the button state of the current and previous tick.
// Edges are derived by comparing the two.
type Snapshot struct {
	Current  Buttons
	Previous Buttons
}

// Update shifts the current state into the previous slot and records held.
// Call exactly once per tick.
func (s *Snapshot) Update(held Buttons) {
	s.Previous = s.Current
	s.Current = held
}

// Reset clears both ticks.
func (s *Snapshot) Reset() {
	s.Current = ButtonNone
	s.Previous = ButtonNone
}

// Held returns true if any button in mask is down this tick.
func (s Snapshot) Held(mask Buttons) bool {
	return s.Current&mask != 0
}

// Pressed returns true if any button in mask went down this tick.
func (s Snapshot) Pressed(mask Buttons) bool {
	return s.Current&^s.Previous&mask != 0
}

// Released returns true if any button in mask went up this tick.
func (s Snapshot) Released(mask Buttons) bool {
	return s.Previous&^s.Current&mask != 0
}

// Any returns true if any button is down this tick.
func (s Snapshot) Any() bool {
	return s.Current != ButtonNone
}
