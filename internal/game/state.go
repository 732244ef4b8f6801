// Package game implements the birdfeed simulation: a bird gliding through a
// scrolling sky, catching food against a countdown.
// Rendering, audio, input and randomness are reached through interfaces so
// the simulation runs the same in a terminal, over SSH or headless.
package game

import (
	"github.com/vovakirdan/birdfeed/internal/config"
	"github.com/vovakirdan/birdfeed/internal/core"
)

// ScreenID identifies a screen of the state machine.
type ScreenID int

const (
	ScreenTitle ScreenID = iota
	ScreenInstructions
	ScreenGame
	ScreenWinning
)

// String returns a human-readable name for the screen.
func (id ScreenID) String() string {
	switch id {
	case ScreenTitle:
		return "Title"
	case ScreenInstructions:
		return "Instructions"
	case ScreenGame:
		return "Game"
	case ScreenWinning:
		return "Winning"
	default:
		return "Unknown"
	}
}

// Stats counts what happened during one game.
type Stats struct {
	Spawned [foodTypeCount]int
	Caught  [foodTypeCount]int
	Escaped int
}

// CaughtTotal returns the number of caught entities of all types.
func (s Stats) CaughtTotal() int {
	n := 0
	for _, c := range s.Caught {
		n += c
	}
	return n
}

// State is the whole mutable simulation state.
type State struct {
	Screen    ScreenID
	Frame     uint32 // ticks since start, always counting
	VBlank    uint32 // ticks since start, frozen while paused
	Paused    bool
	Input     core.Snapshot
	LastInput uint32 // frame of the last tick with any button held
	Entered   uint32 // frame the current screen was entered
	GameStart uint32 // frame the current game was entered
	Setting   int    // countdown setting, kept across games

	Character Character
	Foods     FoodPool
	Score     uint32
	Countdown Countdown
	Melody    Sequencer
	Stats     Stats

	melodyMark uint32 // vblank count the melody was last advanced to
	hud        hudTrackers
	palette    core.Tracker[core.Palette]
}

type hudTrackers struct {
	score     core.Tracker[uint32]
	remaining core.Tracker[int]
	setting   core.Tracker[int]
}

func (h *hudTrackers) reset() {
	h.score.Reset()
	h.remaining.Reset()
	h.setting.Reset()
}

// newState builds the power-on state for the rules.
func newState(rules *config.Config) *State {
	return &State{
		Screen:    ScreenTitle,
		Setting:   rules.Countdown.DefaultSetting,
		Character: NewCharacter(rules.Character),
		Foods:     NewFoodPool(rules.Food),
		Melody:    NewSequencer(rules.Melody),
	}
}

// settled reports whether the current screen has been shown for at least
// the given number of frames.
func (s *State) settled(frames int) bool {
	return s.Frame-s.Entered >= uint32(frames)
}

// Summary is the externally visible part of the state after a tick.
type Summary struct {
	Screen    ScreenID
	Score     uint32
	Remaining int
	Setting   int
	Paused    bool
	Frame     uint32
	Stats     Stats
}

// StepResult contains the result of one tick.
type StepResult struct {
	Summary  Summary
	Finished bool // true on the tick the Winning screen was entered
}
