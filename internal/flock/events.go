// Package flock tracks the players connected to one server and passes
// small notices between their sessions: who joined, who left, and who just
// set a new high score.
package flock

import "fmt"

// SessionID uniquely identifies a player's session (e.g., SSH connection).
type SessionID string

// Event is a notice delivered to a session.
type Event interface {
	// Notice returns the one-line text shown to the player.
	Notice() string
}

// JoinedEvent is sent to other sessions when a player connects.
type JoinedEvent struct {
	Player string
}

// Notice implements Event.
func (e JoinedEvent) Notice() string {
	return fmt.Sprintf("%s flew in", e.Player)
}

// LeftEvent is sent to other sessions when a player disconnects.
type LeftEvent struct {
	Player string
}

// Notice implements Event.
func (e LeftEvent) Notice() string {
	return fmt.Sprintf("%s flew away", e.Player)
}

// RecordEvent is sent to other sessions when a player beats the high score
// of a countdown setting.
type RecordEvent struct {
	Player  string
	Setting int
	Score   int
}

// Notice implements Event.
func (e RecordEvent) Notice() string {
	return fmt.Sprintf("%s set a %d min record: %d", e.Player, e.Setting, e.Score)
}
