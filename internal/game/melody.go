package game

import "github.com/vovakirdan/birdfeed/internal/config"

var melodyEnvelope = Envelope{Volume: 10, Step: -2}

// Sequencer plays the background tune one tick at a time.
type Sequencer struct {
	notes   []config.Note
	length  int
	enabled bool
	pos     int
}

// NewSequencer builds a sequencer for the tune.
func NewSequencer(m config.MelodyConfig) Sequencer {
	return Sequencer{
		notes:   m.Notes,
		length:  m.Length,
		enabled: m.Enabled && m.Length > 0,
	}
}

// Reset rewinds the tune.
func (q *Sequencer) Reset() {
	q.pos = 0
}

// Position returns the tick offset within the loop.
func (q *Sequencer) Position() int {
	return q.pos
}

// Step plays the notes starting at the current position and advances by one
// tick, looping after the tune length.
func (q *Sequencer) Step(a Audio) {
	if !q.enabled {
		return
	}
	for _, n := range q.notes {
		if n.Offset == q.pos {
			a.PlayTone(ChannelPulse2, WaveDuty50, melodyEnvelope, uint16(n.Pitch), uint8(n.Duration))
		}
	}
	q.pos++
	if q.pos >= q.length {
		q.pos = 0
	}
}
