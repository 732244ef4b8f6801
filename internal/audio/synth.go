// Package audio plays the simulation's tones through a software synthesizer
// built on beep.
package audio

import (
	"fmt"
	"io"
	"math"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/birdfeed/internal/game"
)

const (
	sampleRate = beep.SampleRate(44100)
	channels   = 4
)

// Synth is a four-channel tone generator. Each channel plays one tone at a
// time; a new tone on a busy channel replaces the old one.
type Synth struct {
	mu      sync.Mutex
	mixer   *beep.Mixer
	output  beep.Streamer
	voices  [channels]*beep.Ctrl
	rate    beep.SampleRate
	started bool
	logger  *log.Logger
}

// NewSynth creates a synthesizer with master volume in [0, 1].
// Nothing is heard until Start.
func NewSynth(volume float64, logger *log.Logger) *Synth {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	mixer := &beep.Mixer{}
	return &Synth{
		mixer:  mixer,
		output: newVolume(mixer, volume),
		rate:   sampleRate,
		logger: logger,
	}
}

// Start opens the speaker and begins playback.
func (s *Synth) Start() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.started {
		return nil
	}
	if err := speaker.Init(s.rate, s.rate.N(100*time.Millisecond)); err != nil {
		return fmt.Errorf("audio: init speaker: %w", err)
	}
	speaker.Play(s.output)
	s.started = true
	s.logger.Debug("audio started", "rate", int(s.rate))
	return nil
}

// Close stops every channel and releases the speaker.
func (s *Synth) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.lock()
	for i, c := range s.voices {
		if c != nil {
			c.Streamer = nil
			s.voices[i] = nil
		}
	}
	s.mixer.Clear()
	s.unlock()

	if s.started {
		speaker.Close()
		s.started = false
	}
}

// PlayTone starts a tone on a channel, replacing whatever it was playing.
func (s *Synth) PlayTone(ch game.Channel, wave game.Waveform, env game.Envelope, freq uint16, length uint8) {
	if ch < 1 || int(ch) > channels {
		return
	}
	v := newVoice(wave, env, freq, length, s.rate)

	s.mu.Lock()
	defer s.mu.Unlock()

	s.lock()
	defer s.unlock()

	i := int(ch) - 1
	if prev := s.voices[i]; prev != nil {
		// A nil streamer reads as drained and the mixer drops it
		prev.Streamer = nil
	}
	ctrl := &beep.Ctrl{Streamer: v}
	s.voices[i] = ctrl
	s.mixer.Add(ctrl)
}

// Stream renders the mixed output. Used when the synth is not attached to
// the speaker.
func (s *Synth) Stream(samples [][2]float64) (int, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.output.Stream(samples)
}

// Active returns the number of tones still sounding.
func (s *Synth) Active() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.lock()
	defer s.unlock()
	return s.mixer.Len()
}

// lock guards the mixer against the speaker goroutine once playback runs.
func (s *Synth) lock() {
	if s.started {
		speaker.Lock()
	}
}

func (s *Synth) unlock() {
	if s.started {
		speaker.Unlock()
	}
}

// newVolume wraps s with a linear volume; 0 or less is silent.
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// Null discards every tone.
type Null struct{}

// PlayTone does nothing.
func (Null) PlayTone(game.Channel, game.Waveform, game.Envelope, uint16, uint8) {}

var (
	_ game.Audio = (*Synth)(nil)
	_ game.Audio = Null{}
)
