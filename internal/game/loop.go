package game

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/birdfeed/internal/config"
	"github.com/vovakirdan/birdfeed/internal/core"
)

// Env holds the rules and the collaborators the simulation talks to.
type Env struct {
	Rules    *config.Config
	Renderer Renderer
	Audio    Audio
	RNG      RNG
	Entropy  Entropy
	Logger   *log.Logger
}

// Option configures a Loop.
type Option func(*Env)

// WithRenderer sets the display.
func WithRenderer(r Renderer) Option {
	return func(e *Env) { e.Renderer = r }
}

// WithAudio sets the sound output.
func WithAudio(a Audio) Option {
	return func(e *Env) { e.Audio = a }
}

// WithRNG replaces the built-in xorshift generator.
func WithRNG(rng RNG) Option {
	return func(e *Env) { e.RNG = rng }
}

// WithEntropy sets the source of reseed bytes.
func WithEntropy(src Entropy) Option {
	return func(e *Env) { e.Entropy = src }
}

// WithSeed makes every game start from the same random sequence.
// The seed is folded into a single entropy byte, so only 256 sequences
// exist and distinct seeds may share one. A zero seed keeps the
// clock-based entropy.
func WithSeed(seed int64) Option {
	return func(e *Env) {
		if seed != 0 {
			e.Entropy = func() byte { return byte(seed ^ seed>>8 ^ seed>>16 ^ seed>>24) }
		}
	}
}

// WithLogger sets the logger.
func WithLogger(l *log.Logger) Option {
	return func(e *Env) { e.Logger = l }
}

// Loop runs the simulation one tick at a time.
type Loop struct {
	state *State
	env   Env
}

// NewLoop creates a loop on the Title screen. Collaborators not provided by
// options are no-ops.
func NewLoop(rules config.Config, opts ...Option) *Loop {
	env := Env{
		Rules:    &rules,
		Renderer: nopRenderer{},
		Audio:    nopAudio{},
		Entropy:  clockEntropy,
		Logger:   log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(&env)
	}
	if env.RNG == nil {
		env.RNG = NewXorShift(env.Entropy())
	}

	l := &Loop{state: newState(env.Rules), env: env}
	initScreen(l.state, &l.env)
	return l
}

// Tick advances the simulation by one frame with the given buttons held.
func (l *Loop) Tick(held core.Buttons) StepResult {
	s := l.state
	s.Frame++
	if !s.Paused {
		s.VBlank++
	}
	s.Input.Update(held)

	before := s.Screen
	updateScreen(s, &l.env)

	return StepResult{
		Summary:  l.Summary(),
		Finished: before != ScreenWinning && s.Screen == ScreenWinning,
	}
}

// Run ticks once per clock value, polling in for buttons, until ctx is
// cancelled. onStep, if not nil, sees every result.
func (l *Loop) Run(ctx context.Context, clock <-chan time.Time, in InputSource, onStep func(StepResult)) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-clock:
			res := l.Tick(in.Poll())
			if onStep != nil {
				onStep(res)
			}
		}
	}
}

// State exposes the simulation state for inspection.
func (l *Loop) State() *State {
	return l.state
}

// Rules returns the rules the loop runs with.
func (l *Loop) Rules() config.Config {
	return *l.env.Rules
}

// Summary returns the externally visible state.
func (l *Loop) Summary() Summary {
	s := l.state
	return Summary{
		Screen:    s.Screen,
		Score:     s.Score,
		Remaining: s.Countdown.Remaining,
		Setting:   s.Setting,
		Paused:    s.Paused,
		Frame:     s.Frame,
		Stats:     s.Stats,
	}
}

// SetSetting changes the countdown setting used by the next game.
func (l *Loop) SetSetting(setting int) {
	c := l.env.Rules.Countdown
	l.state.Setting = core.Clamp(setting, c.MinSetting, c.MaxSetting)
	l.state.hud.setting.Reset()
}

func clockEntropy() byte {
	return byte(time.Now().UnixNano())
}
