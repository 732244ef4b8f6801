package game

import (
	"fmt"

	"github.com/vovakirdan/birdfeed/internal/core"
)

// Tile positions of the text fields drawn by the simulation.
const (
	scoreTileX, scoreTileY     = 1, 0
	timeTileX, timeTileY       = 16, 0
	settingTileX, settingTileY = 13, 12
	finalTileX, finalTileY     = 10, 7
	countTileX, countTileY     = 14, 10
)

const confirmButtons = core.ButtonA | core.ButtonStart

// switchTo enters screen id and runs its init.
func switchTo(s *State, env *Env, id ScreenID) {
	env.Logger.Debug("screen transition", "from", s.Screen, "to", id, "frame", s.Frame)
	s.Screen = id
	s.Entered = s.Frame
	initScreen(s, env)
}

func initScreen(s *State, env *Env) {
	switch s.Screen {
	case ScreenTitle:
		initTitle(s, env)
	case ScreenInstructions:
		initInstructions(s, env)
	case ScreenGame:
		initGame(s, env)
	case ScreenWinning:
		initWinning(s, env)
	}
}

func updateScreen(s *State, env *Env) {
	switch s.Screen {
	case ScreenTitle:
		updateTitle(s, env)
	case ScreenInstructions:
		updateInstructions(s, env)
	case ScreenGame:
		updateGame(s, env)
	case ScreenWinning:
		updateWinning(s, env)
	}
}

// showBackground clears the display down to a static screen.
func showBackground(s *State, env *Env, bg Background) {
	r := env.Renderer
	r.LoadBackground(bg)
	r.HideSprites(0, HardwareSprites)
	r.ScrollBackground(0)
	s.palette.Reset()
	setPalette(s, env, core.DefaultPalette)
}

func setPalette(s *State, env *Env, p core.Palette) {
	if s.palette.Changed(p) {
		env.Renderer.SetPalette(p)
	}
}

func initTitle(s *State, env *Env) {
	s.Paused = false
	showBackground(s, env, BackgroundTitle)
}

func updateTitle(s *State, env *Env) {
	if s.settled(env.Rules.Screens.Debounce) && s.Input.Pressed(confirmButtons) {
		switchTo(s, env, ScreenInstructions)
	}
}

func initInstructions(s *State, env *Env) {
	showBackground(s, env, BackgroundInstructions)
	s.hud.setting.Reset()
	drawSetting(s, env)
}

func updateInstructions(s *State, env *Env) {
	rules := env.Rules.Countdown
	switch {
	case s.Input.Pressed(core.ButtonUp | core.ButtonRight):
		s.Setting = core.Min(s.Setting+1, rules.MaxSetting)
	case s.Input.Pressed(core.ButtonDown | core.ButtonLeft):
		s.Setting = core.Max(s.Setting-1, rules.MinSetting)
	}
	drawSetting(s, env)

	if s.settled(env.Rules.Screens.Debounce) && s.Input.Pressed(confirmButtons) {
		switchTo(s, env, ScreenGame)
	}
}

func drawSetting(s *State, env *Env) {
	if s.hud.setting.Changed(s.Setting) {
		env.Renderer.SetTileText(settingTileX, settingTileY, fmt.Sprintf("%d", s.Setting))
	}
}

func initGame(s *State, env *Env) {
	seed := env.Entropy()
	env.RNG.Seed(seed)
	env.Logger.Debug("rng reseeded", "entropy", seed)

	s.GameStart = s.Frame
	s.LastInput = s.Frame
	s.Paused = false
	s.Score = 0
	s.Stats = Stats{}
	s.Character.Reset()
	s.Foods.Reset()
	s.Countdown.Start(s.Setting, s.VBlank, env.Rules.Countdown)
	s.Melody.Reset()
	s.melodyMark = s.VBlank
	s.hud.reset()

	showBackground(s, env, BackgroundSky)
	s.Character.Redraw(env.Renderer)
	drawHUD(s, env)
}

func updateGame(s *State, env *Env) {
	if s.Input.Any() {
		s.LastInput = s.Frame
	}
	if s.Input.Pressed(core.ButtonStart) {
		s.Paused = !s.Paused
		env.Logger.Debug("pause toggled", "paused", s.Paused, "frame", s.Frame)
	}
	if s.Paused {
		return
	}

	s.Character.Update(s.Input, s.Frame)
	s.Character.Redraw(env.Renderer)

	updateFoods(s, env)
	spawnFood(s, env)

	s.Countdown.Advance(s.VBlank)
	updateBlink(s, env)
	drawHUD(s, env)

	for s.melodyMark != s.VBlank {
		s.melodyMark++
		s.Melody.Step(env.Audio)
	}

	if s.Countdown.Expired() {
		switchTo(s, env, ScreenWinning)
	}
}

// updateBlink cycles the palette during the last seconds of the countdown.
func updateBlink(s *State, env *Env) {
	rules := env.Rules.Countdown
	p := core.DefaultPalette
	if s.Countdown.Remaining <= rules.BlinkBelow && len(rules.BlinkPalettes) > 0 {
		phase := s.Frame / uint32(core.Max(rules.BlinkPhase, 1))
		p = core.Palette(rules.BlinkPalettes[phase%uint32(len(rules.BlinkPalettes))])
	}
	setPalette(s, env, p)
}

func drawHUD(s *State, env *Env) {
	if s.hud.score.Changed(s.Score) {
		env.Renderer.SetTileText(scoreTileX, scoreTileY, fmt.Sprintf("%05d", s.Score))
	}
	if s.hud.remaining.Changed(s.Countdown.Remaining) {
		env.Renderer.SetTileText(timeTileX, timeTileY, fmt.Sprintf("%03d", s.Countdown.Remaining))
	}
}

func initWinning(s *State, env *Env) {
	s.Paused = false
	showBackground(s, env, BackgroundWinning)

	r := env.Renderer
	r.SetTileText(finalTileX, finalTileY, fmt.Sprintf("%05d", s.Score))
	r.SetTileText(countTileX, countTileY, fmt.Sprintf("%3d", s.Stats.Caught[FoodDandelion]))
	r.SetTileText(countTileX, countTileY+1, fmt.Sprintf("%3d", s.Stats.Caught[FoodBerry]))

	env.Logger.Debug("game finished",
		"score", s.Score,
		"setting", s.Setting,
		"dandelions", s.Stats.Caught[FoodDandelion],
		"berries", s.Stats.Caught[FoodBerry],
		"escaped", s.Stats.Escaped,
	)
}

func updateWinning(s *State, env *Env) {
	if s.settled(env.Rules.Screens.WinningDebounce) && s.Input.Pressed(confirmButtons) {
		switchTo(s, env, ScreenTitle)
	}
}
