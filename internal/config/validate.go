package config

import (
	"errors"
	"fmt"
)

// Validate checks the rules for values the simulation cannot honor.
// All problems are reported together.
func (c Config) Validate() error {
	var errs []error
	fail := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf(format, args...))
	}

	ch := c.Character
	if ch.MinSpeedX <= 0 || ch.MaxSpeedX < ch.MinSpeedX {
		fail("character: need 0 < min_speed_x <= max_speed_x, got %d..%d", ch.MinSpeedX, ch.MaxSpeedX)
	}
	if ch.MaxSpeedYUpwards >= 0 {
		fail("character: max_speed_y_upwards must be negative, got %d", ch.MaxSpeedYUpwards)
	}
	if ch.MaxSpeedYGliding <= 0 || ch.MaxSpeedYDiving < ch.MaxSpeedYGliding {
		fail("character: need 0 < max_speed_y_gliding <= max_speed_y_diving")
	}
	if ch.MinPosX >= ch.MaxPosX || ch.MinPosY >= ch.MaxPosY {
		fail("character: empty play band x %d..%d y %d..%d", ch.MinPosX, ch.MaxPosX, ch.MinPosY, ch.MaxPosY)
	}
	if ch.AnimDelay < 0 {
		fail("character: anim_delay must not be negative")
	}

	f := c.Food
	if f.Capacity < 1 || f.Capacity > MaxCapacity {
		fail("food: capacity must be within 1..%d, got %d", MaxCapacity, f.Capacity)
	}
	if f.RampTicks <= 0 {
		fail("food: ramp_ticks must be positive, got %d", f.RampTicks)
	}
	if f.SpawnThreshold < -128 || f.SpawnThreshold > 127 {
		fail("food: spawn_threshold must fit a signed byte, got %d", f.SpawnThreshold)
	}
	if f.BerryGravityEvery <= 0 {
		fail("food: berry_gravity_every must be positive")
	}
	for name, rule := range map[string]FoodTypeRule{"dandelion": f.Dandelion, "berry": f.Berry} {
		if rule.Frames < 1 || rule.HeightTiles < 1 {
			fail("food: %s needs at least one frame and one tile", name)
		}
		if rule.Value < 0 {
			fail("food: %s value must not be negative", name)
		}
	}

	s := c.Scoring
	if s.BonusFloor < 0 || s.BonusCap < s.BonusFloor || s.MaxScore <= 0 {
		fail("scoring: need 0 <= bonus_floor <= bonus_cap and max_score > 0")
	}

	cd := c.Countdown
	if cd.MinSetting < 1 || cd.MaxSetting > 9 || cd.MinSetting > cd.MaxSetting {
		fail("countdown: settings must be within 1..9, got %d..%d", cd.MinSetting, cd.MaxSetting)
	}
	if cd.DefaultSetting < cd.MinSetting || cd.DefaultSetting > cd.MaxSetting {
		fail("countdown: default_setting %d outside %d..%d", cd.DefaultSetting, cd.MinSetting, cd.MaxSetting)
	}
	if cd.SecondsPerUnit <= 0 || cd.TicksPerSecond <= 0 || cd.BlinkPhase <= 0 {
		fail("countdown: seconds_per_unit, ticks_per_second and blink_phase must be positive")
	}
	for _, p := range cd.BlinkPalettes {
		if p < 0 || p > 0xFF {
			fail("countdown: blink palette %#x does not fit a byte", p)
		}
	}

	if c.Screens.Debounce < 0 || c.Screens.WinningDebounce < 0 {
		fail("screens: debounce must not be negative")
	}

	m := c.Melody
	if m.Enabled {
		if m.Length <= 0 {
			fail("melody: length must be positive when enabled")
		}
		for i, n := range m.Notes {
			if n.Offset < 0 || n.Offset >= m.Length {
				fail("melody: note %d offset %d outside loop of %d", i, n.Offset, m.Length)
			}
			if n.Pitch < 0 || n.Pitch > 2047 {
				fail("melody: note %d pitch %d does not fit 11 bits", i, n.Pitch)
			}
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("config: invalid rules: %w", errors.Join(errs...))
	}
	return nil
}
