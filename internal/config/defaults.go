package config

import (
	_ "embed"
)

//go:embed defaults/birdfeed.yaml
var defaultYAML []byte

// MaxCapacity is the largest food pool the sprite slot layout can hold.
const MaxCapacity = 16

// Default returns the built-in rules. The embedded YAML mirrors these values.
func Default() Config {
	return Config{
		Character: CharacterConfig{
			StartX:           64,
			StartY:           64,
			MinSpeedX:        4,
			MaxSpeedX:        24,
			GlideAccelX:      1,
			DiveAccelX:       4,
			Gravity:          1,
			MaxSpeedYGliding: 8,
			MaxSpeedYDiving:  40,
			MaxSpeedYUpwards: -32,
			BoostFlapping:    -24,
			BoostDiving:      16,
			MinPosX:          8,
			MaxPosX:          152,
			MinPosY:          16,
			MaxPosY:          184,
			AnimDelay:        2,
		},
		Food: FoodConfig{
			Capacity:          8,
			RampTicks:         256,
			SpawnThreshold:    100,
			BerryMask:         15,
			AnimDelay:         15,
			BerryGravityEvery: 4,
			MaxFallSpeed:      24,
			Dandelion: FoodTypeRule{
				Value:       10,
				HeightTiles: 2,
				Frames:      4,
				MinSpeedX:   2,
				SpeedXMask:  7,
				Altitude:    -1,
			},
			Berry: FoodTypeRule{
				Value:       100,
				HeightTiles: 1,
				Frames:      2,
				MinSpeedX:   12,
				SpeedXMask:  7,
				Altitude:    24,
			},
		},
		Scoring: ScoringConfig{
			BonusCap:   150,
			BonusFloor: 15,
			MaxScore:   99999,
		},
		Countdown: CountdownConfig{
			DefaultSetting: 3,
			MinSetting:     1,
			MaxSetting:     9,
			SecondsPerUnit: 60,
			TicksPerSecond: 60,
			BlinkBelow:     10,
			BlinkPhase:     10,
			BlinkPalettes:  []int{0xE4, 0x90, 0x40, 0x90},
		},
		Screens: ScreensConfig{
			Debounce:        30,
			WinningDebounce: 60,
		},
		Melody: MelodyConfig{
			Enabled: true,
			Length:  192,
			Notes: []Note{
				{Offset: 0, Pitch: 1547, Duration: 20},
				{Offset: 24, Pitch: 1602, Duration: 20},
				{Offset: 48, Pitch: 1650, Duration: 20},
				{Offset: 72, Pitch: 1602, Duration: 40},
				{Offset: 120, Pitch: 1547, Duration: 20},
				{Offset: 144, Pitch: 1497, Duration: 20},
				{Offset: 168, Pitch: 1547, Duration: 40},
			},
		},
	}
}

// DefaultYAML returns the embedded default rules file.
func DefaultYAML() []byte {
	return defaultYAML
}
