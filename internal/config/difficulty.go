package config

import (
	"fmt"
	"strings"
)

// ParsePreset converts a flag value to a preset. Empty means normal.
func ParsePreset(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(strings.ToLower(strings.TrimSpace(s))); p {
	case "":
		return DifficultyNormal, nil
	case DifficultyEasy, DifficultyNormal, DifficultyHard:
		return p, nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal or hard)", s)
	}
}

// ApplyPreset modifies the rules based on a difficulty preset.
// Easy spawns food more often and starts with a longer countdown; hard spawns
// less, makes berries rarer and shortens the default countdown.
func ApplyPreset(cfg *Config, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Food.SpawnThreshold = 80
		cfg.Countdown.DefaultSetting = 5
	case DifficultyHard:
		cfg.Food.SpawnThreshold = 112
		cfg.Food.BerryMask = 31
		cfg.Countdown.DefaultSetting = 2
	}
}
