// Package config provides YAML-based game rules loading, validation and
// difficulty presets for birdfeed.
package config

// Config contains every tunable rule of the simulation.
// Speeds are in sub-pixels (1/16 px) per tick, positions in whole pixels.
type Config struct {
	Character CharacterConfig `yaml:"character"`
	Food      FoodConfig      `yaml:"food"`
	Scoring   ScoringConfig   `yaml:"scoring"`
	Countdown CountdownConfig `yaml:"countdown"`
	Screens   ScreensConfig   `yaml:"screens"`
	Melody    MelodyConfig    `yaml:"melody"`
}

// CharacterConfig defines the bird's physics and play band.
type CharacterConfig struct {
	StartX           int `yaml:"start_x"`
	StartY           int `yaml:"start_y"`
	MinSpeedX        int `yaml:"min_speed_x"`
	MaxSpeedX        int `yaml:"max_speed_x"`
	GlideAccelX      int `yaml:"glide_accel_x"`
	DiveAccelX       int `yaml:"dive_accel_x"`
	Gravity          int `yaml:"gravity"`
	MaxSpeedYGliding int `yaml:"max_speed_y_gliding"`
	MaxSpeedYDiving  int `yaml:"max_speed_y_diving"`
	MaxSpeedYUpwards int `yaml:"max_speed_y_upwards"` // negative
	BoostFlapping    int `yaml:"boost_flapping"`      // negative
	BoostDiving      int `yaml:"boost_diving"`
	MinPosX          int `yaml:"min_pos_x"`
	MaxPosX          int `yaml:"max_pos_x"`
	MinPosY          int `yaml:"min_pos_y"`
	MaxPosY          int `yaml:"max_pos_y"`
	AnimDelay        int `yaml:"anim_delay"` // advance when frame delta > AnimDelay
}

// FoodConfig defines the spawner and the pool.
type FoodConfig struct {
	Capacity          int          `yaml:"capacity"`
	RampTicks         int          `yaml:"ramp_ticks"`
	SpawnThreshold    int          `yaml:"spawn_threshold"` // spawn when int8 draw > threshold
	BerryMask         int          `yaml:"berry_mask"`      // berry when draw & mask == 0
	AnimDelay         int          `yaml:"anim_delay"`
	BerryGravityEvery int          `yaml:"berry_gravity_every"`
	MaxFallSpeed      int          `yaml:"max_fall_speed"`
	Dandelion         FoodTypeRule `yaml:"dandelion"`
	Berry             FoodTypeRule `yaml:"berry"`
}

// FoodTypeRule defines one kind of food.
type FoodTypeRule struct {
	Value       int `yaml:"value"`
	HeightTiles int `yaml:"height_tiles"`
	Frames      int `yaml:"frames"`
	MinSpeedX   int `yaml:"min_speed_x"`
	SpeedXMask  int `yaml:"speed_x_mask"`
	Altitude    int `yaml:"altitude"` // fixed spawn height in px, -1 for random
}

// ScoringConfig defines the calm bonus and the score ceiling.
type ScoringConfig struct {
	BonusCap   int `yaml:"bonus_cap"`
	BonusFloor int `yaml:"bonus_floor"`
	MaxScore   int `yaml:"max_score"`
}

// CountdownConfig defines the game timer.
type CountdownConfig struct {
	DefaultSetting int   `yaml:"default_setting"`
	MinSetting     int   `yaml:"min_setting"`
	MaxSetting     int   `yaml:"max_setting"`
	SecondsPerUnit int   `yaml:"seconds_per_unit"`
	TicksPerSecond int   `yaml:"ticks_per_second"`
	BlinkBelow     int   `yaml:"blink_below"`
	BlinkPhase     int   `yaml:"blink_phase"`
	BlinkPalettes  []int `yaml:"blink_palettes"`
}

// ScreensConfig defines transition debounce periods in ticks.
type ScreensConfig struct {
	Debounce        int `yaml:"debounce"`
	WinningDebounce int `yaml:"winning_debounce"`
}

// MelodyConfig is the background tune: notes keyed by tick offset within a
// loop of Length ticks.
type MelodyConfig struct {
	Enabled bool   `yaml:"enabled"`
	Length  int    `yaml:"length"`
	Notes   []Note `yaml:"notes"`
}

// Note is one melody entry. Pitch is an 11-bit period register value,
// Duration is in 1/256 s units.
type Note struct {
	Offset   int `yaml:"offset"`
	Pitch    int `yaml:"pitch"`
	Duration int `yaml:"duration"`
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)
