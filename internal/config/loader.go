package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// FileName is the rules file name looked up in the user and local config directories.
const FileName = "birdfeed.yaml"

// Load loads the game rules and validates them.
// Search order: customPath -> ~/.birdfeed/birdfeed.yaml -> ./configs/birdfeed.yaml -> embedded default
func Load(customPath string) (Config, error) {
	cfg, err := load(customPath)
	if err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func load(customPath string) (Config, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return Config{}, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		cfg, err := Parse(data)
		if err != nil {
			return Config{}, fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath(FileName); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := Parse(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", FileName)); err == nil {
		if cfg, err := Parse(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := Parse(defaultYAML)
	if err != nil {
		return Default(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// Parse decodes rules from YAML on top of the built-in defaults, so a file
// only needs to list the values it changes.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	// Lists replace rather than merge
	cfg.Melody.Notes = nil
	cfg.Countdown.BlinkPalettes = nil

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, err
	}

	def := Default()
	if cfg.Melody.Notes == nil {
		cfg.Melody.Notes = def.Melody.Notes
	}
	if cfg.Countdown.BlinkPalettes == nil {
		cfg.Countdown.BlinkPalettes = def.Countdown.BlinkPalettes
	}
	return cfg, nil
}

// Marshal encodes rules as YAML.
func Marshal(cfg Config) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("config: cannot encode rules: %w", err)
	}
	return data, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".birdfeed", filename)
}
