// birdfeed is a bird feeding game for the terminal: glide, flap and dive to
// catch dandelions and berries before the countdown runs out.
//
// Usage:
//
//	birdfeed play              - Play in this terminal
//	birdfeed serve             - Start SSH server for remote play
//	birdfeed scores [setting]  - Show high scores for a countdown setting
//	birdfeed sim               - Run a headless game and print statistics
//	birdfeed config            - Print the effective game rules
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible gameplay (folded to one byte)
//	--db <path>           - Set database path (default: ~/.birdfeed/scores.db)
//	--config <path>       - Load game rules from a YAML file
//	--difficulty <preset> - easy, normal or hard
//	--log-level <level>   - debug, info, warn or error
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/birdfeed/internal/config"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagLogLevel   string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "birdfeed",
	Short: "Birdfeed - feed a hungry bird in your terminal",
	Long: `Birdfeed is a small arcade game played in the terminal. Steer a bird
through the sky and catch the dandelions and berries drifting past before
the countdown runs out. Keep calm before a catch for a bonus.

Available commands:
  play     - Play in this terminal
  serve    - Start SSH server for remote play
  scores   - View high scores
  sim      - Run a headless game
  config   - Print the effective game rules

Examples:
  birdfeed play
  birdfeed play --difficulty easy --mute
  birdfeed serve --ssh :2222
  birdfeed scores 3
  birdfeed sim --ticks 10800 --policy flap --seed 7`,
	SilenceUsage: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time); folded into one byte, so only 256 distinct games exist and seeds can collide")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.birdfeed/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom rules YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(configCmd)
}

// loadRules reads the rules file and applies the difficulty preset.
func loadRules() (config.Config, error) {
	rules, err := config.Load(flagConfig)
	if err != nil {
		return rules, err
	}

	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return rules, err
	}
	config.ApplyPreset(&rules, preset)

	if err := rules.Validate(); err != nil {
		return rules, err
	}
	return rules, nil
}

// newLogger builds the root logger writing to w.
func newLogger(w io.Writer) (*log.Logger, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "birdfeed",
		Level:           level,
	}), nil
}

// dataDir returns ~/.birdfeed, creating it if needed.
func dataDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot get home directory: %w", err)
	}
	dir := filepath.Join(home, ".birdfeed")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("cannot create %s: %w", dir, err)
	}
	return dir, nil
}
