package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/birdfeed/internal/audio"
	"github.com/vovakirdan/birdfeed/internal/core"
	"github.com/vovakirdan/birdfeed/internal/game"
	"github.com/vovakirdan/birdfeed/internal/platform/tui"
	"github.com/vovakirdan/birdfeed/internal/storage"
)

var (
	flagMute    bool
	flagVolume  float64
	flagSetting int
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in this terminal",
	Long: `Start the game in the current terminal.

Controls:
  Z/Space/J     - A: flap, confirm
  X/K           - B: dive (hold)
  Up/W          - flap, raise the countdown setting
  Down/S        - dive (hold), lower the countdown setting
  Left/Right    - turn around
  Enter/P       - Start: confirm, pause
  ?             - Toggle help
  Q/Ctrl+C      - Quit

Terminals do not report key releases, so a dive lasts about half a second
after the last key repeat.

Examples:
  birdfeed play
  birdfeed play --setting 5
  birdfeed play --difficulty hard --mute
  birdfeed play --config ./my-rules.yaml`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().BoolVar(&flagMute, "mute", false, "Disable sound")
	playCmd.Flags().Float64Var(&flagVolume, "volume", 0.8, "Master volume from 0 to 1")
	playCmd.Flags().IntVar(&flagSetting, "setting", 0, "Initial countdown setting in minutes (0 = rules default)")
}

func runPlay(_ *cobra.Command, _ []string) error {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return fmt.Errorf("play needs an interactive terminal; try 'birdfeed sim' instead")
	}

	rules, err := loadRules()
	if err != nil {
		return err
	}

	logger, closeLog, err := playLogger()
	if err != nil {
		return err
	}
	defer closeLog()

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}
	if store != nil {
		defer store.Close()
	}

	var sound game.Audio = audio.Null{}
	if !flagMute {
		synth := audio.NewSynth(flagVolume, logger)
		if err := synth.Start(); err != nil {
			logger.Warn("sound disabled", "error", err)
		} else {
			defer synth.Close()
			sound = synth
		}
	}

	return tui.Run(tui.Options{
		Rules: rules,
		Runtime: core.RuntimeConfig{
			ScreenW:  width,
			ScreenH:  height,
			TickRate: flagFPS,
			Seed:     flagSeed,
		},
		Setting: flagSetting,
		Store:   store,
		Audio:   sound,
		Logger:  logger,
	})
}

// playLogger logs to ~/.birdfeed/birdfeed.log at debug level and discards
// everything otherwise, since the game owns the terminal.
func playLogger() (*log.Logger, func(), error) {
	if flagLogLevel != "debug" {
		logger, err := newLogger(io.Discard)
		return logger, func() {}, err
	}

	dir, err := dataDir()
	if err != nil {
		return nil, nil, err
	}
	f, err := os.OpenFile(filepath.Join(dir, "birdfeed.log"), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot open log file: %w", err)
	}
	logger, err := newLogger(f)
	if err != nil {
		f.Close()
		return nil, nil, err
	}
	return logger, func() { f.Close() }, nil
}
