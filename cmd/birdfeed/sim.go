package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/birdfeed/internal/core"
	"github.com/vovakirdan/birdfeed/internal/game"
	"github.com/vovakirdan/birdfeed/internal/storage"
)

var (
	flagTicks    int
	flagPolicy   string
	flagRealtime bool
	flagRecord   bool
)

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Run a headless game",
	Long: `Run the simulation without a display, driven by a simple input policy,
and print the final score and food statistics.

Policies:
  idle  - never touch the controls, the bird glides and saves itself
  flap  - flap every third of a second
  dive  - alternate long dives with bursts of flaps

Without --ticks the run ends when the countdown expires.

Examples:
  birdfeed sim
  birdfeed sim --setting 1 --policy flap --seed 42
  birdfeed sim --ticks 600 --policy dive --log-level debug
  birdfeed sim --realtime --setting 1`,
	Args: cobra.NoArgs,
	RunE: runSim,
}

func init() {
	simCmd.Flags().IntVar(&flagTicks, "ticks", 0, "Stop after this many ticks (0 = until the game ends)")
	simCmd.Flags().IntVar(&flagSetting, "setting", 0, "Countdown setting in minutes (0 = rules default)")
	simCmd.Flags().StringVar(&flagPolicy, "policy", "flap", "Input policy: idle, flap, dive")
	simCmd.Flags().BoolVar(&flagRealtime, "realtime", false, "Tick at --fps instead of as fast as possible")
	simCmd.Flags().BoolVar(&flagRecord, "record", false, "Save the result to the scores database")
}

// policy drives the pad for a headless run. Off the game screen it keeps
// tapping Start so the run walks through the menus.
type policy struct {
	loop *game.Loop
	play func(frame uint32) core.Buttons
}

func newPolicy(name string) (*policy, error) {
	p := &policy{}
	switch name {
	case "idle":
		p.play = func(uint32) core.Buttons { return core.ButtonNone }
	case "flap":
		p.play = func(frame uint32) core.Buttons {
			if frame%20 == 0 {
				return core.ButtonA
			}
			return core.ButtonNone
		}
	case "dive":
		p.play = func(frame uint32) core.Buttons {
			phase := frame % 120
			switch {
			case phase < 60:
				return core.ButtonDown
			case phase%10 == 0:
				return core.ButtonA
			}
			return core.ButtonNone
		}
	default:
		return nil, fmt.Errorf("unknown policy %q (want idle, flap or dive)", name)
	}
	return p, nil
}

// Poll implements game.InputSource.
func (p *policy) Poll() core.Buttons {
	s := p.loop.Summary()
	if s.Screen != game.ScreenGame {
		if s.Frame%2 == 0 {
			return core.ButtonStart
		}
		return core.ButtonNone
	}
	return p.play(s.Frame)
}

func runSim(_ *cobra.Command, _ []string) error {
	rules, err := loadRules()
	if err != nil {
		return err
	}
	logger, err := newLogger(os.Stderr)
	if err != nil {
		return err
	}

	pol, err := newPolicy(flagPolicy)
	if err != nil {
		return err
	}

	loop := game.NewLoop(rules,
		game.WithSeed(flagSeed),
		game.WithLogger(logger),
	)
	if flagSetting != 0 {
		loop.SetSetting(flagSetting)
	}
	pol.loop = loop

	logger.Info("simulation started",
		"policy", flagPolicy,
		"setting", loop.Summary().Setting,
		"seed", flagSeed,
		"realtime", flagRealtime,
	)

	var final game.StepResult
	if flagRealtime {
		final, err = simRealtime(loop, pol)
	} else {
		final = simFast(loop, pol)
	}
	if err != nil {
		return err
	}

	report(logger, final)

	if flagRecord && final.Finished {
		return record(logger, final.Summary)
	}
	return nil
}

// simFast ticks as fast as possible until the game finishes or the tick
// limit is reached.
func simFast(loop *game.Loop, pol *policy) game.StepResult {
	var res game.StepResult
	for i := 0; flagTicks <= 0 || i < flagTicks; i++ {
		res = loop.Tick(pol.Poll())
		if res.Finished {
			break
		}
	}
	return res
}

// simRealtime ticks at the configured rate until the game finishes, the
// tick limit is reached or the process is interrupted.
func simRealtime(loop *game.Loop, pol *policy) (game.StepResult, error) {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	rate := flagFPS
	if rate <= 0 {
		rate = core.DefaultConfig().TickRate
	}
	ticker := time.NewTicker(time.Second / time.Duration(rate))
	defer ticker.Stop()

	var (
		res   game.StepResult
		count int
	)
	err := loop.Run(ctx, ticker.C, pol, func(r game.StepResult) {
		res = r
		count++
		if r.Finished || (flagTicks > 0 && count >= flagTicks) {
			cancel()
		}
	})
	if errors.Is(err, context.Canceled) {
		err = nil
	}
	return res, err
}

func report(logger *log.Logger, res game.StepResult) {
	s := res.Summary
	logger.Info("simulation finished",
		"screen", s.Screen,
		"frames", s.Frame,
		"score", s.Score,
		"remaining", s.Remaining,
	)

	fmt.Printf("Score:      %d\n", s.Score)
	fmt.Printf("Frames:     %d\n", s.Frame)
	fmt.Printf("Finished:   %t\n", res.Finished)
	fmt.Printf("Dandelions: %d caught of %d spawned\n",
		s.Stats.Caught[game.FoodDandelion], s.Stats.Spawned[game.FoodDandelion])
	fmt.Printf("Berries:    %d caught of %d spawned\n",
		s.Stats.Caught[game.FoodBerry], s.Stats.Spawned[game.FoodBerry])
	fmt.Printf("Escaped:    %d\n", s.Stats.Escaped)
}

func record(logger *log.Logger, s game.Summary) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening scores database: %w", err)
	}
	defer store.Close()

	id, err := store.SaveResult(storage.Result{
		Setting:    s.Setting,
		Score:      int(s.Score),
		Dandelions: s.Stats.Caught[game.FoodDandelion],
		Berries:    s.Stats.Caught[game.FoodBerry],
		Player:     "sim",
	})
	if err != nil {
		return err
	}
	logger.Info("result saved", "id", id)
	return nil
}
