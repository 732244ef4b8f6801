package main

import (
	"testing"

	"github.com/vovakirdan/birdfeed/internal/config"
	"github.com/vovakirdan/birdfeed/internal/game"
)

func TestNewPolicyRejectsUnknown(t *testing.T) {
	if _, err := newPolicy("spin"); err == nil {
		t.Error("expected error for unknown policy")
	}
}

func TestSimFastFinishes(t *testing.T) {
	rules := config.Default()
	rules.Countdown.SecondsPerUnit = 1

	for _, name := range []string{"idle", "flap", "dive"} {
		t.Run(name, func(t *testing.T) {
			pol, err := newPolicy(name)
			if err != nil {
				t.Fatalf("newPolicy failed: %v", err)
			}
			loop := game.NewLoop(rules, game.WithSeed(7))
			loop.SetSetting(1)
			pol.loop = loop

			flagTicks = 0
			res := simFast(loop, pol)
			if !res.Finished {
				t.Fatalf("game did not finish, screen %v", res.Summary.Screen)
			}
			if res.Summary.Screen != game.ScreenWinning {
				t.Errorf("screen = %v, want Winning", res.Summary.Screen)
			}
			if res.Summary.Remaining != 0 {
				t.Errorf("remaining = %d, want 0", res.Summary.Remaining)
			}
		})
	}
}

func TestSimFastTickLimit(t *testing.T) {
	pol, _ := newPolicy("idle")
	loop := game.NewLoop(config.Default(), game.WithSeed(7))
	pol.loop = loop

	flagTicks = 100
	defer func() { flagTicks = 0 }()

	res := simFast(loop, pol)
	if res.Summary.Frame != 100 {
		t.Errorf("frame = %d, want 100", res.Summary.Frame)
	}
	if res.Finished {
		t.Error("game finished within 100 ticks")
	}
}

func TestSimDeterministic(t *testing.T) {
	rules := config.Default()
	rules.Countdown.SecondsPerUnit = 10

	run := func() game.Summary {
		pol, _ := newPolicy("flap")
		loop := game.NewLoop(rules, game.WithSeed(99))
		loop.SetSetting(1)
		pol.loop = loop
		flagTicks = 0
		return simFast(loop, pol).Summary
	}

	a, b := run(), run()
	if a.Score != b.Score || a.Stats != b.Stats {
		t.Errorf("runs differ: %+v vs %+v", a, b)
	}
}
