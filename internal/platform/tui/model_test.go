package tui

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/birdfeed/internal/config"
	"github.com/vovakirdan/birdfeed/internal/core"
	"github.com/vovakirdan/birdfeed/internal/flock"
	"github.com/vovakirdan/birdfeed/internal/game"
	"github.com/vovakirdan/birdfeed/internal/storage"
)

// shortRules makes a one-setting game last a single second of one tick.
func shortRules() config.Config {
	rules := config.Default()
	rules.Countdown.SecondsPerUnit = 1
	rules.Countdown.TicksPerSecond = 1
	rules.Melody.Enabled = false
	return rules
}

func openStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("failed to open store: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func send(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	nm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T, want Model", next)
	}
	return nm
}

func ticks(t *testing.T, m Model, n int) Model {
	t.Helper()
	for i := 0; i < n; i++ {
		m = send(t, m, TickMsg(time.Time{}))
	}
	return m
}

// confirm waits out the screen debounce and presses A.
func confirm(t *testing.T, m Model) Model {
	t.Helper()
	m = ticks(t, m, 31)
	m = send(t, m, runeKey('z'))
	return ticks(t, m, 1)
}

func TestModelStartsOnTitle(t *testing.T) {
	m := NewModel(Options{Rules: config.Default(), Runtime: core.RuntimeConfig{Seed: 1}})

	if got := m.Summary().Screen; got != game.ScreenTitle {
		t.Errorf("screen = %v, want Title", got)
	}
	if view := m.View(); !strings.Contains(view, "PRESS START") {
		t.Errorf("title view missing prompt:\n%s", view)
	}
}

func TestModelScreensFollowKeys(t *testing.T) {
	m := NewModel(Options{Rules: config.Default(), Runtime: core.RuntimeConfig{Seed: 1}})

	m = confirm(t, m)
	if got := m.Summary().Screen; got != game.ScreenInstructions {
		t.Fatalf("screen = %v, want Instructions", got)
	}
	if view := m.View(); !strings.Contains(view, "HOW TO PLAY") {
		t.Errorf("instructions view:\n%s", view)
	}

	m = ticks(t, m, 31)
	m = send(t, m, tea.KeyMsg{Type: tea.KeyUp})
	m = ticks(t, m, 1)
	if got := m.Summary().Setting; got != 4 {
		t.Errorf("setting = %d, want 4", got)
	}

	m = send(t, m, runeKey('z'))
	m = ticks(t, m, 1)
	if got := m.Summary().Screen; got != game.ScreenGame {
		t.Errorf("screen = %v, want Game", got)
	}
}

func TestModelSavesFinishedGame(t *testing.T) {
	store := openStore(t)
	m := NewModel(Options{
		Rules:   shortRules(),
		Runtime: core.RuntimeConfig{Seed: 1},
		Setting: 1,
		Store:   store,
		Player:  "tester",
	})

	m = confirm(t, m)
	m = confirm(t, m)
	if got := m.Summary().Screen; got != game.ScreenGame {
		t.Fatalf("screen = %v, want Game", got)
	}

	m = ticks(t, m, 3)
	if got := m.Summary().Screen; got != game.ScreenWinning {
		t.Fatalf("screen = %v, want Winning", got)
	}
	if got := m.Saved(); got != 1 {
		t.Fatalf("Saved() = %d, want 1", got)
	}

	// Staying on the winning screen does not save again
	m = ticks(t, m, 10)
	if got := m.Saved(); got != 1 {
		t.Errorf("Saved() = %d after more ticks, want 1", got)
	}

	scores, err := store.TopScores(1, 10)
	if err != nil {
		t.Fatalf("TopScores failed: %v", err)
	}
	if len(scores) != 1 {
		t.Fatalf("expected 1 score, got %d", len(scores))
	}
	if scores[0].Player != "tester" {
		t.Errorf("player = %q, want tester", scores[0].Player)
	}
	if scores[0].Score != int(m.Summary().Score) {
		t.Errorf("stored score = %d, want %d", scores[0].Score, m.Summary().Score)
	}
}

func TestModelWithoutStore(t *testing.T) {
	m := NewModel(Options{Rules: shortRules(), Runtime: core.RuntimeConfig{Seed: 1}, Setting: 1})

	m = confirm(t, m)
	m = confirm(t, m)
	m = ticks(t, m, 3)

	if got := m.Summary().Screen; got != game.ScreenWinning {
		t.Fatalf("screen = %v, want Winning", got)
	}
	if got := m.Saved(); got != 0 {
		t.Errorf("Saved() = %d without a store, want 0", got)
	}
}

func TestModelHighScoreFromStore(t *testing.T) {
	store := openStore(t)
	if _, err := store.SaveResult(storage.Result{Setting: 3, Score: 420}); err != nil {
		t.Fatalf("SaveResult failed: %v", err)
	}

	m := NewModel(Options{Rules: config.Default(), Runtime: core.RuntimeConfig{Seed: 1}, Store: store})
	if !strings.Contains(m.View(), "HI 00420") {
		t.Errorf("status line missing high score:\n%s", m.View())
	}
}

func TestModelQuit(t *testing.T) {
	m := NewModel(Options{Rules: config.Default()})

	next, cmd := m.Update(runeKey('q'))
	if cmd == nil {
		t.Fatal("quit key returned no command")
	}
	if msg := cmd(); msg != (tea.QuitMsg{}) {
		t.Errorf("quit command produced %T", msg)
	}
	if view := next.(Model).View(); view != "" {
		t.Errorf("view after quit = %q, want empty", view)
	}
}

func TestModelShowsFlockNotices(t *testing.T) {
	reg := flock.NewRegistry()
	alice := flock.NewSession("a", "alice", 4)
	bob := flock.NewSession("b", "bob", 4)
	reg.Register(alice)
	reg.Register(bob)

	m := NewModel(Options{
		Rules:   config.Default(),
		Runtime: core.RuntimeConfig{Seed: 1},
		Player:  "alice",
		Flock:   reg,
		Session: alice,
	})

	// alice first hears bob join
	m = send(t, m, m.waitForEvent()())
	if view := m.View(); !strings.Contains(view, "bob flew in") {
		t.Errorf("view missing join notice:\n%s", view)
	}
	if view := m.View(); !strings.Contains(view, "2 online") {
		t.Errorf("view missing online count:\n%s", view)
	}

	// Notices expire
	m = ticks(t, m, noticeTicks)
	if view := m.View(); strings.Contains(view, "flew in") {
		t.Errorf("notice still shown after %d ticks", noticeTicks)
	}
}

func TestModelBroadcastsRecord(t *testing.T) {
	reg := flock.NewRegistry()
	alice := flock.NewSession("a", "alice", 4)
	bob := flock.NewSession("b", "bob", 4)
	reg.Register(alice)
	reg.Register(bob)
	<-alice.Events() // bob's join

	m := NewModel(Options{
		Rules:   shortRules(),
		Runtime: core.RuntimeConfig{Seed: 1},
		Setting: 1,
		Store:   openStore(t),
		Player:  "alice",
		Flock:   reg,
		Session: alice,
	})
	m.highScore = -1 // any finished game beats it

	m = confirm(t, m)
	m = confirm(t, m)
	m = ticks(t, m, 3)
	if got := m.Saved(); got != 1 {
		t.Fatalf("Saved() = %d, want 1", got)
	}

	select {
	case evt := <-bob.Events():
		rec, ok := evt.(flock.RecordEvent)
		if !ok {
			t.Fatalf("bob got %T, want RecordEvent", evt)
		}
		if rec.Player != "alice" || rec.Setting != 1 {
			t.Errorf("record = %+v", rec)
		}
	default:
		t.Error("bob did not hear about the record")
	}
	select {
	case evt := <-alice.Events():
		t.Errorf("alice heard her own record: %v", evt)
	default:
	}
}
