package game

import (
	"math/rand"
	"testing"

	"github.com/vovakirdan/birdfeed/internal/config"
	"github.com/vovakirdan/birdfeed/internal/core"
)

func newTestCharacter() Character {
	return NewCharacter(config.Default().Character)
}

// step feeds one tick of held buttons into the snapshot and the character.
func step(c *Character, in *core.Snapshot, held core.Buttons, frame uint32) {
	in.Update(held)
	c.Update(*in, frame)
}

func TestCharacterInitialState(t *testing.T) {
	c := newTestCharacter()

	if c.PixelX() != 64 || c.PixelY() != 64 {
		t.Errorf("start position = (%d,%d), want (64,64)", c.PixelX(), c.PixelY())
	}
	if c.Status != StatusGliding {
		t.Errorf("status = %v, want Gliding", c.Status)
	}
	if c.SpeedX != 4 || c.SpeedY != 0 {
		t.Errorf("speed = (%d,%d), want (4,0)", c.SpeedX, c.SpeedY)
	}
	if !c.FacingRight {
		t.Error("expected bird to face right")
	}
}

func TestCharacterDiveFromGlide(t *testing.T) {
	c := newTestCharacter()
	var in core.Snapshot

	step(&c, &in, core.ButtonDown, 1)

	if c.Status != StatusDiving {
		t.Fatalf("status = %v, want Diving", c.Status)
	}
	if c.SpeedY != 17 {
		t.Errorf("SpeedY = %d, want 17 (boost 16 + gravity 1)", c.SpeedY)
	}
	if c.Sprite != SpriteDiveFirst {
		t.Errorf("Sprite = %d, want %d", c.Sprite, SpriteDiveFirst)
	}
}

func TestCharacterFlapCycle(t *testing.T) {
	c := newTestCharacter()
	var in core.Snapshot

	step(&c, &in, core.ButtonA, 1)
	if c.Status != StatusFlapping {
		t.Fatalf("status = %v, want Flapping", c.Status)
	}
	if c.SpeedY != -23 {
		t.Errorf("SpeedY = %d, want -23", c.SpeedY)
	}

	// Holding A is not a new press: the cycle runs out and the bird glides.
	wantSprites := map[uint32]Sprite{4: 2, 7: 3, 10: 4}
	for frame := uint32(2); frame <= 12; frame++ {
		step(&c, &in, core.ButtonA, frame)
		if want, ok := wantSprites[frame]; ok && c.Sprite != want {
			t.Errorf("frame %d: Sprite = %d, want %d", frame, c.Sprite, want)
		}
		if c.Status != StatusFlapping {
			t.Fatalf("frame %d: left Flapping early", frame)
		}
	}
	step(&c, &in, core.ButtonA, 13)
	if c.Status != StatusGliding || c.Sprite != SpriteGlide {
		t.Errorf("after cycle: status=%v sprite=%d, want Gliding/%d", c.Status, c.Sprite, SpriteGlide)
	}
}

func TestCharacterFlapGuard(t *testing.T) {
	c := newTestCharacter()
	c.Status = StatusFlapping
	c.Sprite = SpriteDiveLast

	c.Update(core.Snapshot{}, 1)

	if c.Status != StatusGliding || c.Sprite != SpriteGlide {
		t.Errorf("status=%v sprite=%d, want Gliding/%d", c.Status, c.Sprite, SpriteGlide)
	}
}

func TestCharacterDiveAnimationAndRelease(t *testing.T) {
	c := newTestCharacter()
	var in core.Snapshot

	for frame := uint32(1); frame <= 30; frame++ {
		step(&c, &in, core.ButtonB, frame)
		if c.Status != StatusDiving {
			t.Fatalf("frame %d: status = %v, want Diving", frame, c.Status)
		}
		if c.Sprite < SpriteDiveFirst || c.Sprite > SpriteDiveLast {
			t.Fatalf("frame %d: sprite %d outside dive cycle", frame, c.Sprite)
		}
	}
	if c.Sprite != SpriteDiveLast {
		t.Errorf("Sprite = %d, want clamped at %d", c.Sprite, SpriteDiveLast)
	}
	if c.SpeedX != 24 {
		t.Errorf("SpeedX = %d, want max 24", c.SpeedX)
	}

	step(&c, &in, core.ButtonNone, 31)
	if c.Status != StatusGliding || c.Sprite != SpriteGlide {
		t.Errorf("after release: status=%v sprite=%d", c.Status, c.Sprite)
	}
}

func TestCharacterReversal(t *testing.T) {
	c := newTestCharacter()
	c.SpeedX = 20
	var in core.Snapshot

	step(&c, &in, core.ButtonLeft, 1)

	// Reversal to -4, then gliding acceleration
	if c.SpeedX != -5 {
		t.Errorf("SpeedX = %d, want -5", c.SpeedX)
	}
	if c.FacingRight {
		t.Error("expected bird to face left")
	}

	// Holding Left is not a new press
	step(&c, &in, core.ButtonLeft, 2)
	if c.SpeedX != -6 {
		t.Errorf("SpeedX = %d, want -6", c.SpeedX)
	}

	step(&c, &in, core.ButtonRight, 3)
	if c.SpeedX != 5 {
		t.Errorf("SpeedX = %d, want 5", c.SpeedX)
	}
}

func TestCharacterUTurn(t *testing.T) {
	tests := []struct {
		name      string
		x         int
		speedX    int
		wantX     int
		wantSpeed int
	}{
		{"left edge", 9, -24, 8, 4},
		{"right edge", 152, 24, 152, -4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestCharacter()
			c.PosX = core.FromPixels(tt.x)
			c.SpeedX = tt.speedX

			c.Update(core.Snapshot{}, 1)

			if c.PixelX() != tt.wantX {
				t.Errorf("PixelX = %d, want %d", c.PixelX(), tt.wantX)
			}
			if c.SpeedX != tt.wantSpeed {
				t.Errorf("SpeedX = %d, want %d", c.SpeedX, tt.wantSpeed)
			}
			if c.FacingRight != (tt.wantSpeed > 0) {
				t.Errorf("FacingRight = %v after U-turn", c.FacingRight)
			}
		})
	}
}

func TestCharacterAutomaticSave(t *testing.T) {
	c := newTestCharacter()
	c.PosY = core.FromPixels(190)
	c.SpeedY = 8

	c.Update(core.Snapshot{}, 1)

	if c.Status != StatusFlapping {
		t.Fatalf("status = %v, want Flapping", c.Status)
	}
	if c.SpeedY != -15 {
		t.Errorf("SpeedY = %d, want -15", c.SpeedY)
	}
}

func TestCharacterTopClamp(t *testing.T) {
	c := newTestCharacter()
	c.PosY = core.FromPixels(16)
	c.SpeedY = -32

	c.Update(core.Snapshot{}, 1)

	if c.PixelY() != 16 {
		t.Errorf("PixelY = %d, want 16", c.PixelY())
	}
}

func TestCharacterSpeedBounds(t *testing.T) {
	rules := config.Default().Character
	c := NewCharacter(rules)
	var in core.Snapshot
	rng := rand.New(rand.NewSource(7))

	buttons := []core.Buttons{
		core.ButtonNone, core.ButtonA, core.ButtonUp, core.ButtonDown,
		core.ButtonB, core.ButtonLeft, core.ButtonRight,
	}
	held := core.ButtonNone
	for frame := uint32(1); frame <= 5000; frame++ {
		if rng.Intn(8) == 0 {
			held = buttons[rng.Intn(len(buttons))]
		}
		step(&c, &in, held, frame)

		if core.Abs(c.SpeedX) > rules.MaxSpeedX {
			t.Fatalf("frame %d: |SpeedX| = %d exceeds %d", frame, core.Abs(c.SpeedX), rules.MaxSpeedX)
		}
		if c.SpeedY < rules.MaxSpeedYUpwards || c.SpeedY > c.MaxSpeedY() {
			t.Fatalf("frame %d: SpeedY = %d outside [%d,%d] in %v",
				frame, c.SpeedY, rules.MaxSpeedYUpwards, c.MaxSpeedY(), c.Status)
		}
		if c.PixelX() < rules.MinPosX || c.PixelX() > rules.MaxPosX {
			t.Fatalf("frame %d: PixelX = %d outside play band", frame, c.PixelX())
		}
		if c.PixelY() < rules.MinPosY {
			t.Fatalf("frame %d: PixelY = %d above the top", frame, c.PixelY())
		}
		if c.PixelY()+characterPivot > WorldHeight {
			t.Fatalf("frame %d: PixelY = %d fell out of the world", frame, c.PixelY())
		}
		if c.Scroll != scrollFor(c.PixelY()) {
			t.Fatalf("frame %d: Scroll = %d, want %d", frame, c.Scroll, scrollFor(c.PixelY()))
		}
	}
}

func TestScrollFor(t *testing.T) {
	tests := []struct {
		y    int
		want int
	}{
		{16, 0},
		{72, 0},
		{73, 1},
		{184, 112},
	}

	for _, tt := range tests {
		if got := scrollFor(tt.y); got != tt.want {
			t.Errorf("scrollFor(%d) = %d, want %d", tt.y, got, tt.want)
		}
	}
}

func TestCharacterRedrawGating(t *testing.T) {
	c := newTestCharacter()
	r := &fakeRenderer{}

	if !c.Redraw(r) {
		t.Fatal("first redraw should draw")
	}
	if r.draws != 1 || len(r.scrolls) != 1 {
		t.Fatalf("draws=%d scrolls=%d, want 1/1", r.draws, len(r.scrolls))
	}

	if c.Redraw(r) {
		t.Error("redraw without change should not draw")
	}
	if r.draws != 1 || len(r.scrolls) != 1 {
		t.Errorf("draws=%d scrolls=%d after idle redraw, want 1/1", r.draws, len(r.scrolls))
	}

	// Sub-pixel motion does not move the sprite
	c.PosX = c.PosX.Add(1)
	if c.Redraw(r) {
		t.Error("sub-pixel move should not draw")
	}

	c.Sprite = SpriteFlapFirst
	if !c.Redraw(r) {
		t.Error("sprite change should draw")
	}
}

func TestCharacterRedrawHidesUnusedSlots(t *testing.T) {
	c := newTestCharacter()
	r := &fakeRenderer{used: 2}

	c.Redraw(r)

	if len(r.hidden) != 1 || r.hidden[0] != (SlotRange{Start: 2, End: CharacterSlots.End}) {
		t.Errorf("hidden = %v, want [{2 %d}]", r.hidden, CharacterSlots.End)
	}
}

func TestCharacterBoxInScreenSpace(t *testing.T) {
	c := newTestCharacter()
	c.PosX = core.FromPixels(80)
	c.PosY = core.FromPixels(150)
	c.Scroll = 100

	if got, want := c.Box(), core.NewRect(72, 42, 16, 16); got != want {
		t.Errorf("Box() = %+v, want %+v", got, want)
	}
}

func TestCharacterDivesBelowSaveLine(t *testing.T) {
	c := newTestCharacter()
	c.PosY = core.FromPixels(190)
	c.SpeedY = -20
	var in core.Snapshot

	step(&c, &in, core.ButtonDown, 1)

	if c.Status != StatusDiving {
		t.Errorf("status = %v, want Diving", c.Status)
	}
	// -20 + boost 16 + gravity 1
	if c.SpeedY != -3 {
		t.Errorf("speedY = %d, want -3", c.SpeedY)
	}
}

func TestCharacterSaveLineCatchesHeldDive(t *testing.T) {
	c := newTestCharacter()
	c.PosY = core.FromPixels(190)
	c.SpeedY = 4
	var in core.Snapshot

	step(&c, &in, core.ButtonDown, 1)

	if c.Status != StatusFlapping {
		t.Errorf("status = %v, want Flapping from the automatic save", c.Status)
	}
}

func TestCharacterHeldDiveStaysAboveFloor(t *testing.T) {
	c := newTestCharacter()
	var in core.Snapshot
	limit := c.rules.MaxPosY + 16
	maxY, dives := 0, 0

	for frame := uint32(1); frame <= 5000; frame++ {
		step(&c, &in, core.ButtonDown, frame)
		if c.Status == StatusDiving {
			dives++
		}
		maxY = core.Max(maxY, c.PixelY())
	}

	if dives == 0 {
		t.Error("holding dive never entered Diving")
	}
	if maxY > limit {
		t.Errorf("max pixelY = %d, want <= %d", maxY, limit)
	}
}
