package game

import (
	"testing"

	"github.com/vovakirdan/birdfeed/internal/config"
	"github.com/vovakirdan/birdfeed/internal/core"
)

func newTestPool() FoodPool {
	return NewFoodPool(config.Default().Food)
}

func TestFoodPoolRamp(t *testing.T) {
	p := newTestPool()

	tests := []struct {
		elapsed uint32
		want    int
	}{
		{0, 1},
		{255, 1},
		{256, 2},
		{1024, 5},
		{1792, 8},
		{100000, 8},
	}

	for _, tt := range tests {
		if got := p.Limit(tt.elapsed); got != tt.want {
			t.Errorf("Limit(%d) = %d, want %d", tt.elapsed, got, tt.want)
		}
	}
}

func TestNextAvailableSlot(t *testing.T) {
	p := newTestPool()

	if got := p.NextAvailableSlot(0); got != 0 {
		t.Fatalf("NextAvailableSlot(0) = %d, want 0", got)
	}

	p.Slots[0].Enabled = true
	if got := p.NextAvailableSlot(0); got != -1 {
		t.Errorf("with slot 0 busy and limit 1: got %d, want -1", got)
	}
	if got := p.NextAvailableSlot(256); got != 1 {
		t.Errorf("with limit 2: got %d, want 1", got)
	}

	for i := range p.Slots {
		p.Slots[i].Enabled = true
	}
	if got := p.NextAvailableSlot(100000); got != -1 {
		t.Errorf("full pool: got %d, want -1", got)
	}
}

func TestSpawnDandelion(t *testing.T) {
	p := newTestPool()
	rng := &scriptRNG{draws: []int8{1, 0, 3, -56, -128}}

	f := p.Spawn(0, rng, 10)

	if !f.Enabled || f.Type != FoodDandelion {
		t.Fatalf("got enabled=%v type=%v, want enabled Dandelion", f.Enabled, f.Type)
	}
	if f.PosX.Pixels() != -TileSize || f.SpeedX != 5 {
		t.Errorf("x=%d speedX=%d, want -8/5", f.PosX.Pixels(), f.SpeedX)
	}
	if f.PosY.Pixels() != 200 {
		t.Errorf("y = %d, want 200", f.PosY.Pixels())
	}
	if f.SpeedY != -2 {
		t.Errorf("speedY = %d, want -2", f.SpeedY)
	}
	if f.Value != 10 || f.Height != 16 {
		t.Errorf("value=%d height=%d, want 10/16", f.Value, f.Height)
	}
	if f.LastAnim != 10 {
		t.Errorf("LastAnim = %d, want 10", f.LastAnim)
	}
}

func TestSpawnBerry(t *testing.T) {
	p := newTestPool()
	rng := &scriptRNG{draws: []int8{16, 1, 5, 1}}

	f := p.Spawn(3, rng, 0)

	if f != &p.Slots[3] {
		t.Fatal("Spawn should fill the requested slot")
	}
	if f.Type != FoodBerry {
		t.Fatalf("type = %v, want Berry", f.Type)
	}
	if f.PosX.Pixels() != ScreenWidth || f.SpeedX != -17 {
		t.Errorf("x=%d speedX=%d, want 160/-17", f.PosX.Pixels(), f.SpeedX)
	}
	if f.PosY.Pixels() != 24 || f.SpeedY != 1 {
		t.Errorf("y=%d speedY=%d, want 24/1", f.PosY.Pixels(), f.SpeedY)
	}
	if f.Value != 100 || f.Height != 8 {
		t.Errorf("value=%d height=%d, want 100/8", f.Value, f.Height)
	}
	if len(rng.draws) != 0 {
		t.Errorf("berry spawn left %d draws unused", len(rng.draws))
	}
}

func TestFoodBoxFollowsScroll(t *testing.T) {
	f := Food{PosX: core.FromPixels(40), PosY: core.FromPixels(100), Height: 16}

	tests := []struct {
		scroll int
		want   core.Rect
	}{
		{0, core.NewRect(40, 100, TileSize, 16)},
		{64, core.NewRect(40, 36, TileSize, 16)},
		{112, core.NewRect(40, -12, TileSize, 16)},
	}

	for _, tt := range tests {
		if got := f.Box(tt.scroll); got != tt.want {
			t.Errorf("Box(%d) = %+v, want %+v", tt.scroll, got, tt.want)
		}
	}
}

func TestFoodOutOfRange(t *testing.T) {
	tests := []struct {
		name           string
		x, y           int
		speedX, speedY int
		want           bool
	}{
		{"entering from left", -8, 100, 5, 0, false},
		{"entering from right", 160, 100, -5, 0, false},
		{"gone left", -9, 100, -5, 0, true},
		{"past left edge moving back", -9, 100, 5, 0, false},
		{"gone right", 161, 100, 5, 0, true},
		{"above world moving up", 50, -1, 5, -1, true},
		{"above world moving down", 50, -1, 5, 1, false},
		{"below world moving down", 50, 257, 5, 1, true},
		{"inside", 50, 100, -5, -2, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := Food{
				PosX:   core.FromPixels(tt.x),
				PosY:   core.FromPixels(tt.y),
				SpeedX: tt.speedX,
				SpeedY: tt.speedY,
			}
			if got := f.OutOfRange(); got != tt.want {
				t.Errorf("OutOfRange() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFoodAnimation(t *testing.T) {
	p := newTestPool()
	p.Slots[0] = Food{Enabled: true, Type: FoodBerry}

	p.Animate(0, 15)
	if p.Slots[0].Frame != 0 {
		t.Errorf("advanced at delta 15, want only past 15")
	}
	p.Animate(0, 16)
	if p.Slots[0].Frame != 1 {
		t.Errorf("Frame = %d, want 1", p.Slots[0].Frame)
	}
	p.Animate(0, 32)
	if p.Slots[0].Frame != 0 {
		t.Errorf("berry should wrap after 2 frames, got %d", p.Slots[0].Frame)
	}
	if p.Slots[0].Sprite() != SpriteBerry {
		t.Errorf("Sprite = %d, want %d", p.Slots[0].Sprite(), SpriteBerry)
	}
}

func TestBerryGravity(t *testing.T) {
	p := newTestPool()
	p.Slots[0] = Food{Enabled: true, Type: FoodBerry, SpeedX: -12}
	p.Slots[1] = Food{Enabled: true, Type: FoodDandelion, SpeedX: 3}

	for frame := uint32(1); frame <= 400; frame++ {
		p.Move(0, frame)
		p.Move(1, frame)
	}

	if p.Slots[0].SpeedY != 24 {
		t.Errorf("berry SpeedY = %d, want capped 24", p.Slots[0].SpeedY)
	}
	if p.Slots[1].SpeedY != 0 {
		t.Errorf("dandelion SpeedY = %d, want 0", p.Slots[1].SpeedY)
	}
}

func TestFoodRedrawGating(t *testing.T) {
	p := newTestPool()
	p.Slots[2] = Food{Enabled: true, PosX: core.FromPixels(40), PosY: core.FromPixels(30)}
	r := &fakeRenderer{}

	if !p.Redraw(2, r, 0) {
		t.Fatal("first redraw should draw")
	}
	if p.Redraw(2, r, 0) {
		t.Error("unchanged food should not draw")
	}
	if !p.Redraw(2, r, 5) {
		t.Error("scroll change should draw")
	}

	p.Disable(2, r)
	if p.Slots[2].Enabled {
		t.Error("slot should be disabled")
	}
	want := FoodSlots(2)
	if last := r.hidden[len(r.hidden)-1]; last != want {
		t.Errorf("hidden %v, want %v", last, want)
	}
}
