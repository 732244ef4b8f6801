package game

import (
	"github.com/vovakirdan/birdfeed/internal/config"
	"github.com/vovakirdan/birdfeed/internal/core"
)

// FoodType is the kind of a food entity.
type FoodType int

const (
	FoodDandelion FoodType = iota
	FoodBerry

	foodTypeCount
)

// String returns a human-readable name for the food type.
func (t FoodType) String() string {
	switch t {
	case FoodDandelion:
		return "Dandelion"
	case FoodBerry:
		return "Berry"
	default:
		return "Unknown"
	}
}

// Food is one entry of the food pool.
type Food struct {
	Enabled        bool
	Type           FoodType
	Frame          int    // animation cursor within the type's frames
	LastAnim       uint32 // frame of the last animation advance
	PosX, PosY     core.Fixed
	SpeedX, SpeedY int
	Value          int
	Height         int // bounding box height in pixels

	view core.Tracker[foodView]
}

type foodView struct {
	x, y, frame, scroll int
}

// Box returns the food's bounding box in screen space.
func (f *Food) Box(scroll int) core.Rect {
	return core.NewRect(f.PosX.Pixels(), f.PosY.Pixels(), TileSize, f.Height).Offset(0, -scroll)
}

// Sprite returns the sheet index of the current animation frame.
func (f *Food) Sprite() Sprite {
	if f.Type == FoodBerry {
		return SpriteBerry + Sprite(f.Frame)
	}
	return SpriteDandelion + Sprite(f.Frame)
}

// OutOfRange reports whether the food left the play area and keeps moving
// away from it.
func (f *Food) OutOfRange() bool {
	x, y := f.PosX.Pixels(), f.PosY.Pixels()
	switch {
	case x < -TileSize && f.SpeedX < 0:
		return true
	case x > ScreenWidth && f.SpeedX > 0:
		return true
	case y < 0 && f.SpeedY < 0:
		return true
	case y > WorldHeight && f.SpeedY > 0:
		return true
	}
	return false
}

// FoodPool is the fixed-capacity set of food entities.
type FoodPool struct {
	Slots []Food
	rules config.FoodConfig
}

// NewFoodPool creates an empty pool sized by the rules.
func NewFoodPool(rules config.FoodConfig) FoodPool {
	return FoodPool{
		Slots: make([]Food, rules.Capacity),
		rules: rules,
	}
}

// Reset disables every entity.
func (p *FoodPool) Reset() {
	for i := range p.Slots {
		p.Slots[i] = Food{}
	}
}

// Limit returns how many slots may be in use after elapsed game frames.
func (p *FoodPool) Limit(elapsed uint32) int {
	ramp := uint32(core.Max(p.rules.RampTicks, 1))
	n := 1 + elapsed/ramp
	if n > uint32(len(p.Slots)) {
		return len(p.Slots)
	}
	return int(n)
}

// NextAvailableSlot returns the first disabled slot within the ramp limit,
// or -1 if there is none.
func (p *FoodPool) NextAvailableSlot(elapsed uint32) int {
	limit := p.Limit(elapsed)
	for i := 0; i < limit; i++ {
		if !p.Slots[i].Enabled {
			return i
		}
	}
	return -1
}

// Active returns the number of enabled entities.
func (p *FoodPool) Active() int {
	n := 0
	for i := range p.Slots {
		if p.Slots[i].Enabled {
			n++
		}
	}
	return n
}

// Spawn enables slot with a fresh entity built from rng draws, in the order
// type, side, horizontal speed, altitude (when random), vertical speed.
// The spawn gate draw is the caller's.
func (p *FoodPool) Spawn(slot int, rng RNG, frame uint32) *Food {
	f := &p.Slots[slot]
	*f = Food{Enabled: true, LastAnim: frame}

	if int(rng.Next())&p.rules.BerryMask == 0 {
		f.Type = FoodBerry
	}
	rule := p.rule(f.Type)
	f.Value = rule.Value
	f.Height = rule.HeightTiles * TileSize

	side := rng.Next()
	speed := rule.MinSpeedX + int(rng.Next())&rule.SpeedXMask
	if side&1 == 0 {
		f.PosX = core.FromPixels(-TileSize)
		f.SpeedX = speed
	} else {
		f.PosX = core.FromPixels(ScreenWidth)
		f.SpeedX = -speed
	}

	if rule.Altitude >= 0 {
		f.PosY = core.FromPixels(rule.Altitude)
	} else {
		f.PosY = core.FromPixels(int(uint8(rng.Next())))
	}

	vy := int(rng.Next())
	if f.Type == FoodBerry {
		f.SpeedY = vy & 1
	} else {
		f.SpeedY = vy >> 6
	}
	return f
}

// Disable removes slot i from play and hides its sprites.
func (p *FoodPool) Disable(i int, r Renderer) {
	f := &p.Slots[i]
	f.Enabled = false
	f.view.Reset()
	slots := FoodSlots(i)
	r.HideSprites(slots.Start, slots.End)
}

// Move integrates one entity, applying berry gravity on every Nth frame.
func (p *FoodPool) Move(i int, frame uint32) {
	f := &p.Slots[i]
	every := uint32(core.Max(p.rules.BerryGravityEvery, 1))
	if f.Type == FoodBerry && frame%every == 0 {
		f.SpeedY = core.Min(f.SpeedY+1, p.rules.MaxFallSpeed)
	}
	f.PosX = f.PosX.Add(f.SpeedX)
	f.PosY = f.PosY.Add(f.SpeedY)
}

// Animate advances the entity's animation when its delay elapsed.
func (p *FoodPool) Animate(i int, frame uint32) {
	f := &p.Slots[i]
	if frame-f.LastAnim <= uint32(p.rules.AnimDelay) {
		return
	}
	f.LastAnim = frame
	frames := core.Max(p.rule(f.Type).Frames, 1)
	f.Frame = (f.Frame + 1) % frames
}

// Redraw draws slot i if its position, frame or the scroll changed since
// the last draw. It returns true when a sprite draw was issued.
func (p *FoodPool) Redraw(i int, r Renderer, scroll int) bool {
	f := &p.Slots[i]
	v := foodView{
		x:      f.PosX.Pixels(),
		y:      f.PosY.Pixels(),
		frame:  f.Frame,
		scroll: scroll,
	}
	if !f.view.Changed(v) {
		return false
	}

	slots := FoodSlots(i)
	hi := r.DrawSprite(slots, f.Sprite(), v.x, v.y-scroll, f.SpeedX < 0)
	if hi < slots.End {
		r.HideSprites(hi, slots.End)
	}
	return true
}

func (p *FoodPool) rule(t FoodType) config.FoodTypeRule {
	if t == FoodBerry {
		return p.rules.Berry
	}
	return p.rules.Dandelion
}
