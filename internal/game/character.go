package game

import (
	"github.com/vovakirdan/birdfeed/internal/config"
	"github.com/vovakirdan/birdfeed/internal/core"
)

// Status is the character's flight state.
type Status int

const (
	StatusIdling Status = iota // resting on a surface; never entered
	StatusGliding
	StatusFlapping
	StatusDiving
)

// String returns a human-readable name for the status.
func (s Status) String() string {
	switch s {
	case StatusIdling:
		return "Idling"
	case StatusGliding:
		return "Gliding"
	case StatusFlapping:
		return "Flapping"
	case StatusDiving:
		return "Diving"
	default:
		return "Unknown"
	}
}

const (
	flapButtons = core.ButtonA | core.ButtonUp
	diveButtons = core.ButtonDown | core.ButtonB
)

// Bounding box of the bird relative to its draw position.
const (
	characterPivot = 8
	characterSize  = 16
)

// Character is the player's bird.
type Character struct {
	PosX, PosY     core.Fixed
	SpeedX, SpeedY int // sub-pixels per tick
	Status         Status
	Sprite         Sprite
	FacingRight    bool
	LastAnim       uint32 // frame of the last animation advance
	Scroll         int    // background offset derived from PosY

	rules  config.CharacterConfig
	view   core.Tracker[characterView]
	scroll core.Tracker[int]
}

// characterView is everything that makes the bird look different on screen.
type characterView struct {
	x, y   int
	flip   bool
	sprite Sprite
}

// NewCharacter creates a bird at its start position.
func NewCharacter(rules config.CharacterConfig) Character {
	c := Character{rules: rules}
	c.Reset()
	return c
}

// Reset puts the bird back at its start position, gliding to the right.
func (c *Character) Reset() {
	c.PosX = core.FromPixels(c.rules.StartX)
	c.PosY = core.FromPixels(c.rules.StartY)
	c.SpeedX = c.rules.MinSpeedX
	c.SpeedY = 0
	c.Status = StatusGliding
	c.Sprite = SpriteGlide
	c.FacingRight = true
	c.LastAnim = 0
	c.Scroll = scrollFor(c.PosY.Pixels())
	c.view.Reset()
	c.scroll.Reset()
}

// PixelX returns the integer horizontal position.
func (c *Character) PixelX() int { return c.PosX.Pixels() }

// PixelY returns the integer vertical world position.
func (c *Character) PixelY() int { return c.PosY.Pixels() }

// MaxSpeedY returns the downward speed limit of the current status.
func (c *Character) MaxSpeedY() int {
	if c.Status == StatusDiving {
		return c.rules.MaxSpeedYDiving
	}
	return c.rules.MaxSpeedYGliding
}

// Box returns the bird's bounding box in screen space.
func (c *Character) Box() core.Rect {
	return core.NewRect(
		c.PixelX()-characterPivot,
		c.PixelY()-characterPivot,
		characterSize,
		characterSize,
	).Offset(0, -c.Scroll)
}

// Update advances the bird by one tick.
func (c *Character) Update(in core.Snapshot, frame uint32) {
	r := &c.rules

	// Reversing slows the bird down to the minimum speed
	if in.Pressed(core.ButtonLeft) && c.SpeedX > 0 {
		c.SpeedX = -r.MinSpeedX
	} else if in.Pressed(core.ButtonRight) && c.SpeedX < 0 {
		c.SpeedX = r.MinSpeedX
	}

	switch c.Status {
	case StatusIdling:
	case StatusGliding:
		c.updateGliding(in, frame)
	case StatusFlapping:
		c.updateFlapping(frame)
	case StatusDiving:
		c.updateDiving(in, frame)
	}

	// Automatic save near the bottom of the world
	if c.PixelY() > r.MaxPosY && c.SpeedY > 0 && c.Status != StatusFlapping {
		c.startFlap(frame)
	}

	c.SpeedY = core.Clamp(c.SpeedY+r.Gravity, r.MaxSpeedYUpwards, c.MaxSpeedY())

	c.PosX = c.PosX.Add(c.SpeedX)
	c.PosY = c.PosY.Add(c.SpeedY)

	c.applyBounds()

	if c.SpeedX > 0 {
		c.FacingRight = true
	} else if c.SpeedX < 0 {
		c.FacingRight = false
	}

	c.Scroll = scrollFor(c.PixelY())
}

func (c *Character) updateGliding(in core.Snapshot, frame uint32) {
	switch {
	case in.Pressed(flapButtons):
		c.startFlap(frame)
	case in.Held(diveButtons):
		c.startDive(frame)
	default:
		c.Sprite = SpriteGlide
		c.accelerate(c.rules.GlideAccelX)
	}
}

func (c *Character) updateFlapping(frame uint32) {
	if c.Sprite < SpriteFlapFirst || c.Sprite > SpriteFlapLast {
		c.Sprite = SpriteGlide
		c.Status = StatusGliding
		return
	}

	if c.animDue(frame) {
		c.Sprite++
		if c.Sprite > SpriteFlapLast {
			c.Sprite = SpriteGlide
		}
	}
	if c.Sprite == SpriteGlide {
		c.Status = StatusGliding
	}
}

func (c *Character) updateDiving(in core.Snapshot, frame uint32) {
	if !in.Held(diveButtons) {
		c.Status = StatusGliding
		c.Sprite = SpriteGlide
		return
	}

	if c.Sprite < SpriteDiveFirst || c.Sprite > SpriteDiveLast {
		c.Sprite = SpriteDiveFirst
	}
	if c.animDue(frame) && c.Sprite < SpriteDiveLast {
		c.Sprite++
	}
	c.accelerate(c.rules.DiveAccelX)
}

func (c *Character) startFlap(frame uint32) {
	c.Status = StatusFlapping
	c.SpeedY += c.rules.BoostFlapping
	c.Sprite = SpriteFlapFirst
	c.LastAnim = frame
}

func (c *Character) startDive(frame uint32) {
	c.Status = StatusDiving
	c.SpeedY += c.rules.BoostDiving
	c.Sprite = SpriteDiveFirst
	c.LastAnim = frame
}

// animDue reports whether enough frames passed to advance the animation,
// and if so records the advance.
func (c *Character) animDue(frame uint32) bool {
	if frame-c.LastAnim > uint32(c.rules.AnimDelay) {
		c.LastAnim = frame
		return true
	}
	return false
}

// accelerate grows the horizontal speed magnitude, keeping its direction.
func (c *Character) accelerate(step int) {
	dir := core.Sign(c.SpeedX)
	if dir == 0 {
		dir = -1
		if c.FacingRight {
			dir = 1
		}
	}
	mag := core.Min(core.Abs(c.SpeedX)+step, c.rules.MaxSpeedX)
	c.SpeedX = dir * mag
}

// applyBounds keeps the bird inside its play band. Horizontally the bird
// turns around at minimum speed; at the top it is simply held.
func (c *Character) applyBounds() {
	r := &c.rules

	px := c.PixelX()
	if px < r.MinPosX && c.SpeedX < 0 {
		c.PosX = core.FromPixels(r.MinPosX)
		c.SpeedX = r.MinSpeedX
	} else if px > r.MaxPosX && c.SpeedX > 0 {
		c.PosX = core.FromPixels(r.MaxPosX)
		c.SpeedX = -r.MinSpeedX
	}

	if c.PixelY() < r.MinPosY {
		c.PosY = core.FromPixels(r.MinPosY)
	}
}

// Redraw pushes the bird to the renderer if anything visible changed since
// the last call. It returns true when a sprite draw was issued.
func (c *Character) Redraw(r Renderer) bool {
	if c.scroll.Changed(c.Scroll) {
		r.ScrollBackground(c.Scroll)
	}

	v := characterView{
		x:      c.PixelX(),
		y:      c.PixelY(),
		flip:   c.FacingRight,
		sprite: c.Sprite,
	}
	if !c.view.Changed(v) {
		return false
	}

	hi := r.DrawSprite(CharacterSlots, v.sprite, v.x, v.y-c.Scroll, v.flip)
	if hi < CharacterSlots.End {
		r.HideSprites(hi, CharacterSlots.End)
	}
	return true
}

// scrollFor keeps the bird vertically centered once it is below the
// first half screen.
func scrollFor(pixelY int) int {
	return core.Max(0, pixelY-HalfScreenHeight)
}
