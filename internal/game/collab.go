package game

import "github.com/vovakirdan/birdfeed/internal/core"

// Display geometry in pixels.
const (
	ScreenWidth      = 160
	ScreenHeight     = 144
	WorldHeight      = 256 // scrollable background height
	HalfScreenHeight = ScreenHeight / 2
	TileSize         = 8
	HardwareSprites  = 40
)

// SlotRange is a half-open range [Start, End) of hardware sprite slots.
type SlotRange struct {
	Start, End int
}

// Sprite indexes the sprite sheet.
type Sprite int

// Character frames.
const (
	SpriteGlide     Sprite = 0
	SpriteFlapFirst Sprite = 1
	SpriteFlapLast  Sprite = 4
	SpriteDiveFirst Sprite = 5
	SpriteDiveLast  Sprite = 7
)

// Food frames: each type's frames are consecutive from its base.
const (
	SpriteDandelion Sprite = 8
	SpriteBerry     Sprite = 12
)

// CharacterSlots holds the bird's metasprite.
var CharacterSlots = SlotRange{Start: 0, End: 4}

// foodSlotsBase is the first hardware slot used by the food pool.
const foodSlotsBase = 4

// FoodSlots returns the hardware slots of food pool entry i (two per entry).
func FoodSlots(i int) SlotRange {
	start := foodSlotsBase + 2*i
	return SlotRange{Start: start, End: start + 2}
}

// Background identifies a screen's static tilemap.
type Background int

const (
	BackgroundTitle Background = iota
	BackgroundInstructions
	BackgroundSky
	BackgroundWinning
)

// Renderer is the display the simulation draws through. Sprites are
// retained: a drawn sprite stays in its slots until moved or hidden.
type Renderer interface {
	// LoadBackground replaces the tilemap with a screen's static layout.
	LoadBackground(bg Background)
	// DrawSprite places a metasprite with its pivot at screen pixel (x, y)
	// using slots from the range, and returns the end of the slots it used.
	DrawSprite(slots SlotRange, sprite Sprite, x, y int, flip bool) int
	// HideSprites hides slots [from, to).
	HideSprites(from, to int)
	// ScrollBackground sets the vertical background offset in pixels.
	ScrollBackground(offsetY int)
	// SetTileText writes characters into the tilemap at tile (x, y).
	SetTileText(x, y int, text string)
	// SetPalette changes the shade mapping of the whole display.
	SetPalette(p core.Palette)
}

// Channel is an audio channel, 1..4.
type Channel uint8

const (
	ChannelPulse1 Channel = 1
	ChannelPulse2 Channel = 2
	ChannelWave   Channel = 3
	ChannelNoise  Channel = 4
)

// Waveform selects the oscillator shape.
type Waveform uint8

const (
	WaveDuty12 Waveform = iota // 12.5% pulse
	WaveDuty25
	WaveDuty50
	WaveDuty75
	WaveNoise
)

// Envelope is the volume envelope of a tone. Volume is 0..15; a negative
// Step fades out, a positive one fades in, zero holds.
type Envelope struct {
	Volume uint8
	Step   int8
}

// Audio plays fire-and-forget tones. Freq is an 11-bit period register
// value, length is in 1/256 s units with 0 meaning until replaced.
type Audio interface {
	PlayTone(ch Channel, wave Waveform, env Envelope, freq uint16, length uint8)
}

// RNG is the pseudo-random source used by the spawner.
type RNG interface {
	Seed(entropy byte)
	Next() int8
}

// InputSource reports the buttons held right now.
type InputSource interface {
	Poll() core.Buttons
}

// Entropy returns a high-entropy byte used to reseed the RNG.
type Entropy func() byte

type nopRenderer struct{}

func (nopRenderer) LoadBackground(Background)                              {}
func (nopRenderer) DrawSprite(s SlotRange, _ Sprite, _, _ int, _ bool) int { return s.Start }
func (nopRenderer) HideSprites(int, int)                                   {}
func (nopRenderer) ScrollBackground(int)                                   {}
func (nopRenderer) SetTileText(int, int, string)                           {}
func (nopRenderer) SetPalette(core.Palette)                                {}

type nopAudio struct{}

func (nopAudio) PlayTone(Channel, Waveform, Envelope, uint16, uint8) {}
