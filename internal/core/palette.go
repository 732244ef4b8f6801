package core

// Shade is one of the four display intensities, 0 = lightest, 3 = darkest.
type Shade uint8

const (
	ShadeWhite Shade = iota
	ShadeLight
	ShadeDark
	ShadeBlack
)

// Palette maps the four logical shades to display shades, two bits each,
// shade 0 in the lowest bits. 0xE4 is the identity mapping.
type Palette uint8

// DefaultPalette maps every shade to itself.
const DefaultPalette Palette = 0xE4

// Map returns the display shade for a logical shade.
func (p Palette) Map(s Shade) Shade {
	return Shade(p>>(2*(s&3))) & 3
}
