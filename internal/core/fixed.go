package core

// FracBits is the number of sub-pixel bits in a Fixed value.
const FracBits = 4

// Fixed is a signed fixed-point coordinate with FracBits fractional bits
// (16 sub-pixels per pixel). Velocities are plain ints in sub-pixel units
// and are added to positions directly.
type Fixed int32

// FromPixels converts a whole pixel value to fixed-point.
func FromPixels(px int) Fixed {
	return Fixed(px) << FracBits
}

// Pixels returns the integer pixel part. The shift is arithmetic, so
// negative values round toward negative infinity: -1 sub-pixel is pixel -1.
func (f Fixed) Pixels() int {
	return int(f >> FracBits)
}

// Add returns f advanced by v sub-pixels.
func (f Fixed) Add(v int) Fixed {
	return f + Fixed(v)
}

// Frac returns the sub-pixel remainder in [0, 16).
func (f Fixed) Frac() int {
	return int(f & (1<<FracBits - 1))
}
