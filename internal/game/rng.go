package game

// XorShift is a 16-bit xorshift generator (7, 9, 8). The state is never zero.
type XorShift struct {
	state uint16
}

// NewXorShift returns a generator seeded with entropy.
func NewXorShift(entropy byte) *XorShift {
	r := &XorShift{}
	r.Seed(entropy)
	return r
}

// Seed resets the state from one entropy byte.
func (r *XorShift) Seed(entropy byte) {
	// The low byte differs from the high byte, so the state is never zero.
	r.state = uint16(entropy)<<8 | uint16(entropy^0xA5)
}

// Next returns the next value as a signed byte.
func (r *XorShift) Next() int8 {
	x := r.state
	x ^= x << 7
	x ^= x >> 9
	x ^= x << 8
	r.state = x
	return int8(x >> 8)
}
