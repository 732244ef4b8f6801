package game

import "testing"

func TestXorShiftSeedDeterminism(t *testing.T) {
	a, b := NewXorShift(0x42), NewXorShift(0x42)
	for i := 0; i < 1000; i++ {
		if x, y := a.Next(), b.Next(); x != y {
			t.Fatalf("draw %d differs: %d vs %d", i, x, y)
		}
	}
}

func TestXorShiftNeverStalls(t *testing.T) {
	for e := 0; e < 256; e++ {
		r := NewXorShift(byte(e))
		for i := 0; i < 1000; i++ {
			r.Next()
			if r.state == 0 {
				t.Fatalf("entropy %#x: state reached zero after %d draws", e, i)
			}
		}
	}
}

func TestXorShiftSpread(t *testing.T) {
	r := NewXorShift(0)
	above := 0
	const n = 65535
	for i := 0; i < n; i++ {
		if r.Next() > 100 {
			above++
		}
	}
	// 27 of 256 values exceed the spawn threshold
	if above < n*8/100 || above > n*13/100 {
		t.Errorf("%d of %d draws above 100, want about 10.5%%", above, n)
	}
}
